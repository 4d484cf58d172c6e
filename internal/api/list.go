package api

import (
	"encoding/json"
	"fmt"
)

// list is the vendor's generic {"count": N, "<items-key>": [...]} payload.
// The items key varies by endpoint, so unmarshalling accepts any of the
// known aliases while exposing a uniform Count + Items shape.
type list[T any] struct {
	Count *int
	Items []T
}

var listCountAliases = []string{"count", "total", "batteryCount"}

var listItemAliases = []string{
	"data",
	"site",
	"siteEnergyList",
	"timeFrameEnergyList",
	"telemetries",
	"batteries",
	"list",
}

func (l *list[T]) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, key := range listCountAliases {
		v, ok := raw[key]
		if !ok {
			continue
		}
		var count int
		if err := json.Unmarshal(v, &count); err != nil {
			return fmt.Errorf("parsing %q: %w", key, err)
		}
		l.Count = &count
		break
	}
	for _, key := range listItemAliases {
		v, ok := raw[key]
		if !ok {
			continue
		}
		return json.Unmarshal(v, &l.Items)
	}
	return fmt.Errorf("list payload has no recognized items key")
}

// decodeJSON parses a response body, tagging failures as decode errors.
func decodeJSON(body []byte, result any) error {
	if err := json.Unmarshal(body, result); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}
