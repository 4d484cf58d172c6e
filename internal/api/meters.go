package api

import (
	"context"
	"fmt"
)

// MeterReading is one meter's lifetime energy series together with its
// metadata and the device it is connected to.
type MeterReading struct {
	MeterSerialNumber string      `json:"meterSerialNumber"`
	ConnectedDeviceSN string      `json:"connectedSolaredgeDeviceSN"`
	Model             string      `json:"model"`
	MeterType         MeterType   `json:"meterType"`
	Values            []DateValue `json:"values"`
}

// MeterEnergyDetails is the response of the site meters endpoint.
type MeterEnergyDetails struct {
	TimeUnit TimeUnit       `json:"timeUnit"`
	Unit     EnergyUnit     `json:"unit"`
	Meters   []MeterReading `json:"meters"`
}

type metersEnvelope struct {
	MeterEnergyDetails *MeterEnergyDetails `json:"meterEnergyDetails"`
}

// Meters returns each on-site meter's lifetime energy reading, metadata
// and the device it is connected to.
func (s SitesService) Meters(ctx context.Context, siteID int64, params *MeterRangeParams) (*MeterEnergyDetails, error) {
	var env metersEnvelope
	if err := s.get(ctx, fmt.Sprintf("/site/%d/meters.json", siteID), params, &env); err != nil {
		return nil, err
	}
	if env.MeterEnergyDetails == nil {
		return nil, missingKey("meterEnergyDetails")
	}
	return env.MeterEnergyDetails, nil
}
