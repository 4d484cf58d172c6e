package api

import (
	"context"
	"fmt"
)

// Power is a site's power measurement series in 15-minute resolution.
type Power struct {
	TimeUnit TimeUnit    `json:"timeUnit"`
	Unit     PowerUnit   `json:"unit"`
	Values   []DateValue `json:"values"`
}

// SitePowerValues pairs a power series with its site.
type SitePowerValues struct {
	SiteID               int64        `json:"siteId"`
	PowerDataValueSeries EnergyValues `json:"powerDataValueSeries"`
}

// PowerBulk is the multi-site power response.
type PowerBulk struct {
	TimeUnit       TimeUnit          `json:"timeUnit"`
	Unit           PowerUnit         `json:"unit"`
	Count          int               `json:"count"`
	SiteEnergyList []SitePowerValues `json:"siteEnergyList"`
}

// PowerDetails is the per-meter power breakdown.
type PowerDetails struct {
	TimeUnit TimeUnit      `json:"timeUnit"`
	Unit     PowerUnit     `json:"unit"`
	Meters   []MeterValues `json:"meters"`
}

type powerEnvelope struct {
	Power *Power `json:"power"`
}

type powerBulkEnvelope struct {
	PowerDateValuesList *PowerBulk `json:"powerDateValuesList"`
}

type powerDetailsEnvelope struct {
	PowerDetails *PowerDetails `json:"powerDetails"`
}

// Power returns the site power measurements in 15-minute resolution. The
// period is limited to one month; longer periods make the server answer
// 403.
func (s SitesService) Power(ctx context.Context, siteID int64, params *DateTimeRangeParams) (*Power, error) {
	var env powerEnvelope
	if err := s.get(ctx, fmt.Sprintf("/site/%d/power.json", siteID), params, &env); err != nil {
		return nil, err
	}
	if env.Power == nil {
		return nil, missingKey("power")
	}
	return env.Power, nil
}

// PowerBulk returns power measurements for multiple sites.
func (s SitesService) PowerBulk(ctx context.Context, siteIDs []int64, params *DateTimeRangeParams) (*PowerBulk, error) {
	seg, err := sitesPathSegment(siteIDs)
	if err != nil {
		return nil, err
	}
	var env powerBulkEnvelope
	if err := s.get(ctx, fmt.Sprintf("/sites/%s/power.json", seg), params, &env); err != nil {
		return nil, err
	}
	if env.PowerDateValuesList == nil {
		return nil, missingKey("powerDateValuesList")
	}
	return env.PowerDateValuesList, nil
}

// PowerDetails returns detailed power measurements from the site meters:
// consumption, export (feed-in), import (purchase) and so on. The period
// is limited to one month.
func (s SitesService) PowerDetails(ctx context.Context, siteID int64, params *PowerDetailsParams) (*PowerDetails, error) {
	var env powerDetailsEnvelope
	if err := s.get(ctx, fmt.Sprintf("/site/%d/powerDetails.json", siteID), params, &env); err != nil {
		return nil, err
	}
	if env.PowerDetails == nil {
		return nil, missingKey("powerDetails")
	}
	return env.PowerDetails, nil
}
