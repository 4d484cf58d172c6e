package api

import (
	"context"
	"fmt"
)

// LifetimeData is the site's lifetime production and revenue.
type LifetimeData struct {
	Energy  float64 `json:"energy"`
	Revenue float64 `json:"revenue"`
}

// EnergyData is an energy total for a fixed period.
type EnergyData struct {
	Energy float64 `json:"energy"`
}

// PowerData is a momentary power reading.
type PowerData struct {
	Power float64 `json:"power"`
}

// Overview is the site dashboard summary: lifetime, last year/month/day
// energy and current power.
type Overview struct {
	LastUpdateTime DateTime     `json:"lastUpdateTime"`
	LifetimeData   LifetimeData `json:"lifeTimeData"`
	LastYearData   EnergyData   `json:"lastYearData"`
	LastMonthData  EnergyData   `json:"lastMonthData"`
	LastDayData    EnergyData   `json:"lastDayData"`
	CurrentPower   PowerData    `json:"currentPower"`
	MeasuredBy     *Measurer    `json:"measuredBy"`
}

// SiteOverview pairs an overview with its site for bulk responses.
type SiteOverview struct {
	SiteID       int64    `json:"siteId"`
	SiteOverview Overview `json:"siteOverview"`
}

type overviewEnvelope struct {
	Overview *Overview `json:"overview"`
}

type overviewBulkEnvelope struct {
	SitesOverviews *list[SiteOverview] `json:"sitesOverviews"`
}

// Overview returns the site overview data.
func (s SitesService) Overview(ctx context.Context, siteID int64) (*Overview, error) {
	var env overviewEnvelope
	if err := s.get(ctx, fmt.Sprintf("/site/%d/overview.json", siteID), nil, &env); err != nil {
		return nil, err
	}
	if env.Overview == nil {
		return nil, missingKey("overview")
	}
	return env.Overview, nil
}

// OverviewBulk returns the overview data of multiple sites.
func (s SitesService) OverviewBulk(ctx context.Context, siteIDs []int64) ([]SiteOverview, error) {
	seg, err := sitesPathSegment(siteIDs)
	if err != nil {
		return nil, err
	}
	var env overviewBulkEnvelope
	if err := s.get(ctx, fmt.Sprintf("/sites/%s/overview.json", seg), nil, &env); err != nil {
		return nil, err
	}
	if env.SitesOverviews == nil {
		return nil, missingKey("sitesOverviews")
	}
	return env.SitesOverviews.Items, nil
}
