package api

import (
	"context"
	"fmt"
)

// DateValue is one point of a measurement series. Value is nil when no
// data exists for that time.
type DateValue struct {
	Date  DateTime `json:"date"`
	Value *float64 `json:"value"`
}

// Energy is a site's energy production series.
type Energy struct {
	TimeUnit TimeUnit    `json:"timeUnit"`
	Unit     EnergyUnit  `json:"unit"`
	Values   []DateValue `json:"values"`
}

// EnergyValues is a bare measurement series within bulk responses.
type EnergyValues struct {
	Values []DateValue `json:"values"`
}

// SiteEnergyValues pairs an energy series with its site.
type SiteEnergyValues struct {
	SiteID       int64        `json:"siteId"`
	EnergyValues EnergyValues `json:"energyValues"`
}

// EnergyBulk is the multi-site energy response. It is shaped differently
// from the singular Energy: one series per site plus a count.
type EnergyBulk struct {
	TimeUnit       TimeUnit           `json:"timeUnit"`
	Unit           EnergyUnit         `json:"unit"`
	Count          int                `json:"count"`
	SiteEnergyList []SiteEnergyValues `json:"siteEnergyList"`
}

// LifetimeEnergy is a lifetime energy reading at a given date.
type LifetimeEnergy struct {
	Date   Date       `json:"date"`
	Energy *float64   `json:"energy"`
	Unit   EnergyUnit `json:"unit"`
}

// TimeFrameEnergy is the total energy produced in a requested period.
type TimeFrameEnergy struct {
	Energy              *float64       `json:"energy"`
	Unit                EnergyUnit     `json:"unit"`
	MeasuredBy          *Measurer      `json:"measuredBy"`
	StartLifetimeEnergy LifetimeEnergy `json:"startLifetimeEnergy"`
	EndLifetimeEnergy   LifetimeEnergy `json:"endLifetimeEnergy"`
}

// SiteTimeFrameEnergy pairs a period total with its site.
type SiteTimeFrameEnergy struct {
	SiteID          int64           `json:"siteId"`
	TimeFrameEnergy TimeFrameEnergy `json:"timeFrameEnergy"`
}

// MeterValues is one meter's series in a detailed measurement response.
type MeterValues struct {
	Type   MeterType   `json:"type"`
	Values []DateValue `json:"values"`
}

// EnergyDetails is the per-meter energy breakdown (consumption, feed-in,
// purchase and so on).
type EnergyDetails struct {
	TimeUnit TimeUnit      `json:"timeUnit"`
	Unit     EnergyUnit    `json:"unit"`
	Meters   []MeterValues `json:"meters"`
}

type energyEnvelope struct {
	Energy *Energy `json:"energy"`
}

type energyBulkEnvelope struct {
	SitesEnergy *EnergyBulk `json:"sitesEnergy"`
}

type timeFrameEnergyEnvelope struct {
	TimeFrameEnergy *TimeFrameEnergy `json:"timeFrameEnergy"`
}

type timeFrameEnergyBulkEnvelope struct {
	TimeFrameEnergyList *list[SiteTimeFrameEnergy] `json:"timeFrameEnergyList"`
}

type energyDetailsEnvelope struct {
	EnergyDetails *EnergyDetails `json:"energyDetails"`
}

// Energy returns the site energy measurements for a period. The period is
// limited to a year at DAY resolution and a month at QUARTER_OF_AN_HOUR
// or HOUR resolution; longer periods make the server answer 403.
func (s SitesService) Energy(ctx context.Context, siteID int64, params *EnergyParams) (*Energy, error) {
	var env energyEnvelope
	if err := s.get(ctx, fmt.Sprintf("/site/%d/energy.json", siteID), params, &env); err != nil {
		return nil, err
	}
	if env.Energy == nil {
		return nil, missingKey("energy")
	}
	return env.Energy, nil
}

// EnergyBulk returns energy measurements for multiple sites.
func (s SitesService) EnergyBulk(ctx context.Context, siteIDs []int64, params *EnergyParams) (*EnergyBulk, error) {
	seg, err := sitesPathSegment(siteIDs)
	if err != nil {
		return nil, err
	}
	var env energyBulkEnvelope
	if err := s.get(ctx, fmt.Sprintf("/sites/%s/energy.json", seg), params, &env); err != nil {
		return nil, err
	}
	if env.SitesEnergy == nil {
		return nil, missingKey("sitesEnergy")
	}
	return env.SitesEnergy, nil
}

// TimeFrameEnergy returns the site's total on-grid energy for a period.
// Sites with storage can differ from the dashboard figure, which uses
// Energy instead.
func (s SitesService) TimeFrameEnergy(ctx context.Context, siteID int64, params *TimeFrameEnergyParams) (*TimeFrameEnergy, error) {
	var env timeFrameEnergyEnvelope
	if err := s.get(ctx, fmt.Sprintf("/site/%d/timeFrameEnergy.json", siteID), params, &env); err != nil {
		return nil, err
	}
	if env.TimeFrameEnergy == nil {
		return nil, missingKey("timeFrameEnergy")
	}
	return env.TimeFrameEnergy, nil
}

// TimeFrameEnergyBulk returns period totals for multiple sites.
func (s SitesService) TimeFrameEnergyBulk(ctx context.Context, siteIDs []int64, params *TimeFrameEnergyParams) ([]SiteTimeFrameEnergy, error) {
	seg, err := sitesPathSegment(siteIDs)
	if err != nil {
		return nil, err
	}
	var env timeFrameEnergyBulkEnvelope
	if err := s.get(ctx, fmt.Sprintf("/sites/%s/timeFrameEnergy.json", seg), params, &env); err != nil {
		return nil, err
	}
	if env.TimeFrameEnergyList == nil {
		return nil, missingKey("timeFrameEnergyList")
	}
	return env.TimeFrameEnergyList.Items, nil
}

// EnergyDetails returns detailed energy measurements per meter. Virtual
// meters such as self-consumption are calculated from the physical meters
// and the inverters.
func (s SitesService) EnergyDetails(ctx context.Context, siteID int64, params *MeterRangeParams) (*EnergyDetails, error) {
	var env energyDetailsEnvelope
	if err := s.get(ctx, fmt.Sprintf("/site/%d/energyDetails.json", siteID), params, &env); err != nil {
		return nil, err
	}
	if env.EnergyDetails == nil {
		return nil, missingKey("energyDetails")
	}
	return env.EnergyDetails, nil
}
