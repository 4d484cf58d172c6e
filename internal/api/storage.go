package api

import (
	"context"
	"fmt"
)

// BatteryTelemetry is a single storage telemetry sample.
type BatteryTelemetry struct {
	Timestamp DateTime `json:"timeStamp"`
	// Power is positive while charging, negative while discharging.
	Power        float64      `json:"power"`
	BatteryState BatteryState `json:"batteryState"`
	// LifetimeEnergyCharged is the energy charged into the battery over
	// its lifetime, in Wh.
	LifetimeEnergyCharged    float64 `json:"lifeTimeEnergyCharged"`
	LifetimeEnergyDischarged float64 `json:"lifeTimeEnergyDischarged"`
	// FullPackEnergyAvailable is the maximum energy (Wh) the battery can
	// currently store; state of health can be derived from it against
	// the nameplate value.
	FullPackEnergyAvailable float64 `json:"fullPackEnergyAvailable"`
	// InternalTemp is the battery internal temperature in Celsius.
	InternalTemp float64 `json:"internalTemp"`
	// ACGridCharging is the AC energy used to charge from the grid
	// within the requested range, in Wh.
	ACGridCharging float64 `json:"ACGridCharging"`
	// StateOfCharge is the charge as a percentage of available capacity.
	StateOfCharge float64 `json:"stateOfCharge"`
}

// StorageBattery is one battery's metadata and telemetry samples.
type StorageBattery struct {
	SerialNumber string `json:"serialNumber"`
	// Nameplate is the nominal capacity of the battery.
	Nameplate      float64            `json:"nameplate"`
	ModelNumber    string             `json:"modelNumber"`
	TelemetryCount int                `json:"telemetryCount"`
	Telemetries    []BatteryTelemetry `json:"telemetries"`
}

type storageDataEnvelope struct {
	StorageData *list[StorageBattery] `json:"storageData"`
}

// StorageData returns battery state of energy, power and lifetime energy.
// Applicable to systems with batteries; the period is limited to one
// week.
func (s SitesService) StorageData(ctx context.Context, siteID int64, params *StorageDataParams) ([]StorageBattery, error) {
	var env storageDataEnvelope
	if err := s.get(ctx, fmt.Sprintf("/site/%d/storageData.json", siteID), params, &env); err != nil {
		return nil, err
	}
	if env.StorageData == nil {
		return nil, missingKey("storageData")
	}
	return env.StorageData.Items, nil
}
