package api

import (
	"context"
	"fmt"
)

// Reporter is one inverter or SMI installed at a site.
type Reporter struct {
	Name         string   `json:"name"`
	Manufacturer string   `json:"manufacturer"`
	Model        string   `json:"model"`
	SerialNumber string   `json:"serialNumber"`
	KWpDC        *float64 `json:"kWpDC"`
}

// EquipmentSensor describes one sensor attached to a gateway.
type EquipmentSensor struct {
	Name        string            `json:"name"`
	Measurement SensorMeasurement `json:"measurement"`
	Type        SensorType        `json:"type"`
}

// SensorSummary lists the sensors connected through one gateway.
type SensorSummary struct {
	ConnectedTo string            `json:"connectedTo"`
	Count       int               `json:"count"`
	Sensors     []EquipmentSensor `json:"sensors"`
}

// PhaseData holds the AC measurements of a single phase. Apparent,
// active and reactive power are in VA; active and reactive power are
// reported starting communication board version 2.474.
type PhaseData struct {
	ACCurrent     float64 `json:"acCurrent"`
	ACVoltage     float64 `json:"acVoltage"`
	ACFrequency   float64 `json:"acFrequency"`
	ApparentPower float64 `json:"apparentPower"`
	ActivePower   float64 `json:"activePower"`
	ReactivePower float64 `json:"reactivePower"`
	CosPhi        float64 `json:"cosPhi"`
}

// Telemetry is one inverter data point. Temperature is in Celsius.
// LifetimeEnergy is reported starting communication board version 2.474.
type Telemetry struct {
	Date                  DateTime      `json:"date"`
	TotalActivePower      float64       `json:"totalActivePower"`
	DCVoltage             *float64      `json:"dcVoltage"`
	GroundFaultResistance *float64      `json:"groundFaultResistance"`
	PowerLimit            float64       `json:"powerLimit"`
	LifetimeEnergy        *float64      `json:"lifeTimeEnergy"`
	TotalEnergy           float64       `json:"totalEnergy"`
	Temperature           float64       `json:"temperature"`
	InverterMode          InverterMode  `json:"inverterMode"`
	OperationMode         OperationMode `json:"operationMode"`
	VL1ToN                *float64      `json:"vL1ToN"`
	VL2ToN                *float64      `json:"vL2ToN"`
	VL1To2                *float64      `json:"vL1To2"`
	VL2To3                *float64      `json:"vL2To3"`
	VL3To1                *float64      `json:"vL3To1"`
	L1Data                PhaseData     `json:"L1Data"`
	L2Data                *PhaseData    `json:"L2Data"`
	L3Data                *PhaseData    `json:"L3Data"`
}

// ChangeLogEntry is one equipment component replacement.
type ChangeLogEntry struct {
	SerialNumber string `json:"serialNumber"`
	PartNumber   string `json:"partNumber"`
	Date         Date   `json:"date"`
}

type reportersEnvelope struct {
	Reporters *list[Reporter] `json:"reporters"`
}

type sensorSummaryEnvelope struct {
	SiteSensors *list[SensorSummary] `json:"SiteSensors"`
}

type telemetriesEnvelope struct {
	Data *list[Telemetry] `json:"data"`
}

type changeLogEnvelope struct {
	ChangeLog *list[ChangeLogEntry] `json:"ChangeLog"`
}

// List returns the inverters and SMIs of a site.
func (s EquipmentService) List(ctx context.Context, siteID int64) ([]Reporter, error) {
	var env reportersEnvelope
	if err := s.get(ctx, fmt.Sprintf("/equipment/%d/list.json", siteID), nil, &env); err != nil {
		return nil, err
	}
	if env.Reporters == nil {
		return nil, missingKey("reporters")
	}
	return env.Reporters.Items, nil
}

// Sensors returns the sensors of a site, grouped by the gateway they are
// connected to.
func (s EquipmentService) Sensors(ctx context.Context, siteID int64) ([]SensorSummary, error) {
	var env sensorSummaryEnvelope
	if err := s.get(ctx, fmt.Sprintf("/equipment/%d/sensors.json", siteID), nil, &env); err != nil {
		return nil, err
	}
	if env.SiteSensors == nil {
		return nil, missingKey("SiteSensors")
	}
	return env.SiteSensors.Items, nil
}

// Data returns telemetries for a single inverter. The server limits the
// requested period to one week and answers 403 beyond that.
func (s EquipmentService) Data(ctx context.Context, siteID int64, serialNumber string, params *DateTimeRangeParams) ([]Telemetry, error) {
	path := fmt.Sprintf("/equipment/%d/%s/data.json", siteID, encodePathSegment(serialNumber))
	var env telemetriesEnvelope
	if err := s.get(ctx, path, params, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, missingKey("data")
	}
	return env.Data.Items, nil
}

// ChangeLog returns the component replacements of an inverter, optimizer,
// battery or gateway, ordered by date.
func (s EquipmentService) ChangeLog(ctx context.Context, siteID int64, serialNumber string) ([]ChangeLogEntry, error) {
	path := fmt.Sprintf("/equipment/%d/%s/changeLog.json", siteID, encodePathSegment(serialNumber))
	var env changeLogEnvelope
	if err := s.get(ctx, path, nil, &env); err != nil {
		return nil, err
	}
	if env.ChangeLog == nil {
		return nil, missingKey("ChangeLog")
	}
	return env.ChangeLog.Items, nil
}
