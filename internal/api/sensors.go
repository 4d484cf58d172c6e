package api

import (
	"context"
	"fmt"
)

// SensorTelemetry is a single environmental measurement. Values are in
// the metric system; absent readings are nil.
type SensorTelemetry struct {
	Date               DateTime `json:"date"`
	AmbientTemperature *float64 `json:"ambientTemperature"`
	ModuleTemperature  *float64 `json:"moduleTemperature"`
	WindSpeed          *float64 `json:"windSpeed"`
}

// SensorData groups the telemetries reported through one gateway.
type SensorData struct {
	ConnectedTo string            `json:"connectedTo"`
	Count       int               `json:"count"`
	Telemetries []SensorTelemetry `json:"telemetries"`
}

type sensorDataEnvelope struct {
	SiteSensors *list[SensorData] `json:"siteSensors"`
}

// SensorData returns the data of all the sensors in the site, grouped by
// the gateway they are connected to.
func (s SitesService) SensorData(ctx context.Context, siteID int64, params *SensorDataParams) ([]SensorData, error) {
	var env sensorDataEnvelope
	if err := s.get(ctx, fmt.Sprintf("/site/%d/sensors.json", siteID), params, &env); err != nil {
		return nil, err
	}
	if env.SiteSensors == nil {
		return nil, missingKey("siteSensors")
	}
	return env.SiteSensors.Items, nil
}
