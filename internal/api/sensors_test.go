package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSiteSensorData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/site/42/sensors.json" {
			t.Errorf("Expected path /site/42/sensors.json, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("startDate"); got != "2022-03-08 06:00:00" {
			t.Errorf("Expected startDate=\"2022-03-08 06:00:00\", got %q", got)
		}
		_, _ = w.Write([]byte(`{"siteSensors": {"count": 1, "data": [
			{
				"connectedTo": "Gateway 1",
				"count": 2,
				"telemetries": [
					{"date": "2022-03-08 06:00:00", "ambientTemperature": 11.2, "moduleTemperature": 15.0, "windSpeed": 3.1},
					{"date": "2022-03-08 06:05:00", "ambientTemperature": 11.4}
				]
			}
		]}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-key")
	data, err := client.Sites().SensorData(context.Background(), 42, &SensorDataParams{
		StartDate: NewDateTime(2022, time.March, 8, 6, 0, 0),
		EndDate:   NewDateTime(2022, time.March, 8, 18, 0, 0),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(data) != 1 {
		t.Fatalf("Expected 1 gateway group, got %d", len(data))
	}
	group := data[0]
	if group.ConnectedTo != "Gateway 1" {
		t.Errorf("Expected gateway \"Gateway 1\", got %q", group.ConnectedTo)
	}
	if len(group.Telemetries) != 2 {
		t.Fatalf("Expected 2 telemetries, got %d", len(group.Telemetries))
	}
	if group.Telemetries[0].WindSpeed == nil || *group.Telemetries[0].WindSpeed != 3.1 {
		t.Errorf("Expected windSpeed 3.1, got %v", group.Telemetries[0].WindSpeed)
	}
	if group.Telemetries[1].ModuleTemperature != nil {
		t.Error("Expected nil moduleTemperature for absent reading")
	}
}
