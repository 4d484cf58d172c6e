package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSiteEnergy(t *testing.T) {
	tests := []struct {
		name         string
		params       *EnergyParams
		statusCode   int
		responseBody string
		expectError  bool
		expectValues int
	}{
		{
			name: "successful series",
			params: &EnergyParams{
				StartDate: NewDate(2022, time.March, 1),
				EndDate:   NewDate(2022, time.March, 3),
			},
			statusCode: http.StatusOK,
			responseBody: `{"energy": {"timeUnit": "DAY", "unit": "Wh", "values": [
				{"date": "2022-03-01 00:00:00", "value": 12000.5},
				{"date": "2022-03-02 00:00:00", "value": null},
				{"date": "2022-03-03 00:00:00", "value": 9800.0}
			]}}`,
			expectValues: 3,
		},
		{
			name: "period too long",
			params: &EnergyParams{
				StartDate: NewDate(2020, time.January, 1),
				EndDate:   NewDate(2022, time.March, 1),
				TimeUnit:  TimeUnitHour,
			},
			statusCode:   http.StatusForbidden,
			responseBody: `{"String": "period exceeds limit"}`,
			expectError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/site/42/energy.json" {
					t.Errorf("Expected path /site/42/energy.json, got %s", r.URL.Path)
				}
				if got := r.URL.Query().Get("startDate"); got == "" {
					t.Error("Expected startDate query parameter")
				}
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.responseBody))
			}))
			defer server.Close()

			client := newTestClient(server.URL, "test-key")
			energy, err := client.Sites().Energy(context.Background(), 42, tt.params)

			if tt.expectError {
				if err == nil {
					t.Fatal("Expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if energy.TimeUnit != TimeUnitDay {
				t.Errorf("Expected timeUnit DAY, got %s", energy.TimeUnit)
			}
			if energy.Unit != EnergyWattHour {
				t.Errorf("Expected unit Wh, got %s", energy.Unit)
			}
			if len(energy.Values) != tt.expectValues {
				t.Fatalf("Expected %d values, got %d", tt.expectValues, len(energy.Values))
			}
			if energy.Values[1].Value != nil {
				t.Errorf("Expected nil value for missing data, got %v", *energy.Values[1].Value)
			}
			if energy.Values[0].Value == nil || *energy.Values[0].Value != 12000.5 {
				t.Errorf("Expected first value 12000.5, got %v", energy.Values[0].Value)
			}
		})
	}
}

func TestSiteEnergyMissingRange(t *testing.T) {
	// Parameter validation happens before any request is issued.
	client := newTestClient("http://unused", "test-key")
	_, err := client.Sites().Energy(context.Background(), 42, &EnergyParams{})
	var queryErr *QueryError
	if !errors.As(err, &queryErr) {
		t.Fatalf("Expected *QueryError, got %T: %v", err, err)
	}
}

func TestSiteEnergyBulk(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sites/1,2/energy.json" {
			t.Errorf("Expected path /sites/1,2/energy.json, got %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"sitesEnergy": {"timeUnit": "DAY", "unit": "Wh", "count": 2, "siteEnergyList": [
			{"siteId": 1, "energyValues": {"values": [{"date": "2022-03-01 00:00:00", "value": 100.0}]}},
			{"siteId": 2, "energyValues": {"values": [{"date": "2022-03-01 00:00:00", "value": 200.0}]}}
		]}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-key")
	bulk, err := client.Sites().EnergyBulk(context.Background(), []int64{1, 2}, &EnergyParams{
		StartDate: NewDate(2022, time.March, 1),
		EndDate:   NewDate(2022, time.March, 2),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if bulk.Count != 2 {
		t.Errorf("Expected count 2, got %d", bulk.Count)
	}
	if len(bulk.SiteEnergyList) != 2 {
		t.Fatalf("Expected 2 series, got %d", len(bulk.SiteEnergyList))
	}
	if bulk.SiteEnergyList[1].SiteID != 2 {
		t.Errorf("Expected second site 2, got %d", bulk.SiteEnergyList[1].SiteID)
	}
}

func TestSiteTimeFrameEnergy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/site/42/timeFrameEnergy.json" {
			t.Errorf("Expected path /site/42/timeFrameEnergy.json, got %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"timeFrameEnergy": {
			"energy": 761812.5,
			"unit": "Wh",
			"measuredBy": "INVERTER",
			"startLifetimeEnergy": {"date": "2022-03-01", "energy": 1000.0, "unit": "Wh"},
			"endLifetimeEnergy": {"date": "2022-03-08", "energy": 762812.5, "unit": "Wh"}
		}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-key")
	tfe, err := client.Sites().TimeFrameEnergy(context.Background(), 42, &TimeFrameEnergyParams{
		StartDate: NewDate(2022, time.March, 1),
		EndDate:   NewDate(2022, time.March, 8),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tfe.Energy == nil || *tfe.Energy != 761812.5 {
		t.Errorf("Expected energy 761812.5, got %v", tfe.Energy)
	}
	if tfe.MeasuredBy == nil || *tfe.MeasuredBy != MeasuredByInverter {
		t.Errorf("Expected measuredBy INVERTER, got %v", tfe.MeasuredBy)
	}
	if tfe.StartLifetimeEnergy.Date.String() != "2022-03-01" {
		t.Errorf("Expected start lifetime date 2022-03-01, got %s", tfe.StartLifetimeEnergy.Date)
	}
}

func TestSiteTimeFrameEnergyBulk(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sites/1,2/timeFrameEnergy.json" {
			t.Errorf("Expected path /sites/1,2/timeFrameEnergy.json, got %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"timeFrameEnergyList": {"count": 1, "timeFrameEnergyList": [
			{"siteId": 1, "timeFrameEnergy": {
				"energy": 10.0,
				"unit": "Wh",
				"startLifetimeEnergy": {"date": "2022-03-01", "energy": 0.0, "unit": "Wh"},
				"endLifetimeEnergy": {"date": "2022-03-02", "energy": 10.0, "unit": "Wh"}
			}}
		]}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-key")
	items, err := client.Sites().TimeFrameEnergyBulk(context.Background(), []int64{1, 2}, &TimeFrameEnergyParams{
		StartDate: NewDate(2022, time.March, 1),
		EndDate:   NewDate(2022, time.March, 2),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	if items[0].SiteID != 1 {
		t.Errorf("Expected site 1, got %d", items[0].SiteID)
	}
}

func TestSiteEnergyDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/site/42/energyDetails.json" {
			t.Errorf("Expected path /site/42/energyDetails.json, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("meters"); got != "Production,SelfConsumption" {
			t.Errorf("Expected meters=\"Production,SelfConsumption\", got %q", got)
		}
		_, _ = w.Write([]byte(`{"energyDetails": {"timeUnit": "WEEK", "unit": "Wh", "meters": [
			{"type": "Production", "values": [{"date": "2022-02-28 00:00:00", "value": 500.0}]},
			{"type": "SelfConsumption", "values": [{"date": "2022-02-28 00:00:00"}]}
		]}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-key")
	details, err := client.Sites().EnergyDetails(context.Background(), 42, &MeterRangeParams{
		StartTime: NewDateTime(2022, time.February, 28, 0, 0, 0),
		EndTime:   NewDateTime(2022, time.March, 6, 0, 0, 0),
		TimeUnit:  TimeUnitWeek,
		Meters:    []MeterType{MeterProduction, MeterSelfConsumption},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(details.Meters) != 2 {
		t.Fatalf("Expected 2 meters, got %d", len(details.Meters))
	}
	if details.Meters[1].Type != MeterSelfConsumption {
		t.Errorf("Expected SelfConsumption, got %s", details.Meters[1].Type)
	}
	if details.Meters[1].Values[0].Value != nil {
		t.Error("Expected nil value for absent reading")
	}
}
