package cmd

import (
	"testing"

	"github.com/solarwatch/solaredge-cli/internal/api"
)

func TestParseDateFlag(t *testing.T) {
	d, err := parseDateFlag("start", "2024-06-01")
	if err != nil {
		t.Fatalf("parseDateFlag failed: %v", err)
	}
	if d.String() != "2024-06-01" {
		t.Errorf("Expected 2024-06-01, got %s", d)
	}

	if _, err := parseDateFlag("start", ""); err == nil {
		t.Error("Expected error for empty date")
	}
	if _, err := parseDateFlag("start", "01/06/2024"); err == nil {
		t.Error("Expected error for wrong date format")
	}
}

func TestParseDateTimeFlag(t *testing.T) {
	dt, err := parseDateTimeFlag("start", "2024-06-01 13:45:00")
	if err != nil {
		t.Fatalf("parseDateTimeFlag failed: %v", err)
	}
	if dt.String() != "2024-06-01 13:45:00" {
		t.Errorf("Expected full datetime, got %s", dt)
	}

	// A bare date means midnight.
	dt, err = parseDateTimeFlag("start", "2024-06-01")
	if err != nil {
		t.Fatalf("parseDateTimeFlag failed for bare date: %v", err)
	}
	if dt.String() != "2024-06-01 00:00:00" {
		t.Errorf("Expected midnight fallback, got %s", dt)
	}

	if _, err := parseDateTimeFlag("start", "yesterday"); err == nil {
		t.Error("Expected error for invalid datetime")
	}
}

func TestParseTimeUnit(t *testing.T) {
	tests := []struct {
		input string
		want  api.TimeUnit
	}{
		{"", ""},
		{"day", api.TimeUnitDay},
		{"QUARTER", api.TimeUnitQuarterOfAnHour},
		{"quarter", api.TimeUnitQuarterOfAnHour},
		{"HOUR", api.TimeUnitHour},
		{"year", api.TimeUnitYear},
	}
	for _, tt := range tests {
		got, err := parseTimeUnit(tt.input)
		if err != nil {
			t.Errorf("parseTimeUnit(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseTimeUnit(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	if _, err := parseTimeUnit("fortnight"); err == nil {
		t.Error("Expected error for invalid time unit")
	}
}

func TestParseMeterTypes(t *testing.T) {
	meters, err := parseMeterTypes("production, FeedIn")
	if err != nil {
		t.Fatalf("parseMeterTypes failed: %v", err)
	}
	if len(meters) != 2 || meters[0] != api.MeterProduction || meters[1] != api.MeterFeedIn {
		t.Errorf("Unexpected meters: %v", meters)
	}

	if _, err := parseMeterTypes("production,bogus"); err == nil {
		t.Error("Expected error for invalid meter")
	}
}

func TestParseSiteIDList(t *testing.T) {
	ids, err := parseSiteIDList("42, 43,44")
	if err != nil {
		t.Fatalf("parseSiteIDList failed: %v", err)
	}
	if len(ids) != 3 || ids[0] != 42 || ids[2] != 44 {
		t.Errorf("Unexpected IDs: %v", ids)
	}

	if _, err := parseSiteIDList(""); err == nil {
		t.Error("Expected error for empty list")
	}
	if _, err := parseSiteIDList("42,rooftop"); err == nil {
		t.Error("Expected error for non-numeric ID")
	}
}

func TestParseSortOrder(t *testing.T) {
	if order, err := parseSortOrder("desc"); err != nil || order != api.SortDescending {
		t.Errorf("Expected DESC, got %q (%v)", order, err)
	}
	if order, err := parseSortOrder(""); err != nil || order != "" {
		t.Errorf("Expected empty order, got %q (%v)", order, err)
	}
	if _, err := parseSortOrder("sideways"); err == nil {
		t.Error("Expected error for invalid order")
	}
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"abcd", "****"},
		{"SECRETKEY123", "********Y123"},
	}
	for _, tt := range tests {
		if got := maskKey(tt.input); got != tt.want {
			t.Errorf("maskKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
