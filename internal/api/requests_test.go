package api

import (
	"errors"
	"testing"
	"time"
)

func TestSitesListParamsValues(t *testing.T) {
	tests := []struct {
		name   string
		params *SitesListParams
		want   map[string]string
		absent []string
	}{
		{
			name:   "nil params",
			params: nil,
			absent: []string{"size", "startIndex", "searchText", "sortProperty", "sortOrder", "status"},
		},
		{
			name:   "zero values omitted",
			params: &SitesListParams{},
			absent: []string{"size", "startIndex", "searchText", "sortProperty", "sortOrder", "status"},
		},
		{
			name: "all fields",
			params: &SitesListParams{
				Size:         10,
				StartIndex:   40,
				SearchText:   "roof",
				SortProperty: SiteSortByName,
				SortOrder:    SortDescending,
				Status:       []SiteStatus{SiteStatusActive, SiteStatusPending},
			},
			want: map[string]string{
				"size":         "10",
				"startIndex":   "40",
				"searchText":   "roof",
				"sortProperty": "Name",
				"sortOrder":    "DESC",
				"status":       "Active,Pending",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := tt.params.values()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			for key, want := range tt.want {
				if got := q.Get(key); got != want {
					t.Errorf("Expected %s=%q, got %q", key, want, got)
				}
			}
			for _, key := range tt.absent {
				if q.Has(key) {
					t.Errorf("Expected %s to be omitted, got %q", key, q.Get(key))
				}
			}
		})
	}
}

func TestEnergyParamsRequiresRange(t *testing.T) {
	tests := []struct {
		name   string
		params *EnergyParams
	}{
		{name: "nil params", params: nil},
		{name: "missing start", params: &EnergyParams{EndDate: NewDate(2022, time.March, 8)}},
		{name: "missing end", params: &EnergyParams{StartDate: NewDate(2022, time.March, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.params.values()
			var queryErr *QueryError
			if !errors.As(err, &queryErr) {
				t.Fatalf("Expected *QueryError, got %T: %v", err, err)
			}
		})
	}
}

func TestEnergyParamsValues(t *testing.T) {
	p := &EnergyParams{
		StartDate: NewDate(2022, time.March, 1),
		EndDate:   NewDate(2022, time.March, 8),
		TimeUnit:  TimeUnitHour,
	}
	q, err := p.values()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := q.Get("startDate"); got != "2022-03-01" {
		t.Errorf("Expected startDate=2022-03-01, got %q", got)
	}
	if got := q.Get("endDate"); got != "2022-03-08" {
		t.Errorf("Expected endDate=2022-03-08, got %q", got)
	}
	if got := q.Get("timeUnit"); got != "HOUR" {
		t.Errorf("Expected timeUnit=HOUR, got %q", got)
	}

	// TimeUnit is the server default when omitted.
	p.TimeUnit = ""
	q, err = p.values()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if q.Has("timeUnit") {
		t.Errorf("Expected timeUnit to be omitted, got %q", q.Get("timeUnit"))
	}
}

func TestDateTimeRangeParamsValues(t *testing.T) {
	p := &DateTimeRangeParams{
		StartTime: NewDateTime(2022, time.March, 8, 0, 0, 0),
		EndTime:   NewDateTime(2022, time.March, 8, 23, 59, 59),
	}
	q, err := p.values()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := q.Get("startTime"); got != "2022-03-08 00:00:00" {
		t.Errorf("Expected startTime=\"2022-03-08 00:00:00\", got %q", got)
	}
	if got := q.Get("endTime"); got != "2022-03-08 23:59:59" {
		t.Errorf("Expected endTime=\"2022-03-08 23:59:59\", got %q", got)
	}

	_, err = (&DateTimeRangeParams{}).values()
	var queryErr *QueryError
	if !errors.As(err, &queryErr) {
		t.Fatalf("Expected *QueryError, got %T: %v", err, err)
	}
}

func TestMeterRangeParamsValues(t *testing.T) {
	p := &MeterRangeParams{
		StartTime: NewDateTime(2022, time.March, 1, 0, 0, 0),
		EndTime:   NewDateTime(2022, time.March, 8, 0, 0, 0),
		TimeUnit:  TimeUnitWeek,
		Meters:    []MeterType{MeterProduction, MeterFeedIn},
	}
	q, err := p.values()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := q.Get("meters"); got != "Production,FeedIn" {
		t.Errorf("Expected meters=\"Production,FeedIn\", got %q", got)
	}
	if got := q.Get("timeUnit"); got != "WEEK" {
		t.Errorf("Expected timeUnit=WEEK, got %q", got)
	}
}

func TestStorageDataParamsValues(t *testing.T) {
	p := &StorageDataParams{
		StartTime: NewDateTime(2022, time.March, 1, 0, 0, 0),
		EndTime:   NewDateTime(2022, time.March, 2, 0, 0, 0),
		Serials:   []string{"BAT1", "BAT2"},
	}
	q, err := p.values()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := q.Get("serials"); got != "BAT1,BAT2" {
		t.Errorf("Expected serials=\"BAT1,BAT2\", got %q", got)
	}
}

func TestSensorDataParamsUseDateKeysWithTimeValues(t *testing.T) {
	// The vendor names these startDate/endDate but expects full datetimes.
	p := &SensorDataParams{
		StartDate: NewDateTime(2022, time.March, 8, 6, 0, 0),
		EndDate:   NewDateTime(2022, time.March, 8, 18, 0, 0),
	}
	q, err := p.values()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := q.Get("startDate"); got != "2022-03-08 06:00:00" {
		t.Errorf("Expected startDate=\"2022-03-08 06:00:00\", got %q", got)
	}
	if got := q.Get("endDate"); got != "2022-03-08 18:00:00" {
		t.Errorf("Expected endDate=\"2022-03-08 18:00:00\", got %q", got)
	}
}

func TestImageParamsValues(t *testing.T) {
	q, err := (&ImageParams{MaxWidth: 640, Hash: 123456}).values()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := q.Get("maxWidth"); got != "640" {
		t.Errorf("Expected maxWidth=640, got %q", got)
	}
	if q.Has("maxHeight") {
		t.Error("Expected maxHeight to be omitted")
	}
	if got := q.Get("hash"); got != "123456" {
		t.Errorf("Expected hash=123456, got %q", got)
	}
}
