package api

import (
	"net/url"
	"strconv"
	"strings"
)

// Request parameter structs serialize themselves into query strings.
// Every field is optional unless noted; zero values are omitted from the
// query entirely. Required date ranges are validated before any request
// is sent.

func joinTokens[T ~string](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, ",")
}

// SitesListParams filters and orders the sites list.
type SitesListParams struct {
	// Size is the maximum number of sites returned (vendor cap 100,
	// default 100). Zero means server default.
	Size int
	// StartIndex is the first site index to return, for paging past the
	// vendor's cap.
	StartIndex int
	// SearchText matches against name, notes, address, city, zip code,
	// full address and country.
	SearchText   string
	SortProperty SiteSortBy
	SortOrder    SortOrder
	// Status selects sites by status; the vendor default is
	// "Active,Pending".
	Status []SiteStatus
}

func (p *SitesListParams) values() (url.Values, error) {
	q := url.Values{}
	if p == nil {
		return q, nil
	}
	if p.Size > 0 {
		q.Set("size", strconv.Itoa(p.Size))
	}
	if p.StartIndex > 0 {
		q.Set("startIndex", strconv.Itoa(p.StartIndex))
	}
	if p.SearchText != "" {
		q.Set("searchText", p.SearchText)
	}
	if p.SortProperty != "" {
		q.Set("sortProperty", string(p.SortProperty))
	}
	if p.SortOrder != "" {
		q.Set("sortOrder", string(p.SortOrder))
	}
	if len(p.Status) > 0 {
		q.Set("status", joinTokens(p.Status))
	}
	return q, nil
}

// EnergyParams selects the period and granularity for energy measurements.
type EnergyParams struct {
	// StartDate and EndDate are required.
	StartDate Date
	EndDate   Date
	// TimeUnit defaults to DAY on the server.
	TimeUnit TimeUnit
}

func (p *EnergyParams) values() (url.Values, error) {
	if p == nil || p.StartDate.IsZero() || p.EndDate.IsZero() {
		return nil, &QueryError{Field: "startDate/endDate", Reason: "required"}
	}
	q := url.Values{}
	q.Set("startDate", p.StartDate.String())
	q.Set("endDate", p.EndDate.String())
	if p.TimeUnit != "" {
		q.Set("timeUnit", string(p.TimeUnit))
	}
	return q, nil
}

// TimeFrameEnergyParams selects the period for total energy production.
type TimeFrameEnergyParams struct {
	// StartDate and EndDate are required.
	StartDate Date
	EndDate   Date
}

func (p *TimeFrameEnergyParams) values() (url.Values, error) {
	if p == nil || p.StartDate.IsZero() || p.EndDate.IsZero() {
		return nil, &QueryError{Field: "startDate/endDate", Reason: "required"}
	}
	q := url.Values{}
	q.Set("startDate", p.StartDate.String())
	q.Set("endDate", p.EndDate.String())
	return q, nil
}

// DateTimeRangeParams is the start/end time window used by the power and
// equipment telemetry endpoints.
type DateTimeRangeParams struct {
	// StartTime and EndTime are required.
	StartTime DateTime
	EndTime   DateTime
}

func (p *DateTimeRangeParams) values() (url.Values, error) {
	if p == nil || p.StartTime.IsZero() || p.EndTime.IsZero() {
		return nil, &QueryError{Field: "startTime/endTime", Reason: "required"}
	}
	q := url.Values{}
	q.Set("startTime", p.StartTime.String())
	q.Set("endTime", p.EndTime.String())
	return q, nil
}

// PowerDetailsParams selects the window and meters for detailed power
// measurements.
type PowerDetailsParams struct {
	// StartTime and EndTime are required.
	StartTime DateTime
	EndTime   DateTime
	// Meters limits the response to specific meters; all are returned
	// when omitted.
	Meters []MeterType
}

func (p *PowerDetailsParams) values() (url.Values, error) {
	if p == nil || p.StartTime.IsZero() || p.EndTime.IsZero() {
		return nil, &QueryError{Field: "startTime/endTime", Reason: "required"}
	}
	q := url.Values{}
	q.Set("startTime", p.StartTime.String())
	q.Set("endTime", p.EndTime.String())
	if len(p.Meters) > 0 {
		q.Set("meters", joinTokens(p.Meters))
	}
	return q, nil
}

// MeterRangeParams selects the window, granularity and meters for the
// energy details and site meters endpoints.
type MeterRangeParams struct {
	// StartTime and EndTime are required.
	StartTime DateTime
	EndTime   DateTime
	// TimeUnit defaults to DAY on the server.
	TimeUnit TimeUnit
	// Meters limits the response to specific meters; all are returned
	// when omitted.
	Meters []MeterType
}

func (p *MeterRangeParams) values() (url.Values, error) {
	if p == nil || p.StartTime.IsZero() || p.EndTime.IsZero() {
		return nil, &QueryError{Field: "startTime/endTime", Reason: "required"}
	}
	q := url.Values{}
	q.Set("startTime", p.StartTime.String())
	q.Set("endTime", p.EndTime.String())
	if p.TimeUnit != "" {
		q.Set("timeUnit", string(p.TimeUnit))
	}
	if len(p.Meters) > 0 {
		q.Set("meters", joinTokens(p.Meters))
	}
	return q, nil
}

// StorageDataParams selects the window and batteries for storage telemetry.
type StorageDataParams struct {
	// StartTime and EndTime are required.
	StartTime DateTime
	EndTime   DateTime
	// Serials limits the response to specific battery serial numbers;
	// all batteries in the site are returned when omitted.
	Serials []string
}

func (p *StorageDataParams) values() (url.Values, error) {
	if p == nil || p.StartTime.IsZero() || p.EndTime.IsZero() {
		return nil, &QueryError{Field: "startTime/endTime", Reason: "required"}
	}
	q := url.Values{}
	q.Set("startTime", p.StartTime.String())
	q.Set("endTime", p.EndTime.String())
	if len(p.Serials) > 0 {
		q.Set("serials", strings.Join(p.Serials, ","))
	}
	return q, nil
}

// SensorDataParams selects the window for sensor readings. The vendor
// names these parameters startDate/endDate but expects full datetimes.
type SensorDataParams struct {
	// StartDate and EndDate are required.
	StartDate DateTime
	EndDate   DateTime
}

func (p *SensorDataParams) values() (url.Values, error) {
	if p == nil || p.StartDate.IsZero() || p.EndDate.IsZero() {
		return nil, &QueryError{Field: "startDate/endDate", Reason: "required"}
	}
	q := url.Values{}
	q.Set("startDate", p.StartDate.String())
	q.Set("endDate", p.EndDate.String())
	return q, nil
}

// ImageParams controls scaling of the site image. The server keeps the
// aspect ratio, so the returned image fits within the given bounds.
type ImageParams struct {
	MaxWidth  int
	MaxHeight int
	// Hash short-circuits the download: if it matches the stored image
	// hash the server answers 304. Ignored when scaling is requested.
	Hash int64
}

func (p *ImageParams) values() (url.Values, error) {
	q := url.Values{}
	if p == nil {
		return q, nil
	}
	if p.MaxWidth > 0 {
		q.Set("maxWidth", strconv.Itoa(p.MaxWidth))
	}
	if p.MaxHeight > 0 {
		q.Set("maxHeight", strconv.Itoa(p.MaxHeight))
	}
	if p.Hash > 0 {
		q.Set("hash", strconv.FormatInt(p.Hash, 10))
	}
	return q, nil
}

// EnvBenefitsParams selects the unit system for gas emission savings.
// The logged-in user's units are used when omitted.
type EnvBenefitsParams struct {
	SystemUnits SystemUnits
}

func (p *EnvBenefitsParams) values() (url.Values, error) {
	q := url.Values{}
	if p == nil {
		return q, nil
	}
	if p.SystemUnits != "" {
		q.Set("systemUnits", string(p.SystemUnits))
	}
	return q, nil
}

// AccountsListParams filters and orders the accounts list.
type AccountsListParams struct {
	// Size is the maximum number of accounts returned (vendor cap 100,
	// default 100). Zero means server default.
	Size int
	// StartIndex is the first account index to return.
	StartIndex int
	// SearchText matches against name, notes, email, country, state,
	// city, zip and full address.
	SearchText   string
	SortProperty AccountSortBy
	SortOrder    SortOrder
}

func (p *AccountsListParams) values() (url.Values, error) {
	q := url.Values{}
	if p == nil {
		return q, nil
	}
	if p.Size > 0 {
		q.Set("size", strconv.Itoa(p.Size))
	}
	if p.StartIndex > 0 {
		q.Set("startIndex", strconv.Itoa(p.StartIndex))
	}
	if p.SearchText != "" {
		q.Set("searchText", p.SearchText)
	}
	if p.SortProperty != "" {
		q.Set("sortProperty", string(p.SortProperty))
	}
	if p.SortOrder != "" {
		q.Set("sortOrder", string(p.SortOrder))
	}
	return q, nil
}
