package api

import (
	"context"
	"fmt"
)

// Location is a site or account postal location.
type Location struct {
	Country     string  `json:"country"`
	City        string  `json:"city"`
	Address     string  `json:"address"`
	Address2    *string `json:"address2"`
	Zip         string  `json:"zip"`
	TimeZone    string  `json:"timeZone"`
	CountryCode string  `json:"countryCode"`
}

// Module describes the primary PV module installed at a site.
type Module struct {
	ManufacturerName string   `json:"manufacturerName"`
	ModelName        string   `json:"modelName"`
	MaximumPower     float64  `json:"maximumPower"`
	TemperatureCoef  *float64 `json:"temperatureCoef"`
}

// SiteURIs are the vendor-relative links returned with site details.
type SiteURIs struct {
	Details    string `json:"DETAILS"`
	DataPeriod string `json:"DATA_PERIOD"`
	Overview   string `json:"OVERVIEW"`
}

// PublicSettings reports whether a site is publicly visible.
type PublicSettings struct {
	Name     *string `json:"name"`
	IsPublic *bool   `json:"isPublic"`
}

// SiteDetails is a site's descriptive record: name, location, status,
// peak power and public settings.
type SiteDetails struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	AccountID        int64      `json:"accountId"`
	Status           SiteStatus `json:"status"`
	PeakPower        float64    `json:"peakPower"`
	LastUpdateTime   *DateTime  `json:"lastUpdateTime"`
	Currency         *string    `json:"currency"`
	InstallationDate DateTime   `json:"installationDate"`
	// PTODate is the permission-to-operate date.
	PTODate        *DateTime      `json:"ptoDate"`
	Notes          *string        `json:"notes"`
	SiteType       string         `json:"type"`
	Location       Location       `json:"location"`
	PrimaryModule  Module         `json:"primaryModule"`
	AlertQuantity  *int           `json:"alertQuantity"`
	AlertSeverity  *string        `json:"alertSeverity"`
	URIs           SiteURIs       `json:"uris"`
	PublicSettings PublicSettings `json:"publicSettings"`
}

// DataPeriod is the energy production start and end dates of a site.
// Both are nil when the site is not transmitting.
type DataPeriod struct {
	StartDate *DateTime `json:"startDate"`
	EndDate   *DateTime `json:"endDate"`
}

// SiteDataPeriod pairs a data period with its site for bulk responses.
type SiteDataPeriod struct {
	SiteID     int64      `json:"siteId"`
	DataPeriod DataPeriod `json:"dataPeriod"`
}

type sitesListEnvelope struct {
	Sites *list[SiteDetails] `json:"sites"`
}

type siteDetailsEnvelope struct {
	Details *SiteDetails `json:"details"`
}

type dataPeriodEnvelope struct {
	DataPeriod *DataPeriod `json:"dataPeriod"`
}

type dataPeriodBulkEnvelope struct {
	DatePeriodList *list[SiteDataPeriod] `json:"datePeriodList"`
}

// List returns the sites related to the account the API key belongs to.
// A nil params lists with the vendor defaults.
func (s SitesService) List(ctx context.Context, params *SitesListParams) ([]SiteDetails, error) {
	var env sitesListEnvelope
	if err := s.get(ctx, "/sites/list.json", params, &env); err != nil {
		return nil, err
	}
	if env.Sites == nil {
		return nil, missingKey("sites")
	}
	return env.Sites.Items, nil
}

// Details returns a site's descriptive record.
func (s SitesService) Details(ctx context.Context, siteID int64) (*SiteDetails, error) {
	var env siteDetailsEnvelope
	if err := s.get(ctx, fmt.Sprintf("/site/%d/details.json", siteID), nil, &env); err != nil {
		return nil, err
	}
	if env.Details == nil {
		return nil, missingKey("details")
	}
	return env.Details, nil
}

// DataPeriod returns the energy production start and end dates of a site.
func (s SitesService) DataPeriod(ctx context.Context, siteID int64) (*DataPeriod, error) {
	var env dataPeriodEnvelope
	if err := s.get(ctx, fmt.Sprintf("/site/%d/dataPeriod.json", siteID), nil, &env); err != nil {
		return nil, err
	}
	if env.DataPeriod == nil {
		return nil, missingKey("dataPeriod")
	}
	return env.DataPeriod, nil
}

// DataPeriodBulk returns the data periods of multiple sites. Site IDs the
// key has no permission for make the server answer 403.
func (s SitesService) DataPeriodBulk(ctx context.Context, siteIDs []int64) ([]SiteDataPeriod, error) {
	seg, err := sitesPathSegment(siteIDs)
	if err != nil {
		return nil, err
	}
	var env dataPeriodBulkEnvelope
	if err := s.get(ctx, fmt.Sprintf("/sites/%s/dataPeriod.json", seg), nil, &env); err != nil {
		return nil, err
	}
	if env.DatePeriodList == nil {
		return nil, missingKey("datePeriodList")
	}
	return env.DatePeriodList.Items, nil
}
