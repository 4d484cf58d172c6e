package api

import (
	"context"
	"fmt"
)

// GasEmissionSaved is the emission mass avoided by the site's production.
type GasEmissionSaved struct {
	Units GasEmissionUnit `json:"units"`
	CO2   float64         `json:"co2"`
	SO2   float64         `json:"so2"`
	NOx   float64         `json:"nox"`
}

// EnvBenefits are the environmental benefit equivalents of the site's
// energy production.
type EnvBenefits struct {
	GasEmissionSaved GasEmissionSaved `json:"gasEmissionSaved"`
	// TreesPlanted is the equivalent planting of new trees.
	TreesPlanted float64 `json:"treesPlanted"`
	// LightBulbs is the number of bulbs the site could power for a day.
	LightBulbs float64 `json:"lightBulbs"`
}

type envBenefitsEnvelope struct {
	EnvBenefits *EnvBenefits `json:"envBenefits"`
}

// EnvBenefits returns the environmental benefits of the site's production.
func (s SitesService) EnvBenefits(ctx context.Context, siteID int64, params *EnvBenefitsParams) (*EnvBenefits, error) {
	var env envBenefitsEnvelope
	if err := s.get(ctx, fmt.Sprintf("/site/%d/envBenefits.json", siteID), params, &env); err != nil {
		return nil, err
	}
	if env.EnvBenefits == nil {
		return nil, missingKey("envBenefits")
	}
	return env.EnvBenefits, nil
}

// Image returns the site image as uploaded by the user, as raw JPEG
// bytes. No JSON decoding is applied.
func (s SitesService) Image(ctx context.Context, siteID int64, params *ImageParams) ([]byte, error) {
	return s.getRaw(ctx, fmt.Sprintf("/site/%d/siteImage/image.jpg", siteID), params)
}

// InstallerImage returns the installer logo image for the site, falling
// back to the account installer logo on the server side.
func (s SitesService) InstallerImage(ctx context.Context, siteID int64) ([]byte, error) {
	return s.getRaw(ctx, fmt.Sprintf("/site/%d/installerImage/image.jpg", siteID), nil)
}
