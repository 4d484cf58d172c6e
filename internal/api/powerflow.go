package api

import (
	"context"
	"fmt"
)

// PowerConnection is one edge of the power flow graph: power runs from
// From to To.
type PowerConnection struct {
	From PowerFlowElement `json:"from"`
	To   PowerFlowElement `json:"to"`
}

// PowerFlowEntry is the state of one element in the power flow graph.
// CurrentPower is always positive; direction comes from the connections.
type PowerFlowEntry struct {
	Status       PowerFlowElementStatus `json:"status"`
	CurrentPower *float64               `json:"currentPower"`
}

// StoragePowerFlowEntry is the storage element of the power flow graph,
// which additionally carries charge state.
type StoragePowerFlowEntry struct {
	Status       PowerFlowElementStatus `json:"status"`
	CurrentPower *float64               `json:"currentPower"`
	// ChargeLevel is the accumulated state of energy (percent) across
	// all batteries.
	ChargeLevel int `json:"chargeLevel"`
	// Critical is set when the charge level drops below the configured
	// threshold (currently 10%).
	Critical bool `json:"critical"`
	// TimeLeft is returned in backup mode (grid disabled): the time
	// before storage runs out at the current load.
	TimeLeft *string `json:"timeLeft"`
}

// PowerFlow is the current power distribution between grid, load, PV and
// storage. PV and Storage are nil for sites without those elements.
type PowerFlow struct {
	Unit        PowerUnit              `json:"unit"`
	Connections []PowerConnection      `json:"connections"`
	Grid        PowerFlowEntry         `json:"GRID"`
	Load        PowerFlowEntry         `json:"LOAD"`
	PV          *PowerFlowEntry        `json:"PV"`
	Storage     *StoragePowerFlowEntry `json:"STORAGE"`
}

type powerFlowEnvelope struct {
	SiteCurrentPowerFlow *PowerFlow `json:"siteCurrentPowerFlow"`
}

// PowerFlow returns the current power flow between all elements of the
// site. Applies when export, import and consumption can be measured.
func (s SitesService) PowerFlow(ctx context.Context, siteID int64) (*PowerFlow, error) {
	var env powerFlowEnvelope
	if err := s.get(ctx, fmt.Sprintf("/site/%d/currentPowerFlow.json", siteID), nil, &env); err != nil {
		return nil, err
	}
	if env.SiteCurrentPowerFlow == nil {
		return nil, missingKey("siteCurrentPowerFlow")
	}
	return env.SiteCurrentPowerFlow, nil
}
