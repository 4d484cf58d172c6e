package api

import (
	"context"
	"fmt"
)

// Inverter is an inverter or SMI in the site inventory.
type Inverter struct {
	Name                string              `json:"name"`
	Manufacturer        string              `json:"manufacturer"`
	Model               string              `json:"model"`
	CPUVersion          string              `json:"cpuVersion"`
	DSP1Version         *string             `json:"dsp1Version"`
	DSP2Version         *string             `json:"dsp2Version"`
	CommunicationMethod CommunicationMethod `json:"communicationMethod"`
	SerialNumber        string              `json:"SN"`
	ConnectedOptimizers int                 `json:"connectedOptimizers"`
}

// InventoryMeter is a meter in the site inventory.
type InventoryMeter struct {
	Name            string    `json:"name"`
	Manufacturer    *string   `json:"manufacturer"`
	Model           *string   `json:"model"`
	SerialNumber    *string   `json:"SN"`
	Type            MeterType `json:"type"`
	FirmwareVersion *string   `json:"firmwareVersion"`
	// ConnectedTo names the device the meter reports through.
	ConnectedTo       *string   `json:"connectedTo"`
	ConnectedDeviceSN *string   `json:"connectedSolaredgeDeviceSN"`
	Form              MeterForm `json:"form"`
}

// InventorySensor is an irradiance or temperature sensor in the site
// inventory.
type InventorySensor struct {
	ConnectedDeviceSN string     `json:"connectedSolaredgeDeviceSN"`
	ID                string     `json:"id"`
	ConnectedTo       string     `json:"connectedTo"`
	Category          SensorType `json:"category"`
	Type              string     `json:"type"`
}

// Gateway is a communication gateway in the site inventory.
type Gateway struct {
	Name            string `json:"name"`
	SerialNumber    string `json:"SN"`
	FirmwareVersion string `json:"firmwareVersion"`
}

// Battery is a storage battery in the site inventory.
type Battery struct {
	Name         string `json:"name"`
	SerialNumber string `json:"SN"`
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	// NameplateCapacity is the nominal capacity as provided by the
	// manufacturer.
	NameplateCapacity   float64 `json:"nameplateCapacity"`
	FirmwareVersion     string  `json:"firmwareVersion"`
	ConnectedTo         string  `json:"connectedTo"`
	ConnectedInverterSN string  `json:"connectedInverterSn"`
}

// Inventory is the full equipment inventory of a site.
type Inventory struct {
	Inverters []Inverter        `json:"inverters"`
	Meters    []InventoryMeter  `json:"meters"`
	Sensors   []InventorySensor `json:"sensors"`
	Gateways  []Gateway         `json:"gateways"`
	Batteries []Battery         `json:"batteries"`
}

type inventoryEnvelope struct {
	Inventory *Inventory `json:"Inventory"`
}

// Inventory returns the equipment installed in the site: inverters/SMIs,
// batteries, meters, gateways and sensors.
func (s SitesService) Inventory(ctx context.Context, siteID int64) (*Inventory, error) {
	var env inventoryEnvelope
	if err := s.get(ctx, fmt.Sprintf("/site/%d/inventory.json", siteID), nil, &env); err != nil {
		return nil, err
	}
	if env.Inventory == nil {
		return nil, missingKey("Inventory")
	}
	return env.Inventory, nil
}
