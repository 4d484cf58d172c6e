package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSiteInventory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/site/42/inventory.json" {
			t.Errorf("Expected path /site/42/inventory.json, got %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"Inventory": {
			"inverters": [
				{
					"name": "Inverter 1",
					"manufacturer": "SolarEdge",
					"model": "SE16K",
					"cpuVersion": "4.12.33",
					"communicationMethod": "ETHERNET",
					"SN": "7E123456-AB",
					"connectedOptimizers": 36
				}
			],
			"meters": [
				{
					"name": "Production Meter",
					"SN": "MTR-1",
					"type": "Production",
					"form": "physical",
					"connectedTo": "Inverter 1",
					"connectedSolaredgeDeviceSN": "7E123456-AB"
				},
				{
					"name": "Self Consumption Meter",
					"type": "SelfConsumption",
					"form": "virtual"
				}
			],
			"sensors": [],
			"gateways": [],
			"batteries": [
				{
					"name": "Battery 1",
					"SN": "BAT1",
					"manufacturer": "Example",
					"model": "EX-BAT-10",
					"nameplateCapacity": 9700.0,
					"firmwareVersion": "2.0.1",
					"connectedTo": "Inverter 1",
					"connectedInverterSn": "7E123456-AB"
				}
			]
		}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-key")
	inv, err := client.Sites().Inventory(context.Background(), 42)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(inv.Inverters) != 1 {
		t.Fatalf("Expected 1 inverter, got %d", len(inv.Inverters))
	}
	if inv.Inverters[0].CommunicationMethod != CommunicationEthernet {
		t.Errorf("Expected ETHERNET, got %s", inv.Inverters[0].CommunicationMethod)
	}
	if len(inv.Meters) != 2 {
		t.Fatalf("Expected 2 meters, got %d", len(inv.Meters))
	}
	// Virtual meters carry no hardware identity.
	virtual := inv.Meters[1]
	if virtual.Form != MeterFormVirtual {
		t.Errorf("Expected virtual form, got %s", virtual.Form)
	}
	if virtual.SerialNumber != nil {
		t.Errorf("Expected nil serial for virtual meter, got %v", *virtual.SerialNumber)
	}
	if len(inv.Batteries) != 1 || inv.Batteries[0].NameplateCapacity != 9700.0 {
		t.Errorf("Unexpected batteries %+v", inv.Batteries)
	}
}
