package model

import "testing"

func TestParseRegistry(t *testing.T) {
	doc := `{
  "BASTYAN": {
    "station_id": "BASTYAN",
    "region_id": "TAS1",
    "status": {"state": "Commissioned"},
    "location": {"latitude": -41.87, "longitude": 145.57},
    "duid_data": {"BASTYAN": {"fuel_tech": "hydro", "registered_capacity": 79.9}}
  },
  "NOFUEL": {
    "station_id": "NOFUEL",
    "region_id": "VIC1",
    "status": {"state": "Commissioned"},
    "location": {"latitude": null, "longitude": null},
    "duid_data": {"NF1": {}}
  }
}`
	reg, err := ParseRegistry([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	f := reg["BASTYAN"]
	if !f.Commissioned() {
		t.Errorf("BASTYAN not commissioned")
	}
	if f.Location.Latitude == nil || *f.Location.Latitude != -41.87 {
		t.Errorf("latitude = %v", f.Location.Latitude)
	}
	if got := f.DUIDData["BASTYAN"].RegisteredCapacity.String(); got != "79.9" {
		t.Errorf("capacity = %s, want the exact registry value", got)
	}

	nf := reg["NOFUEL"]
	if nf.Location.Latitude != nil {
		t.Errorf("null latitude must decode to nil")
	}
	if nf.DUIDData["NF1"].FuelTech != "" {
		t.Errorf("missing fuel_tech must decode to empty")
	}
}

func TestParseRegistryRejectsNonObject(t *testing.T) {
	if _, err := ParseRegistry([]byte(`["not", "a", "registry"]`)); err == nil {
		t.Fatalf("expected decode error")
	}
}
