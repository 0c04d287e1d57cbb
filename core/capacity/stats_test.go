package capacity

import (
	"math"
	"testing"

	"github.com/emap-tools/aucap/core/model"
)

func TestUnitStats(t *testing.T) {
	reg := model.Registry{
		"A": commissioned("NSW1", map[string]model.DUID{
			"A1": duid("wind", "100"),
			"A2": duid("wind", "200"),
			"A3": duid("pumps", "50"),
		}),
		"B": {
			RegionID: "NSW1",
			Status:   model.Status{State: "Committed"},
			DUIDData: map[string]model.DUID{"B1": duid("wind", "300")},
		},
	}
	stats := UnitStats(reg)
	wind, ok := stats["wind"]
	if !ok {
		t.Fatalf("no wind stats")
	}
	if wind.Units != 2 {
		t.Errorf("units = %d, want 2 (uncommissioned unit counted?)", wind.Units)
	}
	if wind.TotalMW != 300 {
		t.Errorf("total = %v, want 300", wind.TotalMW)
	}
	if wind.MeanMW != 150 {
		t.Errorf("mean = %v, want 150", wind.MeanMW)
	}
	if wind.MaxMW != 200 {
		t.Errorf("max = %v, want 200", wind.MaxMW)
	}
	if math.Abs(wind.StdDev-70.71067811865476) > 1e-9 {
		t.Errorf("stddev = %v", wind.StdDev)
	}
	if _, ok := stats["pumps"]; ok {
		t.Errorf("loads must not appear in unit stats")
	}
}

func TestByRegion(t *testing.T) {
	reg := model.Registry{
		"A": commissioned("SA1", map[string]model.DUID{
			"A1": duid("solar", "50"),
			"A2": duid("solar", "50"),
		}),
		"B": commissioned("SA1", map[string]model.DUID{
			"B1": duid("battery_discharging", "100"),
			"B2": duid("battery_charging", "120"),
		}),
	}
	byRegion := ByRegion(reg)
	sa := byRegion["SA1"]
	if sa.Facilities != 2 {
		t.Errorf("facilities = %d, want 2", sa.Facilities)
	}
	if sa.Units != 3 {
		t.Errorf("units = %d, want 3 (loads excluded)", sa.Units)
	}
}
