package capacity

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/emap-tools/aucap/core/model"
)

// FuelStats summarizes the commissioned generating units of one fuel tech.
type FuelStats struct {
	Units   int
	TotalMW float64
	MeanMW  float64
	MaxMW   float64
	StdDev  float64
}

// RegionStats counts commissioned facilities and generating units per region.
type RegionStats struct {
	Facilities int
	Units      int
}

// UnitStats computes per-fuel-tech unit statistics over the commissioned
// generation fleet. Loads and unclassified units are excluded the same way
// the capacity aggregation excludes them.
func UnitStats(reg model.Registry) map[string]FuelStats {
	unitMW := map[string][]float64{}
	for _, f := range reg {
		if !f.Commissioned() {
			continue
		}
		for _, duid := range f.DUIDData {
			fuel, generates := NormalizeFuelTech(duid.FuelTech)
			if !generates {
				continue
			}
			unitMW[fuel] = append(unitMW[fuel], duid.RegisteredCapacity.InexactFloat64())
		}
	}
	out := make(map[string]FuelStats, len(unitMW))
	for fuel, mws := range unitMW {
		s := FuelStats{
			Units:   len(mws),
			TotalMW: floats.Sum(mws),
			MeanMW:  stat.Mean(mws, nil),
			MaxMW:   floats.Max(mws),
		}
		if len(mws) > 1 {
			s.StdDev = stat.StdDev(mws, nil)
		}
		out[fuel] = s
	}
	return out
}

// ByRegion counts commissioned facilities and their generating units per
// region ID.
func ByRegion(reg model.Registry) map[string]RegionStats {
	out := map[string]RegionStats{}
	for _, f := range reg {
		if !f.Commissioned() {
			continue
		}
		rs := out[f.RegionID]
		rs.Facilities++
		for _, duid := range f.DUIDData {
			if _, generates := NormalizeFuelTech(duid.FuelTech); generates {
				rs.Units++
			}
		}
		out[f.RegionID] = rs
	}
	return out
}
