package capacity

import (
	"github.com/shopspring/decimal"

	"github.com/emap-tools/aucap/core/logger"
	"github.com/emap-tools/aucap/core/model"
)

// ZoneCapacity accumulates installed capacity in MW per normalized fuel tech.
// Sums stay decimal until output so registry values add up exactly.
type ZoneCapacity map[string]decimal.Decimal

// Rounded converts the accumulated sums to floats rounded to two decimal
// places, the precision used in zone configuration files.
func (zc ZoneCapacity) Rounded() map[string]float64 {
	out := make(map[string]float64, len(zc))
	for fuel, mw := range zc {
		out[fuel] = mw.Round(2).InexactFloat64()
	}
	return out
}

// Aggregator totals registered capacity per market region and fuel tech.
// Regions are fixed up front; facilities in regions outside that set are
// skipped with a warning rather than aborting the run.
type Aggregator struct {
	zones map[string]ZoneCapacity
	log   logger.Logger
}

// NewAggregator creates an Aggregator covering the given region IDs.
func NewAggregator(regionIDs []string, log logger.Logger) *Aggregator {
	if log == nil {
		log = logger.NopLogger{}
	}
	zones := make(map[string]ZoneCapacity, len(regionIDs))
	for _, id := range regionIDs {
		zones[id] = ZoneCapacity{}
	}
	return &Aggregator{zones: zones, log: log}
}

// AddFacility folds one facility into its region's totals. Facilities that
// are not commissioned contribute nothing. Units are summed individually:
// a facility can mix fuel techs, e.g. a hydro generator next to a pump.
func (a *Aggregator) AddFacility(code string, f model.Facility) {
	if !f.Commissioned() {
		a.log.Debugf("%s (%s) is currently %s", code, f.RegionID, f.Status.State)
		return
	}
	zone, ok := a.zones[f.RegionID]
	if !ok {
		a.log.Warnf("facility %s has unknown region %q, skipping", code, f.RegionID)
		return
	}
	a.log.Debugf("adding facility %s", code)
	for unit, duid := range f.DUIDData {
		fuel, generates := NormalizeFuelTech(duid.FuelTech)
		if !generates {
			continue
		}
		zone[fuel] = zone[fuel].Add(duid.RegisteredCapacity)
		a.log.Debugw("added unit capacity", map[string]any{
			"unit": unit,
			"fuel": fuel,
			"mw":   duid.RegisteredCapacity.String(),
		})
	}
}

// AddRegistry folds every facility of a registry into the totals.
func (a *Aggregator) AddRegistry(reg model.Registry) {
	for code, f := range reg {
		a.AddFacility(code, f)
	}
}

// Zone returns the accumulated capacity for a region ID. The map is live;
// callers must not mutate it.
func (a *Aggregator) Zone(regionID string) ZoneCapacity {
	return a.zones[regionID]
}
