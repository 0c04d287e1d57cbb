package model

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// StatusCommissioned is the registry status of facilities that are in
// commercial operation. Only these contribute to installed capacity.
const StatusCommissioned = "Commissioned"

// Registry is the OpenNEM facility registry document: facility code to
// facility record.
type Registry map[string]Facility

// Facility is a physical power station. It groups one or more dispatchable
// units (DUIDs) under a single station and AEMO market region.
type Facility struct {
	StationID string          `json:"station_id"`
	RegionID  string          `json:"region_id"`
	Status    Status          `json:"status"`
	Location  Location        `json:"location"`
	DUIDData  map[string]DUID `json:"duid_data"`
}

// Status carries the registry lifecycle state of a facility, e.g.
// "Commissioned" or "Decommissioned".
type Status struct {
	State string `json:"state"`
}

// Location is the facility's site position. Either coordinate may be absent
// upstream.
type Location struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// DUID is a single dispatchable unit within a facility. FuelTech is empty for
// units the registry reports without a fuel classification. Capacity is kept
// as a decimal so registry values survive aggregation without float drift.
type DUID struct {
	FuelTech           string          `json:"fuel_tech"`
	RegisteredCapacity decimal.Decimal `json:"registered_capacity"`
}

// Commissioned reports whether the facility is in commercial operation.
func (f Facility) Commissioned() bool {
	return f.Status.State == StatusCommissioned
}

// ParseRegistry decodes a facility registry document.
func ParseRegistry(data []byte) (Registry, error) {
	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("decode facility registry: %w", err)
	}
	return reg, nil
}
