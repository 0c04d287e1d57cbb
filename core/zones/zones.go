// Package zones maps AEMO market regions onto electricityMap zone keys and
// carries the static per-zone configuration the capacity snippet is merged
// into.
package zones

import "sort"

// regionByZone maps zone keys to AEMO market region codes, mirroring the
// price mapping in the zone configuration.
var regionByZone = map[string]string{
	"AUS-NSW": "NSW1",
	"AUS-QLD": "QLD1",
	"AUS-SA":  "SA1",
	"AUS-TAS": "TAS1",
	"AUS-VIC": "VIC1",
	"AUS-WA":  "WA1",
}

// zoneByRegion is the inverse of regionByZone, built at init.
var zoneByRegion = func() map[string]string {
	m := make(map[string]string, len(regionByZone))
	for zone, region := range regionByZone {
		m[region] = zone
	}
	return m
}()

// RegionIDs returns the market region codes covered by the zone mapping,
// sorted for deterministic iteration.
func RegionIDs() []string {
	ids := make([]string, 0, len(zoneByRegion))
	for id := range zoneByRegion {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ZoneKey returns the zone key for a market region code.
func ZoneKey(regionID string) (string, bool) {
	zone, ok := zoneByRegion[regionID]
	return zone, ok
}

// BoundingBox is a SW, NE corner pair in [longitude, latitude] order.
type BoundingBox [2][2]float64

// staticBounds are the state bounding boxes, rounded to 4 decimal places.
// NT1 has no zone mapping but is kept for completeness.
var staticBounds = map[string]BoundingBox{
	"NSW1": {{148.2695, -36.4196}, {149.9044, -34.6395}},
	"NT1":  {{128.5001, -26.4999}, {138.5002, -10.4684}},
	"QLD1": {{137.5002, -29.6706}, {154.0488, -8.7402}},
	"SA1":  {{128.5001, -38.5706}, {141.5001, -25.4999}},
	"TAS1": {{143.3372, -44.1413}, {148.9845, -39.0715}},
	"VIC1": {{140.4671, -39.645}, {150.4721, -33.4865}},
	"WA1":  {{112.4194, -35.6379}, {129.5001, -13.2236}},
}

// StaticBounds returns the configured bounding box for a market region.
func StaticBounds(regionID string) (BoundingBox, bool) {
	box, ok := staticBounds[regionID]
	return box, ok
}

// Parsers names the parser functions wired to a zone.
type Parsers struct {
	Price      string `json:"price" yaml:"price"`
	Production string `json:"production" yaml:"production"`
}

// Boilerplate is the static metadata shared by all Australian zones.
type Boilerplate struct {
	Contributors []string `json:"contributors" yaml:"contributors"`
	FlagFileName string   `json:"flag_file_name" yaml:"flag_file_name"`
	Parsers      Parsers  `json:"parsers" yaml:"parsers"`
	// Timezone stays null: upstream datetimes are expected in UTC.
	Timezone *string `json:"timezone" yaml:"timezone"`
}

// DefaultBoilerplate returns the metadata block merged into every zone entry.
func DefaultBoilerplate() Boilerplate {
	return Boilerplate{
		Contributors: []string{
			"https://github.com/brandongalbraith",
			"https://github.com/jarek",
			"https://github.com/corradio",
			"https://github.com/AnthonyBriggs",
		},
		FlagFileName: "au.png",
		Parsers: Parsers{
			Price:      "AU.fetch_price",
			Production: "AU.fetch_production",
		},
	}
}

// ZoneConfig is one zone's entry in the generated snippet. Field order
// matches the alphabetical key order of the serialized form.
type ZoneConfig struct {
	BoundingBox  BoundingBox        `json:"bounding_box"`
	Capacity     map[string]float64 `json:"capacity"`
	Contributors []string           `json:"contributors"`
	FlagFileName string             `json:"flag_file_name"`
	Parsers      Parsers            `json:"parsers"`
	Timezone     *string            `json:"timezone"`
}

// NewZoneConfig merges a bounding box and capacity totals with boilerplate
// metadata into one zone entry.
func NewZoneConfig(box BoundingBox, cap map[string]float64, bp Boilerplate) ZoneConfig {
	return ZoneConfig{
		BoundingBox:  box,
		Capacity:     cap,
		Contributors: bp.Contributors,
		FlagFileName: bp.FlagFileName,
		Parsers:      bp.Parsers,
		Timezone:     bp.Timezone,
	}
}
