package zones

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides lets a deployment adjust the static zone data without a code
// change: replacement bounding boxes per region and boilerplate fields.
type Overrides struct {
	BoundingBoxes map[string]BoundingBox `yaml:"bounding_boxes"`
	Contributors  []string               `yaml:"contributors"`
	FlagFileName  string                 `yaml:"flag_file_name"`
	Parsers       *Parsers               `yaml:"parsers"`
}

// LoadOverrides reads an overrides file.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read zone overrides: %w", err)
	}
	var ov Overrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("parse zone overrides: %w", err)
	}
	for region := range ov.BoundingBoxes {
		if _, ok := staticBounds[region]; !ok {
			return nil, fmt.Errorf("zone overrides: unknown region %q", region)
		}
	}
	return &ov, nil
}

// Bounds returns the bounding box for a region with overrides applied.
func (ov *Overrides) Bounds(regionID string) (BoundingBox, bool) {
	if ov != nil {
		if box, ok := ov.BoundingBoxes[regionID]; ok {
			return box, true
		}
	}
	return StaticBounds(regionID)
}

// HasBounds reports whether the region's bounding box was set explicitly.
func (ov *Overrides) HasBounds(regionID string) bool {
	if ov == nil {
		return false
	}
	_, ok := ov.BoundingBoxes[regionID]
	return ok
}

// Boilerplate returns the default boilerplate with overrides applied.
func (ov *Overrides) Boilerplate() Boilerplate {
	bp := DefaultBoilerplate()
	if ov == nil {
		return bp
	}
	if len(ov.Contributors) > 0 {
		bp.Contributors = ov.Contributors
	}
	if ov.FlagFileName != "" {
		bp.FlagFileName = ov.FlagFileName
	}
	if ov.Parsers != nil {
		bp.Parsers = *ov.Parsers
	}
	return bp
}
