package config

import "fmt"

// OutputConfig controls how the generated snippet is rendered.
type OutputConfig struct {
	// Format selects the renderer: "json" or "csv".
	Format string `json:"format"`
	// Indent is the number of spaces per JSON indentation level.
	Indent int `json:"indent"`
	// DeriveBounds computes bounding boxes from facility locations instead
	// of using the static per-state boxes. Boxes set explicitly in the zone
	// overrides file win over derived ones.
	DeriveBounds bool `json:"derive_bounds"`
}

// SetDefaults applies sane defaults.
func (c *OutputConfig) SetDefaults() {
	if c.Format == "" {
		c.Format = "json"
	}
	if c.Indent <= 0 {
		c.Indent = 4
	}
}

// Validate checks mandatory fields.
func (c OutputConfig) Validate() error {
	if c.Format != "json" && c.Format != "csv" {
		return fmt.Errorf("unknown output format %s", c.Format)
	}
	return nil
}

// ZonesConfig points at optional static zone data overrides.
type ZonesConfig struct {
	// OverridesPath is a YAML file replacing bounding boxes or boilerplate
	// fields. Empty means built-in data only.
	OverridesPath string `json:"overrides_path"`
}
