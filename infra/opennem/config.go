package opennem

import "fmt"

// DefaultRegistryURL is the public OpenNEM facility registry endpoint.
const DefaultRegistryURL = "https://data.opennem.org.au/facility/facility_registry.json"

// Config configures the registry HTTP client.
type Config struct {
	// URL of the facility registry document.
	URL string `json:"url"`
	// TimeoutSeconds bounds the single GET request.
	TimeoutSeconds int `json:"timeout_seconds"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.URL == "" {
		c.URL = DefaultRegistryURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 10
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("registry url is required")
	}
	return nil
}

// CacheConfig configures the on-disk registry cache.
type CacheConfig struct {
	// Path is the cache file location.
	Path string `json:"path"`
	// MaxAgeDays is the validity window based on file modification time.
	MaxAgeDays int `json:"max_age_days"`
}

// SetDefaults applies sane defaults. The registry changes rarely, so a week
// of staleness is acceptable.
func (c *CacheConfig) SetDefaults() {
	if c.Path == "" {
		c.Path = "AU_opennem_facilities.json"
	}
	if c.MaxAgeDays <= 0 {
		c.MaxAgeDays = 7
	}
}

// Validate checks mandatory fields.
func (c CacheConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("cache path is required")
	}
	return nil
}
