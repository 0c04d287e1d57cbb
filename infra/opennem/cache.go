package opennem

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/emap-tools/aucap/core/logger"
)

// ErrCacheMiss is returned by Cache.Load when no usable cached document
// exists: the file is absent, older than the validity window, or not valid
// JSON.
var ErrCacheMiss = errors.New("registry cache miss")

// Cache is the on-disk copy of the registry document, validated by file
// modification time.
type Cache struct {
	path   string
	maxAge time.Duration
	log    logger.Logger
}

// Status describes the cache file for inspection commands.
type Status struct {
	Path   string
	Exists bool
	Age    time.Duration
	Fresh  bool
}

// NewCache creates a Cache.
func NewCache(cfg CacheConfig, log logger.Logger) *Cache {
	cfg.SetDefaults()
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Cache{
		path:   cfg.Path,
		maxAge: time.Duration(cfg.MaxAgeDays) * 24 * time.Hour,
		log:    log,
	}
}

// Load returns the cached document, or ErrCacheMiss when the cache cannot be
// used. A file that no longer parses as JSON counts as a miss so a corrupt
// cache heals itself on the next fetch.
func (c *Cache) Load() ([]byte, error) {
	info, err := os.Stat(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("stat registry cache: %w", err)
	}
	age := time.Since(info.ModTime())
	if age >= c.maxAge {
		c.log.Infof("registry cache is %s old, refreshing", age.Round(time.Minute))
		return nil, ErrCacheMiss
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		c.log.Warnf("read registry cache: %v", err)
		return nil, ErrCacheMiss
	}
	if !json.Valid(data) {
		c.log.Warnf("registry cache at %s is not valid JSON, refreshing", c.path)
		return nil, ErrCacheMiss
	}
	c.log.Debugf("using registry cache at %s (age %s)", c.path, age.Round(time.Minute))
	return data, nil
}

// Store writes a freshly fetched document to the cache file.
func (c *Cache) Store(data []byte) error {
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write registry cache: %w", err)
	}
	return nil
}

// Clear removes the cache file. A missing file is not an error.
func (c *Cache) Clear() error {
	if err := os.Remove(c.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove registry cache: %w", err)
	}
	return nil
}

// Inspect reports the state of the cache file without loading it.
func (c *Cache) Inspect() (Status, error) {
	st := Status{Path: c.path}
	info, err := os.Stat(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("stat registry cache: %w", err)
	}
	st.Exists = true
	st.Age = time.Since(info.ModTime())
	st.Fresh = st.Age < c.maxAge
	return st, nil
}
