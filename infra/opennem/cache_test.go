package opennem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestCache(t *testing.T, maxAgeDays int) (*Cache, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registry.json")
	c := NewCache(CacheConfig{Path: path, MaxAgeDays: maxAgeDays}, nil)
	return c, path
}

func TestCacheMissWhenAbsent(t *testing.T) {
	c, _ := newTestCache(t, 7)
	if _, err := c.Load(); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("err = %v, want ErrCacheMiss", err)
	}
}

func TestCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t, 7)
	doc := []byte(`{"FACILITY": {"region_id": "NSW1"}}`)
	if err := c.Store(doc); err != nil {
		t.Fatalf("store: %v", err)
	}
	got, err := c.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != string(doc) {
		t.Errorf("load = %s", got)
	}
}

func TestCacheMissWhenStale(t *testing.T) {
	c, path := newTestCache(t, 7)
	if err := c.Store([]byte(`{}`)); err != nil {
		t.Fatalf("store: %v", err)
	}
	old := time.Now().Add(-8 * 24 * time.Hour)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	if _, err := c.Load(); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("err = %v, want ErrCacheMiss for 8 day old file", err)
	}
}

func TestCacheMissWhenInvalidJSON(t *testing.T) {
	c, path := newTestCache(t, 7)
	if err := os.WriteFile(path, []byte("<html>502</html>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := c.Load(); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("err = %v, want ErrCacheMiss for invalid JSON", err)
	}
}

func TestCacheClear(t *testing.T) {
	c, path := newTestCache(t, 7)
	if err := c.Clear(); err != nil {
		t.Fatalf("clear of absent file: %v", err)
	}
	if err := c.Store([]byte(`{}`)); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("cache file still present after clear")
	}
}

func TestCacheInspect(t *testing.T) {
	c, path := newTestCache(t, 7)
	st, err := c.Inspect()
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if st.Exists || st.Fresh {
		t.Errorf("absent cache reported as %+v", st)
	}
	if err := c.Store([]byte(`{}`)); err != nil {
		t.Fatalf("store: %v", err)
	}
	st, err = c.Inspect()
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if !st.Exists || !st.Fresh {
		t.Errorf("fresh cache reported as %+v", st)
	}
	old := time.Now().Add(-30 * 24 * time.Hour)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	st, err = c.Inspect()
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if !st.Exists || st.Fresh {
		t.Errorf("stale cache reported as %+v", st)
	}
}
