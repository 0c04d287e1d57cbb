package opennem

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRegistry = `{
  "TESTFAC": {
    "station_id": "TESTFAC",
    "region_id": "NSW1",
    "status": {"state": "Commissioned"},
    "location": {"latitude": -34.0, "longitude": 150.0},
    "duid_data": {"T1": {"fuel_tech": "wind", "registered_capacity": 120.5}}
  }
}`

func newTestSource(t *testing.T, url string) (*Source, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registry.json")
	client := NewClient(Config{URL: url, TimeoutSeconds: 2}, nil)
	cache := NewCache(CacheConfig{Path: path, MaxAgeDays: 7}, nil)
	return NewSource(client, cache, nil), path
}

func TestSourceFetchesAndCaches(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(testRegistry))
	}))
	defer srv.Close()

	src, path := newTestSource(t, srv.URL)
	reg, err := src.Registry(context.Background())
	require.NoError(t, err)
	require.Len(t, reg, 1)
	f := reg["TESTFAC"]
	assert.Equal(t, "NSW1", f.RegionID)
	assert.True(t, f.Commissioned())
	assert.Equal(t, "120.5", f.DUIDData["T1"].RegisteredCapacity.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testRegistry, string(data))

	// second call is served from cache
	_, err = src.Registry(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}

func TestSourcePrefersFreshCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected fetch with a fresh cache")
	}))
	defer srv.Close()

	src, path := newTestSource(t, srv.URL)
	require.NoError(t, os.WriteFile(path, []byte(testRegistry), 0o644))
	reg, err := src.Registry(context.Background())
	require.NoError(t, err)
	assert.Len(t, reg, 1)
}

func TestSourceRefetchesInvalidCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testRegistry))
	}))
	defer srv.Close()

	src, path := newTestSource(t, srv.URL)
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	reg, err := src.Registry(context.Background())
	require.NoError(t, err)
	assert.Len(t, reg, 1)
}

func TestSourceFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	src, _ := newTestSource(t, srv.URL)
	_, err := src.Registry(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestSourceStoreFailureNonFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testRegistry))
	}))
	defer srv.Close()

	// cache path inside a directory that does not exist, so the write-back
	// fails while the fetch succeeds
	path := filepath.Join(t.TempDir(), "no-such-dir", "registry.json")
	client := NewClient(Config{URL: srv.URL, TimeoutSeconds: 2}, nil)
	cache := NewCache(CacheConfig{Path: path, MaxAgeDays: 7}, nil)
	src := NewSource(client, cache, nil)

	reg, err := src.Registry(context.Background())
	require.NoError(t, err, "a failed cache write must not fail the run")
	assert.Len(t, reg, 1)
	assert.Equal(t, "NSW1", reg["TESTFAC"].RegionID)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSourceRefresh(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(testRegistry))
	}))
	defer srv.Close()

	src, path := newTestSource(t, srv.URL)
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
	reg, err := src.Refresh(context.Background())
	require.NoError(t, err)
	assert.Len(t, reg, 1)
	assert.Equal(t, 1, hits)
}
