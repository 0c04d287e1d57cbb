package opennem

import (
	"context"
	"errors"

	"github.com/emap-tools/aucap/core/logger"
	"github.com/emap-tools/aucap/core/model"
)

// Source combines the client and cache into the load-or-fetch step of the
// pipeline.
type Source struct {
	client *Client
	cache  *Cache
	log    logger.Logger
}

// NewSource creates a Source.
func NewSource(client *Client, cache *Cache, log logger.Logger) *Source {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Source{client: client, cache: cache, log: log}
}

// Registry returns the parsed facility registry, preferring the cache. On a
// miss the document is fetched and written back; a failed write-back is
// logged but does not fail the run, the fetched document is used as-is.
func (s *Source) Registry(ctx context.Context) (model.Registry, error) {
	data, err := s.cache.Load()
	if err != nil && !errors.Is(err, ErrCacheMiss) {
		return nil, err
	}
	if err == nil {
		return model.ParseRegistry(data)
	}
	data, err = s.client.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Store(data); err != nil {
		s.log.Warnf("store registry cache: %v", err)
	}
	return model.ParseRegistry(data)
}

// Refresh bypasses the cache, fetches the registry and stores it.
func (s *Source) Refresh(ctx context.Context) (model.Registry, error) {
	data, err := s.client.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Store(data); err != nil {
		s.log.Warnf("store registry cache: %v", err)
	}
	return model.ParseRegistry(data)
}
