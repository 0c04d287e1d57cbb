// Package opennem fetches the OpenNEM facility registry, keeping a local
// file cache so repeated runs do not hammer the upstream endpoint.
package opennem

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/emap-tools/aucap/core/logger"
)

// Client performs the single registry GET.
type Client struct {
	url    string
	client *http.Client
	log    logger.Logger
}

// NewClient creates a registry client.
func NewClient(cfg Config, log logger.Logger) *Client {
	cfg.SetDefaults()
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Client{
		url:    cfg.URL,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		log:    log,
	}
}

// Fetch downloads the registry document.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	c.log.Infof("fetching facility registry from %s", c.url)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build registry request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch facility registry: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Errorf("close registry response: %v", cerr)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch facility registry: unexpected status %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read registry response: %w", err)
	}
	return data, nil
}
