// Package app wires configuration, the registry source and the aggregation
// pipeline into the one-shot generator run.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/emap-tools/aucap/config"
	"github.com/emap-tools/aucap/core/capacity"
	"github.com/emap-tools/aucap/core/model"
	"github.com/emap-tools/aucap/core/zones"
	"github.com/emap-tools/aucap/infra/logger"
	"github.com/emap-tools/aucap/infra/opennem"
	"github.com/emap-tools/aucap/pkg/export"
)

// Service orchestrates the generate pipeline: load-or-fetch, aggregate,
// render.
type Service struct {
	cfg       *config.Config
	source    *opennem.Source
	overrides *zones.Overrides
	log       logger.Logger
	out       io.Writer
}

// New creates a Service from the configuration. Output goes to stdout.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")
	client := opennem.NewClient(cfg.Registry, logger.New("registry-client"))
	cache := opennem.NewCache(cfg.Cache, logger.New("registry-cache"))

	var ov *zones.Overrides
	if cfg.Zones.OverridesPath != "" {
		var err error
		ov, err = zones.LoadOverrides(cfg.Zones.OverridesPath)
		if err != nil {
			return nil, err
		}
	}

	return &Service{
		cfg:       cfg,
		source:    opennem.NewSource(client, cache, logg),
		overrides: ov,
		log:       logg,
		out:       os.Stdout,
	}, nil
}

// SetOutput redirects the rendered snippet, used by tests.
func (s *Service) SetOutput(w io.Writer) { s.out = w }

// Source exposes the registry source for sibling commands.
func (s *Service) Source() *opennem.Source { return s.source }

// Run executes the pipeline once.
func (s *Service) Run(ctx context.Context) error {
	reg, err := s.source.Registry(ctx)
	if err != nil {
		return err
	}
	s.log.Infof("loaded %d facilities", len(reg))
	zoneData, err := s.Build(reg)
	if err != nil {
		return err
	}
	switch s.cfg.Output.Format {
	case "csv":
		return export.WriteCSV(s.out, zoneData)
	default:
		return export.WriteJSON(s.out, zoneData, s.cfg.Output.Indent)
	}
}

// Build aggregates a registry into the per-zone configuration entries, keyed
// by zone key rather than market region code.
func (s *Service) Build(reg model.Registry) (map[string]zones.ZoneConfig, error) {
	regionIDs := zones.RegionIDs()
	agg := capacity.NewAggregator(regionIDs, logger.New("aggregator"))
	agg.AddRegistry(reg)

	var derived map[string]*zones.Bounds
	if s.cfg.Output.DeriveBounds {
		derived = deriveBounds(reg, regionIDs)
	}

	bp := s.overrides.Boilerplate()
	out := make(map[string]zones.ZoneConfig, len(regionIDs))
	for _, regionID := range regionIDs {
		zoneKey, ok := zones.ZoneKey(regionID)
		if !ok {
			return nil, fmt.Errorf("no zone key for region %s", regionID)
		}
		box, ok := s.overrides.Bounds(regionID)
		if !ok {
			return nil, fmt.Errorf("no bounding box for region %s", regionID)
		}
		// an explicit override beats a derived box
		if derived != nil && !s.overrides.HasBounds(regionID) {
			if dbox, ok := derived[regionID].Box(); ok {
				box = dbox
			}
		}
		out[zoneKey] = zones.NewZoneConfig(box, agg.Zone(regionID).Rounded(), bp)
	}
	return out, nil
}

// deriveBounds expands per-region boxes from commissioned facility
// coordinates. Regions come pre-created so every zone gets an accumulator
// even when no facility carries a location.
func deriveBounds(reg model.Registry, regionIDs []string) map[string]*zones.Bounds {
	out := make(map[string]*zones.Bounds, len(regionIDs))
	for _, id := range regionIDs {
		out[id] = &zones.Bounds{}
	}
	codes := make([]string, 0, len(reg))
	for code := range reg {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		f := reg[code]
		if !f.Commissioned() {
			continue
		}
		if b, ok := out[f.RegionID]; ok {
			b.Extend(f.Location.Longitude, f.Location.Latitude)
		}
	}
	return out
}
