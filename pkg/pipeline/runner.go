package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/plasmidmap/plasmidmap/pkg/cache"
	"github.com/plasmidmap/plasmidmap/pkg/errors"
	"github.com/plasmidmap/plasmidmap/pkg/mapfile"
	"github.com/plasmidmap/plasmidmap/pkg/observability"
	"github.com/plasmidmap/plasmidmap/pkg/plasmid"
	"github.com/plasmidmap/plasmidmap/pkg/render/circular/layout"
	"github.com/plasmidmap/plasmidmap/pkg/render/circular/sink"
)

// Runner executes the pipeline with caching. It is stateless except for
// the cache and logger, so one Runner can serve concurrent runs with
// different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete load → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	base := r.Logger
	if opts.Logger != nil {
		base = opts.Logger
	}
	logger := base.With("run", uuid.NewString()[:8])

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	p, mapHash, err := r.load(opts)
	if err != nil {
		return nil, err
	}
	result.Plasmid = p
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.FeatureCount = len(p.Features())

	logger.Info("loaded map",
		"name", p.Name(),
		"base_pairs", p.BasePairs(),
		"features", len(p.Features()),
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	l, layoutHit, err := r.computeLayout(ctx, p, mapHash, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.OrbitCount = l.Orbits
	result.CacheInfo.LayoutHit = layoutHit

	logger.Info("computed layout",
		"orbits", l.Orbits,
		"ticks", len(l.Ticks),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	layoutJSON, err := sink.RenderJSON(l)
	if err != nil {
		return nil, err
	}
	result.LayoutHash = cache.Hash(layoutJSON)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.renderArtifacts(ctx, l, layoutJSON, result.LayoutHash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered artifacts",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// load resolves the plasmid from the options. The returned hash keys the
// layout cache; it is empty for programmatically supplied plasmids,
// which are never cached.
func (r *Runner) load(opts Options) (*plasmid.Plasmid, string, error) {
	if opts.Plasmid != nil {
		return opts.Plasmid, "", nil
	}

	data, err := os.ReadFile(opts.MapFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "map file %s", opts.MapFile)
		}
		return nil, "", errors.Wrap(errors.ErrCodeInvalidMapFile, err, "reading map file %s", opts.MapFile)
	}

	p, err := mapfile.Parse(data)
	if err != nil {
		return nil, "", err
	}
	return p, cache.Hash(data), nil
}

// computeLayout computes the circular layout, consulting the cache when
// the map came from a file.
func (r *Runner) computeLayout(ctx context.Context, p *plasmid.Plasmid, mapHash string, opts Options) (*layout.Layout, bool, error) {
	cacheable := mapHash != ""

	if cacheable && !opts.Refresh {
		key := cache.LayoutKey(mapHash)
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if cached, err := sink.ParseJSON(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	l, err := layout.Compute(ctx, p)
	if err != nil {
		return nil, false, err
	}

	if cacheable {
		if data, err := sink.RenderJSON(l); err == nil {
			_ = r.Cache.Set(ctx, cache.LayoutKey(mapHash), data, cache.TTLLayout)
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}
	return l, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
