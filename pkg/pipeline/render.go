package pipeline

import (
	"context"
	"time"

	"github.com/plasmidmap/plasmidmap/pkg/cache"
	"github.com/plasmidmap/plasmidmap/pkg/observability"
	"github.com/plasmidmap/plasmidmap/pkg/render"
	"github.com/plasmidmap/plasmidmap/pkg/render/circular/layout"
	"github.com/plasmidmap/plasmidmap/pkg/render/circular/sink"
)

// renderArtifacts renders every requested format, serving all of them
// from cache when possible. Partial cache hits re-render everything; the
// vector formats are cheap and PDF/PS share the SVG render anyway.
func (r *Runner) renderArtifacts(ctx context.Context, l *layout.Layout, layoutJSON []byte, layoutHash string, opts Options) (map[string][]byte, bool, error) {
	hooks := observability.Render()
	start := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)

	if !opts.Refresh {
		if artifacts, ok := r.cachedArtifacts(ctx, layoutHash, opts); ok {
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
			return artifacts, true, nil
		}
	}

	artifacts, err := renderFormats(l, layoutJSON, opts)
	if err != nil {
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
		return nil, false, err
	}

	for format, data := range artifacts {
		key := cache.ArtifactKey(layoutHash, format, opts.PNGScale)
		_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact:"+format, len(data))
	}

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return artifacts, false, nil
}

// cachedArtifacts tries to serve every requested format from cache.
func (r *Runner) cachedArtifacts(ctx context.Context, layoutHash string, opts Options) (map[string][]byte, bool) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := cache.ArtifactKey(layoutHash, format, opts.PNGScale)
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			observability.Cache().OnCacheMiss(ctx, "artifact:"+format)
			return nil, false
		}
		observability.Cache().OnCacheHit(ctx, "artifact:"+format)
		artifacts[format] = data
	}
	return artifacts, true
}

// renderFormats renders the layout in each requested format. The SVG is
// rendered at most once and shared by the rsvg-converted formats.
func renderFormats(l *layout.Layout, layoutJSON []byte, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var svg []byte
	renderSVG := func() []byte {
		if svg == nil {
			svg = sink.RenderSVG(l)
		}
		return svg
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[format] = renderSVG()
		case FormatJSON:
			artifacts[format] = layoutJSON
		case FormatPNG:
			var pngOpts []sink.PNGOption
			if opts.PNGScale > 0 {
				pngOpts = append(pngOpts, sink.WithScale(opts.PNGScale))
			}
			data, err := sink.RenderPNG(l, pngOpts...)
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
		case FormatPDF:
			data, err := render.ToPDF(renderSVG())
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
		case FormatPS:
			data, err := render.ToPS(renderSVG())
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
		}
	}
	return artifacts, nil
}
