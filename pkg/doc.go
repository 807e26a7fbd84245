// Package pkg provides the core libraries for plasmidmap circular map rendering.
//
// # Overview
//
// Plasmidmap turns an annotated circular DNA sequence description into a
// publication-ready map: features become colored bands on concentric
// orbits around the plasmid circle, with tick marks, curved on-circle
// labels, and leader-line off-circle labels. The pkg directory is
// organized into five main areas:
//
//  1. [plasmid] - Data model (plasmid, feature variants, label config)
//  2. [geometry] - Base-pair to polar coordinate transform
//  3. [render] - Layout computation and output sinks
//  4. [pipeline] - Orchestration (load → layout → render) with caching
//  5. [mapfile] - TOML map-description parsing
//
// # Architecture
//
// The typical data flow through plasmidmap:
//
//	TOML map description
//	         ↓
//	    [mapfile] package (parse + validate)
//	         ↓
//	    [plasmid] package (data model)
//	         ↓
//	    [render/circular/layout] package (orbits, ticks, labels)
//	         ↓
//	    [render/circular/sink] package (SVG, PNG, JSON)
//	         ↓
//	    SVG/PNG/PDF/PS/JSON output
//
// # Quick Start
//
// Build a plasmid and render it to SVG:
//
//	import (
//	    "context"
//	    "github.com/plasmidmap/plasmidmap/pkg/plasmid"
//	    "github.com/plasmidmap/plasmidmap/pkg/render/circular/layout"
//	    "github.com/plasmidmap/plasmidmap/pkg/render/circular/sink"
//	)
//
//	// 1. Describe the plasmid
//	p, _ := plasmid.New("pBR322", 4361)
//	tcr, _ := plasmid.NewArrow("TcR", 86, 1276, plasmid.Clockwise)
//	_ = p.AddFeature(tcr)
//
//	// 2. Compute the layout
//	l, _ := layout.Compute(context.Background(), p)
//
//	// 3. Render to SVG
//	svg := sink.RenderSVG(l)
//
// # Main Packages
//
// [plasmid] - The data model: Plasmid with radius, ring width, tick and
// label configuration, plus the closed feature set (Rectangle, Arrow,
// RestrictionSite, Marker).
//
// [geometry] - The polar transform: base pairs to clockwise angles from
// twelve o'clock, angles to screen points with y increasing downward.
//
// [render/circular/layout] - Layout computation: greedy orbit allocation
// for overlapping features, tick planning ({1,2,5}×10^k auto intervals),
// arrowhead geometry, curved on-circle labels with fit rejection, and
// off-circle labels with leader lines. Produces a flat Layout of
// resolution-independent draw primitives.
//
// [render/circular/sink] - Output sinks consuming a Layout: hand-built
// SVG, rasterized PNG via gg, and round-trippable JSON.
//
// [render] - Format conversion (SVG to PDF/PS via rsvg-convert).
//
// [mapfile] - TOML map-description files with strict unknown-key
// rejection and structured validation errors.
//
// [pipeline] - The load → layout → render flow shared by the CLI and the
// preview server, with content-addressed caching of layouts and
// artifacts.
//
// [cache] - File-backed byte cache with per-entry TTLs.
//
// [errors] - Structured error codes shared across packages.
//
// [observability] - Optional hooks for layout, render, and cache events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                       # All tests
//	go test ./pkg/render/circular/...      # Layout and sinks only
//
// [plasmid]: https://pkg.go.dev/github.com/plasmidmap/plasmidmap/pkg/plasmid
// [geometry]: https://pkg.go.dev/github.com/plasmidmap/plasmidmap/pkg/geometry
// [render]: https://pkg.go.dev/github.com/plasmidmap/plasmidmap/pkg/render
// [render/circular/layout]: https://pkg.go.dev/github.com/plasmidmap/plasmidmap/pkg/render/circular/layout
// [render/circular/sink]: https://pkg.go.dev/github.com/plasmidmap/plasmidmap/pkg/render/circular/sink
// [mapfile]: https://pkg.go.dev/github.com/plasmidmap/plasmidmap/pkg/mapfile
// [pipeline]: https://pkg.go.dev/github.com/plasmidmap/plasmidmap/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/plasmidmap/plasmidmap/pkg/cache
// [errors]: https://pkg.go.dev/github.com/plasmidmap/plasmidmap/pkg/errors
// [observability]: https://pkg.go.dev/github.com/plasmidmap/plasmidmap/pkg/observability
package pkg
