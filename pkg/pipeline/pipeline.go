// Package pipeline runs the complete load → layout → render flow for a
// plasmid map.
//
// Centralizing the flow keeps the CLI and the preview server consistent:
// both construct a Runner and call Execute, and both get the same
// caching behavior for free.
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    MapFile: "pbr322.toml",
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/plasmidmap/plasmidmap/pkg/errors"
	"github.com/plasmidmap/plasmidmap/pkg/plasmid"
	"github.com/plasmidmap/plasmidmap/pkg/render/circular/layout"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatPS   = "ps"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatPS:   true,
	FormatJSON: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, ps, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options configures a pipeline run. Exactly one of MapFile and Plasmid
// must be set: MapFile loads a TOML map description from disk, Plasmid
// renders an already constructed map.
type Options struct {
	MapFile string           `json:"map_file,omitempty"`
	Plasmid *plasmid.Plasmid `json:"-"`

	// Formats lists the artifacts to render; defaults to svg.
	Formats []string `json:"formats,omitempty"`

	// PNGScale is the pixels-per-layout-unit scale of png output;
	// 0 uses the sink default.
	PNGScale float64 `json:"png_scale,omitempty"`

	// Refresh bypasses the cache and recomputes everything.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.MapFile == "" && o.Plasmid == nil {
		return errors.New(errors.ErrCodeInvalidMapFile, "a map file or plasmid is required")
	}
	if o.MapFile != "" && o.Plasmid != nil {
		return errors.New(errors.ErrCodeInvalidMapFile, "map file and plasmid are mutually exclusive")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Plasmid is the loaded map description.
	Plasmid *plasmid.Plasmid

	// Layout is the computed circular layout.
	Layout *layout.Layout

	// LayoutHash is the content hash of the layout, used for artifact
	// cache keys.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	FeatureCount int
	OrbitCount   int
	LoadTime     time.Duration
	LayoutTime   time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}
