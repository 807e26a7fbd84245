// Package mapfile loads plasmid map descriptions from TOML files.
//
// A map file names the plasmid and its length, optionally tunes the map
// geometry and tick policy, and lists features as [[feature]] tables:
//
//	name = "pBR322"
//	base_pairs = 4361
//
//	[ticks]
//	style = "n-labels"
//	count = 8
//
//	[[feature]]
//	type = "arrow"
//	name = "TcR"
//	start = 86
//	end = 1276
//	direction = 1
//
// Everything decoded is pushed through the plasmid package's validated
// constructors, so a successfully loaded file always yields a renderable
// plasmid.
package mapfile

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/plasmidmap/plasmidmap/pkg/errors"
	"github.com/plasmidmap/plasmidmap/pkg/plasmid"
)

type document struct {
	Name          string  `toml:"name"`
	BasePairs     int     `toml:"base_pairs"`
	Radius        float64 `toml:"radius"`
	RingWidth     float64 `toml:"ring_width"`
	RingWidthSF   float64 `toml:"ring_width_sf"`
	Color         string  `toml:"color"`
	LabelFontSize float64 `toml:"label_font_size"`

	Ticks    *tickConfig     `toml:"ticks"`
	Features []featureConfig `toml:"feature"`
}

type tickConfig struct {
	Style      string  `toml:"style"`
	Count      int     `toml:"count"`
	DistanceSF float64 `toml:"distance_sf"`
}

type featureConfig struct {
	Type string `toml:"type"`
	Name string `toml:"name"`

	// Multi-pair features.
	Start        int      `toml:"start"`
	End          int      `toml:"end"`
	Direction    int      `toml:"direction"`
	Labels       []string `toml:"labels"`
	LineWidthSF  float64  `toml:"line_width_sf"`
	Orbit        int      `toml:"orbit"`

	// Single-pair features.
	Position  int    `toml:"position"`
	FontColor string `toml:"font_color"`
	LineColor string `toml:"line_color"`

	Color        string  `toml:"color"`
	FontSize     float64 `toml:"font_size"`
	LineLengthSF float64 `toml:"line_length_sf"`
}

// Load reads and parses a plasmid map description from a TOML file.
func Load(path string) (*plasmid.Plasmid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "map file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidMapFile, err, "reading map file %s", path)
	}
	return Parse(data)
}

// Parse builds a validated plasmid from TOML map description bytes.
// Returns INVALID_MAP_FILE for malformed TOML or unknown keys; feature
// and configuration values fail with their specific codes.
func Parse(data []byte) (*plasmid.Plasmid, error) {
	var doc document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMapFile, err, "parsing map file")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidMapFile,
			"map file has unknown keys: %s", strings.Join(keys, ", "))
	}

	p, err := plasmid.New(doc.Name, doc.BasePairs)
	if err != nil {
		return nil, err
	}
	if err := applySettings(p, &doc); err != nil {
		return nil, err
	}

	for i, fc := range doc.Features {
		f, err := buildFeature(&fc)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "feature %d (%s)", i+1, fc.Name)
		}
		if err := p.AddFeature(f); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func applySettings(p *plasmid.Plasmid, doc *document) error {
	if doc.Radius != 0 {
		if err := p.SetRadius(doc.Radius); err != nil {
			return err
		}
	}
	if doc.RingWidth != 0 {
		if err := p.SetRingWidth(doc.RingWidth); err != nil {
			return err
		}
	}
	if doc.RingWidthSF != 0 {
		if err := p.SetRingWidthSF(doc.RingWidthSF); err != nil {
			return err
		}
	}
	if doc.Color != "" {
		p.SetColor(doc.Color)
	}
	if doc.LabelFontSize != 0 {
		if err := p.SetLabelFontSize(doc.LabelFontSize); err != nil {
			return err
		}
	}
	if doc.Ticks == nil {
		return nil
	}
	if doc.Ticks.Style != "" {
		if err := p.SetTickStyle(plasmid.TickStyle(doc.Ticks.Style)); err != nil {
			return err
		}
	}
	if doc.Ticks.Count != 0 {
		if err := p.SetTickCount(doc.Ticks.Count); err != nil {
			return err
		}
	}
	if doc.Ticks.DistanceSF != 0 {
		if err := p.SetTickDistanceSF(doc.Ticks.DistanceSF); err != nil {
			return err
		}
	}
	return nil
}

func buildFeature(fc *featureConfig) (plasmid.Feature, error) {
	switch fc.Type {
	case "rectangle":
		f, err := plasmid.NewRectangle(fc.Name, fc.Start, fc.End)
		if err != nil {
			return nil, err
		}
		return f, applySpanConfig(f, fc)
	case "arrow":
		direction := plasmid.Direction(fc.Direction)
		if fc.Direction == 0 {
			direction = plasmid.Clockwise
		}
		f, err := plasmid.NewArrow(fc.Name, fc.Start, fc.End, direction)
		if err != nil {
			return nil, err
		}
		return f, applySpanConfig(f, fc)
	case "site":
		f, err := plasmid.NewRestrictionSite(fc.Name, fc.Position)
		if err != nil {
			return nil, err
		}
		return f, applyMarkerConfig(&f.Marker, fc)
	case "label":
		f, err := plasmid.NewMarker(fc.Name, fc.Position)
		if err != nil {
			return nil, err
		}
		return f, applyMarkerConfig(f, fc)
	}
	return nil, errors.New(errors.ErrCodeInvalidMapFile,
		"feature type %q is not supported (use rectangle, arrow, site or label)", fc.Type)
}

// spanConfigurable is the setter surface shared by rectangle and arrow
// features.
type spanConfigurable interface {
	SetColor(color string)
	SetOrbit(orbit int) error
	SetLabelStyles(styles ...plasmid.LabelStyle) error
	SetFontSize(size float64) error
	SetLineWidthSF(sf float64) error
	SetLineLengthSF(sf float64) error
}

func applySpanConfig(f spanConfigurable, fc *featureConfig) error {
	if fc.Color != "" {
		f.SetColor(fc.Color)
	}
	if fc.Orbit != 0 {
		if err := f.SetOrbit(fc.Orbit); err != nil {
			return err
		}
	}
	if fc.Labels != nil {
		styles := make([]plasmid.LabelStyle, len(fc.Labels))
		for i, s := range fc.Labels {
			styles[i] = plasmid.LabelStyle(s)
		}
		if err := f.SetLabelStyles(styles...); err != nil {
			return err
		}
	}
	if fc.FontSize != 0 {
		if err := f.SetFontSize(fc.FontSize); err != nil {
			return err
		}
	}
	if fc.LineWidthSF != 0 {
		if err := f.SetLineWidthSF(fc.LineWidthSF); err != nil {
			return err
		}
	}
	if fc.LineLengthSF != 0 {
		if err := f.SetLineLengthSF(fc.LineLengthSF); err != nil {
			return err
		}
	}
	return nil
}

func applyMarkerConfig(m *plasmid.Marker, fc *featureConfig) error {
	if fc.FontColor != "" {
		m.SetFontColor(fc.FontColor)
	}
	if fc.LineColor != "" {
		m.SetLineColor(fc.LineColor)
	}
	if fc.FontSize != 0 {
		if err := m.SetFontSize(fc.FontSize); err != nil {
			return err
		}
	}
	if fc.LineLengthSF != 0 {
		if err := m.SetLineLengthSF(fc.LineLengthSF); err != nil {
			return err
		}
	}
	return nil
}
