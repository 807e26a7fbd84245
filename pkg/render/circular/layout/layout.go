// Package layout computes the circular layout for a plasmid map: it
// converts base-pair intervals into polar geometry, resolves feature
// overlap by assigning radial orbits, plans base-pair tick marks, and
// places labels.
//
// The result is a Layout: a flat list of resolution-independent draw
// primitives (arc bands, polygons, lines, text runs, curved glyph runs)
// in user units. Sinks consume a Layout and never recompute geometry, so
// every output format draws the identical map.
//
// Layout computation is synchronous and deterministic. Its only side
// effect is writing the assigned orbit back onto each multi-pair feature.
package layout

import "github.com/plasmidmap/plasmidmap/pkg/geometry"

// Layout proportions relative to the plasmid radius and ring width.
const (
	// frameScale sets the frame half-width to 1.6 radii, leaving room for
	// off-circle labels around the map.
	frameScale = 1.6

	// orbitGap spaces consecutive orbits 1.25 ring widths apart.
	orbitGap = 1.25

	// tickLineSF is the radial extent of a tick line beyond the circle.
	tickLineSF = 1.03

	// tickFontSF sizes tick text relative to the label font size.
	tickFontSF = 0.8

	// titleFontSF sizes the center title relative to the label font size.
	titleFontSF = 1.5

	ringOpacity   = 0.5
	tickOpacity   = 0.5
	leaderOpacity = 0.3

	// charWidthSF estimates a glyph's advance as a fraction of the font
	// size when deciding whether curved text fits a span.
	charWidthSF = 0.6

	// curvedFontColor is the color of on-circle label text, drawn over the
	// feature's filled band.
	curvedFontColor = "white"
)

// Anchor is the horizontal alignment of a text run relative to its point.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// ArcBand is a filled band between two radii over an angular range.
// Angles are clockwise radians from twelve o'clock.
type ArcBand struct {
	Feature    string  `json:"feature,omitempty"`
	Inner      float64 `json:"inner"`
	Outer      float64 `json:"outer"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	Color      string  `json:"color"`
}

// Polygon is a filled polygon, used for arrowheads.
type Polygon struct {
	Feature string           `json:"feature,omitempty"`
	Points  []geometry.Point `json:"points"`
	Color   string           `json:"color"`
}

// Line is a straight stroked segment.
type Line struct {
	From    geometry.Point `json:"from"`
	To      geometry.Point `json:"to"`
	Color   string         `json:"color"`
	Width   float64        `json:"width"`
	Opacity float64        `json:"opacity"`
}

// TextRun is a horizontally drawn piece of text.
type TextRun struct {
	At       geometry.Point `json:"at"`
	Text     string         `json:"text"`
	FontSize float64        `json:"font_size"`
	Color    string         `json:"color"`
	Anchor   Anchor         `json:"anchor"`
	Bold     bool           `json:"bold,omitempty"`
	Italic   bool           `json:"italic,omitempty"`
	Opacity  float64        `json:"opacity,omitempty"`
}

// Glyph is a single character of a curved text run, pre-rotated to stay
// tangent to the circle.
type Glyph struct {
	Char     string         `json:"char"`
	At       geometry.Point `json:"at"`
	Rotation float64        `json:"rotation"` // clockwise radians
}

// CurvedRun is label text distributed along a feature's angular span.
type CurvedRun struct {
	Feature  string  `json:"feature,omitempty"`
	Glyphs   []Glyph `json:"glyphs"`
	FontSize float64 `json:"font_size"`
	Color    string  `json:"color"`
}

// Tick is one base-pair marker: a short radial line plus its label text.
type Tick struct {
	BasePair int     `json:"base_pair"`
	Angle    float64 `json:"angle"`
	Line     Line    `json:"line"`
	Label    TextRun `json:"label"`
}

// Ring is the plasmid circle itself, stroked as a band of the ring width.
type Ring struct {
	Radius  float64 `json:"radius"` // outer radius
	Width   float64 `json:"width"`
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
}

// Layout is the fully computed map: frame geometry plus draw primitives
// in paint order. All coordinates are user units with the origin at the
// top-left of the frame.
type Layout struct {
	Name      string `json:"name"`
	BasePairs int    `json:"base_pairs"`

	FrameWidth  float64        `json:"frame_width"`
	FrameHeight float64        `json:"frame_height"`
	Center      geometry.Point `json:"center"`
	Radius      float64        `json:"radius"`

	Ring     Ring    `json:"ring"`
	Title    TextRun `json:"title"`
	Subtitle TextRun `json:"subtitle"`

	Bands      []ArcBand   `json:"bands,omitempty"`
	Arrowheads []Polygon   `json:"arrowheads,omitempty"`
	Ticks      []Tick      `json:"ticks,omitempty"`
	Leaders    []Line      `json:"leaders,omitempty"`
	Labels     []TextRun   `json:"labels,omitempty"`
	Curved     []CurvedRun `json:"curved,omitempty"`

	// Orbits is the number of radial bands the allocator used.
	Orbits int `json:"orbits"`
}
