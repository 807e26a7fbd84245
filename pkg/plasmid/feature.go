package plasmid

import (
	"fmt"

	"github.com/plasmidmap/plasmidmap/pkg/errors"
)

// Default styling shared by all feature variants.
const (
	// DefaultColor is the fill color applied to features created without
	// an explicit color.
	DefaultColor = "#069AF3"

	// DefaultFontColor is the label text color for single-pair labels.
	DefaultFontColor = "black"

	// DefaultLineColor is the leader-line color for single-pair labels.
	DefaultLineColor = "black"
)

// LabelStyle selects how a multi-pair feature is labelled. A feature may
// carry both styles, one, or none.
type LabelStyle string

const (
	// LabelOffCircle places the label outside the circle, connected to the
	// feature's midpoint by a leader line.
	LabelOffCircle LabelStyle = "off-circle"

	// LabelOnCircle curves the label text along the feature's span. Labels
	// that cannot fit the span are dropped at layout time.
	LabelOnCircle LabelStyle = "on-circle"
)

// Direction is the reading direction of a directional feature.
type Direction int

const (
	// Clockwise points toward increasing base-pair positions.
	Clockwise Direction = 1

	// CounterClockwise points toward decreasing base-pair positions.
	CounterClockwise Direction = -1
)

// Feature is an annotated element placed on a plasmid. The variant set is
// closed: Rectangle, Arrow, RestrictionSite, and Marker.
type Feature interface {
	// Name returns the display name of the feature.
	Name() string

	// Color returns the feature's fill color (hex or SVG color keyword).
	Color() string

	// Span returns the base-pair interval the feature occupies.
	// Single-pair features return an empty interval (start == end).
	Span() (start, end int)

	isFeature()
}

// =============================================================================
// Shared feature state
// =============================================================================

// baseFeature holds the state common to every variant.
type baseFeature struct {
	name  string
	color string
}

func (f *baseFeature) Name() string  { return f.name }
func (f *baseFeature) Color() string { return f.color }
func (f *baseFeature) isFeature()    {}

// SetName updates the feature's display name.
func (f *baseFeature) SetName(name string) { f.name = name }

// SetColor updates the feature's color. Colors are passed through to the
// render sinks verbatim, so both hex values ("#FF8800") and SVG color
// keywords ("orange") are accepted.
func (f *baseFeature) SetColor(color string) { f.color = color }

// spanFeature holds the state common to multi-pair variants.
type spanFeature struct {
	baseFeature
	start, end int

	orbit        int
	labelStyles  []LabelStyle
	fontSize     float64 // 0 means inherit the plasmid default
	lineWidthSF  float64
	lineLengthSF float64
}

func newSpanFeature(name string, start, end int) (spanFeature, error) {
	if start < 0 {
		return spanFeature{}, errors.New(errors.ErrCodeInvalidSpan,
			"feature %q start must not be negative, got %d", name, start)
	}
	if start >= end {
		return spanFeature{}, errors.New(errors.ErrCodeInvalidSpan,
			"feature %q start %d must be before end %d (spans cannot wrap the origin)", name, start, end)
	}
	return spanFeature{
		baseFeature:  baseFeature{name: name, color: DefaultColor},
		start:        start,
		end:          end,
		labelStyles:  []LabelStyle{LabelOffCircle},
		lineWidthSF:  1,
		lineLengthSF: 1,
	}, nil
}

// Span returns the feature's base-pair interval.
func (f *spanFeature) Span() (start, end int) { return f.start, f.end }

// Start returns the first base pair of the feature.
func (f *spanFeature) Start() int { return f.start }

// End returns the last base pair of the feature.
func (f *spanFeature) End() int { return f.end }

// Length returns the feature's span length in base pairs.
func (f *spanFeature) Length() int { return f.end - f.start }

// Orbit returns the radial band the feature was assigned, 0 being the
// plasmid circle itself. Orbits are normally assigned during layout.
func (f *spanFeature) Orbit() int { return f.orbit }

// SetOrbit places the feature in a radial band. Layout assigns orbits
// automatically; setting one by hand forces the feature outward by that
// many bands. Returns INVALID_ORBIT for negative values.
func (f *spanFeature) SetOrbit(orbit int) error {
	if orbit < 0 {
		return errors.New(errors.ErrCodeInvalidOrbit,
			"orbit must not be negative, got %d", orbit)
	}
	f.orbit = orbit
	return nil
}

// LabelStyles returns the label styles applied to this feature.
func (f *spanFeature) LabelStyles() []LabelStyle { return f.labelStyles }

// SetLabelStyles replaces the feature's label styles. The empty list
// disables labelling. Returns INVALID_LABEL_STYLE for unknown styles.
func (f *spanFeature) SetLabelStyles(styles ...LabelStyle) error {
	for _, s := range styles {
		if s != LabelOffCircle && s != LabelOnCircle {
			return errors.New(errors.ErrCodeInvalidLabelStyle,
				"label style %q is not supported (use %q or %q)", s, LabelOffCircle, LabelOnCircle)
		}
	}
	f.labelStyles = styles
	return nil
}

// HasLabelStyle reports whether the feature carries the given label style.
func (f *spanFeature) HasLabelStyle(style LabelStyle) bool {
	for _, s := range f.labelStyles {
		if s == style {
			return true
		}
	}
	return false
}

// FontSize returns the feature's label font size, or 0 when the plasmid
// default applies.
func (f *spanFeature) FontSize() float64 { return f.fontSize }

// SetFontSize overrides the label font size for this feature only.
// Returns INVALID_FONT_SIZE for non-positive sizes.
func (f *spanFeature) SetFontSize(size float64) error {
	if size <= 0 {
		return errors.New(errors.ErrCodeInvalidFontSize,
			"font size must be positive, got %g", size)
	}
	f.fontSize = size
	return nil
}

// LineWidthSF returns the band-width scale factor.
func (f *spanFeature) LineWidthSF() float64 { return f.lineWidthSF }

// SetLineWidthSF widens (or narrows) the feature's band relative to the
// plasmid ring width. Returns INVALID_LINE_WIDTH for non-positive factors.
func (f *spanFeature) SetLineWidthSF(sf float64) error {
	if sf <= 0 {
		return errors.New(errors.ErrCodeInvalidLineWidth,
			"line width scale factor must be positive, got %g", sf)
	}
	f.lineWidthSF = sf
	return nil
}

// LineLengthSF returns the leader-line length scale factor for the
// feature's off-circle label.
func (f *spanFeature) LineLengthSF() float64 { return f.lineLengthSF }

// SetLineLengthSF scales the leader line of the feature's off-circle
// label. Returns INVALID_LINE_WIDTH for non-positive factors.
func (f *spanFeature) SetLineLengthSF(sf float64) error {
	if sf <= 0 {
		return errors.New(errors.ErrCodeInvalidLineWidth,
			"line length scale factor must be positive, got %g", sf)
	}
	f.lineLengthSF = sf
	return nil
}

// OffCircleLabelText returns the text used when the feature is labelled
// off the circle: the name followed by the base-pair range.
func (f *spanFeature) OffCircleLabelText() string {
	return fmt.Sprintf("%s (%d - %d)", f.name, f.start, f.end)
}

// =============================================================================
// Rectangle
// =============================================================================

// Rectangle is a non-directional feature drawn as an arc band spanning
// [start, end].
type Rectangle struct {
	spanFeature
}

// NewRectangle creates a rectangle feature covering [start, end].
// Returns INVALID_SPAN when start >= end or start is negative; spans
// cannot wrap the origin.
func NewRectangle(name string, start, end int) (*Rectangle, error) {
	sf, err := newSpanFeature(name, start, end)
	if err != nil {
		return nil, err
	}
	return &Rectangle{spanFeature: sf}, nil
}

// =============================================================================
// Arrow
// =============================================================================

// Arrow is a directional feature drawn as an arc band whose leading edge
// is a triangular head pointing in the reading direction.
type Arrow struct {
	spanFeature
	direction Direction
}

// NewArrow creates a directional feature covering [start, end].
// Returns INVALID_SPAN for malformed spans and INVALID_DIRECTION when
// direction is neither Clockwise nor CounterClockwise.
func NewArrow(name string, start, end int, direction Direction) (*Arrow, error) {
	sf, err := newSpanFeature(name, start, end)
	if err != nil {
		return nil, err
	}
	a := &Arrow{spanFeature: sf}
	if err := a.SetDirection(direction); err != nil {
		return nil, err
	}
	return a, nil
}

// Direction returns the arrow's reading direction.
func (a *Arrow) Direction() Direction { return a.direction }

// SetDirection updates the reading direction. Returns INVALID_DIRECTION
// for values other than Clockwise (1) and CounterClockwise (-1).
func (a *Arrow) SetDirection(direction Direction) error {
	if direction != Clockwise && direction != CounterClockwise {
		return errors.New(errors.ErrCodeInvalidDirection,
			"direction must be %d (clockwise) or %d (counter-clockwise), got %d",
			Clockwise, CounterClockwise, direction)
	}
	a.direction = direction
	return nil
}

// =============================================================================
// Marker
// =============================================================================

// Marker is an arbitrary single-pair label: a point on the circle with a
// leader line and literal text. Markers always label off-circle; curved
// text is undefined for a zero-length span.
type Marker struct {
	baseFeature
	position int

	fontSize     float64 // 0 means inherit the plasmid default
	fontColor    string
	lineColor    string
	lineLengthSF float64
}

// NewMarker creates a marker with literal label text at a base-pair
// position. Returns INVALID_POSITION for negative positions.
func NewMarker(text string, position int) (*Marker, error) {
	if position < 0 {
		return nil, errors.New(errors.ErrCodeInvalidPosition,
			"marker %q position must not be negative, got %d", text, position)
	}
	return &Marker{
		baseFeature:  baseFeature{name: text, color: DefaultLineColor},
		position:     position,
		fontColor:    DefaultFontColor,
		lineColor:    DefaultLineColor,
		lineLengthSF: 1,
	}, nil
}

// Span returns the marker's position as an empty interval.
func (m *Marker) Span() (start, end int) { return m.position, m.position }

// Position returns the base pair the marker annotates.
func (m *Marker) Position() int { return m.position }

// LabelText returns the text rendered next to the marker's leader line.
func (m *Marker) LabelText() string { return m.name }

// FontSize returns the marker's font size, or 0 when the plasmid default
// applies.
func (m *Marker) FontSize() float64 { return m.fontSize }

// SetFontSize overrides the label font size for this marker only.
// Returns INVALID_FONT_SIZE for non-positive sizes.
func (m *Marker) SetFontSize(size float64) error {
	if size <= 0 {
		return errors.New(errors.ErrCodeInvalidFontSize,
			"font size must be positive, got %g", size)
	}
	m.fontSize = size
	return nil
}

// FontColor returns the label text color.
func (m *Marker) FontColor() string { return m.fontColor }

// SetFontColor updates the label text color.
func (m *Marker) SetFontColor(color string) { m.fontColor = color }

// LineColor returns the leader-line color.
func (m *Marker) LineColor() string { return m.lineColor }

// SetLineColor updates the leader-line color.
func (m *Marker) SetLineColor(color string) { m.lineColor = color }

// LineLengthSF returns the leader-line length scale factor.
func (m *Marker) LineLengthSF() float64 { return m.lineLengthSF }

// SetLineLengthSF scales the marker's leader line. Returns
// INVALID_LINE_WIDTH for non-positive factors.
func (m *Marker) SetLineLengthSF(sf float64) error {
	if sf <= 0 {
		return errors.New(errors.ErrCodeInvalidLineWidth,
			"line length scale factor must be positive, got %g", sf)
	}
	m.lineLengthSF = sf
	return nil
}

// =============================================================================
// RestrictionSite
// =============================================================================

// RestrictionSite is a marker whose label text is derived from the enzyme
// name and cut position, formatted as "Name (position)".
type RestrictionSite struct {
	Marker
}

// NewRestrictionSite creates a restriction-site marker for an enzyme
// cutting at the given base pair. Returns INVALID_POSITION for negative
// positions.
func NewRestrictionSite(name string, position int) (*RestrictionSite, error) {
	m, err := NewMarker(name, position)
	if err != nil {
		return nil, err
	}
	return &RestrictionSite{Marker: *m}, nil
}

// LabelText returns the site label in the form "BamHI (375)".
func (r *RestrictionSite) LabelText() string {
	return fmt.Sprintf("%s (%d)", r.name, r.position)
}
