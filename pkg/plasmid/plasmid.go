// Package plasmid defines the data model for circular plasmid maps: the
// Plasmid coordinate system, its configuration surface, and the closed
// set of feature variants placed on it.
//
// The model enforces a "no silent invalid state" rule: every constructor
// and mutator validates its input and fails with a structured error from
// the errors package. A plasmid that was built without errors is always
// renderable; layout never re-validates.
//
// # Usage
//
//	p, err := plasmid.New("pBR322", 4361)
//	if err != nil {
//	    return err
//	}
//	tcr, err := plasmid.NewArrow("TcR", 86, 1276, plasmid.Clockwise)
//	if err != nil {
//	    return err
//	}
//	if err := p.AddFeature(tcr); err != nil {
//	    return err
//	}
//
// Plasmids are not safe for concurrent use: layout assigns feature orbits
// in place, so each Plasmid must be owned by one call sequence at a time.
package plasmid

import "github.com/plasmidmap/plasmidmap/pkg/errors"

// Default map geometry and tick configuration. The radius is an arbitrary
// unit scale; everything else derives from it so maps stay proportioned
// when the radius changes.
const (
	// DefaultRadius is the plasmid circle radius in user units.
	DefaultRadius = 1000.0

	// DefaultRingWidthFraction sets the ring width to 10% of the radius.
	DefaultRingWidthFraction = 0.10

	// DefaultRingColor is the plasmid circle color.
	DefaultRingColor = "grey"

	// DefaultTickCount is the tick count used by the n-labels style.
	DefaultTickCount = 16

	// DefaultTickDistanceSF places tick label text 10% beyond the circle.
	DefaultTickDistanceSF = 1.10

	// DefaultLabelFontSize is the label font size in user units, sized
	// against DefaultRadius.
	DefaultLabelFontSize = 42.0
)

// TickStyle selects how base-pair tick marks are planned.
type TickStyle string

const (
	// TickAuto picks a "nice" base-pair interval (1/2/5 x 10^k) yielding
	// roughly 6-12 ticks.
	TickAuto TickStyle = "auto"

	// TickNLabels spaces exactly TickCount ticks evenly around the circle.
	TickNLabels TickStyle = "n-labels"

	// TickNone disables tick marks.
	TickNone TickStyle = "none"
)

// Plasmid is the circular coordinate system for one map: a fixed base-pair
// length, display configuration, and an ordered list of features.
// Insertion order is preserved and used as the z-order tiebreak.
type Plasmid struct {
	name      string
	basePairs int

	radius         float64
	ringWidth      float64 // 0 means derived from radius
	ringWidthSF    float64
	color          string
	tickStyle      TickStyle
	tickCount      int
	tickDistanceSF float64
	labelFontSize  float64

	features []Feature
}

// New creates a plasmid map of the given length in base pairs.
// Returns INVALID_LENGTH when basePairs <= 0.
func New(name string, basePairs int) (*Plasmid, error) {
	if basePairs <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidLength,
			"plasmid length must be positive, got %d", basePairs)
	}
	return &Plasmid{
		name:           name,
		basePairs:      basePairs,
		radius:         DefaultRadius,
		ringWidthSF:    1,
		color:          DefaultRingColor,
		tickStyle:      TickAuto,
		tickCount:      DefaultTickCount,
		tickDistanceSF: DefaultTickDistanceSF,
		labelFontSize:  DefaultLabelFontSize,
	}, nil
}

// AddFeature places a feature on the plasmid. The feature's span must lie
// inside [0, BasePairs]; spans cannot wrap the origin. Returns
// OUT_OF_BOUNDS otherwise.
func (p *Plasmid) AddFeature(f Feature) error {
	start, end := f.Span()
	if start < 0 || end > p.basePairs {
		return errors.New(errors.ErrCodeOutOfBounds,
			"feature %q spans [%d, %d] outside plasmid length %d", f.Name(), start, end, p.basePairs)
	}
	p.features = append(p.features, f)
	return nil
}

// Features returns the plasmid's features in insertion order. The slice
// is shared with the plasmid; callers must not reorder it.
func (p *Plasmid) Features() []Feature { return p.features }

// Name returns the plasmid's display name, drawn in the circle center.
func (p *Plasmid) Name() string { return p.name }

// SetName updates the plasmid's display name.
func (p *Plasmid) SetName(name string) { p.name = name }

// BasePairs returns the total plasmid length.
func (p *Plasmid) BasePairs() int { return p.basePairs }

// Radius returns the plasmid circle radius in user units.
func (p *Plasmid) Radius() float64 { return p.radius }

// SetRadius updates the circle radius. Returns INVALID_LINE_WIDTH for
// non-positive values.
func (p *Plasmid) SetRadius(radius float64) error {
	if radius <= 0 {
		return errors.New(errors.ErrCodeInvalidLineWidth,
			"radius must be positive, got %g", radius)
	}
	p.radius = radius
	return nil
}

// RingWidth returns the effective plasmid ring width: the absolute width
// if one was set (otherwise 10% of the radius), times the scale factor.
func (p *Plasmid) RingWidth() float64 {
	w := p.ringWidth
	if w == 0 {
		w = p.radius * DefaultRingWidthFraction
	}
	return w * p.ringWidthSF
}

// SetRingWidth sets an absolute ring width, replacing the derived
// default. Returns INVALID_LINE_WIDTH for non-positive values.
func (p *Plasmid) SetRingWidth(width float64) error {
	if width <= 0 {
		return errors.New(errors.ErrCodeInvalidLineWidth,
			"ring width must be positive, got %g", width)
	}
	p.ringWidth = width
	return nil
}

// SetRingWidthSF scales the ring width relative to its absolute or
// derived value. Returns INVALID_LINE_WIDTH for non-positive factors.
func (p *Plasmid) SetRingWidthSF(sf float64) error {
	if sf <= 0 {
		return errors.New(errors.ErrCodeInvalidLineWidth,
			"ring width scale factor must be positive, got %g", sf)
	}
	p.ringWidthSF = sf
	return nil
}

// Color returns the ring color.
func (p *Plasmid) Color() string { return p.color }

// SetColor updates the ring color.
func (p *Plasmid) SetColor(color string) { p.color = color }

// TickStyle returns the configured tick style.
func (p *Plasmid) TickStyle() TickStyle { return p.tickStyle }

// SetTickStyle selects the tick planning policy. Returns
// INVALID_TICK_STYLE for unknown styles.
func (p *Plasmid) SetTickStyle(style TickStyle) error {
	switch style {
	case TickAuto, TickNLabels, TickNone:
		p.tickStyle = style
		return nil
	}
	return errors.New(errors.ErrCodeInvalidTickStyle,
		"tick style %q is not supported (use %q, %q or %q)", style, TickAuto, TickNLabels, TickNone)
}

// TickCount returns the tick count used by the n-labels style.
func (p *Plasmid) TickCount() int { return p.tickCount }

// SetTickCount sets the number of ticks for the n-labels style.
// Returns INVALID_TICK_COUNT for non-positive counts.
func (p *Plasmid) SetTickCount(n int) error {
	if n <= 0 {
		return errors.New(errors.ErrCodeInvalidTickCount,
			"tick count must be positive, got %d", n)
	}
	p.tickCount = n
	return nil
}

// TickDistanceSF returns the radial scale factor for tick label text.
func (p *Plasmid) TickDistanceSF() float64 { return p.tickDistanceSF }

// SetTickDistanceSF moves tick label text closer to or further from the
// circle. Returns INVALID_LINE_WIDTH for non-positive factors.
func (p *Plasmid) SetTickDistanceSF(sf float64) error {
	if sf <= 0 {
		return errors.New(errors.ErrCodeInvalidLineWidth,
			"tick distance scale factor must be positive, got %g", sf)
	}
	p.tickDistanceSF = sf
	return nil
}

// LabelFontSize returns the map-wide label font size. Features that set
// their own size keep it; all others inherit this value at layout time.
func (p *Plasmid) LabelFontSize() float64 { return p.labelFontSize }

// SetLabelFontSize overrides the map-wide label font size.
// Returns INVALID_FONT_SIZE for non-positive sizes.
func (p *Plasmid) SetLabelFontSize(size float64) error {
	if size <= 0 {
		return errors.New(errors.ErrCodeInvalidFontSize,
			"font size must be positive, got %g", size)
	}
	p.labelFontSize = size
	return nil
}
