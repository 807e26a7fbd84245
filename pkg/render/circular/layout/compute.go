package layout

import (
	"context"
	"fmt"
	"time"

	"github.com/plasmidmap/plasmidmap/pkg/errors"
	"github.com/plasmidmap/plasmidmap/pkg/geometry"
	"github.com/plasmidmap/plasmidmap/pkg/observability"
	"github.com/plasmidmap/plasmidmap/pkg/plasmid"
)

// Compute resolves a plasmid into its circular layout: orbits are
// assigned, shapes and ticks are placed, and labels that fit are laid
// out. Labels that cannot fit their span are dropped, reported through
// the layout observability hooks; everything else either places or the
// whole computation fails.
func Compute(ctx context.Context, p *plasmid.Plasmid) (*Layout, error) {
	start := time.Now()
	hooks := observability.Layout()
	hooks.OnLayoutStart(ctx, len(p.Features()))

	l, orbits, err := compute(ctx, p)
	hooks.OnLayoutComplete(ctx, orbits, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func compute(ctx context.Context, p *plasmid.Plasmid) (*Layout, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, errors.Wrap(errors.ErrCodeInternal, err, "layout cancelled")
	}

	radius := p.Radius()
	ringWidth := p.RingWidth()
	center := geometry.Point{X: frameScale * radius, Y: frameScale * radius}

	tr, err := geometry.New(p.BasePairs(), center)
	if err != nil {
		return nil, 0, err
	}

	var banded []Banded
	for _, f := range p.Features() {
		if b, ok := f.(Banded); ok {
			banded = append(banded, b)
		}
	}
	orbits, err := AllocateOrbits(banded)
	if err != nil {
		return nil, 0, err
	}
	observability.Layout().OnOrbitsAssigned(ctx, orbits)

	l := &Layout{
		Name:        p.Name(),
		BasePairs:   p.BasePairs(),
		FrameWidth:  2 * frameScale * radius,
		FrameHeight: 2 * frameScale * radius,
		Center:      center,
		Radius:      radius,
		Orbits:      orbits,
		Ring: Ring{
			Radius:  radius,
			Width:   ringWidth,
			Color:   p.Color(),
			Opacity: ringOpacity,
		},
		Title: TextRun{
			At:       center,
			Text:     p.Name(),
			FontSize: p.LabelFontSize() * titleFontSF,
			Color:    plasmid.DefaultFontColor,
			Anchor:   AnchorMiddle,
			Bold:     true,
		},
		Subtitle: TextRun{
			At:       geometry.Point{X: center.X, Y: center.Y + p.LabelFontSize()*titleFontSF},
			Text:     fmt.Sprintf("%dbp", p.BasePairs()),
			FontSize: p.LabelFontSize(),
			Color:    plasmid.DefaultFontColor,
			Anchor:   AnchorMiddle,
		},
	}

	if err := placeTicks(l, tr, p); err != nil {
		return nil, 0, err
	}
	if err := placeFeatures(ctx, l, tr, p); err != nil {
		return nil, 0, err
	}
	return l, orbits, nil
}

// placeTicks plans the tick positions and places one line and one label
// per position.
func placeTicks(l *Layout, tr geometry.Transform, p *plasmid.Plasmid) error {
	positions, err := PlanTicks(p.BasePairs(), p.TickStyle(), p.TickCount())
	if err != nil {
		return err
	}
	fontSize := p.LabelFontSize() * tickFontSF
	for _, bp := range positions {
		theta := tr.Angle(bp)
		l.Ticks = append(l.Ticks, Tick{
			BasePair: bp,
			Angle:    theta,
			Line: Line{
				From:    tr.PointAtAngle(theta, p.Radius()),
				To:      tr.PointAtAngle(theta, p.Radius()*tickLineSF),
				Color:   plasmid.DefaultLineColor,
				Width:   1,
				Opacity: tickOpacity,
			},
			Label: TextRun{
				At:       tr.PointAtAngle(theta, p.Radius()*p.TickDistanceSF()),
				Text:     fmt.Sprintf("%d", bp),
				FontSize: fontSize,
				Color:    plasmid.DefaultFontColor,
				Anchor:   AnchorMiddle,
				Italic:   true,
				Opacity:  tickOpacity,
			},
		})
	}
	return nil
}

// spanLabelled is the view of a multi-pair feature the label placer
// works with; both rectangle and arrow features satisfy it.
type spanLabelled interface {
	Banded
	Color() string
	FontSize() float64
	LineWidthSF() float64
	LineLengthSF() float64
	HasLabelStyle(style plasmid.LabelStyle) bool
	OffCircleLabelText() string
}

// placeFeatures walks the features in insertion order and places each
// variant's shapes and labels.
func placeFeatures(ctx context.Context, l *Layout, tr geometry.Transform, p *plasmid.Plasmid) error {
	radius, ringWidth := p.Radius(), p.RingWidth()
	maxOrbit := l.Orbits - 1
	if maxOrbit < 0 {
		maxOrbit = 0
	}
	for _, f := range p.Features() {
		switch f := f.(type) {
		case *plasmid.Rectangle:
			l.Bands = append(l.Bands, rectangleBand(tr, f, radius, ringWidth))
			placeSpanLabels(ctx, l, tr, f, p.LabelFontSize(), radius, ringWidth, maxOrbit)
		case *plasmid.Arrow:
			band, hasBand, head := arrowShapes(tr, f, radius, ringWidth)
			if hasBand {
				l.Bands = append(l.Bands, band)
			}
			l.Arrowheads = append(l.Arrowheads, head)
			placeSpanLabels(ctx, l, tr, f, p.LabelFontSize(), radius, ringWidth, maxOrbit)
		case *plasmid.RestrictionSite:
			placeMarkerLabel(l, tr, f.LabelText(), &f.Marker, p.LabelFontSize(), radius, ringWidth, maxOrbit)
		case *plasmid.Marker:
			placeMarkerLabel(l, tr, f.LabelText(), f, p.LabelFontSize(), radius, ringWidth, maxOrbit)
		default:
			return errors.New(errors.ErrCodeUnsupported,
				"feature %q has unsupported type %T", f.Name(), f)
		}
	}
	return nil
}

// placeSpanLabels places the labels a multi-pair feature asked for. The
// off-circle style always places, its leader ending beyond the layout's
// outermost orbit; the on-circle style is dropped when the text cannot
// fit the feature's span.
func placeSpanLabels(ctx context.Context, l *Layout, tr geometry.Transform, f spanLabelled, defaultFontSize, radius, ringWidth float64, maxOrbit int) {
	start, end := f.Span()
	fontSize := effectiveFontSize(f.FontSize(), defaultFontSize)
	inner, outer := bandRadii(radius, ringWidth, f.LineWidthSF(), f.Orbit())

	if f.HasLabelStyle(plasmid.LabelOffCircle) {
		endR := leaderEndRadius(radius, ringWidth, maxOrbit, f.LineLengthSF())
		leader, label := offCircleLabel(tr, tr.MidAngle(start, end), outer, endR,
			fontSize, f.OffCircleLabelText(), plasmid.DefaultFontColor, plasmid.DefaultLineColor)
		l.Leaders = append(l.Leaders, leader)
		l.Labels = append(l.Labels, label)
	}

	if f.HasLabelStyle(plasmid.LabelOnCircle) {
		run, ok := curvedLabel(tr, f.Name(), start, end, inner, outer, fontSize, curvedFontColor)
		if !ok {
			observability.Layout().OnLabelDropped(ctx, f.Name(), "label wider than feature span")
			return
		}
		l.Curved = append(l.Curved, run)
	}
}

// placeMarkerLabel places a single-pair label: a leader line off the
// circle at the marker's position plus its literal text.
func placeMarkerLabel(l *Layout, tr geometry.Transform, text string, m *plasmid.Marker, defaultFontSize, radius, ringWidth float64, maxOrbit int) {
	theta := tr.Angle(m.Position())
	endR := leaderEndRadius(radius, ringWidth, maxOrbit, m.LineLengthSF())
	leader, label := offCircleLabel(tr, theta, radius, endR,
		effectiveFontSize(m.FontSize(), defaultFontSize), text, m.FontColor(), m.LineColor())
	l.Leaders = append(l.Leaders, leader)
	l.Labels = append(l.Labels, label)
}

// effectiveFontSize resolves the font-size inheritance rule: a feature's
// own size wins, 0 inherits the map-wide default.
func effectiveFontSize(override, fallback float64) float64 {
	if override > 0 {
		return override
	}
	return fallback
}
