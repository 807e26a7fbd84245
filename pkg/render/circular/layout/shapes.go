package layout

import (
	"math"

	"github.com/plasmidmap/plasmidmap/pkg/geometry"
	"github.com/plasmidmap/plasmidmap/pkg/plasmid"
)

// Arrowhead sizing: the head takes up to half the feature, capped at
// 1.5% of the plasmid so long features don't distort, and floored at
// 0.4% so short features keep a legible head.
const (
	arrowHeadSpanFraction = 0.5
	arrowHeadMaxFraction  = 0.015
	arrowHeadMinFraction  = 0.004
)

// bandRadii returns the inner and outer radius of a feature band at the
// given orbit. Orbit 0 sits on the plasmid circle; each further orbit
// steps outward by 1.25 ring widths. A line-width scale factor widens
// the band symmetrically around its unscaled edges.
func bandRadii(radius, ringWidth, widthSF float64, orbit int) (inner, outer float64) {
	width := ringWidth * widthSF
	adjust := (width - ringWidth) / 2
	base := radius + float64(orbit)*ringWidth*orbitGap
	outer = base + adjust
	inner = outer - width
	return inner, outer
}

// rectangleBand builds the arc band for a rectangle feature.
func rectangleBand(tr geometry.Transform, f *plasmid.Rectangle, radius, ringWidth float64) ArcBand {
	inner, outer := bandRadii(radius, ringWidth, f.LineWidthSF(), f.Orbit())
	return ArcBand{
		Feature:    f.Name(),
		Inner:      inner,
		Outer:      outer,
		StartAngle: tr.Angle(f.Start()),
		EndAngle:   tr.Angle(f.End()),
		Color:      f.Color(),
	}
}

// arrowShapes builds the arc band and triangular head for a directional
// feature. The head's tip reaches the feature's terminal angle: the end
// pair for clockwise features, the start pair for counter-clockwise ones.
// The band covers the remainder of the span; spans shorter than the head
// render as head only.
func arrowShapes(tr geometry.Transform, f *plasmid.Arrow, radius, ringWidth float64) (ArcBand, bool, Polygon) {
	inner, outer := bandRadii(radius, ringWidth, f.LineWidthSF(), f.Orbit())
	head := headLength(f.Length(), tr.BasePairs())

	var tipBP, baseBP, bandStart, bandEnd float64
	switch f.Direction() {
	case plasmid.Clockwise:
		tipBP = float64(f.End())
		baseBP = tipBP - head
		bandStart, bandEnd = float64(f.Start()), baseBP
	default: // counter-clockwise; constructors reject anything else
		tipBP = float64(f.Start())
		baseBP = tipBP + head
		bandStart, bandEnd = baseBP, float64(f.End())
	}

	tipAngle := tr.AngleF(tipBP)
	baseAngle := tr.AngleF(baseBP)
	headPolygon := Polygon{
		Feature: f.Name(),
		Points: []geometry.Point{
			tr.PointAtAngle(tipAngle, (inner+outer)/2),
			tr.PointAtAngle(baseAngle, inner),
			tr.PointAtAngle(baseAngle, outer),
		},
		Color: f.Color(),
	}

	band := ArcBand{
		Feature:    f.Name(),
		Inner:      inner,
		Outer:      outer,
		StartAngle: tr.AngleF(bandStart),
		EndAngle:   tr.AngleF(bandEnd),
		Color:      f.Color(),
	}
	return band, bandEnd > bandStart, headPolygon
}

// headLength returns the arrowhead length in base pairs for a feature of
// the given span length. The floor is absolute: a span shorter than the
// floor still gets a full-width head so direction stays legible, with
// the tip pinned at the terminal angle.
func headLength(span, basePairs int) float64 {
	head := math.Min(float64(span)*arrowHeadSpanFraction, float64(basePairs)*arrowHeadMaxFraction)
	if min := float64(basePairs) * arrowHeadMinFraction; head < min {
		head = min
	}
	return head
}
