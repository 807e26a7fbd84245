package layout

import (
	"math"

	"github.com/plasmidmap/plasmidmap/pkg/geometry"
)

// leaderEndRadius returns the radial distance at which off-circle label
// text begins. Leaders clear every occupied orbit plus two ring widths,
// stretched by the feature's line-length scale factor.
func leaderEndRadius(radius, ringWidth float64, maxOrbit int, lengthSF float64) float64 {
	return radius + ringWidth*(orbitGap*float64(maxOrbit)+2)*lengthSF
}

// offCircleLabel builds the leader line and text run for a label placed
// outside the circle at angle theta. The leader runs from fromR to toR;
// the text sits at the leader's outer end, anchored so it reads away from
// the circle: start-anchored on the right half, end-anchored on the left.
func offCircleLabel(tr geometry.Transform, theta, fromR, toR, fontSize float64, text, fontColor, lineColor string) (Line, TextRun) {
	at := tr.PointAtAngle(theta, toR)
	anchor := AnchorEnd
	if geometry.RightHalf(theta) {
		anchor = AnchorStart
	}
	leader := Line{
		From:    tr.PointAtAngle(theta, fromR),
		To:      at,
		Color:   lineColor,
		Width:   1,
		Opacity: leaderOpacity,
	}
	label := TextRun{
		At:       at,
		Text:     text,
		FontSize: fontSize,
		Color:    fontColor,
		Anchor:   anchor,
	}
	return leader, label
}

// curvedLabel distributes a feature's name glyph by glyph along its span,
// centered on the span midpoint. It reports false when the text is wider
// than the span at the given font size; callers drop such labels.
//
// Glyphs in the bottom half of the circle are flipped (rotated a further
// half turn and laid out in reverse) so the text stays upright.
func curvedLabel(tr geometry.Transform, name string, start, end int, inner, outer, fontSize float64, color string) (CurvedRun, bool) {
	runes := []rune(name)
	mid := tr.MidAngle(start, end)
	flipped := geometry.BottomHalf(mid)

	baseline := (inner+outer)/2 - fontSize*0.35
	if flipped {
		baseline = (inner+outer)/2 + fontSize*0.35
	}

	charAngle := fontSize * charWidthSF / baseline
	total := float64(len(runes)) * charAngle
	if total > tr.SpanAngle(start, end) {
		return CurvedRun{}, false
	}

	theta := mid - total/2 + charAngle/2
	step := charAngle
	rotate := 0.0
	if flipped {
		theta = mid + total/2 - charAngle/2
		step = -charAngle
		rotate = math.Pi
	}

	glyphs := make([]Glyph, len(runes))
	for i, r := range runes {
		glyphs[i] = Glyph{
			Char:     string(r),
			At:       tr.PointAtAngle(theta, baseline),
			Rotation: geometry.Normalize(theta + rotate),
		}
		theta += step
	}
	return CurvedRun{Feature: name, Glyphs: glyphs, FontSize: fontSize, Color: color}, true
}
