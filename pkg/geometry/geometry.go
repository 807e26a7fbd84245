// Package geometry maps base-pair positions on a circular plasmid to
// angles and screen coordinates.
//
// All angular and Cartesian math in the repository routes through this
// package so that every component agrees on the coordinate system:
// angle 0 sits at twelve o'clock and increases clockwise, and points are
// expressed in screen coordinates (y grows downward), matching both the
// SVG and raster sinks.
package geometry

import (
	"math"

	"github.com/plasmidmap/plasmidmap/pkg/errors"
)

// Point is a position in screen coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Transform converts base-pair positions on a plasmid of a fixed length
// into angles and points around a center. The zero value is not usable;
// construct with New.
type Transform struct {
	basePairs int
	center    Point
}

// New creates a Transform for a plasmid of the given length in base pairs,
// centered at center. It returns INVALID_LENGTH if basePairs <= 0.
func New(basePairs int, center Point) (Transform, error) {
	if basePairs <= 0 {
		return Transform{}, errors.New(errors.ErrCodeInvalidLength,
			"plasmid length must be positive, got %d", basePairs)
	}
	return Transform{basePairs: basePairs, center: center}, nil
}

// BasePairs returns the total plasmid length the transform was built for.
func (t Transform) BasePairs() int { return t.basePairs }

// Center returns the circle center.
func (t Transform) Center() Point { return t.center }

// Angle returns the clockwise angle in radians for a base-pair position.
// Position 0 maps to 0 (twelve o'clock) and position basePairs maps to 2π.
// Positions are not reduced modulo the plasmid length; callers validate
// bounds before layout.
func (t Transform) Angle(basePair int) float64 {
	return float64(basePair) / float64(t.basePairs) * 2 * math.Pi
}

// AngleF is Angle for fractional base-pair positions, used for arrowhead
// geometry where head lengths are fractions of a span.
func (t Transform) AngleF(basePair float64) float64 {
	return basePair / float64(t.basePairs) * 2 * math.Pi
}

// PointAt returns the screen coordinates of a base-pair position at the
// given radius from the center.
func (t Transform) PointAt(basePair int, radius float64) Point {
	return t.PointAtAngle(t.Angle(basePair), radius)
}

// PointAtAngle returns the screen coordinates at a clockwise angle
// (radians from twelve o'clock) and radius from the center.
func (t Transform) PointAtAngle(theta, radius float64) Point {
	return PointAt(t.center, theta, radius)
}

// PointAt returns the screen coordinates at a clockwise angle (radians
// from twelve o'clock) and radius from an arbitrary center. Render sinks
// use it to recover arc endpoints from a computed layout.
func PointAt(center Point, theta, radius float64) Point {
	return Point{
		X: center.X + radius*math.Sin(theta),
		Y: center.Y - radius*math.Cos(theta),
	}
}

// MidAngle returns the angle of the midpoint of a [start, end] span.
// Spans never wrap the origin, so the midpoint is the linear average.
func (t Transform) MidAngle(start, end int) float64 {
	return t.AngleF(float64(start+end) / 2)
}

// SpanAngle returns the angular width of a [start, end] span in radians.
func (t Transform) SpanAngle(start, end int) float64 {
	return t.AngleF(float64(end - start))
}

// RightHalf reports whether a clockwise angle falls in the right half of
// the circle (exclusive of exactly twelve and six o'clock). Label text on
// the right half is anchored at its start so it reads away from the circle.
func RightHalf(theta float64) bool {
	theta = Normalize(theta)
	return theta > 0 && theta < math.Pi
}

// BottomHalf reports whether a clockwise angle falls in the bottom half of
// the circle. Curved text in the bottom half is flipped to stay upright.
func BottomHalf(theta float64) bool {
	theta = Normalize(theta)
	return theta > math.Pi/2 && theta < 3*math.Pi/2
}

// Normalize reduces an angle to [0, 2π).
func Normalize(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}

// Degrees converts radians to degrees. Sinks that speak degrees (SVG
// rotate transforms) convert at the edge; all internal math is radians.
func Degrees(theta float64) float64 {
	return theta * 180 / math.Pi
}
