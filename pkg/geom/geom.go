// Package geom provides the small set of geometric primitives the radar
// layout and renderer are built on: polar/Cartesian conversion, coordinate
// space translation, and distance.
//
// Two coordinate conventions are used throughout blipradar:
//
//   - Radar space: origin at the radar center, y pointing up. Angles are
//     measured in radians, clockwise from the positive vertical axis
//     (12 o'clock is angle 0, 3 o'clock is π/2).
//   - Surface space: origin at the top-left of the drawing surface, y
//     pointing down. This is the space SVG and raster targets draw in.
//
// PolarToCartesian produces radar-space points; ToAbsolute translates them
// into surface space given the radar center in surface coordinates.
package geom

import "math"

// Point is a location in either radar space or surface space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PolarToCartesian converts a polar coordinate to a radar-space point.
// The angle is measured clockwise from the positive vertical axis, so
// x = distance·sin(angle) and y = distance·cos(angle).
func PolarToCartesian(distance, angle float64) Point {
	return Point{
		X: distance * math.Sin(angle),
		Y: distance * math.Cos(angle),
	}
}

// ToAbsolute translates a radar-space point into surface space, given the
// radar center in surface coordinates. The y axis flips: radar space is
// y-up, surface space is y-down.
func ToAbsolute(p, center Point) Point {
	return Point{
		X: p.X + center.X,
		Y: center.Y - p.Y,
	}
}

// Distance returns the Euclidean distance between two points.
func Distance(p1, p2 Point) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}
