package layout

import (
	"math"
	"math/rand/v2"

	"github.com/blipradar/blipradar/pkg/geom"
	"github.com/blipradar/blipradar/pkg/radar"
)

const (
	// sectorMargin keeps blips off the axis lines between sectors.
	sectorMargin = math.Pi / 16

	// maxAttempts bounds the rejection-sampling loop per blip. After the
	// last attempt the candidate is accepted regardless of overlap, so
	// placement always terminates.
	maxAttempts = 10

	// minSpacing is the accepted center distance between two blips, as a
	// multiple of BlipRadius.
	minSpacing = 2.1 * BlipRadius

	// Radial insets keep blips away from ring boundary lines.
	innerInset = 1.1
	outerInset = 0.9
)

// Engine places blips using an explicit seeded random source. One engine is
// used per update pass; creating a new engine with the same seed reproduces
// the same placement for the same radar and frame.
type Engine struct {
	rng *rand.Rand
}

// New creates a placement engine seeded with the given value.
func New(seed uint64) *Engine {
	return &Engine{rng: rand.New(rand.NewPCG(seed, seed^0xdeadbeef))}
}

// Run assigns all geometry for one update pass: sector angles, then blip
// coordinates within the frame's usable radius.
func (e *Engine) Run(r *radar.Radar, frame Frame) {
	AssignAngles(r)
	e.Place(r, frame.Radius())
}

// Place computes coordinates for every blip of the radar, walking sectors
// in order and each sector's blips in insertion order (which the transform
// already sorted by ring). Placed points accumulate across the whole radar
// so the spacing rule applies radar-wide.
//
// Each blip gets up to maxAttempts uniformly random candidates within its
// sector's angular range (inset by sectorMargin) and its ring's radial
// range. A candidate is accepted early when it clears every previously
// placed blip by more than minSpacing; otherwise the last candidate is
// taken. Overlap after an exhausted budget is a visual quality issue, not an
// error.
func (e *Engine) Place(r *radar.Radar, radius float64) {
	placed := make([]geom.Point, 0, r.BlipCount())

	for _, sector := range r.Sectors {
		minAngle := sector.StartAngle + sectorMargin
		maxAngle := sector.EndAngle - sectorMargin
		if maxAngle < minAngle {
			// Degenerately thin sector: collapse to the bisector.
			minAngle = (sector.StartAngle + sector.EndAngle) / 2
			maxAngle = minAngle
		}

		for _, blip := range sector.Blips {
			minDist, maxDist := radialRange(radius, blip.Ring)
			p := e.sample(minAngle, maxAngle, minDist, maxDist)
			for attempt := 1; attempt < maxAttempts && !clears(p, placed); attempt++ {
				p = e.sample(minAngle, maxAngle, minDist, maxDist)
			}
			blip.Coordinates = p
			placed = append(placed, p)
		}
	}
}

// radialRange computes the allowed distance band for a blip's ring. The
// innermost ring is a disk, so its minimum is lifted off dead center to
// half the usable band instead of scaling a zero inner radius.
func radialRange(radius float64, ring radar.Ring) (minDist, maxDist float64) {
	inner, outer := RingRadii(radius, ring.Order, radar.RingCount)
	maxDist = outer * outerInset
	if inner == 0 {
		minDist = maxDist / 2
	} else {
		minDist = inner * innerInset
	}
	return minDist, maxDist
}

// sample draws one uniformly random polar candidate and converts it to
// radar-space Cartesian coordinates.
func (e *Engine) sample(minAngle, maxAngle, minDist, maxDist float64) geom.Point {
	angle := minAngle + e.rng.Float64()*(maxAngle-minAngle)
	dist := minDist + e.rng.Float64()*(maxDist-minDist)
	return geom.PolarToCartesian(dist, angle)
}

// clears reports whether p keeps the minimum spacing to every placed point.
func clears(p geom.Point, placed []geom.Point) bool {
	for _, q := range placed {
		if geom.Distance(p, q) <= minSpacing {
			return false
		}
	}
	return true
}
