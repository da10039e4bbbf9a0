// Package layout computes the geometry of a radar: sector angles, ring
// radii, and collision-avoiding blip coordinates.
//
// Angle assignment and ring radii are deterministic. Blip placement is
// greedy randomized rejection sampling with a bounded attempt budget; it is
// driven by an explicit seeded source so tests (and cache keys) can pin the
// result. A given radar, frame, and seed always lay out identically.
package layout

import (
	"math"

	"github.com/blipradar/blipradar/pkg/radar"
)

// BlipRadius is the visual radius of a blip marker in surface units. The
// renderer draws markers at this size and the placement spacing rule is
// expressed in terms of it.
const BlipRadius = 7.0

// Frame describes the drawing surface the radar is laid out for.
type Frame struct {
	Width   float64
	Height  float64
	Padding float64
}

// Radius returns the usable radar radius: half the smaller dimension minus
// padding, floored at zero for degenerate frames.
func (f Frame) Radius() float64 {
	r := math.Min(f.Width, f.Height)/2 - f.Padding
	return math.Max(r, 0)
}

// AssignAngles partitions the full circle into equal contiguous arcs, one
// per sector in discovery order: sector i spans [i·2π/N, (i+1)·2π/N).
// A radar with no sectors is left untouched.
func AssignAngles(r *radar.Radar) {
	n := len(r.Sectors)
	if n == 0 {
		return
	}
	arc := 2 * math.Pi / float64(n)
	for i, s := range r.Sectors {
		s.StartAngle = float64(i) * arc
		s.EndAngle = float64(i+1) * arc
	}
}

// RingRadii returns the inner and outer radius of ring k (1-indexed) out of
// total rings, for a radar of usable radius R. Rings are equal-width
// concentric annuli; ring 1 is a filled disk.
func RingRadii(R float64, k, total int) (inner, outer float64) {
	inner = R * float64(k-1) / float64(total)
	outer = R * float64(k) / float64(total)
	return inner, outer
}
