package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestPolarToCartesian_ClockwiseFromVertical(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		angle    float64
		want     Point
	}{
		{"angle 0 points up", 10, 0, Point{X: 0, Y: 10}},
		{"quarter turn points right", 10, math.Pi / 2, Point{X: 10, Y: 0}},
		{"half turn points down", 10, math.Pi, Point{X: 0, Y: -10}},
		{"three quarters points left", 10, 3 * math.Pi / 2, Point{X: -10, Y: 0}},
		{"zero distance is the origin", 0, 1.234, Point{X: 0, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PolarToCartesian(tt.distance, tt.angle)
			if !almostEqual(got.X, tt.want.X) || !almostEqual(got.Y, tt.want.Y) {
				t.Errorf("PolarToCartesian(%v, %v) = %+v, want %+v", tt.distance, tt.angle, got, tt.want)
			}
		})
	}
}

func TestPolarToCartesian_PreservesDistance(t *testing.T) {
	for _, angle := range []float64{0, 0.3, 1.1, 2.9, 4.5, 6.2} {
		p := PolarToCartesian(7.5, angle)
		if got := Distance(Point{}, p); !almostEqual(got, 7.5) {
			t.Errorf("angle %v: distance from origin = %v, want 7.5", angle, got)
		}
	}
}

func TestToAbsolute_FlipsY(t *testing.T) {
	center := Point{X: 400, Y: 300}

	tests := []struct {
		name string
		p    Point
		want Point
	}{
		{"center maps to center", Point{0, 0}, Point{400, 300}},
		{"up in radar space is up on the surface", Point{0, 100}, Point{400, 200}},
		{"down in radar space is down on the surface", Point{0, -100}, Point{400, 400}},
		{"x is a plain translation", Point{-50, 0}, Point{350, 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToAbsolute(tt.p, center); got != tt.want {
				t.Errorf("ToAbsolute(%+v, %+v) = %+v, want %+v", tt.p, center, got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		want   float64
	}{
		{"same point", Point{3, 4}, Point{3, 4}, 0},
		{"3-4-5 triangle", Point{0, 0}, Point{3, 4}, 5},
		{"symmetric", Point{3, 4}, Point{0, 0}, 5},
		{"negative coordinates", Point{-1, -1}, Point{2, 3}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.p1, tt.p2); !almostEqual(got, tt.want) {
				t.Errorf("Distance(%+v, %+v) = %v, want %v", tt.p1, tt.p2, got, tt.want)
			}
		})
	}
}
