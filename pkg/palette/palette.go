// Package palette generates colours for sectors that have no stored
// customization. A Generator is created once per transform pass and
// discarded with it, so colour assignment never leaks state between
// independent updates.
package palette

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// goldenAngle is the hue step in degrees. Stepping the hue by the golden
// angle keeps successive colours far apart on the wheel no matter how many
// sectors a dataset produces.
const goldenAngle = 137.50776405003785

// Fixed saturation and lightness keep the generated colours in the same
// register as the ring greys they sit on.
const (
	saturation = 0.55
	lightness  = 0.48
)

// Generator produces a deterministic sequence of visually distinguishable
// colours. The zero value is ready to use; New exists for symmetry with the
// rest of the codebase.
type Generator struct {
	n int
}

// New returns a generator starting at the first colour of the sequence.
func New() *Generator {
	return &Generator{}
}

// Next returns the next colour in the sequence as a hex string ("#rrggbb").
// Called once per newly discovered sector without a stored colour.
func (g *Generator) Next() string {
	hue := math.Mod(float64(g.n)*goldenAngle, 360)
	g.n++
	return colorful.Hsl(hue, saturation, lightness).Clamped().Hex()
}

// Count reports how many colours have been handed out.
func (g *Generator) Count() int {
	return g.n
}
