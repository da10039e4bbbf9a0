package radar

// Ring is one of the fixed maturity bands of the radar. Order 1 is the
// innermost ring. Rings are shared constants, never derived from data.
type Ring struct {
	Name   string
	Order  int
	Colour string
}

// The closed ring set. Every blip belongs to exactly one of these; rows
// naming anything else are rejected during transformation.
var Rings = [4]Ring{
	{Name: "Accelerate", Order: 1, Colour: "#cbcbcb"},
	{Name: "Progress", Order: 2, Colour: "#d8d8d8"},
	{Name: "Monitor", Order: 3, Colour: "#e4e4e4"},
	{Name: "Pause", Order: 4, Colour: "#f1f1f1"},
}

// RingCount is the size of the fixed ring set.
const RingCount = len(Rings)

// RingByName resolves a ring by exact name match against the fixed set.
func RingByName(name string) (Ring, bool) {
	for _, r := range Rings {
		if r.Name == name {
			return r, true
		}
	}
	return Ring{}, false
}
