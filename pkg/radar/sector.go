package radar

// Sector is an angular category slice of the radar, derived from the
// distinct values of the sector data column. StartAngle and EndAngle are
// radians, clockwise from 0 at the top, assigned by the layout engine so
// that all sectors together partition the full circle.
type Sector struct {
	ID         string
	Name       string
	Colour     string
	StartAngle float64
	EndAngle   float64
	Blips      []*Blip
}

// NewSector creates a sector with an id derived from its name. Angles are
// zero until the layout engine assigns them.
func NewSector(name, colour string) *Sector {
	return &Sector{
		ID:     ID(name),
		Name:   name,
		Colour: colour,
	}
}

// AddBlip appends a blip and sets its back-reference. Insertion order is
// the row order after the ring sort, and is preserved by layout and render.
func (s *Sector) AddBlip(b *Blip) {
	b.Sector = s
	s.Blips = append(s.Blips, b)
}
