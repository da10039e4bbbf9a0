package radar

import "github.com/blipradar/blipradar/pkg/geom"

// Blip is a single plotted item: one row of input data, classified into a
// sector (category) and a ring (maturity). Coordinates are radar-space
// units relative to the center, assigned by the layout engine and recomputed
// on every update.
type Blip struct {
	ID          string
	Name        string
	Description string
	IsNew       bool
	Ring        Ring
	Sector      *Sector // back-reference to the owning sector
	Coordinates geom.Point
}

// NewBlip creates a blip with an id derived from its name.
func NewBlip(name, description string, isNew bool, ring Ring) *Blip {
	return &Blip{
		ID:          ID(name),
		Name:        name,
		Description: description,
		IsNew:       isNew,
		Ring:        ring,
	}
}
