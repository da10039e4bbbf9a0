// Package export defines the canonical JSON serialization of a laid-out
// radar. It is used for the json artifact format, for cache keys, and by
// hosts that want the computed model rather than a rendered surface.
//
// The format favors round-trip fidelity: Marshal → Unmarshal → ToRadar
// reproduces the sector order, identity, colours, angles, and coordinates
// of the original model.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/blipradar/blipradar/pkg/geom"
	"github.com/blipradar/blipradar/pkg/radar"
)

// Document is the serialized form of one laid-out radar.
type Document struct {
	Rings   []Ring   `json:"rings"`
	Sectors []Sector `json:"sectors"`
}

// Ring mirrors the fixed ring constants, included so consumers of the json
// artifact do not need to hardcode the ring set.
type Ring struct {
	Name   string `json:"name"`
	Order  int    `json:"order"`
	Colour string `json:"colour"`
}

// Sector is a serialized sector with its layout state and owned blips.
type Sector struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Colour     string  `json:"colour"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	Blips      []Blip  `json:"blips"`
}

// Blip is a serialized blip. The ring is referenced by name; the sector is
// implied by nesting.
type Blip struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	IsNew       bool       `json:"is_new,omitempty"`
	Ring        string     `json:"ring"`
	Coordinates geom.Point `json:"coordinates"`
}

// FromRadar converts a radar model into its serialized form.
func FromRadar(r *radar.Radar) Document {
	doc := Document{
		Rings:   make([]Ring, 0, radar.RingCount),
		Sectors: make([]Sector, 0, len(r.Sectors)),
	}
	for _, ring := range radar.Rings {
		doc.Rings = append(doc.Rings, Ring{Name: ring.Name, Order: ring.Order, Colour: ring.Colour})
	}
	for _, s := range r.Sectors {
		sec := Sector{
			ID:         s.ID,
			Name:       s.Name,
			Colour:     s.Colour,
			StartAngle: s.StartAngle,
			EndAngle:   s.EndAngle,
			Blips:      make([]Blip, 0, len(s.Blips)),
		}
		for _, b := range s.Blips {
			sec.Blips = append(sec.Blips, Blip{
				ID:          b.ID,
				Name:        b.Name,
				Description: b.Description,
				IsNew:       b.IsNew,
				Ring:        b.Ring.Name,
				Coordinates: b.Coordinates,
			})
		}
		doc.Sectors = append(doc.Sectors, sec)
	}
	return doc
}

// ToRadar rebuilds a radar model from its serialized form. Blips referencing
// a ring outside the fixed set fail the conversion; a document that was
// produced by FromRadar cannot contain one.
func (d Document) ToRadar() (*radar.Radar, error) {
	r := radar.New()
	for _, sec := range d.Sectors {
		s := radar.NewSector(sec.Name, sec.Colour)
		s.StartAngle = sec.StartAngle
		s.EndAngle = sec.EndAngle
		for _, b := range sec.Blips {
			ring, ok := radar.RingByName(b.Ring)
			if !ok {
				return nil, fmt.Errorf("sector %q blip %q: unknown ring %q", sec.Name, b.Name, b.Ring)
			}
			blip := radar.NewBlip(b.Name, b.Description, b.IsNew, ring)
			blip.Coordinates = b.Coordinates
			s.AddBlip(blip)
		}
		r.AddSector(s)
	}
	return r, nil
}

// Marshal serializes a radar to indented JSON.
func Marshal(r *radar.Radar) ([]byte, error) {
	return json.MarshalIndent(FromRadar(r), "", "  ")
}

// Unmarshal parses a serialized radar document.
func Unmarshal(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parse radar document: %w", err)
	}
	return doc, nil
}
