// Package radar defines the in-memory model of a radar chart: the aggregate
// Radar, its Sectors, their Blips, and the fixed Ring set.
//
// # Ownership
//
// The Radar owns its Sectors and each Sector owns its Blips. Blips hold
// non-owning references back to their Sector and to one of the shared Ring
// constants. The whole graph is rebuilt from scratch on every data update;
// the only state that survives a rebuild is the per-sector colour map, which
// the host keeps keyed by Sector.ID (see pkg/host).
//
// # Identity
//
// Sector and Blip ids are lowercase slugs derived from their names, so the
// same logical row always produces the same id across rebuilds. Ids are used
// for colour lookup and for addressing elements in the rendered document.
package radar

import "strings"

// Radar is the aggregate root: an ordered set of sectors (first-seen order
// while scanning input rows) plus the fixed ring set.
type Radar struct {
	Sectors []*Sector
}

// New returns an empty radar. An empty radar is valid and renders as an
// empty surface with the ring legend.
func New() *Radar {
	return &Radar{}
}

// Sector returns the sector with the given id, or nil.
func (r *Radar) Sector(id string) *Sector {
	for _, s := range r.Sectors {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// AddSector appends a sector. Discovery order is preserved: angle assignment
// and rendering both iterate sectors in this order.
func (r *Radar) AddSector(s *Sector) {
	r.Sectors = append(r.Sectors, s)
}

// Blips returns a flattened view of all blips across all sectors, in sector
// order then per-sector insertion order. The returned slice is freshly
// allocated; mutating it does not affect the radar.
func (r *Radar) Blips() []*Blip {
	var all []*Blip
	for _, s := range r.Sectors {
		all = append(all, s.Blips...)
	}
	return all
}

// BlipCount returns the total number of blips.
func (r *Radar) BlipCount() int {
	n := 0
	for _, s := range r.Sectors {
		n += len(s.Blips)
	}
	return n
}

// ID derives a stable identifier from a display name: lowercase, with runs
// of non-alphanumeric characters collapsed to single hyphens. The mapping is
// deterministic so customization keyed by id survives rebuilds.
func ID(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	hyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			hyphen = false
		default:
			if !hyphen && b.Len() > 0 {
				b.WriteByte('-')
				hyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
