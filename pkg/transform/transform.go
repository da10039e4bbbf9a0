// Package transform builds the radar domain model from a host dataset.
//
// One call to Build is one update pass: it resolves the dataset schema,
// sorts rows by ring order, discovers sectors in first-seen order, resolves
// or generates sector colours, and appends one blip per valid row. The
// resulting radar carries no geometry yet; the layout engine assigns angles
// and coordinates afterwards (see pkg/layout).
//
// Rows with an unknown ring name are skipped with a warning so the visual
// stays usable with partially bad data. Only a missing required column
// aborts the pass.
package transform

import (
	"io"
	"math"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/blipradar/blipradar/pkg/host"
	"github.com/blipradar/blipradar/pkg/palette"
	"github.com/blipradar/blipradar/pkg/radar"
)

// row is one dataset row after schema resolution, with its original index
// kept for diagnostics.
type row struct {
	index     int
	name      string
	desc      string
	sector    string
	ringName  string
	ringOrder int
	isNew     bool
}

// Build constructs a radar from the dataset. Colours for sectors present in
// the store are taken from it; every other sector gets the next generated
// colour. A nil store behaves as an empty one. The returned error is only
// ever a *SchemaError; all row-level problems are absorbed.
func Build(ds host.Dataset, colours host.ColourStore, logger *log.Logger) (*radar.Radar, error) {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	sch, err := resolveSchema(ds.Columns)
	if err != nil {
		return nil, err
	}

	rows := extractRows(ds, sch)

	// Stable sort by ring order so blips within a sector end up grouped
	// innermost-first, and ties keep their original row order.
	slices.SortStableFunc(rows, func(a, b row) int {
		return a.ringOrder - b.ringOrder
	})

	r := radar.New()
	gen := palette.New()
	sectors := make(map[string]*radar.Sector)

	for _, rw := range rows {
		ring, ok := radar.RingByName(rw.ringName)
		if !ok {
			ringErr := &UnknownRingError{Row: rw.index, Ring: rw.ringName}
			logger.Warn("skipping row", "err", ringErr, "name", rw.name)
			continue
		}

		id := radar.ID(rw.sector)
		sector, ok := sectors[id]
		if !ok {
			sector = radar.NewSector(rw.sector, sectorColour(id, colours, gen))
			sectors[id] = sector
			r.AddSector(sector)
		}

		sector.AddBlip(radar.NewBlip(rw.name, rw.desc, rw.isNew, ring))
	}

	return r, nil
}

// sectorColour resolves a sector colour: stored customization first,
// generated otherwise. First occurrence wins; the generator is consulted at
// most once per sector per pass.
func sectorColour(sectorID string, colours host.ColourStore, gen *palette.Generator) string {
	if colours != nil {
		if c, ok := colours.Colour(sectorID); ok {
			return c
		}
	}
	return gen.Next()
}

func extractRows(ds host.Dataset, sch schema) []row {
	rows := make([]row, 0, len(ds.Rows))
	for i, raw := range ds.Rows {
		rw := row{
			index:    i,
			name:     stringAt(raw, sch.name),
			desc:     stringAt(raw, sch.description),
			sector:   stringAt(raw, sch.sector),
			ringName: stringAt(raw, sch.ring),
			isNew:    boolAt(raw, sch.isNew),
		}
		if ring, ok := radar.RingByName(rw.ringName); ok {
			rw.ringOrder = ring.Order
		} else {
			// Unknown rings sort last; they are skipped during the walk
			// but must not perturb the order of valid rows.
			rw.ringOrder = math.MaxInt
		}
		rows = append(rows, rw)
	}
	return rows
}
