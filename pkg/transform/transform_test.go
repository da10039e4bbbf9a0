package transform

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/blipradar/blipradar/pkg/host"
)

// testDataset builds a dataset with the canonical column order.
func testDataset(rows ...[]any) host.Dataset {
	return host.Dataset{
		Columns: []host.Column{
			{Name: "Title", Role: host.RoleName},
			{Name: "Details", Role: host.RoleDescription},
			{Name: "Category", Role: host.RoleSector},
			{Name: "Status", Role: host.RoleRing},
			{Name: "New", Role: host.RoleIsNew},
		},
		Rows: rows,
	}
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestBuild_GroupsRowsIntoSectors(t *testing.T) {
	ds := testDataset(
		[]any{"A", "", "X", "Accelerate", false},
		[]any{"B", "", "X", "Pause", false},
		[]any{"C", "", "Y", "Progress", false},
	)

	r, err := Build(ds, nil, quietLogger())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got, want := len(r.Sectors), 2; got != want {
		t.Fatalf("sector count = %d, want %d", got, want)
	}
	if got, want := r.Sectors[0].Name, "X"; got != want {
		t.Errorf("first sector = %q, want %q", got, want)
	}
	if got, want := r.Sectors[1].Name, "Y"; got != want {
		t.Errorf("second sector = %q, want %q", got, want)
	}

	// Within X, blips follow ring order: Accelerate before Pause.
	x := r.Sectors[0]
	if got, want := len(x.Blips), 2; got != want {
		t.Fatalf("sector X blip count = %d, want %d", got, want)
	}
	if x.Blips[0].Name != "A" || x.Blips[1].Name != "B" {
		t.Errorf("sector X blips = [%s %s], want [A B]", x.Blips[0].Name, x.Blips[1].Name)
	}
	if got, want := x.Blips[0].Ring.Name, "Accelerate"; got != want {
		t.Errorf("first blip ring = %q, want %q", got, want)
	}
}

func TestBuild_SectorDiscoveryFollowsRingSortedOrder(t *testing.T) {
	// Y's row is in an inner ring than X's, so Y is discovered first even
	// though X appears first in raw row order.
	ds := testDataset(
		[]any{"A", "", "X", "Pause", false},
		[]any{"B", "", "Y", "Accelerate", false},
	)

	r, err := Build(ds, nil, quietLogger())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got, want := r.Sectors[0].Name, "Y"; got != want {
		t.Errorf("first discovered sector = %q, want %q", got, want)
	}
}

func TestBuild_ColumnOrderIrrelevant(t *testing.T) {
	ds := host.Dataset{
		Columns: []host.Column{
			{Name: "Status", Role: host.RoleRing},
			{Name: "New", Role: host.RoleIsNew},
			{Name: "Title", Role: host.RoleName},
			{Name: "Category", Role: host.RoleSector},
		},
		Rows: [][]any{
			{"Monitor", true, "GraphQL", "APIs"},
		},
	}

	r, err := Build(ds, nil, quietLogger())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	blips := r.Blips()
	if len(blips) != 1 {
		t.Fatalf("blip count = %d, want 1", len(blips))
	}
	b := blips[0]
	if b.Name != "GraphQL" || b.Ring.Name != "Monitor" || !b.IsNew {
		t.Errorf("blip = %+v, want GraphQL/Monitor/new", b)
	}
	if b.Sector.Name != "APIs" {
		t.Errorf("blip sector = %q, want APIs", b.Sector.Name)
	}
}

func TestBuild_MissingRequiredRoles(t *testing.T) {
	ds := host.Dataset{
		Columns: []host.Column{
			{Name: "Title", Role: host.RoleName},
			{Name: "Details", Role: host.RoleDescription},
		},
		Rows: [][]any{{"A", "x"}},
	}

	_, err := Build(ds, nil, quietLogger())
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("err = %v, want *SchemaError", err)
	}
	if got, want := len(schemaErr.Missing), 2; got != want {
		t.Errorf("missing roles = %v, want %d entries", schemaErr.Missing, want)
	}
}

func TestBuild_UnknownRingRowSkipped(t *testing.T) {
	ds := testDataset(
		[]any{"A", "", "X", "Accelerate", false},
		[]any{"B", "", "X", "Hold", false}, // not in the fixed ring set
		[]any{"C", "", "X", "Pause", false},
	)

	r, err := Build(ds, nil, quietLogger())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got, want := r.BlipCount(), 2; got != want {
		t.Errorf("blip count = %d, want %d (bad row skipped)", got, want)
	}
	for _, b := range r.Blips() {
		if b.Name == "B" {
			t.Error("row with unknown ring survived the transform")
		}
	}
}

func TestBuild_UnknownRingDoesNotCreateSector(t *testing.T) {
	ds := testDataset(
		[]any{"A", "", "X", "Hold", false},
	)
	r, err := Build(ds, nil, quietLogger())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := len(r.Sectors); got != 0 {
		t.Errorf("sector count = %d, want 0", got)
	}
}

func TestBuild_EmptyDataset(t *testing.T) {
	r, err := Build(testDataset(), nil, quietLogger())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(r.Sectors) != 0 || r.BlipCount() != 0 {
		t.Errorf("empty dataset produced %d sectors, %d blips", len(r.Sectors), r.BlipCount())
	}
}

func TestBuild_StoredColoursWin(t *testing.T) {
	store := host.MemoryStore{"x": "#abcdef"}
	ds := testDataset(
		[]any{"A", "", "X", "Accelerate", false},
		[]any{"B", "", "Y", "Accelerate", false},
	)

	r, err := Build(ds, store, quietLogger())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got, want := r.Sectors[0].Colour, "#abcdef"; got != want {
		t.Errorf("customized sector colour = %q, want %q", got, want)
	}
	if r.Sectors[1].Colour == "" || r.Sectors[1].Colour == "#abcdef" {
		t.Errorf("generated sector colour = %q, want a distinct generated value", r.Sectors[1].Colour)
	}
}

func TestBuild_StableAcrossReruns(t *testing.T) {
	ds := testDataset(
		[]any{"A", "", "Platform", "Accelerate", false},
		[]any{"B", "", "Dev Tools", "Monitor", true},
	)

	first, err := Build(ds, nil, quietLogger())
	if err != nil {
		t.Fatalf("first Build: %v", err)
	}
	second, err := Build(ds, nil, quietLogger())
	if err != nil {
		t.Fatalf("second Build: %v", err)
	}

	if len(first.Sectors) != len(second.Sectors) {
		t.Fatalf("sector counts differ: %d vs %d", len(first.Sectors), len(second.Sectors))
	}
	for i := range first.Sectors {
		a, b := first.Sectors[i], second.Sectors[i]
		if a.ID != b.ID {
			t.Errorf("sector %d id changed: %q vs %q", i, a.ID, b.ID)
		}
		if a.Colour != b.Colour {
			t.Errorf("sector %q colour changed: %q vs %q", a.Name, a.Colour, b.Colour)
		}
	}
}

func TestBuild_BoolCoercion(t *testing.T) {
	ds := testDataset(
		[]any{"A", "", "X", "Accelerate", "true"},
		[]any{"B", "", "X", "Accelerate", "no"},
		[]any{"C", "", "X", "Accelerate", 1},
		[]any{"D", "", "X", "Accelerate", nil},
	)

	r, err := Build(ds, nil, quietLogger())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := map[string]bool{"A": true, "B": false, "C": true, "D": false}
	for _, b := range r.Blips() {
		if got := b.IsNew; got != want[b.Name] {
			t.Errorf("blip %s IsNew = %v, want %v", b.Name, got, want[b.Name])
		}
	}
}
