package host

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blipradar/blipradar/pkg/radar"
)

func TestMemoryStore(t *testing.T) {
	m := MemoryStore{}
	if _, ok := m.Colour("platform"); ok {
		t.Error("empty store should miss")
	}
	m.Set("platform", "#336699")
	if c, ok := m.Colour("platform"); !ok || c != "#336699" {
		t.Errorf("Colour = %q, %v; want #336699, true", c, ok)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colours.json")

	s, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, ok := s.Colour("platform"); ok {
		t.Error("fresh store should miss")
	}

	if err := s.Set("platform", "#336699"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set("tools", "#993366"); err != nil {
		t.Fatalf("set: %v", err)
	}

	// Reopen and check persistence.
	reopened, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if c, ok := reopened.Colour("platform"); !ok || c != "#336699" {
		t.Errorf("after reopen Colour(platform) = %q, %v", c, ok)
	}
	if got, want := len(reopened.SectorIDs()), 2; got != want {
		t.Errorf("stored ids = %d, want %d", got, want)
	}

	if err := reopened.Delete("tools"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := reopened.Colour("tools"); ok {
		t.Error("deleted id still present")
	}

	if err := reopened.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := len(reopened.SectorIDs()); got != 0 {
		t.Errorf("ids after clear = %d, want 0", got)
	}
}

func TestFileStore_CorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colours.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got := len(s.SectorIDs()); got != 0 {
		t.Errorf("ids from corrupt file = %d, want 0", got)
	}
}

func TestEnumerateCustomizations(t *testing.T) {
	r := radar.New()
	r.AddSector(radar.NewSector("Platform", "#111111"))
	r.AddSector(radar.NewSector("Dev Tools", "#222222"))

	got := EnumerateCustomizations(r)
	if len(got) != 2 {
		t.Fatalf("customization count = %d, want 2", len(got))
	}

	first := got[0]
	if first.ObjectName != CustomizationObject {
		t.Errorf("object name = %q, want %q", first.ObjectName, CustomizationObject)
	}
	if first.DisplayName != "Platform" || first.Fill != "#111111" || first.Selector != "platform" {
		t.Errorf("unexpected first customization: %+v", first)
	}
	if got[1].Selector != "dev-tools" {
		t.Errorf("second selector = %q, want dev-tools", got[1].Selector)
	}
}

func TestDataset_Empty(t *testing.T) {
	if !(Dataset{}).Empty() {
		t.Error("zero dataset should be empty")
	}
	d := Dataset{Rows: [][]any{{"a"}}}
	if d.Empty() {
		t.Error("dataset with rows reported empty")
	}
}
