package export

import (
	"math"
	"testing"

	"github.com/blipradar/blipradar/pkg/geom"
	"github.com/blipradar/blipradar/pkg/radar"
)

func laidOutRadar() *radar.Radar {
	r := radar.New()

	s := radar.NewSector("Platform", "#336699")
	s.StartAngle = 0
	s.EndAngle = math.Pi
	ring, _ := radar.RingByName("Accelerate")
	b := radar.NewBlip("Kubernetes", "container orchestration", true, ring)
	b.Coordinates = geom.Point{X: 12.5, Y: -40}
	s.AddBlip(b)
	r.AddSector(s)

	t := radar.NewSector("Tools", "#993366")
	t.StartAngle = math.Pi
	t.EndAngle = 2 * math.Pi
	r.AddSector(t)

	return r
}

func TestRoundTrip(t *testing.T) {
	original := laidOutRadar()

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	doc, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	restored, err := doc.ToRadar()
	if err != nil {
		t.Fatalf("to radar: %v", err)
	}

	if got, want := len(restored.Sectors), 2; got != want {
		t.Fatalf("sector count = %d, want %d", got, want)
	}
	s := restored.Sectors[0]
	if s.ID != "platform" || s.Colour != "#336699" || s.EndAngle != math.Pi {
		t.Errorf("restored sector = %+v", s)
	}
	if got, want := len(s.Blips), 1; got != want {
		t.Fatalf("blip count = %d, want %d", got, want)
	}
	b := s.Blips[0]
	if b.Name != "Kubernetes" || !b.IsNew || b.Ring.Name != "Accelerate" {
		t.Errorf("restored blip = %+v", b)
	}
	if b.Coordinates != (geom.Point{X: 12.5, Y: -40}) {
		t.Errorf("restored coordinates = %+v", b.Coordinates)
	}
	if b.Sector != s {
		t.Error("restored blip lost its sector back-reference")
	}
}

func TestDocument_IncludesRingSet(t *testing.T) {
	doc := FromRadar(radar.New())
	if got, want := len(doc.Rings), radar.RingCount; got != want {
		t.Fatalf("ring count = %d, want %d", got, want)
	}
	if doc.Rings[0].Name != "Accelerate" || doc.Rings[3].Name != "Pause" {
		t.Errorf("ring order wrong: %+v", doc.Rings)
	}
}

func TestToRadar_UnknownRingFails(t *testing.T) {
	doc := Document{Sectors: []Sector{{
		Name:  "X",
		Blips: []Blip{{Name: "A", Ring: "Hold"}},
	}}}
	if _, err := doc.ToRadar(); err == nil {
		t.Fatal("expected error for unknown ring")
	}
}

func TestUnmarshal_BadJSON(t *testing.T) {
	if _, err := Unmarshal([]byte("{")); err == nil {
		t.Fatal("expected parse error")
	}
}
