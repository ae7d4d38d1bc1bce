package catalog

import (
	"reflect"
	"testing"

	"github.com/qu-tools/jadwal/internal/core/models"
)

func raw(code, name, number, time string) models.RawSection {
	return models.RawSection{Code: code, Name: name, Section: number, Time: time}
}

func TestBuildUniqueIDs(t *testing.T) {
	// Two rows with identical code+section must still get distinct ids.
	input := []models.RawSection{
		raw("MATH101", "Calculus I", "1", "غير محدد"),
		raw("MATH101", "Calculus I", "1", "غير محدد"),
	}

	sections, _ := Build(input, nil, nil)
	if sections[0].UniqueID == sections[1].UniqueID {
		t.Errorf("duplicate rows share id %q", sections[0].UniqueID)
	}

	// Rebuilding the same input reproduces the same ids.
	again, _ := Build(input, nil, nil)
	for i := range sections {
		if sections[i].UniqueID != again[i].UniqueID {
			t.Errorf("id %d changed across rebuilds: %q vs %q",
				i, sections[i].UniqueID, again[i].UniqueID)
		}
	}
}

func TestBuildParsesTimeSlots(t *testing.T) {
	input := []models.RawSection{
		raw("MATH101", "Calculus I", "1", "الأحد: 9:00 ص - 9:50 ص"),
		raw("PHYS102", "Physics I", "2", "غير محدد"),
	}

	sections, _ := Build(input, nil, nil)
	if len(sections[0].TimeSlots) != 1 {
		t.Errorf("scheduled section got %d slots", len(sections[0].TimeSlots))
	}
	if sections[1].Scheduled() {
		t.Error("unscheduled sentinel produced slots")
	}
}

func TestBuildGroupOrder(t *testing.T) {
	input := []models.RawSection{
		raw("PHYS102", "Physics I", "1", ""),
		raw("MATH101", "Calculus I", "1", ""),
		raw("PHYS102", "Physics I", "2", ""),
	}

	_, groups := Build(input, nil, nil)

	var codes []string
	for _, g := range groups.All() {
		codes = append(codes, g.Code)
	}
	if !reflect.DeepEqual(codes, []string{"PHYS102", "MATH101"}) {
		t.Errorf("group order = %v, want first-seen order", codes)
	}
	if n := len(groups.Get("PHYS102").Sections); n != 2 {
		t.Errorf("PHYS102 has %d sections, want 2", n)
	}
}

func TestBuildColors(t *testing.T) {
	input := []models.RawSection{
		raw("A1", "a", "1", ""),
		raw("B2", "b", "1", ""),
		raw("C3", "c", "1", ""),
	}
	palette := []string{"#111111", "#222222"}
	overrides := map[string]string{"B2": "#ff0000"}

	_, groups := Build(input, palette, overrides)

	if got := groups.Get("A1").Color; got != "#111111" {
		t.Errorf("A1 color = %q, want palette[0]", got)
	}
	if got := groups.Get("B2").Color; got != "#ff0000" {
		t.Errorf("B2 color = %q, want override", got)
	}
	// Palette wraps by insertion index, overrides do not consume a slot.
	if got := groups.Get("C3").Color; got != "#111111" {
		t.Errorf("C3 color = %q, want palette[2 %% 2]", got)
	}
}

func TestResolveSkipsStaleIDs(t *testing.T) {
	sections, _ := Build([]models.RawSection{
		raw("MATH101", "Calculus I", "1", ""),
		raw("PHYS102", "Physics I", "1", ""),
	}, nil, nil)

	ids := []string{sections[1].UniqueID, "GONE-9-99", sections[0].UniqueID}
	resolved := Resolve(ids, sections)

	if len(resolved) != 2 {
		t.Fatalf("Resolve() returned %d sections, want 2", len(resolved))
	}
	if resolved[0].Code != "PHYS102" || resolved[1].Code != "MATH101" {
		t.Errorf("Resolve() order = %s, %s; want selection order",
			resolved[0].Code, resolved[1].Code)
	}
}
