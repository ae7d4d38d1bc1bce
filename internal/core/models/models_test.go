package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFlexIntDecoding(t *testing.T) {
	tests := []struct {
		name string
		json string
		want int
	}{
		{name: "number", json: `{"hours": 3}`, want: 3},
		{name: "numeric string", json: `{"hours": "3"}`, want: 3},
		{name: "null", json: `{"hours": null}`, want: 0},
		{name: "absent", json: `{}`, want: 0},
		{name: "garbage string", json: `{"hours": "ثلاث"}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw RawSection
			if err := json.Unmarshal([]byte(tt.json), &raw); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if int(raw.Hours) != tt.want {
				t.Errorf("Hours = %d, want %d", raw.Hours, tt.want)
			}
		})
	}
}

func TestSectionSetOrderAndMembership(t *testing.T) {
	set := NewSectionSet("a", "b", "a", "c")

	if got := set.IDs(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("IDs() = %v, want [a b c]", got)
	}

	if !set.Remove("b") {
		t.Error("Remove(b) = false, want true")
	}
	if set.Remove("b") {
		t.Error("second Remove(b) = true, want false")
	}
	if got := set.IDs(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("IDs() after remove = %v, want [a c]", got)
	}

	if selected := set.Toggle("d"); !selected {
		t.Error("Toggle(d) = false, want selected")
	}
	if selected := set.Toggle("a"); selected {
		t.Error("Toggle(a) = true, want deselected")
	}
	if got := set.IDs(); !reflect.DeepEqual(got, []string{"c", "d"}) {
		t.Fatalf("IDs() after toggles = %v, want [c d]", got)
	}

	set.Clear()
	if set.Len() != 0 || set.Has("c") {
		t.Errorf("Clear() left members: %v", set.IDs())
	}
}

func TestSettingsHideUnhide(t *testing.T) {
	var s Settings

	if !s.HideCourse("MATH101") {
		t.Error("HideCourse(MATH101) = false on first hide")
	}
	if s.HideCourse("MATH101") {
		t.Error("second HideCourse(MATH101) = true, want already-hidden")
	}
	s.HideCourse("PHYS102")
	if !reflect.DeepEqual(s.HiddenCourseCodes, []string{"MATH101", "PHYS102"}) {
		t.Fatalf("HiddenCourseCodes = %v", s.HiddenCourseCodes)
	}

	if !s.UnhideCourse("MATH101") {
		t.Error("UnhideCourse(MATH101) = false for a hidden code")
	}
	if s.UnhideCourse("MATH101") {
		t.Error("second UnhideCourse(MATH101) = true, want not-hidden")
	}
	if !reflect.DeepEqual(s.HiddenCourseCodes, []string{"PHYS102"}) {
		t.Errorf("HiddenCourseCodes after unhide = %v", s.HiddenCourseCodes)
	}
}

func TestSectionOpen(t *testing.T) {
	open := Section{Status: "مفتوحة"}
	closed := Section{Status: "مغلقة"}
	if !open.Open() {
		t.Error("open section reported closed")
	}
	if closed.Open() {
		t.Error("closed section reported open")
	}
}
