package importer

import (
	"bytes"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/qu-tools/jadwal/internal/core/db"
	"github.com/qu-tools/jadwal/internal/core/store"
)

func testDB(t *testing.T) *db.DB {
	t.Helper()
	tmpfile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Remove(tmpfile.Name()) })
	_ = tmpfile.Close()

	database, err := db.New(tmpfile.Name())
	if err != nil {
		t.Fatalf("db.New() error = %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

const samplePayload = `{
	"type": "universityCoursesData",
	"data": [
		{"code": "MATH101", "name": "Calculus I", "section": "1",
		 "time": "الأحد: 9:00 ص - 9:50 ص", "location": "B101",
		 "instructor": "د. أحمد", "examPeriodId": "E1", "hours": 3,
		 "type": "محاضرة", "status": "مفتوحة", "campus": "الرئيسي"},
		{"code": "PHYS102", "name": "Physics I", "section": "2",
		 "time": "غير محدد", "location": "", "instructor": "",
		 "examPeriodId": null, "hours": "4", "type": "", "status": "مغلقة",
		 "campus": ""}
	]
}`

func TestImportPayload(t *testing.T) {
	database := testDB(t)
	imp := New(database)

	n, err := imp.ImportPayload(strings.NewReader(samplePayload))
	if err != nil {
		t.Fatalf("ImportPayload() error = %v", err)
	}
	if n != 2 {
		t.Errorf("ImportPayload() = %d sections, want 2", n)
	}

	loaded, err := database.LoadRawSections()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 2 {
		t.Fatalf("catalog has %d sections, want 2", len(loaded))
	}
	if loaded[0].ExamPeriodID != "E1" {
		t.Errorf("examPeriodId = %q, want E1", loaded[0].ExamPeriodID)
	}
	if loaded[1].ExamPeriodID != "" {
		t.Errorf("null examPeriodId decoded to %q", loaded[1].ExamPeriodID)
	}
	if int(loaded[1].Hours) != 4 {
		t.Errorf("string hours decoded to %d, want 4", loaded[1].Hours)
	}
}

func TestImportPayloadResetsSchedules(t *testing.T) {
	database := testDB(t)

	s, _ := store.Load(database)
	s.ToggleSection(s.ActiveID(), "OLD-1-0")
	s.Create("second")

	if _, err := New(database).ImportPayload(strings.NewReader(samplePayload)); err != nil {
		t.Fatalf("ImportPayload() error = %v", err)
	}

	reloaded, _ := store.Load(database)
	if reloaded.Len() != 1 {
		t.Errorf("schedules not reset: %d remain", reloaded.Len())
	}
	if reloaded.Active().Sections.Len() != 0 {
		t.Errorf("selections survived reset: %v", reloaded.Active().Sections.IDs())
	}
}

func TestImportPayloadRejectsWrongType(t *testing.T) {
	database := testDB(t)
	imp := New(database)

	// Seed a catalog, then verify a bad payload leaves it alone.
	if _, err := imp.ImportPayload(strings.NewReader(samplePayload)); err != nil {
		t.Fatal(err)
	}

	bad := []string{
		`{"type": "somethingElse", "data": []}`,
		`{"type": "universityCoursesData"}`,
		`not json`,
	}
	for _, input := range bad {
		if _, err := imp.ImportPayload(strings.NewReader(input)); err == nil {
			t.Errorf("ImportPayload(%q) succeeded, want error", input)
		}
	}

	loaded, _ := database.LoadRawSections()
	if len(loaded) != 2 {
		t.Errorf("rejected import modified the catalog: %d sections", len(loaded))
	}
}

func TestScheduleFileRoundTrip(t *testing.T) {
	ids := []string{"MATH101-1-0", "PHYS102-2-1"}

	var buf bytes.Buffer
	if err := WriteScheduleFile(&buf, ids); err != nil {
		t.Fatalf("WriteScheduleFile() error = %v", err)
	}

	got, err := ReadScheduleFile(&buf)
	if err != nil {
		t.Fatalf("ReadScheduleFile() error = %v", err)
	}
	if !reflect.DeepEqual(got, ids) {
		t.Errorf("round trip = %v, want %v", got, ids)
	}
}

func TestScheduleFileEmptySelection(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteScheduleFile(&buf, nil); err != nil {
		t.Fatalf("WriteScheduleFile() error = %v", err)
	}
	got, err := ReadScheduleFile(&buf)
	if err != nil {
		t.Fatalf("ReadScheduleFile() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("empty selection round trip = %v", got)
	}
}

func TestReadScheduleFileRejectsMismatch(t *testing.T) {
	bad := []string{
		`{"version": 2, "schedule": ["a"]}`,
		`{"version": 1}`,
		`{"schedule": ["a"]}`,
		`[]`,
	}
	for _, input := range bad {
		if _, err := ReadScheduleFile(strings.NewReader(input)); err == nil {
			t.Errorf("ReadScheduleFile(%q) succeeded, want error", input)
		}
	}
}
