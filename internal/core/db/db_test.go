package db

import (
	"os"
	"reflect"
	"testing"

	"github.com/qu-tools/jadwal/internal/core/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	tmpfile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Remove(tmpfile.Name()) })
	_ = tmpfile.Close()

	database, err := New(tmpfile.Name())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestNew(t *testing.T) {
	database := testDB(t)

	// Verify schema initialized
	var count int
	err := database.conn.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table'").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to query schema: %v", err)
	}

	// Should have: raw_sections, schedules, schedule_sections, app_state,
	// color_overrides, settings
	if count < 6 {
		t.Errorf("Expected at least 6 tables, got %d", count)
	}
}

func TestNew_WALMode(t *testing.T) {
	database := testDB(t)

	var journalMode string
	err := database.conn.QueryRow("PRAGMA journal_mode").Scan(&journalMode)
	if err != nil {
		t.Fatalf("Failed to query journal mode: %v", err)
	}
	if journalMode != "wal" {
		t.Errorf("Expected WAL mode, got %s", journalMode)
	}
}

func TestReplaceRawSectionsIsWholesale(t *testing.T) {
	database := testDB(t)

	first := []models.RawSection{
		{Code: "MATH101", Name: "Calculus I", Section: "1", Time: "غير محدد", Hours: 3},
		{Code: "PHYS102", Name: "Physics I", Section: "2", ExamPeriodID: "E1"},
	}
	if err := database.ReplaceRawSections(first); err != nil {
		t.Fatalf("ReplaceRawSections() error = %v", err)
	}

	second := []models.RawSection{
		{Code: "CHEM103", Name: "Chemistry I", Section: "5", Status: "مفتوحة"},
	}
	if err := database.ReplaceRawSections(second); err != nil {
		t.Fatalf("ReplaceRawSections() error = %v", err)
	}

	loaded, err := database.LoadRawSections()
	if err != nil {
		t.Fatalf("LoadRawSections() error = %v", err)
	}
	if len(loaded) != 1 || loaded[0].Code != "CHEM103" {
		t.Errorf("second import did not replace the first: %v", loaded)
	}
}

func TestRawSectionsRoundTrip(t *testing.T) {
	database := testDB(t)

	sections := []models.RawSection{
		{
			Code: "MATH101", Name: "Calculus I", Section: "1",
			Time: "الأحد: 9:00 ص - 9:50 ص", Location: "B101",
			Instructor: "د. أحمد", ExamPeriodID: "E1", Hours: 3,
			Type: "محاضرة", Status: "مفتوحة", Campus: "الرئيسي",
		},
		{Code: "PHYS102", Section: "2"},
	}

	if err := database.ReplaceRawSections(sections); err != nil {
		t.Fatalf("ReplaceRawSections() error = %v", err)
	}
	loaded, err := database.LoadRawSections()
	if err != nil {
		t.Fatalf("LoadRawSections() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, sections) {
		t.Errorf("round trip mismatch:\ngot  %v\nwant %v", loaded, sections)
	}
}

func TestColorOverrides(t *testing.T) {
	database := testDB(t)

	if err := database.SetColorOverride("MATH101", "#ff0000"); err != nil {
		t.Fatalf("SetColorOverride() error = %v", err)
	}
	if err := database.SetColorOverride("MATH101", "#00ff00"); err != nil {
		t.Fatalf("SetColorOverride() upsert error = %v", err)
	}

	overrides, err := database.ColorOverrides()
	if err != nil {
		t.Fatalf("ColorOverrides() error = %v", err)
	}
	if overrides["MATH101"] != "#00ff00" {
		t.Errorf("override = %q, want latest value", overrides["MATH101"])
	}

	if err := database.DeleteColorOverride("MATH101"); err != nil {
		t.Fatalf("DeleteColorOverride() error = %v", err)
	}
	overrides, _ = database.ColorOverrides()
	if len(overrides) != 0 {
		t.Errorf("override survived delete: %v", overrides)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	database := testDB(t)

	s := models.Settings{
		Theme: "light", AccentColor: "#123456", ShowWeekends: true,
		MinTime: "07:00:00", MaxTime: "20:00:00",
		HideClosedSections: true, HiddenCourseCodes: []string{"MATH101"},
	}
	if err := database.SaveSettings(s); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}
	if got := database.LoadSettings(); !reflect.DeepEqual(got, s) {
		t.Errorf("LoadSettings() = %v, want %v", got, s)
	}
}

func TestSettingsCorruptFallsBackToDefaults(t *testing.T) {
	database := testDB(t)

	_, err := database.Exec(`INSERT INTO settings (key, value) VALUES ('user_settings', 'not json')`)
	if err != nil {
		t.Fatal(err)
	}

	if got := database.LoadSettings(); !reflect.DeepEqual(got, models.DefaultSettings()) {
		t.Errorf("corrupt settings did not fall back to defaults: %v", got)
	}
}

func TestSettingsMissingFallsBackToDefaults(t *testing.T) {
	database := testDB(t)
	if got := database.LoadSettings(); !reflect.DeepEqual(got, models.DefaultSettings()) {
		t.Errorf("missing settings did not fall back to defaults: %v", got)
	}
}

func TestScheduleStateRoundTrip(t *testing.T) {
	database := testDB(t)

	state := ScheduleState{
		Schedules: []StoredSchedule{
			{ID: "sch_1", Name: "جدولي الأساسي", Sections: []string{"b", "a", "c"}},
			{ID: "sch_2", Name: "خطة بديلة", Sections: nil},
		},
		ActiveID: "sch_2",
	}
	if err := database.SaveSchedules(state); err != nil {
		t.Fatalf("SaveSchedules() error = %v", err)
	}

	loaded, err := database.LoadSchedules()
	if err != nil {
		t.Fatalf("LoadSchedules() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, state) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", loaded, state)
	}
}

func TestLoadSchedulesEmptyDatabase(t *testing.T) {
	database := testDB(t)

	state, err := database.LoadSchedules()
	if err != nil {
		t.Fatalf("LoadSchedules() error = %v", err)
	}
	if len(state.Schedules) != 0 || state.ActiveID != "" {
		t.Errorf("empty database produced state %+v", state)
	}
}
