package db

import (
	"fmt"

	"github.com/qu-tools/jadwal/internal/core/models"
)

// ReplaceRawSections swaps the stored catalog for sections, wholesale, in
// one transaction. The catalog is a snapshot: it is never patched in place.
func (db *DB) ReplaceRawSections(sections []models.RawSection) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM raw_sections`); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}

	for i, s := range sections {
		_, err := tx.Exec(`
			INSERT INTO raw_sections (
				position, code, name, section, time, location,
				instructor, exam_period_id, hours, type, status, campus
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			i, s.Code, s.Name, s.Section, s.Time, s.Location,
			s.Instructor, s.ExamPeriodID, int(s.Hours), s.Type, s.Status, s.Campus,
		)
		if err != nil {
			return fmt.Errorf("failed to insert section %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// LoadRawSections returns the stored catalog in import order. An empty
// database yields an empty slice, not an error.
func (db *DB) LoadRawSections() ([]models.RawSection, error) {
	rows, err := db.conn.Query(`
		SELECT code, COALESCE(name, ''), COALESCE(section, ''), COALESCE(time, ''),
		       COALESCE(location, ''), COALESCE(instructor, ''),
		       COALESCE(exam_period_id, ''), COALESCE(hours, 0),
		       COALESCE(type, ''), COALESCE(status, ''), COALESCE(campus, '')
		FROM raw_sections
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []models.RawSection
	for rows.Next() {
		var s models.RawSection
		var hours int
		err := rows.Scan(
			&s.Code, &s.Name, &s.Section, &s.Time, &s.Location,
			&s.Instructor, &s.ExamPeriodID, &hours, &s.Type, &s.Status, &s.Campus,
		)
		if err != nil {
			return nil, err
		}
		s.Hours = models.FlexInt(hours)
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

// ColorOverrides returns the per-course color overrides.
func (db *DB) ColorOverrides() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT code, color FROM color_overrides`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overrides := make(map[string]string)
	for rows.Next() {
		var code, color string
		if err := rows.Scan(&code, &color); err != nil {
			return nil, err
		}
		overrides[code] = color
	}
	return overrides, rows.Err()
}

// SetColorOverride stores a user-chosen color for a course code.
func (db *DB) SetColorOverride(code, color string) error {
	_, err := db.conn.Exec(`
		INSERT INTO color_overrides (code, color) VALUES (?, ?)
		ON CONFLICT(code) DO UPDATE SET color = excluded.color
	`, code, color)
	return err
}

// DeleteColorOverride removes a course's override, returning it to the
// palette cycle.
func (db *DB) DeleteColorOverride(code string) error {
	_, err := db.conn.Exec(`DELETE FROM color_overrides WHERE code = ?`, code)
	return err
}
