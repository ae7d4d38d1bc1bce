package db

import (
	"fmt"

	"github.com/qu-tools/jadwal/internal/core/models"
)

const activeScheduleKey = "active_schedule_id"

// ScheduleState is the persisted form of the schedule collection: the
// schedules in display order plus the active pointer. Section sets travel as
// ordered id slices at this boundary.
type ScheduleState struct {
	Schedules []StoredSchedule
	ActiveID  string
}

// StoredSchedule is one schedule row plus its ordered selections.
type StoredSchedule struct {
	ID       string
	Name     string
	Sections []string
}

// SaveSchedules replaces the persisted schedule collection with state, in
// one transaction.
func (db *DB) SaveSchedules(state ScheduleState) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM schedule_sections`); err != nil {
		return fmt.Errorf("failed to clear selections: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM schedules`); err != nil {
		return fmt.Errorf("failed to clear schedules: %w", err)
	}

	for pos, sched := range state.Schedules {
		_, err := tx.Exec(`
			INSERT INTO schedules (schedule_id, name, position) VALUES (?, ?, ?)
		`, sched.ID, sched.Name, pos)
		if err != nil {
			return fmt.Errorf("failed to insert schedule %s: %w", sched.ID, err)
		}

		for i, sectionID := range sched.Sections {
			_, err := tx.Exec(`
				INSERT INTO schedule_sections (schedule_id, section_id, position)
				VALUES (?, ?, ?)
			`, sched.ID, sectionID, i)
			if err != nil {
				return fmt.Errorf("failed to insert selection %s: %w", sectionID, err)
			}
		}
	}

	_, err = tx.Exec(`
		INSERT INTO app_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, activeScheduleKey, state.ActiveID)
	if err != nil {
		return fmt.Errorf("failed to store active schedule: %w", err)
	}

	return tx.Commit()
}

// LoadSchedules returns the persisted schedule collection. An empty database
// yields a state with no schedules; the store layer turns that into a fresh
// default schedule.
func (db *DB) LoadSchedules() (ScheduleState, error) {
	var state ScheduleState

	rows, err := db.conn.Query(`
		SELECT schedule_id, name FROM schedules ORDER BY position
	`)
	if err != nil {
		return state, err
	}
	defer rows.Close()

	for rows.Next() {
		var sched StoredSchedule
		if err := rows.Scan(&sched.ID, &sched.Name); err != nil {
			return state, err
		}
		state.Schedules = append(state.Schedules, sched)
	}
	if err := rows.Err(); err != nil {
		return state, err
	}

	for i := range state.Schedules {
		sections, err := db.loadScheduleSections(state.Schedules[i].ID)
		if err != nil {
			return state, err
		}
		state.Schedules[i].Sections = sections
	}

	err = db.conn.QueryRow(`
		SELECT value FROM app_state WHERE key = ?
	`, activeScheduleKey).Scan(&state.ActiveID)
	if err != nil {
		// Missing pointer is not fatal; the store falls back to a default.
		state.ActiveID = ""
	}

	return state, nil
}

func (db *DB) loadScheduleSections(scheduleID string) ([]string, error) {
	rows, err := db.conn.Query(`
		SELECT section_id FROM schedule_sections
		WHERE schedule_id = ?
		ORDER BY position
	`, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// StoredScheduleFrom converts a runtime schedule to its persisted form.
func StoredScheduleFrom(s *models.Schedule) StoredSchedule {
	return StoredSchedule{ID: s.ID, Name: s.Name, Sections: s.Sections.IDs()}
}
