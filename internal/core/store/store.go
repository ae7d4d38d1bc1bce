// Package store owns the schedule collection: the named schedule sets, the
// active pointer, and their persistence. Two invariants hold across every
// operation: the collection is never empty, and the active pointer always
// refers to an existing schedule.
package store

import (
	"fmt"
	"time"

	"github.com/qu-tools/jadwal/internal/core/db"
	"github.com/qu-tools/jadwal/internal/core/models"
)

// Store is the schedule collection plus its backing database. All mutating
// methods persist before returning, so the database always matches memory.
type Store struct {
	db        *db.DB
	schedules map[string]*models.Schedule
	order     []string
	activeID  string
}

// Load reads the persisted collection. Missing, empty, or inconsistent
// stored state falls back to a single fresh default schedule rather than
// failing: losing a corrupt collection beats refusing to start.
func Load(database *db.DB) (*Store, error) {
	s := &Store{
		db:        database,
		schedules: make(map[string]*models.Schedule),
	}

	state, err := database.LoadSchedules()
	if err != nil {
		return nil, fmt.Errorf("failed to load schedules: %w", err)
	}

	for _, stored := range state.Schedules {
		if stored.ID == "" {
			continue
		}
		s.add(&models.Schedule{
			ID:       stored.ID,
			Name:     stored.Name,
			Sections: models.NewSectionSet(stored.Sections...),
		})
	}
	s.activeID = state.ActiveID

	if len(s.order) == 0 || s.schedules[s.activeID] == nil {
		if len(s.order) == 0 {
			if err := s.initializeDefault(); err != nil {
				return nil, err
			}
		} else {
			// Stale active pointer; fall back to the first schedule.
			s.activeID = s.order[0]
			if err := s.persist(); err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}

// Reset discards the persisted collection and starts over with one default
// schedule. Used when a new catalog arrives.
func Reset(database *db.DB) (*Store, error) {
	s := &Store{
		db:        database,
		schedules: make(map[string]*models.Schedule),
	}
	if err := s.initializeDefault(); err != nil {
		return nil, err
	}
	return s, nil
}

// Create adds an empty schedule, makes it active, and returns its id. A
// failed persist rolls the in-memory add back so memory keeps matching the
// database.
func (s *Store) Create(name string) (string, error) {
	id := s.newID()
	prevActive := s.activeID
	s.add(&models.Schedule{ID: id, Name: name, Sections: models.NewSectionSet()})
	s.activeID = id
	if err := s.persist(); err != nil {
		delete(s.schedules, id)
		s.order = s.order[:len(s.order)-1]
		s.activeID = prevActive
		return "", err
	}
	return id, nil
}

// Rename changes a schedule's name. Unknown ids and unchanged names are
// no-ops.
func (s *Store) Rename(id, newName string) error {
	sched, ok := s.schedules[id]
	if !ok || sched.Name == newName {
		return nil
	}
	sched.Name = newName
	return s.persist()
}

// Delete removes a schedule. Deleting the only schedule is a no-op: the
// collection must never empty. When the active schedule goes, activation
// falls to the first remaining schedule.
func (s *Store) Delete(id string) error {
	if _, ok := s.schedules[id]; !ok || len(s.order) == 1 {
		return nil
	}

	delete(s.schedules, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.activeID == id {
		s.activeID = s.order[0]
	}
	return s.persist()
}

// SetActive switches the active pointer. Unknown ids are a no-op.
func (s *Store) SetActive(id string) error {
	if _, ok := s.schedules[id]; !ok || s.activeID == id {
		return nil
	}
	s.activeID = id
	return s.persist()
}

// ToggleSection adds the section to the schedule's set when absent and
// removes it when present, reporting whether it is selected afterwards.
func (s *Store) ToggleSection(scheduleID, sectionID string) (bool, error) {
	sched, ok := s.schedules[scheduleID]
	if !ok {
		return false, nil
	}
	selected := sched.Sections.Toggle(sectionID)
	return selected, s.persist()
}

// ClearActive empties the active schedule's selections.
func (s *Store) ClearActive() error {
	s.Active().Sections.Clear()
	return s.persist()
}

// ReplaceActiveSections swaps the active schedule's selections wholesale.
// Used by schedule-file import.
func (s *Store) ReplaceActiveSections(ids []string) error {
	active := s.Active()
	active.Sections = models.NewSectionSet(ids...)
	return s.persist()
}

// Active returns the active schedule. The invariants guarantee it exists.
func (s *Store) Active() *models.Schedule {
	return s.schedules[s.activeID]
}

// ActiveID returns the active schedule's id.
func (s *Store) ActiveID() string {
	return s.activeID
}

// Get returns a schedule by id, or nil.
func (s *Store) Get(id string) *models.Schedule {
	return s.schedules[id]
}

// Schedules returns the collection in insertion order.
func (s *Store) Schedules() []*models.Schedule {
	out := make([]*models.Schedule, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.schedules[id])
	}
	return out
}

// Len returns the number of schedules.
func (s *Store) Len() int {
	return len(s.order)
}

func (s *Store) add(sched *models.Schedule) {
	s.schedules[sched.ID] = sched
	s.order = append(s.order, sched.ID)
}

func (s *Store) initializeDefault() error {
	id := s.newID()
	s.schedules = map[string]*models.Schedule{
		id: {ID: id, Name: models.DefaultScheduleName, Sections: models.NewSectionSet()},
	}
	s.order = []string{id}
	s.activeID = id
	return s.persist()
}

// newID generates a time-based schedule id, bumping the millisecond count
// until it is free so that ids created in the same tick stay unique.
func (s *Store) newID() string {
	millis := time.Now().UnixMilli()
	for {
		id := fmt.Sprintf("sch_%d", millis)
		if _, taken := s.schedules[id]; !taken {
			return id
		}
		millis++
	}
}

func (s *Store) persist() error {
	state := db.ScheduleState{ActiveID: s.activeID}
	for _, id := range s.order {
		state.Schedules = append(state.Schedules, db.StoredScheduleFrom(s.schedules[id]))
	}
	if err := s.db.SaveSchedules(state); err != nil {
		return fmt.Errorf("failed to persist schedules: %w", err)
	}
	return nil
}
