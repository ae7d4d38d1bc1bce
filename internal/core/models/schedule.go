package models

// DefaultScheduleName names the schedule created whenever the collection
// would otherwise be empty.
const DefaultScheduleName = "جدولي الأساسي"

// Schedule is a named set of selected section ids. The set keeps insertion
// order so persisted state round-trips byte for byte.
type Schedule struct {
	ID       string
	Name     string
	Sections *SectionSet
}

// SectionSet is an insertion-ordered set of section unique ids. It is the
// runtime form of the arrays the store persists.
type SectionSet struct {
	ids   []string
	index map[string]struct{}
}

// NewSectionSet builds a set from ids, dropping duplicates and keeping the
// first occurrence's position.
func NewSectionSet(ids ...string) *SectionSet {
	s := &SectionSet{index: make(map[string]struct{})}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Has reports membership.
func (s *SectionSet) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Add inserts id and reports whether it was absent.
func (s *SectionSet) Add(id string) bool {
	if s.Has(id) {
		return false
	}
	s.index[id] = struct{}{}
	s.ids = append(s.ids, id)
	return true
}

// Remove deletes id and reports whether it was present.
func (s *SectionSet) Remove(id string) bool {
	if !s.Has(id) {
		return false
	}
	delete(s.index, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return true
}

// Toggle adds id when absent and removes it when present, reporting whether
// the id is a member afterwards.
func (s *SectionSet) Toggle(id string) bool {
	if s.Remove(id) {
		return false
	}
	s.Add(id)
	return true
}

// Clear empties the set.
func (s *SectionSet) Clear() {
	s.ids = nil
	s.index = make(map[string]struct{})
}

// Len returns the member count.
func (s *SectionSet) Len() int {
	return len(s.ids)
}

// IDs returns the members in insertion order. The slice is a copy.
func (s *SectionSet) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}
