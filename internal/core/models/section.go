package models

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/qu-tools/jadwal/pkg/coursetime"
)

// openStatusMarker is the substring the registration system puts in the
// status of a section that is still open for registration.
const openStatusMarker = "مفتوحة"

// RawSection is one course section exactly as the scraper delivers it.
type RawSection struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Section      string  `json:"section"`
	Time         string  `json:"time"`
	Location     string  `json:"location"`
	Instructor   string  `json:"instructor"`
	ExamPeriodID string  `json:"examPeriodId"`
	Hours        FlexInt `json:"hours"`
	Type         string  `json:"type"`
	Status       string  `json:"status"`
	Campus       string  `json:"campus"`
}

// FlexInt tolerates the scraper sending credit hours as a number, a numeric
// string, or null. Anything unparseable decodes as zero.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(n)
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(f))
}

// Section is an enriched course section: a RawSection plus its derived
// identity and normalized time slots.
type Section struct {
	UniqueID      string
	Code          string
	Name          string
	SectionNumber string
	Type          string
	Instructor    string
	Location      string
	Status        string
	Campus        string
	Hours         int
	RawTime       string
	TimeSlots     []coursetime.Slot
	ExamPeriodID  string
}

// Scheduled reports whether the section has at least one parsed time slot.
func (s *Section) Scheduled() bool {
	return len(s.TimeSlots) > 0
}

// Open reports whether the section's status marks it open for registration.
func (s *Section) Open() bool {
	return strings.Contains(s.Status, openStatusMarker)
}

// CourseGroup aggregates every section sharing a course code, in first-seen
// order, together with the display color assigned to the course.
type CourseGroup struct {
	Code     string
	Name     string
	Color    string
	Sections []*Section
}
