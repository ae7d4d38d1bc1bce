// Package conflict detects lecture-time and final-exam clashes between
// selected course sections.
package conflict

import (
	"fmt"

	"github.com/qu-tools/jadwal/internal/core/models"
)

// Detect computes all pairwise conflicts in the selected sections. The
// result maps a section's unique id to its human-readable conflict reasons;
// ids without conflicts are absent. Sections of the same course never
// conflict with each other, so a lab never clashes with its own lecture.
//
// Selection sizes are a student's course load, so the pairwise scan is fine.
func Detect(selected []models.Section) map[string][]string {
	reasons := make(map[string][]string)

	for i := 0; i < len(selected); i++ {
		for j := i + 1; j < len(selected); j++ {
			a, b := &selected[i], &selected[j]
			if a.Code == b.Code {
				continue
			}

			if timesOverlap(a, b) {
				reasons[a.UniqueID] = append(reasons[a.UniqueID], timeReason(b))
				reasons[b.UniqueID] = append(reasons[b.UniqueID], timeReason(a))
			}
			if examsOverlap(a, b) {
				reasons[a.UniqueID] = append(reasons[a.UniqueID], examReason(b))
				reasons[b.UniqueID] = append(reasons[b.UniqueID], examReason(a))
			}
		}
	}

	return reasons
}

// Check reports whether candidate would clash with any of the selected
// sections. Used to flag unselected sections in listings before the user
// picks them.
func Check(candidate *models.Section, selected []models.Section) bool {
	for i := range selected {
		other := &selected[i]
		if other.Code == candidate.Code {
			continue
		}
		if timesOverlap(candidate, other) || examsOverlap(candidate, other) {
			return true
		}
	}
	return false
}

// timesOverlap reports whether any two slots share a day and strictly
// overlap. Intervals are half-open, so back-to-back meetings where one ends
// exactly when the other starts do not clash.
func timesOverlap(a, b *models.Section) bool {
	for _, sa := range a.TimeSlots {
		for _, sb := range b.TimeSlots {
			if sa.Day != sb.Day {
				continue
			}
			// HH:MM:SS strings compare correctly lexicographically.
			if sa.Start < sb.End && sa.End > sb.Start {
				return true
			}
		}
	}
	return false
}

func examsOverlap(a, b *models.Section) bool {
	return a.ExamPeriodID != "" && a.ExamPeriodID == b.ExamPeriodID
}

func timeReason(other *models.Section) string {
	return fmt.Sprintf("time overlap with %s (section %s)", other.Code, other.SectionNumber)
}

func examReason(other *models.Section) string {
	return fmt.Sprintf("shared exam period with %s (section %s)", other.Code, other.SectionNumber)
}
