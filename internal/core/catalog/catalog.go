// Package catalog turns the raw scraped section list into enriched sections
// grouped by course code, with a stable color per course.
package catalog

import (
	"fmt"

	"github.com/qu-tools/jadwal/internal/core/models"
	"github.com/qu-tools/jadwal/pkg/coursetime"
)

// DefaultPalette is the built-in course color cycle. Courses take colors in
// first-seen order; a per-code override from the store wins over the cycle.
var DefaultPalette = []string{
	"#8b5cf6", "#3b82f6", "#10b981", "#f59e0b", "#ef4444",
	"#06b6d4", "#ec4899", "#84cc16", "#f97316", "#6366f1",
	"#14b8a6", "#a855f7",
}

// Groups is the course-code grouping of a catalog snapshot, preserving the
// order codes first appear in the import.
type Groups struct {
	byCode map[string]*models.CourseGroup
	order  []string
}

// Get returns the group for code, or nil.
func (g *Groups) Get(code string) *models.CourseGroup {
	return g.byCode[code]
}

// All returns the groups in first-seen order.
func (g *Groups) All() []*models.CourseGroup {
	out := make([]*models.CourseGroup, 0, len(g.order))
	for _, code := range g.order {
		out = append(out, g.byCode[code])
	}
	return out
}

// Len returns the number of course groups.
func (g *Groups) Len() int {
	return len(g.order)
}

// Build enriches the raw sections and groups them by course code.
//
// Unique ids derive from code, section number, and position, so duplicate
// code+section rows in the source still get distinct ids and a re-import of
// the same data reproduces the same ids. colorOverrides maps course codes to
// user-chosen colors; palette may be nil to use DefaultPalette.
func Build(raw []models.RawSection, palette []string, colorOverrides map[string]string) ([]models.Section, *Groups) {
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	sections := make([]models.Section, len(raw))
	groups := &Groups{byCode: make(map[string]*models.CourseGroup)}

	for i, r := range raw {
		sections[i] = models.Section{
			UniqueID:      fmt.Sprintf("%s-%s-%d", r.Code, r.Section, i),
			Code:          r.Code,
			Name:          r.Name,
			SectionNumber: r.Section,
			Type:          r.Type,
			Instructor:    r.Instructor,
			Location:      r.Location,
			Status:        r.Status,
			Campus:        r.Campus,
			Hours:         int(r.Hours),
			RawTime:       r.Time,
			TimeSlots:     coursetime.Parse(r.Time),
			ExamPeriodID:  r.ExamPeriodID,
		}

		group, ok := groups.byCode[r.Code]
		if !ok {
			group = &models.CourseGroup{Code: r.Code, Name: r.Name}
			groups.byCode[r.Code] = group
			groups.order = append(groups.order, r.Code)
		}
		group.Sections = append(group.Sections, &sections[i])
	}

	for i, code := range groups.order {
		if color, ok := colorOverrides[code]; ok {
			groups.byCode[code].Color = color
			continue
		}
		groups.byCode[code].Color = palette[i%len(palette)]
	}

	return sections, groups
}

// Resolve maps selected ids onto the catalog's sections, silently skipping
// ids the current catalog does not know (stale selections from an older
// import are not an error).
func Resolve(ids []string, sections []models.Section) []models.Section {
	byID := make(map[string]*models.Section, len(sections))
	for i := range sections {
		byID[sections[i].UniqueID] = &sections[i]
	}

	var out []models.Section
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			out = append(out, *s)
		}
	}
	return out
}
