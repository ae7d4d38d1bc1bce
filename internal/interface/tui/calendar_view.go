package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/qu-tools/jadwal/internal/core/models"
	"github.com/qu-tools/jadwal/pkg/coursetime"
)

// dayNames is the Sunday-first week the registration system uses.
var dayNames = [7]string{
	"الأحد", "الإثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت",
}

type calendarEvent struct {
	start      string
	end        string
	code       string
	number     string
	color      string
	conflicted bool
}

func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "l", "c":
		m.mode = listView
		return m, nil

	case "tab":
		m.nextSchedule()
		m.refreshList()
		return m, nil

	case "w":
		m.settings.ShowWeekends = !m.settings.ShowWeekends
		if err := m.db.SaveSettings(m.settings); err != nil {
			m.err = err
		}
		return m, nil
	}
	return m, nil
}

func (m Model) viewCalendar() string {
	days := m.visibleDays()
	events := m.eventsByDay()

	colWidth := 24
	if m.width > 0 {
		if w := m.width/len(days) - 1; w > 12 && w < colWidth {
			colWidth = w
		}
	}

	var columns []string
	for _, day := range days {
		column := []string{calendarHeaderStyle.Width(colWidth).Render(dayNames[day])}
		for _, ev := range events[day] {
			label := fmt.Sprintf("%s-%s %s %s",
				clockShort(ev.start), clockShort(ev.end), ev.code, ev.number)
			style := calendarEventStyle.
				Width(colWidth).
				Foreground(lipgloss.Color(ev.color))
			if ev.conflicted {
				style = calendarConflictStyle.Width(colWidth)
			}
			column = append(column, style.Render(label))
		}
		if len(events[day]) == 0 {
			column = append(column, statusStyle.Width(colWidth).Render("—"))
		}
		columns = append(columns, lipgloss.JoinVertical(lipgloss.Right, column...))
	}

	grid := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	var unscheduled []string
	for i := range m.selected {
		if !m.selected[i].Scheduled() {
			unscheduled = append(unscheduled,
				fmt.Sprintf("%s %s", m.selected[i].Code, m.selected[i].SectionNumber))
		}
	}

	out := m.tabBar() + "\n\n" + grid + "\n"
	if len(unscheduled) > 0 {
		out += statusStyle.Render("No meeting time: "+strings.Join(unscheduled, ", ")) + "\n"
	}
	out += statusStyle.Render("esc: course list  tab: switch schedule  w: toggle weekends")
	return out
}

// visibleDays returns the day columns in week order. Weekends only appear
// when the setting asks for them or a selected section meets then.
func (m Model) visibleDays() []int {
	show := map[int]bool{0: true, 1: true, 2: true, 3: true, 4: true}
	if m.settings.ShowWeekends {
		show[5], show[6] = true, true
	}
	for i := range m.selected {
		for _, slot := range m.selected[i].TimeSlots {
			if slot.Day >= 5 && m.inWindow(slot) {
				show[slot.Day] = true
			}
		}
	}

	var days []int
	for day := 0; day < 7; day++ {
		if show[day] {
			days = append(days, day)
		}
	}
	return days
}

// eventsByDay expands the selected sections into per-day events sorted by
// start time. Slots outside the settings time window are not rendered.
func (m Model) eventsByDay() map[int][]calendarEvent {
	events := make(map[int][]calendarEvent)
	for i := range m.selected {
		s := &m.selected[i]
		color := m.sectionColor(s)
		conflicted := len(m.conflicts[s.UniqueID]) > 0
		for _, slot := range s.TimeSlots {
			if !m.inWindow(slot) {
				continue
			}
			events[slot.Day] = append(events[slot.Day], calendarEvent{
				start:      slot.Start,
				end:        slot.End,
				code:       s.Code,
				number:     s.SectionNumber,
				color:      color,
				conflicted: conflicted,
			})
		}
	}
	for day := range events {
		sort.Slice(events[day], func(a, b int) bool {
			return events[day][a].start < events[day][b].start
		})
	}
	return events
}

// inWindow reports whether the slot intersects the visible time window. An
// unset bound leaves that side open.
func (m Model) inWindow(slot coursetime.Slot) bool {
	if m.settings.MinTime != "" && slot.End <= m.settings.MinTime {
		return false
	}
	if m.settings.MaxTime != "" && slot.Start >= m.settings.MaxTime {
		return false
	}
	return true
}

func (m Model) sectionColor(s *models.Section) string {
	if group := m.groups.Get(s.Code); group != nil {
		return group.Color
	}
	return m.settings.AccentColor
}

// clockShort trims HH:MM:SS to HH:MM for the narrow calendar cells.
func clockShort(t string) string {
	if len(t) >= 5 {
		return t[:5]
	}
	return t
}
