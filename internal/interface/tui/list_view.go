package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/qu-tools/jadwal/internal/core/conflict"
	"github.com/qu-tools/jadwal/internal/core/models"
)

type sectionListItem struct {
	uniqueID   string
	code       string
	name       string
	number     string
	kind       string
	rawTime    string
	open       bool
	color      string
	picked     bool
	conflicted bool
}

func (i sectionListItem) FilterValue() string {
	return i.code + " " + i.name
}

func (i sectionListItem) Title() string {
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(i.color)).Render("●")
	title := fmt.Sprintf("%s %s %s — section %s", dot, i.code, i.name, i.number)
	if i.kind != "" {
		title += " (" + i.kind + ")"
	}
	return title
}

func (i sectionListItem) Description() string {
	mark := "   "
	if i.picked {
		mark = pickedMarkStyle.Render("[x]")
	} else if i.conflicted {
		mark = conflictMarkStyle.Render(" ! ")
	}
	status := ""
	if !i.open {
		status = "  (closed)"
	}
	return fmt.Sprintf("%s %s%s", mark, strings.ReplaceAll(i.rawTime, "\n", " | "), status)
}

// Custom delegate to highlight picked sections
type sectionDelegate struct {
	list.DefaultDelegate
}

func (d sectionDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	s, ok := item.(sectionListItem)
	if !ok {
		d.DefaultDelegate.Render(w, m, index, item)
		return
	}

	title := s.Title()
	desc := s.Description()

	if index == m.Index() {
		title = selectedItemStyle.Render(title)
		desc = selectedItemStyle.Faint(true).Render(desc)
	} else {
		title = itemStyle.Render(title)
		desc = itemStyle.Render(desc)
	}

	fmt.Fprintf(w, "%s\n%s", title, desc)
}

func createCourseList(items []list.Item, width, height int) list.Model {
	delegate := sectionDelegate{DefaultDelegate: list.NewDefaultDelegate()}

	l := list.New(items, delegate, width, height)
	l.Title = ""
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	return l
}

// listItems flattens the grouped catalog into list rows, applying the
// hide-closed and hidden-codes display filters.
func (m Model) listItems() []list.Item {
	hidden := make(map[string]bool)
	for _, code := range m.settings.HiddenCourseCodes {
		hidden[code] = true
	}

	active := m.schedules.Active()

	var items []list.Item
	for _, group := range m.groups.All() {
		if hidden[group.Code] {
			continue
		}
		for _, s := range group.Sections {
			if m.settings.HideClosedSections && !s.Open() {
				continue
			}
			items = append(items, sectionListItem{
				uniqueID:   s.UniqueID,
				code:       s.Code,
				name:       s.Name,
				number:     s.SectionNumber,
				kind:       s.Type,
				rawTime:    s.RawTime,
				open:       s.Open(),
				color:      group.Color,
				picked:     active.Sections.Has(s.UniqueID),
				conflicted: m.isConflicted(s),
			})
		}
	}
	return items
}

// isConflicted reports whether s is or would be in conflict: selected
// sections consult the conflict map, unselected ones are probed against the
// current selection.
func (m Model) isConflicted(s *models.Section) bool {
	if m.schedules.Active().Sections.Has(s.UniqueID) {
		return len(m.conflicts[s.UniqueID]) > 0
	}
	return conflict.Check(s, m.selected)
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.list.SettingFilter() {
		switch msg.String() {
		case "enter", " ":
			if item, ok := m.list.SelectedItem().(sectionListItem); ok {
				m.toggle(item.uniqueID)
				m.refreshList()
			}
			return m, nil

		case "tab":
			m.nextSchedule()
			m.refreshList()
			m.status = "Active: " + m.schedules.Active().Name
			return m, nil

		case "n":
			m.createSchedule()
			m.refreshList()
			return m, nil

		case "c":
			m.mode = calendarView
			return m, nil

		case "x":
			if !m.pendingClear {
				m.pendingClear = true
				m.status = fmt.Sprintf("Clear all selections on %q? Press x again to confirm.",
					m.schedules.Active().Name)
				return m, nil
			}
			m.pendingClear = false
			if err := m.schedules.ClearActive(); err != nil {
				m.err = err
				return m, nil
			}
			m.recompute()
			m.refreshList()
			m.status = "Cleared " + m.schedules.Active().Name
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// refreshList rebuilds the rows in place, keeping the cursor position.
func (m *Model) refreshList() {
	index := m.list.Index()
	m.list.SetItems(m.listItems())
	m.list.Select(index)
}

func (m Model) viewList() string {
	status := m.status
	if status == "" {
		status = fmt.Sprintf("%d courses | enter: pick  tab: switch schedule  n: new  c: calendar  x: clear  ?: help",
			m.groups.Len())
	}
	return m.tabBar() + "\n" + m.list.View() + "\n" + statusStyle.Render(status)
}
