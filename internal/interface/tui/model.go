package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/qu-tools/jadwal/internal/core/catalog"
	"github.com/qu-tools/jadwal/internal/core/conflict"
	"github.com/qu-tools/jadwal/internal/core/db"
	"github.com/qu-tools/jadwal/internal/core/models"
	"github.com/qu-tools/jadwal/internal/core/store"
)

type viewMode int

const (
	listView viewMode = iota
	calendarView
	helpView
)

type Model struct {
	db     *db.DB
	mode   viewMode
	list   list.Model
	width  int
	height int
	err    error

	sections  []models.Section
	groups    *catalog.Groups
	schedules *store.Store
	settings  models.Settings

	// Derived from the active schedule, recomputed after every mutation
	selected  []models.Section
	conflicts map[string][]string

	status       string
	pendingClear bool
}

func New(database *db.DB) Model {
	return Model{
		db:   database,
		mode: listView,
	}
}

func (m Model) Init() tea.Cmd {
	return loadState(m.db)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.groups != nil {
			m.list.SetSize(msg.Width, msg.Height-3)
		}
		return m, nil

	case tea.KeyMsg:
		// A pending clear is confirmed only by a second x; anything else
		// declines it.
		if m.pendingClear && msg.String() != "x" {
			m.pendingClear = false
			m.status = ""
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.mode == listView && !m.list.SettingFilter() {
				return m, tea.Quit
			}
			if m.mode != listView {
				m.mode = listView
				return m, nil
			}

		case "?":
			if m.mode != listView || !m.list.SettingFilter() {
				m.mode = helpView
				return m, nil
			}
		}

		switch m.mode {
		case listView:
			return m.updateList(msg)
		case calendarView:
			return m.updateCalendar(msg)
		case helpView:
			return m.updateHelp(msg)
		}

	case stateLoadedMsg:
		m.sections = msg.sections
		m.groups = msg.groups
		m.schedules = msg.schedules
		m.settings = msg.settings
		m.recompute()
		m.list = createCourseList(m.listItems(), m.width, m.height-3)
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit"
	}
	if m.schedules == nil {
		return "Loading..."
	}

	switch m.mode {
	case calendarView:
		return m.viewCalendar()
	case helpView:
		return m.viewHelp()
	default:
		return m.viewList()
	}
}

// recompute refreshes the selected-section slice and the conflict map from
// the active schedule. Stale ids from an older catalog drop out here.
func (m *Model) recompute() {
	m.selected = catalog.Resolve(m.schedules.Active().Sections.IDs(), m.sections)
	m.conflicts = conflict.Detect(m.selected)
}

// tabBar renders the schedule tabs with the active one highlighted.
func (m Model) tabBar() string {
	var tabs []string
	for _, sched := range m.schedules.Schedules() {
		label := fmt.Sprintf("%s (%d)", sched.Name, sched.Sections.Len())
		if sched.ID == m.schedules.ActiveID() {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// nextSchedule activates the schedule after the current one, wrapping.
func (m *Model) nextSchedule() {
	schedules := m.schedules.Schedules()
	for i, sched := range schedules {
		if sched.ID == m.schedules.ActiveID() {
			next := schedules[(i+1)%len(schedules)]
			if err := m.schedules.SetActive(next.ID); err != nil {
				m.err = err
				return
			}
			break
		}
	}
	m.recompute()
}

func (m *Model) createSchedule() {
	name := fmt.Sprintf("جدول مقترح %d", m.schedules.Len()+1)
	if _, err := m.schedules.Create(name); err != nil {
		m.err = err
		return
	}
	m.recompute()
	m.status = "Created " + name
}

func (m *Model) toggle(uniqueID string) {
	selected, err := m.schedules.ToggleSection(m.schedules.ActiveID(), uniqueID)
	if err != nil {
		m.err = err
		return
	}
	m.recompute()
	if selected {
		if reasons := m.conflicts[uniqueID]; len(reasons) > 0 {
			m.status = conflictMarkStyle.Render("conflict: " + reasons[0])
		} else {
			m.status = "Selected " + uniqueID
		}
	} else {
		m.status = "Deselected " + uniqueID
	}
}
