package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?":
		m.mode = listView
		return m, nil
	}

	return m, nil
}

func (m Model) viewHelp() string {
	help := `
jadwal - Help
═════════════

COURSE LIST
───────────
  ↑/↓, j/k     Navigate sections
  enter/space  Toggle the section on the active schedule
  /            Filter courses
  tab          Switch to the next schedule
  n            Create a new schedule
  c            Weekly calendar
  x            Clear the active schedule (press twice)
  ?            Show this help
  q            Quit

CALENDAR
────────
  tab          Switch to the next schedule
  w            Toggle weekend columns
  esc, l, c    Back to course list
  q            Back to course list

Sections marked [x] are on the active schedule; a red ! means the
section would clash with your current picks. Conflicts never block a
pick, they are only flagged.
`
	return helpStyle.Render(help)
}
