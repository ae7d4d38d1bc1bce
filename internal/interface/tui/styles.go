package tui

import "github.com/charmbracelet/lipgloss"

// Global styles used across views
var (
	// Schedule tab bar
	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("246"))

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("170"))

	// Course list styles
	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(lipgloss.Color("170")).
				Bold(true)

	conflictMarkStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Bold(true)

	pickedMarkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("120")).
			Bold(true)

	// Calendar styles
	calendarHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205")).
				Align(lipgloss.Center)

	calendarEventStyle = lipgloss.NewStyle().
				Padding(0, 1)

	calendarConflictStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(lipgloss.Color("196")).
				Bold(true)

	// Status line under the list
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)
