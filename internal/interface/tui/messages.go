package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/qu-tools/jadwal/internal/core/catalog"
	"github.com/qu-tools/jadwal/internal/core/config"
	"github.com/qu-tools/jadwal/internal/core/db"
	"github.com/qu-tools/jadwal/internal/core/models"
	"github.com/qu-tools/jadwal/internal/core/store"
)

type errMsg struct {
	err error
}

type stateLoadedMsg struct {
	sections  []models.Section
	groups    *catalog.Groups
	schedules *store.Store
	settings  models.Settings
}

// loadState rebuilds the catalog and loads the schedule store. Everything
// after this initial load mutates synchronously inside Update, so the TUI
// state never diverges from the database.
func loadState(database *db.DB) tea.Cmd {
	return func() tea.Msg {
		raw, err := database.LoadRawSections()
		if err != nil {
			return errMsg{err}
		}
		overrides, err := database.ColorOverrides()
		if err != nil {
			return errMsg{err}
		}
		cfg, _ := config.Load()
		sections, groups := catalog.Build(raw, cfg.Palette, overrides)

		schedules, err := store.Load(database)
		if err != nil {
			return errMsg{err}
		}

		return stateLoadedMsg{
			sections:  sections,
			groups:    groups,
			schedules: schedules,
			settings:  database.LoadSettings(),
		}
	}
}
