package cli

import (
	"fmt"

	"github.com/qu-tools/jadwal/internal/core/catalog"
	"github.com/qu-tools/jadwal/internal/core/config"
	"github.com/qu-tools/jadwal/internal/core/db"
	"github.com/qu-tools/jadwal/internal/core/models"
)

// openDB opens the state database at the --db path.
func openDB() (*db.DB, error) {
	database, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

// loadCatalog builds the enriched catalog from the stored raw sections,
// applying the configured palette and any per-course color overrides.
func loadCatalog(database *db.DB) ([]models.Section, *catalog.Groups, error) {
	raw, err := database.LoadRawSections()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	overrides, err := database.ColorOverrides()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load color overrides: %w", err)
	}

	cfg, _ := config.Load()

	sections, groups := catalog.Build(raw, cfg.Palette, overrides)
	return sections, groups, nil
}
