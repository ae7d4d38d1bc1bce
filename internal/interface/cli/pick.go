package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qu-tools/jadwal/internal/core/catalog"
	"github.com/qu-tools/jadwal/internal/core/conflict"
	"github.com/qu-tools/jadwal/internal/core/store"
)

var pickCmd = &cobra.Command{
	Use:   "pick <unique-id>",
	Short: "Toggle a section on the active schedule",
	Long: `Toggle a section on the active schedule: selected sections are
deselected, unselected ones are selected. Conflicts introduced by the pick
are reported but never block it.

Section ids come from 'jadwal courses'.

Examples:
  jadwal pick MATH101-1-0`,
	Args: cobra.ExactArgs(1),
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	id := args[0]

	database, err := openDB()
	if err != nil {
		return err
	}
	defer func() {
		_ = database.Close()
	}()

	sections, _, err := loadCatalog(database)
	if err != nil {
		return err
	}
	if len(catalog.Resolve([]string{id}, sections)) == 0 {
		return fmt.Errorf("no section with id %s in the current catalog", id)
	}

	schedules, err := store.Load(database)
	if err != nil {
		return err
	}

	selected, err := schedules.ToggleSection(schedules.ActiveID(), id)
	if err != nil {
		return err
	}
	if !selected {
		fmt.Printf("Deselected %s.\n", id)
		return nil
	}
	fmt.Printf("Selected %s.\n", id)

	current := catalog.Resolve(schedules.Active().Sections.IDs(), sections)
	if reasons := conflict.Detect(current)[id]; len(reasons) > 0 {
		for _, reason := range reasons {
			fmt.Printf("  conflict: %s\n", reason)
		}
	}
	return nil
}
