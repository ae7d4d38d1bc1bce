package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qu-tools/jadwal/internal/core/catalog"
	"github.com/qu-tools/jadwal/internal/core/conflict"
	"github.com/qu-tools/jadwal/internal/core/store"
)

var checkCmd = &cobra.Command{
	Use:   "check <unique-id>",
	Short: "Check whether a section would clash with the active schedule",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
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
	resolved := catalog.Resolve([]string{id}, sections)
	if len(resolved) == 0 {
		return fmt.Errorf("no section with id %s in the current catalog", id)
	}
	candidate := resolved[0]

	schedules, err := store.Load(database)
	if err != nil {
		return err
	}
	selected := catalog.Resolve(schedules.Active().Sections.IDs(), sections)

	if conflict.Check(&candidate, selected) {
		fmt.Printf("%s would conflict with the current selection.\n", id)
		return nil
	}
	fmt.Printf("%s fits the current selection.\n", id)
	return nil
}
