package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qu-tools/jadwal/internal/core/catalog"
	"github.com/qu-tools/jadwal/internal/core/conflict"
	"github.com/qu-tools/jadwal/internal/core/store"
)

var conflictsCmd = &cobra.Command{
	Use:   "conflicts",
	Short: "Report conflicts in the active schedule",
	RunE:  runConflicts,
}

func init() {
	rootCmd.AddCommand(conflictsCmd)
}

func runConflicts(cmd *cobra.Command, args []string) error {
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

	schedules, err := store.Load(database)
	if err != nil {
		return err
	}
	active := schedules.Active()
	selected := catalog.Resolve(active.Sections.IDs(), sections)

	reasons := conflict.Detect(selected)
	if len(reasons) == 0 {
		fmt.Printf("%s: no conflicts (%d sections).\n", active.Name, len(selected))
		return nil
	}

	fmt.Printf("%s: conflicts found\n", active.Name)
	for _, s := range selected {
		list, ok := reasons[s.UniqueID]
		if !ok {
			continue
		}
		fmt.Printf("  %s (%s section %s)\n", s.UniqueID, s.Code, s.SectionNumber)
		for _, reason := range list {
			fmt.Printf("    - %s\n", reason)
		}
	}
	return nil
}
