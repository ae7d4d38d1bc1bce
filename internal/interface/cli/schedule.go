package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qu-tools/jadwal/internal/core/store"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Manage named schedules",
	Long: `Manage the collection of named schedules.

Each schedule is an independent set of selected sections. Exactly one
schedule is active at a time; picking, clearing, export, and conflict
reports all work against the active one.`,
}

var scheduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List schedules",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			for _, sched := range s.Schedules() {
				marker := " "
				if sched.ID == s.ActiveID() {
					marker = "*"
				}
				fmt.Printf("%s %s  %s (%d sections)\n", marker, sched.ID, sched.Name, sched.Sections.Len())
			}
			return nil
		})
	},
}

var scheduleAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a schedule and make it active",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			id, err := s.Create(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Created %s (%s), now active.\n", args[0], id)
			return nil
		})
	},
}

var scheduleRenameCmd = &cobra.Command{
	Use:   "rename <id> <new-name>",
	Short: "Rename a schedule",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if s.Get(args[0]) == nil {
				return fmt.Errorf("no schedule with id %s", args[0])
			}
			return s.Rename(args[0], args[1])
		})
	},
}

var scheduleDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a schedule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if s.Get(args[0]) == nil {
				return fmt.Errorf("no schedule with id %s", args[0])
			}
			if s.Len() == 1 {
				return fmt.Errorf("cannot delete the only schedule")
			}
			return s.Delete(args[0])
		})
	},
}

var scheduleUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Switch the active schedule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if s.Get(args[0]) == nil {
				return fmt.Errorf("no schedule with id %s", args[0])
			}
			if err := s.SetActive(args[0]); err != nil {
				return err
			}
			fmt.Printf("Active schedule: %s\n", s.Active().Name)
			return nil
		})
	},
}

var scheduleClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every selection from the active schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.ClearActive(); err != nil {
				return err
			}
			fmt.Printf("Cleared %s.\n", s.Active().Name)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.AddCommand(scheduleListCmd, scheduleAddCmd, scheduleRenameCmd,
		scheduleDeleteCmd, scheduleUseCmd, scheduleClearCmd)
}

// withStore opens the database, loads the schedule store, and runs fn.
func withStore(fn func(*store.Store) error) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer func() {
		_ = database.Close()
	}()

	s, err := store.Load(database)
	if err != nil {
		return err
	}
	return fn(s)
}
