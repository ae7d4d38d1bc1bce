package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qu-tools/jadwal/internal/core/models"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change display settings",
	Long: `Show or change the display settings used by the TUI and listings.

Keys: theme, accent-color, show-weekends, min-time, max-time, hide-closed.
'hide' and 'unhide' manage the per-course hidden list. These shape rendering
only; conflict detection always considers every selected section.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDB()
		if err != nil {
			return err
		}
		defer func() {
			_ = database.Close()
		}()

		s := database.LoadSettings()
		fmt.Printf("theme:         %s\n", s.Theme)
		fmt.Printf("accent-color:  %s\n", s.AccentColor)
		fmt.Printf("show-weekends: %t\n", s.ShowWeekends)
		fmt.Printf("min-time:      %s\n", s.MinTime)
		fmt.Printf("max-time:      %s\n", s.MaxTime)
		fmt.Printf("hide-closed:   %t\n", s.HideClosedSections)
		if len(s.HiddenCourseCodes) > 0 {
			fmt.Printf("hidden codes:  %s\n", strings.Join(s.HiddenCourseCodes, ", "))
		}
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDB()
		if err != nil {
			return err
		}
		defer func() {
			_ = database.Close()
		}()

		s := database.LoadSettings()
		if err := applySetting(&s, args[0], args[1]); err != nil {
			return err
		}
		return database.SaveSettings(s)
	},
}

var settingsHideCmd = &cobra.Command{
	Use:   "hide <code>",
	Short: "Hide a course from listings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDB()
		if err != nil {
			return err
		}
		defer func() {
			_ = database.Close()
		}()

		s := database.LoadSettings()
		if !s.HideCourse(args[0]) {
			fmt.Printf("%s is already hidden.\n", args[0])
			return nil
		}
		if err := database.SaveSettings(s); err != nil {
			return err
		}
		fmt.Printf("Hidden %s.\n", args[0])
		return nil
	},
}

var settingsUnhideCmd = &cobra.Command{
	Use:   "unhide <code>",
	Short: "Show a hidden course again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDB()
		if err != nil {
			return err
		}
		defer func() {
			_ = database.Close()
		}()

		s := database.LoadSettings()
		if !s.UnhideCourse(args[0]) {
			fmt.Printf("%s is not hidden.\n", args[0])
			return nil
		}
		if err := database.SaveSettings(s); err != nil {
			return err
		}
		fmt.Printf("Unhidden %s.\n", args[0])
		return nil
	},
}

var colorCmd = &cobra.Command{
	Use:   "color <code> [#rrggbb]",
	Short: "Override a course's color, or reset it",
	Long: `Set a fixed color for a course code, overriding the palette cycle.
Overrides survive catalog re-imports. Omit the color to remove the
override.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDB()
		if err != nil {
			return err
		}
		defer func() {
			_ = database.Close()
		}()

		if len(args) == 1 {
			return database.DeleteColorOverride(args[0])
		}
		if !strings.HasPrefix(args[1], "#") || len(args[1]) != 7 {
			return fmt.Errorf("color must look like #rrggbb, got %q", args[1])
		}
		return database.SetColorOverride(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd, colorCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsHideCmd, settingsUnhideCmd)
}

func applySetting(s *models.Settings, key, value string) error {
	switch key {
	case "theme":
		s.Theme = value
	case "accent-color":
		s.AccentColor = value
	case "min-time":
		s.MinTime = value
	case "max-time":
		s.MaxTime = value
	case "show-weekends", "hide-closed":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s wants true or false, got %q", key, value)
		}
		if key == "show-weekends" {
			s.ShowWeekends = b
		} else {
			s.HideClosedSections = b
		}
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}
