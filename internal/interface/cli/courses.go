package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/qu-tools/jadwal/internal/core/catalog"
	"github.com/qu-tools/jadwal/internal/core/conflict"
	"github.com/qu-tools/jadwal/internal/core/store"
)

var coursesHideClosed bool

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the imported courses and their sections",
	Long: `List every course in the catalog with its sections, marking the
sections selected on the active schedule and the ones that would clash
with it.

Markers: [x] selected, ! would conflict with the current selection.

Examples:
  jadwal courses
  jadwal courses --hide-closed`,
	RunE: runCourses,
}

func init() {
	rootCmd.AddCommand(coursesCmd)
	coursesCmd.Flags().BoolVar(&coursesHideClosed, "hide-closed", false, "Hide sections closed for registration")
}

func runCourses(cmd *cobra.Command, args []string) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer func() {
		_ = database.Close()
	}()

	sections, groups, err := loadCatalog(database)
	if err != nil {
		return err
	}
	if groups.Len() == 0 {
		fmt.Println("No courses imported. Run 'jadwal import' with a scraped payload.")
		return nil
	}

	schedules, err := store.Load(database)
	if err != nil {
		return err
	}
	active := schedules.Active()
	selected := catalog.Resolve(active.Sections.IDs(), sections)

	settings := database.LoadSettings()
	hideClosed := coursesHideClosed || settings.HideClosedSections

	hidden := make(map[string]bool)
	for _, code := range settings.HiddenCourseCodes {
		hidden[code] = true
	}

	for _, group := range groups.All() {
		if hidden[group.Code] {
			continue
		}

		shown := group.Sections
		if hideClosed {
			shown = nil
			for _, s := range group.Sections {
				if s.Open() {
					shown = append(shown, s)
				}
			}
			if len(shown) == 0 {
				continue
			}
		}

		fmt.Printf("%s  %s\n", group.Code, group.Name)
		for _, s := range shown {
			mark := "[ ]"
			if active.Sections.Has(s.UniqueID) {
				mark = "[x]"
			} else if conflict.Check(s, selected) {
				mark = " ! "
			}
			fmt.Printf("  %s %-14s section %-4s %s  %s\n",
				mark, s.UniqueID, s.SectionNumber, s.Type,
				strings.ReplaceAll(s.RawTime, "\n", " | "))
		}
	}

	fmt.Printf("\n%s courses, %s sections. Active schedule: %s (%d selected)\n",
		humanize.Comma(int64(groups.Len())),
		humanize.Comma(int64(len(sections))),
		active.Name, active.Sections.Len())
	return nil
}
