package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/qu-tools/jadwal/internal/core/importer"
	"github.com/qu-tools/jadwal/internal/core/store"
)

var loadCmd = &cobra.Command{
	Use:   "load <schedule.json>",
	Short: "Load a schedule file into the active schedule",
	Long: `Replace the active schedule's selections with the contents of a
schedule file previously produced by 'jadwal export'. A version or shape
mismatch rejects the file and leaves the active schedule untouched.

Use "-" to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	var in io.Reader
	if args[0] == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open schedule file: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		in = f
	}

	ids, err := importer.ReadScheduleFile(in)
	if err != nil {
		return err
	}

	database, err := openDB()
	if err != nil {
		return err
	}
	defer func() {
		_ = database.Close()
	}()

	schedules, err := store.Load(database)
	if err != nil {
		return err
	}
	if err := schedules.ReplaceActiveSections(ids); err != nil {
		return err
	}

	fmt.Printf("Loaded %d sections into %s.\n", len(ids), schedules.Active().Name)
	return nil
}
