package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/qu-tools/jadwal/internal/core/importer"
)

var importCmd = &cobra.Command{
	Use:   "import <payload.json>",
	Short: "Import a scraped course payload",
	Long: `Import the course payload produced by the registration-page bookmarklet.

The payload replaces the whole catalog and resets the schedule collection,
since the old selections reference section ids from the previous import.
Use "-" to read the payload from stdin.

Examples:
  jadwal import courses.json
  pbpaste | jadwal import -`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	var in io.Reader
	if args[0] == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open payload: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		in = f
	}

	database, err := openDB()
	if err != nil {
		return err
	}
	defer func() {
		_ = database.Close()
	}()

	count, err := importer.New(database).ImportPayload(in)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %s sections. Schedules were reset.\n", humanize.Comma(int64(count)))
	return nil
}
