package cli

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/cbroglie/mustache"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/qu-tools/jadwal/internal/core/catalog"
	"github.com/qu-tools/jadwal/internal/core/config"
	"github.com/qu-tools/jadwal/internal/core/importer"
	"github.com/qu-tools/jadwal/internal/core/models"
	"github.com/qu-tools/jadwal/internal/core/store"
)

var (
	exportOutput    string
	exportClipboard bool
	exportText      bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the active schedule",
	Long: `Export the active schedule's selections as a shareable file.

The default format is the versioned JSON schedule file that 'jadwal load'
reads back. --text renders a human-readable summary instead, using the
share template from ~/.config/jadwal/share_template.txt when present.

Examples:
  jadwal export -o fall.json
  jadwal export --text --clipboard`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path (default: stdout)")
	exportCmd.Flags().BoolVar(&exportClipboard, "clipboard", false, "Copy the export to the clipboard")
	exportCmd.Flags().BoolVar(&exportText, "text", false, "Render a plain-text summary instead of the JSON file")
}

func runExport(cmd *cobra.Command, args []string) error {
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
	active := schedules.Active()

	var buf bytes.Buffer
	if exportText {
		sections, _, err := loadCatalog(database)
		if err != nil {
			return err
		}
		text, err := renderShareText(active.Name, catalog.Resolve(active.Sections.IDs(), sections))
		if err != nil {
			return err
		}
		buf.WriteString(text)
	} else {
		if err := importer.WriteScheduleFile(&buf, active.Sections.IDs()); err != nil {
			return err
		}
	}

	if exportClipboard {
		// Use cross-platform clipboard library
		if err := clipboard.WriteAll(buf.String()); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Println("Copied to clipboard.")
		return nil
	}

	if exportOutput != "" {
		if err := os.WriteFile(exportOutput, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		fmt.Printf("Wrote %s.\n", exportOutput)
		return nil
	}

	fmt.Print(buf.String())
	return nil
}

func renderShareText(scheduleName string, selected []models.Section) (string, error) {
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{ShareTemplate: config.DefaultShareTemplate}
	}

	totalHours := 0
	courses := make([]map[string]interface{}, 0, len(selected))
	for _, s := range selected {
		totalHours += s.Hours
		courses = append(courses, map[string]interface{}{
			"code":       s.Code,
			"name":       s.Name,
			"section":    s.SectionNumber,
			"instructor": s.Instructor,
		})
	}

	data := map[string]interface{}{
		"schedule_name": scheduleName,
		"courses":       courses,
		"course_count":  humanize.Comma(int64(len(selected))),
		"total_hours":   humanize.Comma(int64(totalHours)),
		"exported_at":   time.Now().Format("2006-01-02 15:04"),
	}

	text, err := mustache.Render(cfg.ShareTemplate, data)
	if err != nil {
		// Fall back to a minimal summary if a custom template is broken.
		return fmt.Sprintf("%s: %d sections, %d credit hours\n",
			scheduleName, len(selected), totalHours), nil
	}
	return text, nil
}
