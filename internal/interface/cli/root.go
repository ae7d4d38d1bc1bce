package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qu-tools/jadwal/internal/core/db"
)

var (
	dbPath      string
	versionInfo string
)

// SetVersion sets the version information from build-time ldflags
func SetVersion(version, commit, date string) {
	versionInfo = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	rootCmd.Version = versionInfo
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jadwal",
	Short: "University course schedule builder",
	Long: `jadwal - build university course schedules from scraped section data

Import the course list produced by the registration-page bookmarklet, pick
sections into one or more named schedules, and get lecture-time and
final-exam conflicts flagged as you go. Everything is stored locally.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to TUI if no subcommand specified
		return tuiCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", db.DefaultPath(), "Database path")
}
