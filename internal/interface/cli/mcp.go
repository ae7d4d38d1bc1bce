package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qu-tools/jadwal/cmd/jadwal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "serve-mcp",
	Short: "Start MCP server exposing the schedule data",
	Long: `Start an MCP (Model Context Protocol) server that lets an assistant
query the imported courses, the active schedule, and its conflicts.

Configure in your assistant's MCP config:
  {
    "mcpServers": {
      "jadwal": {
        "command": "jadwal",
        "args": ["serve-mcp"]
      }
    }
  }
`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	if err := mcp.StartServer(dbPath); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}
