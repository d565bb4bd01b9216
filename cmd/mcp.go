package cmd

import (
	"github.com/huangsam/weightexile/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the weightexile MCP server",
	Long: `Launch an MCP server over stdio that lets AI agents build filter groups,
classify item bases and search the stat catalog via standard tools.`,
	Args:    cobra.NoArgs,
	PreRunE: catalogSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, cacheManager)
	},
}
