package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/hue-invert/internal/server"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol server on stdio.

The server exposes image_load, image_sample_color, image_hue_histogram,
hue_invert and hue_sweep. Optional tool arguments default to the config file.

MCP client configuration:
  {
    "mcpServers": {
      "hue-invert": {
        "command": "/path/to/hue-invert",
        "args": ["mcp"]
      }
    }
  }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return server.New(a.cfg, version).Run(cmd.Context())
		},
	}
}
