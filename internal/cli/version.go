package cli

import (
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		// Skip config loading so version works with a broken config file.
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("hue-invert %s\n", version)
			cmd.Printf("  Build time: %s\n", buildTime)
			cmd.Printf("  Git commit: %s\n", gitCommit)
		},
	}
}
