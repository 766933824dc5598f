package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information injected at build time
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mkstructs %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}
