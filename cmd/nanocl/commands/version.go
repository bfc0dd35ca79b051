package commands

import (
	"github.com/spf13/cobra"

	"github.com/nxthat/nanocl/cmd/nanocl/handlers"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo sets the version information from main.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Version returns the version command.
func Version(globals *handlers.GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print CLI and daemon version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Version(cmd.Context(), *globals, handlers.BuildInfo{
				Version: version,
				Commit:  commit,
				Date:    date,
			})
		},
	}
}
