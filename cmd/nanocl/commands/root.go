// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/nxthat/nanocl/cmd/nanocl/handlers"
)

// Root returns the root command for the nanocl CLI.
//
// Persistent flags override the matching NANOCL_* environment variables:
//
//	--host:         daemon address (NANOCL_HOST)
//	--log-format:   text or json
//	--strict-probe: only a 404 means an entity is absent (NANOCL_STRICT_PROBE)
func Root() *cobra.Command {
	globals := &handlers.GlobalOptions{}

	cmd := &cobra.Command{
		Use:           "nanocl",
		Short:         "Manage nanocld namespaces, clusters and cargoes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&globals.Host, "host", "H", "", "Daemon address (default: $NANOCL_HOST or unix:///run/nanocl/nanocl.sock)")
	cmd.PersistentFlags().StringVar(&globals.LogFormat, "log-format", handlers.LogFormatText, "Log format: text or json")
	cmd.PersistentFlags().BoolVar(&globals.StrictProbe, "strict-probe", false, "Treat only not found answers as absent entities")

	cmd.AddCommand(Apply(globals))
	cmd.AddCommand(Run(globals))
	cmd.AddCommand(Version(globals))
	cmd.AddCommand(Completion())

	return cmd
}
