package commands

import (
	"github.com/spf13/cobra"

	"github.com/nxthat/nanocl/cmd/nanocl/handlers"
)

// Apply returns the command converging the daemon to a namespace document.
//
// Required flags:
//
//	--file, -f: Path to the namespace YAML document
//
// Optional flags:
//
//	--metrics-textfile: Write prometheus metrics to this path after the run
//	--print:            Print the payloads apply would send and exit
func Apply(globals *handlers.GlobalOptions) *cobra.Command {
	var opts handlers.ApplyOptions

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a namespace document to the daemon",
		Long: `Create whatever a namespace document declares and the daemon lacks.

Apply is additive: entities that already exist are left untouched, missing
proxy templates are linked to existing clusters and nothing is ever deleted.
Running it twice against an unchanged daemon issues no new creates.

Examples:
  # Apply a namespace
  nanocl apply -f namespace.yml

  # Show the payloads without contacting the daemon
  nanocl apply -f namespace.yml --print

  # Export metrics for the node exporter textfile collector
  nanocl apply -f namespace.yml --metrics-textfile /var/lib/node_exporter/nanocl.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), *globals, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Path to namespace document")
	cmd.Flags().StringVar(&opts.MetricsTextfile, "metrics-textfile", "", "Write metrics in textfile collector format to this path")
	cmd.Flags().BoolVar(&opts.Print, "print", false, "Print the payloads and exit without contacting the daemon")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
