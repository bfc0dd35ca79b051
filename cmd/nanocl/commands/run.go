package commands

import (
	"github.com/spf13/cobra"

	"github.com/nxthat/nanocl/cmd/nanocl/handlers"
	"github.com/nxthat/nanocl/internal/orchestration"
)

// Run returns the command starting a single cargo in a cluster network.
func Run(globals *handlers.GlobalOptions) *cobra.Command {
	var opts orchestration.RunOptions

	cmd := &cobra.Command{
		Use:   "run <name>",
		Short: "Run a cargo in a cluster network",
		Long: `Pull the image if the daemon lacks it, create the cluster, the network
and the cargo when missing, join the cargo to the network and start the
cluster.

Examples:
  nanocl run web --image nginx:latest --cluster dev --network front`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Name = args[0]
			return handlers.Run(cmd.Context(), *globals, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Image, "image", "", "Image of the cargo")
	cmd.Flags().StringVar(&opts.Cluster, "cluster", "", "Cluster to join")
	cmd.Flags().StringVar(&opts.Network, "network", "", "Cluster network to join")
	cmd.Flags().StringVar(&opts.Namespace, "namespace", "", "Namespace of the cluster and the cargo (default: global)")
	_ = cmd.MarkFlagRequired("image")
	_ = cmd.MarkFlagRequired("cluster")
	_ = cmd.MarkFlagRequired("network")

	return cmd
}
