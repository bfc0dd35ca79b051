package cluster

import (
	"context"

	"github.com/nxthat/nanocl/internal/config"
	"github.com/nxthat/nanocl/internal/platform/nanocld"
	"github.com/nxthat/nanocl/internal/provisioning"
	"github.com/nxthat/nanocl/internal/util/async"
)

// ProvisionNetworks creates the namespace networks missing in the cluster.
func (p *Provisioner) ProvisionNetworks(ctx *provisioning.Context, cluster config.ClusterConfig) error {
	namespace := ctx.Namespace()

	return async.ForEach(ctx.Context, ctx.Config.Networks,
		func(n config.NetworkConfig) string { return "network " + n.Name },
		func(taskCtx context.Context, network config.NetworkConfig) error {
			return (&provisioning.EnsureOperation[*nanocld.ClusterNetwork, nanocld.ClusterNetworkPartial]{
				Phase: phase,
				Kind:  "cluster network",
				Name:  cluster.Name + "/" + network.Name,
				Get: func(ctx *provisioning.Context) (*nanocld.ClusterNetwork, error) {
					return ctx.Client.InspectClusterNetwork(ctx, cluster.Name, network.Name, namespace)
				},
				Create: func(ctx *provisioning.Context, opts nanocld.ClusterNetworkPartial) error {
					return ctx.Client.CreateClusterNetwork(ctx, cluster.Name, opts, namespace)
				},
				CreateOptsMapper: network.Partial,
			}).Execute(ctx.WithContext(taskCtx))
		},
		ctx.FanOut()...,
	)
}
