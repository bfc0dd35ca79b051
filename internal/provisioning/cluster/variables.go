package cluster

import (
	"context"

	"github.com/nxthat/nanocl/internal/config"
	"github.com/nxthat/nanocl/internal/platform/nanocld"
	"github.com/nxthat/nanocl/internal/provisioning"
	"github.com/nxthat/nanocl/internal/util/async"
)

// ProvisionVariables creates the declared variables the cluster lacks.
// A live variable keeps its value even when the document declares another.
func (p *Provisioner) ProvisionVariables(ctx *provisioning.Context, cluster config.ClusterConfig) error {
	namespace := ctx.Namespace()

	return async.ForEach(ctx.Context, cluster.VariableNames(),
		func(name string) string { return "variable " + name },
		func(taskCtx context.Context, name string) error {
			return (&provisioning.EnsureOperation[*nanocld.ClusterVar, nanocld.ClusterVarPartial]{
				Phase: phase,
				Kind:  "cluster variable",
				Name:  cluster.Name + "/" + name,
				Get: func(ctx *provisioning.Context) (*nanocld.ClusterVar, error) {
					return ctx.Client.InspectClusterVar(ctx, cluster.Name, name, namespace)
				},
				Create: func(ctx *provisioning.Context, opts nanocld.ClusterVarPartial) error {
					return ctx.Client.CreateClusterVar(ctx, cluster.Name, opts, namespace)
				},
				CreateOptsMapper: func() nanocld.ClusterVarPartial {
					return cluster.VariablePartial(name)
				},
			}).Execute(ctx.WithContext(taskCtx))
		},
		ctx.FanOut()...,
	)
}
