package join

import (
	"context"
	"fmt"

	"github.com/nxthat/nanocl/internal/config"
	"github.com/nxthat/nanocl/internal/platform/nanocld"
	"github.com/nxthat/nanocl/internal/provisioning"
	"github.com/nxthat/nanocl/internal/util/async"
)

const phase = "joins"

// Provisioner handles the joins phase: the joins of every cluster, then
// its start.
type Provisioner struct{}

// NewProvisioner creates a new join provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return phase
}

// Provision implements the provisioning.Phase interface.
// Clusters are handled concurrently.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	return async.ForEach(ctx.Context, ctx.Config.Clusters,
		func(c config.ClusterConfig) string { return "cluster " + c.Name },
		func(taskCtx context.Context, c config.ClusterConfig) error {
			ctx := ctx.WithContext(taskCtx)
			if err := p.ProvisionJoins(ctx, c); err != nil {
				return err
			}
			return p.ProvisionStart(ctx, c)
		},
		ctx.FanOut()...,
	)
}

// ProvisionJoins joins every declared cargo to its network concurrently.
func (p *Provisioner) ProvisionJoins(ctx *provisioning.Context, cluster config.ClusterConfig) error {
	namespace := ctx.Namespace()

	return async.ForEach(ctx.Context, cluster.Joins,
		func(j config.ClusterJoin) string { return "join " + j.String() },
		func(taskCtx context.Context, j config.ClusterJoin) error {
			err := ctx.Client.JoinClusterCargo(taskCtx, cluster.Name, j.Partial(), namespace)
			alreadyJoined := nanocld.IsConflict(err)
			if err := nanocld.IgnoreConflict(err); err != nil {
				provisioning.LogResourceFailed(ctx.Observer, phase, "join", cluster.Name, err)
				return fmt.Errorf("failed to join cargo %s to network %s of cluster %s: %w", j.Cargo, j.Network, cluster.Name, err)
			}

			provisioning.LogCargoJoined(ctx.Observer, phase, cluster.Name, j.String(), alreadyJoined)
			action := provisioning.ActionJoined
			if alreadyJoined {
				action = provisioning.ActionExists
			}
			ctx.State.Record("join", cluster.Name+"/"+j.String(), action)
			return nil
		},
		ctx.FanOut()...,
	)
}

// ProvisionStart starts the cluster when it declares auto_start.
// The start is issued on every run; the daemon decides what starting a
// running cluster means.
func (p *Provisioner) ProvisionStart(ctx *provisioning.Context, cluster config.ClusterConfig) error {
	if !cluster.ShouldStart() {
		provisioning.LogResourceSkipped(ctx.Observer, phase, "cluster start", cluster.Name, "auto_start not set")
		ctx.State.Record("cluster start", cluster.Name, provisioning.ActionSkipped)
		return nil
	}

	if err := ctx.Client.StartCluster(ctx, cluster.Name, ctx.Namespace()); err != nil {
		provisioning.LogResourceFailed(ctx.Observer, phase, "cluster start", cluster.Name, err)
		return fmt.Errorf("failed to start cluster %s: %w", cluster.Name, err)
	}

	provisioning.LogClusterStarted(ctx.Observer, phase, cluster.Name)
	ctx.State.Record("cluster start", cluster.Name, provisioning.ActionStarted)
	return nil
}
