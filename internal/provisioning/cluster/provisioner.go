package cluster

import (
	"context"

	"github.com/nxthat/nanocl/internal/config"
	"github.com/nxthat/nanocl/internal/provisioning"
	"github.com/nxthat/nanocl/internal/util/async"
)

const phase = "clusters"

// Provisioner handles the clusters phase: every cluster with its proxy
// templates, then its variables, then its networks.
type Provisioner struct{}

// NewProvisioner creates a new cluster provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return phase
}

// Provision implements the provisioning.Phase interface.
// Clusters are reconciled concurrently.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	return async.ForEach(ctx.Context, ctx.Config.Clusters,
		func(c config.ClusterConfig) string { return "cluster " + c.Name },
		func(taskCtx context.Context, c config.ClusterConfig) error {
			return p.ProvisionCluster(ctx.WithContext(taskCtx), c)
		},
		ctx.FanOut()...,
	)
}

// ProvisionCluster reconciles one cluster and its sub resources in order.
func (p *Provisioner) ProvisionCluster(ctx *provisioning.Context, cluster config.ClusterConfig) error {
	// 1. Cluster and proxy templates
	if err := p.ensureCluster(ctx, cluster); err != nil {
		return err
	}

	// 2. Variables
	if err := p.ProvisionVariables(ctx, cluster); err != nil {
		return err
	}

	// 3. Networks
	return p.ProvisionNetworks(ctx, cluster)
}
