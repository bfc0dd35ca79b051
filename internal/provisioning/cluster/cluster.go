package cluster

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/nxthat/nanocl/internal/config"
	"github.com/nxthat/nanocl/internal/platform/nanocld"
	"github.com/nxthat/nanocl/internal/provisioning"
	"github.com/nxthat/nanocl/internal/util/async"
)

func (p *Provisioner) ensureCluster(ctx *provisioning.Context, cluster config.ClusterConfig) error {
	namespace := ctx.Namespace()

	return (&provisioning.EnsureOperation[*nanocld.Cluster, nanocld.ClusterPartial]{
		Phase: phase,
		Kind:  "cluster",
		Name:  cluster.Name,
		Get: func(ctx *provisioning.Context) (*nanocld.Cluster, error) {
			return ctx.Client.InspectCluster(ctx, cluster.Name, namespace)
		},
		Create: func(ctx *provisioning.Context, opts nanocld.ClusterPartial) error {
			return ctx.Client.CreateCluster(ctx, opts, namespace)
		},
		CreateOptsMapper: cluster.Partial,
		OnExists: func(ctx *provisioning.Context, live *nanocld.Cluster) error {
			return p.linkMissingTemplates(ctx, cluster, live)
		},
	}).Execute(ctx)
}

// MissingTemplates returns the declared templates not linked to the live
// cluster, in declared order.
func MissingTemplates(declared, live []string) []string {
	linked := sets.New(live...)
	var missing []string
	for _, template := range declared {
		if !linked.Has(template) {
			missing = append(missing, template)
		}
	}
	return missing
}

// linkMissingTemplates links every declared template the live cluster lacks.
// Templates are only ever added.
func (p *Provisioner) linkMissingTemplates(ctx *provisioning.Context, cluster config.ClusterConfig, live *nanocld.Cluster) error {
	missing := MissingTemplates(cluster.ProxyTemplates, live.ProxyTemplates)
	if len(missing) == 0 {
		return nil
	}

	namespace := ctx.Namespace()
	return async.ForEach(ctx.Context, missing,
		func(template string) string { return "proxy template " + template },
		func(taskCtx context.Context, template string) error {
			if err := ctx.Client.LinkProxyTemplateToCluster(taskCtx, cluster.Name, template, namespace); err != nil {
				return fmt.Errorf("failed to link proxy template %s to cluster %s: %w", template, cluster.Name, err)
			}
			provisioning.LogTemplateLinked(ctx.Observer, phase, cluster.Name, template)
			ctx.State.Record("proxy template", cluster.Name+"/"+template, provisioning.ActionLinked)
			return nil
		},
		ctx.FanOut()...,
	)
}
