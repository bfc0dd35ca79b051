package namespace

import (
	"github.com/nxthat/nanocl/internal/platform/nanocld"
	"github.com/nxthat/nanocl/internal/provisioning"
)

const phase = "namespace"

// Provisioner handles the namespace phase.
type Provisioner struct{}

// NewProvisioner creates a new namespace provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return phase
}

// Provision implements the provisioning.Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	name := ctx.Namespace()

	return (&provisioning.EnsureOperation[*nanocld.Namespace, string]{
		Phase: phase,
		Kind:  "namespace",
		Name:  name,
		Get: func(ctx *provisioning.Context) (*nanocld.Namespace, error) {
			return ctx.Client.InspectNamespace(ctx, name)
		},
		Create: func(ctx *provisioning.Context, name string) error {
			return ctx.Client.CreateNamespace(ctx, name)
		},
		CreateOptsMapper: func() string { return name },
	}).Execute(ctx)
}
