package cargo

import (
	"context"

	"github.com/nxthat/nanocl/internal/config"
	"github.com/nxthat/nanocl/internal/platform/nanocld"
	"github.com/nxthat/nanocl/internal/provisioning"
	"github.com/nxthat/nanocl/internal/util/async"
)

const phase = "cargoes"

// Provisioner handles the cargoes phase.
type Provisioner struct{}

// NewProvisioner creates a new cargo provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return phase
}

// Provision implements the provisioning.Phase interface.
// Cargoes are reconciled concurrently.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	return async.ForEach(ctx.Context, ctx.Config.Cargoes,
		func(c config.CargoConfig) string { return "cargo " + c.Name },
		func(taskCtx context.Context, c config.CargoConfig) error {
			return p.ProvisionCargo(ctx.WithContext(taskCtx), c)
		},
		ctx.FanOut()...,
	)
}

// ProvisionCargo creates one cargo from its full declaration when missing.
func (p *Provisioner) ProvisionCargo(ctx *provisioning.Context, cargo config.CargoConfig) error {
	namespace := ctx.Namespace()

	return (&provisioning.EnsureOperation[*nanocld.Cargo, nanocld.CargoPartial]{
		Phase: phase,
		Kind:  "cargo",
		Name:  cargo.Name,
		Get: func(ctx *provisioning.Context) (*nanocld.Cargo, error) {
			return ctx.Client.InspectCargo(ctx, cargo.Name, namespace)
		},
		Create: func(ctx *provisioning.Context, opts nanocld.CargoPartial) error {
			return ctx.Client.CreateCargo(ctx, opts, namespace)
		},
		CreateOptsMapper: cargo.Partial,
	}).Execute(ctx)
}
