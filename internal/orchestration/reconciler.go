package orchestration

import (
	"context"
	"errors"

	"github.com/nxthat/nanocl/internal/config"
	"github.com/nxthat/nanocl/internal/platform/nanocld"
	"github.com/nxthat/nanocl/internal/provisioning"
	"github.com/nxthat/nanocl/internal/provisioning/cargo"
	"github.com/nxthat/nanocl/internal/provisioning/cluster"
	"github.com/nxthat/nanocl/internal/provisioning/join"
	"github.com/nxthat/nanocl/internal/provisioning/namespace"
)

// Reconciler orchestrates the apply workflow.
type Reconciler struct {
	client   nanocld.Client
	config   *config.NamespaceConfig
	settings *config.Settings
	observer provisioning.Observer

	// Phases
	namespaceProvisioner *namespace.Provisioner
	clusterProvisioner   *cluster.Provisioner
	cargoProvisioner     *cargo.Provisioner
	joinProvisioner      *join.Provisioner
}

// ReconcilerOption configures a Reconciler.
type ReconcilerOption func(*Reconciler)

// WithObserver sets the observer receiving reconciliation events.
func WithObserver(observer provisioning.Observer) ReconcilerOption {
	return func(r *Reconciler) {
		r.observer = observer
	}
}

// WithSettings sets the probe and fan-out settings.
// Without it settings are read from the environment.
func WithSettings(settings *config.Settings) ReconcilerOption {
	return func(r *Reconciler) {
		r.settings = settings
	}
}

// NewReconciler creates a new orchestration reconciler.
func NewReconciler(client nanocld.Client, cfg *config.NamespaceConfig, opts ...ReconcilerOption) *Reconciler {
	r := &Reconciler{
		client:               client,
		config:               cfg,
		namespaceProvisioner: namespace.NewProvisioner(),
		clusterProvisioner:   cluster.NewProvisioner(),
		cargoProvisioner:     cargo.NewProvisioner(),
		joinProvisioner:      join.NewProvisioner(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.settings == nil {
		r.settings = config.LoadSettings()
	}
	if r.observer == nil {
		r.observer = provisioning.NewConsoleObserver()
	}
	return r
}

// Phases returns the phases in execution order. Joins come after cargoes
// and networks so every entity a join references exists.
func (r *Reconciler) Phases() []provisioning.Phase {
	return []provisioning.Phase{
		r.namespaceProvisioner,
		r.clusterProvisioner,
		r.cargoProvisioner,
		r.joinProvisioner,
	}
}

// ErrNoConfig is returned by Reconcile when the reconciler has no document.
var ErrNoConfig = errors.New("no namespace document to reconcile")

// Reconcile converges the daemon to the document.
// Every call starts from an empty state. The returned state lists what was
// done, including on failure.
func (r *Reconciler) Reconcile(ctx context.Context) (*provisioning.State, error) {
	if r.config == nil {
		return nil, ErrNoConfig
	}

	state := provisioning.NewState()
	pCtx := provisioning.NewContext(ctx, r.config, r.client, r.settings)
	pCtx.State = state
	pCtx.Observer = r.observer.WithFields(map[string]string{"namespace": r.config.Name})

	return state, provisioning.RunPhases(pCtx, r.Phases())
}
