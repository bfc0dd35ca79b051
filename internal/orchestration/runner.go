package orchestration

import (
	"context"
	"errors"
	"fmt"

	"github.com/nxthat/nanocl/internal/platform/nanocld"
	"github.com/nxthat/nanocl/internal/provisioning"
	"github.com/nxthat/nanocl/internal/util/ptr"
)

// RunOptions describes one cargo started by the run command.
type RunOptions struct {
	Name      string
	Image     string
	Cluster   string
	Network   string
	Namespace string
}

// Validate checks that every required field is set.
func (o RunOptions) Validate() error {
	fields := []struct{ name, value string }{
		{"name", o.Name},
		{"image", o.Image},
		{"cluster", o.Cluster},
		{"network", o.Network},
	}
	var errs []error
	for _, f := range fields {
		if f.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", f.name))
		}
	}
	return errors.Join(errs...)
}

// Runner executes the run command sequentially.
type Runner struct {
	client   nanocld.Client
	observer provisioning.Observer
}

// NewRunner creates a runner.
func NewRunner(client nanocld.Client, observer provisioning.Observer) *Runner {
	if observer == nil {
		observer = provisioning.NewConsoleObserver()
	}
	return &Runner{client: client, observer: observer}
}

// Run ensures the image, creates the cluster, the network and the cargo,
// joins the cargo and starts the cluster. Creates answered with a conflict
// count as success; join and start errors are returned as is.
func (r *Runner) Run(ctx context.Context, opts RunOptions) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid run options: %w", err)
	}

	if err := EnsureImage(ctx, r.client, r.observer, opts.Image); err != nil {
		return err
	}

	if err := r.create("cluster", opts.Cluster, func() error {
		return r.client.CreateCluster(ctx, nanocld.ClusterPartial{Name: opts.Cluster}, opts.Namespace)
	}); err != nil {
		return err
	}

	if err := r.create("cluster network", opts.Cluster+"/"+opts.Network, func() error {
		return r.client.CreateClusterNetwork(ctx, opts.Cluster, nanocld.ClusterNetworkPartial{Name: opts.Network}, opts.Namespace)
	}); err != nil {
		return err
	}

	if err := r.create("cargo", opts.Name, func() error {
		return r.client.CreateCargo(ctx, nanocld.CargoPartial{
			Name:     opts.Name,
			Replicas: ptr.Int(1),
			Config:   nanocld.ContainerConfig{Image: opts.Image},
		}, opts.Namespace)
	}); err != nil {
		return err
	}

	join := nanocld.ClusterJoinPartial{Network: opts.Network, Cargo: opts.Name}
	if err := r.client.JoinClusterCargo(ctx, opts.Cluster, join, opts.Namespace); err != nil {
		return fmt.Errorf("failed to join cargo %s to network %s of cluster %s: %w", opts.Name, opts.Network, opts.Cluster, err)
	}
	provisioning.LogCargoJoined(r.observer, "run", opts.Cluster, opts.Network+"/"+opts.Name, false)

	if err := r.client.StartCluster(ctx, opts.Cluster, opts.Namespace); err != nil {
		return fmt.Errorf("failed to start cluster %s: %w", opts.Cluster, err)
	}
	provisioning.LogClusterStarted(r.observer, "run", opts.Cluster)

	return nil
}

// create runs one create call and absorbs a conflict.
func (r *Runner) create(kind, name string, call func() error) error {
	err := call()
	if nanocld.IsConflict(err) {
		provisioning.LogResourceExists(r.observer, "run", kind, name)
	}
	if err := nanocld.IgnoreConflict(err); err != nil {
		return fmt.Errorf("failed to create %s %s: %w", kind, name, err)
	}
	if err == nil {
		provisioning.LogResourceCreated(r.observer, "run", kind, name)
	}
	return nil
}
