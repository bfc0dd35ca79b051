package handlers

import (
	"context"

	"github.com/nxthat/nanocl/internal/orchestration"
	"github.com/nxthat/nanocl/internal/platform/nanocld"
	"github.com/nxthat/nanocl/internal/provisioning"
)

// Runner interface for testing - matches orchestration.Runner.
type Runner interface {
	Run(ctx context.Context, opts orchestration.RunOptions) error
}

// newRunner creates the run command workflow.
var newRunner = func(client nanocld.Client, observer provisioning.Observer) Runner {
	return orchestration.NewRunner(client, observer)
}

// Run pulls the image if needed and starts a single cargo in a cluster
// network, creating whatever is missing on the way.
func Run(ctx context.Context, globals GlobalOptions, opts orchestration.RunOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	_, observer, client, err := connect(globals)
	if err != nil {
		return err
	}

	return newRunner(client, observer).Run(ctx, opts)
}
