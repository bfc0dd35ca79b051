package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/nxthat/nanocl/internal/config"
	"github.com/nxthat/nanocl/internal/metrics"
	"github.com/nxthat/nanocl/internal/orchestration"
	"github.com/nxthat/nanocl/internal/platform/nanocld"
	"github.com/nxthat/nanocl/internal/provisioning"
)

// Reconciler interface for testing - matches orchestration.Reconciler.
type Reconciler interface {
	Reconcile(ctx context.Context) (*provisioning.State, error)
}

// ApplyOptions holds the flags of the apply command.
type ApplyOptions struct {
	File            string
	MetricsTextfile string
	Print           bool
}

var (
	// loadConfigFile loads the document from file (for testing injection).
	loadConfigFile = config.LoadFile

	// newReconciler creates a new namespace reconciler.
	newReconciler = func(client nanocld.Client, cfg *config.NamespaceConfig, observer provisioning.Observer, settings *config.Settings) Reconciler {
		return orchestration.NewReconciler(client, cfg,
			orchestration.WithObserver(observer),
			orchestration.WithSettings(settings),
		)
	}

	// writeTextfile writes the metrics registry in textfile collector format.
	writeTextfile = metrics.WriteTextfile
)

// Apply converges the daemon to the namespace document at opts.File.
//
// The workflow is:
//  1. Load and validate the document
//  2. With --print, render the payloads and stop without contacting the daemon
//  3. Create the daemon client from environment settings and flags
//  4. Run the namespace, cluster, cargo and join phases
//  5. Print a summary and, when requested, write the metrics textfile
//
// A failed run still writes metrics so the textfile records what happened.
func Apply(ctx context.Context, globals GlobalOptions, opts ApplyOptions) error {
	if opts.File == "" {
		return errors.New("no config file given, use --file <path>")
	}

	cfg, err := loadConfigFile(opts.File)
	if err != nil {
		return err
	}

	if opts.Print {
		return printPlan(cfg)
	}

	settings, observer, client, err := connect(globals)
	if err != nil {
		return err
	}

	reconciler := newReconciler(client, cfg, observer, settings)
	state, reconcileErr := reconciler.Reconcile(ctx)

	if state != nil {
		fmt.Fprint(stdout, renderSummary(cfg.Name, state, isTerminal()))
	}

	if opts.MetricsTextfile != "" {
		if err := writeTextfile(opts.MetricsTextfile); err != nil {
			return errors.Join(reconcileErr, fmt.Errorf("failed to write metrics: %w", err))
		}
	}

	return reconcileErr
}

func printPlan(cfg *config.NamespaceConfig) error {
	out, err := renderPlan(cfg)
	if err != nil {
		return fmt.Errorf("failed to render payloads: %w", err)
	}
	_, err = stdout.Write(out)
	return err
}
