package provisioning

import (
	"context"

	"github.com/nxthat/nanocl/internal/config"
	"github.com/nxthat/nanocl/internal/platform/nanocld"
	"github.com/nxthat/nanocl/internal/util/async"
)

// Context wraps all dependencies and state needed for a reconciliation phase.
type Context struct {
	context.Context
	Config   *config.NamespaceConfig
	Client   nanocld.Client
	State    *State
	Observer Observer

	// StrictProbe makes only a 404 count as absence. Any other lookup
	// failure is returned instead of triggering a create.
	StrictProbe bool

	// Limit caps the number of sibling tasks per fan-out. Zero means unbounded.
	Limit int

	// TraceTasks logs the start and completion of every fan-out task
	// through the observer.
	TraceTasks bool
}

// NewContext creates a new reconciliation context.
func NewContext(
	ctx context.Context,
	cfg *config.NamespaceConfig,
	client nanocld.Client,
	settings *config.Settings,
) *Context {
	if settings == nil {
		settings = config.LoadSettings()
	}
	return &Context{
		Context:     ctx,
		Config:      cfg,
		Client:      client,
		State:       NewState(),
		Observer:    NewConsoleObserver(),
		StrictProbe: settings.StrictProbe,
		Limit:       settings.MaxConcurrency,
		TraceTasks:  settings.TraceTasks,
	}
}

// WithContext returns a shallow copy of c bound to ctx.
// Fan-out tasks use it to carry the group context into nested calls.
func (c *Context) WithContext(ctx context.Context) *Context {
	cp := *c
	cp.Context = ctx
	return &cp
}

// Namespace returns the name of the namespace being reconciled.
func (c *Context) Namespace() string {
	if c.Config == nil {
		return ""
	}
	return c.Config.Name
}

// FanOut returns the options applied to every fan-out of this run.
func (c *Context) FanOut() []async.Option {
	opts := []async.Option{
		async.WithLimit(c.Limit),
	}
	if c.TraceTasks {
		opts = append(opts, async.WithLogging(c.Observer.Printf))
	}
	return opts
}
