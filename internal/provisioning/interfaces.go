package provisioning

// Logger is implemented by anything that can print progress lines.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Phase defines the interface for a reconciliation phase.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Provision executes the reconciliation logic for this phase.
	Provision(ctx *Context) error
}
