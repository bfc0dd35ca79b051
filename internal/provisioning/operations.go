package provisioning

import (
	"fmt"
)

// EnsureOperation encapsulates get-or-create logic for any daemon entity.
// An existing entity is never modified by the operation itself; OnExists may
// add missing sub resources.
//
// Usage example:
//
//	err := (&EnsureOperation[*nanocld.ClusterNetwork, nanocld.ClusterNetworkPartial]{
//	    Phase:        "clusters",
//	    Kind:         "network",
//	    Name:         cluster + "/" + network.Name,
//	    Get:          func(ctx *Context) (*nanocld.ClusterNetwork, error) { ... },
//	    Create:       func(ctx *Context, opts nanocld.ClusterNetworkPartial) error { ... },
//	    CreateOptsMapper: network.Partial,
//	}).Execute(ctx)
type EnsureOperation[T any, CreateOpts any] struct {
	Phase string
	Kind  string
	Name  string

	// Get retrieves the live entity. Its error is interpreted by Probe.
	Get func(ctx *Context) (T, error)

	// Create creates the entity with the given payload
	Create func(ctx *Context, opts CreateOpts) error

	// CreateOptsMapper maps the declaration to the create payload
	CreateOptsMapper func() CreateOpts

	// OnExists reconciles an existing entity (optional)
	OnExists func(ctx *Context, live T) error
}

// Execute performs the ensure operation: probe the entity, then create it
// or hand the live entity to OnExists.
func (op *EnsureOperation[T, CreateOpts]) Execute(ctx *Context) error {
	live, found, err := Probe(ctx, op.Get)
	if err != nil {
		return fmt.Errorf("failed to get %s %s: %w", op.Kind, op.Name, err)
	}

	if found {
		LogResourceExists(ctx.Observer, op.Phase, op.Kind, op.Name)
		ctx.State.Record(op.Kind, op.Name, ActionExists)
		if op.OnExists != nil {
			return op.OnExists(ctx, live)
		}
		return nil
	}

	LogResourceCreating(ctx.Observer, op.Phase, op.Kind, op.Name)
	if err := op.Create(ctx, op.CreateOptsMapper()); err != nil {
		LogResourceFailed(ctx.Observer, op.Phase, op.Kind, op.Name, err)
		return fmt.Errorf("failed to create %s %s: %w", op.Kind, op.Name, err)
	}
	LogResourceCreated(ctx.Observer, op.Phase, op.Kind, op.Name)
	ctx.State.Record(op.Kind, op.Name, ActionCreated)

	return nil
}
