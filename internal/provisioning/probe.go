package provisioning

import (
	"fmt"

	"github.com/nxthat/nanocl/internal/platform/nanocld"
)

// Probe looks up the live state of one entity.
//
// It reports found=false when the entity is absent. In the default mode any
// lookup failure counts as absence, so a transient daemon error leads to a
// create attempt. With strict set only a 404 means absence and every other
// failure is returned.
func Probe[T any](ctx *Context, lookup func(*Context) (T, error)) (T, bool, error) {
	var zero T

	live, err := lookup(ctx)
	if err == nil {
		return live, true, nil
	}

	if !ctx.StrictProbe || nanocld.IsNotFound(err) {
		return zero, false, nil
	}
	return zero, false, fmt.Errorf("failed to inspect: %w", err)
}
