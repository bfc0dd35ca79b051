package testing

import (
	"context"
	"testing"
	"time"

	"github.com/nxthat/nanocl/internal/config"
	"github.com/nxthat/nanocl/internal/platform/nanocld"
	"github.com/nxthat/nanocl/internal/provisioning"
)

// TestContext returns a context with a reasonable timeout for tests.
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// NewProvisioningContext builds a reconciliation context over client with a
// recording observer and default settings.
func NewProvisioningContext(t *testing.T, cfg *config.NamespaceConfig, client nanocld.Client) (*provisioning.Context, *RecordingObserver) {
	t.Helper()
	observer := NewRecordingObserver()
	ctx := provisioning.NewContext(TestContext(t), cfg, client, &config.Settings{})
	ctx.Observer = observer
	return ctx, observer
}
