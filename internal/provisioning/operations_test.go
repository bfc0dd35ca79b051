package provisioning

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxthat/nanocl/internal/platform/nanocld"
)

type ensureFixture struct {
	live    *nanocld.ClusterNetwork
	getErr  error
	created []nanocld.ClusterNetworkPartial
	createE error
	exists  int
}

func (f *ensureFixture) op() *EnsureOperation[*nanocld.ClusterNetwork, nanocld.ClusterNetworkPartial] {
	return &EnsureOperation[*nanocld.ClusterNetwork, nanocld.ClusterNetworkPartial]{
		Phase: "clusters",
		Kind:  "network",
		Name:  "c1/net1",
		Get: func(*Context) (*nanocld.ClusterNetwork, error) {
			return f.live, f.getErr
		},
		Create: func(_ *Context, opts nanocld.ClusterNetworkPartial) error {
			f.created = append(f.created, opts)
			return f.createE
		},
		CreateOptsMapper: func() nanocld.ClusterNetworkPartial {
			return nanocld.ClusterNetworkPartial{Name: "net1"}
		},
		OnExists: func(*Context, *nanocld.ClusterNetwork) error {
			f.exists++
			return nil
		},
	}
}

func TestEnsureOperation_CreatesWhenAbsent(t *testing.T) {
	f := &ensureFixture{getErr: &nanocld.APIError{Status: http.StatusNotFound}}
	observer := NewMockObserver()
	ctx := newTestContext(observer)

	require.NoError(t, f.op().Execute(ctx))

	assert.Equal(t, []nanocld.ClusterNetworkPartial{{Name: "net1"}}, f.created)
	assert.Zero(t, f.exists)
	assert.Equal(t, []EventType{EventResourceCreating, EventResourceCreated}, observer.eventTypes())
	assert.Equal(t, []Result{{Kind: "network", Name: "c1/net1", Action: ActionCreated}}, ctx.State.Results())
}

func TestEnsureOperation_ExistingIsLeftToOnExists(t *testing.T) {
	f := &ensureFixture{live: &nanocld.ClusterNetwork{Name: "net1"}}
	observer := NewMockObserver()
	ctx := newTestContext(observer)

	require.NoError(t, f.op().Execute(ctx))

	assert.Empty(t, f.created)
	assert.Equal(t, 1, f.exists)
	assert.Equal(t, []EventType{EventResourceExists}, observer.eventTypes())
	assert.Equal(t, 1, ctx.State.Count(ActionExists))
}

func TestEnsureOperation_CreateError(t *testing.T) {
	f := &ensureFixture{
		getErr:  &nanocld.APIError{Status: http.StatusNotFound},
		createE: &nanocld.APIError{Operation: "create_cluster_network", Status: http.StatusInternalServerError, Message: "db down"},
	}
	ctx := newTestContext(NewMockObserver())

	err := f.op().Execute(ctx)

	require.Error(t, err)
	assert.Equal(t, "failed to create network c1/net1: nanocld: create_cluster_network: status 500: db down", err.Error())
	assert.Empty(t, ctx.State.Results())
}

func TestEnsureOperation_StrictProbeError(t *testing.T) {
	f := &ensureFixture{getErr: &nanocld.TransportError{Operation: "inspect_cluster_network", Err: errors.New("refused")}}
	ctx := newTestContext(NewMockObserver())
	ctx.StrictProbe = true

	err := f.op().Execute(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get network c1/net1")
	assert.Empty(t, f.created)
}
