package join

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nxthat/nanocl/internal/platform/nanocld"
	"github.com/nxthat/nanocl/internal/provisioning"
	testutil "github.com/nxthat/nanocl/internal/testing"
)

func TestProvisioner_Name(t *testing.T) {
	assert.Equal(t, "joins", NewProvisioner().Name())
}

func joinedDaemon() *testutil.FakeDaemon {
	return testutil.NewFakeDaemon().
		WithNamespace("n1").
		WithCluster("n1", "c1").
		WithNetwork("n1", "c1", "net1").
		WithCargo("n1", "w1", "nginx").
		WithCargo("n1", "w2", "redis")
}

func TestProvision_JoinsThenStarts(t *testing.T) {
	cfg := testutil.NewNamespaceBuilder("n1").
		WithCluster(testutil.Cluster("c1").WithJoin("net1", "w1").WithJoin("net1", "w2").WithAutoStart(true)).
		Build()
	daemon := joinedDaemon()
	ctx, observer := testutil.NewProvisioningContext(t, cfg, daemon)

	require.NoError(t, NewProvisioner().Provision(ctx))

	writes := daemon.Writes()
	require.Len(t, writes, 3)
	assert.ElementsMatch(t, []string{"JoinClusterCargo(c1/net1/w1)", "JoinClusterCargo(c1/net1/w2)"}, writes[:2])
	assert.Equal(t, "StartCluster(c1)", writes[2])
	assert.True(t, daemon.Joined("n1", "c1", "net1", "w1"))
	assert.Equal(t, 1, daemon.StartCount("n1", "c1"))
	assert.Len(t, observer.EventsOf(provisioning.EventResourceStarted), 1)
}

func TestProvision_ConflictIsSuccess(t *testing.T) {
	cfg := testutil.NewNamespaceBuilder("n1").
		WithCluster(testutil.Cluster("c1").WithJoin("net1", "w1")).
		Build()
	daemon := joinedDaemon().WithJoin("n1", "c1", "net1", "w1")
	ctx, observer := testutil.NewProvisioningContext(t, cfg, daemon)

	require.NoError(t, NewProvisioner().Provision(ctx))

	joined := observer.EventsOf(provisioning.EventResourceJoined)
	require.Len(t, joined, 1)
	assert.Equal(t, "cargo net1/w1 already joined", joined[0].Message)
	assert.Equal(t, 1, ctx.State.Count(provisioning.ActionExists))
}

func TestProvision_OtherJoinErrorsAreFatal(t *testing.T) {
	cfg := testutil.NewNamespaceBuilder("n1").
		WithCluster(testutil.Cluster("c1").WithJoin("net1", "missing").WithAutoStart(true)).
		Build()
	daemon := joinedDaemon()
	ctx, _ := testutil.NewProvisioningContext(t, cfg, daemon)

	err := NewProvisioner().Provision(ctx)

	require.Error(t, err)
	assert.True(t, nanocld.IsNotFound(err))
	assert.Contains(t, err.Error(), "failed to reconcile cluster c1: failed to reconcile join net1/missing")
	assert.Zero(t, daemon.StartCount("n1", "c1"), "a cluster with a failed join is not started")
}

func TestProvision_AutoStartAbsentOrFalseSkips(t *testing.T) {
	cfg := testutil.NewNamespaceBuilder("n1").
		WithCluster(testutil.Cluster("c1")).
		WithCluster(testutil.Cluster("c2").WithAutoStart(false)).
		Build()
	daemon := joinedDaemon().WithCluster("n1", "c2")
	ctx, observer := testutil.NewProvisioningContext(t, cfg, daemon)

	require.NoError(t, NewProvisioner().Provision(ctx))

	assert.Empty(t, daemon.Writes())
	assert.Len(t, observer.EventsOf(provisioning.EventResourceSkipped), 2)
}

func TestProvision_StartFailure(t *testing.T) {
	client := &testutil.MockClient{}
	client.On("StartCluster", mock.Anything, "c1", "n1").
		Return(&nanocld.APIError{Operation: "start_cluster", Status: http.StatusInternalServerError, Message: "no node"})
	cfg := testutil.NewNamespaceBuilder("n1").
		WithCluster(testutil.Cluster("c1").WithAutoStart(true)).
		Build()
	ctx, _ := testutil.NewProvisioningContext(t, cfg, client)

	err := NewProvisioner().Provision(ctx)

	require.Error(t, err)
	assert.Equal(t, "failed to reconcile cluster c1: failed to start cluster c1: nanocld: start_cluster: status 500: no node", err.Error())
	client.AssertExpectations(t)
}

func TestProvision_JoinPayload(t *testing.T) {
	client := &testutil.MockClient{}
	client.On("JoinClusterCargo", mock.Anything, "c1", nanocld.ClusterJoinPartial{Network: "net1", Cargo: "w1"}, "n1").
		Return(&nanocld.APIError{Operation: "join_cluster_cargo", Status: http.StatusConflict})
	cfg := testutil.NewNamespaceBuilder("n1").
		WithCluster(testutil.Cluster("c1").WithJoin("net1", "w1")).
		Build()
	ctx, _ := testutil.NewProvisioningContext(t, cfg, client)

	require.NoError(t, NewProvisioner().Provision(ctx))
	client.AssertExpectations(t)
}
