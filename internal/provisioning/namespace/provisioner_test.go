package namespace

import (
	"errors"
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
	assert.Equal(t, "namespace", NewProvisioner().Name())
}

func TestProvision_CreatesMissingNamespace(t *testing.T) {
	daemon := testutil.NewFakeDaemon()
	ctx, observer := testutil.NewProvisioningContext(t, testutil.NewNamespaceBuilder("n1").Build(), daemon)

	require.NoError(t, NewProvisioner().Provision(ctx))

	assert.True(t, daemon.HasNamespace("n1"))
	assert.Equal(t, []string{"CreateNamespace(n1)"}, daemon.Writes())
	assert.Len(t, observer.EventsOf(provisioning.EventResourceCreated), 1)
}

func TestProvision_ExistingNamespaceIsUntouched(t *testing.T) {
	daemon := testutil.NewFakeDaemon().WithNamespace("n1")
	ctx, observer := testutil.NewProvisioningContext(t, testutil.NewNamespaceBuilder("n1").Build(), daemon)

	require.NoError(t, NewProvisioner().Provision(ctx))

	assert.Empty(t, daemon.Writes())
	assert.Len(t, observer.EventsOf(provisioning.EventResourceExists), 1)
}

func TestProvision_CreateFailure(t *testing.T) {
	client := &testutil.MockClient{}
	client.On("InspectNamespace", mock.Anything, "n1").
		Return(nil, &nanocld.APIError{Operation: "inspect_namespace", Status: http.StatusNotFound})
	client.On("CreateNamespace", mock.Anything, "n1").
		Return(&nanocld.APIError{Operation: "create_namespace", Status: http.StatusInternalServerError, Message: "boom"})
	ctx, _ := testutil.NewProvisioningContext(t, testutil.NewNamespaceBuilder("n1").Build(), client)

	err := NewProvisioner().Provision(ctx)

	require.Error(t, err)
	assert.Equal(t, "failed to create namespace n1: nanocld: create_namespace: status 500: boom", err.Error())
	client.AssertExpectations(t)
}

func TestProvision_LegacyProbeTreatsAnyErrorAsAbsent(t *testing.T) {
	client := &testutil.MockClient{}
	client.On("InspectNamespace", mock.Anything, "n1").
		Return(nil, &nanocld.TransportError{Operation: "inspect_namespace", Err: errors.New("refused")})
	client.On("CreateNamespace", mock.Anything, "n1").Return(nil)
	ctx, _ := testutil.NewProvisioningContext(t, testutil.NewNamespaceBuilder("n1").Build(), client)

	require.NoError(t, NewProvisioner().Provision(ctx))
	client.AssertExpectations(t)
}

func TestProvision_StrictProbeFailsOnTransportError(t *testing.T) {
	client := &testutil.MockClient{}
	client.On("InspectNamespace", mock.Anything, "n1").
		Return(nil, &nanocld.TransportError{Operation: "inspect_namespace", Err: errors.New("refused")})
	ctx, _ := testutil.NewProvisioningContext(t, testutil.NewNamespaceBuilder("n1").Build(), client)
	ctx.StrictProbe = true

	err := NewProvisioner().Provision(ctx)

	require.Error(t, err)
	assert.True(t, nanocld.IsTransport(err))
	client.AssertNotCalled(t, "CreateNamespace", mock.Anything, mock.Anything)
}
