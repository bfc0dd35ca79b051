package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxthat/nanocl/internal/config"
	"github.com/nxthat/nanocl/internal/orchestration"
	"github.com/nxthat/nanocl/internal/platform/nanocld"
	"github.com/nxthat/nanocl/internal/provisioning"
	testutil "github.com/nxthat/nanocl/internal/testing"
)

type stubRunner struct {
	got *orchestration.RunOptions
	err error
}

func (s *stubRunner) Run(_ context.Context, opts orchestration.RunOptions) error {
	s.got = &opts
	return s.err
}

func validRunOptions() orchestration.RunOptions {
	return orchestration.RunOptions{
		Name:      "w1",
		Image:     "nginx",
		Cluster:   "c1",
		Network:   "net1",
		Namespace: "global",
	}
}

func TestRun_InvalidOptionsSkipClient(t *testing.T) {
	saveAndRestoreFactories(t)
	newClient = func(_ *config.Settings, _ provisioning.Observer) (nanocld.Client, error) {
		t.Fatal("client must not be created for invalid options")
		return nil, nil
	}

	err := Run(context.Background(), GlobalOptions{}, orchestration.RunOptions{Name: "w1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "image is required")
}

func TestRun_DelegatesToRunner(t *testing.T) {
	saveAndRestoreFactories(t)
	newClient = func(_ *config.Settings, _ provisioning.Observer) (nanocld.Client, error) {
		return testutil.NewFakeDaemon(), nil
	}
	runner := &stubRunner{}
	newRunner = func(_ nanocld.Client, _ provisioning.Observer) Runner {
		return runner
	}

	require.NoError(t, Run(context.Background(), GlobalOptions{}, validRunOptions()))
	require.NotNil(t, runner.got)
	assert.Equal(t, validRunOptions(), *runner.got)
}

func TestRun_ReturnsRunnerError(t *testing.T) {
	saveAndRestoreFactories(t)
	newClient = func(_ *config.Settings, _ provisioning.Observer) (nanocld.Client, error) {
		return testutil.NewFakeDaemon(), nil
	}
	newRunner = func(_ nanocld.Client, _ provisioning.Observer) Runner {
		return &stubRunner{err: errors.New("failed to start cluster c1: boom")}
	}

	err := Run(context.Background(), GlobalOptions{}, validRunOptions())
	require.Error(t, err)
	assert.Equal(t, "failed to start cluster c1: boom", err.Error())
}

func TestRun_AgainstFakeDaemon(t *testing.T) {
	saveAndRestoreFactories(t)
	daemon := testutil.NewFakeDaemon().WithImage("nginx")
	newClient = func(_ *config.Settings, _ provisioning.Observer) (nanocld.Client, error) {
		return daemon, nil
	}

	require.NoError(t, Run(testutil.TestContext(t), GlobalOptions{}, validRunOptions()))
	assert.True(t, daemon.Joined("global", "c1", "net1", "w1"))
	assert.Equal(t, 1, daemon.StartCount("global", "c1"))
}
