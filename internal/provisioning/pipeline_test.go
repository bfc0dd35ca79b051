package provisioning

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phaseFunc(name string, fn func(*Context) error) Phase {
	return PhaseFunc{PhaseName: name, Func: fn}
}

func TestRunPhases_Success(t *testing.T) {
	t.Parallel()
	var executed []string
	ctx := newTestContext(NewMockObserver())

	err := RunPhases(ctx, []Phase{
		phaseFunc("namespace", func(*Context) error { executed = append(executed, "namespace"); return nil }),
		phaseFunc("clusters", func(*Context) error { executed = append(executed, "clusters"); return nil }),
		phaseFunc("cargoes", func(*Context) error { executed = append(executed, "cargoes"); return nil }),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"namespace", "clusters", "cargoes"}, executed)
}

func TestRunPhases_StopsOnError(t *testing.T) {
	t.Parallel()
	var executed []string
	observer := NewMockObserver()
	ctx := newTestContext(observer)
	boom := errors.New("boom")

	err := RunPhases(ctx, []Phase{
		phaseFunc("namespace", func(*Context) error { executed = append(executed, "namespace"); return nil }),
		phaseFunc("clusters", func(*Context) error { executed = append(executed, "clusters"); return boom }),
		phaseFunc("cargoes", func(*Context) error { executed = append(executed, "cargoes"); return nil }),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "clusters phase failed: boom", err.Error())
	assert.Equal(t, []string{"namespace", "clusters"}, executed)
	assert.Equal(t, []EventType{
		EventPhaseStarted, EventPhaseCompleted,
		EventPhaseStarted, EventPhaseFailed,
	}, observer.eventTypes())
}

func TestRunPhases_Empty(t *testing.T) {
	t.Parallel()
	ctx := newTestContext(NewMockObserver())

	assert.NoError(t, RunPhases(ctx, nil))
}
