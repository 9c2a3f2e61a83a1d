package campaign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStateLogsAreTimestamped(t *testing.T) {
	state := NewRunState()
	state.now = func() time.Time {
		return time.Date(2026, 8, 30, 9, 15, 42, 0, time.UTC)
	}
	state.Logf("fetching page %d", 1)

	snap := state.Snapshot()
	require.Len(t, snap.Logs, 1)
	assert.Equal(t, "[09:15:42] fetching page 1", snap.Logs[0])
}

func TestRunStatePhaseIsOneWay(t *testing.T) {
	state := NewRunState()
	assert.Equal(t, PhaseIdle, state.Snapshot().Phase)

	state.SetPhase(PhaseFetching)
	state.SetPhase(PhaseSending)
	state.SetPhase(PhaseDone)
	assert.Equal(t, PhaseDone, state.Snapshot().Phase)

	// Terminal phases stick.
	state.SetPhase(PhaseFetching)
	assert.Equal(t, PhaseDone, state.Snapshot().Phase)
}

func TestRunStateSnapshotIsACopy(t *testing.T) {
	state := NewRunState()
	state.Logf("first")
	snap := state.Snapshot()
	state.Logf("second")

	assert.Len(t, snap.Logs, 1)
	assert.Len(t, state.Snapshot().Logs, 2)
}

func TestPhasePredicates(t *testing.T) {
	assert.True(t, PhaseDone.Terminal())
	assert.True(t, PhaseFailed.Terminal())
	assert.False(t, PhaseSending.Terminal())

	assert.True(t, PhaseFetching.Active())
	assert.True(t, PhaseGeneratingExport.Active())
	assert.True(t, PhaseSending.Active())
	assert.False(t, PhaseIdle.Active())
	assert.False(t, PhaseDone.Active())
}
