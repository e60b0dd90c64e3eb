package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestSimulateDeterministic(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	a, err := Simulate(NewRun(cfg, 99, BiomeCyberCity), NewAutopilot(), dt, 5000)
	require.NoError(t, err)
	b, err := Simulate(NewRun(cfg, 99, BiomeCyberCity), NewAutopilot(), dt, 5000)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Positive(t, a.Distance)
	assert.GreaterOrEqual(t, a.Score, int(a.Distance*10))
	assert.GreaterOrEqual(t, a.Score-int(a.Distance*10), a.Coins*cfg.Pickups.CoinValue)
}

func TestSimulateStopsAtLimit(t *testing.T) {
	rec := &memRecords{}
	r := NewRun(quietConfig(), 1, BiomeCyberCity)
	r.AttachRecords(rec)

	res, err := Simulate(r, NewAutopilot(), dt, 300)
	require.NoError(t, err)
	assert.False(t, res.Crashed)
	assert.Equal(t, 300, res.Ticks)
	assert.Equal(t, 1, res.Events[core.EventRunStarted])
	assert.Equal(t, 1, res.Events[core.EventCrash])
	assert.True(t, res.NewBest)
	assert.Equal(t, res.Score, rec.best)
	assert.Equal(t, PhaseGameOver, r.Session.Phase)
}

func TestSimulateFromWrongPhase(t *testing.T) {
	r := startedRun(quietConfig())
	_, err := Simulate(r, NewAutopilot(), dt, 10)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
