package runner

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/core"
)

const dt = 1.0 / 60

func TestRunCrashOnBlock(t *testing.T) {
	r := startedRun(quietConfig())
	placeObstacle(r.World, ObstacleBlock, 0, r.Player.Z())

	r.Tick(dt)
	assert.Equal(t, PhaseGameOver, r.Session.Phase)

	r.Tick(dt)
	r.Tick(dt)
	assert.Equal(t, 1, countEvents(r.Drain(), core.EventCrash), "a crash is reported once")
	assert.Equal(t, 1, r.Session.Ticks, "ticks after game over are no-ops")
}

func TestRunSlideUnderBarrier(t *testing.T) {
	r := startedRun(quietConfig())
	placeObstacle(r.World, ObstacleBarrier, 0, r.Player.Z())
	r.Command(core.ActionSlideStart)

	for i := 0; i < 40; i++ {
		r.Tick(dt)
	}
	assert.Equal(t, PhasePlaying, r.Session.Phase)
	assert.Zero(t, countEvents(r.Drain(), core.EventCrash))
}

func TestRunBarrierWhileStanding(t *testing.T) {
	r := startedRun(quietConfig())
	placeObstacle(r.World, ObstacleBarrier, 0, r.Player.Z())

	r.Tick(dt)
	assert.Equal(t, PhaseGameOver, r.Session.Phase)
	assert.Equal(t, 1, countEvents(r.Drain(), core.EventCrash))
}

func TestRunLaneChangeAvoidsBlock(t *testing.T) {
	r := startedRun(quietConfig())
	placeObstacle(r.World, ObstacleBlock, 0, r.Player.Z()-12)
	r.Command(core.ActionRight)

	for i := 0; i < 400; i++ {
		r.Tick(dt)
	}
	assert.Equal(t, PhasePlaying, r.Session.Phase)
	assert.Equal(t, 1, r.Player.CurrentLane)
}

func TestRunShieldAbsorbsUntilExpiry(t *testing.T) {
	cfg := quietConfig()
	cfg.Powerups.Duration = 1
	r := startedRun(cfg)
	r.Powerups.Activate(PowerupShield)
	placeObstacle(r.World, ObstacleBlock, 0, r.Player.Z())

	for i := 0; i < 4; i++ {
		r.Tick(0.25)
		require.Equal(t, PhasePlaying, r.Session.Phase, "tick %d", i)
	}
	events := r.Drain()
	assert.Equal(t, 1, countEvents(events, core.EventShieldBlocked))
	assert.Equal(t, 1, countEvents(events, core.EventPowerupExpired))
	assert.False(t, r.Powerups.Shielded())

	r.Tick(0.25)
	assert.Equal(t, PhaseGameOver, r.Session.Phase)
}

func TestRunCoinPickup(t *testing.T) {
	r := startedRun(quietConfig())
	placeCoin(r.World, r.Player.Center())

	r.Tick(dt)
	events := r.Drain()
	require.Equal(t, 1, countEvents(events, core.EventCoinCollected))
	assert.Equal(t, 1, r.Session.Coins)
	assert.Equal(t, 50, r.Score())
	assert.Empty(t, r.World.Coins())

	r.Tick(dt)
	assert.Zero(t, countEvents(r.Drain(), core.EventCoinCollected), "a coin is collected once")
}

func TestRunMultiplierDoublesCoins(t *testing.T) {
	r := startedRun(quietConfig())
	r.Powerups.Activate(PowerupMultiplier)
	placeCoin(r.World, r.Player.Center())

	r.Tick(dt)
	var got []core.Event
	for _, ev := range r.Drain() {
		if ev.Kind == core.EventCoinCollected {
			got = append(got, ev)
		}
	}
	require.Len(t, got, 1)
	assert.Equal(t, 100, got[0].Value)
	assert.Equal(t, 100, r.Score())
}

func TestRunScoreUsesActiveMultiplier(t *testing.T) {
	cfg := quietConfig()
	cfg.Powerups.Duration = 1
	cfg.Powerups.Multiplier = 2
	r := startedRun(cfg)
	placeCoin(r.World, r.Player.Center())
	placeCoin(r.World, r.Player.Center())

	r.Tick(dt)
	require.Equal(t, 2, r.Session.Coins)
	distPart := int(math.Floor(r.Session.Distance * 10))
	assert.Equal(t, distPart+100, r.Score())

	// coins picked up before the multiplier still count double while it runs
	r.Powerups.Activate(PowerupMultiplier)
	assert.Equal(t, distPart+200, r.Score())

	for i := 0; i < 4; i++ {
		r.Tick(0.25)
	}
	require.Equal(t, 1, r.Powerups.Multiplier())
	assert.Equal(t, int(math.Floor(r.Session.Distance*10))+100, r.Score())
}

func TestRunMagnetPullsCoins(t *testing.T) {
	r := startedRun(quietConfig())
	c := r.Player.Center()
	c.Z -= 5
	placeCoin(r.World, c)

	plain := startedRun(quietConfig())
	placeCoin(plain.World, c)

	r.Powerups.Activate(PowerupMagnet)
	r.Tick(dt)
	plain.Tick(dt)

	require.Len(t, r.World.Coins(), 1)
	require.Len(t, plain.World.Coins(), 1)
	assert.InDelta(t, c.Z+0.08+0.2, r.World.Coins()[0].Pos.Z, 1e-6)
	assert.InDelta(t, c.Z+0.08, plain.World.Coins()[0].Pos.Z, 1e-6)
}

func TestRunPowerupPickupReplaces(t *testing.T) {
	r := startedRun(quietConfig())
	r.Powerups.Activate(PowerupShield)
	placePowerup(r.World, PowerupMagnet, r.Player.Center())

	r.Tick(dt)
	events := r.Drain()

	var kinds []core.EventKind
	for _, ev := range events {
		if ev.Kind == core.EventPowerupExpired || ev.Kind == core.EventPowerupActivated {
			kinds = append(kinds, ev.Kind)
		}
	}
	assert.Equal(t, []core.EventKind{core.EventPowerupExpired, core.EventPowerupActivated}, kinds)
	assert.False(t, r.Powerups.Shielded())
	assert.True(t, r.Powerups.Magnet())
}

func TestRunSpeedRampsAndCaps(t *testing.T) {
	cfg := quietConfig()
	cfg.Speed.Increment = 0.01
	r := startedRun(cfg)

	prev := 0.0
	for i := 0; i < 2000; i++ {
		r.Tick(dt)
		require.GreaterOrEqual(t, r.Session.Speed, prev)
		require.LessOrEqual(t, r.Session.Speed, cfg.Speed.Max)
		prev = r.Session.Speed
	}
	assert.Equal(t, cfg.Speed.Max, r.Session.Speed)
	assert.Equal(t, int(r.Session.Distance*10), r.Score())
}

func TestRunSpeedPercentScalesDistance(t *testing.T) {
	cfg := quietConfig()
	cfg.Speed.Percent = 200
	r := startedRun(cfg)

	r.Tick(dt)
	assert.InDelta(t, 2*cfg.Speed.Base, r.Session.Distance, 1e-12)
}

func TestRunPausedTickIsNoop(t *testing.T) {
	r := startedRun(quietConfig())
	r.Tick(dt)
	require.NoError(t, r.Pause())

	before := r.Session
	r.Command(core.ActionRight)
	r.Tick(dt)
	assert.Equal(t, before, r.Session)
	assert.Equal(t, 0, r.Player.TargetLane)

	require.NoError(t, r.Resume())
	r.Tick(dt)
	assert.Equal(t, 2, r.Session.Ticks)
}

func TestRunBestScoreRecords(t *testing.T) {
	rec := &memRecords{}
	r := startedRun(quietConfig())
	r.AttachRecords(rec)

	placeCoin(r.World, r.Player.Center())
	r.Tick(dt)
	placeObstacle(r.World, ObstacleBlock, 0, r.Player.Z())
	r.Tick(dt)
	require.Equal(t, PhaseGameOver, r.Session.Phase)

	first := r.Score()
	assert.Positive(t, first)
	assert.Equal(t, 1, countEvents(r.Drain(), core.EventNewBest))
	assert.Equal(t, first, rec.best)
	assert.Equal(t, 1, rec.bestSets)
	assert.Equal(t, 1, rec.coins)

	require.NoError(t, r.Restart())
	placeObstacle(r.World, ObstacleBlock, 0, r.Player.Z())
	r.Tick(dt)
	require.Equal(t, PhaseGameOver, r.Session.Phase)

	assert.Less(t, r.Score(), first)
	assert.Zero(t, countEvents(r.Drain(), core.EventNewBest))
	assert.Equal(t, first, rec.best, "lower score leaves the best alone")
	assert.Equal(t, 1, rec.bestSets)
	assert.Equal(t, first, r.Session.Best)
}

func TestRunLoadsStoredBest(t *testing.T) {
	r := NewRun(quietConfig(), 1, BiomeCyberCity)
	r.AttachRecords(&memRecords{best: 4200})
	assert.Equal(t, 4200, r.Session.Best)
}

func TestRunApply(t *testing.T) {
	r := NewRun(quietConfig(), 1, BiomeCyberCity)

	err := r.Apply(TransitionCrash)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, PhaseMenu, r.Session.Phase)

	require.NoError(t, r.Apply(TransitionStart))
	assert.Equal(t, 1, countEvents(r.Drain(), core.EventRunStarted))

	require.NoError(t, r.Apply(TransitionCrash))
	assert.Equal(t, PhaseGameOver, r.Session.Phase)
	assert.Equal(t, 1, countEvents(r.Drain(), core.EventCrash))

	require.NoError(t, r.Apply(TransitionExit))
	assert.Equal(t, PhaseMenu, r.Session.Phase)
}
