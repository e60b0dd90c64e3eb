package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// drive lets the autopilot play r for n ticks.
func drive(r *Run, a *Autopilot, n int) {
	for i := 0; i < n && r.Session.Phase == PhasePlaying; i++ {
		in := a.Decide(r)
		for _, act := range movement {
			if in.Has(act) {
				r.Command(act)
			}
		}
		r.Tick(dt)
	}
}

func TestAutopilotIdleOutsidePlay(t *testing.T) {
	r := NewRun(quietConfig(), 1, BiomeCyberCity)
	assert.True(t, NewAutopilot().Decide(r).Empty())
}

func TestAutopilotChangesLaneTowardCoins(t *testing.T) {
	r := startedRun(quietConfig())
	placeObstacle(r.World, ObstacleBlock, 0, r.Player.Z()-15)
	placeCoin(r.World, core.Vec3{X: 2.5, Y: 1.5, Z: r.Player.Z() - 10})

	in := NewAutopilot().Decide(r)
	assert.True(t, in.Has(core.ActionRight))
	assert.False(t, in.Has(core.ActionLeft))
}

func TestAutopilotDodgesBlock(t *testing.T) {
	r := startedRun(quietConfig())
	placeObstacle(r.World, ObstacleBlock, 0, r.Player.Z()-22)

	drive(r, NewAutopilot(), 600)
	assert.Equal(t, PhasePlaying, r.Session.Phase)
	assert.NotEqual(t, 0, r.Player.CurrentLane)
}

func TestAutopilotJumpsWhenBoxedIn(t *testing.T) {
	r := startedRun(quietConfig())
	for lane := -1; lane <= 1; lane++ {
		placeObstacle(r.World, ObstacleBlock, lane, r.Player.Z()-20)
	}

	drive(r, NewAutopilot(), 600)
	assert.Equal(t, PhasePlaying, r.Session.Phase)
	assert.Positive(t, countEvents(r.Drain(), core.EventLanded))
}

func TestAutopilotSlidesUnderBarriers(t *testing.T) {
	r := startedRun(quietConfig())
	for lane := -1; lane <= 1; lane++ {
		placeObstacle(r.World, ObstacleBarrier, lane, r.Player.Z()-20)
	}

	drive(r, NewAutopilot(), 600)
	assert.Equal(t, PhasePlaying, r.Session.Phase)
	assert.Equal(t, PoseGrounded, r.Player.Pose, "slide ends once the barrier is behind")
}
