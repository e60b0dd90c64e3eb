package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Autopilot plays a run on its own for the headless simulator. It dodges
// most obstacles but does not plan around every layout.
type Autopilot struct {
	Lookahead  float64 // how far ahead obstacles are considered
	ShiftTicks float64 // ticks a lane change needs to clear an obstacle
	JumpTicks  float64 // ticks from takeoff until the jump clears
}

// NewAutopilot returns an autopilot tuned for the default physics.
func NewAutopilot() *Autopilot {
	return &Autopilot{Lookahead: 30, ShiftTicks: 6, JumpTicks: 10}
}

// threat is the nearest obstacle ahead in a lane.
type threat struct {
	obstacle *Obstacle
	gap      float64 // distance left before the boxes touch
}

// Decide returns the actions to send this tick.
func (a *Autopilot) Decide(r *Run) core.InputFrame {
	in := core.NewInputFrame()
	if r.Session.Phase != PhasePlaying {
		return in
	}

	p := r.Player
	advance := r.diff.Advance(r.Session.Distance)
	threats := a.scan(r)
	here := threats[p.TargetLane+1]

	if p.Sliding() && (here.obstacle == nil || !here.obstacle.Kind.NeedsSlide() || here.gap > advance*a.ShiftTicks) {
		in.Set(core.ActionSlideEnd)
	}
	if here.obstacle == nil {
		return in
	}

	if here.gap > advance*a.ShiftTicks {
		if lane, ok := a.escape(r, threats, here.gap); ok {
			if lane < p.TargetLane {
				in.Set(core.ActionLeft)
			} else {
				in.Set(core.ActionRight)
			}
			return in
		}
	}

	switch {
	case here.obstacle.Kind.NeedsSlide():
		if here.gap <= advance*a.ShiftTicks && !p.Airborne() {
			in.Set(core.ActionSlideStart)
		}
	case here.gap <= advance*a.JumpTicks:
		in.Set(core.ActionJump)
	}
	return in
}

// scan finds the nearest obstacle ahead in each lane, indexed lane+1.
func (a *Autopilot) scan(r *Run) [3]threat {
	var out [3]threat
	p := r.Player
	obstacles := r.World.Obstacles()
	for i := range obstacles {
		o := &obstacles[i]
		reach := (o.Size.Z + p.Depth()) / 2
		gap := (p.Z() - o.Pos.Z) - reach
		if gap < -2*reach || gap > a.Lookahead {
			continue
		}
		t := &out[o.Lane+1]
		if t.obstacle == nil || gap < t.gap {
			*t = threat{obstacle: o, gap: gap}
		}
	}
	return out
}

// escape picks an adjacent lane that is clear further than gap, preferring
// one with coins.
func (a *Autopilot) escape(r *Run, threats [3]threat, gap float64) (int, bool) {
	cur := r.Player.TargetLane
	best, found, bestCoins := 0, false, -1
	for _, lane := range []int{cur - 1, cur + 1} {
		if lane < -1 || lane > 1 {
			continue
		}
		t := threats[lane+1]
		if t.obstacle != nil && t.gap < gap+a.Lookahead/3 {
			continue
		}
		coins := a.coinsInLane(r, lane)
		if coins > bestCoins {
			best, found, bestCoins = lane, true, coins
		}
	}
	return best, found
}

func (a *Autopilot) coinsInLane(r *Run, lane int) int {
	lw := r.cfg.Track.LaneWidth
	pz := r.Player.Z()
	n := 0
	for _, c := range r.World.Coins() {
		ahead := pz - c.Pos.Z
		if ahead > 0 && ahead < a.Lookahead && core.Clamp(int(math.Round(c.Pos.X/lw)), -1, 1) == lane {
			n++
		}
	}
	return n
}
