package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// SimResult summarises a headless run.
type SimResult struct {
	Score    int
	Best     int
	NewBest  bool
	Coins    int
	Distance float64
	Ticks    int
	Crashed  bool
	Events   map[core.EventKind]int
}

// Simulate starts r and lets pilot play it until a crash or maxTicks.
// A run still going at the limit is ended and settled like a crash.
func Simulate(r *Run, pilot *Autopilot, dt float64, maxTicks int) (SimResult, error) {
	res := SimResult{Events: make(map[core.EventKind]int)}
	if err := r.Start(); err != nil {
		return res, err
	}

	count := func() {
		for _, ev := range r.Drain() {
			res.Events[ev.Kind]++
		}
	}

	for r.Session.Phase == PhasePlaying && r.Session.Ticks < maxTicks {
		in := pilot.Decide(r)
		for _, a := range movement {
			if in.Has(a) {
				r.Command(a)
			}
		}
		r.Tick(dt)
		count()
	}

	res.Crashed = r.Session.Phase == PhaseGameOver
	if !res.Crashed {
		if err := r.Apply(TransitionCrash); err != nil {
			return res, err
		}
		count()
	}

	s := &r.Session
	res.Score = r.Score()
	res.Best = s.Best
	res.NewBest = s.NewBest
	res.Coins = s.Coins
	res.Distance = s.Distance
	res.Ticks = s.Ticks
	return res, nil
}
