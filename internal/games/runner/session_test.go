package runner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionTransitions(t *testing.T) {
	all := []Transition{TransitionStart, TransitionPause, TransitionResume, TransitionCrash, TransitionRestart, TransitionExit}
	valid := map[Phase]map[Transition]Phase{
		PhaseMenu:     {TransitionStart: PhasePlaying},
		PhasePlaying:  {TransitionPause: PhasePaused, TransitionCrash: PhaseGameOver},
		PhasePaused:   {TransitionResume: PhasePlaying, TransitionRestart: PhasePlaying, TransitionExit: PhaseMenu},
		PhaseGameOver: {TransitionRestart: PhasePlaying, TransitionExit: PhaseMenu},
	}

	for from, allowed := range valid {
		for _, tr := range all {
			s := Session{Phase: from}
			err := s.Fire(tr)
			if to, ok := allowed[tr]; ok {
				assert.NoError(t, err, "%s from %s", tr, from)
				assert.Equal(t, to, s.Phase, "%s from %s", tr, from)
				continue
			}
			assert.True(t, errors.Is(err, ErrInvalidTransition), "%s from %s", tr, from)
			assert.Equal(t, from, s.Phase, "phase untouched after %s", tr)
		}
	}
}

func TestSessionRestartClearsCounters(t *testing.T) {
	s := Session{Phase: PhaseGameOver, Distance: 120, Coins: 4, Combo: 4, CoinValue: 50, Ticks: 900, Best: 1400, NewBest: true}

	assert.NoError(t, s.Fire(TransitionRestart))
	assert.Equal(t, Session{Phase: PhasePlaying, CoinValue: 50, Best: 1400}, s)
}

func TestSessionScore(t *testing.T) {
	s := Session{Distance: 12.37, CoinValue: 50}
	assert.Equal(t, 123, s.Score(1))

	assert.Equal(t, 50, s.Collect(1))
	assert.Equal(t, 100, s.Collect(2))
	assert.Equal(t, 223, s.Score(1))
	assert.Equal(t, 323, s.Score(2), "every coin counts under the current multiplier")
	assert.Equal(t, 223, s.Score(0), "a zero multiplier counts as one")
	assert.Equal(t, 2, s.Coins)
	assert.Equal(t, 2, s.Combo)
}

func TestSessionSettleBest(t *testing.T) {
	s := Session{Distance: 10, Best: 200}
	assert.False(t, s.settleBest(s.Score(1)))
	assert.Equal(t, 200, s.Best)

	s.Distance = 30
	assert.True(t, s.settleBest(s.Score(1)))
	assert.Equal(t, 300, s.Best)
}
