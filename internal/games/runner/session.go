package runner

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidTransition is returned when a transition does not apply to the
// current phase. The phase is left unchanged.
var ErrInvalidTransition = errors.New("runner: invalid transition")

// Phase is the lifecycle state of a run.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Transition moves a session between phases.
type Transition int

const (
	TransitionStart Transition = iota
	TransitionPause
	TransitionResume
	TransitionCrash
	TransitionRestart
	TransitionExit
)

func (t Transition) String() string {
	switch t {
	case TransitionStart:
		return "start"
	case TransitionPause:
		return "pause"
	case TransitionResume:
		return "resume"
	case TransitionCrash:
		return "crash"
	case TransitionRestart:
		return "restart"
	case TransitionExit:
		return "exit"
	default:
		return "unknown"
	}
}

var transitions = map[Phase]map[Transition]Phase{
	PhaseMenu: {
		TransitionStart: PhasePlaying,
	},
	PhasePlaying: {
		TransitionPause: PhasePaused,
		TransitionCrash: PhaseGameOver,
	},
	PhasePaused: {
		TransitionResume:  PhasePlaying,
		TransitionRestart: PhasePlaying,
		TransitionExit:    PhaseMenu,
	},
	PhaseGameOver: {
		TransitionRestart: PhasePlaying,
		TransitionExit:    PhaseMenu,
	},
}

// Session is the bookkeeping of one run: phase, distance, coins and score.
type Session struct {
	Phase     Phase
	Distance  float64
	Coins     int
	Combo     int
	CoinValue int // points per coin before the multiplier
	Speed     float64
	Ticks     int

	Best    int
	NewBest bool
}

// Fire applies t. Starting or restarting clears the run counters; the
// best score survives.
func (s *Session) Fire(t Transition) error {
	next, ok := transitions[s.Phase][t]
	if !ok {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, t, s.Phase)
	}
	if t == TransitionStart || t == TransitionRestart {
		s.clear()
	}
	s.Phase = next
	return nil
}

func (s *Session) clear() {
	s.Distance = 0
	s.Coins = 0
	s.Combo = 0
	s.Speed = 0
	s.Ticks = 0
	s.NewBest = false
}

// Score returns floor(distance*10) + coins*CoinValue*multiplier, where
// multiplier is the one active right now.
func (s *Session) Score(multiplier int) int {
	return int(math.Floor(s.Distance*10)) + s.Coins*s.CoinValue*max(multiplier, 1)
}

// Collect records one coin and returns the points it is worth under
// multiplier.
func (s *Session) Collect(multiplier int) int {
	s.Coins++
	s.Combo++
	return s.CoinValue * max(multiplier, 1)
}

// settleBest compares the final score against the best. It reports whether
// a new best was set.
func (s *Session) settleBest(score int) bool {
	if score > s.Best {
		s.Best = score
		s.NewBest = true
	}
	return s.NewBest
}
