package runner

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// Run owns all state of one runner: the world window, the player, the
// active powerup, the biome cycle and the session counters. The host calls
// Tick once per frame while playing.
type Run struct {
	cfg  config.RunnerConfig
	diff *config.DifficultyManager

	World    *World
	Player   *Player
	Powerups *Powerups
	Biomes   *BiomeCycle
	Session  Session

	records registry.Records
	events  []core.Event
}

// NewRun builds a run from cfg. Spawning and biome changes draw from
// separate streams derived from seed, so either can change without
// disturbing the other.
func NewRun(cfg config.RunnerConfig, seed int64, start Biome) *Run {
	diff := config.NewDifficultyManager(cfg)
	spawner := NewSpawner(rand.New(rand.NewSource(seed)), cfg, diff.ObstacleChance())

	r := &Run{
		cfg:      cfg,
		diff:     diff,
		World:    NewWorld(cfg.Track, spawner),
		Player:   NewPlayer(cfg),
		Powerups: NewPowerups(cfg.Powerups.Duration, cfg.Powerups.Multiplier),
		Biomes:   NewBiomeCycle(rand.New(rand.NewSource(seed+1)), cfg.Biomes, start),
	}
	r.Session.CoinValue = cfg.Pickups.CoinValue
	r.World.Reset()
	r.Player.Reset()
	return r
}

// AttachRecords connects best-score persistence and loads the stored best.
func (r *Run) AttachRecords(rec registry.Records) {
	r.records = rec
	if rec == nil {
		return
	}
	if best, err := rec.BestScore(); err == nil {
		r.Session.Best = best
	}
}

// Start leaves the menu and begins a fresh run.
func (r *Run) Start() error {
	if err := r.Session.Fire(TransitionStart); err != nil {
		return err
	}
	r.reset()
	return nil
}

// Restart begins a fresh run after game over or from pause.
func (r *Run) Restart() error {
	if err := r.Session.Fire(TransitionRestart); err != nil {
		return err
	}
	r.reset()
	return nil
}

// Pause suspends a run in progress.
func (r *Run) Pause() error { return r.Session.Fire(TransitionPause) }

// Resume continues a paused run.
func (r *Run) Resume() error { return r.Session.Fire(TransitionResume) }

// Exit returns to the menu from pause or game over.
func (r *Run) Exit() error { return r.Session.Fire(TransitionExit) }

func (r *Run) reset() {
	r.World.Reset()
	r.Player.Reset()
	r.Powerups.Reset()
	r.Biomes.Reset()
	r.Session.Speed = r.diff.Speed(0)
	r.emit(core.EventRunStarted, 0, "")
}

// Command applies a movement command. Ignored unless playing.
func (r *Run) Command(a core.Action) {
	if r.Session.Phase != PhasePlaying {
		return
	}
	switch a {
	case core.ActionLeft:
		r.Player.Shift(-1)
	case core.ActionRight:
		r.Player.Shift(1)
	case core.ActionJump:
		r.Player.Jump()
	case core.ActionSlideStart:
		r.Player.StartSlide()
	case core.ActionSlideEnd:
		r.Player.EndSlide()
	}
}

// Tick advances a playing run by dt seconds. It is a no-op in any other
// phase.
func (r *Run) Tick(dt float64) {
	if r.Session.Phase != PhasePlaying {
		return
	}
	s := &r.Session
	s.Ticks++

	s.Speed = r.diff.Speed(s.Distance)
	advance := r.diff.Advance(s.Distance)
	s.Distance += advance

	if r.Biomes.Advance(advance) {
		r.emit(core.EventBiomeChanged, int(r.Biomes.Current()), r.Biomes.Current().String())
	}

	if r.Player.Update() {
		r.emit(core.EventLanded, 0, "")
	}

	r.World.Scroll(advance)

	if r.resolveObstacles() {
		r.crash()
		return
	}
	r.resolvePickups()

	if kind, ok := r.Powerups.Tick(dt); ok {
		r.emit(core.EventPowerupExpired, int(kind), kind.String())
	}
}

// resolveObstacles reports whether a fatal collision ended the run.
func (r *Run) resolveObstacles() bool {
	obstacles := r.World.Obstacles()
	for i := range obstacles {
		o := &obstacles[i]
		if Judge(r.Player, o, r.cfg.Physics.JumpClearance) != VerdictFatal {
			continue
		}
		if !r.Powerups.Shielded() {
			return true
		}
		if !o.grazed {
			o.grazed = true
			r.emit(core.EventShieldBlocked, 0, o.Kind.String())
		}
	}
	return false
}

func (r *Run) resolvePickups() {
	center := r.Player.Center()

	if r.Powerups.Magnet() {
		pullCoins(r.World.Coins(), center, r.cfg.Pickups.MagnetRadius, r.cfg.Pickups.MagnetPull)
	}

	for _, c := range touchingCoins(r.World.Coins(), center, r.cfg.Pickups.Radius) {
		if !r.World.CollectCoin(c.ID) {
			continue
		}
		pts := r.Session.Collect(r.Powerups.Multiplier())
		r.emit(core.EventCoinCollected, pts, "")
	}

	for _, p := range touchingPowerups(r.World.Powerups(), center, r.cfg.Pickups.Radius) {
		if !r.World.CollectPowerup(p.ID) {
			continue
		}
		if prev, ok := r.Powerups.Activate(p.Kind); ok {
			r.emit(core.EventPowerupExpired, int(prev), prev.String())
		}
		r.emit(core.EventPowerupActivated, int(p.Kind), p.Kind.String())
	}
}

// crash ends the run and settles the best score and coin total.
func (r *Run) crash() {
	if err := r.Session.Fire(TransitionCrash); err != nil {
		return
	}
	score := r.Score()
	r.emit(core.EventCrash, score, "")

	if r.Session.settleBest(score) {
		r.emit(core.EventNewBest, score, "")
		if r.records != nil {
			r.records.SetBestScore(score) //nolint:errcheck // host-side records log their own failures
		}
	}
	if r.records != nil {
		r.records.AddCoins(r.Session.Coins) //nolint:errcheck // host-side records log their own failures
	}
}

func (r *Run) emit(kind core.EventKind, value int, label string) {
	r.events = append(r.events, core.Event{Kind: kind, Value: value, Label: label})
}

// Drain returns and clears the events raised since the last call.
func (r *Run) Drain() []core.Event {
	if len(r.events) == 0 {
		return nil
	}
	out := r.events
	r.events = nil
	return out
}

// Score returns the current score under the active coin multiplier.
func (r *Run) Score() int { return r.Session.Score(r.Powerups.Multiplier()) }

// Config returns the run's configuration.
func (r *Run) Config() config.RunnerConfig { return r.cfg }

// Difficulty returns the run's difficulty manager.
func (r *Run) Difficulty() *config.DifficultyManager { return r.diff }

// Apply fires t through the matching lifecycle method.
func (r *Run) Apply(t Transition) error {
	switch t {
	case TransitionStart:
		return r.Start()
	case TransitionRestart:
		return r.Restart()
	case TransitionPause:
		return r.Pause()
	case TransitionResume:
		return r.Resume()
	case TransitionExit:
		return r.Exit()
	case TransitionCrash:
		if r.Session.Phase != PhasePlaying {
			return r.Session.Fire(TransitionCrash)
		}
		r.crash()
		return nil
	default:
		return ErrInvalidTransition
	}
}
