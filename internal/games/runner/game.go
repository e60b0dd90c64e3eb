// Package runner implements a three-lane endless runner: the track scrolls
// toward the player in fixed-length segments, each procedurally filled
// with obstacles, coin patterns and powerups. The player changes lanes,
// jumps and slides to survive as the speed ramps up.
package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// Variant names one registered flavour of the runner.
type Variant struct {
	ID    string
	Title string
}

var (
	// Neon is the full game with powerups and biome cycling.
	Neon = Variant{ID: "runner", Title: "Neon Run"}
	// Classic is the reduced legacy game: one biome, no powerups.
	Classic = Variant{ID: "runner_classic", Title: "Classic Run"}
)

// Variants returns every registered variant.
func Variants() []Variant { return []Variant{Neon, Classic} }

// Settings set from the CLI before a game is reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	speedPercent     int
	startBiome       string
	character        string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the config value.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetSpeedPercent overrides the speed knob; 0 keeps the config value.
func SetSpeedPercent(p int) {
	speedPercent = p
}

// SetStartBiome overrides the starting biome key; "" keeps the config value.
func SetStartBiome(key string) {
	startBiome = key
}

// SetCharacter overrides the player's character key; "" keeps the config
// value.
func SetCharacter(key string) {
	character = key
}

// binding maps an action to a lifecycle transition in one phase.
type binding struct {
	action     core.Action
	transition Transition
}

var phaseBindings = map[Phase][]binding{
	PhaseMenu: {
		{core.ActionConfirm, TransitionStart},
		{core.ActionJump, TransitionStart},
	},
	PhasePlaying: {
		{core.ActionPause, TransitionPause},
	},
	PhasePaused: {
		{core.ActionPause, TransitionResume},
		{core.ActionConfirm, TransitionResume},
		{core.ActionRestart, TransitionRestart},
		{core.ActionBack, TransitionExit},
	},
	PhaseGameOver: {
		{core.ActionRestart, TransitionRestart},
		{core.ActionConfirm, TransitionRestart},
		{core.ActionBack, TransitionExit},
	},
}

// movement is applied in this order within a tick.
var movement = []core.Action{
	core.ActionLeft,
	core.ActionRight,
	core.ActionJump,
	core.ActionSlideStart,
	core.ActionSlideEnd,
}

// Options are per-game settings chosen in a menu. Set fields override the
// CLI settings.
type Options struct {
	Difficulty string
	Biome      string
	Character  string
}

// Game adapts a Run to the registry's Game interface.
type Game struct {
	variant Variant
	opts    Options
	runtime core.RuntimeConfig
	run     *Run
	records registry.Records
	popups  popups
	frame   int
	err     error
}

// New creates a game for the given variant. Reset must be called before
// the first Step.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// AttachRecords sets the store for the best score and coin total.
func (g *Game) AttachRecords(rec registry.Records) {
	g.records = rec
	if g.run != nil {
		g.run.AttachRecords(rec)
	}
}

// Configure sets options applied from the next Reset on.
func (g *Game) Configure(o Options) {
	g.opts = o
}

// Reset loads the configuration and builds a new run sitting on the title
// screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.err = nil

	cfg, err := config.LoadRunner(g.variant.ID, configPath)
	if err != nil {
		g.err = err
		cfg = config.DefaultFor(g.variant.ID)
	}

	preset, biome, char := difficultyPreset, startBiome, character
	if p := config.ParsePreset(g.opts.Difficulty); p != "" {
		preset = p
	}
	if g.opts.Biome != "" {
		biome = g.opts.Biome
	}
	if g.opts.Character != "" {
		char = g.opts.Character
	}

	config.ApplyPreset(&cfg, preset)
	if speedPercent > 0 {
		cfg.Speed.Percent = speedPercent
	}
	if biome != "" {
		cfg.Biomes.Start = biome
	}
	if char != "" {
		cfg.Player.Character = char
	}
	if err := cfg.Validate(); err != nil {
		g.err = err
		cfg = config.DefaultFor(g.variant.ID)
	}

	start, err := ParseBiome(cfg.Biomes.Start)
	if err != nil {
		g.err = err
		start = BiomeCyberCity
	}
	if _, err := ParseCharacter(cfg.Player.Character); err != nil {
		g.err = err
		cfg.Player.Character = ""
	}

	g.run = NewRun(cfg, runtime.Seed, start)
	g.run.AttachRecords(g.records)
	g.popups = newPopups(max(runtime.TickRate, 1))
	g.frame = 0
}

// Err returns the configuration problem found by the last Reset, if any.
// The game still runs on defaults.
func (g *Game) Err() error {
	return g.err
}

// Run exposes the underlying run for hosts that drive it directly.
func (g *Game) Run() *Run {
	return g.run
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	r := g.run
	g.frame++

	phase := r.Session.Phase
	handled := false
	for _, b := range phaseBindings[phase] {
		if in.Has(b.action) {
			handled = r.Apply(b.transition) == nil
			break
		}
	}

	if !handled && r.Session.Phase == PhasePlaying {
		for _, a := range movement {
			if in.Has(a) {
				r.Command(a)
			}
		}
		r.Tick(g.runtime.TickSeconds())
	}

	events := r.Drain()
	if len(events) > 0 && events[0].Kind == core.EventRunStarted {
		g.popups.reset()
	}
	g.popups.observe(events)
	g.popups.tick()

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.run == nil {
		return core.GameState{Idle: true}
	}
	s := &g.run.Session
	return core.GameState{
		Score:    g.run.Score(),
		Coins:    s.Coins,
		Distance: s.Distance,
		GameOver: s.Phase == PhaseGameOver,
		Paused:   s.Phase == PhasePaused,
		Idle:     s.Phase == PhaseMenu,
	}
}

// Register the game with the registry
func init() {
	for _, v := range Variants() {
		registry.Register(v.ID, func() registry.Game { return New(v) })
	}
}

var _ registry.RecordKeeper = (*Game)(nil)
