package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// EventSink receives the events of every tick, e.g. to play sounds.
type EventSink interface {
	Observe(events []core.Event)
}

// GameModel is the Bubble Tea model that drives one game: it owns the tick
// loop, maps keys to actions and saves finished runs.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	slide      slideHold
	sink       EventSink
	logger     *log.Logger
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the current run has been saved
}

// NewGameModel creates a model for game. store, sink and logger may be nil.
// Games that keep their own records get them attached here, before the
// first Reset.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, sink EventSink, logger *log.Logger) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	if keeper, ok := game.(registry.RecordKeeper); ok {
		if rec := NewRecords(store, game.ID(), logger); rec != nil {
			keeper.AttachRecords(rec)
		}
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		slide:      newSlideHold(cfg.TickRate),
		sink:       sink,
		logger:     logger,
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The track is projected onto whatever size the screen has, so the
		// run carries on.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack && m.gameState.Idle:
		// Back on the title screen leaves the game
		m.backToMenu = true
		return m, tea.Quit

	case action == core.ActionSlideStart:
		m.slide.press(&m.inputFrame)

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.slide.tick(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		if ev.Kind == core.EventRunStarted {
			m.scoreSaved = false
		}
	}
	if m.sink != nil && len(result.Events) > 0 {
		m.sink.Observe(result.Events)
	}

	// Save the run on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m GameModel) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.store.SaveRun(storage.RunRecord{
		GameID:   m.game.ID(),
		Score:    m.gameState.Score,
		Coins:    m.gameState.Coins,
		Distance: m.gameState.Distance,
	})
	if err != nil {
		m.logger.Warn("could not save run", "game", m.game.ID(), "score", m.gameState.Score, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the state reported by the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the terminal until the player quits or backs out of
// the title screen. It reports whether the player asked for the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, sink EventSink, logger *log.Logger) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg, sink, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(GameModel)
	return ok && m.BackToMenu(), nil
}
