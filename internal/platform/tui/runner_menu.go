package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

var difficultyChoices = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// Rows of the run setup screen.
const (
	setupRowBiome = iota
	setupRowDifficulty
	setupRowCharacter
	setupRowStart
	setupRows
)

// RunnerSetupModel lets the player choose the starting biome, the
// difficulty and the character before a run.
type RunnerSetupModel struct {
	title      string
	cursor     int
	biome      int
	difficulty int
	character  int
	width      int
	height     int
	keyMapper  *KeyMapper
	chosen     bool
	quitting   bool
	back       bool
}

// NewRunnerSetupModel creates the setup screen for the game titled title.
func NewRunnerSetupModel(title string, width, height int) RunnerSetupModel {
	return RunnerSetupModel{
		title:      title,
		cursor:     setupRowStart,
		difficulty: 1, // normal
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model.
func (m RunnerSetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m RunnerSetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m RunnerSetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, setupRows-1)
	case MenuActionLeft:
		m.cycle(-1)
	case MenuActionRight:
		m.cycle(1)
	case MenuActionSelect:
		if m.cursor == setupRowStart {
			m.chosen = true
			return m, tea.Quit
		}
		m.cycle(1)
	}
	return m, nil
}

func (m *RunnerSetupModel) cycle(step int) {
	wrap := func(v, n int) int { return ((v+step)%n + n) % n }
	switch m.cursor {
	case setupRowBiome:
		m.biome = wrap(m.biome, len(runner.Biomes()))
	case setupRowDifficulty:
		m.difficulty = wrap(m.difficulty, len(difficultyChoices))
	case setupRowCharacter:
		m.character = wrap(m.character, len(runner.Characters()))
	}
}

// View renders the setup screen.
func (m RunnerSetupModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText(strings.ToUpper(m.title), m.width)))
	b.WriteString("\n\n")

	ch := runner.Characters()[m.character]
	rows := [setupRows]string{
		fmt.Sprintf("Biome:       < %s >", runner.Biomes()[m.biome]),
		fmt.Sprintf("Difficulty:  < %s >", difficultyChoices[m.difficulty]),
		fmt.Sprintf("Character:   < %c %s >", ch.Glyph(), ch),
		"Start run",
	}
	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := centerText(fmt.Sprintf("%s%-28s", cursor, row), m.width)
		if i == m.cursor {
			line = menuActiveStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render(centerText("Left/Right: Change  |  Enter: Select  |  Esc: Back  |  Q: Quit", m.width)))

	return b.String()
}

// Selected returns the chosen options, or nil if still choosing.
func (m RunnerSetupModel) Selected() *runner.Options {
	if !m.chosen {
		return nil
	}
	return &runner.Options{
		Biome:      runner.Biomes()[m.biome].Key(),
		Difficulty: string(difficultyChoices[m.difficulty]),
		Character:  runner.Characters()[m.character].Key(),
	}
}

// IsQuitting returns true if user wants to quit.
func (m RunnerSetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m RunnerSetupModel) WantsBack() bool {
	return m.back
}

// RunRunnerSetup runs the setup screen. Options are nil when the player
// backed out; quit reports a request to leave entirely.
func RunRunnerSetup(title string, cfg core.RuntimeConfig) (opts *runner.Options, quit bool, err error) {
	p := tea.NewProgram(
		NewRunnerSetupModel(title, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}
	m, ok := finalModel.(RunnerSetupModel)
	if !ok {
		return nil, true, nil
	}
	return m.Selected(), m.IsQuitting(), nil
}
