package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// MenuItem is one variant on the title menu.
type MenuItem struct {
	GameID string
	Title  string
	Best   int
	Coins  int
}

// MenuModel is the title menu: pick a variant or open the scoreboard.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
	board     bool // Tab pressed
}

// NewMenuModel lists the registered variants, with records from store
// when one is given.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		it := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			it.Best, _ = store.BestScore(g.ID)
			it.Coins, _ = store.TotalCoins(g.ID)
		}
		items = append(items, it)
	}
	return MenuModel{items: items, config: cfg, keyMapper: NewKeyMapper()}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height

	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit, MenuActionBack:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = max(min(m.cursor+1, len(m.items)-1), 0)
		case MenuActionScoreboard:
			m.board = true
			return m, tea.Quit
		case MenuActionSelect:
			if len(m.items) == 0 {
				break
			}
			it := m.items[m.cursor]
			m.selected = &it
			return m, tea.Quit
		}
	}
	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 2)
	menuPickedStyle = menuCardStyle.BorderForeground(lipgloss.Color("205"))
)

var menuBanner = []string{
	"▄▄ ▄ ▄▄▄ ▄▄▄ ▄▄ ▄   ▄▄▄ ▄ ▄ ▄▄ ▄",
	"█ ▀█ █▄  █ █ █ ▀█   █▄▀ █ █ █ ▀█",
	"▀  ▀ ▀▀▀ ▀▀▀ ▀  ▀   ▀ ▀ ▀▀▀ ▀  ▀",
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	w := m.config.ScreenW

	var b strings.Builder
	b.WriteString("\n")
	for _, line := range menuBanner {
		b.WriteString(menuTitleStyle.Render(centerText(line, w)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	cards := make([]string, len(m.items))
	for i, it := range m.items {
		style, name := menuCardStyle, it.Title
		if i == m.cursor {
			style, name = menuPickedStyle, menuActiveStyle.Render(it.Title)
		}
		cards[i] = style.Width(24).Render(fmt.Sprintf("%s\n%s",
			name,
			menuHintStyle.Render(fmt.Sprintf("best %s · %s coins", humanize.Comma(int64(it.Best)), humanize.Comma(int64(it.Coins)))),
		))
	}
	for _, line := range strings.Split(lipgloss.JoinVertical(lipgloss.Left, cards...), "\n") {
		b.WriteString(centerText(line, w))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render(centerText("↑/↓ choose · enter play · tab records · q quit", w)))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen variant, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.board
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads text on the left to center it within width cells.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult is what the player chose on the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the menu until the player picks something.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		res.WantsScoreboard = true
	case m.Selected() != nil:
		res.GameID = m.Selected().GameID
	default:
		res.Quit = true
	}
	return res, nil
}
