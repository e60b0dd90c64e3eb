package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

const (
	boardWideMin  = 80  // narrower terminals drop the variant panel
	boardPanelW   = 24  // variant panel width, border included
	boardMaxRuns  = 100 // runs loaded per variant
	boardFixedCol = 5 + 9 + 6 + 8
)

// runOrder is the column the run table is sorted by.
type runOrder int

const (
	orderScore runOrder = iota
	orderDistance
	orderRecent
	orderCount
)

func (o runOrder) String() string {
	return [...]string{"score", "distance", "recent"}[o]
}

// boardKeys are the scoreboard key bindings.
type boardKeys struct {
	Scroll  key.Binding
	Variant key.Binding
	Sort    key.Binding
	Back    key.Binding
	Quit    key.Binding

	next, prev key.Binding
}

func newBoardKeys() boardKeys {
	return boardKeys{
		Scroll:  key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Variant: key.NewBinding(key.WithKeys("left", "right", "h", "l"), key.WithHelp("←/→", "variant")),
		Sort:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		next:    key.NewBinding(key.WithKeys("right", "l", "tab")),
		prev:    key.NewBinding(key.WithKeys("left", "h", "shift+tab")),
	}
}

// ShortHelp implements help.KeyMap.
func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Variant, k.Sort, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// variantCard is what the panel shows for one variant.
type variantCard struct {
	info  registry.GameInfo
	best  int
	coins int
}

// ScoreboardModel shows the recorded runs of every variant together with
// its best score and lifetime totals.
type ScoreboardModel struct {
	store    *storage.Store
	cards    []variantCard
	current  int
	runs     []storage.ScoreEntry
	stats    *storage.GameStats
	order    runOrder
	table    table.Model
	help     help.Model
	keys     boardKeys
	width    int
	height   int
	quitting bool
	back     bool
}

// NewScoreboardModel creates a scoreboard; a nil store shows empty boards.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		help:   help.New(),
		keys:   newBoardKeys(),
		width:  width,
		height: height,
	}
	for _, g := range registry.List() {
		card := variantCard{info: g}
		if store != nil {
			card.best, _ = store.BestScore(g.ID)
			card.coins, _ = store.TotalCoins(g.ID)
		}
		m.cards = append(m.cards, card)
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) wide() bool { return m.width >= boardWideMin }

func (m *ScoreboardModel) newTable() table.Model {
	avail := m.width - 6
	if m.wide() {
		avail -= boardPanelW + 2
	}
	when := min(max(avail-boardFixedCol-10, 12), 20)

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 5},
			{Title: "Score", Width: 9},
			{Title: "Coins", Width: 6},
			{Title: "Dist", Width: 8},
			{Title: "When", Width: when},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-11, 3)),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("60")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("99")).
		Bold(false)
	t.SetStyles(st)
	return t
}

// load reads the runs and totals of the current variant.
func (m *ScoreboardModel) load() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.cards) > 0 {
		id := m.cards[m.current].info.ID
		if runs, err := m.store.TopScores(id, boardMaxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.fill()
}

// fill sorts the loaded runs and puts them in the table. Rank is always
// the position by score; the best run is starred.
func (m *ScoreboardModel) fill() {
	ranked := make(map[int64]int, len(m.runs))
	for i, r := range m.runs {
		ranked[r.ID] = i + 1
	}

	runs := append([]storage.ScoreEntry(nil), m.runs...)
	switch m.order {
	case orderDistance:
		sort.SliceStable(runs, func(i, j int) bool { return runs[i].Distance > runs[j].Distance })
	case orderRecent:
		sort.SliceStable(runs, func(i, j int) bool { return runs[i].CreatedAt.After(runs[j].CreatedAt) })
	}

	rows := make([]table.Row, 0, len(runs))
	for _, r := range runs {
		rank := fmt.Sprintf("%d", ranked[r.ID])
		if ranked[r.ID] == 1 {
			rank = "★ 1"
		}
		rows = append(rows, table.Row{
			rank,
			humanize.Comma(int64(r.Score)),
			humanize.Comma(int64(r.Coins)),
			fmt.Sprintf("%.0fm", r.Distance),
			humanize.Time(r.CreatedAt),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) switchVariant(step int) {
	if n := len(m.cards); n > 0 {
		m.current = ((m.current+step)%n + n) % n
		m.load()
	}
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.next):
			m.switchVariant(1)
			return m, nil
		case key.Matches(msg, m.keys.prev):
			m.switchVariant(-1)
			return m, nil
		case key.Matches(msg, m.keys.Sort):
			m.order = (m.order + 1) % orderCount
			m.fill()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fill()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 1)
)

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	title := "RECORDS"
	if len(m.cards) > 0 {
		title += " · " + m.cards[m.current].info.Title
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(centerText(m.totals(), m.width)))
	b.WriteString("\n\n")

	board := boardBoxStyle.Render(m.runTable())
	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.panel(), "  ", board))
	} else {
		b.WriteString(centerText(m.switcher(), m.width))
		b.WriteString("\n")
		b.WriteString(board)
	}

	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(fmt.Sprintf("sorted by %s  ", m.order)))
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// totals is the lifetime line of the current variant.
func (m ScoreboardModel) totals() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "no runs yet"
	}
	return fmt.Sprintf("%s runs  ·  avg %s  ·  %s run  ·  last %s",
		humanize.Comma(int64(m.stats.GamesCount)),
		humanize.Comma(int64(m.stats.AvgScore)),
		humanize.SIWithDigits(m.stats.TotalDistance, 1, "m"),
		humanize.Time(m.stats.LastPlayed),
	)
}

// panel lists every variant with its best score and coin total.
func (m ScoreboardModel) panel() string {
	var b strings.Builder
	for i, c := range m.cards {
		name := c.info.Title
		if i == m.current {
			name = menuActiveStyle.Render("> " + name)
		} else {
			name = "  " + name
		}
		b.WriteString(name)
		b.WriteString("\n")
		b.WriteString(boardDimStyle.Render(fmt.Sprintf("    best %s\n    coins %s", humanize.Comma(int64(c.best)), humanize.Comma(int64(c.coins)))))
		if i < len(m.cards)-1 {
			b.WriteString("\n")
		}
	}
	return boardBoxStyle.Width(boardPanelW - 2).Render(b.String())
}

// switcher is the one-line variant picker of the narrow layout.
func (m ScoreboardModel) switcher() string {
	if len(m.cards) == 0 {
		return ""
	}
	c := m.cards[m.current]
	return fmt.Sprintf("< %s >  best %s", c.info.Title, humanize.Comma(int64(c.best)))
}

func (m ScoreboardModel) runTable() string {
	if len(m.runs) == 0 {
		return boardDimStyle.Italic(true).Padding(1, 2).Render("No runs recorded yet.")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard. goBack is false when the player quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
