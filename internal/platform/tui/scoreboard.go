package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the difficulty sidebar
	sidebarWidth       = 24  // Width of the sidebar
	maxScores          = 100 // Max games to load per difficulty
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextDiff key.Binding
	PrevDiff key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextDiff, k.PrevDiff, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextDiff, k.PrevDiff},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev difficulty"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next difficulty"),
		),
		NextDiff: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next difficulty"),
		),
		PrevDiff: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev difficulty"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows per-difficulty history alongside personal bests
// and achievements.
type ScoreboardModel struct {
	difficulties []memory.Difficulty
	diffCursor   int
	store        *storage.Store
	player       string
	stats        memory.PlayerStats
	games        []storage.GameRecord
	last         *storage.GameRecord
	table        table.Model
	help         help.Model
	keys         ScoreboardKeyMap
	width        int
	height       int
	quitting     bool
	goingBack    bool
	showSidebar  bool
}

// NewScoreboardModel creates a new scoreboard model. store may be nil,
// in which case only the stats record is shown.
func NewScoreboardModel(store *storage.Store, player string, stats memory.PlayerStats, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		difficulties: memory.Difficulties(),
		store:        store,
		player:       player,
		stats:        stats,
		keys:         DefaultScoreboardKeyMap(),
		help:         h,
		width:        width,
		height:       height,
		showSidebar:  width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadGames()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Time", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "Acc", Width: 5},
		{Title: "Theme", Width: 8},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if extra := tableWidth - 60; extra > 0 {
		columns[4].Width += core.Min(extra, 8)
	}

	height := core.Clamp(m.height-10, 3, maxScores)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// WithLastGame looks up the game with the given history ID and shows it
// in the record panel. Unknown IDs are ignored.
func (m ScoreboardModel) WithLastGame(id string) ScoreboardModel {
	if id == "" || m.store == nil {
		return m
	}
	g, err := m.store.GameByID(id)
	if err == nil && g != nil {
		m.last = g
	}
	return m
}

func (m *ScoreboardModel) current() memory.Difficulty {
	return m.difficulties[m.diffCursor]
}

// loadGames loads the history for the selected difficulty.
func (m *ScoreboardModel) loadGames() {
	m.games = nil
	if m.store != nil {
		games, err := m.store.TopGames(m.player, m.current(), maxScores)
		if err == nil {
			m.games = games
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded games.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.games))
	for i, g := range m.games {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			memory.FormatSeconds(g.Seconds),
			fmt.Sprintf("%d", g.Moves),
			fmt.Sprintf("%d%%", g.Accuracy),
			g.Theme,
			g.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) shift(delta int) {
	m.diffCursor = core.Wrap(m.diffCursor+delta, len(m.difficulties))
	m.loadGames()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextDiff), key.Matches(msg, m.keys.Right):
			m.shift(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevDiff), key.Matches(msg, m.keys.Left):
			m.shift(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("STATS - %s", m.current().Title())
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// renderWideLayout renders the sidebar next to the history table.
func (m ScoreboardModel) renderWideLayout() string {
	sidebar := panelStyle.Width(sidebarWidth).Render(m.renderSidebar())
	tbl := panelStyle.Render(m.renderTableContent())
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", tbl)
}

// renderNarrowLayout renders difficulty tabs above the table and the record below.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.difficulties))
	for i, d := range m.difficulties {
		if i == m.diffCursor {
			tabs[i] = activeTabStyle.Render(d.Title())
		} else {
			tabs[i] = tabStyle.Render(" " + d.Title() + " ")
		}
	}
	b.WriteString(centerBlock(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerBlock(panelStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")
	b.WriteString(centerBlock(m.renderRecord(), m.width))

	return b.String()
}

// renderSidebar lists difficulties followed by the personal record.
func (m ScoreboardModel) renderSidebar() string {
	var b strings.Builder
	b.WriteString("Difficulty\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	b.WriteString("\n")

	for i, d := range m.difficulties {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.diffCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		b.WriteString(style.Render(cursor + d.Title()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderRecord())
	return b.String()
}

// renderRecord shows bests for the selected difficulty and the achievement list.
func (m ScoreboardModel) renderRecord() string {
	d := m.current()
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	gold := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

	var b strings.Builder
	fmt.Fprintf(&b, "Best time   %s\n", m.stats.BestTimes[d].TimeString())
	fmt.Fprintf(&b, "Best moves  %s\n", m.stats.BestMoves[d].String())
	fmt.Fprintf(&b, "Games       %d\n", m.stats.GamesPlayed)
	if g := m.last; g != nil {
		fmt.Fprintf(&b, "Last game   %s\n", memory.FormatSeconds(g.Seconds))
		b.WriteString(muted.Render(fmt.Sprintf("  %s · %d moves", g.Difficulty.Title(), g.Moves)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, a := range memory.AllAchievements() {
		if m.stats.Achievements.Has(a) {
			b.WriteString(gold.Render("🏆 " + a.Title()))
		} else {
			b.WriteString(muted.Render("·  " + a.Title()))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.games) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No games recorded yet.\nFinish a board to set a record!")
	}

	return m.table.View()
}

// LastGame returns the highlighted most recent game, if any.
func (m ScoreboardModel) LastGame() *storage.GameRecord {
	return m.last
}

// Games returns the history rows currently shown.
func (m ScoreboardModel) Games() []storage.GameRecord {
	return m.games
}

// Difficulty returns the selected difficulty.
func (m ScoreboardModel) Difficulty() memory.Difficulty {
	return m.current()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the stats screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, player string, stats memory.PlayerStats, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, player, stats, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
