package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

// Menu rows.
const (
	menuRowDifficulty = iota
	menuRowTheme
	menuRowStart
	menuRows
)

// Selection is what the player picked on the setup menu.
type Selection struct {
	Difficulty memory.Difficulty
	Theme      string
}

// MenuModel is the Bubble Tea model for the difficulty and theme picker.
type MenuModel struct {
	difficulties []memory.Difficulty
	themes       []registry.Theme
	grids        map[memory.Difficulty]memory.Grid
	stats        memory.PlayerStats

	diffIdx  int
	themeIdx int
	row      int

	width  int
	height int
	keys   KeyMap
	help   help.Model

	quitting       bool
	selected       *Selection
	openScoreboard bool
}

// NewMenuModel creates a menu preselecting initial. stats feeds the best
// time/moves preview and may be the zero value.
func NewMenuModel(initial Selection, grids map[memory.Difficulty]memory.Grid, stats memory.PlayerStats, cfg core.RuntimeConfig) MenuModel {
	if grids == nil {
		grids = memory.DefaultGrids()
	}
	m := MenuModel{
		difficulties: memory.Difficulties(),
		themes:       registry.List(),
		grids:        grids,
		stats:        stats,
		width:        cfg.ScreenW,
		height:       cfg.ScreenH,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		row:          menuRowStart,
	}

	for i, d := range m.difficulties {
		if d == initial.Difficulty {
			m.diffIdx = i
		}
	}
	for i, t := range m.themes {
		if t.ID == initial.Theme {
			m.themeIdx = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		m.row = core.Wrap(m.row-1, menuRows)

	case core.ActionDown:
		m.row = core.Wrap(m.row+1, menuRows)

	case core.ActionLeft:
		m.cycle(-1)

	case core.ActionRight:
		m.cycle(1)

	case core.ActionFlip:
		if m.row != menuRowStart {
			m.cycle(1)
			return m, nil
		}
		if sel, ok := m.Current(); ok {
			m.selected = &sel
			return m, tea.Quit
		}

	case core.ActionStats:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *MenuModel) cycle(delta int) {
	switch m.row {
	case menuRowDifficulty:
		m.diffIdx = core.Wrap(m.diffIdx+delta, len(m.difficulties))
	case menuRowTheme:
		m.themeIdx = core.Wrap(m.themeIdx+delta, len(m.themes))
	}
}

// Current returns the highlighted selection.
func (m MenuModel) Current() (Selection, bool) {
	if len(m.difficulties) == 0 || len(m.themes) == 0 {
		return Selection{}, false
	}
	return Selection{
		Difficulty: m.difficulties[m.diffIdx],
		Theme:      m.themes[m.themeIdx].ID,
	}, true
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if len(m.themes) == 0 {
		return "No themes registered.\n"
	}

	theme := m.themes[m.themeIdx]
	d := m.difficulties[m.diffIdx]
	st := newBoardStyles(theme.Palette)

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerBlock(st.title.Render(strings.ToUpper(theme.Title)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Find every pair", m.width))
	b.WriteString("\n\n")

	grid := m.grids[d]
	lines := []string{
		m.option(menuRowDifficulty, "Difficulty", fmt.Sprintf("%s (%s)", d.Title(), grid)),
		m.option(menuRowTheme, "Theme", themeLabel(theme)),
		m.option(menuRowStart, "", "Start game"),
	}
	for _, line := range lines {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	preview := fmt.Sprintf("Best time %s  ·  Best moves %s  ·  Games %d",
		m.stats.BestTimes[d].TimeString(), m.stats.BestMoves[d].String(), m.stats.GamesPlayed)
	b.WriteString(centerBlock(st.muted.Render(preview), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerBlock(st.muted.Render(m.help.View(menuHelp{m.keys})), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) option(row int, label, value string) string {
	cursor := "  "
	if row == m.row {
		cursor = "> "
	}
	if label == "" {
		return cursor + value
	}
	if row == m.row {
		value = "< " + value + " >"
	}
	return fmt.Sprintf("%s%-11s %s", cursor, label+":", value)
}

func themeLabel(t registry.Theme) string {
	if len(t.Symbols) == 0 {
		return t.ID
	}
	return t.Symbols[0] + " " + t.ID
}

// Selected returns the chosen selection, or nil if none was made.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the stats screen.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}
