package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenStats
)

// SessionModel manages the full flow: menu -> game -> stats -> menu.
// It is the top-level model for SSH sessions and the local menu command.
type SessionModel struct {
	opts      Options
	selection Selection
	screen    screen

	menu  MenuModel
	game  *GameModel
	stats ScoreboardModel

	// lastGame is the history ID of the most recent finished board.
	lastGame string

	err      error
	quitting bool
}

// NewSessionModel creates a session starting on the setup menu.
func NewSessionModel(opts Options) SessionModel {
	m := SessionModel{
		opts:      opts,
		selection: opts.Initial(),
	}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	return NewMenuModel(m.selection, m.opts.Config.ToEngine().Grids, m.opts.LoadStats(), m.opts.Runtime)
}

func (m SessionModel) newStats() ScoreboardModel {
	return NewScoreboardModel(m.opts.Store, m.opts.HistoryPlayer(), m.opts.LoadStats(),
		m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH).WithLastGame(m.lastGame)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenStats:
		return m.updateStats(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when on the setup menu.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.screen = screenStats
		m.stats = m.newStats()
		return m, m.stats.Init()

	case m.menu.Selected() != nil:
		m.selection = *m.menu.Selected()
		game, err := NewGameModel(m.opts, m.selection.Difficulty, m.selection.Theme)
		if err != nil {
			m.opts.logger().Error("cannot start game", "error", err)
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		m.game = &game
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates while a board is on screen.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		m.game = &game
	}
	if id := m.game.LastGameID(); id != "" {
		m.lastGame = id
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.game.BackToMenu():
		m.game = nil
		m.screen = screenMenu
		m.menu = m.newMenu()
		return m, m.menu.Init()

	case m.game.WantsStats():
		m.game = nil
		m.screen = screenStats
		m.stats = m.newStats()
		return m, m.stats.Init()
	}

	return m, cmd
}

// updateStats handles updates on the stats screen.
func (m SessionModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.stats.Update(msg)
	if stats, ok := next.(ScoreboardModel); ok {
		m.stats = stats
	}

	switch {
	case m.stats.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.stats.IsGoingBack():
		m.screen = screenMenu
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		if m.game != nil {
			return m.game.View()
		}
	case screenStats:
		return m.stats.View()
	}
	return m.menu.View()
}

// Err returns the error that ended the session, if any.
func (m SessionModel) Err() error {
	return m.err
}

// RunSession runs the full menu flow in the local terminal.
func RunSession(opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(SessionModel); ok {
		return m.Err()
	}
	return nil
}
