package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/registry"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

// Options carries everything a screen needs to build an engine.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig

	// Store persists stats and history. Nil keeps stats in memory.
	Store *storage.Store

	// Player owns the stats record and history rows. Empty means the local player.
	Player string

	Logger *log.Logger
}

// StatsKey returns the KV key holding this player's stats.
// The local player uses the configured key unchanged.
func (o Options) StatsKey() string {
	key := o.Config.Storage.StatsKey
	if key == "" {
		key = memory.DefaultStatsKey
	}
	if o.Player == "" || o.Player == storage.LocalPlayer {
		return key
	}
	return key + ":" + o.Player
}

// HistoryPlayer returns the history owner name.
func (o Options) HistoryPlayer() string {
	if o.Player == "" {
		return storage.LocalPlayer
	}
	return o.Player
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// LoadStats reads this player's stats record. A missing store or record
// yields fresh stats.
func (o Options) LoadStats() memory.PlayerStats {
	if o.Store == nil {
		return memory.DefaultStats()
	}
	stats, _, err := memory.NewStatsRepo(o.Store, o.StatsKey()).Load()
	if err != nil {
		o.logger().Debug("stats unreadable, showing defaults", "key", o.StatsKey(), "error", err)
		return memory.DefaultStats()
	}
	return stats
}

// Initial returns the configured starting selection.
func (o Options) Initial() Selection {
	d, err := o.Config.DefaultDifficulty()
	if err != nil {
		d = memory.Medium
	}
	return Selection{Difficulty: d, Theme: o.Config.Defaults.Theme}
}

// NewEngine builds an engine wired to the store. listener and sched may be nil.
func (o Options) NewEngine(listener memory.Listener, sched memory.Scheduler) (*memory.Engine, error) {
	engine, _, err := o.newEngine(listener, sched)
	return engine, err
}

// newEngine also returns the history recorder, which is nil without a store.
func (o Options) newEngine(listener memory.Listener, sched memory.Scheduler) (*memory.Engine, *storage.HistoryRecorder, error) {
	var kv memory.KVStore
	var history *storage.HistoryRecorder
	listeners := memory.Listeners{}
	if listener != nil {
		listeners = append(listeners, listener)
	}
	if o.Store != nil {
		kv = o.Store
		history = storage.NewHistoryRecorder(o.Store, o.HistoryPlayer(), o.logger())
		listeners = append(listeners, history)
	}

	initial := o.Initial()
	d, theme := initial.Difficulty, initial.Theme
	if !registry.Exists(theme) {
		theme = ""
	}

	engine, err := memory.New(memory.Config{
		Rules:      o.Config.ToEngine(),
		Difficulty: d,
		Theme:      theme,
		StatsKey:   o.StatsKey(),
		Rand:       o.Runtime.Rand(),
		Scheduler:  sched,
		Listener:   listeners,
		Logger:     o.logger(),
	}, kv)
	return engine, history, err
}

// GameModel is the Bubble Tea model for one game board.
type GameModel struct {
	engine  *memory.Engine
	sched   *teaScheduler
	hud     *hud
	history *storage.HistoryRecorder
	keys    KeyMap
	help    help.Model

	palette core.Palette
	title   string
	victory string

	cursor       core.Pos
	width        int
	height       int
	tickInterval time.Duration

	quitting   bool
	backToMenu bool
	wantsStats bool
}

// NewGameModel creates a game screen for the given selection.
func NewGameModel(opts Options, d memory.Difficulty, themeID string) (GameModel, error) {
	sched := newTeaScheduler()
	h := newHUD(nil)

	engine, history, err := opts.newEngine(h, sched)
	if err != nil {
		return GameModel{}, err
	}
	if err := engine.Init(d, themeID); err != nil {
		return GameModel{}, err
	}

	m := GameModel{
		engine:       engine,
		sched:        sched,
		hud:          h,
		history:      history,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		width:        opts.Runtime.ScreenW,
		height:       opts.Runtime.ScreenH,
		tickInterval: opts.Config.TickInterval(),
	}
	m.applyTheme()
	return m, nil
}

func (m *GameModel) applyTheme() {
	theme, err := registry.Get(m.engine.Theme())
	if err != nil {
		m.palette = core.DefaultPalette
		m.title = "Memory Match"
		m.victory = "Victory!"
		return
	}
	m.palette = theme.Palette
	m.title = theme.Title
	m.victory = theme.VictoryTitle
}

// Init starts the timer loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.tickInterval)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case TickMsg:
		m.engine.Tick()
		cmd = tickCmd(m.tickInterval)

	case resolveMsg:
		m.sched.Run(msg)
	}

	return m, tea.Batch(cmd, m.sched.Drain())
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (GameModel, tea.Cmd) {
	action := m.keys.Action(msg)
	snap := m.engine.Session()

	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		m.backToMenu = true
		return m, nil

	case action == core.ActionStats:
		m.wantsStats = true
		return m, nil

	case action == core.ActionRestart:
		if err := m.engine.Reset(); err == nil {
			m.cursor = core.Pos{}
		}
		return m, nil

	case action == core.ActionFlip:
		m.engine.Flip(m.cursor.Index(snap.Grid.Cols))
		return m, nil

	case action.IsMove():
		m.cursor = m.cursor.Move(action, snap.Grid.Rows, snap.Grid.Cols, len(snap.Tiles))
		return m, nil

	case action == core.ActionNone && msg.String() == "?":
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// View renders the game screen.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	snap := m.engine.Session()
	st := newBoardStyles(m.palette)

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerBlock(st.title.Render(m.title), m.width))
	b.WriteString("\n")
	sub := fmt.Sprintf("%s · %s", snap.Difficulty.Title(), snap.Grid)
	b.WriteString(centerBlock(st.muted.Render(sub), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerBlock(m.statusLine(snap, st), m.width))
	b.WriteString("\n\n")

	if m.hud.result != nil {
		b.WriteString(centerBlock(m.renderResult(*m.hud.result, st), m.width))
	} else {
		b.WriteString(centerBlock(RenderBoard(snap, m.palette, m.cursor.Index(snap.Grid.Cols)), m.width))
	}
	b.WriteString("\n\n")

	if note := m.hud.Notification(); note != "" {
		b.WriteString(centerBlock(st.accent.Render(note), m.width))
	}
	b.WriteString("\n")

	b.WriteString(centerBlock(st.muted.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

func (m GameModel) statusLine(snap memory.Snapshot, st boardStyles) string {
	stats := m.engine.Stats()
	best := stats.BestTimes[snap.Difficulty]

	parts := []string{
		fmt.Sprintf("Time %s", m.hud.timer),
		fmt.Sprintf("Moves %d", m.hud.moves),
		fmt.Sprintf("Pairs %d/%d", m.hud.matches, snap.TotalPairs),
		fmt.Sprintf("Best %s", best.TimeString()),
	}
	return st.text.Render(strings.Join(parts, "   "))
}

// renderResult draws the completion summary.
func (m GameModel) renderResult(r memory.Result, st boardStyles) string {
	var b strings.Builder

	b.WriteString(st.title.Render(m.victory))
	b.WriteString("\n\n")

	rows := [][2]string{
		{"Time", memory.FormatDuration(r.Elapsed)},
		{"Moves", fmt.Sprintf("%d", r.Moves)},
		{"Accuracy", fmt.Sprintf("%d%%", r.Accuracy)},
		{"Best streak", fmt.Sprintf("%d", r.MaxStreak)},
		{"Best time", r.BestTime.TimeString()},
		{"Best moves", r.BestMoves.String()},
		{"Games played", fmt.Sprintf("%d", r.GamesPlayed)},
	}
	for _, row := range rows {
		b.WriteString(st.text.Render(fmt.Sprintf("%-13s %s", row[0], row[1])))
		b.WriteString("\n")
	}

	if r.NewBestTime() || r.NewBestMoves() {
		b.WriteString("\n")
		b.WriteString(st.accent.Render("New personal best!"))
		b.WriteString("\n")
	}

	if len(r.Achievements) > 0 {
		b.WriteString("\n")
		for _, a := range r.Achievements {
			b.WriteString(st.accent.Render("🏆 " + a.Title()))
			b.WriteString("  ")
			b.WriteString(st.muted.Render(a.Description()))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(st.muted.Render("r: play again  ·  esc: menu  ·  q: quit"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(st.cursor).
		Padding(1, 3).
		Render(b.String())
}

// Engine exposes the engine driving this screen.
func (m GameModel) Engine() *memory.Engine {
	return m.engine
}

// LastGameID returns the history ID of the last game finished on this
// board, or "" when none was recorded.
func (m GameModel) LastGameID() string {
	if m.history == nil {
		return ""
	}
	return m.history.LastID()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// WantsStats returns true if user requested the stats screen.
func (m GameModel) WantsStats() bool {
	return m.wantsStats
}

// Run starts a single game in its own Bubble Tea program.
// It returns when the player quits or leaves the board.
func Run(opts Options, d memory.Difficulty, themeID string) error {
	model, err := NewGameModel(opts, d, themeID)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		exitOnLeave{model},
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}

// exitOnLeave quits the program when the game screen asks to navigate away.
type exitOnLeave struct {
	GameModel
}

func (e exitOnLeave) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := e.GameModel.Update(msg)
	gm := next.(GameModel)
	if gm.BackToMenu() || gm.WantsStats() {
		return exitOnLeave{gm}, tea.Quit
	}
	return exitOnLeave{gm}, cmd
}
