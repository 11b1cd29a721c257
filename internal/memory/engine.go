package memory

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/registry"
)

// ErrUnknownTheme is returned for theme IDs that are not registered.
var ErrUnknownTheme = errors.New("memory: unknown theme")

// Config wires an Engine to its collaborators. Zero values get defaults.
type Config struct {
	Rules Rules

	// Difficulty and Theme are the initial selections.
	Difficulty Difficulty // default Medium
	Theme      string     // default: first registered theme

	// StatsKey is the KV key of the stats blob (default DefaultStatsKey).
	StatsKey string

	Rand      *rand.Rand  // default: seeded from the current time
	Clock     Clock       // default: SystemClock
	Scheduler Scheduler   // default: ImmediateScheduler
	Listener  Listener    // default: NopListener
	Logger    *log.Logger // default: discard
}

// Engine owns the current Session and the player's stats.
//
// Engine is not safe for concurrent use. All calls, including scheduled
// continuations, must happen on one goroutine.
type Engine struct {
	rules      Rules
	difficulty Difficulty
	theme      string

	rng      *rand.Rand
	clock    Clock
	sched    Scheduler
	listener Listener
	logger   *log.Logger

	repo  StatsRepo
	stats PlayerStats

	session *Session

	// generation invalidates scheduled resolutions from a discarded session.
	generation    uint64
	cancelPending func()
}

// New creates an engine and loads the player's stats from kv.
// A nil kv keeps stats in memory only.
func New(cfg Config, kv KVStore) (*Engine, error) {
	rules := cfg.Rules.withDefaults()
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		rules:      rules,
		difficulty: cfg.Difficulty,
		theme:      cfg.Theme,
		rng:        cfg.Rand,
		clock:      cfg.Clock,
		sched:      cfg.Scheduler,
		listener:   cfg.Listener,
		logger:     cfg.Logger,
	}

	if e.difficulty == "" {
		e.difficulty = Medium
	}
	if !e.difficulty.Valid() {
		return nil, fmt.Errorf("%w %q", ErrUnknownDifficulty, e.difficulty)
	}
	if e.theme == "" {
		if ids := registry.IDs(); len(ids) > 0 {
			e.theme = ids[0]
		}
	}
	if !registry.Exists(e.theme) {
		return nil, fmt.Errorf("%w %q", ErrUnknownTheme, e.theme)
	}

	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.clock == nil {
		e.clock = SystemClock{}
	}
	if e.sched == nil {
		e.sched = ImmediateScheduler{}
	}
	if e.listener == nil {
		e.listener = NopListener{}
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	if kv == nil {
		kv = NewMemoryKV()
	}

	e.repo = NewStatsRepo(kv, cfg.StatsKey)
	e.stats = e.loadStats()

	return e, nil
}

// loadStats reads the stats blob. Storage problems are logged and replaced by defaults.
func (e *Engine) loadStats() PlayerStats {
	stats, found, err := e.repo.Load()
	switch {
	case err != nil:
		e.logger.Debug("using default player stats", "key", e.repo.Key, "error", err)
	case !found:
		e.logger.Debug("no saved player stats", "key", e.repo.Key)
	}
	return stats
}

// refreshStats adopts the stored record when one is readable. Another
// engine on the same key may have saved since this one loaded.
func (e *Engine) refreshStats() {
	stats, found, err := e.repo.Load()
	if err != nil || !found {
		return
	}
	e.stats = stats
}

// Init deals a new session for the given difficulty and theme and makes
// them the current selection.
func (e *Engine) Init(d Difficulty, theme string) error {
	if err := e.SetDifficulty(d); err != nil {
		return err
	}
	if err := e.SetTheme(theme); err != nil {
		return err
	}
	return e.deal()
}

// Reset abandons the current session and deals a new one with the current selection.
// A pending resolution of the old session is cancelled.
func (e *Engine) Reset() error {
	return e.deal()
}

// SetDifficulty selects the difficulty for the next Init or Reset.
func (e *Engine) SetDifficulty(d Difficulty) error {
	if !d.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownDifficulty, d)
	}
	e.difficulty = d
	return nil
}

// SetTheme selects the theme for the next Init or Reset.
func (e *Engine) SetTheme(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("%w %q", ErrUnknownTheme, id)
	}
	e.theme = id
	return nil
}

func (e *Engine) deal() error {
	e.cancel()

	grid, err := e.rules.Grid(e.difficulty)
	if err != nil {
		return err
	}
	theme, err := registry.Get(e.theme)
	if err != nil {
		return fmt.Errorf("%w %q", ErrUnknownTheme, e.theme)
	}

	s, err := NewSession(e.difficulty, theme.ID, grid, theme.Symbols, e.rng, e.rules.StreakWindow)
	if err != nil {
		return fmt.Errorf("memory: deal %s/%s: %w", e.difficulty, theme.ID, err)
	}
	e.session = s

	e.logger.Debug("dealt new grid", "difficulty", e.difficulty, "theme", theme.ID, "grid", grid.String())

	e.listener.RenderGrid(grid, s.Tiles())
	e.listener.StatsUpdated(0, 0)
	return nil
}

// cancel drops any scheduled resolution.
func (e *Engine) cancel() {
	e.generation++
	if e.cancelPending != nil {
		e.cancelPending()
		e.cancelPending = nil
	}
}

// Flip turns tile index face-up. It returns false, and does nothing, when
// input is locked, the tile is already face-up or matched, or index is out
// of range.
func (e *Engine) Flip(index int) bool {
	s := e.session
	if s == nil {
		return false
	}

	outcome := s.flip(index, e.clock.Now())
	if outcome == flipRejected {
		return false
	}

	e.listener.Reveal(index, s.tiles[index])
	if outcome == flipFirst {
		return true
	}

	e.listener.StatsUpdated(s.moves, s.matches)

	gen := e.generation
	e.cancelPending = e.sched.After(e.rules.ResolveDelay, func() {
		if gen != e.generation || s != e.session {
			return
		}
		e.cancelPending = nil
		e.resolve(s)
	})
	return true
}

// resolve settles the face-up pair once the resolution delay has passed.
func (e *Engine) resolve(s *Session) {
	r, ok := s.resolve(e.clock.Now())
	if !ok {
		return
	}

	if r.Match {
		e.listener.Matched(r.First, r.Second)
		if r.StreakExtended {
			e.listener.Streak(r.Streak)
		}
	} else {
		e.listener.Hide(r.First, r.Second)
	}
	e.listener.StatsUpdated(s.moves, s.matches)

	if r.Complete {
		e.complete(s)
	}
}

// complete records the finished session and announces the result.
func (e *Engine) complete(s *Session) {
	c := Completion{
		Difficulty: s.difficulty,
		Theme:      s.theme,
		Elapsed:    s.elapsed,
		Moves:      s.moves,
		TotalPairs: s.TotalPairs(),
	}

	e.refreshStats()
	unlocked := e.stats.Record(c, e.achievementRules())

	if err := e.repo.Save(e.stats); err != nil {
		e.logger.Warn("could not save player stats", "key", e.repo.Key, "error", err)
	}

	result := Result{
		Difficulty:   s.difficulty,
		Theme:        s.theme,
		Elapsed:      s.elapsed,
		Moves:        s.moves,
		TotalPairs:   s.TotalPairs(),
		Accuracy:     s.Accuracy(),
		MaxStreak:    s.MaxStreak(),
		Achievements: unlocked,
		BestTime:     e.stats.BestTimes[s.difficulty],
		BestMoves:    e.stats.BestMoves[s.difficulty],
		GamesPlayed:  e.stats.GamesPlayed,
	}

	e.logger.Info("game complete",
		"difficulty", result.Difficulty,
		"theme", result.Theme,
		"time", FormatDuration(result.Elapsed),
		"moves", result.Moves,
		"accuracy", result.Accuracy,
		"unlocked", len(unlocked),
	)

	e.listener.Completed(result)
}

func (e *Engine) achievementRules() AchievementRules {
	return AchievementRules{
		SpeedDemon:   e.rules.SpeedDemon,
		Themes:       registry.IDs(),
		Difficulties: Difficulties(),
	}
}

// Tick reports the elapsed play time to the listener. The presentation
// layer calls it on a fixed cadence; the value is always computed from the
// start time, so late or missed ticks self-correct.
func (e *Engine) Tick() {
	s := e.session
	if s == nil || !s.started || s.complete {
		return
	}
	m, sec := SplitDuration(s.Elapsed(e.clock.Now()))
	e.listener.Tick(m, sec)
}

// Session returns a snapshot of the current session, or the zero Snapshot
// before the first Init.
func (e *Engine) Session() Snapshot {
	if e.session == nil {
		return Snapshot{}
	}
	return e.session.Snapshot(e.clock.Now())
}

// HasSession reports whether a grid has been dealt.
func (e *Engine) HasSession() bool {
	return e.session != nil
}

// Difficulty returns the selected difficulty.
func (e *Engine) Difficulty() Difficulty { return e.difficulty }

// Theme returns the selected theme ID.
func (e *Engine) Theme() string { return e.theme }

// Rules returns the rule set in use.
func (e *Engine) Rules() Rules { return e.rules }

// Stats returns a copy of the player's stats.
func (e *Engine) Stats() PlayerStats {
	return e.stats.Clone()
}

// ResetStats replaces the player's stats with defaults and persists them.
func (e *Engine) ResetStats() error {
	e.stats = DefaultStats()
	return e.repo.Save(e.stats)
}
