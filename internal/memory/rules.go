package memory

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-memory/internal/registry"
)

// Policy defaults. These are presentation-tuned values, overridable via Rules.
const (
	DefaultResolveDelay = time.Second
	DefaultStreakWindow = 3 * time.Second
	DefaultSpeedDemon   = 30 * time.Second
)

var (
	// ErrInvalidGrid is returned when a grid cannot hold at least one pair.
	ErrInvalidGrid = errors.New("memory: invalid grid")

	// ErrSymbolPoolTooSmall is returned when a theme cannot supply enough distinct symbols.
	ErrSymbolPoolTooSmall = errors.New("memory: symbol pool too small")
)

// Rules holds the tunable parameters of the game.
type Rules struct {
	// Grids maps each difficulty to its board shape.
	Grids map[Difficulty]Grid

	// ResolveDelay is how long a revealed pair stays face-up before it is
	// resolved. Zero resolves on the next scheduler turn.
	ResolveDelay time.Duration

	// StreakWindow is the maximum gap between consecutive matches that
	// still extends a streak.
	StreakWindow time.Duration

	// SpeedDemon is the completion time the speed-demon achievement must beat.
	SpeedDemon time.Duration
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{
		Grids:        DefaultGrids(),
		ResolveDelay: DefaultResolveDelay,
		StreakWindow: DefaultStreakWindow,
		SpeedDemon:   DefaultSpeedDemon,
	}
}

// Grid returns the grid for the given difficulty.
func (r Rules) Grid(d Difficulty) (Grid, error) {
	if !d.Valid() {
		return Grid{}, fmt.Errorf("%w %q", ErrUnknownDifficulty, d)
	}
	g, ok := r.Grids[d]
	if !ok {
		g = DefaultGrids()[d]
	}
	return g, nil
}

// MaxPairs returns the largest pair count across all difficulties.
func (r Rules) MaxPairs() int {
	maxPairs := 0
	for _, d := range Difficulties() {
		g, err := r.Grid(d)
		if err != nil {
			continue
		}
		if g.Pairs() > maxPairs {
			maxPairs = g.Pairs()
		}
	}
	return maxPairs
}

// Validate checks the rule set against the registered themes.
// Every theme must be able to supply the pairs of the largest grid.
func (r Rules) Validate() error {
	for _, d := range Difficulties() {
		g, err := r.Grid(d)
		if err != nil {
			return err
		}
		if g.Rows < 1 || g.Cols < 1 || g.Pairs() < 1 {
			return fmt.Errorf("%w: %s is %s", ErrInvalidGrid, d, g)
		}
	}

	if r.ResolveDelay < 0 || r.StreakWindow < 0 || r.SpeedDemon < 0 {
		return errors.New("memory: durations must not be negative")
	}

	if pool := registry.MinPoolSize(); registry.Count() > 0 && pool < r.MaxPairs() {
		return fmt.Errorf("%w: grids need %d symbols, smallest theme has %d",
			ErrSymbolPoolTooSmall, r.MaxPairs(), pool)
	}

	return nil
}

// withDefaults fills zero-valued fields from DefaultRules.
// ResolveDelay is left alone since zero is a meaningful value.
func (r Rules) withDefaults() Rules {
	def := DefaultRules()
	if r.Grids == nil {
		r.Grids = def.Grids
	}
	if r.StreakWindow == 0 {
		r.StreakWindow = def.StreakWindow
	}
	if r.SpeedDemon == 0 {
		r.SpeedDemon = def.SpeedDemon
	}
	return r
}
