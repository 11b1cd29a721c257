package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

// Grid returns the configured grid for d.
func (c Config) Grid(d memory.Difficulty) memory.Grid {
	switch d {
	case memory.Easy:
		return c.Grids.Easy
	case memory.Medium:
		return c.Grids.Medium
	case memory.Hard:
		return c.Grids.Hard
	default:
		return memory.Grid{}
	}
}

// ToEngine converts the file config into engine rules.
func (c Config) ToEngine() memory.Rules {
	grids := make(map[memory.Difficulty]memory.Grid, 3)
	for _, d := range memory.Difficulties() {
		grids[d] = c.Grid(d)
	}
	return memory.Rules{
		Grids:        grids,
		ResolveDelay: millis(c.Timing.ResolveDelayMS),
		StreakWindow: millis(c.Timing.StreakWindowMS),
		SpeedDemon:   time.Duration(c.Achievements.SpeedDemonSeconds) * time.Second,
	}
}

// TickInterval returns the timer refresh cadence.
func (c Config) TickInterval() time.Duration {
	if c.Timing.TickIntervalMS <= 0 {
		return time.Second
	}
	return millis(c.Timing.TickIntervalMS)
}

// DefaultDifficulty parses the configured starting difficulty.
func (c Config) DefaultDifficulty() (memory.Difficulty, error) {
	return memory.ParseDifficulty(c.Defaults.Difficulty)
}

// Validate checks the config for values the engine cannot run with.
// All problems are reported together.
func (c Config) Validate() error {
	var errs []error

	for _, d := range memory.Difficulties() {
		g := c.Grid(d)
		if g.Rows < 1 || g.Cols < 1 || g.Rows*g.Cols < 2 {
			errs = append(errs, fmt.Errorf("grids.%s: %s cannot hold a pair", d, g))
		}
	}

	if c.Timing.ResolveDelayMS < 0 {
		errs = append(errs, errors.New("timing.resolve_delay_ms must not be negative"))
	}
	if c.Timing.StreakWindowMS <= 0 {
		errs = append(errs, errors.New("timing.streak_window_ms must be positive"))
	}
	if c.Timing.TickIntervalMS <= 0 {
		errs = append(errs, errors.New("timing.tick_interval_ms must be positive"))
	}
	if c.Achievements.SpeedDemonSeconds <= 0 {
		errs = append(errs, errors.New("achievements.speed_demon_seconds must be positive"))
	}

	if _, err := c.DefaultDifficulty(); err != nil {
		errs = append(errs, fmt.Errorf("defaults.difficulty: %w", err))
	}
	if !registry.Exists(c.Defaults.Theme) {
		errs = append(errs, fmt.Errorf("defaults.theme: unknown theme %q", c.Defaults.Theme))
	}

	if len(errs) == 0 {
		if err := c.ToEngine().Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
