// Package config provides YAML/TOML configuration loading for the memory game:
// grid shapes per difficulty, timing, achievement thresholds, default
// selections and storage locations.
package config

import "github.com/vovakirdan/tui-memory/internal/memory"

// Config is the complete file configuration.
type Config struct {
	Grids        GridsConfig        `yaml:"grids" toml:"grids"`
	Timing       TimingConfig       `yaml:"timing" toml:"timing"`
	Achievements AchievementsConfig `yaml:"achievements" toml:"achievements"`
	Defaults     DefaultsConfig     `yaml:"defaults" toml:"defaults"`
	Storage      StorageConfig      `yaml:"storage" toml:"storage"`

	// Source is the file the config was read from, or "embedded"/"builtin".
	Source string `yaml:"-" toml:"-"`
}

// GridsConfig maps each difficulty to a board shape.
type GridsConfig struct {
	Easy   memory.Grid `yaml:"easy" toml:"easy"`
	Medium memory.Grid `yaml:"medium" toml:"medium"`
	Hard   memory.Grid `yaml:"hard" toml:"hard"`
}

// TimingConfig defines the engine's delays, in milliseconds.
type TimingConfig struct {
	ResolveDelayMS int `yaml:"resolve_delay_ms" toml:"resolve_delay_ms"` // how long a revealed pair stays up
	StreakWindowMS int `yaml:"streak_window_ms" toml:"streak_window_ms"` // max gap between streak matches
	TickIntervalMS int `yaml:"tick_interval_ms" toml:"tick_interval_ms"` // timer refresh cadence
}

// AchievementsConfig defines achievement thresholds.
type AchievementsConfig struct {
	SpeedDemonSeconds int `yaml:"speed_demon_seconds" toml:"speed_demon_seconds"`
}

// DefaultsConfig defines the selection a new player starts with.
type DefaultsConfig struct {
	Difficulty string `yaml:"difficulty" toml:"difficulty"`
	Theme      string `yaml:"theme" toml:"theme"`
}

// StorageConfig defines where stats and history are persisted.
type StorageConfig struct {
	DBPath   string `yaml:"db_path" toml:"db_path"`
	StatsKey string `yaml:"stats_key" toml:"stats_key"`
}
