package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-memory/internal/memory"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	grids := memory.DefaultGrids()
	return Config{
		Grids: GridsConfig{
			Easy:   grids[memory.Easy],
			Medium: grids[memory.Medium],
			Hard:   grids[memory.Hard],
		},
		Timing: TimingConfig{
			ResolveDelayMS: 1000,
			StreakWindowMS: 3000,
			TickIntervalMS: 1000,
		},
		Achievements: AchievementsConfig{
			SpeedDemonSeconds: 30,
		},
		Defaults: DefaultsConfig{
			Difficulty: string(memory.Medium),
			Theme:      "space",
		},
		Storage: StorageConfig{
			DBPath:   "~/.memory/memory.db",
			StatsKey: memory.DefaultStatsKey,
		},
		Source: "builtin",
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultMemoryYAML
}
