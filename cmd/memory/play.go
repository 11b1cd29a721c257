package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

var (
	flagDifficulty string
	flagTheme      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one board",
	Long: `Deal a board and play it.

Controls:
  Arrows/hjkl   - Move cursor
  Space/Enter   - Flip tile
  R             - New game
  Esc/B         - Leave
  Q/Ctrl+C      - Quit

Difficulty options (default from config):
  easy    - 3x4 grid, 6 pairs
  medium  - 4x4 grid, 8 pairs
  hard    - 4x5 grid, 10 pairs

Examples:
  memory play
  memory play --difficulty hard
  memory play --theme animals --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, medium, hard")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Tile theme (see 'memory themes')")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger(true)
	defer closeLog()

	d, err := cfg.DefaultDifficulty()
	if err != nil {
		fail("%v", err)
	}
	if flagDifficulty != "" {
		if d, err = memory.ParseDifficulty(flagDifficulty); err != nil {
			fail("%v", err)
		}
	}

	theme := cfg.Defaults.Theme
	if flagTheme != "" {
		theme = flagTheme
	}
	if !registry.Exists(theme) {
		fail("unknown theme %q\nRun 'memory themes' to see available themes.", theme)
	}

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	logger.Debug("starting game", "difficulty", d, "theme", theme, "seed", flagSeed)
	if err := tui.Run(options(cfg, store, logger), d, theme); err != nil {
		fail("running game: %v", err)
	}
}
