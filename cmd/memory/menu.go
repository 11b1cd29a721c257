package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick difficulty and theme interactively",
	Long: `Start in interactive menu mode.

Choose a difficulty and theme, play, and return to the menu when you
leave the board. Tab opens the stats screen from the menu or the board.

Controls:
  Up/Down/j/k     - Choose row
  Left/Right/h/l  - Change value
  Enter/Space     - Start game
  Tab             - Stats
  Q               - Quit

Examples:
  memory menu
  memory menu --db ./memory.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger(true)
	defer closeLog()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunSession(options(cfg, store, logger)); err != nil {
		fail("%v", err)
	}
}
