package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var (
	flagClearHistory bool
	flagAllPlayers   bool
)

var resetStatsCmd = &cobra.Command{
	Use:   "reset-stats",
	Short: "Forget bests and achievements",
	Long: `Overwrite the stored stats with fresh defaults: no games played, no
best times or moves, nothing unlocked. Game history is kept unless
--history is given.

Examples:
  memory reset-stats
  memory reset-stats --history
  memory reset-stats --player alice
  memory reset-stats --all-players --history`,
	Args: cobra.NoArgs,
	Run:  runResetStats,
}

func init() {
	resetStatsCmd.Flags().BoolVar(&flagClearHistory, "history", false, "Also delete recorded games")
	resetStatsCmd.Flags().StringVar(&flagPlayer, "player", storage.LocalPlayer, "Player whose stats to reset")
	resetStatsCmd.Flags().BoolVar(&flagAllPlayers, "all-players", false, "Reset the local player and every SSH user")
}

func runResetStats(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger(false)
	defer closeLog()

	store := mustOpenStore(cfg)
	defer store.Close()

	if flagAllPlayers {
		resetAllPlayers(cfg.Storage.StatsKey, store, logger)
		return
	}

	opts := options(cfg, store, logger)
	opts.Player = flagPlayer

	engine, err := opts.NewEngine(nil, nil)
	if err != nil {
		store.Close()
		fail("%v", err)
	}
	if err := engine.ResetStats(); err != nil {
		store.Close()
		fail("%v", err)
	}

	if flagClearHistory {
		if err := store.ClearGames(opts.HistoryPlayer()); err != nil {
			store.Close()
			fail("clearing history: %v", err)
		}
	}

	logger.Info("stats reset", "player", opts.HistoryPlayer(), "key", opts.StatsKey(), "history", flagClearHistory)
	fmt.Printf("Stats for %s reset.\n", opts.HistoryPlayer())
}

// resetAllPlayers drops every stats record derived from base. Engines
// started afterwards begin from fresh defaults.
func resetAllPlayers(base string, store *storage.Store, logger *log.Logger) {
	if base == "" {
		base = memory.DefaultStatsKey
	}

	n, err := store.DeleteStats(base)
	if err != nil {
		store.Close()
		fail("%v", err)
	}

	if flagClearHistory {
		if err := store.ClearAllGames(); err != nil {
			store.Close()
			fail("clearing history: %v", err)
		}
	}

	logger.Info("stats reset", "records", n, "history", flagClearHistory)
	fmt.Printf("Stats reset for all players (%d records).\n", n)
}
