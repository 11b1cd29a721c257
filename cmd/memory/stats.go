package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var (
	flagPlayer      string
	flagInteractive bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show personal bests and achievements",
	Long: `Display games played, best time and moves per difficulty, unlocked
achievements and the most recent games.

Examples:
  memory stats
  memory stats --interactive
  memory stats --player alice   # stats of an SSH user`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&flagPlayer, "player", storage.LocalPlayer, "Player whose stats to show")
	statsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the stats screen")
}

func runStats(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger(flagInteractive)
	defer closeLog()

	store := mustOpenStore(cfg)
	defer store.Close()

	opts := options(cfg, store, logger)
	opts.Player = flagPlayer
	stats := opts.LoadStats()

	if flagInteractive {
		if _, err := tui.RunScoreboard(store, opts.HistoryPlayer(), stats, opts.Runtime.ScreenW, opts.Runtime.ScreenH); err != nil {
			fail("%v", err)
		}
		return
	}

	fmt.Printf("Player: %s\n", opts.HistoryPlayer())
	fmt.Printf("Games played: %d\n", stats.GamesPlayed)
	fmt.Println()

	summary, err := store.Summary(opts.HistoryPlayer())
	if err != nil {
		fail("reading history: %v", err)
	}

	fmt.Printf("  %-8s  %-9s  %-10s  %-6s  %s\n", "Level", "Best time", "Best moves", "Games", "Avg acc")
	fmt.Printf("  %-8s  %-9s  %-10s  %-6s  %s\n", "-----", "---------", "----------", "-----", "-------")
	for _, d := range memory.Difficulties() {
		games, acc := 0, "-"
		if s, ok := summary[d]; ok {
			games = s.Games
			acc = fmt.Sprintf("%.0f%%", s.AvgAccuracy)
		}
		fmt.Printf("  %-8s  %-9s  %-10s  %-6d  %s\n",
			d, stats.BestTimes[d].TimeString(), stats.BestMoves[d].String(), games, acc)
	}

	fmt.Println()
	fmt.Println("Achievements:")
	for _, a := range memory.AllAchievements() {
		mark := "  "
		if stats.Achievements.Has(a) {
			mark = "🏆"
		}
		fmt.Printf("  %s %-20s %s\n", mark, a.Title(), a.Description())
	}

	recent, err := store.RecentGames(opts.HistoryPlayer(), 5)
	if err != nil {
		fail("reading history: %v", err)
	}
	if len(recent) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent games:")
	for _, g := range recent {
		fmt.Printf("  %s  %-6s  %-8s  %s  %3d moves  %3d%%\n",
			g.CreatedAt.Format("2006-01-02 15:04"), g.Difficulty, g.Theme,
			memory.FormatSeconds(g.Seconds), g.Moves, g.Accuracy)
	}
}
