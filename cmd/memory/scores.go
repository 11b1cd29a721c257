package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show the fastest recorded games",
	Long: `Display the fastest completed games, ordered by time then moves.
Without an argument every difficulty is listed.

Examples:
  memory scores
  memory scores hard
  memory scores easy --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Games to show per difficulty")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", storage.LocalPlayer, "Player whose games to show")
}

func runScores(_ *cobra.Command, args []string) {
	difficulties := memory.Difficulties()
	if len(args) == 1 {
		d, err := memory.ParseDifficulty(args[0])
		if err != nil {
			fail("unknown difficulty %q (want easy, medium or hard)", args[0])
		}
		difficulties = []memory.Difficulty{d}
	}

	cfg := loadConfig()
	store := mustOpenStore(cfg)
	defer store.Close()

	for i, d := range difficulties {
		if i > 0 {
			fmt.Println()
		}
		games, err := store.TopGames(flagPlayer, d, flagLimit)
		if err != nil {
			store.Close()
			fail("retrieving games: %v", err)
		}
		printScores(d, games)
	}
}

func printScores(d memory.Difficulty, games []storage.GameRecord) {
	fmt.Printf("Fastest Games - %s\n", d.Title())
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Printf("Play 'memory play --difficulty %s' to set the first record!\n", d)
		return
	}

	fmt.Printf("  %-4s  %-5s  %-5s  %-4s  %-8s  %s\n", "Rank", "Time", "Moves", "Acc", "Theme", "Date")
	fmt.Printf("  %-4s  %-5s  %-5s  %-4s  %-8s  %s\n", "----", "----", "-----", "---", "-----", "----")
	for i, g := range games {
		fmt.Printf("  %-4d  %-5s  %-5d  %3d%%  %-8s  %s\n",
			i+1, memory.FormatSeconds(g.Seconds), g.Moves, g.Accuracy, g.Theme,
			g.CreatedAt.Format("2006-01-02 15:04"))
	}
}
