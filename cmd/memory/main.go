// memory is a tile-matching memory game for the terminal.
//
// Usage:
//
//	memory play              - Play one board
//	memory menu              - Pick difficulty and theme interactively
//	memory stats             - Show personal bests and achievements
//	memory scores [level]    - Show the fastest recorded games
//	memory themes            - List available tile themes
//	memory serve             - Start SSH server for remote play
//	memory reset-stats       - Forget bests and achievements
//
// Global flags:
//
//	--config <path>     - Config file (.yaml or .toml)
//	--db <path>         - Database path (default: from config, ~/.memory/memory.db)
//	--seed <value>      - RNG seed for reproducible layouts
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/storage"

	// Register the built-in themes
	_ "github.com/vovakirdan/tui-memory/internal/themes"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Memory Match - find every pair in your terminal",
	Long: `Memory Match is a terminal tile-matching game. Flip two tiles at a
time, match every pair, and beat your best time and move count.

Available commands:
  play         - Play a single board
  menu         - Interactive difficulty and theme picker
  stats        - Personal bests and achievements
  scores       - Fastest recorded games
  themes       - List tile themes
  serve        - Start SSH server for remote play
  reset-stats  - Forget bests and achievements

Examples:
  memory play --difficulty hard --theme animals
  memory menu
  memory scores easy
  memory serve --addr :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (default from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetStatsCmd)
}

// fail prints the error the way every command reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig reads and validates the config, applying --db.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	return cfg
}

// newLogger builds the process logger. Interactive screens must not write
// to the terminal, so without --log-file they discard logs.
func newLogger(interactive bool) (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fail("invalid --log-level %q", flagLogLevel)
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			fail("cannot open log file: %v", openErr)
		}
		w = f
		closer = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "memory",
		Level:           level,
	})
	return logger, closer
}

// runtimeConfig sizes the initial screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the database, or returns nil and warns when it cannot.
// The game still works without storage; stats just are not kept.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("could not open database", "path", cfg.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

// mustOpenStore opens the database or exits.
func mustOpenStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fail("opening database: %v", err)
	}
	return store
}

// options assembles the screen options for the local player.
func options(cfg config.Config, store *storage.Store, logger *log.Logger) tui.Options {
	return tui.Options{
		Config:  cfg,
		Runtime: runtimeConfig(),
		Store:   store,
		Player:  storage.LocalPlayer,
		Logger:  logger,
	}
}
