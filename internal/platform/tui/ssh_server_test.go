package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/memory"
)

func TestSSHSessionOptions(t *testing.T) {
	s := &SSHServer{
		config: DefaultSSHServerConfig(),
		logger: log.New(io.Discard),
	}

	opts := s.sessionOptions("alice", 120, 40)

	if got, want := opts.StatsKey(), memory.DefaultStatsKey+":alice"; got != want {
		t.Errorf("StatsKey() = %q, want %q", got, want)
	}
	if got := opts.HistoryPlayer(); got != "alice" {
		t.Errorf("HistoryPlayer() = %q, want %q", got, "alice")
	}
	if opts.Runtime.ScreenW != 120 || opts.Runtime.ScreenH != 40 {
		t.Errorf("screen = %dx%d, want 120x40", opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	}
	if opts.Runtime.Seed == 0 {
		t.Error("each session should get its own seed")
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" {
		t.Errorf("Address = %q, want %q", cfg.Address, ":23234")
	}
	if cfg.Game.Storage.StatsKey != memory.DefaultStatsKey {
		t.Errorf("Game.Storage.StatsKey = %q, want %q", cfg.Game.Storage.StatsKey, memory.DefaultStatsKey)
	}
}
