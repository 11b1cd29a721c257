package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/memory"
)

// LocalPlayer is the history owner for games played on the local terminal.
const LocalPlayer = "local"

// HistoryRecorder is a memory.Listener that appends every completed game
// to the games table. Failures are logged, never returned to the engine.
type HistoryRecorder struct {
	memory.NopListener

	store  *Store
	player string
	logger *log.Logger

	lastID string
}

// NewHistoryRecorder creates a recorder writing games for player.
func NewHistoryRecorder(store *Store, player string, logger *log.Logger) *HistoryRecorder {
	if player == "" {
		player = LocalPlayer
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &HistoryRecorder{store: store, player: player, logger: logger}
}

// Completed saves the finished game.
func (h *HistoryRecorder) Completed(r memory.Result) {
	id, err := h.store.SaveGame(RecordFromResult(h.player, r))
	if err != nil {
		h.logger.Warn("could not record game", "player", h.player, "error", err)
		return
	}
	h.lastID = id
	h.logger.Debug("recorded game", "id", id, "player", h.player, "difficulty", r.Difficulty)
}

// LastID returns the ID of the most recently recorded game.
func (h *HistoryRecorder) LastID() string {
	return h.lastID
}

var _ memory.Listener = (*HistoryRecorder)(nil)
