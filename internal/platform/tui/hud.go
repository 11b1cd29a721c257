package tui

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-memory/internal/memory"
)

// notificationTTL is how long a toast stays on screen.
const notificationTTL = 2 * time.Second

// hud is the engine listener backing the game screen. It keeps the
// counters, timer text, toasts and completion result the view renders.
// The engine calls it from Update, so no locking is needed.
type hud struct {
	now func() time.Time

	moves   int
	matches int
	timer   string

	note      string
	noteUntil time.Time

	result *memory.Result
}

func newHUD(now func() time.Time) *hud {
	if now == nil {
		now = time.Now
	}
	return &hud{now: now, timer: memory.FormatDuration(0)}
}

func (h *hud) RenderGrid(memory.Grid, []string) {
	h.moves, h.matches = 0, 0
	h.timer = memory.FormatDuration(0)
	h.note = ""
	h.result = nil
}

func (h *hud) Reveal(int, string) {}

func (h *hud) Hide(int, int) {
	h.notify("No match")
}

func (h *hud) Matched(int, int) {
	h.notify("Match!")
}

func (h *hud) StatsUpdated(moves, matches int) {
	h.moves, h.matches = moves, matches
}

func (h *hud) Streak(count int) {
	h.notify(fmt.Sprintf("🔥 %dx Streak!", count))
}

func (h *hud) Tick(minutes, seconds int) {
	h.timer = fmt.Sprintf("%02d:%02d", minutes, seconds)
}

func (h *hud) Completed(r memory.Result) {
	h.result = &r
	h.timer = memory.FormatDuration(r.Elapsed)
	h.note = ""
}

func (h *hud) notify(text string) {
	h.note = text
	h.noteUntil = h.now().Add(notificationTTL)
}

// Notification returns the active toast, if any.
func (h *hud) Notification() string {
	if h.note == "" || !h.now().Before(h.noteUntil) {
		return ""
	}
	return h.note
}

var _ memory.Listener = (*hud)(nil)
