// Package tui provides the Bubble Tea integration for the memory game.
// It handles the terminal UI loop, input mapping, and engine orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-memory/internal/memory"
)

// TickMsg is sent to refresh the game timer.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = time.Second
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// resolveMsg fires a continuation queued on a teaScheduler. IDs are only
// unique per scheduler, so the message names its owner.
type resolveMsg struct {
	sched *teaScheduler
	id    uint64
}

// teaScheduler implements memory.Scheduler on top of the Bubble Tea event
// loop. Continuations run from Update, on the program goroutine, so the
// engine is never touched concurrently.
type teaScheduler struct {
	nextID uint64
	tasks  map[uint64]func()
	queued []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{tasks: make(map[uint64]func())}
}

// After registers fn and queues a timer command for it. The command is
// handed to Bubble Tea by the next Drain.
func (s *teaScheduler) After(d time.Duration, fn func()) func() {
	s.nextID++
	id := s.nextID
	s.tasks[id] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return resolveMsg{sched: s, id: id}
	}))
	return func() {
		delete(s.tasks, id)
	}
}

// Run executes the continuation for msg. Messages from another scheduler
// and cancelled or already-run continuations are ignored.
func (s *teaScheduler) Run(msg resolveMsg) bool {
	if msg.sched != s {
		return false
	}
	fn, ok := s.tasks[msg.id]
	if !ok {
		return false
	}
	delete(s.tasks, msg.id)
	fn()
	return true
}

// Pending returns the number of continuations still waiting.
func (s *teaScheduler) Pending() int {
	return len(s.tasks)
}

// Drain returns the timer commands queued since the last call.
func (s *teaScheduler) Drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

var _ memory.Scheduler = (*teaScheduler)(nil)
