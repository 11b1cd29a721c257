package tui

import (
	"testing"
	"time"
)

func TestTeaSchedulerRun(t *testing.T) {
	s := newTeaScheduler()
	ran := 0

	s.After(time.Second, func() { ran++ })
	if s.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", s.Pending())
	}

	if cmd := s.Drain(); cmd == nil {
		t.Fatal("Drain() = nil, want timer command")
	}
	if cmd := s.Drain(); cmd != nil {
		t.Error("second Drain() returned a command, want nil")
	}

	if !s.Run(resolveMsg{sched: s, id: 1}) {
		t.Fatal("Run() = false, want true")
	}
	if ran != 1 {
		t.Errorf("continuation ran %d times, want 1", ran)
	}
	if s.Run(resolveMsg{sched: s, id: 1}) {
		t.Error("Run() of a finished continuation = true, want false")
	}
	if ran != 1 {
		t.Errorf("continuation ran %d times after replay, want 1", ran)
	}
}

func TestTeaSchedulerCancel(t *testing.T) {
	s := newTeaScheduler()
	ran := false

	cancel := s.After(time.Second, func() { ran = true })
	cancel()

	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after cancel, want 0", s.Pending())
	}
	if s.Run(resolveMsg{sched: s, id: 1}) {
		t.Error("Run() of a cancelled continuation = true, want false")
	}
	if ran {
		t.Error("cancelled continuation ran")
	}

	// Cancelling twice is harmless.
	cancel()
}

func TestTeaSchedulerIDs(t *testing.T) {
	s := newTeaScheduler()
	var order []int

	s.After(time.Second, func() { order = append(order, 1) })
	s.After(time.Second, func() { order = append(order, 2) })

	s.Run(resolveMsg{sched: s, id: 2})
	s.Run(resolveMsg{sched: s, id: 1})

	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Errorf("order = %v, want [2 1]", order)
	}
}

func TestTeaSchedulerIgnoresOtherSchedulers(t *testing.T) {
	old := newTeaScheduler()
	old.After(time.Second, func() {})

	s := newTeaScheduler()
	ran := false
	s.After(time.Second, func() { ran = true })

	if s.Run(resolveMsg{sched: old, id: 1}) {
		t.Error("Run() accepted a message from another scheduler")
	}
	if ran || s.Pending() != 1 {
		t.Errorf("ran=%v pending=%d, want continuation still waiting", ran, s.Pending())
	}
	if !s.Run(resolveMsg{sched: s, id: 1}) || !ran {
		t.Error("own message should still run the continuation")
	}
}

func TestTickCmd(t *testing.T) {
	if tickCmd(0) == nil {
		t.Error("tickCmd(0) = nil, want command")
	}
	if tickCmd(time.Second) == nil {
		t.Error("tickCmd(1s) = nil, want command")
	}
}
