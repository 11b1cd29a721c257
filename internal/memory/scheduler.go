package memory

import "time"

// Clock supplies wall-clock timestamps to the engine.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Scheduler runs continuations after a delay on the engine's own goroutine.
// After returns a cancel function; calling it after the continuation ran
// is a no-op. Implementations must never run fn concurrently with other
// engine calls.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

// ImmediateScheduler runs every continuation synchronously, ignoring the
// delay. It models a zero resolution delay.
type ImmediateScheduler struct{}

// After runs fn right away.
func (ImmediateScheduler) After(_ time.Duration, fn func()) func() {
	fn()
	return func() {}
}

// ManualScheduler queues continuations until the caller runs them.
// Drivers that own their event loop (and tests) use it to decide exactly
// when a resolution fires.
type ManualScheduler struct {
	tasks []*scheduledTask
}

type scheduledTask struct {
	delay     time.Duration
	fn        func()
	cancelled bool
}

// After queues fn and returns a function that removes it from the queue.
func (m *ManualScheduler) After(d time.Duration, fn func()) func() {
	task := &scheduledTask{delay: d, fn: fn}
	m.tasks = append(m.tasks, task)
	return func() {
		task.cancelled = true
	}
}

// Pending returns the number of queued, uncancelled continuations.
func (m *ManualScheduler) Pending() int {
	n := 0
	for _, t := range m.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// NextDelay returns the delay of the oldest pending continuation.
func (m *ManualScheduler) NextDelay() (time.Duration, bool) {
	for _, t := range m.tasks {
		if !t.cancelled {
			return t.delay, true
		}
	}
	return 0, false
}

// RunPending runs every continuation queued so far, in order, and returns
// how many ran. Continuations queued while running wait for the next call.
func (m *ManualScheduler) RunPending() int {
	batch := m.tasks
	m.tasks = nil

	ran := 0
	for _, t := range batch {
		if t.cancelled {
			continue
		}
		t.cancelled = true
		t.fn()
		ran++
	}
	return ran
}
