package memory

import "time"

// StreakTracker counts consecutive matches that each land within Window of
// the previous one.
type StreakTracker struct {
	Window time.Duration

	count     int
	max       int
	lastMatch time.Time
	hasMatch  bool
}

// Hit records a match at now. It returns the current streak and whether the
// match extended an existing streak (as opposed to starting a new one).
func (t *StreakTracker) Hit(now time.Time) (count int, extended bool) {
	if t.hasMatch && now.Sub(t.lastMatch) < t.Window {
		t.count++
		extended = true
	} else {
		t.count = 1
	}

	if t.count > t.max {
		t.max = t.count
	}
	t.lastMatch = now
	t.hasMatch = true

	return t.count, extended
}

// Count returns the current streak.
func (t *StreakTracker) Count() int {
	return t.count
}

// Max returns the longest streak seen since the last Reset.
func (t *StreakTracker) Max() int {
	return t.max
}

// Reset clears the streak and forgets the previous match.
func (t *StreakTracker) Reset() {
	t.count = 0
	t.max = 0
	t.lastMatch = time.Time{}
	t.hasMatch = false
}
