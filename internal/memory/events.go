package memory

import "time"

// Listener receives the engine's side effects. All methods are called on
// the goroutine driving the engine.
type Listener interface {
	// RenderGrid is called when a new grid has been dealt.
	RenderGrid(grid Grid, tiles []string)

	// Reveal is called when a tile turns face-up.
	Reveal(index int, symbol string)

	// Hide is called when a mismatched pair turns face-down again.
	Hide(first, second int)

	// Matched is called when a pair has been matched.
	Matched(first, second int)

	// StatsUpdated is called whenever the move or match count may have changed.
	StatsUpdated(moves, matches int)

	// Streak is called when a match extends a streak.
	Streak(count int)

	// Tick is called by Engine.Tick with the elapsed play time.
	Tick(minutes, seconds int)

	// Completed is called exactly once per session, when the last pair matches.
	Completed(r Result)
}

// NopListener ignores every event. Embed it to implement only the events you need.
type NopListener struct{}

func (NopListener) RenderGrid(Grid, []string) {}
func (NopListener) Reveal(int, string)        {}
func (NopListener) Hide(int, int)             {}
func (NopListener) Matched(int, int)          {}
func (NopListener) StatsUpdated(int, int)     {}
func (NopListener) Streak(int)                {}
func (NopListener) Tick(int, int)             {}
func (NopListener) Completed(Result)          {}

// Listeners fans every event out to each listener in order.
type Listeners []Listener

func (ls Listeners) RenderGrid(g Grid, tiles []string) {
	for _, l := range ls {
		l.RenderGrid(g, tiles)
	}
}

func (ls Listeners) Reveal(index int, symbol string) {
	for _, l := range ls {
		l.Reveal(index, symbol)
	}
}

func (ls Listeners) Hide(first, second int) {
	for _, l := range ls {
		l.Hide(first, second)
	}
}

func (ls Listeners) Matched(first, second int) {
	for _, l := range ls {
		l.Matched(first, second)
	}
}

func (ls Listeners) StatsUpdated(moves, matches int) {
	for _, l := range ls {
		l.StatsUpdated(moves, matches)
	}
}

func (ls Listeners) Streak(count int) {
	for _, l := range ls {
		l.Streak(count)
	}
}

func (ls Listeners) Tick(minutes, seconds int) {
	for _, l := range ls {
		l.Tick(minutes, seconds)
	}
}

func (ls Listeners) Completed(r Result) {
	for _, l := range ls {
		l.Completed(r)
	}
}

// Result summarises a completed session.
type Result struct {
	Difficulty Difficulty
	Theme      string
	Elapsed    time.Duration
	Moves      int
	TotalPairs int
	Accuracy   int // percent, floor(total_pairs / moves * 100)
	MaxStreak  int

	// Achievements lists what this session unlocked, in evaluation order.
	Achievements []Achievement

	// Bests for the difficulty after this session was recorded.
	BestTime  Best
	BestMoves Best

	GamesPlayed int
}

// Seconds returns the elapsed time in whole seconds.
func (r Result) Seconds() int {
	return int(r.Elapsed / time.Second)
}

// NewBestTime reports whether this session set the difficulty's best time.
func (r Result) NewBestTime() bool {
	return r.BestTime.Set && r.BestTime.Value == r.Seconds()
}

// NewBestMoves reports whether this session set the difficulty's best move count.
func (r Result) NewBestMoves() bool {
	return r.BestMoves.Set && r.BestMoves.Value == r.Moves
}
