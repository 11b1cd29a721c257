package memory

import (
	"math/rand"
	"time"
)

// Phase is the state of the flip state machine.
type Phase int

const (
	PhaseIdle       Phase = iota // no unresolved tile face-up
	PhaseOneFlipped              // one tile face-up, waiting for its partner
	PhaseResolving               // two tiles face-up, input locked until resolution
	PhaseComplete                // every pair matched
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseOneFlipped:
		return "OneFlipped"
	case PhaseResolving:
		return "Resolving"
	case PhaseComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Session is one playthrough: the dealt tiles and everything that happened to them.
// It holds state only; timing and notifications are the Engine's job.
type Session struct {
	difficulty Difficulty
	theme      string
	grid       Grid
	tiles      []string

	flipped []int  // face-up, unresolved tile indices (0..2)
	matched []bool // matched[i] is true once tile i has been paired

	moves   int
	matches int
	streak  StreakTracker

	started   bool
	startedAt time.Time
	elapsed   time.Duration // frozen at completion

	locked   bool
	complete bool
}

// NewSession deals a fresh grid for the given difficulty from pool.
func NewSession(d Difficulty, theme string, grid Grid, pool []string, rng *rand.Rand, streakWindow time.Duration) (*Session, error) {
	tiles, err := Deal(pool, grid.Pairs(), rng)
	if err != nil {
		return nil, err
	}

	return &Session{
		difficulty: d,
		theme:      theme,
		grid:       grid,
		tiles:      tiles,
		flipped:    make([]int, 0, 2),
		matched:    make([]bool, len(tiles)),
		streak:     StreakTracker{Window: streakWindow},
	}, nil
}

// Deal picks `pairs` distinct symbols from pool without replacement, puts
// each on two tiles and shuffles the result.
func Deal(pool []string, pairs int, rng *rand.Rand) ([]string, error) {
	if pairs < 1 {
		return nil, ErrInvalidGrid
	}
	if len(pool) < pairs {
		return nil, ErrSymbolPoolTooSmall
	}

	symbols := append([]string(nil), pool...)
	shuffle(symbols, rng)
	symbols = symbols[:pairs]

	tiles := make([]string, 0, 2*pairs)
	tiles = append(tiles, symbols...)
	tiles = append(tiles, symbols...)
	shuffle(tiles, rng)

	return tiles, nil
}

// shuffle is an in-place Fisher-Yates shuffle.
func shuffle(s []string, rng *rand.Rand) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

type flipOutcome int

const (
	flipRejected flipOutcome = iota
	flipFirst
	flipSecond
)

// flip turns tile index face-up if the state machine allows it.
func (s *Session) flip(index int, now time.Time) flipOutcome {
	if s.locked || s.complete {
		return flipRejected
	}
	if index < 0 || index >= len(s.tiles) {
		return flipRejected
	}
	if s.matched[index] || s.IsFlipped(index) {
		return flipRejected
	}

	if !s.started {
		s.started = true
		s.startedAt = now
	}

	s.flipped = append(s.flipped, index)
	if len(s.flipped) < 2 {
		return flipFirst
	}

	s.moves++
	s.locked = true
	return flipSecond
}

// resolution describes what happened to a face-up pair.
type resolution struct {
	First, Second  int
	Match          bool
	Streak         int
	StreakExtended bool
	Complete       bool
}

// resolve settles the two face-up tiles and unlocks input.
// It reports false if there was no pair to resolve.
func (s *Session) resolve(now time.Time) (resolution, bool) {
	if len(s.flipped) != 2 {
		return resolution{}, false
	}

	a, b := s.flipped[0], s.flipped[1]
	r := resolution{First: a, Second: b, Match: s.tiles[a] == s.tiles[b]}

	if r.Match {
		s.matched[a] = true
		s.matched[b] = true
		s.matches++
		r.Streak, r.StreakExtended = s.streak.Hit(now)
	}

	s.flipped = s.flipped[:0]
	s.locked = false

	if !s.complete && s.matches == s.TotalPairs() {
		s.complete = true
		s.elapsed = now.Sub(s.startedAt)
		r.Complete = true
	}

	return r, true
}

// Difficulty returns the difficulty the session was dealt for.
func (s *Session) Difficulty() Difficulty { return s.difficulty }

// Theme returns the ID of the theme the symbols came from.
func (s *Session) Theme() string { return s.theme }

// Grid returns the board shape.
func (s *Session) Grid() Grid { return s.grid }

// Tiles returns a copy of the dealt symbols in board order.
func (s *Session) Tiles() []string {
	return append([]string(nil), s.tiles...)
}

// Symbol returns the symbol on tile index, or "" if out of range.
func (s *Session) Symbol(index int) string {
	if index < 0 || index >= len(s.tiles) {
		return ""
	}
	return s.tiles[index]
}

// TotalPairs returns the number of pairs on the board.
func (s *Session) TotalPairs() int { return len(s.tiles) / 2 }

// Moves returns the number of completed flip-pairs.
func (s *Session) Moves() int { return s.moves }

// Matches returns the number of matched pairs.
func (s *Session) Matches() int { return s.matches }

// Streak returns the current streak.
func (s *Session) Streak() int { return s.streak.Count() }

// MaxStreak returns the longest streak of the session.
func (s *Session) MaxStreak() int { return s.streak.Max() }

// Started reports whether the first tile has been flipped.
func (s *Session) Started() bool { return s.started }

// Locked reports whether input is rejected while a pair resolves.
func (s *Session) Locked() bool { return s.locked }

// Complete reports whether every pair has been matched.
func (s *Session) Complete() bool { return s.complete }

// IsMatched reports whether tile index has been paired.
func (s *Session) IsMatched(index int) bool {
	return index >= 0 && index < len(s.matched) && s.matched[index]
}

// IsFlipped reports whether tile index is face-up and unresolved.
func (s *Session) IsFlipped(index int) bool {
	for _, i := range s.flipped {
		if i == index {
			return true
		}
	}
	return false
}

// Flipped returns a copy of the face-up, unresolved indices.
func (s *Session) Flipped() []int {
	return append([]int(nil), s.flipped...)
}

// Phase returns the current state machine phase.
func (s *Session) Phase() Phase {
	switch {
	case s.complete:
		return PhaseComplete
	case s.locked:
		return PhaseResolving
	case len(s.flipped) == 1:
		return PhaseOneFlipped
	default:
		return PhaseIdle
	}
}

// Elapsed returns the play time at now. The clock starts at the first flip
// and freezes on completion.
func (s *Session) Elapsed(now time.Time) time.Duration {
	switch {
	case s.complete:
		return s.elapsed
	case !s.started:
		return 0
	default:
		return now.Sub(s.startedAt)
	}
}

// Accuracy returns floor(total_pairs / moves * 100), or 0 before the first move.
func (s *Session) Accuracy() int {
	return Accuracy(s.TotalPairs(), s.moves)
}

// Accuracy computes floor(pairs / moves * 100).
func Accuracy(pairs, moves int) int {
	if moves <= 0 {
		return 0
	}
	return pairs * 100 / moves
}

// Snapshot is a read-only copy of a session, for renderers and tests.
type Snapshot struct {
	Difficulty Difficulty
	Theme      string
	Grid       Grid
	Tiles      []string
	Flipped    []int
	Matched    []bool
	Moves      int
	Matches    int
	TotalPairs int
	Streak     int
	MaxStreak  int
	Elapsed    time.Duration
	Started    bool
	Locked     bool
	Complete   bool
	Phase      Phase
}

// Snapshot captures the session state at now.
func (s *Session) Snapshot(now time.Time) Snapshot {
	return Snapshot{
		Difficulty: s.difficulty,
		Theme:      s.theme,
		Grid:       s.grid,
		Tiles:      s.Tiles(),
		Flipped:    s.Flipped(),
		Matched:    append([]bool(nil), s.matched...),
		Moves:      s.moves,
		Matches:    s.matches,
		TotalPairs: s.TotalPairs(),
		Streak:     s.streak.Count(),
		MaxStreak:  s.streak.Max(),
		Elapsed:    s.Elapsed(now),
		Started:    s.started,
		Locked:     s.locked,
		Complete:   s.complete,
		Phase:      s.Phase(),
	}
}

// FaceUp reports whether tile index shows its symbol (flipped or matched).
func (s Snapshot) FaceUp(index int) bool {
	if index >= 0 && index < len(s.Matched) && s.Matched[index] {
		return true
	}
	for _, i := range s.Flipped {
		if i == index {
			return true
		}
	}
	return false
}
