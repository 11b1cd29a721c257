// Package memory implements the memory-matching game engine: grid dealing,
// the flip/resolve state machine, streaks, completion scoring and persisted
// player statistics with achievements.
//
// The engine has no UI or storage dependencies. It is driven by a
// presentation layer through Init/Flip/Reset/Tick and reports back through a
// Listener; statistics persist through a KVStore.
package memory

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty selects the grid shape.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties returns every defined difficulty, easiest first.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Valid reports whether d is one of the defined difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// String returns the difficulty identifier.
func (d Difficulty) String() string {
	return string(d)
}

// Title returns a capitalised display name.
func (d Difficulty) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// ErrUnknownDifficulty is returned for difficulty names outside Difficulties().
var ErrUnknownDifficulty = errors.New("memory: unknown difficulty")

// ParseDifficulty converts a user-supplied name into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("%w %q", ErrUnknownDifficulty, s)
	}
	return d, nil
}

// Grid is a board shape.
type Grid struct {
	Rows int `json:"rows" yaml:"rows" toml:"rows"`
	Cols int `json:"cols" yaml:"cols" toml:"cols"`
}

// Pairs returns floor(rows*cols/2), the number of pairs dealt on this grid.
func (g Grid) Pairs() int {
	return g.Rows * g.Cols / 2
}

// Tiles returns the number of tiles actually dealt (2 * Pairs).
// On an odd-sized grid the last cell stays empty.
func (g Grid) Tiles() int {
	return 2 * g.Pairs()
}

// String formats the grid as "RxC".
func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Rows, g.Cols)
}

// DefaultGrids returns the built-in difficulty to grid mapping.
func DefaultGrids() map[Difficulty]Grid {
	return map[Difficulty]Grid{
		Easy:   {Rows: 3, Cols: 4},
		Medium: {Rows: 4, Cols: 4},
		Hard:   {Rows: 4, Cols: 5},
	}
}
