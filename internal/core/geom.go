// Package core provides fundamental types and utilities for the memory platform.
// It contains no external dependencies (especially no Bubble Tea) so the game
// engine and its tests stay pure.
package core

// Pos is a cell position on a rows x cols board.
type Pos struct {
	Row, Col int
}

// PosOf converts a linear tile index into a board position.
func PosOf(index, cols int) Pos {
	if cols <= 0 {
		return Pos{}
	}
	return Pos{Row: index / cols, Col: index % cols}
}

// Index converts the position back into a linear tile index.
func (p Pos) Index(cols int) int {
	return p.Row*cols + p.Col
}

// Move returns the position after applying a movement action.
// The cursor wraps around the edges of the board. Only the first `cells`
// indices are valid, so a move that would land past the last tile on an
// odd-sized board is clamped onto it.
func (p Pos) Move(a Action, rows, cols, cells int) Pos {
	if rows <= 0 || cols <= 0 || cells <= 0 {
		return p
	}

	switch a {
	case ActionUp:
		p.Row = Wrap(p.Row-1, rows)
	case ActionDown:
		p.Row = Wrap(p.Row+1, rows)
	case ActionLeft:
		p.Col = Wrap(p.Col-1, cols)
	case ActionRight:
		p.Col = Wrap(p.Col+1, cols)
	default:
		return p
	}

	if p.Index(cols) >= cells {
		return PosOf(cells-1, cols)
	}
	return p
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Wrap maps val into [0, n) with wrap-around in both directions.
func Wrap(val, n int) int {
	if n <= 0 {
		return 0
	}
	val %= n
	if val < 0 {
		val += n
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
