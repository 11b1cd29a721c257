package core

import "testing"

func TestPosMove(t *testing.T) {
	tests := []struct {
		name     string
		start    Pos
		action   Action
		rows     int
		cols     int
		cells    int
		expected Pos
	}{
		{"right within row", Pos{0, 0}, ActionRight, 3, 4, 12, Pos{0, 1}},
		{"right wraps", Pos{1, 3}, ActionRight, 3, 4, 12, Pos{1, 0}},
		{"left wraps", Pos{2, 0}, ActionLeft, 3, 4, 12, Pos{2, 3}},
		{"up wraps", Pos{0, 2}, ActionUp, 3, 4, 12, Pos{2, 2}},
		{"down wraps", Pos{2, 2}, ActionDown, 3, 4, 12, Pos{0, 2}},
		{"down onto missing cell clamps", Pos{1, 2}, ActionDown, 3, 3, 8, Pos{2, 1}},
		{"non-move action", Pos{1, 1}, ActionFlip, 3, 4, 12, Pos{1, 1}},
		{"empty board", Pos{0, 0}, ActionRight, 0, 0, 0, Pos{0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.start.Move(tc.action, tc.rows, tc.cols, tc.cells)
			if got != tc.expected {
				t.Errorf("Move(%v) = %v, expected %v", tc.action, got, tc.expected)
			}
		})
	}
}

func TestPosIndexRoundTrip(t *testing.T) {
	cols := 5
	for i := 0; i < 20; i++ {
		p := PosOf(i, cols)
		if p.Index(cols) != i {
			t.Errorf("PosOf(%d).Index() = %d", i, p.Index(cols))
		}
	}
	if PosOf(7, 0) != (Pos{}) {
		t.Error("PosOf with zero cols should return origin")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		val, n, expected int
	}{
		{0, 4, 0},
		{4, 4, 0},
		{-1, 4, 3},
		{-5, 4, 3},
		{9, 4, 1},
		{3, 0, 0},
	}

	for _, tc := range tests {
		if got := Wrap(tc.val, tc.n); got != tc.expected {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.val, tc.n, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestPalette(t *testing.T) {
	if !DefaultPalette.Valid() {
		t.Fatal("DefaultPalette should be valid")
	}

	p := Palette{Primary: "#fff", Secondary: "nope", Accent: "#12345g"}
	fixed := p.OrDefault()
	if fixed.Primary != "#fff" {
		t.Errorf("Primary = %q, expected #fff", fixed.Primary)
	}
	if fixed.Secondary != DefaultPalette.Secondary {
		t.Errorf("Secondary = %q, expected default", fixed.Secondary)
	}
	if fixed.Accent != DefaultPalette.Accent {
		t.Errorf("Accent = %q, expected default", fixed.Accent)
	}
	if !fixed.Valid() {
		t.Error("OrDefault() should always produce a valid palette")
	}
}
