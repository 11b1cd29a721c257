package tui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/memory"
)

func TestPadSymbol(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"A", "A "},
		{"🚀", "🚀"},
		{"abc", "ab"},
		{"", "  "},
	}

	for _, tt := range tests {
		got := padSymbol(tt.in)
		if got != tt.want {
			t.Errorf("padSymbol(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if w := runewidth.StringWidth(got); w != symbolWidth {
			t.Errorf("padSymbol(%q) width = %d, want %d", tt.in, w, symbolWidth)
		}
	}
}

func TestRenderBoard(t *testing.T) {
	snap := memory.Snapshot{
		Grid:    memory.Grid{Rows: 2, Cols: 2},
		Tiles:   []string{"X", "Y", "X", "Y"},
		Flipped: []int{0},
		Matched: []bool{false, true, false, true},
	}

	out := RenderBoard(snap, core.DefaultPalette, 2)

	if !strings.Contains(out, "X") {
		t.Error("board does not show the flipped tile")
	}
	if !strings.Contains(out, "Y") {
		t.Error("board does not show matched tiles")
	}
	if got := strings.Count(out, faceDown); got != 1 {
		t.Errorf("board shows %d hidden tiles, want 1", got)
	}
}

func TestRenderBoardEmpty(t *testing.T) {
	if got := RenderBoard(memory.Snapshot{}, core.DefaultPalette, 0); got != "" {
		t.Errorf("RenderBoard(empty) = %q, want empty", got)
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"🚀", 6, "  🚀"},
		{"abcdef", 4, "abcdef"},
	}

	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
