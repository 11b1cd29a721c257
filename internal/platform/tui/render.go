package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/memory"
)

// A symbol is padded to symbolWidth cells inside a bordered box.
const (
	symbolWidth = 2
	faceDown    = "??"
)

// boardStyles holds the lipgloss styles derived from a theme palette.
type boardStyles struct {
	hidden  lipgloss.Style
	flipped lipgloss.Style
	matched lipgloss.Style
	cursor  lipgloss.Color
	border  lipgloss.Color
	title   lipgloss.Style
	text    lipgloss.Style
	accent  lipgloss.Style
	muted   lipgloss.Style
}

func newBoardStyles(p core.Palette) boardStyles {
	p = p.OrDefault()
	base := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return boardStyles{
		hidden: base.
			Foreground(lipgloss.Color(p.Text)).
			Background(lipgloss.Color(p.Secondary)),
		flipped: base.
			Foreground(lipgloss.Color(p.Text)).
			Background(lipgloss.Color(p.Highlight)),
		matched: base.
			Foreground(lipgloss.Color(p.Text)).
			Background(lipgloss.Color(p.Accent)).
			Faint(true),
		cursor: lipgloss.Color(p.Highlight),
		border: lipgloss.Color(p.Primary),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Highlight)),
		text:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)),
		accent: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Highlight)),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// padSymbol pads or truncates s to exactly symbolWidth terminal cells.
func padSymbol(s string) string {
	if runewidth.StringWidth(s) > symbolWidth {
		s = runewidth.Truncate(s, symbolWidth, "")
	}
	return runewidth.FillRight(s, symbolWidth)
}

// renderTile draws one tile.
func (st boardStyles) renderTile(symbol string, faceUp, matched, selected bool) string {
	style := st.hidden
	face := faceDown
	switch {
	case matched:
		style = st.matched
		face = symbol
	case faceUp:
		style = st.flipped
		face = symbol
	}

	if selected {
		style = style.BorderStyle(lipgloss.ThickBorder()).BorderForeground(st.cursor)
	} else {
		style = style.BorderForeground(st.border)
	}

	return style.Render(padSymbol(face))
}

// RenderBoard draws the grid for snap with the cursor on tile cursor.
func RenderBoard(snap memory.Snapshot, p core.Palette, cursor int) string {
	st := newBoardStyles(p)
	cols := snap.Grid.Cols
	if cols <= 0 || len(snap.Tiles) == 0 {
		return ""
	}

	var rows []string
	for start := 0; start < len(snap.Tiles); start += cols {
		end := core.Min(start+cols, len(snap.Tiles))
		cells := make([]string, 0, cols)
		for i := start; i < end; i++ {
			matched := i < len(snap.Matched) && snap.Matched[i]
			cells = append(cells, st.renderTile(snap.Tiles[i], snap.FaceUp(i), matched, i == cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// centerText centers text within given width, measuring in terminal cells.
func centerText(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// centerBlock centers every line of a multi-line block.
func centerBlock(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
