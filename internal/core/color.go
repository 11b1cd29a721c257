package core

import "strings"

// Palette is the colour scheme attached to a theme.
// Values are "#rrggbb" hex strings so they can be handed to lipgloss as-is.
type Palette struct {
	Primary   string
	Secondary string
	Accent    string
	Highlight string
	Text      string
}

// DefaultPalette is used when a theme does not provide its own colours.
var DefaultPalette = Palette{
	Primary:   "#1a1a2e",
	Secondary: "#16213e",
	Accent:    "#0f3460",
	Highlight: "#e94560",
	Text:      "#f1f1f1",
}

// Valid reports whether every colour in the palette is a well-formed hex code.
func (p Palette) Valid() bool {
	for _, c := range []string{p.Primary, p.Secondary, p.Accent, p.Highlight, p.Text} {
		if !IsHexColor(c) {
			return false
		}
	}
	return true
}

// OrDefault fills empty or malformed colours from DefaultPalette.
func (p Palette) OrDefault() Palette {
	pick := func(c, fallback string) string {
		if IsHexColor(c) {
			return c
		}
		return fallback
	}
	return Palette{
		Primary:   pick(p.Primary, DefaultPalette.Primary),
		Secondary: pick(p.Secondary, DefaultPalette.Secondary),
		Accent:    pick(p.Accent, DefaultPalette.Accent),
		Highlight: pick(p.Highlight, DefaultPalette.Highlight),
		Text:      pick(p.Text, DefaultPalette.Text),
	}
}

// IsHexColor reports whether s looks like "#rgb" or "#rrggbb".
func IsHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	for _, r := range strings.ToLower(hex) {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
