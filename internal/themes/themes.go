// Package themes registers the built-in tile themes.
// Import it for side effects wherever a registry lookup is needed.
package themes

import (
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

// Built-in theme identifiers.
const (
	Space    = "space"
	Animals  = "animals"
	Vehicles = "vehicles"
	Tools    = "tools"
	Flags    = "flags"
	Fruits   = "fruits"
	Sports   = "sports"
)

// Builtin returns the built-in theme definitions in menu order.
func Builtin() []registry.Theme {
	return []registry.Theme{
		{
			ID:           Space,
			Title:        "Cosmic Match",
			VictoryTitle: "Cosmic Victory!",
			Symbols:      []string{"🚀", "🪐", "🌟", "🌙", "🌎", "☄️", "👽", "🛸", "🌌", "🔭"},
			Palette: core.Palette{
				Primary:   "#1a1a2e",
				Secondary: "#16213e",
				Accent:    "#0f3460",
				Highlight: "#e94560",
				Text:      "#f1f1f1",
			},
		},
		{
			ID:           Animals,
			Title:        "Animal Match",
			VictoryTitle: "Wild Victory!",
			Symbols:      []string{"🐶", "🐱", "🐭", "🐹", "🐰", "🦊", "🐻", "🐼", "🐨", "🦁"},
			Palette: core.Palette{
				Primary:   "#2c3e50",
				Secondary: "#34495e",
				Accent:    "#16a085",
				Highlight: "#f1c40f",
				Text:      "#ffffff",
			},
		},
		{
			ID:           Vehicles,
			Title:        "Vehicle Match",
			VictoryTitle: "Racing Victory!",
			Symbols:      []string{"🚗", "🚕", "🚙", "🚌", "🚎", "🏎️", "🚓", "🚑", "🚒", "✈️"},
			Palette: core.Palette{
				Primary:   "#34495e",
				Secondary: "#2c3e50",
				Accent:    "#3498db",
				Highlight: "#e74c3c",
				Text:      "#ffffff",
			},
		},
		{
			ID:           Tools,
			Title:        "Tool Match",
			VictoryTitle: "Crafty Victory!",
			Symbols:      []string{"🔨", "🪓", "🔧", "🪛", "🔩", "⚙️", "🧰", "🔌", "💻", "📱"},
			Palette: core.Palette{
				Primary:   "#2d3436",
				Secondary: "#636e72",
				Accent:    "#74b9ff",
				Highlight: "#fdcb6e",
				Text:      "#ffffff",
			},
		},
		{
			ID:           Flags,
			Title:        "Flag Match",
			VictoryTitle: "Global Victory!",
			Symbols:      []string{"🇺🇸", "🇬🇧", "🇯🇵", "🇨🇦", "🇧🇷", "🇮🇳", "🇫🇷", "🇩🇪", "🇮🇹", "🇪🇸"},
			Palette: core.Palette{
				Primary:   "#2d3436",
				Secondary: "#636e72",
				Accent:    "#0984e3",
				Highlight: "#00b894",
				Text:      "#ffffff",
			},
		},
		{
			ID:           Fruits,
			Title:        "Fruit Match",
			VictoryTitle: "Juicy Victory!",
			Symbols:      []string{"🍎", "🍐", "🍊", "🍋", "🍌", "🍉", "🍇", "🍓", "🍒", "🥭"},
			Palette: core.Palette{
				Primary:   "#2c3e50",
				Secondary: "#34495e",
				Accent:    "#16a085",
				Highlight: "#f1c40f",
				Text:      "#ffffff",
			},
		},
		{
			ID:           Sports,
			Title:        "Sports Match",
			VictoryTitle: "Champion Victory!",
			Symbols:      []string{"⚽", "🏀", "🏈", "⚾", "🥎", "🎾", "🏐", "🏉", "🎱", "🏓"},
			Palette: core.Palette{
				Primary:   "#2d3436",
				Secondary: "#636e72",
				Accent:    "#0984e3",
				Highlight: "#00b894",
				Text:      "#ffffff",
			},
		},
	}
}

func init() {
	for i, t := range Builtin() {
		t.Order = i
		registry.Register(t)
	}
}
