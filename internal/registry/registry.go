// Package registry provides a global registry of tile themes.
// Themes register themselves in init() functions, allowing the engine and
// the platform to discover them without hardcoded lists.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// Theme is a named symbol pool with its cosmetic metadata.
// Themes are orthogonal to game logic except that they supply the symbols.
type Theme struct {
	// ID is the stable identifier used in config, CLI flags and persisted stats.
	ID string

	// Title is the game title shown while this theme is selected (e.g., "Cosmic Match").
	Title string

	// VictoryTitle is shown on the completion screen (e.g., "Cosmic Victory!").
	VictoryTitle string

	// Symbols are the distinct face values tiles are drawn from.
	Symbols []string

	// Palette colours the board.
	Palette core.Palette

	// Order controls menu position; lower comes first.
	Order int
}

var (
	themes = make(map[string]Theme)
	mu     sync.RWMutex
)

// Register adds a theme to the registry.
// Typically called from an init() function.
// Panics if a theme with the same ID is already registered or the pool has duplicates.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()

	if t.ID == "" {
		panic("registry: theme with empty ID")
	}
	if _, exists := themes[t.ID]; exists {
		panic(fmt.Sprintf("registry: theme %q already registered", t.ID))
	}

	seen := make(map[string]bool, len(t.Symbols))
	for _, s := range t.Symbols {
		if s == "" || seen[s] {
			panic(fmt.Sprintf("registry: theme %q has empty or duplicate symbol %q", t.ID, s))
		}
		seen[s] = true
	}

	t.Symbols = append([]string(nil), t.Symbols...)
	t.Palette = t.Palette.OrDefault()
	themes[t.ID] = t
}

// List returns all registered themes in menu order.
func List() []Theme {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Theme, 0, len(themes))
	for _, t := range themes {
		result = append(result, clone(t))
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// IDs returns the IDs of all registered themes in menu order.
func IDs() []string {
	list := List()
	ids := make([]string, len(list))
	for i, t := range list {
		ids[i] = t.ID
	}
	return ids
}

// Get returns the theme with the given ID.
// Returns an error if the theme is not registered.
func Get(id string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	t, ok := themes[id]
	if !ok {
		return Theme{}, fmt.Errorf("registry: unknown theme %q", id)
	}
	return clone(t), nil
}

// Exists checks if a theme with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := themes[id]
	return ok
}

// Count returns the number of registered themes.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()

	return len(themes)
}

// MinPoolSize returns the size of the smallest symbol pool, or 0 if no
// themes are registered. Grid sizes must not need more pairs than this.
func MinPoolSize() int {
	mu.RLock()
	defer mu.RUnlock()

	minSize := 0
	first := true
	for _, t := range themes {
		if first || len(t.Symbols) < minSize {
			minSize = len(t.Symbols)
			first = false
		}
	}
	return minSize
}

func clone(t Theme) Theme {
	t.Symbols = append([]string(nil), t.Symbols...)
	return t
}
