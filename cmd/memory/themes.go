package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/registry"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available tile themes",
	Long:  `Shows every registered tile theme with its symbols.`,
	Args:  cobra.NoArgs,
	Run:   runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	themes := registry.List()

	if len(themes) == 0 {
		fmt.Println("No themes available.")
		return
	}

	fmt.Println("Available themes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, t := range themes {
		if len(t.ID) > maxIDLen {
			maxIDLen = len(t.ID)
		}
	}

	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "ID", "Title", "Symbols")
	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "--", "-----", "-------")
	for _, t := range themes {
		fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, t.ID, t.Title, strings.Join(t.Symbols, " "))
	}

	fmt.Println()
	fmt.Println("Run 'memory play --theme <id>' to play with a theme.")
}
