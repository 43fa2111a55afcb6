package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long:  `Shows every registered match-3 mode.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-18s  %s\n", maxIDLen, "ID", "Title", "Ends")
	fmt.Printf("  %-*s  %-18s  %s\n", maxIDLen, "--", "-----", "----")
	for _, g := range games {
		ends := "when moves run out"
		if g.Endless {
			ends = "never (quit to save score)"
		}
		fmt.Printf("  %-*s  %-18s  %s\n", maxIDLen, g.ID, g.Title, ends)
	}

	fmt.Println()
	fmt.Println("Run 'match3 play <id>' to play.")
}
