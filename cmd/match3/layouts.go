package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3/layout"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts [dir]",
	Short: "List starting layouts",
	Long: `List the valid layout files under a directory (default: ./layouts).
Files that fail to parse are skipped.

Examples:
  match3 layouts
  match3 layouts ~/my-boards`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLayouts,
}

func runLayouts(_ *cobra.Command, args []string) {
	dir := "layouts"
	if len(args) > 0 {
		dir = args[0]
	}

	layouts, err := layout.LoadAll(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(layouts) == 0 {
		fmt.Printf("No layouts found in %s.\n", dir)
		return
	}

	maxIDLen := 2
	for _, l := range layouts {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "ID", "Name", "File")
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "--", "----", "----")
	for _, l := range layouts {
		fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, l.ID, l.Name, l.FilePath)
	}
}
