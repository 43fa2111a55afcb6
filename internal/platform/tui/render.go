package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/tui-match3/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
// Tile colors are true-color hex values; lipgloss degrades them to the
// closest color the terminal supports.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),

	core.ColorTileOrange:   lipgloss.NewStyle().Foreground(lipgloss.Color("#fb5a00")),
	core.ColorTileMint:     lipgloss.NewStyle().Foreground(lipgloss.Color("#aeef8b")),
	core.ColorTileMoss:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6a9454")),
	core.ColorTilePink:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ebb0f7")),
	core.ColorTilePurple:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ab32c3")),
	core.ColorTileFallback: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffc2aa")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
