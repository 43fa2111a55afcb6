package match3

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

const (
	hudHeight = 3 // Title, score line, notice line
	boardTop  = hudHeight + 1
)

// palette maps tile types to colors. Types outside the table use
// core.ColorTileFallback.
var palette = [engine.NumColors]core.Color{
	core.ColorTileOrange,
	core.ColorTileMint,
	core.ColorTileMoss,
	core.ColorTilePink,
	core.ColorTilePurple,
}

// TileColor returns the display color of a tile type.
func TileColor(t engine.Tile) core.Color {
	if t < 0 || int(t) >= len(palette) {
		return core.ColorTileFallback
	}
	return palette[t]
}

func (g *Game) cellWidth() int {
	return g.cfg.Display.CellWidth
}

func (g *Game) boardWidth() int {
	return engine.Size * g.cellWidth()
}

func (g *Game) boardLeft() int {
	return (g.screenW - g.boardWidth()) / 2
}

// cells lays the board out one text row per board row, centered horizontally.
func (g *Game) cells() core.CellLayout {
	return core.CellLayout{
		X:     g.boardLeft(),
		Y:     boardTop,
		Rows:  engine.Size,
		Cols:  engine.Size,
		CellW: g.cellWidth(),
		CellH: 1,
	}
}

// minSize returns the smallest screen that fits the HUD, the framed board
// and the controls line.
func (g *Game) minSize() (int, int) {
	return g.boardWidth() + 2, boardTop + engine.Size + 2
}

// cellAt maps a screen position to a board cell.
func (g *Game) cellAt(sx, sy int) (engine.Pos, bool) {
	row, col, ok := g.cells().CellAt(sx, sy)
	return engine.Pos{X: row, Y: col}, ok
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	cells := g.cells()
	bounds := cells.Bounds()

	g.renderHUD(dst, bounds.X, bounds.W)
	dst.DrawBoxColored(bounds.Grow(1), core.ColorGray)
	g.renderBoard(dst, cells)
	dst.DrawTextCentered(bounds.Bottom()+1, g.Controls())

	g.renderOverlays(dst, bounds.X+bounds.W/2, bounds.Y+bounds.H/2)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	minW, minH := g.minSize()
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

// renderHUD draws the title, score and notice lines.
func (g *Game) renderHUD(dst *core.Screen, left, w int) {
	title := g.Title()
	dst.DrawTextColored(left+(w-len(title))/2, 0, title, core.ColorWhite)

	dst.DrawText(left-1, 1, fmt.Sprintf("Score: %d", g.score))

	var right string
	if g.mode == ModeMoves {
		right = fmt.Sprintf("Moves: %d", g.movesLeft)
	} else {
		right = fmt.Sprintf("Swaps: %d", g.swaps)
	}
	dst.DrawText(left+w+1-len(right), 1, right)

	switch {
	case g.notice != "":
		dst.DrawTextColored(left+(w-len(g.notice))/2, 2, g.notice, core.ColorYellow)
	case g.layoutName != "":
		dst.DrawTextColored(left+(w-len(g.layoutName))/2, 2, g.layoutName, core.ColorGray)
	}
}

// renderBoard draws every tile with its cursor and selection frame.
func (g *Game) renderBoard(dst *core.Screen, cells core.CellLayout) {
	cw := cells.CellW
	glyph := []rune(g.cfg.Display.Glyph)

	for x := range engine.Size {
		for y := range engine.Size {
			r := cells.Cell(x, y)
			sx, sy := r.X, r.Y
			t := g.board.Type(x, y)

			for i := 1; i < cw-1; i++ {
				if t == engine.Empty {
					dst.SetColored(sx+i, sy, '·', core.ColorGray)
					continue
				}
				dst.SetColored(sx+i, sy, glyph[(i-1)%len(glyph)], TileColor(t))
			}

			p := engine.Pos{X: x, Y: y}
			selected := g.hasSelection && p == g.selected
			switch {
			case p == g.cursor && selected:
				dst.SetColored(sx, sy, '[', core.ColorYellow)
				dst.SetColored(sx+cw-1, sy, ']', core.ColorYellow)
			case p == g.cursor:
				dst.SetColored(sx, sy, '[', core.ColorWhite)
				dst.SetColored(sx+cw-1, sy, ']', core.ColorWhite)
			case selected:
				dst.SetColored(sx, sy, '<', core.ColorYellow)
				dst.SetColored(sx+cw-1, sy, '>', core.ColorYellow)
			}
		}
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	if g.paused {
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		drawOverlay(dst, centerX, centerY,
			"OUT OF MOVES",
			fmt.Sprintf("Score: %d", g.score),
			"Press R to restart")
	}
}

// drawOverlay draws a centered boxed text overlay.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.CenteredRect(centerX, centerY, maxLen+4, len(lines)+2)

	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, core.ColorWhite)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Enter: Select | B: Clear | P: Pause | R: Restart | Q: Quit"
}
