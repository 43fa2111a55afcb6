// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect returns a w x h rectangle centered on (cx, cy).
func CenteredRect(cx, cy, w, h int) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Grow returns r extended by n cells on every side.
func (r Rect) Grow(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
}

// CellLayout places a grid of equally sized cells on the screen.
// Rows run down the screen and columns across it.
type CellLayout struct {
	X, Y         int // Top-left corner of cell (0, 0)
	Rows, Cols   int
	CellW, CellH int
}

// Bounds returns the area covered by all cells.
func (l CellLayout) Bounds() Rect {
	return NewRect(l.X, l.Y, l.Cols*l.CellW, l.Rows*l.CellH)
}

// Cell returns the screen area of the cell at (row, col).
func (l CellLayout) Cell(row, col int) Rect {
	return NewRect(l.X+col*l.CellW, l.Y+row*l.CellH, l.CellW, l.CellH)
}

// CellAt maps a screen position to the cell under it.
func (l CellLayout) CellAt(x, y int) (row, col int, ok bool) {
	if l.CellW <= 0 || l.CellH <= 0 || !l.Bounds().Contains(x, y) {
		return 0, 0, false
	}
	return (y - l.Y) / l.CellH, (x - l.X) / l.CellW, true
}
