// Package engine holds the match-3 board state and the primitive operations
// on it: initialization, match detection, removal and gravity fill.
// It has no dependencies on the platform layer and performs no I/O.
package engine

import (
	"fmt"
	"strings"
)

const (
	// Size is the board dimension (Size x Size).
	Size = 8
	// NumColors is the number of distinct tile types.
	NumColors = 5
)

// Tile is a tile type in [0, NumColors-1], or Empty.
type Tile int

// Empty marks a cell cleared by RemoveMatches and not yet refilled.
const Empty Tile = -1

// Grid is the raw cell storage, addressed grid[x][y].
// x is the row (0 at the top), y is the column.
type Grid [Size][Size]Tile

// Mask marks cells that take part in a detected match.
type Mask [Size][Size]bool

// Count returns the number of marked cells.
func (m *Mask) Count() int {
	n := 0
	for x := range Size {
		for y := range Size {
			if m[x][y] {
				n++
			}
		}
	}
	return n
}

// Source supplies random integers. Intn must return a value in [0, n);
// the board panics on anything else. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Board owns the grid for one game session.
// It is not safe for concurrent use.
type Board struct {
	cells Grid
	rng   Source
}

// New creates a board drawing tile types from rng and initializes it.
func New(rng Source) *Board {
	b := &Board{rng: rng}
	b.Initialize()
	return b
}

// Initialize fills every cell with an independent random tile type.
// It does not avoid pre-existing matches or guarantee a legal move.
func (b *Board) Initialize() {
	for x := range Size {
		for y := range Size {
			b.cells[x][y] = b.randomTile()
		}
	}
}

func (b *Board) randomTile() Tile {
	v := b.rng.Intn(NumColors)
	if v < 0 || v >= NumColors {
		panic(fmt.Sprintf("engine: source returned %d, want [0, %d)", v, NumColors))
	}
	return Tile(v)
}

// Type returns the tile at (x, y). Coordinates must be in [0, Size).
func (b *Board) Type(x, y int) Tile {
	return b.cells[x][y]
}

// SetType overwrites the tile at (x, y). The value is not validated.
func (b *Board) SetType(x, y int, t Tile) {
	b.cells[x][y] = t
}

// HasMatchAt reports whether (x, y) is the first or last cell of a run of
// three equal tiles along either axis. The middle cell of a three-run is not
// reported on its own; full-grid scans still cover the run via its ends.
func (b *Board) HasMatchAt(x, y int) bool {
	t := b.cells[x][y]

	if x >= 2 && b.cells[x-1][y] == t && b.cells[x-2][y] == t {
		return true
	}
	if x < Size-2 && b.cells[x+1][y] == t && b.cells[x+2][y] == t {
		return true
	}
	if y >= 2 && b.cells[x][y-1] == t && b.cells[x][y-2] == t {
		return true
	}
	if y < Size-2 && b.cells[x][y+1] == t && b.cells[x][y+2] == t {
		return true
	}
	return false
}

// MarkForRemoval re-evaluates the HasMatchAt conditions for (x, y) and marks
// all three cells of every condition that holds.
func (b *Board) MarkForRemoval(x, y int, mask *Mask) {
	t := b.cells[x][y]

	if x >= 2 && b.cells[x-1][y] == t && b.cells[x-2][y] == t {
		mask[x][y], mask[x-1][y], mask[x-2][y] = true, true, true
	}
	if x < Size-2 && b.cells[x+1][y] == t && b.cells[x+2][y] == t {
		mask[x][y], mask[x+1][y], mask[x+2][y] = true, true, true
	}
	if y >= 2 && b.cells[x][y-1] == t && b.cells[x][y-2] == t {
		mask[x][y], mask[x][y-1], mask[x][y-2] = true, true, true
	}
	if y < Size-2 && b.cells[x][y+1] == t && b.cells[x][y+2] == t {
		mask[x][y], mask[x][y+1], mask[x][y+2] = true, true, true
	}
}

// RemoveMatches empties every masked cell.
func (b *Board) RemoveMatches(mask *Mask) {
	for x := range Size {
		for y := range Size {
			if mask[x][y] {
				b.cells[x][y] = Empty
			}
		}
	}
}

// FillEmptyTiles applies gravity column by column: each empty cell is closed
// by shifting everything above it down one row, and the vacated top cell gets
// a fresh random tile. Columns with several gaps are fully compacted.
func (b *Board) FillEmptyTiles() {
	for y := range Size {
		for x := Size - 1; x >= 0; {
			if b.cells[x][y] != Empty {
				x--
				continue
			}
			for k := x; k > 0; k-- {
				b.cells[k][y] = b.cells[k-1][y]
			}
			b.cells[0][y] = b.randomTile()
			// re-check x: the shifted-in cell may be empty too
		}
	}
}

// Snapshot returns a copy of the grid.
func (b *Board) Snapshot() Grid {
	return b.cells
}

// Load replaces the grid with g.
func (b *Board) Load(g Grid) {
	b.cells = g
}

// String renders the board as digits, one row per line, '.' for Empty.
func (b *Board) String() string {
	return b.cells.String()
}

// String renders the grid as digits, one row per line, '.' for Empty.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(Size * (Size + 1))
	for x := range Size {
		if x > 0 {
			sb.WriteByte('\n')
		}
		for y := range Size {
			t := g[x][y]
			if t == Empty {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte(byte('0' + t))
		}
	}
	return sb.String()
}
