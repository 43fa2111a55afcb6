package engine

// Pos is a cell coordinate on the board.
type Pos struct {
	X, Y int
}

// InBounds reports whether p addresses a cell of the board.
func (p Pos) InBounds() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// Adjacent reports whether p and q are at Manhattan distance exactly 1.
func (p Pos) Adjacent(q Pos) bool {
	return abs(p.X-q.X)+abs(p.Y-q.Y) == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Swap exchanges the tiles at p and q.
func (b *Board) Swap(p, q Pos) {
	t := b.Type(p.X, p.Y)
	b.SetType(p.X, p.Y, b.Type(q.X, q.Y))
	b.SetType(q.X, q.Y, t)
}

// TrySwap exchanges two adjacent tiles and keeps the exchange only if the
// board then has at least one match. It reports whether the swap was kept.
func (b *Board) TrySwap(p, q Pos) bool {
	if !p.InBounds() || !q.InBounds() || !p.Adjacent(q) {
		return false
	}
	b.Swap(p, q)
	if !b.HasMatches() {
		b.Swap(p, q)
		return false
	}
	return true
}
