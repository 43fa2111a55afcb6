package engine

// PointsPerTile is awarded for every cell cleared in a cascade pass.
const PointsPerTile = 10

// Points returns the score for clearing removed cells.
func Points(removed int) int {
	return removed * PointsPerTile
}

// Pass describes one detect-mark-remove-fill iteration.
type Pass struct {
	Removed int // Cells cleared
	Points  int // Score gained
}

// Result summarizes a cascade run to a fixed point.
type Result struct {
	Passes  int
	Removed int
	Points  int
	Settled bool // False if the pass limit was hit with matches remaining
}

// HasMatches reports whether any cell on the board satisfies HasMatchAt.
func (b *Board) HasMatches() bool {
	for x := range Size {
		for y := range Size {
			if b.HasMatchAt(x, y) {
				return true
			}
		}
	}
	return false
}

// FindMatches scans every cell and marks all matched runs.
// The scan must visit the whole grid: a run's middle cell is only covered
// through the checks made at its ends.
func (b *Board) FindMatches() (Mask, int) {
	var mask Mask
	for x := range Size {
		for y := range Size {
			if b.HasMatchAt(x, y) {
				b.MarkForRemoval(x, y, &mask)
			}
		}
	}
	return mask, mask.Count()
}

// CascadeStep runs a single pass. A board without matches is left untouched
// and the zero Pass is returned.
func (b *Board) CascadeStep() Pass {
	mask, n := b.FindMatches()
	if n == 0 {
		return Pass{}
	}
	b.RemoveMatches(&mask)
	b.FillEmptyTiles()
	return Pass{Removed: n, Points: Points(n)}
}

// Settle repeats CascadeStep until no matches remain.
// limit caps the number of passes; limit <= 0 means no cap.
func (b *Board) Settle(limit int) Result {
	var res Result
	for limit <= 0 || res.Passes < limit {
		p := b.CascadeStep()
		if p.Removed == 0 {
			res.Settled = true
			return res
		}
		res.Passes++
		res.Removed += p.Removed
		res.Points += p.Points
	}
	res.Settled = !b.HasMatches()
	return res
}
