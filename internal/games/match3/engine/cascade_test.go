package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoints(t *testing.T) {
	tests := []struct {
		removed, want int
	}{
		{0, 0},
		{3, 30},
		{5, 50},
		{12, 120},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Points(tc.removed))
	}
}

func TestCascadeStepNoMatchIsNoop(t *testing.T) {
	src := &scripted{vals: []int{1}}
	b := &Board{rng: src}
	b.Load(noMatchGrid())
	before := b.Snapshot()

	for range 5 {
		p := b.CascadeStep()
		assert.Zero(t, p)
	}
	assert.Equal(t, before, b.Snapshot())
	assert.Zero(t, src.calls, "no random draws without matches")
}

func TestCascadeStepScoresMarkedCells(t *testing.T) {
	g := noMatchGrid()
	g[2][0], g[2][1], g[2][2] = 0, 0, 0
	g[5][7], g[6][7], g[7][7] = 2, 2, 2
	b := boardWith(g, 1, 4)

	mask, n := b.FindMatches()
	require.Equal(t, 6, n)

	p := b.CascadeStep()
	assert.Equal(t, 6, p.Removed)
	assert.Equal(t, 60, p.Points)
	assert.Equal(t, Points(mask.Count()), p.Points)
}

func TestCascadeStepGravityOrder(t *testing.T) {
	g := noMatchGrid()
	g[4][2], g[4][3], g[4][4] = 0, 0, 0
	b := boardWith(g, 0)
	b.CascadeStep()

	for y := 2; y <= 4; y++ {
		for x := 1; x <= 4; x++ {
			assert.Equal(t, g[x-1][y], b.Type(x, y), "(%d,%d) shifted from above", x, y)
		}
		for x := 5; x < Size; x++ {
			assert.Equal(t, g[x][y], b.Type(x, y))
		}
	}
}

func TestSettleReachesFixedPoint(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		b := New(rand.New(rand.NewSource(seed)))
		res := b.Settle(0)

		require.True(t, res.Settled, "seed %d", seed)
		require.False(t, b.HasMatches(), "seed %d", seed)
		assert.Equal(t, Points(res.Removed), res.Points)
		if res.Passes == 0 {
			assert.Zero(t, res.Removed)
		}
	}
}

func TestSettleIdempotent(t *testing.T) {
	b := New(rand.New(rand.NewSource(3)))
	b.Settle(0)
	settled := b.Snapshot()

	res := b.Settle(0)
	assert.Equal(t, Result{Settled: true}, res)
	assert.Equal(t, settled, b.Snapshot())
}

func TestSettleRespectsLimit(t *testing.T) {
	g := noMatchGrid()
	g[7][0], g[7][1], g[7][2] = 2, 2, 2
	// every refill is color 2, so the top row keeps re-forming a run
	b := boardWith(g, 2)

	res := b.Settle(4)
	assert.Equal(t, 4, res.Passes)
	assert.False(t, res.Settled)
	assert.True(t, b.HasMatches())
}
