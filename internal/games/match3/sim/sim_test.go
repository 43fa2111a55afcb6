package sim

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

func quietGrid() engine.Grid {
	var g engine.Grid
	for x := range engine.Size {
		for y := range engine.Size {
			g[x][y] = engine.Tile((x + 2*y) % engine.NumColors)
		}
	}
	return g
}

func TestRunIsDeterministic(t *testing.T) {
	opts := Options{Seed: 42, Swaps: 200}
	assert.Equal(t, Run(opts), Run(opts))
}

func TestRunCounts(t *testing.T) {
	rep := Run(Options{Seed: 7, Swaps: 300})

	assert.Equal(t, 300, rep.Attempts)
	assert.Equal(t, rep.Attempts, rep.Accepted+rep.Rejected)
	assert.Positive(t, rep.Accepted, "300 random swaps should find some matches")
	assert.GreaterOrEqual(t, rep.BestChain, 1)
	assert.Zero(t, rep.Score%engine.PointsPerTile)
	assert.GreaterOrEqual(t, rep.Score, rep.Opening.Points+rep.Accepted*3*engine.PointsPerTile)
}

func TestRunLeavesSettledBoard(t *testing.T) {
	rep := Run(Options{Seed: 3, Swaps: 50})

	b := engine.New(rand.New(rand.NewSource(0)))
	b.Load(rep.Final)
	assert.False(t, b.HasMatches())
	for x := range engine.Size {
		for y := range engine.Size {
			assert.NotEqual(t, engine.Empty, rep.Final[x][y])
		}
	}
}

func TestRunFromQuietLayout(t *testing.T) {
	start := quietGrid()
	rep := Run(Options{Seed: 1, Start: &start})

	assert.Zero(t, rep.Opening.Passes)
	assert.True(t, rep.Opening.Settled)
	assert.Zero(t, rep.Score)
	assert.Equal(t, start, rep.Final)
}

func TestRunLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	rep := Run(Options{Seed: 5, Swaps: 20, Logger: logger})
	require.Equal(t, 20, rep.Attempts)

	out := buf.String()
	assert.Contains(t, out, "opening settled")
	assert.Contains(t, out, "simulation finished")
	if rep.Rejected > 0 {
		assert.Contains(t, out, "swap rejected")
	}
}
