// Package sim plays random swaps on a board without a terminal. It is used
// to sanity check scoring and cascade behavior for a seed or layout.
package sim

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

// maxPasses bounds a single settle so a pathological refill cannot spin forever.
const maxPasses = 1000

// Options controls a simulation run.
type Options struct {
	Seed   int64
	Swaps  int          // Swap attempts to make
	Start  *engine.Grid // nil starts from a random board
	Logger *log.Logger  // nil discards logs
}

// Report summarizes a finished run.
type Report struct {
	Opening   engine.Result // Cascade resolving the starting board
	Attempts  int
	Accepted  int
	Rejected  int
	Score     int // Includes the opening cascade
	BestChain int // Most passes triggered by a single swap
	Final     engine.Grid
}

// Run plays opts.Swaps random adjacent swaps. Accepted swaps are settled
// before the next attempt. The same options always produce the same report.
func Run(opts Options) Report {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	board := engine.New(rng)
	if opts.Start != nil {
		board.Load(*opts.Start)
	}

	var rep Report
	rep.Opening = board.Settle(maxPasses)
	rep.Score = rep.Opening.Points
	logger.Debug("opening settled", "passes", rep.Opening.Passes, "points", rep.Opening.Points)

	for range opts.Swaps {
		p, q := randomPair(rng)
		rep.Attempts++

		if !board.TrySwap(p, q) {
			rep.Rejected++
			logger.Debug("swap rejected", "from", p, "to", q)
			continue
		}

		res := board.Settle(maxPasses)
		rep.Accepted++
		rep.Score += res.Points
		rep.BestChain = max(rep.BestChain, res.Passes)
		logger.Debug("swap accepted", "from", p, "to", q, "passes", res.Passes, "points", res.Points)
		if !res.Settled {
			logger.Warn("cascade did not settle", "passes", res.Passes)
		}
	}

	rep.Final = board.Snapshot()
	logger.Info("simulation finished",
		"seed", opts.Seed, "accepted", rep.Accepted, "rejected", rep.Rejected, "score", rep.Score)
	return rep
}

// randomPair picks a cell and its right or lower neighbour.
func randomPair(rng *rand.Rand) (engine.Pos, engine.Pos) {
	if rng.Intn(2) == 0 {
		p := engine.Pos{X: rng.Intn(engine.Size), Y: rng.Intn(engine.Size - 1)}
		return p, engine.Pos{X: p.X, Y: p.Y + 1}
	}
	p := engine.Pos{X: rng.Intn(engine.Size - 1), Y: rng.Intn(engine.Size)}
	return p, engine.Pos{X: p.X + 1, Y: p.Y}
}
