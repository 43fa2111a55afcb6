package match3

import "github.com/vovakirdan/tui-match3/internal/games/match3/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateCascading   GameStateType = "cascading"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string // "classic" or "moves"
	Score     int
	MovesLeft int // Always 0 in classic mode
	Swaps     int
	Rejected  int
	Cursor    engine.Pos
	Selected  *engine.Pos // nil when nothing is selected
	Board     engine.Grid
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.cascading:
		state = StateCascading
	}

	var selected *engine.Pos
	if g.hasSelection {
		p := g.selected
		selected = &p
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Score:     g.score,
		MovesLeft: g.movesLeft,
		Swaps:     g.swaps,
		Rejected:  g.rejected,
		Cursor:    g.cursor,
		Selected:  selected,
		Board:     g.board.Snapshot(),
		State:     state,
	}
}
