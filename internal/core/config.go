package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	Swaps     int  // Accepted swaps so far
	BestChain int  // Most cascade passes triggered by one swap
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
	Busy      bool // Whether the game is resolving a move and ignores input
}

// EventKind classifies a notable thing that happened during a tick.
type EventKind int

const (
	EventSwapAccepted EventKind = iota + 1
	EventSwapRejected
	EventCascadePass
	EventSettled
	EventGameOver
)

// Event is reported by Game.Step for logging and feedback.
type Event struct {
	Kind   EventKind
	Points int // Score gained, if any
	Detail string
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// String returns a short name for logging.
func (k EventKind) String() string {
	switch k {
	case EventSwapAccepted:
		return "swap_accepted"
	case EventSwapRejected:
		return "swap_rejected"
	case EventCascadePass:
		return "cascade_pass"
	case EventSettled:
		return "settled"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
