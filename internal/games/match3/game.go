// Package match3 implements the match-3 game on top of the board engine.
// It owns the cursor, the two-step tile selection, cascade pacing and
// scoring, and renders into a core.Screen.
package match3

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
	"github.com/vovakirdan/tui-match3/internal/games/match3/layout"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic" // Endless play, no move budget
	ModeMoves   Mode = "moves"   // Fixed number of swaps
)

// Game implements the match-3 puzzle game.
type Game struct {
	mode  Mode
	cfg   config.Match3Config
	rng   *rand.Rand
	board *engine.Board
	tick  uint64

	score     int
	movesLeft int
	swaps     int // Accepted swaps
	rejected  int // Swaps reverted for lack of a match
	bestChain int

	cursor       engine.Pos
	selected     engine.Pos
	hasSelection bool

	// Cascade pacing
	cascading     bool
	cascadeTicker int
	cascadeEvery  int
	chainPasses   int
	chainPoints   int

	notice      string
	noticeTicks int
	noticeEvery int

	layoutName string

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool
}

// Package-level settings applied on the next Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	startLayout      *layout.Layout
)

// SetConfigPath sets a custom YAML config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the move budget preset ("easy", "normal", "hard", "fixed").
// Unknown values clear the preset.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLayout sets a fixed starting board. nil restores random boards.
func SetLayout(l *layout.Layout) {
	startLayout = l
}

// New creates a new classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewMoves creates a new moves mode game.
func NewMoves() *Game {
	return &Game{mode: ModeMoves}
}

func init() {
	registry.Register("match3", func() registry.Game {
		return New()
	})
	registry.Register("match3_moves", func() registry.Game {
		return NewMoves()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeMoves {
		return "match3_moves"
	}
	return "match3"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeMoves {
		return "Match-3 (Moves)"
	}
	return "Match-3"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadMatch3(configPath)
	if err != nil {
		cfg = config.DefaultMatch3Config()
	}
	if difficultyPreset != "" {
		config.ApplyMatch3Preset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.cascadeEvery = max(1, ticksFor(cfg.Timing.CascadeIntervalMS, tickRate))
	g.noticeEvery = ticksFor(cfg.Timing.NoticeMS, tickRate)

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.board = engine.New(g.rng)
	g.layoutName = ""
	if startLayout != nil {
		g.board.Load(startLayout.Grid)
		g.layoutName = startLayout.Name
	}

	g.tick = 0
	g.score = 0
	g.movesLeft = 0
	if g.mode == ModeMoves {
		g.movesLeft = cfg.Gameplay.MoveLimit
	}
	g.swaps = 0
	g.rejected = 0
	g.bestChain = 0
	g.cursor = engine.Pos{}
	g.hasSelection = false
	g.notice = ""
	g.noticeTicks = 0
	g.gameOver = false
	g.paused = false

	// A random board may open with runs already on it; they resolve and score
	// like any other cascade.
	g.startCascade()

	g.Resize(rc.ScreenW, rc.ScreenH)
}

// ticksFor converts milliseconds to simulation ticks, rounding up.
func ticksFor(ms, tickRate int) int {
	if ms <= 0 {
		return 0
	}
	return (ms*tickRate + 999) / 1000
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := g.minSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var events []core.Event

	if g.noticeTicks > 0 {
		g.noticeTicks--
		if g.noticeTicks == 0 {
			g.notice = ""
		}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused || g.gameOver {
		return core.StepResult{State: g.State(), Events: events}
	}

	if g.cascading {
		events = g.advanceCascade(events)
	} else {
		events = g.handleInput(in, events)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// handleInput moves the cursor and processes selections.
// Input is ignored while a cascade is resolving.
func (g *Game) handleInput(in core.InputFrame, events []core.Event) []core.Event {
	switch {
	case in.Has(core.ActionUp):
		g.cursor.X = max(0, g.cursor.X-1)
	case in.Has(core.ActionDown):
		g.cursor.X = min(engine.Size-1, g.cursor.X+1)
	case in.Has(core.ActionLeft):
		g.cursor.Y = max(0, g.cursor.Y-1)
	case in.Has(core.ActionRight):
		g.cursor.Y = min(engine.Size-1, g.cursor.Y+1)
	}

	if in.Has(core.ActionBack) {
		g.hasSelection = false
	}

	if in.Has(core.ActionConfirm) {
		events = g.selectCell(g.cursor, events)
	}

	for _, c := range in.Clicks {
		if g.cascading {
			break
		}
		p, ok := g.cellAt(c.X, c.Y)
		if !ok {
			continue
		}
		g.cursor = p
		events = g.selectCell(p, events)
	}

	return events
}

// selectCell implements the two-step swap: the first call picks a tile, a
// second call on an adjacent tile attempts the swap.
func (g *Game) selectCell(p engine.Pos, events []core.Event) []core.Event {
	switch {
	case !g.hasSelection:
		g.selected = p
		g.hasSelection = true
		return events
	case p == g.selected:
		g.hasSelection = false
		return events
	case !g.selected.Adjacent(p):
		g.selected = p
		return events
	}

	from := g.selected
	g.hasSelection = false

	if !g.board.TrySwap(from, p) {
		g.rejected++
		g.showNotice("No match")
		return append(events, core.Event{
			Kind:   core.EventSwapRejected,
			Detail: swapDetail(from, p),
		})
	}

	g.swaps++
	if g.mode == ModeMoves {
		g.movesLeft--
	}
	g.startCascade()
	return append(events, core.Event{
		Kind:   core.EventSwapAccepted,
		Detail: swapDetail(from, p),
	})
}

func swapDetail(p, q engine.Pos) string {
	return fmt.Sprintf("(%d,%d)<->(%d,%d)", p.X, p.Y, q.X, q.Y)
}

// startCascade arms the cascade timer if the board has matches.
func (g *Game) startCascade() {
	g.cascading = g.board.HasMatches()
	g.cascadeTicker = 0
	g.chainPasses = 0
	g.chainPoints = 0
}

// advanceCascade runs one detect-remove-fill pass per cascade interval until
// the board settles.
func (g *Game) advanceCascade(events []core.Event) []core.Event {
	g.cascadeTicker++
	if g.cascadeTicker < g.cascadeEvery {
		return events
	}
	g.cascadeTicker = 0

	p := g.board.CascadeStep()
	if p.Removed > 0 {
		g.chainPasses++
		g.chainPoints += p.Points
		g.score += p.Points
		events = append(events, core.Event{
			Kind:   core.EventCascadePass,
			Points: p.Points,
			Detail: fmt.Sprintf("pass %d removed %d", g.chainPasses, p.Removed),
		})
	}

	if g.board.HasMatches() {
		return events
	}

	g.cascading = false
	g.bestChain = max(g.bestChain, g.chainPasses)
	events = append(events, core.Event{
		Kind:   core.EventSettled,
		Points: g.chainPoints,
		Detail: fmt.Sprintf("%d passes", g.chainPasses),
	})
	if g.chainPasses > 1 {
		g.showNotice(fmt.Sprintf("Chain x%d +%d", g.chainPasses, g.chainPoints))
	}

	if g.mode == ModeMoves && g.movesLeft <= 0 {
		g.gameOver = true
		g.hasSelection = false
		events = append(events, core.Event{
			Kind:   core.EventGameOver,
			Points: g.score,
			Detail: fmt.Sprintf("%d swaps", g.swaps),
		})
	}
	return events
}

// showNotice displays a short message in the HUD.
func (g *Game) showNotice(msg string) {
	if g.noticeEvery <= 0 {
		return
	}
	g.notice = msg
	g.noticeTicks = g.noticeEvery
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		Swaps:     g.swaps,
		BestChain: g.bestChain,
		GameOver:  g.gameOver,
		Paused:    g.paused || g.tooSmall,
		Busy:      g.cascading,
	}
}

// Board exposes the engine board for tools that drive the game headlessly.
func (g *Game) Board() *engine.Board {
	return g.board
}

// Endless reports whether the game runs without a move budget.
func (g *Game) Endless() bool {
	return g.mode == ModeClassic
}
