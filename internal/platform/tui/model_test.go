package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/layout"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// fakeGame scores 10 points per step and ends after overAt steps.
type fakeGame struct {
	endless bool
	paused  bool
	overAt  int
	steps   int
	resets  int
	resized [2]int
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.steps, g.paused = 0, false; g.resets++ }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) Endless() bool { return g.endless }
func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{
		Score:    g.steps * 10,
		Swaps:    g.steps,
		GameOver: !g.endless && g.steps >= g.overAt,
		Paused:   g.paused,
	}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func pressKey(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelSavesScoreOnceOnGameOver(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{overAt: 3}
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, Options{Player: "ann"})
	m.Init()

	for range 3 {
		m = tick(t, m)
	}
	if !m.gameState.GameOver {
		t.Fatal("expected game over")
	}
	for range 3 {
		m = tick(t, m)
	}

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected 1 saved score, got %d", len(scores))
	}
	if scores[0].Score != 30 || scores[0].Player != "ann" || scores[0].Swaps != 3 {
		t.Errorf("unexpected entry: %+v", scores[0])
	}
}

func TestModelSavesEndlessScoreOnQuit(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{endless: true}
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, Options{})
	m.Init()

	m = tick(t, m)
	m = tick(t, m)
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	if !m.IsQuitting() {
		t.Fatal("q should quit")
	}
	high, _ := store.HighScore("fake")
	if high != 20 {
		t.Errorf("high score = %d, want 20", high)
	}
}

func TestModelRestartSavesEndlessScore(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{endless: true}
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, Options{})
	m.Init()

	m = tick(t, m)
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = tick(t, m)

	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
	if m.scoreSaved {
		t.Error("a restarted game should be saveable again")
	}
	scores, _ := store.AllScores("fake")
	if len(scores) != 1 || scores[0].Score != 10 {
		t.Errorf("scores = %+v", scores)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{endless: true}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, Options{})
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if g.resized != [2]int{100, 30} {
		t.Errorf("resized = %v", g.resized)
	}
	if g.resets != 1 {
		t.Error("resize should not reset a resizable game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Error("screen buffer should follow the window")
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &fakeGame{overAt: 1}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, Options{AllowBack: true})
	m.Init()

	// Back while playing only reaches the game
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back during play should not leave the game")
	}

	m = tick(t, m)
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back after game over should return to menu")
	}
	if m.View() != "" {
		t.Error("view should be empty when leaving")
	}
}

func TestModelMouseClick(t *testing.T) {
	g := &fakeGame{endless: true}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, Options{})

	next, _ := m.Update(tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	if len(m.inputFrame.Clicks) != 1 {
		t.Errorf("clicks = %v", m.inputFrame.Clicks)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(3, 0, '█', core.ColorTileOrange)
	s.SetColored(4, 0, '█', core.Color(200)) // unknown colors render plain

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || strings.Count(lines[0], "█") != 2 {
		t.Errorf("unexpected first line %q", lines[0])
	}
}

func TestSetupModelDifficultyThenLayout(t *testing.T) {
	layouts := []layout.Layout{{ID: "a", Name: "Alpha"}, {ID: "b", Name: "Beta"}}
	m := NewSetupModel(true, layouts, 80, 24)

	down := tea.KeyMsg{Type: tea.KeyDown}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	// normal is preselected; move to hard
	next, _ := m.Update(down)
	next, _ = next.Update(enter)
	m = next.(SetupModel)
	if m.stage != stageLayout || m.Selected() != nil {
		t.Fatal("expected layout stage")
	}
	if !strings.Contains(m.View(), "Beta") {
		t.Error("layout names should be listed")
	}

	next, _ = m.Update(down)
	next, _ = next.Update(down)
	next, _ = next.Update(enter)
	m = next.(SetupModel)

	sel := m.Selected()
	if sel == nil {
		t.Fatal("expected selection")
	}
	if sel.Difficulty != config.DifficultyHard {
		t.Errorf("Difficulty = %q", sel.Difficulty)
	}
	if sel.Layout == nil || sel.Layout.ID != "b" {
		t.Errorf("Layout = %+v", sel.Layout)
	}
}

func TestSetupModelSkipsEmptyStages(t *testing.T) {
	m := NewSetupModel(false, nil, 80, 24)
	sel := m.Selected()
	if sel == nil || sel.Difficulty != "" || sel.Layout != nil {
		t.Errorf("expected empty immediate selection, got %+v", sel)
	}

	m = NewSetupModel(false, []layout.Layout{{ID: "a", Name: "Alpha"}}, 80, 24)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sel = next.(SetupModel).Selected()
	if sel == nil || sel.Layout != nil {
		t.Errorf("first entry should be the random board, got %+v", sel)
	}
}

func TestSetupModelBack(t *testing.T) {
	m := NewSetupModel(true, []layout.Layout{{ID: "a", Name: "Alpha"}}, 80, 24)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(SetupModel)
	if m.stage != stageDifficulty || m.back {
		t.Fatal("back from layouts should return to difficulty")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(SetupModel)
	if !m.back || m.Selected() != nil {
		t.Error("back from first stage should leave without a selection")
	}
}
