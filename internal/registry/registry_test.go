package registry

import (
	"testing"

	"github.com/vovakirdan/tui-match3/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") || Exists("stub_missing") {
		t.Error("Exists() mismatch")
	}

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("ID() = %q", g.ID())
	}

	if _, err := Create("stub_missing"); err == nil {
		t.Error("Create() of unknown game should fail")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "stub_a" && info.Title != "Stub stub_a" {
			t.Errorf("Title = %q", info.Title)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

type endlessStub struct{ stubGame }

func (g *endlessStub) Endless() bool { return true }

func TestListReportsEndless(t *testing.T) {
	Register("stub_endless", func() Game { return &endlessStub{stubGame{id: "stub_endless"}} })
	Register("stub_finite", func() Game { return &stubGame{id: "stub_finite"} })

	found := map[string]bool{}
	for _, info := range List() {
		switch info.ID {
		case "stub_endless", "stub_finite":
			found[info.ID] = info.Endless
		}
	}
	if !found["stub_endless"] || found["stub_finite"] {
		t.Errorf("Endless flags = %v", found)
	}
}
