package registry

import (
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

type stubGame struct {
	id string
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Description() string { return "a stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Handle(core.Action) bool { return false }
func (g *stubGame) Step() core.StepResult { return core.StepResult{} }
func (g *stubGame) Resize(int, int) {}
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") {
		t.Fatal("Exists(\"zz_stub_a\") = false")
	}

	g, err := Create("zz_stub_b")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "zz_stub_b" {
		t.Errorf("Create().ID() = %q, expected \"zz_stub_b\"", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(\"missing\") should fail")
	}

	var ids []string
	for _, info := range List() {
		if info.ID == "zz_stub_a" || info.ID == "zz_stub_b" {
			ids = append(ids, info.ID)
			if info.Title != "Stub "+info.ID || info.Description != "a stub" {
				t.Errorf("List() entry = %+v", info)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "zz_stub_a" {
		t.Errorf("List() order = %v, expected sorted stubs", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_stub_dup", func() Game { return &stubGame{id: "zz_stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("zz_stub_dup", func() Game { return &stubGame{id: "zz_stub_dup"} })
}
