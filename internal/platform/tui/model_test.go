package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

// stubGame records the calls the host makes.
type stubGame struct {
	resets  int
	steps   int
	handled []core.Action
	resized [2]int
	state   core.GameState
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(cfg core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Resize(w, h int) { g.resized = [2]int{w, h} }
func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "STUB")
}

func (g *stubGame) Handle(a core.Action) bool {
	g.handled = append(g.handled, a)
	return true
}

func (g *stubGame) Step() core.StepResult {
	g.steps++
	return core.StepResult{State: g.state}
}

func newTestModel(t *testing.T, g *stubGame, opts ...ModelOption) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 25, TickRate: 60, Seed: 1}
	return NewModel(g, cfg, opts...)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestNewModelReservesFooterRow(t *testing.T) {
	m := newTestModel(t, &stubGame{})
	if m.screen.Width() != 40 || m.screen.Height() != 24 {
		t.Errorf("screen = %dx%d, expected 40x24", m.screen.Width(), m.screen.Height())
	}
	if m.config.ScreenH != 24 {
		t.Errorf("config.ScreenH = %d, expected 24", m.config.ScreenH)
	}
}

func TestInitResetsGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g)
	if cmd := m.Init(); cmd == nil {
		t.Error("Init() should schedule a tick")
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
}

func TestKeysApplyImmediately(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	_, _ = update(t, m, runeKey('x'))

	expected := []core.Action{core.ActionLeft, core.ActionRotate}
	if len(g.handled) != len(expected) {
		t.Fatalf("handled = %v, expected %v", g.handled, expected)
	}
	for i, a := range expected {
		if g.handled[i] != a {
			t.Errorf("handled[%d] = %v, expected %v", i, g.handled[i], a)
		}
	}
	if g.steps != 0 {
		t.Errorf("keys should not step the game, got %d steps", g.steps)
	}
}

func TestMouseAppliesAction(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g)

	_, _ = update(t, m, tea.MouseMsg{X: 35, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if len(g.handled) != 1 || g.handled[0] != core.ActionRight {
		t.Errorf("handled = %v, expected [right]", g.handled)
	}
}

func TestQuitAndBack(t *testing.T) {
	m := newTestModel(t, &stubGame{})
	quit, cmd := update(t, m, runeKey('q'))
	if !quit.IsQuitting() || cmd == nil {
		t.Error("q should quit the program")
	}
	if quit.View() != "" {
		t.Error("View() after quit should be empty")
	}

	m = newTestModel(t, &stubGame{})
	back, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.BackToMenu() || back.IsQuitting() || cmd == nil {
		t.Error("esc should request the menu without quitting")
	}
}

func TestResizeKeepsFooterAndForwards(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resized != [2]int{100, 29} {
		t.Errorf("game resized to %v, expected [100 29]", g.resized)
	}
	if m.screen.Height() != 29 {
		t.Errorf("screen height = %d, expected 29", m.screen.Height())
	}
	if g.resets != 0 {
		t.Error("resize must not reset the game")
	}
}

func TestTickStepsGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g)

	_, cmd := update(t, m, TickMsg{ID: m.tickID, Time: time.Now()})
	if g.steps != 1 {
		t.Errorf("steps = %d, expected 1", g.steps)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestStaleTickIgnored(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g)

	_, cmd := update(t, m, TickMsg{ID: m.tickID + 1000, Time: time.Now()})
	if g.steps != 0 {
		t.Errorf("steps = %d, expected 0 for a foreign tick", g.steps)
	}
	if cmd != nil {
		t.Error("foreign tick should not reschedule")
	}
}

func TestGameOverRecordedOnce(t *testing.T) {
	g := &stubGame{}
	history := NewHistory()
	m := newTestModel(t, g, WithHistory(history))
	tick := TickMsg{ID: m.tickID}

	g.state = core.GameState{Games: 1}
	m, _ = update(t, m, tick)
	g.state = core.GameState{GameOver: true, LastScore: 40, Games: 2}
	m, _ = update(t, m, tick)
	m, _ = update(t, m, tick)
	g.state = core.GameState{Games: 2}
	m, _ = update(t, m, tick)
	g.state = core.GameState{GameOver: true, LastScore: 10, Games: 3}
	_, _ = update(t, m, tick)

	results := history.Results()
	if len(results) != 2 {
		t.Fatalf("recorded %d games, expected 2", len(results))
	}
	if results[0].Score != 10 || results[1].Score != 40 {
		t.Errorf("scores = %d, %d; expected newest first 10, 40", results[0].Score, results[1].Score)
	}
	if results[0].Mode != "stub" {
		t.Errorf("mode = %q, expected \"stub\"", results[0].Mode)
	}
}

func TestGameOverDuringBannerRecorded(t *testing.T) {
	g := &stubGame{}
	history := NewHistory()
	m := newTestModel(t, g, WithHistory(history))
	tick := TickMsg{ID: m.tickID}

	g.state = core.GameState{Games: 1}
	m, _ = update(t, m, tick)
	g.state = core.GameState{GameOver: true, LastScore: 30, Games: 2}
	m, _ = update(t, m, tick)
	// The next game ends before the first banner expires.
	g.state = core.GameState{GameOver: true, LastScore: 0, Games: 3}
	_, _ = update(t, m, tick)

	results := history.Results()
	if len(results) != 2 {
		t.Fatalf("recorded %d games, expected 2", len(results))
	}
	if results[0].Score != 0 || results[1].Score != 30 {
		t.Errorf("scores = %d, %d; expected 0, 30", results[0].Score, results[1].Score)
	}
}

func TestFirstTickRecordsNothing(t *testing.T) {
	g := &stubGame{state: core.GameState{Games: 4}}
	history := NewHistory()
	m := newTestModel(t, g, WithHistory(history))

	_, _ = update(t, m, TickMsg{ID: m.tickID})
	if history.Len() != 0 {
		t.Errorf("recorded %d games on the first tick, expected 0", history.Len())
	}
}

func TestViewIncludesHelpFooter(t *testing.T) {
	m := NewModel(&stubGame{}, core.RuntimeConfig{ScreenW: 120, ScreenH: 25, TickRate: 60, Seed: 1})
	view := m.View()

	if !strings.Contains(view, "STUB") {
		t.Error("View() should contain the game render")
	}
	if !strings.Contains(view, "rotate") {
		t.Error("View() should contain the key help")
	}
	if lines := strings.Count(view, "\n") + 1; lines != 25 {
		t.Errorf("View() has %d lines, expected 25", lines)
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, &stubGame{})
	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
}

func TestScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, &stubGame{}, WithScreenshotDir(dir))

	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "stub_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("expected one screenshot, got %v (%v)", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("read screenshot: %v", err)
	}
	lines := strings.Split(string(data), "\n")
	if lines[0] != "STUB" {
		t.Errorf("first screenshot line = %q, expected \"STUB\" without padding", lines[0])
	}
	if len(lines) != 25 || lines[24] != "" {
		t.Errorf("screenshot has %d lines, expected 24 rows plus a final newline", len(lines))
	}
}
