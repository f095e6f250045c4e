package blockfall

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

func runtimeConfig(w, h int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60, Seed: seed}
}

// fastConfig drops the piece one row every tick.
func fastConfig() config.BlockfallConfig {
	cfg := config.DefaultBlockfallConfig()
	cfg.Timing.DropIntervalMS = cfg.Timing.FrameStepMS
	return cfg
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"classic", "fullscreen"} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := runtimeConfig(80, 24, 12345)

	g1 := New(ModeClassic, WithConfig(fastConfig()))
	g1.Reset(cfg)

	g2 := New(ModeClassic, WithConfig(fastConfig()))
	g2.Reset(cfg)

	actions := map[int]core.Action{
		3:  core.ActionLeft,
		7:  core.ActionRotate,
		11: core.ActionRight,
		25: core.ActionRotate,
		40: core.ActionLeft,
		41: core.ActionLeft,
	}
	for i := range 400 {
		if a, ok := actions[i%50]; ok {
			g1.Handle(a)
			g2.Handle(a)
		}
		g1.Step()
		g2.Step()
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if snap1 != snap2 {
		t.Errorf("Snapshot mismatch:\n%+v\n%+v", snap1, snap2)
	}
	if snap1.Tick != 400 {
		t.Errorf("Tick = %d, expected 400", snap1.Tick)
	}
	if snap1.Filled == 0 && snap1.Games == 1 {
		t.Error("no piece settled in 400 fast ticks")
	}
}

func TestClassicBoardSize(t *testing.T) {
	g := New(ModeClassic, WithConfig(config.DefaultBlockfallConfig()))
	g.Reset(runtimeConfig(200, 100, 1))

	snap := g.Snapshot()
	if snap.Rows != 20 || snap.Cols != 10 {
		t.Errorf("classic board = %dx%d, expected 20x10", snap.Rows, snap.Cols)
	}
	if snap.State != StatePlaying {
		t.Errorf("State = %s, expected playing", snap.State)
	}
}

func TestFullscreenDerivesBoard(t *testing.T) {
	tests := []struct {
		w, h       int
		rows, cols int
	}{
		{60, 30, 27, 29},
		{80, 24, 21, 39},
		{12, 8, 5, 5},
		{9, 6, 20, 10}, // too small for the minimum board; classic size kept
	}
	for _, tc := range tests {
		tooSmall := tc.rows == 20 && tc.cols == 10
		g := New(ModeFullscreen, WithConfig(config.DefaultBlockfallConfig()))
		g.Reset(runtimeConfig(tc.w, tc.h, 1))

		snap := g.Snapshot()
		if snap.Rows != tc.rows || snap.Cols != tc.cols {
			t.Errorf("%dx%d screen: board = %dx%d, expected %dx%d", tc.w, tc.h, snap.Rows, snap.Cols, tc.rows, tc.cols)
		}
		if g.State().TooSmall != tooSmall {
			t.Errorf("%dx%d screen: TooSmall = %v, expected %v", tc.w, tc.h, g.State().TooSmall, tooSmall)
		}
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g := New(ModeClassic, WithConfig(fastConfig()))
	g.Reset(runtimeConfig(80, 24, 7))

	for range 60 {
		g.Step()
	}
	before := g.Snapshot()

	g.Resize(10, 5)
	if !g.State().TooSmall {
		t.Fatal("TooSmall = false on a 10x5 screen")
	}
	if g.Handle(core.ActionLeft) {
		t.Error("Handle() accepted input while the board does not fit")
	}
	for range 30 {
		g.Step()
	}
	held := g.Snapshot()
	if held.PieceY != before.PieceY || held.Filled != before.Filled || held.Rows != before.Rows {
		t.Errorf("game advanced while too small: %+v -> %+v", before, held)
	}
	if held.State != StatePausedSmall {
		t.Errorf("State = %s, expected %s", held.State, StatePausedSmall)
	}

	g.Resize(100, 40)
	if g.State().TooSmall {
		t.Fatal("TooSmall = true after growing the screen")
	}
	if after := g.Snapshot(); after.Rows != 20 || after.Cols != 10 || after.Filled != before.Filled {
		t.Errorf("resize changed the board: %+v", after)
	}
}

func TestHandleMovesPiece(t *testing.T) {
	g := New(ModeClassic, WithConfig(config.DefaultBlockfallConfig()))
	g.Reset(runtimeConfig(80, 24, 3))

	x := g.Snapshot().PieceX
	if !g.Handle(core.ActionLeft) {
		t.Fatal("Handle(Left) rejected on an empty board")
	}
	if g.Snapshot().PieceX != x-1 {
		t.Errorf("PieceX = %d, expected %d", g.Snapshot().PieceX, x-1)
	}
	if !g.Handle(core.ActionSoftDrop) || g.Snapshot().PieceY != 1 {
		t.Errorf("soft drop: PieceY = %d, expected 1", g.Snapshot().PieceY)
	}
	if g.Handle(core.ActionConfirm) {
		t.Error("Handle(Confirm) should not be a gameplay action")
	}
}

func TestLineClearScores(t *testing.T) {
	sounds := 0
	g := New(ModeClassic,
		WithConfig(fastConfig()),
		WithSound(engine.SoundFunc(func() { sounds++ })),
	)
	g.Reset(runtimeConfig(80, 24, 99))

	// Fill the bottom row except under the piece's lowest cells.
	p := g.state.Piece()
	bottom := p.Shape.Height() - 1
	gap := map[int]bool{}
	for _, c := range p.Shape.Cells() {
		if c[1] == bottom {
			gap[p.X+c[0]] = true
		}
	}
	grid := g.state.Grid()
	for x := range grid.Cols() {
		if !gap[x] {
			grid.Set(x, grid.Rows()-1, core.ColorGray)
		}
	}

	cleared := 0
	for range 40 {
		cleared += g.Step().Cleared
	}

	if cleared != 1 {
		t.Errorf("cleared %d rows, expected 1", cleared)
	}
	state := g.State()
	if state.Score != 10 || state.Lines != 1 {
		t.Errorf("Score = %d, Lines = %d; expected 10, 1", state.Score, state.Lines)
	}
	if sounds != 1 {
		t.Errorf("explosion played %d times, expected 1", sounds)
	}
}

func TestGameOverBanner(t *testing.T) {
	g := New(ModeClassic, WithConfig(config.DefaultBlockfallConfig()))
	g.Reset(runtimeConfig(80, 24, 5))

	g.gameOver(70)
	if !g.State().GameOver {
		t.Fatal("GameOver = false right after game over")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "Game Over") || !strings.Contains(out, "Score: 70") {
		t.Errorf("banner not rendered:\n%s", out)
	}

	// Two seconds at 60 ticks per second.
	for range 119 {
		g.Step()
	}
	if !g.State().GameOver {
		t.Error("banner gone before two seconds")
	}
	g.Step()
	if g.State().GameOver {
		t.Error("banner still showing after two seconds")
	}
}

func TestGameOverContinuesPlay(t *testing.T) {
	cfg := fastConfig()
	cfg.Board.Rows = 4
	cfg.Board.Cols = 4
	g := New(ModeClassic, WithConfig(cfg))
	g.Reset(runtimeConfig(80, 24, 11))

	sawGameOver := false
	for range 50 {
		if g.Step().State.GameOver {
			sawGameOver = true
		}
	}
	if !sawGameOver {
		t.Fatal("no game over on a 4x4 board")
	}
	snap := g.Snapshot()
	if snap.Games < 2 {
		t.Errorf("Games = %d, expected at least 2", snap.Games)
	}
	if snap.Piece == "" {
		t.Error("no active piece after game over")
	}
}

func TestRenderLayout(t *testing.T) {
	g := New(ModeClassic, WithConfig(config.DefaultBlockfallConfig()))
	g.Reset(runtimeConfig(80, 24, 2))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if hud := screen.Row(0); !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "Lines: 0") {
		t.Errorf("HUD = %q", hud)
	}

	// 10 columns of 2 characters plus borders, centered.
	left := (80 - 22) / 2
	corners := []struct {
		x, y int
		r    rune
	}{
		{left, 1, '┌'},
		{left + 21, 1, '┐'},
		{left, 22, '└'},
		{left + 21, 22, '┘'},
	}
	for _, c := range corners {
		if got := screen.Get(c.x, c.y); got != c.r {
			t.Errorf("Get(%d, %d) = %q, expected %q", c.x, c.y, got, c.r)
		}
	}

	p := g.state.Piece()
	for _, cell := range p.Cells() {
		sx := left + 1 + cell[0]*2
		sy := 2 + cell[1]
		got := screen.GetCell(sx, sy)
		if got.Rune != '█' || got.Color != p.Color {
			t.Errorf("piece cell (%d, %d) drawn as %q/%v, expected block in %v", cell[0], cell[1], got.Rune, got.Color, p.Color)
		}
	}

	if !strings.Contains(screen.Row(12), "B L O C K F A L L") {
		t.Errorf("watermark missing from middle row: %q", screen.Row(12))
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New(ModeClassic, WithConfig(config.DefaultBlockfallConfig()))
	g.Reset(runtimeConfig(30, 12, 2))

	screen := core.NewScreen(30, 12)
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "Window too small") || !strings.Contains(out, "Need 22x23") {
		t.Errorf("too-small overlay missing:\n%s", out)
	}
}

func TestParticleRune(t *testing.T) {
	tests := []struct {
		opacity  float64
		expected rune
	}{
		{1, '*'},
		{0.7, '*'},
		{0.5, '+'},
		{0.1, '.'},
		{0, 0},
		{-0.2, 0},
	}
	for _, tc := range tests {
		if got := particleRune(tc.opacity); got != tc.expected {
			t.Errorf("particleRune(%v) = %q, expected %q", tc.opacity, got, tc.expected)
		}
	}
}

func TestOverlayWiderThanAreaStaysOnScreen(t *testing.T) {
	g := New(ModeClassic, WithConfig(config.DefaultBlockfallConfig()))
	g.Reset(runtimeConfig(80, 24, 1))

	screen := core.NewScreen(20, 6)
	g.renderOverlay(screen, core.NewRect(2, 1, 4, 2), "Window too small", "Need 22x23")

	if got := screen.Get(0, 0); got != '┌' {
		t.Errorf("box corner at (0, 0) = %q, expected '┌'", got)
	}
	if row := screen.Row(1); !strings.Contains(row, "Window too small") {
		t.Errorf("title clipped: %q", row)
	}
}

func TestUnstartedGameIsInert(t *testing.T) {
	g := New(ModeClassic, WithConfig(config.DefaultBlockfallConfig()))

	if g.Handle(core.ActionLeft) {
		t.Error("Handle() before Reset should report false")
	}
	if result := g.Step(); result.State != (core.GameState{}) || result.Cleared != 0 {
		t.Errorf("Step() before Reset = %+v, expected zero", result)
	}
	g.Resize(80, 24)

	screen := core.NewScreen(20, 5)
	screen.DrawText(0, 0, "x")
	g.Render(screen)
	if strings.TrimSpace(screen.String()) != "" {
		t.Errorf("Render() before Reset should leave a blank screen:\n%s", screen.String())
	}
}
