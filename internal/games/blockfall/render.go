package blockfall

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

const watermark = "BLOCKFALL"

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.state == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight),
			"Window too small", g.requiredSize())
		return
	}

	board := g.boardRect(dst)
	dst.DrawBox(board, core.ColorGray)

	inner := board.Inset(1)
	g.renderWatermark(dst, inner)
	g.renderGrid(dst, inner)
	g.renderPiece(dst, inner)
	g.renderParticles(dst, inner)

	if g.bannerTicks > 0 {
		g.renderOverlay(dst, inner, "Game Over", fmt.Sprintf("Score: %d", g.finalScore))
	}
}

// boardRect returns the boxed board area, centered horizontally below the HUD.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	w := g.frame.Grid.Cols()*g.cfg.Board.CellWidth + 2
	h := g.frame.Grid.Rows() + 2
	x := core.Max(0, (dst.Width()-w)/2)
	return core.NewRect(x, hudHeight, w, h)
}

// requiredSize describes the minimum screen for the current board.
func (g *Game) requiredSize() string {
	w := g.frame.Grid.Cols()*g.cfg.Board.CellWidth + 2
	h := g.frame.Grid.Rows() + hudHeight + 2
	return fmt.Sprintf("Need %dx%d", w, h)
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Score: %d  Lines: %d  Game: %d", g.Title(), g.score, g.state.Lines(), g.state.Games())
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
}

// renderWatermark draws the title faintly across the middle of the board.
func (g *Game) renderWatermark(dst *core.Screen, inner core.Rect) {
	text := watermark
	if len(text) > inner.W {
		return
	}
	// Spread the letters when the board is wide enough.
	if spaced := strings.Join(strings.Split(text, ""), " "); len(spaced) <= inner.W {
		text = spaced
	}
	x := inner.X + (inner.W-len(text))/2
	y := inner.Y + inner.H/2
	dst.DrawTextColored(x, y, text, core.ColorGray)
}

// renderGrid draws the settled cells.
func (g *Game) renderGrid(dst *core.Screen, inner core.Rect) {
	grid := g.frame.Grid
	for y := range grid.Rows() {
		for x := range grid.Cols() {
			if c := grid.At(x, y); c != engine.Empty {
				g.drawCell(dst, inner, x, y, c)
			}
		}
	}
}

// renderPiece draws the active piece. Cells above the top edge are hidden.
func (g *Game) renderPiece(dst *core.Screen, inner core.Rect) {
	p := g.frame.Piece
	for _, cell := range p.Cells() {
		if cell[1] < 0 {
			continue
		}
		g.drawCell(dst, inner, cell[0], cell[1], p.Color)
	}
}

// drawCell paints one board cell as a solid block.
func (g *Game) drawCell(dst *core.Screen, inner core.Rect, x, y int, c core.Color) {
	sx := inner.X + x*g.cfg.Board.CellWidth
	sy := inner.Y + y
	for i := range g.cfg.Board.CellWidth {
		dst.SetColored(sx+i, sy, '█', c)
	}
}

// renderParticles draws sparks over the board. Fully faded sparks are
// invisible even while they are still alive.
func (g *Game) renderParticles(dst *core.Screen, inner core.Rect) {
	cw := float64(g.cfg.Board.CellWidth)
	for _, pt := range g.frame.Particles {
		r := particleRune(pt.Opacity)
		if r == 0 {
			continue
		}
		sx := inner.X + int(pt.X*cw)
		sy := inner.Y + int(pt.Y)
		if pt.X < 0 || pt.Y < 0 || !inner.Contains(sx, sy) {
			continue
		}
		dst.SetColored(sx, sy, r, core.ColorOrange)
	}
}

// particleRune picks a glyph for a spark's opacity, or 0 when it is not visible.
func particleRune(opacity float64) rune {
	switch {
	case opacity > 0.66:
		return '*'
	case opacity > 0.33:
		return '+'
	case opacity > 0:
		return '.'
	default:
		return 0
	}
}

// renderOverlay draws a centered two-line message inside area. A box wider
// than area is kept on screen.
func (g *Game) renderOverlay(dst *core.Screen, area core.Rect, title, subtitle string) {
	lines := []string{title, subtitle}
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	width += 4

	x := core.Clamp(area.X+(area.W-width)/2, 0, core.Max(0, dst.Width()-width))
	y := core.Clamp(area.Y+(area.H-4)/2, 0, core.Max(0, dst.Height()-4))
	box := core.NewRect(x, y, width, 4)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, core.ColorBrightWhite)
	}
}
