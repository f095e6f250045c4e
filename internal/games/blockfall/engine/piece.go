package engine

import "github.com/vovakirdan/blockfall/internal/core"

// Piece is the active, player-controlled shape and its board offset.
type Piece struct {
	Name  string
	Shape Shape
	Color core.Color
	X, Y  int
}

// NewPiece places a catalog shape at the spawn position for a board of the
// given width: horizontally centered, top row 0.
func NewPiece(def ShapeDef, cols int) Piece {
	return Piece{
		Name:  def.Name,
		Shape: def.Matrix,
		Color: def.Color,
		X:     cols/2 - def.Matrix.Width()/2,
		Y:     0,
	}
}

// Moved returns a copy offset by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy with the shape rotated clockwise.
// The offset is unchanged.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotate()
	return p
}

// Cells returns the absolute board positions (x, y) the piece occupies.
func (p Piece) Cells() [][2]int {
	cells := p.Shape.Cells()
	for i := range cells {
		cells[i][0] += p.X
		cells[i][1] += p.Y
	}
	return cells
}
