package engine

// Collides reports whether shape placed at offset (x, y) leaves the board or
// overlaps a settled cell. Cells above the top edge (row < 0) are checked
// against the side walls only.
func Collides(g *Grid, shape Shape, x, y int) bool {
	for r := range shape {
		for c, on := range shape[r] {
			if !on {
				continue
			}

			bx := x + c
			by := y + r

			if bx < 0 || bx >= g.Cols() || by >= g.Rows() {
				return true
			}

			if by >= 0 && g.Occupied(bx, by) {
				return true
			}
		}
	}
	return false
}

// Fits reports whether the piece can occupy its current position.
func Fits(g *Grid, p Piece) bool {
	return !Collides(g, p.Shape, p.X, p.Y)
}
