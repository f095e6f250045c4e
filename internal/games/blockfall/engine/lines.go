package engine

// Merge writes the active piece's color into the grid cells it covers.
// It is called after a downward move has been rejected.
func (s *State) Merge() {
	for _, cell := range s.piece.Cells() {
		s.grid.Set(cell[0], cell[1], s.piece.Color)
	}
}

// ClearLines removes every full row, scanning from the bottom up. Each
// removed row spawns a particle burst along its cells, plays the explosion
// cue, shifts the rows above it down by one and awards LineScore points.
// The same index is checked again after a removal so that stacked full rows
// are each cleared and scored once. It returns the number of rows removed.
func (s *State) ClearLines() int {
	cleared := 0
	for y := s.grid.Rows() - 1; y >= 0; {
		if !s.grid.RowFull(y) {
			y--
			continue
		}

		for x := 0; x < s.grid.Cols(); x++ {
			s.particles.Burst(x, y, s.rng)
		}
		if s.hooks.Sound != nil {
			s.hooks.Sound.PlayExplosion()
		}

		s.grid.RemoveRow(y)
		s.score += s.cfg.LineScore
		s.lines++
		cleared++
		s.publishScore()
	}
	return cleared
}
