// Package engine implements the Blockfall game-state engine: the board grid,
// the shape catalog, collision checks, merging, line clears, particles and the
// fixed-step update loop. It has no terminal, audio or timer dependencies;
// everything outside the game state is reached through the hooks in Hooks.
package engine

import "github.com/vovakirdan/blockfall/internal/core"

// Empty is the color of an unoccupied grid cell.
const Empty = core.ColorDefault

// Grid is the board of settled cells. Row 0 is the top row.
// Dimensions are fixed for the lifetime of the grid.
type Grid struct {
	rows  int
	cols  int
	cells [][]core.Color
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{rows: rows, cols: cols}
	g.cells = make([][]core.Color, rows)
	for r := range g.cells {
		g.cells[r] = make([]core.Color, cols)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// At returns the color at column x, row y, or Empty when out of bounds.
func (g *Grid) At(x, y int) core.Color {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[y][x]
}

// Set writes a color at column x, row y. Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, c core.Color) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y][x] = c
}

// Occupied reports whether the cell at (x, y) holds a color.
func (g *Grid) Occupied(x, y int) bool {
	return g.At(x, y) != Empty
}

// RowFull reports whether every cell of row y is occupied.
func (g *Grid) RowFull(y int) bool {
	if y < 0 || y >= g.rows {
		return false
	}
	for _, c := range g.cells[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// RemoveRow deletes row y and inserts an empty row at the top.
// Rows above y move down by one; rows below y are untouched.
func (g *Grid) RemoveRow(y int) {
	if y < 0 || y >= g.rows {
		return
	}
	removed := g.cells[y]
	copy(g.cells[1:y+1], g.cells[:y])
	for x := range removed {
		removed[x] = Empty
	}
	g.cells[0] = removed
}

// Reset clears every cell.
func (g *Grid) Reset() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = Empty
		}
	}
}

// Filled returns the number of occupied cells.
func (g *Grid) Filled() int {
	n := 0
	for y := range g.cells {
		for _, c := range g.cells[y] {
			if c != Empty {
				n++
			}
		}
	}
	return n
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) []core.Color {
	if y < 0 || y >= g.rows {
		return nil
	}
	row := make([]core.Color, g.cols)
	copy(row, g.cells[y])
	return row
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.rows, g.cols)
	for y := range g.cells {
		copy(c.cells[y], g.cells[y])
	}
	return c
}
