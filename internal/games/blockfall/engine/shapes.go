package engine

import (
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Shape is a binary occupancy matrix indexed [row][col].
type Shape [][]bool

// Height returns the number of rows in the matrix.
func (s Shape) Height() int {
	return len(s)
}

// Width returns the number of columns in the matrix.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Rotate returns a copy rotated 90 degrees clockwise
// (transpose, then reverse each row).
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	rotated := make(Shape, w)
	for c := 0; c < w; c++ {
		rotated[c] = make([]bool, h)
		for r := 0; r < h; r++ {
			rotated[c][h-1-r] = s[r][c]
		}
	}
	return rotated
}

// Clone returns a deep copy of the matrix.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for r := range s {
		c[r] = append([]bool(nil), s[r]...)
	}
	return c
}

// Equal reports whether two matrices have identical dimensions and cells.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for r := range s {
		if len(s[r]) != len(o[r]) {
			return false
		}
		for c := range s[r] {
			if s[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

// Cells returns the (col, row) offsets of every occupied cell.
func (s Shape) Cells() [][2]int {
	var cells [][2]int
	for r := range s {
		for c, on := range s[r] {
			if on {
				cells = append(cells, [2]int{c, r})
			}
		}
	}
	return cells
}

// String draws the matrix with '#' for occupied and '.' for empty cells.
func (s Shape) String() string {
	var b strings.Builder
	for r := range s {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, on := range s[r] {
			if on {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// ParseShape builds a matrix from rows of '#' and '.' characters.
func ParseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for r, line := range rows {
		s[r] = make([]bool, len(line))
		for c, ch := range line {
			s[r][c] = ch == '#'
		}
	}
	return s
}

// ShapeDef is a catalog entry: a named matrix with its color.
type ShapeDef struct {
	Name   string
	Matrix Shape
	Color  core.Color
}

var catalog = []ShapeDef{
	{Name: "I", Matrix: ParseShape("####"), Color: core.ColorCyan},
	{Name: "O", Matrix: ParseShape("##", "##"), Color: core.ColorYellow},
	{Name: "T", Matrix: ParseShape("###", ".#."), Color: core.ColorMagenta},
	{Name: "L", Matrix: ParseShape("###", "#.."), Color: core.ColorOrange},
	{Name: "J", Matrix: ParseShape("###", "..#"), Color: core.ColorBlue},
	{Name: "S", Matrix: ParseShape("##.", ".##"), Color: core.ColorGreen},
	{Name: "Z", Matrix: ParseShape(".##", "##."), Color: core.ColorRed},
}

// Catalog returns a copy of the seven shape definitions in catalog order.
func Catalog() []ShapeDef {
	defs := make([]ShapeDef, len(catalog))
	for i, d := range catalog {
		defs[i] = ShapeDef{Name: d.Name, Matrix: d.Matrix.Clone(), Color: d.Color}
	}
	return defs
}

// ShapeByName returns the catalog entry with the given name.
func ShapeByName(name string) (ShapeDef, bool) {
	for _, d := range catalog {
		if d.Name == name {
			return ShapeDef{Name: d.Name, Matrix: d.Matrix.Clone(), Color: d.Color}, true
		}
	}
	return ShapeDef{}, false
}

// Rand is the randomness source used by the engine.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Pick selects a catalog entry uniformly at random.
func Pick(rng Rand) ShapeDef {
	d := catalog[rng.Intn(len(catalog))]
	return ShapeDef{Name: d.Name, Matrix: d.Matrix.Clone(), Color: d.Color}
}
