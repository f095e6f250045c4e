package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print the shape catalog",
	Long:  `Print every shape with its color and all four clockwise rotations.`,
	Args:  cobra.NoArgs,
	Run:   runShapes,
}

func runShapes(_ *cobra.Command, _ []string) {
	gap := lipgloss.NewStyle().PaddingRight(3)

	for _, def := range engine.Catalog() {
		fmt.Printf("%s (%s)\n", def.Name, def.Color)

		views := make([]string, 0, 4)
		shape := def.Matrix
		for range 4 {
			views = append(views, gap.Render(shapeRows(shape)))
			shape = shape.Rotate()
		}
		fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, views...))
		fmt.Println()
	}
}

// shapeRows draws a shape with two-column cells.
func shapeRows(s engine.Shape) string {
	var b strings.Builder
	for y, row := range s {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, filled := range row {
			if filled {
				b.WriteString("██")
			} else {
				b.WriteString("  ")
			}
		}
	}
	return b.String()
}
