package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestRenderScreenKeepsTextAndRows(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColored(0, 0, "SCORE", core.ColorYellow)
	s.DrawTextColored(0, 1, "████", core.ColorCyan)
	s.SetColored(11, 2, '*', core.ColorOrange)

	out := RenderScreen(s)
	if lines := strings.Split(out, "\n"); len(lines) != 3 {
		t.Fatalf("RenderScreen() has %d rows, expected 3", len(lines))
	}
	for _, want := range []string{"SCORE", "████", "*"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q", want)
		}
	}
}

func TestRenderWithFooter(t *testing.T) {
	s := core.NewScreen(4, 2)
	if got := RenderWithFooter(s, ""); got != RenderScreen(s) {
		t.Error("empty footer should render the screen only")
	}

	out := RenderWithFooter(s, "q quit")
	if lines := strings.Split(out, "\n"); len(lines) != 3 {
		t.Errorf("RenderWithFooter() has %d rows, expected 3", len(lines))
	}
	if !strings.Contains(out, "q quit") {
		t.Error("footer text missing")
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := range colorCodes {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for %v", c)
		}
	}
	if _, ok := colorStyles[core.ColorDefault]; !ok {
		t.Error("no default style")
	}
}
