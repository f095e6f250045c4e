package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"classic", "fullscreen"} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
	}
}

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr     string
		expected string
	}{
		{":23234", "23234"},
		{"localhost:2222", "2222"},
		{"[::1]:22", "22"},
		{"nonsense", "nonsense"},
	}
	for _, tc := range tests {
		if got := portOf(tc.addr); got != tc.expected {
			t.Errorf("portOf(%q) = %q, expected %q", tc.addr, got, tc.expected)
		}
	}
}

func TestShapeRows(t *testing.T) {
	got := shapeRows(engine.ParseShape(".#", "##"))
	expected := "  ██\n████"
	if got != expected {
		t.Errorf("shapeRows() = %q, expected %q", got, expected)
	}
}

func TestSetupRejectsBadFlags(t *testing.T) {
	defer func(d string, fps int) { flagDifficulty, flagFPS = d, fps }(flagDifficulty, flagFPS)

	flagFPS = 60
	flagDifficulty = "insane"
	if err := setup(nil, nil); err == nil || !strings.Contains(err.Error(), "insane") {
		t.Errorf("setup() with bad difficulty = %v, expected an error naming it", err)
	}

	flagDifficulty = ""
	flagFPS = 0
	if err := setup(nil, nil); err == nil {
		t.Error("setup() with --fps 0 should fail")
	}
}
