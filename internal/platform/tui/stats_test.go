package tui

import (
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHistory(t *testing.T) {
	h := NewHistory()
	now := time.Now()
	h.Record("classic", 30, now)
	h.Record("fullscreen", 50, now.Add(time.Second))
	h.Record("classic", 20, now.Add(2*time.Second))

	if h.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", h.Len())
	}

	results := h.Results()
	if results[0].Score != 20 || results[2].Score != 30 {
		t.Errorf("Results() not newest first: %+v", results)
	}

	tests := []struct {
		mode     string
		expected int
	}{
		{"", 50},
		{"classic", 30},
		{"fullscreen", 50},
		{"other", 0},
	}
	for _, tc := range tests {
		if got := h.Best(tc.mode); got != tc.expected {
			t.Errorf("Best(%q) = %d, expected %d", tc.mode, got, tc.expected)
		}
	}
}

func TestNilHistory(t *testing.T) {
	var h *History
	h.Record("classic", 10, time.Now())
	if h.Len() != 0 || h.Best("") != 0 || h.Results() != nil {
		t.Error("nil history should behave as empty")
	}
}

func TestHistoryConcurrentRecord(t *testing.T) {
	h := NewHistory()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Record("classic", i, time.Now())
		}()
	}
	wg.Wait()
	if h.Len() != 50 {
		t.Errorf("Len() = %d, expected 50", h.Len())
	}
}

func TestStatsModelView(t *testing.T) {
	h := NewHistory()
	m := NewStatsModel(h, 80, 24)
	if !strings.Contains(m.View(), "No games finished yet.") {
		t.Error("empty stats should show the empty message")
	}

	h.Record("classic", 70, time.Now())
	m = NewStatsModel(h, 80, 24)
	view := m.View()
	if !strings.Contains(view, "Games: 1  Best: 70") {
		t.Errorf("summary missing from view:\n%s", view)
	}
	if !strings.Contains(view, "classic") {
		t.Error("table should list the mode")
	}
}

func TestStatsModelKeys(t *testing.T) {
	m := NewStatsModel(NewHistory(), 80, 24)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(StatsModel).IsGoingBack() {
		t.Error("esc should go back")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(StatsModel).IsQuitting() {
		t.Error("q should quit")
	}
}
