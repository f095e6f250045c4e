package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// footerHeight is the number of terminal rows reserved below the game screen.
const footerHeight = 1

// tickIDs hands out unique tick chain identifiers.
var tickIDs atomic.Int64

// ModelOption configures a game Model.
type ModelOption func(*Model)

// WithHistory records finished games into h.
func WithHistory(h *History) ModelOption {
	return func(m *Model) {
		m.history = h
	}
}

// WithLogger sets the logger for host events.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithScreenshotDir overrides where ctrl+s writes screenshots.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) {
		m.screenshotDir = dir
	}
}

// Model is the Bubble Tea model for running a game mode.
type Model struct {
	game          registry.Game
	screen        *core.Screen
	config        core.RuntimeConfig
	keys          *KeyMapper
	help          help.Model
	history       *History
	logger        *log.Logger
	screenshotDir string
	gameState     core.GameState
	tickID        int
	width         int
	height        int
	quitting      bool
	backToMenu    bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg carries the full terminal size; one row is kept for the help footer.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	width, height := cfg.ScreenW, cfg.ScreenH
	cfg.ScreenH = max(height-footerHeight, 0)

	m := Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:        cfg,
		keys:          NewKeyMapper(),
		help:          help.New(),
		logger:        log.New(io.Discard),
		screenshotDir: defaultScreenshotDir(),
		tickID:        int(tickIDs.Add(1)),
		width:         width,
		height:        height,
	}
	m.help.Width = width
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".blockfall", "screenshots")
	}
	return filepath.Join(home, ".blockfall", "screenshots")
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate, m.tickID)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.apply(m.keys.MapMouse(msg, m.width, m.height))
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Movement is applied to the game at
// once rather than buffered until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Game.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Game.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	default:
		m.apply(action)
	}

	return m, nil
}

// apply forwards a gameplay action to the game.
func (m Model) apply(a core.Action) {
	if a.IsGameplay() {
		m.game.Handle(a)
	}
}

// handleResize processes window resize events. The game keeps its board
// and only re-checks whether it still fits.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-footerHeight, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step()

	// Every finished game bumps the counter, even one that ends while the
	// previous banner is still showing. Zero means no tick has been seen yet.
	if m.gameState.Games > 0 && result.State.Games > m.gameState.Games {
		m.history.Record(m.game.ID(), result.State.LastScore, time.Now())
	}
	m.gameState = result.State

	return m, tickCmd(m.config.TickRate, m.tickID)
}

// saveScreenshot writes the current screen as plain text and returns the
// file path.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(screenText(m.screen)), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// screenText returns the screen as plain text without trailing spaces.
func screenText(s *core.Screen) string {
	var b strings.Builder
	for y := range s.Height() {
		b.WriteString(strings.TrimRight(s.Row(y), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderWithFooter(m.screen, m.help.View(m.keys.Game))
}

// GameState returns the state observed at the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for game and blocks until the player
// leaves. It reports whether the player asked to return to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ...ModelOption) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewModel(game, cfg, opts...),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer press, release and drag
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
