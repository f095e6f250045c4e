// Package blockfall adapts the falling-block engine to the platform's Game
// interface: it owns board sizing, the game-over banner and rendering, and
// forwards player actions to the engine.
package blockfall

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic    Mode = "classic"
	ModeFullscreen Mode = "fullscreen"
)

// Layout constants
const (
	hudHeight     = 1 // Status line above the board
	minBoardRows  = 4 // Smallest board fullscreen mode will derive
	minBoardCols  = 4
	bannerSeconds = 2
)

// Package-level variables for config, difficulty and collaborators, set by
// the CLI before games are created through the registry.
var (
	configPath       string
	difficultyPreset string
	soundPlayer      engine.SoundPlayer
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the speed preset (easy, normal, hard).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetSoundPlayer sets the sound collaborator used by new games.
// Nil disables sound.
func SetSoundPlayer(p engine.SoundPlayer) {
	soundPlayer = p
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Option configures a Game created with New.
type Option func(*Game)

// WithConfig uses cfg instead of loading the configuration file.
func WithConfig(cfg config.BlockfallConfig) Option {
	return func(g *Game) {
		g.fixedCfg = &cfg
	}
}

// WithSound sets the sound collaborator.
func WithSound(p engine.SoundPlayer) Option {
	return func(g *Game) {
		g.sound = p
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// Game implements the Blockfall game.
type Game struct {
	mode     Mode
	fixedCfg *config.BlockfallConfig
	cfg      config.BlockfallConfig
	sound    engine.SoundPlayer
	logger   *log.Logger

	state *engine.State
	frame engine.Frame // Last frame handed to Draw
	score int          // Last value published to the score sink
	tick  uint64

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int
	tooSmall bool

	// Game-over banner
	bannerTicks int
	finalScore  int
}

// New creates a Blockfall game in the given mode.
func New(mode Mode, opts ...Option) *Game {
	g := &Game{
		mode:   mode,
		sound:  soundPlayer,
		logger: logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g
}

func init() {
	registry.Register(string(ModeClassic), func() registry.Game {
		return New(ModeClassic)
	})
	registry.Register(string(ModeFullscreen), func() registry.Game {
		return New(ModeFullscreen)
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeFullscreen {
		return "Blockfall (Fullscreen)"
	}
	return "Blockfall"
}

// Description returns a one-line summary of the mode.
func (g *Game) Description() string {
	if g.mode == ModeFullscreen {
		return "board sized to fill the terminal"
	}
	return "20 x 10 board"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = g.loadConfig()
	g.tick = 0
	g.score = 0
	g.bannerTicks = 0
	g.finalScore = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	rows, cols := g.boardSize()
	hooks := engine.Hooks{
		Renderer: engine.RendererFunc(g.draw),
		Sound:    g.sound,
		Score:    engine.ScoreFunc(g.setScore),
		GameOver: engine.GameOverFunc(g.gameOver),
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	state, err := engine.New(g.cfg.EngineConfig(rows, cols), rng, hooks)
	if err != nil {
		g.logger.Error("invalid engine config, using defaults", "error", err)
		g.cfg = config.DefaultBlockfallConfig()
		state, err = engine.New(g.cfg.EngineConfig(0, 0), rng, hooks)
		if err != nil {
			g.logger.Error("default engine config rejected", "error", err)
			g.state = nil
			return
		}
	}
	g.state = state
	g.frame = state.Frame()
	g.tooSmall = !g.fits(g.screenW, g.screenH)

	g.logger.Info("game started",
		"mode", g.mode,
		"rows", g.frame.Grid.Rows(),
		"cols", g.frame.Grid.Cols(),
		"drop_ms", g.cfg.Timing.DropIntervalMS,
	)
}

// loadConfig resolves the configuration: an explicit WithConfig value, or
// the file search order with the difficulty preset applied.
func (g *Game) loadConfig() config.BlockfallConfig {
	if g.fixedCfg != nil {
		if err := g.fixedCfg.Validate(); err != nil {
			g.logger.Warn("invalid config, using defaults", "error", err)
			return config.DefaultBlockfallConfig()
		}
		return *g.fixedCfg
	}

	cfg, err := config.LoadBlockfall(configPath)
	if err != nil {
		g.logger.Warn("config load failed, using defaults", "path", configPath, "error", err)
		cfg = config.DefaultBlockfallConfig()
	}
	if difficultyPreset != "" {
		preset, perr := config.ParsePreset(difficultyPreset)
		if perr != nil {
			g.logger.Warn("ignoring difficulty", "error", perr)
		} else {
			config.ApplyBlockfallPreset(&cfg, preset)
		}
	}
	return cfg
}

// boardSize returns the board dimensions for the mode. Fullscreen derives
// them once from the screen; a screen too small for the minimum board
// falls back to the classic size.
func (g *Game) boardSize() (rows, cols int) {
	rows, cols = g.cfg.Board.Rows, g.cfg.Board.Cols
	if g.mode != ModeFullscreen {
		return rows, cols
	}

	r := g.screenH - hudHeight - 2
	c := (g.screenW - 2) / g.cfg.Board.CellWidth
	if r >= minBoardRows && c >= minBoardCols {
		return r, c
	}
	return rows, cols
}

// fits reports whether a w x h screen can show the whole board.
func (g *Game) fits(w, h int) bool {
	requiredW := g.frame.Grid.Cols()*g.cfg.Board.CellWidth + 2
	requiredH := g.frame.Grid.Rows() + hudHeight + 2
	return w >= requiredW && h >= requiredH
}

// Handle applies a gameplay action to the active piece.
func (g *Game) Handle(a core.Action) bool {
	if g.state == nil || g.tooSmall {
		return false
	}

	var in engine.Input
	switch a {
	case core.ActionLeft:
		in = engine.InputLeft
	case core.ActionRight:
		in = engine.InputRight
	case core.ActionSoftDrop:
		in = engine.InputSoftDrop
	case core.ActionRotate:
		in = engine.InputRotate
	default:
		return false
	}

	if !g.state.Apply(in) {
		return false
	}
	g.frame = g.state.Frame()
	return true
}

// Step advances the game by one tick.
func (g *Game) Step() core.StepResult {
	if g.state == nil {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	// Hold the game while the board does not fit on screen
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.bannerTicks > 0 {
		g.bannerTicks--
	}

	cleared := g.state.Tick()
	return core.StepResult{State: g.State(), Cleared: cleared}
}

// Resize updates the layout. The board keeps its size and contents.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.state != nil {
		g.tooSmall = !g.fits(w, h)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.score,
		LastScore: g.finalScore,
		Lines:     g.state.Lines(),
		Games:     g.state.Games(),
		GameOver:  g.bannerTicks > 0,
		TooSmall:  g.tooSmall,
	}
}

// draw is the engine's renderer hook; it keeps the frame for Render.
func (g *Game) draw(f engine.Frame) {
	g.frame = f
}

// setScore is the engine's score sink hook.
func (g *Game) setScore(score int) {
	g.score = score
}

// gameOver is the engine's game-over hook. The board has already been
// cleared; the banner keeps the final score visible for a moment.
func (g *Game) gameOver(finalScore int) {
	g.finalScore = finalScore
	g.bannerTicks = bannerSeconds * g.tickRate
	g.logger.Info("game over", "mode", g.mode, "score", finalScore)
}
