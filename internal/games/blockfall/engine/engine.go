package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by New for unusable configurations.
var ErrInvalidConfig = errors.New("engine: invalid config")

// Config holds the fixed parameters of one game session.
type Config struct {
	Rows         int
	Cols         int
	FrameStep    time.Duration // Time credited to the drop counter per tick
	DropInterval time.Duration // Gravity period
	LineScore    int           // Points per cleared row
	Particles    ParticleConfig
}

// DefaultConfig returns a 20x10 board with 16ms ticks, a 500ms gravity
// period and 10 points per row.
func DefaultConfig() Config {
	return Config{
		Rows:         20,
		Cols:         10,
		FrameStep:    16 * time.Millisecond,
		DropInterval: 500 * time.Millisecond,
		LineScore:    10,
		Particles:    DefaultParticleConfig(),
	}
}

// Validate checks that the configuration can drive a game.
func (c Config) Validate() error {
	switch {
	case c.Rows < 1 || c.Cols < 1:
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	case c.FrameStep <= 0:
		return fmt.Errorf("%w: frame step must be positive, got %s", ErrInvalidConfig, c.FrameStep)
	case c.DropInterval <= 0:
		return fmt.Errorf("%w: drop interval must be positive, got %s", ErrInvalidConfig, c.DropInterval)
	case c.LineScore < 0:
		return fmt.Errorf("%w: line score must not be negative, got %d", ErrInvalidConfig, c.LineScore)
	}
	return nil
}

// Input is a discrete player request.
type Input int

const (
	InputLeft Input = iota
	InputRight
	InputSoftDrop
	InputRotate
)

// String returns the input name.
func (in Input) String() string {
	switch in {
	case InputLeft:
		return "left"
	case InputRight:
		return "right"
	case InputSoftDrop:
		return "soft-drop"
	case InputRotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// State is one game instance: board, active piece, score and particles.
// It is not safe for concurrent use; the host drives it from a single loop.
type State struct {
	cfg   Config
	rng   Rand
	hooks Hooks

	grid        *Grid
	piece       Piece
	particles   *Particles
	score       int
	dropCounter time.Duration
	tick        uint64

	lines    int // Rows cleared since the last reset
	games    int // Games started, including the current one
	gameOver bool
}

// New creates a game and spawns the first piece.
func New(cfg Config, rng Rand, hooks Hooks) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: randomness source is required", ErrInvalidConfig)
	}

	s := &State{
		cfg:       cfg,
		rng:       rng,
		hooks:     hooks,
		grid:      NewGrid(cfg.Rows, cfg.Cols),
		particles: NewParticles(cfg.Particles),
		games:     1,
	}
	s.Spawn()
	return s, nil
}

// Spawn replaces the active piece with a random catalog shape at the top
// center. If the new piece does not fit, the game is over: the board is
// wiped, the score is zeroed and the notifier is called. The new piece stays
// in place on the cleared board so play continues.
func (s *State) Spawn() {
	s.piece = NewPiece(Pick(s.rng), s.cfg.Cols)
	s.gameOver = false

	if !Fits(s.grid, s.piece) {
		final := s.score
		s.grid.Reset()
		s.score = 0
		s.lines = 0
		s.games++
		s.gameOver = true
		s.publishScore()
		if s.hooks.GameOver != nil {
			s.hooks.GameOver.GameOver(final)
		}
	}
}

// Collides checks a shape at an offset against this game's board.
func (s *State) Collides(shape Shape, x, y int) bool {
	return Collides(s.grid, shape, x, y)
}

// Apply handles one player input immediately. It reports whether the piece
// moved or rotated; rejected inputs leave the state untouched.
func (s *State) Apply(in Input) bool {
	switch in {
	case InputLeft:
		return s.MoveLeft()
	case InputRight:
		return s.MoveRight()
	case InputSoftDrop:
		return s.SoftDrop()
	case InputRotate:
		return s.Rotate()
	}
	return false
}

// MoveLeft shifts the piece one column left if it fits.
func (s *State) MoveLeft() bool {
	return s.shift(-1, 0)
}

// MoveRight shifts the piece one column right if it fits.
func (s *State) MoveRight() bool {
	return s.shift(1, 0)
}

// SoftDrop moves the piece one row down if it fits. It never merges; landing
// is left to gravity.
func (s *State) SoftDrop() bool {
	return s.shift(0, 1)
}

func (s *State) shift(dx, dy int) bool {
	if s.Collides(s.piece.Shape, s.piece.X+dx, s.piece.Y+dy) {
		return false
	}
	s.piece = s.piece.Moved(dx, dy)
	return true
}

// Rotate turns the piece clockwise in place if the rotated shape fits at the
// current offset. No alternate offsets are tried.
func (s *State) Rotate() bool {
	rotated := s.piece.Rotated()
	if s.Collides(rotated.Shape, rotated.X, rotated.Y) {
		return false
	}
	s.piece = rotated
	return true
}

// Tick advances the game by one fixed step: gravity when the drop counter
// reaches the interval, then particles, then a draw request. It returns the
// number of rows cleared during this step.
func (s *State) Tick() int {
	s.tick++
	cleared := 0

	s.dropCounter += s.cfg.FrameStep
	if s.dropCounter >= s.cfg.DropInterval {
		if !s.shift(0, 1) {
			s.Merge()
			cleared = s.ClearLines()
			s.Spawn()
		}
		s.dropCounter = 0
	}

	s.particles.Tick()

	if s.hooks.Renderer != nil {
		s.hooks.Renderer.Draw(s.Frame())
	}
	return cleared
}

// Frame returns the current view for rendering.
func (s *State) Frame() Frame {
	return Frame{
		Grid:      s.grid,
		Piece:     s.piece,
		Particles: s.particles.All(),
		Score:     s.score,
		Tick:      s.tick,
	}
}

// Grid returns the board. Callers must not mutate it.
func (s *State) Grid() *Grid {
	return s.grid
}

// Piece returns a copy of the active piece.
func (s *State) Piece() Piece {
	p := s.piece
	p.Shape = p.Shape.Clone()
	return p
}

// Score returns the current score.
func (s *State) Score() int {
	return s.score
}

// Lines returns the rows cleared since the last reset.
func (s *State) Lines() int {
	return s.lines
}

// Games returns how many games this state has hosted, including the current one.
func (s *State) Games() int {
	return s.games
}

// JustEnded reports whether the most recent spawn ended a game.
func (s *State) JustEnded() bool {
	return s.gameOver
}

// Particles returns the live particle collection.
func (s *State) Particles() *Particles {
	return s.particles
}

// Ticks returns the number of Tick calls so far.
func (s *State) Ticks() uint64 {
	return s.tick
}

// Config returns the session configuration.
func (s *State) Config() Config {
	return s.cfg
}

func (s *State) publishScore() {
	if s.hooks.Score != nil {
		s.hooks.Score.SetScore(s.score)
	}
}
