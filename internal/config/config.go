// Package config provides YAML-based game configuration loading and
// speed presets for Blockfall.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// BlockfallConfig contains all configuration for Blockfall.
type BlockfallConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Timing    TimingConfig    `yaml:"timing"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Particles ParticlesConfig `yaml:"particles"`
	Audio     AudioConfig     `yaml:"audio"`
}

// BoardConfig defines the classic board size and how cells are drawn.
type BoardConfig struct {
	Rows      int `yaml:"rows"`
	Cols      int `yaml:"cols"`
	CellWidth int `yaml:"cell_width"` // Terminal columns per board cell
}

// TimingConfig defines the fixed step and gravity period in milliseconds.
type TimingConfig struct {
	FrameStepMS    int `yaml:"frame_step_ms"`
	DropIntervalMS int `yaml:"drop_interval_ms"`
}

// ScoringConfig defines points awarded by line clears.
type ScoringConfig struct {
	LineScore int `yaml:"line_score"`
}

// ParticlesConfig defines line-clear burst parameters.
type ParticlesConfig struct {
	PerCell    int     `yaml:"per_cell"`
	Speed      float64 `yaml:"speed"`
	MinSize    float64 `yaml:"min_size"`
	SizeSpread float64 `yaml:"size_spread"`
	MinLife    int     `yaml:"min_life"`
	LifeSpread int     `yaml:"life_spread"`
	Shrink     float64 `yaml:"shrink"`
	Fade       float64 `yaml:"fade"`
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	EffectVolume float64 `yaml:"effect_volume"` // 0..1
	MusicVolume  float64 `yaml:"music_volume"`  // 0..1
	Music        bool    `yaml:"music"`
}

// DifficultyPreset represents a named speed setting.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// DropIntervalForPreset returns the gravity period for a preset.
// Unknown presets map to normal.
func DropIntervalForPreset(preset DifficultyPreset) time.Duration {
	switch preset {
	case DifficultyEasy:
		return 700 * time.Millisecond
	case DifficultyHard:
		return 300 * time.Millisecond
	default:
		return 500 * time.Millisecond
	}
}

// ParsePreset converts a flag value to a preset. An empty string is normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, s)
}

// Validate checks that the configuration can drive a game.
func (c BlockfallConfig) Validate() error {
	switch {
	case c.Board.Rows < 1 || c.Board.Cols < 1:
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalid, c.Board.Rows, c.Board.Cols)
	case c.Board.CellWidth < 1:
		return fmt.Errorf("%w: cell_width must be positive, got %d", ErrInvalid, c.Board.CellWidth)
	case c.Timing.FrameStepMS <= 0:
		return fmt.Errorf("%w: frame_step_ms must be positive, got %d", ErrInvalid, c.Timing.FrameStepMS)
	case c.Timing.DropIntervalMS <= 0:
		return fmt.Errorf("%w: drop_interval_ms must be positive, got %d", ErrInvalid, c.Timing.DropIntervalMS)
	case c.Scoring.LineScore < 0:
		return fmt.Errorf("%w: line_score must not be negative, got %d", ErrInvalid, c.Scoring.LineScore)
	case c.Particles.PerCell < 0 || c.Particles.MinLife < 0 || c.Particles.LifeSpread < 0:
		return fmt.Errorf("%w: particle counts and lifetimes must not be negative", ErrInvalid)
	case c.Particles.MinSize < 0 || c.Particles.SizeSpread < 0 || c.Particles.Speed < 0:
		return fmt.Errorf("%w: particle sizes and speed must not be negative", ErrInvalid)
	case c.Audio.EffectVolume < 0 || c.Audio.EffectVolume > 1 || c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1:
		return fmt.Errorf("%w: volumes must be within [0, 1]", ErrInvalid)
	}
	return nil
}

// EngineConfig converts the file configuration to an engine configuration
// for a board of the given size. Zero rows or cols use the configured board.
func (c BlockfallConfig) EngineConfig(rows, cols int) engine.Config {
	if rows <= 0 {
		rows = c.Board.Rows
	}
	if cols <= 0 {
		cols = c.Board.Cols
	}
	return engine.Config{
		Rows:         rows,
		Cols:         cols,
		FrameStep:    time.Duration(c.Timing.FrameStepMS) * time.Millisecond,
		DropInterval: time.Duration(c.Timing.DropIntervalMS) * time.Millisecond,
		LineScore:    c.Scoring.LineScore,
		Particles: engine.ParticleConfig{
			PerCell:    c.Particles.PerCell,
			Speed:      c.Particles.Speed,
			MinSize:    c.Particles.MinSize,
			SizeSpread: c.Particles.SizeSpread,
			MinLife:    c.Particles.MinLife,
			LifeSpread: c.Particles.LifeSpread,
			Shrink:     c.Particles.Shrink,
			Fade:       c.Particles.Fade,
		},
	}
}
