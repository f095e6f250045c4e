package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the default Blockfall configuration.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Board: BoardConfig{
			Rows:      20,
			Cols:      10,
			CellWidth: 2,
		},
		Timing: TimingConfig{
			FrameStepMS:    16,
			DropIntervalMS: 500,
		},
		Scoring: ScoringConfig{
			LineScore: 10,
		},
		Particles: ParticlesConfig{
			PerCell:    50,
			Speed:      0.2,
			MinSize:    0.25,
			SizeSpread: 0.5,
			MinLife:    30,
			LifeSpread: 20,
			Shrink:     0.95,
			Fade:       0.03,
		},
		Audio: AudioConfig{
			Enabled:      true,
			EffectVolume: 0.7,
			MusicVolume:  0.5,
			Music:        true,
		},
	}
}
