package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

var (
	_ beep.Streamer = (*ExplosionGenerator)(nil)
	_ beep.Streamer = (*MusicGenerator)(nil)
)

// ExplosionGenerator produces a noise burst over a low rumble with an
// exponential decay.
type ExplosionGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewExplosionGenerator creates an explosion generator. The seed selects the
// noise pattern.
func NewExplosionGenerator(sr beep.SampleRate, seed int64) *ExplosionGenerator {
	return &ExplosionGenerator{sr: sr, seed: seed & 0x7fffffff}
}

func (g *ExplosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 9)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// Pitch drops from 120Hz toward 40Hz.
		freq := 40 + 80*envelope
		rumble := 0.4 * math.Sin(2*math.Pi*freq*t)

		sample := envelope * (0.35*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ExplosionGenerator) Err() error {
	return nil
}

// bassLine is the looped note sequence in Hz, one note per step.
var bassLine = []float64{
	110.00, 110.00, 164.81, 110.00,
	130.81, 130.81, 196.00, 130.81,
	98.00, 98.00, 146.83, 98.00,
	123.47, 123.47, 185.00, 164.81,
}

// MusicGenerator produces a soft plucked bass line that repeats every
// len(bassLine) steps.
type MusicGenerator struct {
	sr   beep.SampleRate
	pos  int
	step int // Samples per note
}

// NewMusicGenerator creates the background music generator.
func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	return &MusicGenerator{
		sr:   sr,
		step: sr.N(250 * time.Millisecond),
	}
}

// Len returns the number of samples in one full loop.
func (g *MusicGenerator) Len() int {
	return g.step * len(bassLine)
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		loopPos := g.pos % g.Len()
		note := bassLine[loopPos/g.step]
		notePos := loopPos % g.step
		t := float64(notePos) / float64(g.sr)

		pluck := math.Exp(-t * 6)
		sample := 0.2 * pluck * (math.Sin(2*math.Pi*note*t) + 0.3*math.Sin(2*math.Pi*note*2*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}
