// Package audio plays Blockfall's sound: a short explosion when a row is
// cleared and an optional background loop. Audio is best effort; when no
// output device is available every call is a silent no-op.
package audio

import (
	"errors"
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	explosionLength = 400 * time.Millisecond
)

var errNoDevice = errors.New("audio: output device unavailable")

// Options configures a Player.
type Options struct {
	EffectVolume float64 // 0..1, applied to one-shot cues
	MusicVolume  float64 // 0..1, applied to the background loop
	Logger       *log.Logger
}

// Player mixes cues and music onto the speaker.
// It is safe for concurrent use.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	opts        Options
	logger      *log.Logger
	initialized bool
	failed      bool
	seed        int64
}

// NewPlayer creates a player. Nothing is opened until Initialize.
func NewPlayer(opts Options) *Player {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		opts:   opts,
		logger: logger,
		seed:   time.Now().UnixNano(),
	}
}

// Initialize opens the output device. A failure is logged and returned;
// the player stays usable and silent.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if p.failed {
		return errNoDevice
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.failed = true
		p.logger.Warn("audio disabled", "error", err)
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("audio initialized", "rate", int(sampleRate))
	return nil
}

// Initialized reports whether the output device is open.
func (p *Player) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// PlayExplosion plays the line-clear cue. It returns immediately; overlapping
// cues are mixed.
func (p *Player) PlayExplosion() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.seed++
	cue := beep.Take(sampleRate.N(explosionLength), NewExplosionGenerator(sampleRate, p.seed))
	p.add(newVolume(cue, p.opts.EffectVolume))
}

// PlayMusic starts the background loop if it is not already playing.
func (p *Player) PlayMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	if p.music != nil {
		speaker.Lock()
		p.music.Paused = false
		speaker.Unlock()
		return
	}

	ctrl := newMusicCtrl()
	p.music = ctrl
	p.add(newVolume(ctrl, p.opts.MusicVolume))
}

// newMusicCtrl wraps the background music in a pausable control. The
// generator repeats on its own and never drains.
func newMusicCtrl() *beep.Ctrl {
	return &beep.Ctrl{Streamer: NewMusicGenerator(sampleRate)}
}

// StopMusic pauses the background loop.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Paused = true
	speaker.Unlock()
}

// Cleanup stops all sound. The speaker itself stays open; beep has no way
// to reopen it once closed.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	if p.music != nil {
		p.music.Paused = true
	}
	p.mixer.Clear()
	speaker.Unlock()

	p.music = nil
	p.initialized = false
}

// add must be called with p.mu held.
func (p *Player) add(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// newVolume scales a streamer by a linear 0..1 volume.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
