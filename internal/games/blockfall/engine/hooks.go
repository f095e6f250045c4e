package engine

// Frame is the read-only view handed to the renderer after each tick.
// Grid is a live pointer owned by the engine; renderers must not mutate it
// or keep it past the Draw call.
type Frame struct {
	Grid      *Grid
	Piece     Piece
	Particles []Particle
	Score     int
	Tick      uint64
}

// Renderer draws the game state once per tick.
type Renderer interface {
	Draw(f Frame)
}

// SoundPlayer plays one-shot cues. Implementations must not block.
type SoundPlayer interface {
	PlayExplosion()
}

// ScoreSink displays the current score.
type ScoreSink interface {
	SetScore(score int)
}

// GameOverNotifier is told when a spawn collides and the board is reset.
// It runs synchronously and must return promptly; play continues right after.
type GameOverNotifier interface {
	GameOver(finalScore int)
}

// Hooks bundles the engine's collaborators. Nil members are skipped.
type Hooks struct {
	Renderer Renderer
	Sound    SoundPlayer
	Score    ScoreSink
	GameOver GameOverNotifier
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(f Frame)

// Draw calls f(fr).
func (f RendererFunc) Draw(fr Frame) { f(fr) }

// SoundFunc adapts a function to SoundPlayer.
type SoundFunc func()

// PlayExplosion calls f.
func (f SoundFunc) PlayExplosion() { f() }

// ScoreFunc adapts a function to ScoreSink.
type ScoreFunc func(score int)

// SetScore calls f(score).
func (f ScoreFunc) SetScore(score int) { f(score) }

// GameOverFunc adapts a function to GameOverNotifier.
type GameOverFunc func(finalScore int)

// GameOver calls f(finalScore).
func (f GameOverFunc) GameOver(finalScore int) { f(finalScore) }
