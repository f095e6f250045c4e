package blockfall

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Rows      int
	Cols      int
	Score     int
	Lines     int
	Games     int
	Piece     string
	PieceX    int
	PieceY    int
	Filled    int // Settled cells on the board
	Particles int
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{Mode: string(g.mode)}
	}

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.bannerTicks > 0:
		state = StateGameOver
	}

	p := g.state.Piece()
	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Rows:      g.state.Grid().Rows(),
		Cols:      g.state.Grid().Cols(),
		Score:     g.score,
		Lines:     g.state.Lines(),
		Games:     g.state.Games(),
		Piece:     p.Name,
		PieceX:    p.X,
		PieceY:    p.Y,
		Filled:    g.state.Grid().Filled(),
		Particles: g.state.Particles().Len(),
		State:     state,
	}
}
