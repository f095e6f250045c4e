package engine

// Particle is a cosmetic spark spawned by a line clear. Positions and
// velocities are in board cells; nothing in the game logic reads them.
type Particle struct {
	X, Y    float64 // Position in board cells
	VX, VY  float64 // Velocity in cells per tick
	Size    float64 // Radius in cells
	Life    int     // Remaining ticks
	Opacity float64 // 1 when spawned; may go negative before expiry
}

// ParticleConfig controls how bursts are generated and how sparks decay.
type ParticleConfig struct {
	PerCell    int     // Particles spawned per cleared cell
	Speed      float64 // Maximum speed per axis, in cells per tick
	MinSize    float64
	SizeSpread float64 // Sizes fall in [MinSize, MinSize+SizeSpread)
	MinLife    int
	LifeSpread int // Lifetimes fall in [MinLife, MinLife+LifeSpread)
	Shrink     float64
	Fade       float64
}

// DefaultParticleConfig mirrors the classic burst: 50 sparks per cell living
// 30 to 50 ticks, shrinking 5% and fading 0.03 per tick.
func DefaultParticleConfig() ParticleConfig {
	return ParticleConfig{
		PerCell:    50,
		Speed:      0.2,
		MinSize:    0.25,
		SizeSpread: 0.5,
		MinLife:    30,
		LifeSpread: 20,
		Shrink:     0.95,
		Fade:       0.03,
	}
}

// Particles is the running collection of live sparks.
type Particles struct {
	cfg   ParticleConfig
	items []Particle
}

// NewParticles creates an empty collection.
func NewParticles(cfg ParticleConfig) *Particles {
	return &Particles{cfg: cfg}
}

// Burst spawns PerCell sparks centered on the board cell (col, row).
func (p *Particles) Burst(col, row int, rng Rand) {
	cx := float64(col) + 0.5
	cy := float64(row) + 0.5
	for range p.cfg.PerCell {
		life := p.cfg.MinLife
		if p.cfg.LifeSpread > 0 {
			life += rng.Intn(p.cfg.LifeSpread)
		}
		p.items = append(p.items, Particle{
			X:       cx,
			Y:       cy,
			VX:      (rng.Float64() - 0.5) * 2 * p.cfg.Speed,
			VY:      (rng.Float64() - 0.5) * 2 * p.cfg.Speed,
			Size:    p.cfg.MinSize + rng.Float64()*p.cfg.SizeSpread,
			Life:    life,
			Opacity: 1,
		})
	}
}

// Add appends a single particle.
func (p *Particles) Add(pt Particle) {
	p.items = append(p.items, pt)
}

// Tick advances every particle by one step and drops the ones whose
// lifetime has run out. A particle added with Life L is gone after exactly
// L ticks.
func (p *Particles) Tick() {
	live := p.items[:0]
	for _, pt := range p.items {
		pt.X += pt.VX
		pt.Y += pt.VY
		pt.Life--
		pt.Size *= p.cfg.Shrink
		pt.Opacity -= p.cfg.Fade
		if pt.Life > 0 {
			live = append(live, pt)
		}
	}
	clear(p.items[len(live):])
	p.items = live
}

// Len returns the number of live particles.
func (p *Particles) Len() int {
	return len(p.items)
}

// All returns a copy of the live particles.
func (p *Particles) All() []Particle {
	return append([]Particle(nil), p.items...)
}

// Reset drops every particle.
func (p *Particles) Reset() {
	p.items = nil
}
