package game

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	burstParticleCount = 120
	burstLifetime      = 90 // ticks a celebration particle lives
	burstGravity       = 0.04
)

// burstParticle is one spark of the win celebration.
type burstParticle struct {
	x, y   float64
	vx, vy float64
	age    int
	hue    uint8 // green channel offset for a little variety
}

// Burst is the one-shot celebratory particle effect fired on winning.
// It is purely presentational and lives entirely in the UI layer; the
// simulation core only triggers it through the win hook.
type Burst struct {
	particles []burstParticle
	rng       *rand.Rand
}

// NewBurst creates an idle burst effect.
func NewBurst(rng *rand.Rand) *Burst {
	return &Burst{rng: rng}
}

// Trigger emits a fresh radial burst centred at (x,y).
func (b *Burst) Trigger(x, y float64) {
	b.particles = b.particles[:0]
	for i := 0; i < burstParticleCount; i++ {
		angle := b.rng.Float64() * 2 * math.Pi
		speed := 0.8 + b.rng.Float64()*2.6
		b.particles = append(b.particles, burstParticle{
			x:   x,
			y:   y,
			vx:  math.Cos(angle) * speed,
			vy:  math.Sin(angle)*speed - 1.0, // initial upward bias
			hue: uint8(b.rng.Intn(156)),
		})
	}
}

// Update advances all live particles one frame.
func (b *Burst) Update() {
	kept := b.particles[:0]
	for _, p := range b.particles {
		p.age++
		if p.age >= burstLifetime {
			continue
		}
		p.vy += burstGravity
		p.x += p.vx
		p.y += p.vy
		kept = append(kept, p)
	}
	b.particles = kept
}

// Draw renders the particles, fading them out over their lifetime.
func (b *Burst) Draw(screen *ebiten.Image) {
	for _, p := range b.particles {
		fade := 1.0 - float64(p.age)/float64(burstLifetime)
		a := uint8(255 * fade)
		c := color.RGBA{R: 255, G: 100 + p.hue, B: 40, A: a}
		vector.DrawFilledCircle(screen, float32(p.x), float32(p.y), 1.5, c, true)
	}
}
