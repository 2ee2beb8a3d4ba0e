package main

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tsujio/game-util/mathutil"
)

const particleGravity = 0.15 // px/frame^2, applied to vy every step

type Particle struct {
	pos     *mathutil.Vector2D
	v       *mathutil.Vector2D
	life    float64 // seconds remaining
	maxLife float64
	col     color.RGBA
	size    float64
}

// newBurst emits a radial spray of particles in the popped balloon's color.
func newBurst(random *rand.Rand, pos *mathutil.Vector2D, col color.RGBA, radius float64) []*Particle {
	n := 10 + random.Intn(5)
	particles := make([]*Particle, 0, n)
	for i := 0; i < n; i++ {
		th := random.Float64() * 2 * math.Pi
		speed := 1 + random.Float64()*2
		life := 0.5 + random.Float64()*0.5
		particles = append(particles, &Particle{
			pos:     pos.Clone(),
			v:       mathutil.NewVector2D(math.Cos(th)*speed, math.Sin(th)*speed),
			life:    life,
			maxLife: life,
			col:     col,
			size:    radius * (0.08 + random.Float64()*0.08),
		})
	}
	return particles
}

func (p *Particle) Draw(dst *ebiten.Image) {
	a := p.life / p.maxLife
	vector.DrawFilledCircle(dst, float32(p.pos.X), float32(p.pos.Y), float32(p.size), fadeColor(p.col, a), true)
}
