package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tsujio/game-util/mathutil"
)

type BalloonCategory int

const (
	BalloonNormal BalloonCategory = iota
	BalloonStar
	BalloonBomb
	BalloonGolden
)

// balloonFadeMs is how long a popped balloon keeps rendering while it fades out.
const balloonFadeMs = 300.0

var (
	starBalloonColor   = color.RGBA{0xff, 0xaa, 0x33, 0xff}
	goldenBalloonColor = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	bombBalloonColor   = color.RGBA{0x3c, 0x3c, 0x46, 0xff}
)

var normalBalloonColors = []color.RGBA{
	{0xe7, 0x4c, 0x3c, 0xff},
	{0x34, 0x98, 0xdb, 0xff},
	{0x2e, 0xcc, 0x71, 0xff},
	{0x9b, 0x59, 0xb6, 0xff},
	{0xe9, 0x8a, 0xb9, 0xff},
	{0x1a, 0xbc, 0x9c, 0xff},
}

type Balloon struct {
	id       int
	pos      *mathutil.Vector2D
	v        *mathutil.Vector2D
	r        float64
	category BalloonCategory
	col      color.RGBA
	popped   bool
	poppedAt float64 // game time in ms, valid only when popped
	angle    float64
	angularV float64
}

// opacity is 1 while the balloon is live and fades linearly to 0 over the
// post-pop window.
func (b *Balloon) opacity(now float64) float64 {
	if !b.popped {
		return 1
	}
	a := 1 - (now-b.poppedAt)/balloonFadeMs
	if a < 0 {
		return 0
	}
	return a
}

func (b *Balloon) Draw(dst *ebiten.Image, now float64) {
	a := b.opacity(now)
	if a <= 0 {
		return
	}

	x, y, r := float32(b.pos.X), float32(b.pos.Y), float32(b.r)

	// String with a slight sway driven by the cosmetic rotation.
	sway := float32(math.Sin(b.angle)) * r * 0.3
	sx := x
	sy := y + r
	for i := 0; i < 3; i++ {
		p := float32(i+1) / 3
		nx := x + sway*p*p
		ny := y + r + r*1.2*p
		vector.StrokeLine(dst, sx, sy, nx, ny, 1, fadeColor(color.RGBA{0x88, 0x88, 0x88, 0xff}, a), true)
		sx, sy = nx, ny
	}

	// Gradient-shaded body: base disc, lighter inner disc, specular highlight.
	vector.DrawFilledCircle(dst, x, y, r, fadeColor(b.col, a), true)
	vector.DrawFilledCircle(dst, x-r*0.15, y-r*0.2, r*0.7, fadeColor(lighten(b.col, 0.25), a), true)
	vector.DrawFilledCircle(dst, x-r*0.35, y-r*0.4, r*0.22, fadeColor(color.RGBA{0xff, 0xff, 0xff, 0xb0}, a), true)

	b.drawGlyph(dst, a)
}

func (b *Balloon) drawGlyph(dst *ebiten.Image, a float64) {
	x, y, r := float32(b.pos.X), float32(b.pos.Y), float32(b.r)
	switch b.category {
	case BalloonStar:
		drawStar(dst, x, y, r*0.45, fadeColor(color.RGBA{0xff, 0xff, 0xff, 0xff}, a))
	case BalloonGolden:
		// Sparkle cross.
		c := fadeColor(color.RGBA{0xff, 0xff, 0xff, 0xff}, a)
		vector.StrokeLine(dst, x-r*0.4, y, x+r*0.4, y, 2, c, true)
		vector.StrokeLine(dst, x, y-r*0.4, x, y+r*0.4, 2, c, true)
		vector.StrokeLine(dst, x-r*0.25, y-r*0.25, x+r*0.25, y+r*0.25, 1, c, true)
		vector.StrokeLine(dst, x-r*0.25, y+r*0.25, x+r*0.25, y-r*0.25, 1, c, true)
	case BalloonBomb:
		vector.DrawFilledCircle(dst, x, y, r*0.4, fadeColor(color.RGBA{0x11, 0x11, 0x16, 0xff}, a), true)
		// Fuse and spark.
		vector.StrokeLine(dst, x, y-r*0.4, x+r*0.2, y-r*0.65, 2, fadeColor(color.RGBA{0x8a, 0x5a, 0x2b, 0xff}, a), true)
		vector.DrawFilledCircle(dst, x+r*0.2, y-r*0.65, r*0.08, fadeColor(color.RGBA{0xff, 0xa5, 0x00, 0xff}, a), true)
	}
}

func drawStar(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	var pts [5][2]float32
	for i := 0; i < 5; i++ {
		th := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = [2]float32{cx + r*float32(math.Cos(th)), cy + r*float32(math.Sin(th))}
	}
	// Pentagram stroke: every second vertex.
	for i := 0; i < 5; i++ {
		p, q := pts[i], pts[(i+2)%5]
		vector.StrokeLine(dst, p[0], p[1], q[0], q[1], 2, clr, true)
	}
}

// fadeColor scales a premultiplied-alpha color by a global opacity in [0,1].
func fadeColor(c color.RGBA, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func lighten(c color.RGBA, amount float64) color.RGBA {
	f := func(v uint8) uint8 {
		return uint8(math.Min(255, float64(v)+(255-float64(v))*amount))
	}
	return color.RGBA{R: f(c.R), G: f(c.G), B: f(c.B), A: c.A}
}
