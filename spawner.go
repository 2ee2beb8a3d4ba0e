package main

import (
	"math"

	"github.com/tsujio/game-util/mathutil"
)

// pickCategory maps a uniform draw in [0,1) to a balloon category.
// Checks run in the fixed order bomb, golden, star; anything past the
// cumulative chances is a normal balloon.
func pickCategory(p DifficultyProfile, r float64) BalloonCategory {
	switch {
	case r < p.BombChance:
		return BalloonBomb
	case r < p.BombChance+p.GoldenChance:
		return BalloonGolden
	case r < p.BombChance+p.GoldenChance+p.StarChance:
		return BalloonStar
	}
	return BalloonNormal
}

// spawnBalloon creates one balloon just below the bottom edge, or nil when
// the viewport has no usable area.
func (g *Game) spawnBalloon() *Balloon {
	minDim := math.Min(g.screenWidth, g.screenHeight)
	r := minDim * 0.05 * (0.8 + g.random.Float64()*0.4)
	if !(r > 0) {
		return nil
	}

	x := g.screenWidth / 2
	if g.screenWidth > 2*r {
		x = r + g.random.Float64()*(g.screenWidth-2*r)
	}

	category := pickCategory(g.profile(), g.random.Float64())

	col := normalBalloonColors[g.random.Intn(len(normalBalloonColors))]
	switch category {
	case BalloonStar:
		col = starBalloonColor
	case BalloonGolden:
		col = goldenBalloonColor
	case BalloonBomb:
		col = bombBalloonColor
	}

	g.nextBalloonID++
	return &Balloon{
		id:       g.nextBalloonID,
		pos:      mathutil.NewVector2D(x, g.screenHeight+r),
		v:        mathutil.NewVector2D(g.random.Float64()*0.8-0.4, -g.spawnSpeed*(0.8+g.random.Float64()*0.4)),
		r:        r,
		category: category,
		col:      col,
		angularV: (g.random.Float64() - 0.5) * 0.04,
	}
}
