package main

// bonusWindowMs is how long pop points stay doubled after a golden balloon.
const bonusWindowMs = 8000.0

func categoryPoints(c BalloonCategory) int {
	switch c {
	case BalloonStar:
		return 5
	case BalloonGolden:
		return 3
	case BalloonBomb:
		return 0
	}
	return 1
}

// bonusActive reports whether the doubling window is open at the given game time.
func (g *Game) bonusActive(now float64) bool {
	return g.bonusExpiry > 0 && now < g.bonusExpiry
}

// popBalloon applies the pop transition exactly once per balloon: score,
// bonus window, particle burst, sound, and the bomb-triggered round end.
// Calling it again on a popped balloon is a no-op.
func (g *Game) popBalloon(b *Balloon) {
	if b.popped {
		return
	}
	now := g.now()
	b.popped = true
	b.poppedAt = now

	points := categoryPoints(b.category)
	if g.bonusActive(now) {
		points *= 2
	}
	g.score += points

	if b.category == BalloonGolden {
		// A second golden balloon restarts the window rather than stacking.
		g.bonusExpiry = now + bonusWindowMs
	}

	g.particles = append(g.particles, newBurst(g.random, b.pos, b.col, b.r)...)
	g.playPopSound(b.category)

	if b.category == BalloonBomb {
		g.endGame()
	}
}

// endGame freezes the round and records a new best score when the final
// score strictly beats the stored one. The save is best-effort.
func (g *Game) endGame() {
	g.state = gameStateGameover
	if g.score > g.highScores[g.difficulty] {
		g.highScores[g.difficulty] = g.score
		saveHighScores(g.highScores)
	}
}

func (g *Game) playPopSound(c BalloonCategory) {
	switch c {
	case BalloonNormal:
		g.audio.PlayTone(520, 0.09, WaveformSine)
	case BalloonStar:
		g.audio.PlayTone(660, 0.09, WaveformTriangle)
		g.audio.PlayTone(990, 0.12, WaveformTriangle)
	case BalloonGolden:
		g.audio.PlayTone(880, 0.10, WaveformSquare)
		g.audio.PlayTone(1320, 0.14, WaveformSquare)
	case BalloonBomb:
		g.audio.PlayTone(70, 0.45, WaveformSawtooth)
	}
}
