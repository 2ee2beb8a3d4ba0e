package main

import "testing"

func TestPopPointsByCategory(t *testing.T) {
	cases := []struct {
		category BalloonCategory
		points   int
	}{
		{BalloonNormal, 1},
		{BalloonStar, 5},
		{BalloonGolden, 3},
		{BalloonBomb, 0},
	}
	for _, c := range cases {
		g := newTestGame(t)
		b := addBalloon(g, 400, 300, 30, c.category)
		g.popBalloon(b)
		if g.score != c.points {
			t.Errorf("pop of category %d scored %d, want %d", c.category, g.score, c.points)
		}
	}
}

func TestPopIdempotent(t *testing.T) {
	g := newTestGame(t)
	b := addBalloon(g, 400, 300, 30, BalloonStar)

	g.popBalloon(b)
	first := b.poppedAt
	particles := len(g.particles)
	g.ticks = 50
	g.popBalloon(b)

	if g.score != 5 {
		t.Fatalf("score after double pop = %d, want 5", g.score)
	}
	if b.poppedAt != first {
		t.Fatal("pop timestamp must be set exactly once")
	}
	if len(g.particles) != particles {
		t.Fatal("second pop must not emit particles")
	}
}

func TestGoldenOpensAndRefreshesBonus(t *testing.T) {
	g := newTestGame(t)
	b := addBalloon(g, 400, 300, 30, BalloonGolden)

	g.popBalloon(b)
	if g.bonusExpiry != g.now()+bonusWindowMs {
		t.Fatalf("bonus expiry = %f, want %f", g.bonusExpiry, g.now()+bonusWindowMs)
	}

	g.ticks = 125 // 2000ms in
	b2 := addBalloon(g, 200, 300, 30, BalloonGolden)
	g.popBalloon(b2)
	if g.bonusExpiry != 2000+bonusWindowMs {
		t.Fatalf("second golden must overwrite expiry, got %f", g.bonusExpiry)
	}
}

func TestBonusDoublesPoints(t *testing.T) {
	g := newTestGame(t)
	g.ticks = 125 // now = 2000ms
	g.bonusExpiry = g.now() + 100
	b := addBalloon(g, 400, 300, 30, BalloonNormal)
	g.popBalloon(b)
	if g.score != 2 {
		t.Fatalf("pop 100ms before expiry scored %d, want 2", g.score)
	}

	g = newTestGame(t)
	g.ticks = 125
	g.bonusExpiry = g.now() - 1
	b = addBalloon(g, 400, 300, 30, BalloonNormal)
	g.popBalloon(b)
	if g.score != 1 {
		t.Fatalf("pop 1ms after expiry scored %d, want 1", g.score)
	}
}

func TestGoldenPointsDoubleInsideOwnWindow(t *testing.T) {
	g := newTestGame(t)
	first := addBalloon(g, 400, 300, 30, BalloonGolden)
	g.popBalloon(first)

	g.ticks = 62 // ~1s later, well inside the 8s window
	second := addBalloon(g, 200, 300, 30, BalloonGolden)
	g.popBalloon(second)

	if g.score != 3+6 {
		t.Fatalf("score = %d, want 9 (3 then doubled 6)", g.score)
	}
}

func TestBombEndsRoundAndUpdatesBest(t *testing.T) {
	g := newTestGame(t)
	g.score = 10
	g.highScores[DifficultyNormal] = 5
	b := addBalloon(g, 400, 300, 30, BalloonBomb)

	g.popBalloon(b)

	if g.state != gameStateGameover {
		t.Fatalf("state after bomb pop = %v, want gameover", g.state)
	}
	if g.score != 10 {
		t.Fatalf("bomb pop changed score to %d, want 10", g.score)
	}
	if g.highScores[DifficultyNormal] != 10 {
		t.Fatalf("best = %d, want 10", g.highScores[DifficultyNormal])
	}
	if persisted := loadHighScores(); persisted[DifficultyNormal] != 10 {
		t.Fatalf("persisted best = %d, want 10", persisted[DifficultyNormal])
	}
}

func TestBombDoesNotLowerEqualBest(t *testing.T) {
	g := newTestGame(t)
	g.score = 10
	g.highScores[DifficultyNormal] = 10
	b := addBalloon(g, 400, 300, 30, BalloonBomb)

	g.popBalloon(b)

	if g.highScores[DifficultyNormal] != 10 {
		t.Fatalf("best = %d, want unchanged 10", g.highScores[DifficultyNormal])
	}
	if persisted := loadHighScores(); len(persisted) != 0 {
		t.Fatal("equal score must not trigger a save")
	}
}
