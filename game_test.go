package main

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/tsujio/game-util/mathutil"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	orig := highScorePath
	highScorePath = filepath.Join(t.TempDir(), "scores.json")
	t.Cleanup(func() { highScorePath = orig })

	g := &Game{
		random:       rand.New(rand.NewSource(1)),
		highScores:   map[Difficulty]int{},
		state:        gameStatePlaying,
		difficulty:   DifficultyNormal,
		screenWidth:  800,
		screenHeight: 600,
	}
	p := g.profile()
	g.spawnSpeed = p.BaseSpeed
	g.spawnIntervalMs = p.SpawnInterval
	return g
}

func addBalloon(g *Game, x, y, r float64, category BalloonCategory) *Balloon {
	g.nextBalloonID++
	b := &Balloon{
		id:       g.nextBalloonID,
		pos:      mathutil.NewVector2D(x, y),
		v:        mathutil.NewVector2D(0, -1),
		r:        r,
		category: category,
		col:      normalBalloonColors[0],
	}
	g.balloons = append(g.balloons, b)
	return b
}

func TestHitTestPopsAtCenter(t *testing.T) {
	g := newTestGame(t)
	b := addBalloon(g, 400, 300, 30, BalloonNormal)

	g.hitTest(mathutil.NewVector2D(400, 300))
	if !b.popped {
		t.Fatal("tap at balloon center did not pop it")
	}
	if g.score != 1 {
		t.Fatalf("score after normal pop = %d, want 1", g.score)
	}
}

func TestHitTestMissAtExactRadius(t *testing.T) {
	g := newTestGame(t)
	b := addBalloon(g, 400, 300, 30, BalloonNormal)

	g.hitTest(mathutil.NewVector2D(430, 300))
	if b.popped {
		t.Fatal("tap at distance == radius must not pop (strict inequality)")
	}
}

func TestHitTestTopmostWins(t *testing.T) {
	g := newTestGame(t)
	back := addBalloon(g, 400, 300, 30, BalloonNormal)
	front := addBalloon(g, 405, 300, 30, BalloonNormal)

	g.hitTest(mathutil.NewVector2D(400, 300))
	if !front.popped {
		t.Fatal("most recently spawned balloon under the tap must pop")
	}
	if back.popped {
		t.Fatal("only one balloon may pop per tap")
	}
}

func TestHitTestNoMatchIsNoop(t *testing.T) {
	g := newTestGame(t)
	addBalloon(g, 400, 300, 30, BalloonNormal)

	g.hitTest(mathutil.NewVector2D(10, 10))
	if g.score != 0 {
		t.Fatalf("score after missed tap = %d, want 0", g.score)
	}
}

func TestStepPoppedBalloonFadeWindow(t *testing.T) {
	g := newTestGame(t)
	g.ticks = 100 // now = 1600ms; the next step lands at 1616ms
	g.lastSpawnAt = 1600

	fading := addBalloon(g, 400, 300, 30, BalloonNormal)
	fading.popped = true
	fading.poppedAt = 1317 // 299ms before the post-step time

	expired := addBalloon(g, 200, 300, 30, BalloonNormal)
	expired.popped = true
	expired.poppedAt = 1315 // 301ms before the post-step time

	g.step()

	if len(g.balloons) != 1 {
		t.Fatalf("balloons after step = %d, want 1", len(g.balloons))
	}
	if g.balloons[0] != fading {
		t.Fatal("balloon 299ms into the fade window was purged too early")
	}
}

func TestStepPurgesFullyOffscreen(t *testing.T) {
	g := newTestGame(t)
	b := addBalloon(g, 400, -31, 30, BalloonNormal) // y+r just below 0 after moving up
	b.popped = true                                 // purged regardless of popped state
	b.poppedAt = g.now()
	addBalloon(g, 400, 300, 30, BalloonNormal)

	g.step()

	if len(g.balloons) != 1 {
		t.Fatalf("balloons after step = %d, want 1", len(g.balloons))
	}
	if g.balloons[0].pos.Y < 0 {
		t.Fatal("offscreen balloon survived the step")
	}
}

func TestStepSpawnsAfterInterval(t *testing.T) {
	g := newTestGame(t)
	g.startGame(DifficultyNormal)

	for i := 0; i < 50; i++ { // 800ms, below the 1400ms interval
		g.step()
	}
	if len(g.balloons) != 0 {
		t.Fatalf("balloons before first interval elapsed = %d, want 0", len(g.balloons))
	}

	for i := 0; i < 150; i++ { // 3200ms total
		g.step()
	}
	if len(g.balloons) == 0 {
		t.Fatal("no balloon spawned after the spawn interval elapsed")
	}
}

func TestStepRampsSpeedAndInterval(t *testing.T) {
	g := newTestGame(t)
	g.startGame(DifficultyNormal)

	g.step()
	speed0, interval0 := g.spawnSpeed, g.spawnIntervalMs
	for i := 0; i < 1000; i++ {
		g.step()
	}
	if g.spawnSpeed <= speed0 {
		t.Fatalf("speed did not ramp up: %f -> %f", speed0, g.spawnSpeed)
	}
	if g.spawnIntervalMs >= interval0 {
		t.Fatalf("spawn interval did not shrink: %f -> %f", interval0, g.spawnIntervalMs)
	}
}

func TestStartGameResetsSession(t *testing.T) {
	g := newTestGame(t)
	g.state = gameStateGameover
	g.score = 7
	g.ticks = 500
	g.bonusExpiry = 9000
	g.nextBalloonID = 42
	addBalloon(g, 400, 300, 30, BalloonNormal)
	g.particles = newBurst(g.random, mathutil.NewVector2D(1, 1), normalBalloonColors[0], 20)

	g.startGame(DifficultyHard)

	if g.state != gameStatePlaying {
		t.Fatalf("state after start = %v, want playing", g.state)
	}
	if g.score != 0 || g.ticks != 0 || g.bonusExpiry != 0 || g.nextBalloonID != 0 {
		t.Fatal("session counters not reset on start")
	}
	if len(g.balloons) != 0 || len(g.particles) != 0 {
		t.Fatal("entity collections not cleared on start")
	}
	if g.difficulty != DifficultyHard {
		t.Fatalf("difficulty = %v, want hard", g.difficulty)
	}
}

func TestReturnToMenuLeavesScore(t *testing.T) {
	g := newTestGame(t)
	g.state = gameStateGameover
	g.score = 9

	g.returnToMenu()

	if g.state != gameStateMenu {
		t.Fatalf("state = %v, want menu", g.state)
	}
	if g.score != 9 {
		t.Fatal("returning to menu must not touch the frozen score")
	}
}
