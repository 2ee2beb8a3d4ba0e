package main

import (
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/samber/lo"
	"github.com/tsujio/game-balloon-pop/touchutil"
	"github.com/tsujio/game-util/mathutil"
)

// frameTimeMs is the nominal simulation step. Each Update advances game time
// by exactly this much regardless of the actual frame timing.
const frameTimeMs = 16.0

type gameState int

const (
	gameStateMenu gameState = iota
	gameStatePlaying
	gameStateGameover
)

type Game struct {
	random *rand.Rand
	audio  *AudioSystem

	state      gameState
	difficulty Difficulty

	// Drawing surface size in device pixels, updated by Layout. A resize
	// only changes these and future spawn placement, never live entities.
	screenWidth  float64
	screenHeight float64

	ticks           uint64
	score           int
	highScores      map[Difficulty]int
	bonusExpiry     float64 // game ms, 0 when no bonus has been opened
	spawnSpeed      float64 // derived from the ramp every frame
	spawnIntervalMs float64
	lastSpawnAt     float64
	nextBalloonID   int

	balloons  []*Balloon
	particles []*Particle

	textCache map[string]*ebiten.Image
}

func (g *Game) profile() DifficultyProfile {
	return difficultyProfiles[g.difficulty]
}

// now is the current game time in ms since round start.
func (g *Game) now() float64 {
	return float64(g.ticks) * frameTimeMs
}

func (g *Game) Update() error {
	taps := touchutil.AppendJustTapped(nil)

	switch g.state {
	case gameStateMenu:
		for _, tap := range taps {
			g.handleMenuTap(tap.Position())
		}
	case gameStatePlaying:
		for _, tap := range taps {
			g.hitTest(tap.Position())
			if g.state != gameStatePlaying {
				break
			}
		}
		if g.state == gameStatePlaying {
			g.step()
		}
	case gameStateGameover:
		for _, tap := range taps {
			g.handleGameoverTap(tap.Position())
		}
	}

	return nil
}

// step advances the simulation by one fixed frame: ramp, conditional spawn,
// balloon motion and purge, particle motion and purge.
func (g *Game) step() {
	g.ticks++
	now := g.now()

	profile := g.profile()
	elapsedSec := now / 1000
	g.spawnSpeed = currentSpeed(profile, elapsedSec)
	g.spawnIntervalMs = currentSpawnInterval(profile, elapsedSec)

	if now-g.lastSpawnAt >= g.spawnIntervalMs {
		if b := g.spawnBalloon(); b != nil {
			g.balloons = append(g.balloons, b)
			g.lastSpawnAt = now
		}
	}

	g.balloons = lo.Map(g.balloons, func(b *Balloon, _ int) *Balloon {
		b.pos = b.pos.Add(b.v)
		b.angle += b.angularV
		return b
	})
	g.balloons = lo.Filter(g.balloons, func(b *Balloon, _ int) bool {
		if b.pos.Y+b.r < 0 {
			return false
		}
		return !b.popped || now-b.poppedAt <= balloonFadeMs
	})

	g.particles = lo.Map(g.particles, func(p *Particle, _ int) *Particle {
		p.pos = p.pos.Add(p.v)
		p.v.Y += particleGravity
		p.life -= frameTimeMs / 1000
		return p
	})
	g.particles = lo.Filter(g.particles, func(p *Particle, _ int) bool {
		return p.life > 0
	})
}

// hitTest pops at most one live balloon under the given point. Balloons are
// scanned newest-first so the balloon drawn on top wins.
func (g *Game) hitTest(pos *mathutil.Vector2D) {
	for i := len(g.balloons) - 1; i >= 0; i-- {
		b := g.balloons[i]
		if b.popped {
			continue
		}
		if math.Pow(pos.X-b.pos.X, 2)+math.Pow(pos.Y-b.pos.Y, 2) < math.Pow(b.r, 2) {
			g.popBalloon(b)
			return
		}
	}
}

// startGame resets the session and enters the playing state.
func (g *Game) startGame(difficulty Difficulty) {
	g.difficulty = difficulty
	g.highScores = loadHighScores()
	g.state = gameStatePlaying
	g.ticks = 0
	g.score = 0
	g.bonusExpiry = 0
	g.lastSpawnAt = 0
	g.nextBalloonID = 0
	profile := g.profile()
	g.spawnSpeed = profile.BaseSpeed
	g.spawnIntervalMs = profile.SpawnInterval
	g.balloons = nil
	g.particles = nil
}

func (g *Game) returnToMenu() {
	g.state = gameStateMenu
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	now := g.now()
	for _, b := range g.balloons {
		b.Draw(screen, now)
	}
	for _, p := range g.particles {
		p.Draw(screen)
	}

	switch g.state {
	case gameStateMenu:
		g.drawMenu(screen)
	case gameStatePlaying:
		g.drawHUD(screen)
	case gameStateGameover:
		g.drawHUD(screen)
		g.drawGameover(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := ebiten.DeviceScaleFactor()
	w := int(float64(outsideWidth) * s)
	h := int(float64(outsideHeight) * s)
	g.screenWidth, g.screenHeight = float64(w), float64(h)
	return w, h
}

func (g *Game) initialize() {
	g.state = gameStateMenu
	g.difficulty = DifficultyNormal
	g.highScores = loadHighScores()
	g.balloons = nil
	g.particles = nil
}
