package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tsujio/game-util/mathutil"
	"golang.org/x/image/font/basicfont"
)

var (
	skyTopColor    = color.RGBA{0x6f, 0xb7, 0xe8, 0xff}
	skyBottomColor = color.RGBA{0xd9, 0xf0, 0xfb, 0xff}
	hudTextColor   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	hudOutline     = color.RGBA{0x2c, 0x3e, 0x50, 0xff}
	buttonFill     = color.RGBA{0xff, 0xff, 0xff, 0x50}
	buttonBorder   = color.RGBA{0xff, 0xff, 0xff, 0xc0}
	overlayColor   = color.RGBA{0x00, 0x00, 0x00, 0x78}
)

var bgGradient *ebiten.Image

func (g *Game) drawBackground(screen *ebiten.Image) {
	if bgGradient == nil {
		bgGradient = ebiten.NewImage(1, 256)
		for y := 0; y < 256; y++ {
			t := float64(y) / 255
			bgGradient.Set(0, y, color.RGBA{
				R: uint8(float64(skyTopColor.R) + (float64(skyBottomColor.R)-float64(skyTopColor.R))*t),
				G: uint8(float64(skyTopColor.G) + (float64(skyBottomColor.G)-float64(skyTopColor.G))*t),
				B: uint8(float64(skyTopColor.B) + (float64(skyBottomColor.B)-float64(skyTopColor.B))*t),
				A: 0xff,
			})
		}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.screenWidth, g.screenHeight/256)
	screen.DrawImage(bgGradient, op)
}

// fontScale sizes all HUD text relative to the drawing surface so nothing
// assumes a fixed resolution.
func (g *Game) fontScale() float64 {
	return math.Max(1, g.screenHeight/240)
}

// textImage renders a string once with a dark outline and caches it; scaled
// draws of the cached image keep text crisp enough for an arcade HUD without
// shipping a font asset.
func (g *Game) textImage(s string) *ebiten.Image {
	if g.textCache == nil {
		g.textCache = map[string]*ebiten.Image{}
	}
	if img, ok := g.textCache[s]; ok {
		return img
	}
	w := 7*len(s) + 4
	img := ebiten.NewImage(w, 17)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(img, s, basicfont.Face7x13, 2+dx, 13+dy, hudOutline)
		}
	}
	text.Draw(img, s, basicfont.Face7x13, 2, 13, hudTextColor)
	g.textCache[s] = img
	return img
}

func (g *Game) drawText(dst *ebiten.Image, s string, cx, cy, scale float64) {
	img := g.textImage(s)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-float64(w)*scale/2, cy-float64(h)*scale/2)
	dst.DrawImage(img, op)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	fs := g.fontScale()
	now := g.now()

	score := fmt.Sprintf("SCORE %d", g.score)
	g.drawText(screen, score, float64(7*len(score)+4)*fs*0.75+g.screenWidth*0.02, g.screenHeight*0.05, fs*1.5)

	label := g.difficulty.String()
	g.drawText(screen, label, g.screenWidth-float64(7*len(label)+4)*fs/2-g.screenWidth*0.02, g.screenHeight*0.05, fs)

	if g.bonusActive(now) {
		secs := int(math.Ceil((g.bonusExpiry - now) / 1000))
		g.drawText(screen, fmt.Sprintf("BONUS x2 %ds", secs), g.screenWidth/2, g.screenHeight*0.05, fs)
	}
}

type rect struct {
	x, y, w, h float64
}

func (r rect) contains(pos *mathutil.Vector2D) bool {
	return pos.X >= r.x && pos.X <= r.x+r.w && pos.Y >= r.y && pos.Y <= r.y+r.h
}

func (r rect) draw(dst *ebiten.Image) {
	vector.DrawFilledRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), buttonFill, true)
	vector.StrokeRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 2, buttonBorder, true)
}

func (g *Game) difficultyButtonRect(i int) rect {
	return rect{
		x: g.screenWidth * 0.25,
		y: g.screenHeight * (0.38 + 0.13*float64(i)),
		w: g.screenWidth * 0.5,
		h: g.screenHeight * 0.09,
	}
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	fs := g.fontScale()
	g.drawText(screen, "BALLOON POP", g.screenWidth/2, g.screenHeight*0.2, fs*2.5)
	g.drawText(screen, "POP BALLOONS, DODGE THE BOMB", g.screenWidth/2, g.screenHeight*0.29, fs*0.8)

	for i, d := range difficulties {
		r := g.difficultyButtonRect(i)
		r.draw(screen)
		label := d.String()
		if best := g.highScores[d]; best > 0 {
			label = fmt.Sprintf("%s  BEST %d", d, best)
		}
		g.drawText(screen, label, r.x+r.w/2, r.y+r.h/2, fs)
	}
}

func (g *Game) playAgainButtonRect() rect {
	return rect{
		x: g.screenWidth * 0.25,
		y: g.screenHeight * 0.58,
		w: g.screenWidth * 0.5,
		h: g.screenHeight * 0.09,
	}
}

func (g *Game) menuButtonRect() rect {
	return rect{
		x: g.screenWidth * 0.25,
		y: g.screenHeight * 0.7,
		w: g.screenWidth * 0.5,
		h: g.screenHeight * 0.09,
	}
}

func (g *Game) drawGameover(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(g.screenWidth), float32(g.screenHeight), overlayColor, false)

	fs := g.fontScale()
	g.drawText(screen, "GAME OVER", g.screenWidth/2, g.screenHeight*0.28, fs*2.5)
	g.drawText(screen, fmt.Sprintf("SCORE %d", g.score), g.screenWidth/2, g.screenHeight*0.4, fs*1.5)
	g.drawText(screen, fmt.Sprintf("BEST %d", g.highScores[g.difficulty]), g.screenWidth/2, g.screenHeight*0.47, fs)

	r := g.playAgainButtonRect()
	r.draw(screen)
	g.drawText(screen, "PLAY AGAIN", r.x+r.w/2, r.y+r.h/2, fs)

	r = g.menuButtonRect()
	r.draw(screen)
	g.drawText(screen, "MENU", r.x+r.w/2, r.y+r.h/2, fs)
}

func (g *Game) handleMenuTap(pos *mathutil.Vector2D) {
	for i, d := range difficulties {
		if g.difficultyButtonRect(i).contains(pos) {
			g.startGame(d)
			return
		}
	}
}

func (g *Game) handleGameoverTap(pos *mathutil.Vector2D) {
	if g.playAgainButtonRect().contains(pos) {
		g.startGame(g.difficulty)
		return
	}
	if g.menuButtonRect().contains(pos) {
		g.returnToMenu()
	}
}
