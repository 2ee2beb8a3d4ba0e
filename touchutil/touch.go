// Package touchutil unifies mouse clicks and screen touches into taps in
// game screen coordinates.
package touchutil

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tsujio/game-util/mathutil"
)

var justTouchedIDs = make([]ebiten.TouchID, 0)

type Tap struct {
	pos *mathutil.Vector2D
}

func (t Tap) Position() *mathutil.Vector2D {
	return t.pos
}

// AppendJustTapped appends a Tap for the left mouse button press and for
// each screen touch that started this tick. Ebiten already reports both in
// the layout coordinate space, so positions need no further conversion.
func AppendJustTapped(taps []Tap) []Tap {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		taps = append(taps, Tap{pos: mathutil.NewVector2D(float64(x), float64(y))})
	}

	justTouchedIDs = inpututil.AppendJustPressedTouchIDs(justTouchedIDs[:0])
	for _, id := range justTouchedIDs {
		x, y := ebiten.TouchPosition(id)
		taps = append(taps, Tap{pos: mathutil.NewVector2D(float64(x), float64(y))})
	}

	return taps
}
