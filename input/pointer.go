// Package input samples the ebiten mouse and touch screen into one pointer.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/hud/ui"
)

// Pointer merges mouse and touch input into a single ui.PointerState per
// frame. The first active touch wins over the mouse. After a touch ends the
// pointer stays where the finger lifted until the mouse moves, so a tap
// releases over the widget it pressed.
type Pointer struct {
	touches []ebiten.TouchID

	touching   bool
	lastTouch  ui.Vector2
	lastCursor ui.Vector2
}

// NewPointer creates a pointer sampler.
func NewPointer() *Pointer {
	return &Pointer{
		touches: make([]ebiten.TouchID, 0, 8),
	}
}

// Read samples the current pointer. Call it once per frame from Update.
func (p *Pointer) Read() ui.PointerState {
	cx, cy := ebiten.CursorPosition()
	cursor := ui.Vector2{X: float64(cx), Y: float64(cy)}
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	p.touches = ebiten.AppendTouchIDs(p.touches[:0])
	var touch *ui.Vector2
	if len(p.touches) > 0 {
		tx, ty := ebiten.TouchPosition(p.touches[0])
		touch = &ui.Vector2{X: float64(tx), Y: float64(ty)}
	}
	return p.sample(cursor, mouseDown, touch)
}

func (p *Pointer) sample(cursor ui.Vector2, mouseDown bool, touch *ui.Vector2) ui.PointerState {
	defer func() { p.lastCursor = cursor }()

	if touch != nil {
		p.touching = true
		p.lastTouch = *touch
		return ui.PointerState{Position: *touch, Down: true}
	}
	if p.touching {
		if cursor == p.lastCursor && !mouseDown {
			return ui.PointerState{Position: p.lastTouch}
		}
		p.touching = false
	}
	return ui.PointerState{Position: cursor, Down: mouseDown}
}
