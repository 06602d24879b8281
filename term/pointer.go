package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/OpticalFlyer/hud/ui"
)

// Pointer tracks the mouse from tcell events. Widgets see the centre of
// the cell under the mouse.
type Pointer struct {
	r     *Renderer
	state ui.PointerState
}

func NewPointer(r *Renderer) *Pointer {
	return &Pointer{r: r, state: ui.PointerState{Position: ui.Vector2{X: -1, Y: -1}}}
}

// Handle applies a mouse event. It reports whether ev was a mouse event.
func (p *Pointer) Handle(ev tcell.Event) bool {
	m, ok := ev.(*tcell.EventMouse)
	if !ok {
		return false
	}
	x, y := m.Position()
	p.state = ui.PointerState{
		Position: p.r.CellCenter(x, y),
		Down:     m.Buttons()&tcell.Button1 != 0,
	}
	return true
}

// State returns the latest sample.
func (p *Pointer) State() ui.PointerState {
	return p.state
}
