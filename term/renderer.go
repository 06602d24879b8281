// Package term draws widgets on a terminal through tcell.
//
// Widget geometry stays in pixels. Each cell covers CellSize pixels, so a
// scene laid out for a window renders unchanged at terminal resolution.
package term

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/OpticalFlyer/hud/ui"
)

var _ ui.Renderer = (*Renderer)(nil)

// DefaultCellSize approximates a terminal glyph in pixels.
var DefaultCellSize = ui.Vector2{X: 8, Y: 16}

const placeholderRune = '░'

// Renderer implements ui.Renderer on a tcell screen. It has a single
// font, so font handles are ignored.
type Renderer struct {
	screen     tcell.Screen
	cell       ui.Vector2
	background tcell.Color
}

// NewRenderer draws onto screen with cells of the given pixel size.
func NewRenderer(screen tcell.Screen, cell ui.Vector2) *Renderer {
	return &Renderer{
		screen:     screen,
		cell:       cell,
		background: tcell.NewRGBColor(20, 20, 20),
	}
}

// CellSize returns the pixel size of one cell.
func (r *Renderer) CellSize() ui.Vector2 {
	return r.cell
}

// Clear fills the screen with the background color.
func (r *Renderer) Clear() {
	r.screen.Fill(' ', tcell.StyleDefault.Background(r.background))
}

// CellCenter returns the pixel position at the middle of cell (x, y).
func (r *Renderer) CellCenter(x, y int) ui.Vector2 {
	return ui.Vector2{
		X: (float64(x) + 0.5) * r.cell.X,
		Y: (float64(y) + 0.5) * r.cell.Y,
	}
}

// cells returns the half-open cell range covering b.
func (r *Renderer) cells(b ui.Rectangle) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(b.X / r.cell.X))
	y0 = int(math.Floor(b.Y / r.cell.Y))
	x1 = int(math.Ceil((b.X + b.Width) / r.cell.X))
	y1 = int(math.Ceil((b.Y + b.Height) / r.cell.Y))
	return x0, y0, x1, y1
}

func (r *Renderer) DrawRoundedRect(bounds ui.Rectangle, _ float64, clr color.Color) {
	if bounds.Degenerate() {
		return
	}
	x0, y0, x1, y1 := r.cells(bounds)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.fill(x, y, ' ', clr, nil)
		}
	}
}

func (r *Renderer) DrawText(_ ui.Font, text string, position ui.Vector2, _, _ float64, clr color.Color) {
	fg, a := toTcell(clr)
	if a == 0 {
		return
	}
	x := int(math.Floor(position.X / r.cell.X))
	y := int(math.Floor(position.Y / r.cell.Y))
	for i, ch := range []rune(text) {
		_, _, st, _ := r.screen.GetContent(x+i, y)
		r.screen.SetContent(x+i, y, ch, nil, st.Foreground(fg))
	}
}

func (r *Renderer) MeasureText(_ ui.Font, text string, _, _ float64) ui.Vector2 {
	return ui.Vector2{X: float64(len([]rune(text))) * r.cell.X, Y: r.cell.Y}
}

// DrawTexture samples in-memory images once per cell. Other texture handles
// are drawn as a shaded placeholder in the tint color.
func (r *Renderer) DrawTexture(tex ui.Texture, bounds ui.Rectangle, tint color.Color) {
	if bounds.Degenerate() {
		return
	}
	x0, y0, x1, y1 := r.cells(bounds)
	img, ok := tex.(image.Image)
	if !ok {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				r.fill(x, y, placeholderRune, nil, tint)
			}
		}
		return
	}

	ib := img.Bounds()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c := r.CellCenter(x, y)
			u := (c.X - bounds.X) / bounds.Width
			v := (c.Y - bounds.Y) / bounds.Height
			px := ib.Min.X + min(int(u*float64(ib.Dx())), ib.Dx()-1)
			py := ib.Min.Y + min(int(v*float64(ib.Dy())), ib.Dy()-1)
			r.fill(x, y, ' ', multiply(img.At(px, py), tint), nil)
		}
	}
}

func (r *Renderer) DefaultFont() ui.Font {
	return nil
}

// fill sets cell (x, y) to ch. A nil bg keeps the cell background; bg
// alpha blends over it. A nil fg keeps the foreground.
func (r *Renderer) fill(x, y int, ch rune, bg, fg color.Color) {
	_, _, st, _ := r.screen.GetContent(x, y)
	if bg != nil {
		c, a := toTcell(bg)
		if a == 0 {
			return
		}
		if a < 255 {
			_, under, _ := st.Decompose()
			if under == tcell.ColorDefault {
				under = r.background
			}
			c = blend(under, c, a)
		}
		st = st.Background(c)
	}
	if fg != nil {
		c, a := toTcell(fg)
		if a == 0 {
			return
		}
		st = st.Foreground(c)
	}
	r.screen.SetContent(x, y, ch, nil, st)
}

func toTcell(c color.Color) (tcell.Color, uint8) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B)), n.A
}

// blend mixes over onto under with straight alpha a.
func blend(under, over tcell.Color, a uint8) tcell.Color {
	ur, ug, ub := under.RGB()
	or, og, ob := over.RGB()
	mix := func(u, o int32) int32 {
		return (o*int32(a) + u*(255-int32(a))) / 255
	}
	return tcell.NewRGBColor(mix(ur, or), mix(ug, og), mix(ub, ob))
}

func multiply(c, tint color.Color) color.Color {
	cr, cg, cb, ca := c.RGBA()
	tr, tg, tb, ta := tint.RGBA()
	return color.RGBA64{
		R: uint16(cr * tr / 0xffff),
		G: uint16(cg * tg / 0xffff),
		B: uint16(cb * tb / 0xffff),
		A: uint16(ca * ta / 0xffff),
	}
}
