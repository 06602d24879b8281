// Package gfx draws ui widgets with ebiten.
package gfx

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/OpticalFlyer/hud/ui"
)

var _ ui.Renderer = (*Renderer)(nil)

var whiteSubImage *ebiten.Image

// solidSource returns a 1x1 white source for filled triangles. It is created
// on first use so the package can be imported without a graphics context.
func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Renderer implements ui.Renderer on top of an ebiten screen. Call SetTarget
// at the start of every Draw before rendering widgets.
type Renderer struct {
	screen      *ebiten.Image
	defaultFont *text.GoTextFaceSource

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderer creates a renderer with Go Regular as the default font.
func NewRenderer() (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading default font: %w", err)
	}
	return &Renderer{defaultFont: src}, nil
}

// SetTarget selects the image subsequent draw calls paint on.
func (r *Renderer) SetTarget(screen *ebiten.Image) {
	r.screen = screen
}

func (r *Renderer) DefaultFont() ui.Font {
	return r.defaultFont
}

// DrawRoundedRect fills bounds. roundedness in [0, 1] scales the corner
// radius from square to half the shorter side.
func (r *Renderer) DrawRoundedRect(bounds ui.Rectangle, roundedness float64, clr color.Color) {
	if r.screen == nil || bounds.Degenerate() {
		return
	}
	x, y := float32(bounds.X), float32(bounds.Y)
	w, h := float32(bounds.Width), float32(bounds.Height)

	radius := float32(min(max(roundedness, 0), 1)) * min(w, h) / 2
	if radius < 0.5 {
		vector.DrawFilledRect(r.screen, x, y, w, h, clr, true)
		return
	}

	var p vector.Path
	p.MoveTo(x+radius, y)
	p.LineTo(x+w-radius, y)
	p.ArcTo(x+w, y, x+w, y+radius, radius)
	p.LineTo(x+w, y+h-radius)
	p.ArcTo(x+w, y+h, x+w-radius, y+h, radius)
	p.LineTo(x+radius, y+h)
	p.ArcTo(x, y+h, x, y+h-radius, radius)
	p.LineTo(x, y+radius)
	p.ArcTo(x, y, x+radius, y, radius)
	p.Close()

	r.vertices, r.indices = p.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	cr, cg, cb, ca := clr.RGBA()
	for i := range r.vertices {
		r.vertices[i].SrcX = 1
		r.vertices[i].SrcY = 1
		r.vertices[i].ColorR = float32(cr) / 0xffff
		r.vertices[i].ColorG = float32(cg) / 0xffff
		r.vertices[i].ColorB = float32(cb) / 0xffff
		r.vertices[i].ColorA = float32(ca) / 0xffff
	}
	r.screen.DrawTriangles(r.vertices, r.indices, solidSource(), &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}

func (r *Renderer) face(font ui.Font, size float64) *text.GoTextFace {
	src, ok := font.(*text.GoTextFaceSource)
	if !ok || src == nil {
		src = r.defaultFont
	}
	return &text.GoTextFace{Source: src, Size: size}
}

// DrawText draws a single line with its top-left corner at position.
// spacing is extra space between glyphs, in pixels.
func (r *Renderer) DrawText(font ui.Font, s string, position ui.Vector2, size, spacing float64, clr color.Color) {
	if r.screen == nil || s == "" {
		return
	}
	face := r.face(font, size)

	if spacing == 0 {
		op := &text.DrawOptions{}
		op.GeoM.Translate(position.X, position.Y)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(r.screen, s, face, op)
		return
	}

	x := position.X
	for _, rn := range s {
		glyph := string(rn)
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, position.Y)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(r.screen, glyph, face, op)

		adv, _ := text.Measure(glyph, face, 0)
		x += adv + spacing
	}
}

// MeasureText returns the size DrawText would cover.
func (r *Renderer) MeasureText(font ui.Font, s string, size, spacing float64) ui.Vector2 {
	face := r.face(font, size)
	m := face.Metrics()
	height := m.HAscent + m.HDescent

	if spacing == 0 {
		w, _ := text.Measure(s, face, 0)
		return ui.Vector2{X: w, Y: height}
	}

	var width float64
	n := 0
	for _, rn := range s {
		adv, _ := text.Measure(string(rn), face, 0)
		width += adv
		n++
	}
	if n > 1 {
		width += spacing * float64(n-1)
	}
	return ui.Vector2{X: width, Y: height}
}

// DrawTexture stretches an *ebiten.Image over bounds. Other handle types
// are ignored.
func (r *Renderer) DrawTexture(tex ui.Texture, bounds ui.Rectangle, tint color.Color) {
	img, ok := tex.(*ebiten.Image)
	if r.screen == nil || !ok || img == nil || bounds.Degenerate() {
		return
	}
	size := img.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(bounds.Width/float64(size.X), bounds.Height/float64(size.Y))
	op.GeoM.Translate(bounds.X, bounds.Y)
	if tint != nil {
		op.ColorScale.ScaleWithColor(tint)
	}
	op.Filter = ebiten.FilterLinear
	r.screen.DrawImage(img, op)
}
