package ui

import "image/color"

var _ Widget = (*Panel)(nil)

const (
	titleBarHeight = 20.0
	panelAlpha     = 200
)

// Panel is a passive backdrop with a title bar. It sits below buttons by
// default and does not capture the pointer.
type Panel struct {
	Base

	Title string

	bgColor    color.Color
	titleColor color.Color
	textColor  color.Color
	font       Font
}

func NewPanel(position, size Vector2, title string) *Panel {
	return &Panel{
		Base:       NewBase(position, size),
		Title:      title,
		bgColor:    color.RGBA{100, 100, 100, panelAlpha},
		titleColor: color.RGBA{60, 60, 60, panelAlpha},
		textColor:  color.White,
	}
}

// SetFont overrides the renderer default font for the title.
func (p *Panel) SetFont(f Font) {
	p.font = f
}

// HitTest always fails; panels are decoration.
func (p *Panel) HitTest(Vector2) bool {
	return false
}

func (p *Panel) Draw(r Renderer) {
	bounds := p.Bounds()

	// Draw panel background
	r.DrawRoundedRect(bounds, 0, p.bgColor)

	// Draw title bar
	titleBar := bounds
	titleBar.Height = min(titleBarHeight, bounds.Height)
	r.DrawRoundedRect(titleBar, 0, p.titleColor)

	if p.Title == "" {
		return
	}
	font := p.font
	if font == nil {
		font = r.DefaultFont()
	}
	size := titleBarHeight * 0.7
	measured := r.MeasureText(font, p.Title, size, 1)
	pos := Vector2{X: bounds.X + 4, Y: bounds.Y + (titleBar.Height-measured.Y)/2}
	r.DrawText(font, p.Title, pos, size, 1, p.textColor)
}
