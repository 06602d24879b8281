package ui

import "image/color"

// DefaultDrawLayer is the layer a widget starts on unless its constructor says otherwise.
const DefaultDrawLayer = 0

// Font is an opaque font handle owned by the Renderer implementation.
type Font any

// Texture is an opaque image handle owned by the Renderer implementation.
type Texture any

// Renderer is the set of drawing primitives widgets paint themselves with.
type Renderer interface {
	DrawRoundedRect(bounds Rectangle, roundedness float64, clr color.Color)
	DrawText(font Font, text string, position Vector2, size, spacing float64, clr color.Color)
	MeasureText(font Font, text string, size, spacing float64) Vector2
	DrawTexture(tex Texture, bounds Rectangle, tint color.Color)
	DefaultFont() Font
}

// Assets resolves resource identifiers to handles the Renderer understands.
type Assets interface {
	Font(id string) (Font, error)
	Texture(id string) (Texture, error)
}

// Widget represents the basic building block of the UI system.
// All UI elements must implement this interface.
type Widget interface {
	Draw(r Renderer)
	HitTest(p Vector2) bool
	Bounds() Rectangle
	DrawLayer() int
	Visible() bool
}

// Interactable is a Widget driven by pointer input every frame.
type Interactable interface {
	Widget
	Update(p PointerState, frontMost bool)
	State() InteractionState
}

// PointerState is the pointer sample for one frame.
type PointerState struct {
	Position Vector2
	Down     bool
}

// Base carries the geometry, layer and visibility shared by all widgets.
// Embed it and provide Draw to get a Widget.
type Base struct {
	position Vector2
	size     Vector2
	layer    int
	hidden   bool
}

// NewBase creates widget geometry on the default layer, visible.
func NewBase(position, size Vector2) Base {
	return Base{position: position, size: size, layer: DefaultDrawLayer}
}

func (b *Base) Position() Vector2 { return b.position }
func (b *Base) Size() Vector2     { return b.size }

// SetPosition moves the widget; its size is fixed at construction.
func (b *Base) SetPosition(p Vector2) {
	b.position = p
}

func (b *Base) Bounds() Rectangle {
	return NewRectangle(b.position, b.size)
}

func (b *Base) DrawLayer() int { return b.layer }

// SetDrawLayer changes paint order and hit priority. Higher is on top.
func (b *Base) SetDrawLayer(layer int) {
	b.layer = layer
}

func (b *Base) Visible() bool { return !b.hidden }

func (b *Base) SetVisible(visible bool) {
	b.hidden = !visible
}

// HitTest reports whether p is over the widget. Hidden and zero-area
// widgets are never hit.
func (b *Base) HitTest(p Vector2) bool {
	if b.hidden {
		return false
	}
	return b.Bounds().Contains(p)
}
