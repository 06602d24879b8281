package ui

import (
	"errors"
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

var errMissing = errors.New("missing")

type drawCall struct {
	kind   string
	bounds Rectangle
	text   string
	clr    color.Color
}

// fakeRenderer records draw calls and measures text as half the font size per byte.
type fakeRenderer struct {
	calls []drawCall
}

func (f *fakeRenderer) DrawRoundedRect(bounds Rectangle, _ float64, clr color.Color) {
	f.calls = append(f.calls, drawCall{kind: "rect", bounds: bounds, clr: clr})
}

func (f *fakeRenderer) DrawText(_ Font, text string, position Vector2, _, _ float64, clr color.Color) {
	f.calls = append(f.calls, drawCall{kind: "text", bounds: Rectangle{X: position.X, Y: position.Y}, text: text, clr: clr})
}

func (f *fakeRenderer) MeasureText(_ Font, text string, size, _ float64) Vector2 {
	return Vector2{X: float64(len(text)) * size / 2, Y: size}
}

func (f *fakeRenderer) DrawTexture(_ Texture, bounds Rectangle, _ color.Color) {
	f.calls = append(f.calls, drawCall{kind: "texture", bounds: bounds})
}

func (f *fakeRenderer) DefaultFont() Font { return "default" }

func (f *fakeRenderer) count(kind string) int {
	n := 0
	for _, c := range f.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}

func (f *fakeRenderer) reset() { f.calls = nil }

type fakeAssets struct {
	fonts    map[string]Font
	textures map[string]Texture
}

func (a fakeAssets) Font(id string) (Font, error) {
	if f, ok := a.fonts[id]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("font %q: %w", id, errMissing)
}

func (a fakeAssets) Texture(id string) (Texture, error) {
	if t, ok := a.textures[id]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("texture %q: %w", id, errMissing)
}

func newTestButton(t *testing.T, x, y, w, h float64) *Button {
	t.Helper()
	b, err := NewButton(Vector2{X: x, Y: y}, Vector2{X: w, Y: h}, DefaultButtonSettings(), &fakeRenderer{}, nil)
	require.NoError(t, err)
	return b
}

func frame(reg *Registry, x, y float64, down bool) {
	reg.UpdateAll(PointerState{Position: Vector2{X: x, Y: y}, Down: down})
}
