package ui

import (
	"fmt"
	"image/color"
)

var _ Widget = (*ImageWidget)(nil)

// ImageWidget draws a texture stretched over its bounds. It is passive:
// it never takes part in hit testing.
type ImageWidget struct {
	Base

	textureID string
	texture   Texture
	tint      color.Color
}

// NewImageWidget resolves textureID through assets.
func NewImageWidget(position, size Vector2, textureID string, assets Assets) (*ImageWidget, error) {
	if assets == nil {
		return nil, fmt.Errorf("image %q requested without an asset source", textureID)
	}
	tex, err := assets.Texture(textureID)
	if err != nil {
		return nil, fmt.Errorf("creating image widget: %w", err)
	}
	return &ImageWidget{
		Base:      NewBase(position, size),
		textureID: textureID,
		texture:   tex,
		tint:      color.White,
	}, nil
}

// TextureID returns the id the texture was resolved from.
func (w *ImageWidget) TextureID() string {
	return w.textureID
}

// SetTint multiplies the texture colors.
func (w *ImageWidget) SetTint(c color.Color) {
	w.tint = c
}

func (w *ImageWidget) Draw(r Renderer) {
	r.DrawTexture(w.texture, w.Bounds(), w.tint)
}
