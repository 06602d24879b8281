package ui

import (
	"fmt"
	"image/color"
)

var _ Interactable = (*Button)(nil)

// ButtonDrawLayer puts buttons above passive widgets by default.
const ButtonDrawLayer = 100

// ButtonSettings is how a Button looks.
type ButtonSettings struct {
	Colors      ColorBlock
	Text        string
	Roundedness float64
	FontSize    float64
	FontSpacing float64
	// FontID selects a font through Assets. Empty means the renderer's default font.
	FontID    string
	TextColor color.Color
}

// DefaultButtonSettings returns the stock button look.
func DefaultButtonSettings() ButtonSettings {
	return ButtonSettings{
		Colors:      DefaultColorBlock(),
		Text:        "Button.",
		Roundedness: 0.1,
		FontSize:    20,
		FontSpacing: 1,
		TextColor:   color.White,
	}
}

// Button fires its listeners when clicked.
type Button struct {
	InteractableWidget

	text        string
	font        Font
	fontSize    float64
	fontSpacing float64
	roundedness float64
	textColor   color.Color
	// label offset from position, measured once
	textOffset Vector2

	listeners Listeners
}

// NewButton creates a button and measures its label. assets may be nil when
// settings.FontID is empty. A font id that does not resolve is returned as error.
func NewButton(position, size Vector2, settings ButtonSettings, r Renderer, assets Assets) (*Button, error) {
	font, err := resolveFont(settings.FontID, r, assets)
	if err != nil {
		return nil, fmt.Errorf("creating button %q: %w", settings.Text, err)
	}

	b := &Button{
		text:        settings.Text,
		font:        font,
		fontSize:    settings.FontSize,
		fontSpacing: settings.FontSpacing,
		roundedness: settings.Roundedness,
		textColor:   settings.TextColor,
	}
	b.InteractableWidget = NewInteractableWidget(position, size, settings.Colors, b.handleStateChange)
	b.SetDrawLayer(ButtonDrawLayer)

	measured := r.MeasureText(font, b.text, b.fontSize, b.fontSpacing)
	b.textOffset = size.Add(measured.Scale(-1)).Scale(0.5)
	return b, nil
}

func resolveFont(id string, r Renderer, assets Assets) (Font, error) {
	if id == "" {
		return r.DefaultFont(), nil
	}
	if assets == nil {
		return nil, fmt.Errorf("font %q requested without an asset source", id)
	}
	return assets.Font(id)
}

// Text returns the label.
func (b *Button) Text() string {
	return b.text
}

// AddListener registers fn to run on every click.
func (b *Button) AddListener(fn Listener) ListenerHandle {
	return b.listeners.Add(fn)
}

// RemoveListener unregisters a callback previously added to this button.
func (b *Button) RemoveListener(h ListenerHandle) {
	b.listeners.Remove(h)
}

// ListenerCount returns the number of registered click listeners.
func (b *Button) ListenerCount() int {
	return b.listeners.Len()
}

func (b *Button) Draw(r Renderer) {
	r.DrawRoundedRect(b.Bounds(), b.roundedness, b.Color())
	r.DrawText(b.font, b.text, b.Position().Add(b.textOffset), b.fontSize, b.fontSpacing, b.textColor)
}

func (b *Button) handleStateChange(next, prev InteractionState) {
	if IsClick(next, prev) {
		b.listeners.Invoke()
	}
}
