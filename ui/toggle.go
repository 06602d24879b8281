package ui

import (
	"fmt"
	"image/color"
)

var _ Interactable = (*Toggle)(nil)

// Toggle is a button with an on/off value flipped on every click.
type Toggle struct {
	InteractableWidget

	on        bool
	label     string
	font      Font
	fontSize  float64
	onColor   color.Color
	textColor color.Color
	textPos   Vector2

	listeners Listeners
}

// NewToggle creates a toggle. Its label is drawn to the right of the box.
func NewToggle(position, size Vector2, label string, settings ButtonSettings, r Renderer, assets Assets) (*Toggle, error) {
	font, err := resolveFont(settings.FontID, r, assets)
	if err != nil {
		return nil, fmt.Errorf("creating toggle %q: %w", label, err)
	}
	t := &Toggle{
		label:     label,
		font:      font,
		fontSize:  settings.FontSize,
		onColor:   settings.Colors.Selected,
		textColor: settings.TextColor,
	}
	t.InteractableWidget = NewInteractableWidget(position, size, settings.Colors, t.handleStateChange)
	t.SetDrawLayer(ButtonDrawLayer)

	measured := r.MeasureText(font, label, settings.FontSize, settings.FontSpacing)
	t.textPos = Vector2{X: size.X + size.Y/2, Y: (size.Y - measured.Y) / 2}
	return t, nil
}

// On returns the current value.
func (t *Toggle) On() bool {
	return t.on
}

// SetOn sets the value without notifying listeners.
func (t *Toggle) SetOn(on bool) {
	t.on = on
}

func (t *Toggle) AddListener(fn Listener) ListenerHandle {
	return t.listeners.Add(fn)
}

func (t *Toggle) RemoveListener(h ListenerHandle) {
	t.listeners.Remove(h)
}

func (t *Toggle) Draw(r Renderer) {
	bounds := t.Bounds()
	r.DrawRoundedRect(bounds, 0.2, t.Color())
	if t.on {
		inset := bounds.Height / 4
		r.DrawRoundedRect(Rectangle{
			X:      bounds.X + inset,
			Y:      bounds.Y + inset,
			Width:  bounds.Width - 2*inset,
			Height: bounds.Height - 2*inset,
		}, 0.2, t.onColor)
	}
	if t.label != "" {
		r.DrawText(t.font, t.label, t.Position().Add(t.textPos), t.fontSize, 1, t.textColor)
	}
}

func (t *Toggle) handleStateChange(next, prev InteractionState) {
	if IsClick(next, prev) {
		t.on = !t.on
		t.listeners.Invoke()
	}
}
