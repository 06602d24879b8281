package ui

import "image/color"

// StateChangeFunc observes a state edge. prev is still the pre-edge state.
type StateChangeFunc func(next, prev InteractionState)

// InteractableWidget tracks pointer interaction for a widget. Concrete
// widgets embed it and pass their edge handler to NewInteractableWidget.
type InteractableWidget struct {
	Base

	state    InteractionState
	previous InteractionState
	colors   ColorBlock

	onStateChange StateChangeFunc
}

// NewInteractableWidget creates an interactable widget in StateNormal.
func NewInteractableWidget(position, size Vector2, colors ColorBlock, onStateChange StateChangeFunc) InteractableWidget {
	return InteractableWidget{
		Base:          NewBase(position, size),
		colors:        colors,
		onStateChange: onStateChange,
	}
}

// State returns the current interaction state.
func (w *InteractableWidget) State() InteractionState {
	return w.state
}

// PreviousState returns the state computed by the last Update.
func (w *InteractableWidget) PreviousState() InteractionState {
	return w.previous
}

func (w *InteractableWidget) Disabled() bool {
	return w.state == StateDisabled
}

// SetDisabled forces the widget into StateDisabled, or releases it back to
// StateNormal. Pointer input is ignored while disabled. The edge itself is
// reported by the next Update.
func (w *InteractableWidget) SetDisabled(disabled bool) {
	switch {
	case disabled:
		w.state = StateDisabled
	case w.state == StateDisabled:
		w.state = StateNormal
	}
}

// HitTest excludes disabled widgets so they never capture the pointer.
func (w *InteractableWidget) HitTest(p Vector2) bool {
	if w.Disabled() {
		return false
	}
	return w.Base.HitTest(p)
}

// Color returns the fill for the current state.
func (w *InteractableWidget) Color() color.Color {
	return w.colors.ForState(w.state)
}

// Update advances the state machine by one frame. frontMost tells the widget
// whether the registry picked it as the topmost widget under the pointer.
func (w *InteractableWidget) Update(p PointerState, frontMost bool) {
	next := w.evaluate(p, frontMost)
	w.state = next

	prev := w.previous
	if next != prev && w.onStateChange != nil {
		w.onStateChange(next, prev)
	}
	w.previous = next
}

func (w *InteractableWidget) evaluate(p PointerState, frontMost bool) InteractionState {
	if w.state == StateDisabled {
		return StateDisabled
	}
	if !frontMost || !w.HitTest(p.Position) {
		return StateNormal
	}
	if p.Down {
		return StateSelected
	}
	return StateHovered
}

// IsClick reports whether the edge prev→next completes a click: the pointer
// was released while the widget was still the front-most target. Dragging off
// (Selected→Normal) or being disabled mid-press cancels instead.
func IsClick(next, prev InteractionState) bool {
	return prev == StateSelected && next == StateHovered
}
