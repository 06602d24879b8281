package ui

import "image/color"

// InteractionState is the pointer-driven state of an interactable widget.
type InteractionState int

const (
	StateNormal InteractionState = iota
	StateHovered
	StateSelected
	StateDisabled
)

func (s InteractionState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateHovered:
		return "hovered"
	case StateSelected:
		return "selected"
	case StateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// ColorBlock maps each interaction state to the color a widget is drawn with.
type ColorBlock struct {
	Normal   color.Color
	Hovered  color.Color
	Selected color.Color
	Disabled color.Color
}

// DefaultColorBlock returns the stock button palette.
func DefaultColorBlock() ColorBlock {
	return ColorBlock{
		Normal:   color.RGBA{200, 200, 200, 255},
		Hovered:  color.RGBA{80, 80, 80, 255},
		Selected: color.RGBA{0, 0, 0, 255},
		Disabled: color.RGBA{255, 255, 255, 128},
	}
}

// ForState picks the color for s. Unset entries fall back to Normal.
func (c ColorBlock) ForState(s InteractionState) color.Color {
	var clr color.Color
	switch s {
	case StateHovered:
		clr = c.Hovered
	case StateSelected:
		clr = c.Selected
	case StateDisabled:
		clr = c.Disabled
	}
	if clr == nil {
		clr = c.Normal
	}
	if clr == nil {
		return color.Transparent
	}
	return clr
}
