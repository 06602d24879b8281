package ui

// Vector2 is a point or extent in screen pixels.
type Vector2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v scaled by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Rectangle represents the bounds of a Widget
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// NewRectangle builds the rectangle spanning size from position.
func NewRectangle(position, size Vector2) Rectangle {
	return Rectangle{X: position.X, Y: position.Y, Width: size.X, Height: size.Y}
}

// Degenerate reports whether the rectangle has no area.
func (r Rectangle) Degenerate() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside r, edges included.
// A degenerate rectangle contains nothing.
func (r Rectangle) Contains(p Vector2) bool {
	if r.Degenerate() {
		return false
	}
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Position returns the top-left corner.
func (r Rectangle) Position() Vector2 {
	return Vector2{X: r.X, Y: r.Y}
}

// Size returns the extent.
func (r Rectangle) Size() Vector2 {
	return Vector2{X: r.Width, Y: r.Height}
}
