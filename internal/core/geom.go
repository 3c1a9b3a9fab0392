// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in world coordinates.
// The playfield is simulated in float64 pixels and projected onto the
// terminal grid only at render time.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the x-coordinate of the rectangle's center.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the y-coordinate of the rectangle's center.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Intersects returns true if this rectangle overlaps with another.
// Boundary contact counts: rectangles that merely touch edges collide.
func (r Rect) Intersects(other Rect) bool {
	if r.Right() < other.X || other.Right() < r.X {
		return false
	}
	if r.Bottom() < other.Y || other.Bottom() < r.Y {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampInt restricts an integer value to be within [min, max].
func ClampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
