// Package core provides fundamental types and utilities for the game:
// geometry, the screen buffer, input abstraction, and runtime configuration.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

import "math"

// Rect is an integer axis-aligned rectangle used for screen-space drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// FRect is a float64 axis-aligned rectangle used for collision detection
// in the physics simulation, where positions move in sub-cell increments.
type FRect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewFRect creates a new float rectangle.
func NewFRect(x, y, w, h float64) FRect {
	return FRect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r FRect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r FRect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the x-coordinate of the rectangle center.
func (r FRect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the y-coordinate of the rectangle center.
func (r FRect) CenterY() float64 {
	return r.Y + r.H/2
}

// Intersects returns true if this rectangle overlaps with another.
func (r FRect) Intersects(other FRect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) lies inside this rectangle.
func (r FRect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inflate returns a copy of the rectangle grown by dx and dy on each side.
// Negative values shrink it.
func (r FRect) Inflate(dx, dy float64) FRect {
	return FRect{
		X: r.X - dx,
		Y: r.Y - dy,
		W: r.W + 2*dx,
		H: r.H + 2*dy,
	}
}

// OverlapsCircle reports whether a circle at (cx, cy) with radius rad
// overlaps the rectangle. Uses the expanded-rect point test: the circle
// center is tested against the rectangle inflated by the radius.
func (r FRect) OverlapsCircle(cx, cy, rad float64) bool {
	return r.Inflate(rad, rad).Contains(cx, cy)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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

// Finite reports whether v is a normal float (not NaN or infinity).
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
