// Package core provides the fundamental types of the software renderer:
// colors, geometry, the framebuffer Screen and immutable Textures.
// It has no UI dependencies so game logic stays pure and testable.
package core

// Vec2 is a 2D vector in pixel space.
type Vec2 struct {
	X, Y float32
}

// V creates a new vector.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Trunc returns the integer pixel coordinates of v, truncated toward zero.
func (v Vec2) Trunc() (int, int) {
	return int(v.X), int(v.Y)
}

// Rect represents an axis-aligned bounding box.
type Rect struct {
	X, Y float32 // Top-left corner position
	W, H float32 // Width and height, may be zero
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt creates a rectangle from a position and a size vector.
func RectAt(pos, size Vec2) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

// Pos returns the top-left corner.
func (r Rect) Pos() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 {
	return Vec2{X: r.W, Y: r.H}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Overlaps reports whether two rectangles intersect.
// Intervals are closed: rectangles that only touch along an edge overlap.
// A rectangle without area never overlaps anything.
func (r Rect) Overlaps(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X <= other.Right() && other.X <= r.Right() &&
		r.Y <= other.Bottom() && other.Y <= r.Bottom()
}

// Contains returns true if the point is inside this rectangle (half-open).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// MovingRect is a rectangle that moves under simple Euler integration.
type MovingRect struct {
	Rect
	Vel Vec2
}

// NewMovingRect creates a moving rectangle at pos with the given size and velocity.
func NewMovingRect(pos, size, vel Vec2) MovingRect {
	return MovingRect{Rect: RectAt(pos, size), Vel: vel}
}

// Integrate advances the position by velocity over dt ticks.
func (m *MovingRect) Integrate(dt float32) {
	m.X += m.Vel.X * dt
	m.Y += m.Vel.Y * dt
}

// Bounds returns the current bounding box.
func (m MovingRect) Bounds() Rect {
	return m.Rect
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

// ClampF restricts a float32 value to be within [min, max].
func ClampF(val, min, max float32) float32 {
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
