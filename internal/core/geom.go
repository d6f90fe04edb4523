// Package core provides the foundation types for the game: world-space
// vectors, screen-space rectangles and the character cell buffer screens
// render into. It contains no external dependencies (especially no Bubble
// Tea) to keep game logic pure and testable.
package core

import "math"

// World units per character cell. The logical world is measured in the
// pixels of a 320x200 video mode, so one text cell covers a 4x8 pixel
// block, exactly as in 80x25 text mode.
const (
	CellW = 4
	CellH = 8
)

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LenSq returns the squared length of v. Cheaper than Len when only
// comparisons are needed.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Round returns v with both components rounded to the nearest integer.
func (v Vec2) Round() Vec2 {
	return Vec2{math.Round(v.X), math.Round(v.Y)}
}

// Rect represents an axis-aligned screen-space rectangle in character
// cells, used for laying out HUD elements and clipped drawing.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val > max {
		val = max
	}
	if val < min {
		return min
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max]. On an
// inverted range min wins; the camera relies on this to pin itself to
// the origin when a map is smaller than the viewport.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		return min
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
