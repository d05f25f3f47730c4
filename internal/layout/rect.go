package layout

import "github.com/chewxy/math32"

// Vec2 is a 2D vector in pixels.
type Vec2 struct {
	X, Y float32
}

// Add returns the componentwise sum of v and other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the componentwise difference of v and other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// IsFinite reports whether both components are finite numbers.
func (v Vec2) IsFinite() bool {
	return !math32.IsNaN(v.X) && !math32.IsInf(v.X, 0) &&
		!math32.IsNaN(v.Y) && !math32.IsInf(v.Y, 0)
}

// Rect is an axis-aligned rectangle. Pos is the top-left corner; the
// y axis grows downward.
type Rect struct {
	Pos  Vec2
	Size Vec2
}

// NewRect creates a Rect from position and size components.
func NewRect(x, y, w, h float32) Rect {
	return Rect{Pos: Vec2{X: x, Y: y}, Size: Vec2{X: w, Y: h}}
}

// Translate returns r moved by delta.
func (r Rect) Translate(delta Vec2) Rect {
	return Rect{Pos: r.Pos.Add(delta), Size: r.Size}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.Pos.X + r.Size.X/2, Y: r.Pos.Y + r.Size.Y/2}
}

// IsFinite reports whether every component is a finite number.
func (r Rect) IsFinite() bool {
	return r.Pos.IsFinite() && r.Size.IsFinite()
}

// ClampSize returns r with negative size components raised to zero.
// The second return reports whether any clamping happened.
func (r Rect) ClampSize() (Rect, bool) {
	clamped := false
	if r.Size.X < 0 {
		r.Size.X = 0
		clamped = true
	}
	if r.Size.Y < 0 {
		r.Size.Y = 0
		clamped = true
	}
	return r, clamped
}

// Contains reports whether the point lies inside the rectangle.
// The left and top edges are inside, the right and bottom edges are not.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Pos.X && p.X < r.Pos.X+r.Size.X &&
		p.Y >= r.Pos.Y && p.Y < r.Pos.Y+r.Size.Y
}

// Rect3D is a Rect decorated with a depth coordinate and rotation
// scalars for world-space panels. The rotations never influence layout
// math; they pass through to the host unchanged.
type Rect3D struct {
	Rect
	Z    float32
	Roll float32
	Yaw  float32
	Tilt float32
}

// clamp restricts v to [lo, hi]. If lo > hi, lo wins (matches CSS
// min/max behavior).
func clamp(v, lo, hi float32) float32 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// lerpAlign maps an alignment in [-1, 1] over the residual space left
// after placing a child of the given size inside the parent length:
// -1 pins to the start edge, 0 centers, 1 pins to the end edge.
func lerpAlign(align, residual float32) float32 {
	return residual / 2 * (1 + align)
}
