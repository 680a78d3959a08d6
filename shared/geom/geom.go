// Package geom holds the 2D primitives shared by the motion core and its
// presenters. It has no dependencies on ebiten or any window system so the
// core stays headless and testable.
package geom

import "math"

// Epsilon is the tolerance applied to the product of two cross products in
// IsIntersect and to the denominator in Intersect. Coordinates are desktop
// pixels, so products of cross products are at least ~1 for any real
// crossing; 1e-9 only absorbs rounding around touching endpoints.
const Epsilon = 1e-9

// Point is a desktop position in pixels, origin top-left, y growing down.
type Point struct {
	X, Y float64
}

// Vector is the difference of two points.
type Vector struct {
	X, Y float64
}

func (p Point) Sub(o Point) Vector      { return Vector{p.X - o.X, p.Y - o.Y} }
func (p Point) Add(v Vector) Point      { return Point{p.X + v.X, p.Y + v.Y} }
func (v Vector) Add(o Vector) Vector    { return Vector{v.X + o.X, v.Y + o.Y} }
func (v Vector) Sub(o Vector) Vector    { return Vector{v.X - o.X, v.Y - o.Y} }
func (v Vector) Scale(f float64) Vector { return Vector{v.X * f, v.Y * f} }

// Cross returns a.X*b.Y - a.Y*b.X.
func Cross(a, b Vector) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Rect is an axis-aligned rectangle. A zero width and zero height rect is
// the empty sentinel and never takes part in landing.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

func (r Rect) IsEmpty() bool     { return r.Width == 0 && r.Height == 0 }
func (r Rect) Right() float64    { return r.X + r.Width }
func (r Rect) Bottom() float64   { return r.Y + r.Height }
func (r Rect) TopLeft() Point    { return Point{r.X, r.Y} }
func (r Rect) TopRight() Point   { return Point{r.X + r.Width, r.Y} }
func (r Rect) BottomLeft() Point { return Point{r.X, r.Y + r.Height} }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Translate returns r moved by v.
func (r Rect) Translate(v Vector) Rect {
	return Rect{X: r.X + v.X, Y: r.Y + v.Y, Width: r.Width, Height: r.Height}
}

// IsIntersect reports whether segment a1-a2 and segment b1-b2 intersect
// using the sign-of-cross-product test. Touching endpoints count as an
// intersection. Collinear segments report true; Intersect rejects them.
func IsIntersect(a1, a2, b1, b2 Point) bool {
	a := a2.Sub(a1)
	b := b2.Sub(b1)
	return Cross(a, b1.Sub(a1))*Cross(a, b2.Sub(a1)) < Epsilon &&
		Cross(b, a1.Sub(b1))*Cross(b, a2.Sub(b1)) < Epsilon
}

// Intersect returns the crossing point of segment a1-a2 and segment b1-b2.
// The second result is false when the segments do not intersect or are
// parallel, in which case no division is performed.
func Intersect(a1, a2, b1, b2 Point) (Point, bool) {
	if !IsIntersect(a1, a2, b1, b2) {
		return Point{}, false
	}

	a := a2.Sub(a1)
	b := b2.Sub(b1)
	denom := Cross(b, a)
	if math.Abs(denom) < Epsilon {
		return Point{}, false
	}
	return a1.Add(a.Scale(Cross(b, b1.Sub(a1)) / denom)), true
}
