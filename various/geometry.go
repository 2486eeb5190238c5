package various

import "math"

// Point is a position on the map plane.
//
// Points are compared by exact value, which allows them to be used as map
// keys for identifying shared vertices.
type Point struct {
	X, Y float64
}

// IsFinite returns true if both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Rect is an axis aligned rectangle given by its top left corner and its
// right and bottom coordinates.
type Rect struct {
	X, Y          float64
	Right, Bottom float64
}

// NewRect returns a rectangle with the given origin and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Right: x + w, Bottom: y + h}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Y
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width()/2, Y: r.Y + r.Height()/2}
}

// Shrink returns the rectangle with the margin removed on every side.
func (r Rect) Shrink(margin float64) Rect {
	return Rect{X: r.X + margin, Y: r.Y + margin, Right: r.Right - margin, Bottom: r.Bottom - margin}
}

// Contains returns true if p lies within the rectangle or on its border.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right && p.Y >= r.Y && p.Y <= r.Bottom
}

// IsEmpty returns true if the rectangle has no area (or is inverted or
// not made of finite numbers).
func (r Rect) IsEmpty() bool {
	w, h := r.Width(), r.Height()
	return !(w > 0) || !(h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0)
}
