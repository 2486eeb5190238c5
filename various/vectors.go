package various

import "math"

// Dist2 returns the eucledian distance between two points.
func Dist2(a, b Point) float64 {
	xDiff := a.X - b.X
	yDiff := a.Y - b.Y
	return math.Sqrt(xDiff*xDiff + yDiff*yDiff)
}

// DistSq2 returns the squared eucledian distance between two points.
func DistSq2(a, b Point) float64 {
	xDiff := a.X - b.X
	yDiff := a.Y - b.Y
	return xDiff*xDiff + yDiff*yDiff
}

// Dot2 returns the dot product of two vectors.
func Dot2(a, b Point) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Len2 returns the length of the given vector.
func Len2(a Point) float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

// Normalize2 returns the normalized vector of the given vector.
func Normalize2(a Point) Point {
	l := 1.0 / Len2(a)
	return Point{X: a.X * l, Y: a.Y * l}
}

// Add2 returns the sum of two vectors.
func Add2(a, b Point) Point {
	return Point{X: a.X + b.X, Y: a.Y + b.Y}
}

// Scale2 returns the scaled vector of the given vector.
func Scale2(v Point, s float64) Point {
	return Point{X: v.X * s, Y: v.Y * s}
}

// Cross2 returns the cross product of two vectors.
func Cross2(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Sub2 returns the difference of two vectors.
func Sub2(a, b Point) Point {
	return Point{X: a.X - b.X, Y: a.Y - b.Y}
}

// Mid2 returns the point halfway between a and b.
func Mid2(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Perp2 returns the vector rotated by 90 degrees.
func Perp2(v Point) Point {
	return Point{X: -v.Y, Y: v.X}
}
