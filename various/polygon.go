package various

import "math"

// SignedDoubleArea returns twice the signed area of the polygon.
// The sign depends on the winding order of the vertices.
func SignedDoubleArea(poly []Point) float64 {
	var a float64
	for i, p := range poly {
		next := poly[(i+1)%len(poly)]
		a += p.X*next.Y - next.X*p.Y
	}
	return a
}

// PolygonArea returns the (unsigned) area of the polygon.
func PolygonArea(poly []Point) float64 {
	return math.Abs(SignedDoubleArea(poly) * 0.5)
}

// Centroid returns the area weighted centroid of a simple polygon.
// Degenerate polygons (no area) return the mean of their vertices.
func Centroid(poly []Point) Point {
	if len(poly) == 0 {
		return Point{}
	}
	var cx, cy, a float64
	for i, p := range poly {
		next := poly[(i+1)%len(poly)]
		f := p.X*next.Y - next.X*p.Y
		cx += (p.X + next.X) * f
		cy += (p.Y + next.Y) * f
		a += f
	}
	if a == 0 {
		var mean Point
		for _, p := range poly {
			mean.X += p.X
			mean.Y += p.Y
		}
		n := float64(len(poly))
		return Point{X: mean.X / n, Y: mean.Y / n}
	}
	a *= 3
	return Point{X: cx / a, Y: cy / a}
}

// Circumcenter returns the center of the circle passing through a, b and c.
// If the points are collinear, ok is false.
func Circumcenter(a, b, c Point) (center Point, ok bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	ex, ey := c.X-a.X, c.Y-a.Y
	bl := dx*dx + dy*dy
	cl := ex*ex + ey*ey
	d := dx*ey - dy*ex
	if d == 0 {
		return Point{}, false
	}
	d = 0.5 / d
	return Point{
		X: a.X + (ey*bl-dy*cl)*d,
		Y: a.Y + (dx*cl-ex*bl)*d,
	}, true
}
