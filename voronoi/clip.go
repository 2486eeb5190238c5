package voronoi

import "github.com/Flokey82/genvoronoimap/various"

// clipSegment clips the segment a-b to the rectangle using the
// Liang-Barsky algorithm. Clipped endpoints are placed exactly on the
// rectangle so that they can be matched with the border.
func clipSegment(a, b various.Point, r various.Rect) (various.Point, various.Point, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	side0, side1 := -1, -1

	// Left, right, top, bottom.
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{a.X - r.X, r.Right - a.X, a.Y - r.Y, r.Bottom - a.Y}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return a, b, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return a, b, false
			}
			if t > t0 {
				t0, side0 = t, i
			}
		} else {
			if t < t0 {
				return a, b, false
			}
			if t < t1 {
				t1, side1 = t, i
			}
		}
	}

	ca, cb := a, b
	if side0 >= 0 {
		ca = snapToSide(various.Point{X: a.X + t0*dx, Y: a.Y + t0*dy}, side0, r)
	}
	if side1 >= 0 {
		cb = snapToSide(various.Point{X: a.X + t1*dx, Y: a.Y + t1*dy}, side1, r)
	}
	return ca, cb, true
}

func snapToSide(p various.Point, side int, r various.Rect) various.Point {
	switch side {
	case 0:
		p.X = r.X
	case 1:
		p.X = r.Right
	case 2:
		p.Y = r.Y
	case 3:
		p.Y = r.Bottom
	}
	p.X = various.Clamp(p.X, r.X, r.Right)
	p.Y = various.Clamp(p.Y, r.Y, r.Bottom)
	return p
}

func onBoundary(p various.Point, r various.Rect) bool {
	return p.X == r.X || p.X == r.Right || p.Y == r.Y || p.Y == r.Bottom
}

// perimeterPos returns the distance along the border of the rectangle,
// starting at the top left corner and going along the top side first.
func perimeterPos(p various.Point, r various.Rect) float64 {
	w, h := r.Width(), r.Height()
	switch {
	case p.Y == r.Y:
		return p.X - r.X
	case p.X == r.Right:
		return w + p.Y - r.Y
	case p.Y == r.Bottom:
		return w + h + r.Right - p.X
	default:
		return 2*w + h + r.Bottom - p.Y
	}
}
