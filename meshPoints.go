package genvoronoimap

import (
	"fmt"

	"github.com/Flokey82/genvoronoimap/various"
	"github.com/Flokey82/genvoronoimap/voronoi"
)

// generatePoints returns n random points within bounds, keeping a margin
// to every side.
func (m *Map) generatePoints(n int, bounds various.Rect) ([]various.Point, error) {
	inner := bounds.Shrink(pointMargin)
	points := make([]various.Point, n)
	for i := range points {
		p := various.Point{
			X: inner.X + m.rand.Float64()*inner.Width(),
			Y: inner.Y + m.rand.Float64()*inner.Height(),
		}
		if !p.IsFinite() {
			return nil, fmt.Errorf("%w: generated point %d is not finite: %v", ErrInvalidConfig, i, p)
		}
		points[i] = p
	}
	return points, nil
}

// relaxPoints runs a fixed number of rounds of Lloyd's algorithm, moving
// every point to the centroid of its cell. It returns the relaxed points
// together with their diagram.
func (m *Map) relaxPoints(points []various.Point, bounds various.Rect, iterations int) ([]various.Point, *voronoi.Diagram, error) {
	d, err := voronoi.Compute(points, bounds)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < iterations; i++ {
		relaxed := make([]various.Point, len(points))
		for j, c := range d.Cells {
			poly := c.Points()
			if len(poly) < 3 {
				relaxed[j] = points[j]
				continue
			}
			relaxed[j] = various.Centroid(poly)
		}
		points = relaxed
		if d, err = voronoi.Compute(points, bounds); err != nil {
			return nil, nil, err
		}
	}
	return points, d, nil
}
