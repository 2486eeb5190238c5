package voronoi

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Flokey82/genvoronoimap/various"
	"github.com/fogleman/delaunay"
)

// ErrEmptyBounds is returned if the bounding rectangle has no area.
var ErrEmptyBounds = errors.New("voronoi: empty bounds")

// Compute returns the Voronoi diagram of the given points clipped to bounds.
//
// Fewer than three points, or points that all lie on one line, are handled
// without a triangulation since their cells are separated by parallel
// bisectors.
func Compute(points []various.Point, bounds various.Rect) (*Diagram, error) {
	if bounds.IsEmpty() {
		return nil, fmt.Errorf("%w: %+v", ErrEmptyBounds, bounds)
	}
	b := newBuilder(points, bounds)
	if len(points) >= 3 {
		dpts := make([]delaunay.Point, len(points))
		for i, p := range points {
			dpts[i] = delaunay.Point{X: p.X, Y: p.Y}
		}
		if tri, err := delaunay.Triangulate(dpts); err == nil {
			b.addDelaunayEdges(tri)
			return b.finish(), nil
		}
	}
	b.addCollinearEdges()
	return b.finish(), nil
}

type builder struct {
	d        *Diagram
	reach    float64 // length of rays, long enough to leave the bounds
	boundary map[various.Point]bool
}

func newBuilder(points []various.Point, bounds various.Rect) *builder {
	d := &Diagram{
		Bounds: bounds,
		Sites:  make([]*Site, len(points)),
		Cells:  make([]*Cell, len(points)),
	}
	for i, p := range points {
		d.Sites[i] = &Site{ID: i, Point: p}
		d.Cells[i] = &Cell{Site: d.Sites[i]}
	}
	b := &builder{
		d:        d,
		boundary: make(map[various.Point]bool),
	}
	b.reach = bounds.Width() + bounds.Height()
	return b
}

func s_next_s(s int) int {
	if s%3 == 2 {
		return s - 2
	}
	return s + 1
}

func s_prev_s(s int) int {
	if s%3 == 0 {
		return s + 2
	}
	return s - 1
}

// addDelaunayEdges adds one edge per pair of adjacent triangles connecting
// their circumcenters, and one ray per hull side.
func (b *builder) addDelaunayEdges(tri *delaunay.Triangulation) {
	pts := b.d.Sites
	numTriangles := len(tri.Triangles) / 3
	centers := make([]various.Point, numTriangles)
	for t := 0; t < numTriangles; t++ {
		p0 := pts[tri.Triangles[3*t]].Point
		p1 := pts[tri.Triangles[3*t+1]].Point
		p2 := pts[tri.Triangles[3*t+2]].Point
		cc, ok := various.Circumcenter(p0, p1, p2)
		if !ok {
			cc = various.Centroid([]various.Point{p0, p1, p2})
		}
		centers[t] = cc
	}

	for s, opp := range tri.Halfedges {
		r0 := tri.Triangles[s]
		r1 := tri.Triangles[s_next_s(s)]
		if opp >= 0 {
			if s > opp {
				continue
			}
			b.addSegment(centers[s/3], centers[opp/3], pts[r0], pts[r1])
			continue
		}

		// Hull side; the ray points away from the third vertex of the triangle.
		r2 := tri.Triangles[s_prev_s(s)]
		dir := various.Perp2(various.Sub2(pts[r1].Point, pts[r0].Point))
		if various.Dot2(dir, various.Sub2(pts[r2].Point, pts[r0].Point)) > 0 {
			dir = various.Scale2(dir, -1)
		}
		dir = various.Normalize2(dir)
		start := centers[s/3]
		end := various.Add2(start, various.Scale2(dir, b.reach+various.Dist2(start, b.d.Bounds.Center())))
		b.addSegment(start, end, pts[r0], pts[r1])
	}
}

// addCollinearEdges handles point sets without a triangulation. The sites
// are ordered along their common line and every consecutive pair is
// separated by their bisector.
func (b *builder) addCollinearEdges() {
	sites := b.d.Sites
	if len(sites) < 2 {
		return
	}
	origin := sites[0].Point
	var dir various.Point
	for _, s := range sites[1:] {
		if s.Point != origin {
			dir = various.Sub2(s.Point, origin)
			break
		}
	}
	if dir == (various.Point{}) {
		return
	}
	order := make([]*Site, len(sites))
	copy(order, sites)
	sort.SliceStable(order, func(i, j int) bool {
		return various.Dot2(various.Sub2(order[i].Point, origin), dir) <
			various.Dot2(various.Sub2(order[j].Point, origin), dir)
	})
	perp := various.Normalize2(various.Perp2(dir))
	for i := 1; i < len(order); i++ {
		s0, s1 := order[i-1], order[i]
		if s0.Point == s1.Point {
			continue
		}
		mid := various.Mid2(s0.Point, s1.Point)
		l := b.reach + various.Dist2(mid, b.d.Bounds.Center())
		b.addSegment(
			various.Add2(mid, various.Scale2(perp, l)),
			various.Add2(mid, various.Scale2(perp, -l)),
			s0, s1)
	}
}

// addSegment clips the segment to the bounds and adds it as an edge between
// the two sites. Endpoints on the bounds are remembered for closing the
// border.
func (b *builder) addSegment(va, vb various.Point, l, r *Site) {
	va, vb, ok := clipSegment(va, vb, b.d.Bounds)
	if !ok || va == vb {
		return
	}
	for _, p := range [2]various.Point{va, vb} {
		if onBoundary(p, b.d.Bounds) {
			b.boundary[p] = true
		}
	}
	b.addEdge(&Edge{Va: va, Vb: vb, LSite: l, RSite: r})
}

func (b *builder) addEdge(e *Edge) {
	b.d.Edges = append(b.d.Edges, e)
	c := b.d.Cells[e.LSite.ID]
	c.Halfedges = append(c.Halfedges, &Halfedge{Site: e.LSite, Edge: e})
	if e.RSite != nil {
		c = b.d.Cells[e.RSite.ID]
		c.Halfedges = append(c.Halfedges, &Halfedge{Site: e.RSite, Edge: e})
	}
}

// finish closes the diagram along the bounding rectangle and orders the
// halfedges of every cell.
func (b *builder) finish() *Diagram {
	r := b.d.Bounds
	if len(b.d.Sites) > 0 {
		for _, p := range []various.Point{{X: r.X, Y: r.Y}, {X: r.Right, Y: r.Y}, {X: r.Right, Y: r.Bottom}, {X: r.X, Y: r.Bottom}} {
			b.boundary[p] = true
		}
		pts := make([]various.Point, 0, len(b.boundary))
		for p := range b.boundary {
			pts = append(pts, p)
		}
		sort.Slice(pts, func(i, j int) bool {
			return perimeterPos(pts[i], r) < perimeterPos(pts[j], r)
		})
		for i, va := range pts {
			vb := pts[(i+1)%len(pts)]
			if va == vb {
				continue
			}
			b.addEdge(&Edge{Va: va, Vb: vb, LSite: b.nearestSite(various.Mid2(va, vb))})
		}
	}
	for _, c := range b.d.Cells {
		c.sortHalfedges()
	}
	return b.d
}

// nearestSite returns the site closest to p, preferring the lowest ID.
func (b *builder) nearestSite(p various.Point) *Site {
	var best *Site
	var bestDist float64
	for _, s := range b.d.Sites {
		if d := various.DistSq2(s.Point, p); best == nil || d < bestDist {
			best, bestDist = s, d
		}
	}
	return best
}
