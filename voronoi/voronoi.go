// Package voronoi computes the Voronoi diagram of a point set clipped to a
// bounding rectangle.
//
// The diagram is derived from the dual Delaunay triangulation. Voronoi
// vertices are the circumcenters of the triangles, so edges meeting at the
// same vertex share the exact same coordinates.
package voronoi

import (
	"math"
	"sort"

	"github.com/Flokey82/genvoronoimap/various"
)

// Site is a generator point of the diagram.
// ID is the index of the point in the input slice.
type Site struct {
	ID int
	various.Point
}

// Edge is a segment of the diagram. LSite and RSite are the sites on
// either side. RSite is nil for edges on the bounding rectangle.
type Edge struct {
	Va, Vb various.Point
	LSite  *Site
	RSite  *Site
}

// IsBorder returns true if the edge lies on the bounding rectangle.
func (e *Edge) IsBorder() bool {
	return e.LSite == nil || e.RSite == nil
}

// Halfedge is an edge as seen from one of its sites.
type Halfedge struct {
	Site *Site
	Edge *Edge
}

// Start returns the first vertex of the halfedge, going counterclockwise
// around the site.
func (h *Halfedge) Start() various.Point {
	if h.ccw() {
		return h.Edge.Va
	}
	return h.Edge.Vb
}

// End returns the last vertex of the halfedge, going counterclockwise
// around the site.
func (h *Halfedge) End() various.Point {
	if h.ccw() {
		return h.Edge.Vb
	}
	return h.Edge.Va
}

func (h *Halfedge) ccw() bool {
	a := various.Sub2(h.Edge.Va, h.Site.Point)
	b := various.Sub2(h.Edge.Vb, h.Site.Point)
	return various.Cross2(a, b) > 0
}

func (h *Halfedge) angle() float64 {
	m := various.Sub2(various.Mid2(h.Edge.Va, h.Edge.Vb), h.Site.Point)
	return math.Atan2(m.Y, m.X)
}

// Cell is the region of the plane closest to a site.
// The halfedges are ordered counterclockwise around the site.
type Cell struct {
	Site      *Site
	Halfedges []*Halfedge
}

// Points returns the polygon of the cell.
func (c *Cell) Points() []various.Point {
	pts := make([]various.Point, 0, len(c.Halfedges))
	for _, he := range c.Halfedges {
		pts = append(pts, he.Start())
	}
	return pts
}

func (c *Cell) sortHalfedges() {
	sort.SliceStable(c.Halfedges, func(i, j int) bool {
		return c.Halfedges[i].angle() < c.Halfedges[j].angle()
	})
}

// Diagram is the result of Compute.
// Cells are indexed by site ID.
type Diagram struct {
	Bounds various.Rect
	Sites  []*Site
	Cells  []*Cell
	Edges  []*Edge
}
