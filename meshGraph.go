package genvoronoimap

import (
	"fmt"

	"github.com/Flokey82/genvoronoimap/various"
	"github.com/Flokey82/genvoronoimap/voronoi"
)

// Cell is the polygonal region around one generator point.
type Cell struct {
	ID          int
	Site        various.Point
	Corners     []int // Corner IDs in boundary order
	Edges       []int // Edge IDs in boundary order
	Neighbors   []int // Adjacent cell IDs, may contain duplicates
	Elevation   float64
	Temperature float64
	Moisture    float64
	Border      bool // Touches the bounds
	Water       bool
	Ocean       bool
	Coast       bool // Land next to the ocean
	Shelf       bool // Ocean next to land
	Terrain     Terrain
	Biome       Biome
}

// Corner is a vertex shared by two or more cells.
type Corner struct {
	ID          int
	Point       various.Point
	Neighbors   []int       // Adjacent corner IDs
	Edges       map[int]int // Adjacent corner ID to edge ID
	Elevation   float64
	Temperature float64
	Moisture    float64
	Border      bool
	Water       bool
	Ocean       bool
	River       int // River flow through this corner
}

// Edge is a boundary segment between two corners.
type Edge struct {
	ID     int
	A, B   int // Corner IDs
	Va, Vb various.Point
	LSite  int // Cell ID on one side, -1 if absent
	RSite  int // Cell ID on the other side, -1 if absent
	River  int // River flow along this edge
}

// IsBorder returns true if the edge is missing a cell on one side.
func (e *Edge) IsBorder() bool {
	return e.LSite < 0 || e.RSite < 0
}

func siteID(s *voronoi.Site) int {
	if s == nil {
		return -1
	}
	return s.ID
}

// getOrCreateCorner returns the ID of the corner at p.
func (m *Map) getOrCreateCorner(p various.Point) int {
	if id, ok := m.cornerIndex[p]; ok {
		return id
	}
	id := len(m.Corners)
	m.Corners = append(m.Corners, &Corner{
		ID:    id,
		Point: p,
		Edges: make(map[int]int),
	})
	m.cornerIndex[p] = id
	return id
}

// buildGraph creates cells, corners and edges from the diagram.
func (m *Map) buildGraph(d *voronoi.Diagram) error {
	m.Cells = make([]*Cell, len(d.Cells))
	for i, c := range d.Cells {
		if c.Site == nil || c.Site.ID != i {
			return fmt.Errorf("%w: cell %d has a mismatching site", ErrInvariant, i)
		}
		m.Cells[i] = &Cell{ID: i, Site: c.Site.Point}
	}
	validSite := func(id int) bool {
		return id >= -1 && id < len(m.Cells)
	}

	// Create corners and register edges.
	edgeIDs := make(map[*voronoi.Edge]int, len(d.Edges))
	for _, de := range d.Edges {
		l, r := siteID(de.LSite), siteID(de.RSite)
		if !validSite(l) || !validSite(r) {
			return fmt.Errorf("%w: edge %v-%v references unknown sites %d, %d", ErrInvariant, de.Va, de.Vb, l, r)
		}
		a := m.getOrCreateCorner(de.Va)
		b := m.getOrCreateCorner(de.Vb)
		if a == b {
			return fmt.Errorf("%w: edge %v-%v has identical corners", ErrInvariant, de.Va, de.Vb)
		}
		if _, ok := m.Corners[a].Edges[b]; ok {
			return fmt.Errorf("%w: corners %d and %d are joined by more than one edge", ErrInvariant, a, b)
		}
		e := &Edge{
			ID:    len(m.Edges),
			A:     a,
			B:     b,
			Va:    de.Va,
			Vb:    de.Vb,
			LSite: l,
			RSite: r,
		}
		m.Edges = append(m.Edges, e)
		edgeIDs[de] = e.ID

		ca, cb := m.Corners[a], m.Corners[b]
		ca.Neighbors = append(ca.Neighbors, b)
		ca.Edges[b] = e.ID
		cb.Neighbors = append(cb.Neighbors, a)
		cb.Edges[a] = e.ID
		if e.IsBorder() {
			ca.Border = true
			cb.Border = true
		}
	}

	// Collect the corners and edges of every cell in boundary order.
	for i, dc := range d.Cells {
		c := m.Cells[i]
		seen := make(map[int]bool)
		addCorner := func(p various.Point) error {
			id, ok := m.cornerIndex[p]
			if !ok {
				return fmt.Errorf("%w: cell %d references unknown corner %v", ErrInvariant, i, p)
			}
			if !seen[id] {
				seen[id] = true
				c.Corners = append(c.Corners, id)
			}
			return nil
		}
		for _, he := range dc.Halfedges {
			eid, ok := edgeIDs[he.Edge]
			if !ok {
				return fmt.Errorf("%w: cell %d references an unknown edge", ErrInvariant, i)
			}
			c.Edges = append(c.Edges, eid)
			if err := addCorner(he.Start()); err != nil {
				return err
			}
			if err := addCorner(he.End()); err != nil {
				return err
			}
		}
	}
	m.markBorderCells()
	m.buildAdjacency()
	return nil
}

// markBorderCells marks every cell with a border corner.
func (m *Map) markBorderCells() {
	m.BorderCells = m.BorderCells[:0]
	for _, c := range m.Cells {
		c.Border = false
		for _, id := range c.Corners {
			if m.Corners[id].Border {
				c.Border = true
				break
			}
		}
		if c.Border {
			m.BorderCells = append(m.BorderCells, c.ID)
		}
	}
}

// buildAdjacency links the cells on both sides of every inner edge.
func (m *Map) buildAdjacency() {
	m.Adjacency = make(map[int][]int, len(m.Cells))
	for _, e := range m.Edges {
		if e.IsBorder() {
			continue
		}
		m.Adjacency[e.LSite] = append(m.Adjacency[e.LSite], e.RSite)
		m.Adjacency[e.RSite] = append(m.Adjacency[e.RSite], e.LSite)
	}
	for _, c := range m.Cells {
		c.Neighbors = m.Adjacency[c.ID]
	}
}
