package genvoronoimap

import "testing"

// newGridMap returns a map of 2x2 cells without corners:
//
//	0 1
//	2 3
func newGridMap() *Map {
	m := newMap(1, smallConfig())
	for i := 0; i < 4; i++ {
		m.Cells = append(m.Cells, &Cell{ID: i})
	}
	link := func(a, b int) {
		m.Adjacency[a] = append(m.Adjacency[a], b)
		m.Adjacency[b] = append(m.Adjacency[b], a)
	}
	link(0, 1)
	link(0, 2)
	link(1, 3)
	link(2, 3)
	for _, c := range m.Cells {
		c.Neighbors = m.Adjacency[c.ID]
	}
	return m
}

func TestOceanFloodGrid(t *testing.T) {
	m := newGridMap()
	for _, id := range []int{0, 2} {
		m.Cells[id].Border = true
		m.Cells[id].Water = true
		m.Cells[id].Elevation = -0.5
	}
	for _, id := range []int{1, 3} {
		m.Cells[id].Elevation = 0.5
	}
	m.BorderCells = []int{0, 2}

	m.assignOceans()
	m.assignCoast()
	m.assignShelf()

	want := []struct{ ocean, coast, shelf bool }{
		{true, false, true},
		{false, true, false},
		{true, false, true},
		{false, true, false},
	}
	for i, w := range want {
		c := m.Cells[i]
		if c.Ocean != w.ocean || c.Coast != w.coast || c.Shelf != w.shelf {
			t.Errorf("cell %d: ocean=%v coast=%v shelf=%v, want %+v", i, c.Ocean, c.Coast, c.Shelf, w)
		}
	}

	// Flooding again does not change anything.
	m.assignOceans()
	for i, w := range want {
		if m.Cells[i].Ocean != w.ocean {
			t.Errorf("second flood changed cell %d", i)
		}
	}
}

func TestOceanFloodLeavesLakes(t *testing.T) {
	m := newGridMap()
	m.Cells[0].Border = true
	m.Cells[0].Water = true
	m.Cells[3].Water = true // only reachable through land
	m.BorderCells = []int{0}

	m.assignOceans()
	m.assignShelf()
	if !m.Cells[0].Ocean || m.Cells[3].Ocean {
		t.Fatalf("ocean flags %v %v, want true false", m.Cells[0].Ocean, m.Cells[3].Ocean)
	}
	m.assignTerrain()
	if m.Cells[3].Terrain != TerrainLake {
		t.Fatalf("isolated water cell is %v, want lake", m.Cells[3].Terrain)
	}
	if m.Cells[0].Terrain != TerrainShelf {
		t.Fatalf("ocean next to land is %v, want shelf", m.Cells[0].Terrain)
	}
}

func TestAssignWater(t *testing.T) {
	m := newMap(1, smallConfig())
	elevations := []float64{-0.2, -0.1, 0.0, 0.3, 0.4, 0.5, -0.5}
	for i, e := range elevations {
		m.Corners = append(m.Corners, &Corner{ID: i, Elevation: e, Edges: map[int]int{}})
	}
	m.Corners[4].Border = true
	m.Cells = []*Cell{
		{ID: 0, Corners: []int{0, 1, 2, 3}},    // 3 of 4 water
		{ID: 1, Corners: []int{0, 1, 3, 4, 2}}, // 4 of 5 water
		{ID: 2, Corners: []int{5, 6}},          // 1 of 2 water
		{ID: 3, Border: true},
	}
	m.assignWater()

	for i, want := range []bool{true, true, false, true} {
		if m.Cells[i].Water != want {
			t.Errorf("cell %d water = %v, want %v", i, m.Cells[i].Water, want)
		}
	}
	// Corner 3 is above the water line but belongs to water cells.
	if !m.Corners[3].Water {
		t.Errorf("corner of a water cell is not water")
	}
}
