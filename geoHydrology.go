package genvoronoimap

import (
	"container/list"
	"log"
)

// waterCornerThreshold is the share of water corners above which a cell is
// considered water.
const waterCornerThreshold = 0.6

// assignWater marks corners at or below the water line, and cells with
// mostly water corners. Border corners and cells are always water.
func (m *Map) assignWater() {
	for _, c := range m.Corners {
		c.Water = c.Border || c.Elevation <= m.WaterLine
	}
	for _, c := range m.Cells {
		var numWater int
		for _, id := range c.Corners {
			if m.Corners[id].Water {
				numWater++
			}
		}
		c.Water = c.Border
		if len(c.Corners) > 0 && float64(numWater)/float64(len(c.Corners)) > waterCornerThreshold {
			c.Water = true
		}
		if c.Water {
			for _, id := range c.Corners {
				m.Corners[id].Water = true
			}
		}
	}
}

// assignOceans flood fills all water cells connected to the border cells
// and marks them and their corners as ocean. Water cells that are not
// reached remain lakes.
func (m *Map) assignOceans() {
	visited := make(map[int]bool)
	queue := list.New()
	for _, id := range m.BorderCells {
		if m.Cells[id].Water && !visited[id] {
			visited[id] = true
			queue.PushBack(id)
		}
	}

	var numOcean int
	for queue.Len() > 0 {
		e := queue.Front()
		queue.Remove(e)
		c := m.Cells[e.Value.(int)]
		c.Ocean = true
		numOcean++
		for _, id := range c.Corners {
			m.Corners[id].Ocean = true
		}
		for _, nb := range c.Neighbors {
			if !visited[nb] && m.Cells[nb].Water {
				visited[nb] = true
				queue.PushBack(nb)
			}
		}
	}
	log.Printf("%d of %d cells are ocean", numOcean, len(m.Cells))
}

// assignCoast marks land cells next to the ocean.
func (m *Map) assignCoast() {
	for _, c := range m.Cells {
		c.Coast = !c.Water && m.anyNeighbor(c, func(nb *Cell) bool { return nb.Ocean })
	}
}

// assignShelf marks ocean cells next to a cell that is not water.
func (m *Map) assignShelf() {
	for _, c := range m.Cells {
		c.Shelf = c.Ocean && m.anyNeighbor(c, func(nb *Cell) bool { return !nb.Water })
	}
}

func (m *Map) anyNeighbor(c *Cell, fn func(nb *Cell) bool) bool {
	for _, nb := range c.Neighbors {
		if fn(m.Cells[nb]) {
			return true
		}
	}
	return false
}
