package genvoronoimap

import (
	"container/list"
	"log"
	"math"
	"sort"
)

// moistureFalloff is the share of moisture passed on to a neighbor.
const moistureFalloff = 0.9

// assignMoisture diffuses moisture from lakes and rivers, saturates the
// ocean and rank normalizes the remaining corners. Cells get the mean
// moisture of their corners.
func (m *Map) assignMoisture() {
	m.diffuseMoisture()
	for _, c := range m.Corners {
		if c.Ocean {
			c.Moisture = 1.0
		}
	}
	m.redistributeMoisture()
	m.assignCellMoisture()
}

// diffuseMoisture seeds all non ocean corners that are water or carry a
// river, and spreads their moisture to neighbors with decreasing strength.
func (m *Map) diffuseMoisture() {
	queue := list.New()
	for _, c := range m.Corners {
		c.Moisture = 0
		if (c.Water || c.River > 0) && !c.Ocean {
			c.Moisture = 1.0
			queue.PushBack(c.ID)
		}
	}
	if queue.Len() == 0 {
		log.Println("no moisture sources")
	}
	for queue.Len() > 0 {
		e := queue.Front()
		queue.Remove(e)
		c := m.Corners[e.Value.(int)]
		newMoisture := c.Moisture * moistureFalloff
		for _, nb := range c.Neighbors {
			if n := m.Corners[nb]; newMoisture > n.Moisture {
				n.Moisture = newMoisture
				queue.PushBack(nb)
			}
		}
	}
}

// redistributeMoisture replaces the moisture of all non ocean corners by
// their rank, scaled to [0, 1].
func (m *Map) redistributeMoisture() {
	var land []*Corner
	for _, c := range m.Corners {
		if !c.Ocean {
			land = append(land, c)
		}
	}
	sort.SliceStable(land, func(i, j int) bool {
		return land[i].Moisture < land[j].Moisture
	})
	for i, c := range land {
		if len(land) == 1 {
			c.Moisture = 0
			continue
		}
		c.Moisture = float64(i) / float64(len(land)-1)
	}
}

func (m *Map) assignCellMoisture() {
	for _, c := range m.Cells {
		c.Moisture = 0
		if len(c.Corners) == 0 {
			continue
		}
		var sum float64
		for _, id := range c.Corners {
			sum += math.Min(m.Corners[id].Moisture, 1.0)
		}
		c.Moisture = sum / float64(len(c.Corners))
	}
}
