package genvoronoimap

import (
	"log"

	"github.com/Flokey82/genvoronoimap/geo"
)

// Rivers only spring between these elevations.
const (
	riverMinElevation = 0.3
	riverMaxElevation = 0.94
)

// riverCandidates returns all land corners with at least one lower neighbor.
func (m *Map) riverCandidates() []int {
	var res []int
	for _, c := range m.Corners {
		if c.Water {
			continue
		}
		for _, nb := range c.Neighbors {
			if m.Corners[nb].Elevation < c.Elevation {
				res = append(res, c.ID)
				break
			}
		}
	}
	return res
}

// assignRivers runs the given number of river trials. Each trial picks a
// random candidate corner and tries to find a downhill path to water.
// Flow accumulates on corners and edges shared by several rivers.
func (m *Map) assignRivers(attempts int) {
	candidates := m.riverCandidates()
	if len(candidates) == 0 {
		log.Println("no river candidates")
		return
	}
	var numRivers int
	for i := 0; i < attempts; i++ {
		c := m.Corners[candidates[m.rand.Intn(len(candidates))]]
		if c.Elevation <= riverMinElevation || c.Elevation >= riverMaxElevation {
			continue
		}
		if m.traceRiver(c.ID) {
			numRivers++
		}
	}
	log.Printf("%d of %d river attempts reached water", numRivers, attempts)
}

// traceRiver searches a strictly downhill path from the given corner to
// water. The search is best first, scored by the number of hops plus the
// elevation of the corner. If water is found, the flow of all corners and
// edges along the path is increased by one.
func (m *Map) traceRiver(start int) bool {
	parent := map[int]int{start: -1}
	closed := make(map[int]bool)
	open := geo.NewOpenList()
	open.Upsert(start, -1, 0, m.Corners[start].Elevation)

	end := -1
	for open.Len() > 0 {
		e := open.Pop()
		cur := m.Corners[e.Destination]
		parent[cur.ID] = e.Origin
		if cur.Water {
			end = cur.ID
			break
		}
		closed[cur.ID] = true
		for _, nb := range cur.Neighbors {
			nc := m.Corners[nb]
			if closed[nb] || nc.Elevation >= cur.Elevation {
				continue
			}
			cost := e.Cost + 1
			open.Upsert(nb, cur.ID, cost, cost+nc.Elevation)
		}
	}
	if end < 0 {
		return false
	}

	// Walk back to the origin.
	for id := end; id >= 0; id = parent[id] {
		c := m.Corners[id]
		c.River++
		if p := parent[id]; p >= 0 {
			m.Edges[c.Edges[p]].River++
		}
	}
	return true
}
