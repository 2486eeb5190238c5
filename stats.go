package genvoronoimap

import (
	"fmt"
	"strings"
)

// Stats summarizes a generated map.
type Stats struct {
	NumCells     int             `json:"num_cells"`
	NumCorners   int             `json:"num_corners"`
	NumEdges     int             `json:"num_edges"`
	OceanCells   int             `json:"ocean_cells"`
	LakeCells    int             `json:"lake_cells"`
	LandCells    int             `json:"land_cells"`
	RiverCorners int             `json:"river_corners"`
	MaxRiverFlow int             `json:"max_river_flow"`
	Terrains     map[string]int `json:"terrains"`
	Biomes       map[string]int `json:"biomes"`
}

// Stats counts cells per terrain type and biome.
func (m *Map) Stats() *Stats {
	s := &Stats{
		NumCells:   len(m.Cells),
		NumCorners: len(m.Corners),
		NumEdges:   len(m.Edges),
		Terrains:   make(map[string]int),
		Biomes:     make(map[string]int),
	}
	for _, c := range m.Cells {
		switch {
		case c.Ocean:
			s.OceanCells++
		case c.Water:
			s.LakeCells++
		default:
			s.LandCells++
		}
		s.Terrains[c.Terrain.String()]++
		s.Biomes[c.Biome.String()]++
	}
	for _, c := range m.Corners {
		if c.River > 0 {
			s.RiverCorners++
		}
		if c.River > s.MaxRiverFlow {
			s.MaxRiverFlow = c.River
		}
	}
	return s
}

func (s *Stats) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d cells (%d ocean, %d lake, %d land), %d corners, %d edges, %d river corners (max flow %d)",
		s.NumCells, s.OceanCells, s.LakeCells, s.LandCells, s.NumCorners, s.NumEdges, s.RiverCorners, s.MaxRiverFlow)
	for _, t := range Terrains {
		if n := s.Terrains[t.String()]; n > 0 {
			fmt.Fprintf(&sb, "\n  %s: %d", t, n)
		}
	}
	for _, b := range Biomes {
		if n := s.Biomes[b.String()]; n > 0 {
			fmt.Fprintf(&sb, "\n  %s: %d", b, n)
		}
	}
	return sb.String()
}
