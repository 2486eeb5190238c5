// Package genvoronoimap generates regional terrain maps on a Voronoi graph.
//
// Random points are relaxed into evenly sized cells, elevation and
// temperature are sampled from octave noise, and a hydrology pass floods
// oceans, carves rivers and diffuses moisture before every cell is
// classified into a terrain type and a biome.
package genvoronoimap

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/Flokey82/genvoronoimap/noise"
	"github.com/Flokey82/genvoronoimap/various"
	"github.com/Flokey82/genvoronoimap/voronoi"
)

// Map is a generated terrain map.
//
// All entities live in the Cells, Corners and Edges slices and reference
// each other by index. Once returned by NewMapFromConfig, a Map is not
// modified anymore and may be shared between readers.
type Map struct {
	Seed        int64
	Bounds      various.Rect
	Points      []various.Point     // Relaxed generator points, indexed by cell ID
	Diagram     *voronoi.Diagram    // Subdivision of the relaxed points
	Cells       []*Cell             // Cells, indexed by site ID
	Corners     []*Corner           // Corners, in order of discovery
	Edges       []*Edge             // Edges, in diagram order
	Adjacency   map[int][]int       // Cell ID to neighbor cell IDs
	BorderCells []int               // IDs of the cells touching the bounds
	Elevation   *noise.ScaledBitmap // Rescaled elevation field
	Temperature *noise.ScaledBitmap // Raw temperature noise field
	*Config

	rand        *rand.Rand
	cornerIndex map[various.Point]int
}

func newMap(seed int64, cfg *Config) *Map {
	return &Map{
		Seed:        seed,
		Bounds:      cfg.Bounds,
		Adjacency:   make(map[int][]int),
		Config:      cfg,
		rand:        rand.New(rand.NewSource(seed)),
		cornerIndex: make(map[various.Point]int),
	}
}

// NewMapFromConfig generates a new map from the given seed and config.
// A nil config uses the defaults.
func NewMapFromConfig(seed int64, cfg *Config) (*Map, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := newMap(seed, cfg)
	if err := m.generateMap(); err != nil {
		return nil, err
	}
	return m, nil
}

// NewMap generates a map with the default config, overriding the number of
// points and the water line.
func NewMap(seed int64, numPoints int, waterLine float64) (*Map, error) {
	cfg := NewConfig()
	cfg.NumPoints = numPoints
	cfg.WaterLine = waterLine
	return NewMapFromConfig(seed, cfg)
}

// Generate generates a map covering bounds with numPoints cells. The
// remaining parameters are taken from cfg, which is not modified.
func Generate(seed int64, bounds various.Rect, numPoints int, cfg *Config) (*Map, error) {
	c := NewConfig()
	if cfg != nil {
		cp := *cfg
		c = &cp
	}
	c.Bounds = bounds
	c.NumPoints = numPoints
	return NewMapFromConfig(seed, c)
}

func (m *Map) generateMap() error {
	// Place and relax the generator points.
	start := time.Now()
	points, err := m.generatePoints(m.NumPoints, m.Bounds)
	if err != nil {
		return err
	}
	m.Points, m.Diagram, err = m.relaxPoints(points, m.Bounds, m.NumLloydIterations)
	if err != nil {
		return err
	}
	log.Println("Done points in ", time.Since(start).String())

	// Build cells, corners and edges.
	start = time.Now()
	if err := m.buildGraph(m.Diagram); err != nil {
		return err
	}
	log.Println("Done graph in ", time.Since(start).String())

	// Calculate elevation.
	start = time.Now()
	if err := m.assignElevation(); err != nil {
		return err
	}
	log.Println("Done elevation in ", time.Since(start).String())

	// Calculate temperature.
	start = time.Now()
	if err := m.assignTemperature(); err != nil {
		return err
	}
	log.Println("Done temperature in ", time.Since(start).String())

	// Water, oceans, coasts and shelves.
	start = time.Now()
	m.assignWater()
	m.assignOceans()
	m.assignCoast()
	m.assignShelf()
	log.Println("Done hydrology in ", time.Since(start).String())

	// Carve rivers.
	start = time.Now()
	m.assignRivers(m.riverAttempts())
	log.Println("Done rivers in ", time.Since(start).String())

	// Diffuse moisture.
	start = time.Now()
	m.assignMoisture()
	log.Println("Done moisture in ", time.Since(start).String())

	// Classify terrain and biomes.
	start = time.Now()
	m.assignTerrain()
	m.assignBiomes()
	log.Println("Done classification in ", time.Since(start).String())

	log.Println(m.Stats())
	return nil
}

// noiseSource returns the configured noise source for the given seed offset.
func (m *Map) noiseSource(offset int64) (noise.Source, error) {
	src, err := noise.NewSource(m.NoiseVariant, m.Seed+offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return src, nil
}
