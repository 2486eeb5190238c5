package genvoronoimap

import (
	"testing"

	"github.com/Flokey82/genvoronoimap/various"
)

func smallConfig() *Config {
	cfg := NewConfig()
	cfg.NumPoints = 50
	cfg.Bounds = various.NewRect(0, 0, 100, 100)
	cfg.WaterLine = 0.0
	return cfg
}

func mustGenerate(t *testing.T, seed int64, cfg *Config) *Map {
	t.Helper()
	m, err := NewMapFromConfig(seed, cfg)
	if err != nil {
		t.Fatalf("NewMapFromConfig: %v", err)
	}
	return m
}

func TestGenerateDeterministic(t *testing.T) {
	a := mustGenerate(t, 42, smallConfig())
	b := mustGenerate(t, 42, smallConfig())

	if len(a.Cells) != 50 || len(b.Cells) != 50 {
		t.Fatalf("got %d and %d cells, want 50", len(a.Cells), len(b.Cells))
	}
	if len(a.Corners) != len(b.Corners) || len(a.Edges) != len(b.Edges) {
		t.Fatalf("graph sizes differ")
	}
	for i, ca := range a.Cells {
		cb := b.Cells[i]
		if ca.Site != cb.Site || ca.Elevation != cb.Elevation || ca.Moisture != cb.Moisture ||
			ca.Temperature != cb.Temperature || ca.Terrain != cb.Terrain || ca.Biome != cb.Biome {
			t.Fatalf("cell %d differs: %+v vs %+v", i, ca, cb)
		}
	}
	for i, ca := range a.Corners {
		cb := b.Corners[i]
		if ca.Point != cb.Point || ca.Elevation != cb.Elevation || ca.Moisture != cb.Moisture || ca.River != cb.River {
			t.Fatalf("corner %d differs", i)
		}
	}
	for i, ea := range a.Edges {
		if ea.River != b.Edges[i].River {
			t.Fatalf("edge %d differs", i)
		}
	}
}

func TestGenerateOverridesConfig(t *testing.T) {
	cfg := smallConfig()
	m, err := Generate(3, various.NewRect(50, 20, 200, 80), 30, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(m.Cells) != 30 {
		t.Fatalf("got %d cells, want 30", len(m.Cells))
	}
	if cfg.NumPoints != 50 {
		t.Fatalf("Generate modified the passed config")
	}
	for _, c := range m.Cells {
		if !m.Bounds.Contains(c.Site) {
			t.Fatalf("site %v outside %+v", c.Site, m.Bounds)
		}
	}
}

func TestMapInvariants(t *testing.T) {
	for _, variant := range []string{"simplex", "perlin"} {
		cfg := NewConfig()
		cfg.NumPoints = 400
		cfg.Bounds = various.NewRect(0, 0, 400, 250)
		cfg.NoiseVariant = variant
		m := mustGenerate(t, 9, cfg)

		for _, c := range m.Cells {
			if c.Ocean && !c.Water {
				t.Errorf("%s: cell %d is ocean but not water", variant, c.ID)
			}
			if c.Shelf && !c.Ocean {
				t.Errorf("%s: cell %d is shelf but not ocean", variant, c.ID)
			}
			if c.Coast && c.Water {
				t.Errorf("%s: cell %d is coast and water", variant, c.ID)
			}
			if c.Border && !c.Water {
				t.Errorf("%s: border cell %d is not water", variant, c.ID)
			}
			if c.Elevation < -1 || c.Elevation > 1 {
				t.Errorf("%s: cell %d elevation %v out of range", variant, c.ID, c.Elevation)
			}
			if c.Moisture < 0 || c.Moisture > 1 {
				t.Errorf("%s: cell %d moisture %v out of range", variant, c.ID, c.Moisture)
			}
			if c.Terrain.String() == "unknown" || c.Biome.String() == "unknown" {
				t.Errorf("%s: cell %d is not classified", variant, c.ID)
			}
		}
		for _, c := range m.Corners {
			if c.Border && !c.Water {
				t.Errorf("%s: border corner %d is not water", variant, c.ID)
			}
		}
	}
}

func TestOceanReachability(t *testing.T) {
	m := mustGenerate(t, 5, smallConfig())

	// Every water cell connected to the border through water is ocean.
	reached := make(map[int]bool)
	var queue []int
	for _, id := range m.BorderCells {
		if m.Cells[id].Water && !reached[id] {
			reached[id] = true
			queue = append(queue, id)
		}
	}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, nb := range m.Cells[id].Neighbors {
			if !reached[nb] && m.Cells[nb].Water {
				reached[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	for _, c := range m.Cells {
		if c.Ocean != reached[c.ID] {
			t.Errorf("cell %d: ocean=%v, reachable=%v", c.ID, c.Ocean, reached[c.ID])
		}
	}
}

func TestRelaxPointsKeepsPointsInBounds(t *testing.T) {
	m := newMap(1, smallConfig())
	pts, err := m.generatePoints(40, m.Bounds)
	if err != nil {
		t.Fatalf("generatePoints: %v", err)
	}
	inner := m.Bounds.Shrink(pointMargin)
	for _, p := range pts {
		if !inner.Contains(p) {
			t.Fatalf("point %v outside %+v", p, inner)
		}
	}
	relaxed, d, err := m.relaxPoints(pts, m.Bounds, 2)
	if err != nil {
		t.Fatalf("relaxPoints: %v", err)
	}
	if len(relaxed) != len(pts) || len(d.Cells) != len(pts) {
		t.Fatalf("relaxation changed the number of points")
	}
	for i, p := range relaxed {
		if !m.Bounds.Contains(p) {
			t.Fatalf("relaxed point %d at %v left the bounds", i, p)
		}
		if d.Cells[i].Site.Point != p {
			t.Fatalf("diagram does not match the relaxed points")
		}
	}
}
