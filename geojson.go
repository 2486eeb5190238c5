package genvoronoimap

import (
	"github.com/Flokey82/genvoronoimap/various"

	geojson "github.com/paulmach/go.geojson"
)

func pointToCoord(p various.Point) []float64 {
	return []float64{various.RoundToDecimals(p.X, 4), various.RoundToDecimals(p.Y, 4)}
}

// GeoJSONCells returns all cells as GeoJSON polygons in map coordinates.
func (m *Map) GeoJSONCells() ([]byte, error) {
	geoJSON := geojson.NewFeatureCollection()
	for _, c := range m.Cells {
		if len(c.Corners) < 3 {
			continue
		}

		// The ring has to be closed.
		ring := make([][]float64, 0, len(c.Corners)+1)
		for _, id := range c.Corners {
			ring = append(ring, pointToCoord(m.Corners[id].Point))
		}
		ring = append(ring, ring[0])

		f := geojson.NewPolygonFeature([][][]float64{ring})
		f.ID = c.ID
		f.SetProperty("terrain", c.Terrain.String())
		f.SetProperty("biome", c.Biome.String())
		f.SetProperty("elevation", various.RoundToDecimals(c.Elevation, 4))
		f.SetProperty("moisture", various.RoundToDecimals(c.Moisture, 4))
		f.SetProperty("temperature", various.RoundToDecimals(c.Temperature, 4))
		f.SetProperty("border", c.Border)
		f.SetProperty("water", c.Water)
		f.SetProperty("ocean", c.Ocean)
		f.SetProperty("coast", c.Coast)
		f.SetProperty("shelf", c.Shelf)
		geoJSON.AddFeature(f)
	}
	return geoJSON.MarshalJSON()
}

// GeoJSONRivers returns all river edges as GeoJSON line strings with their
// flow.
func (m *Map) GeoJSONRivers() ([]byte, error) {
	geoJSON := geojson.NewFeatureCollection()
	for _, e := range m.Edges {
		if e.River == 0 {
			continue
		}
		f := geojson.NewLineStringFeature([][]float64{pointToCoord(e.Va), pointToCoord(e.Vb)})
		f.ID = e.ID
		f.SetProperty("flow", e.River)
		geoJSON.AddFeature(f)
	}
	return geoJSON.MarshalJSON()
}
