package genvoronoimap

import (
	"github.com/Flokey82/genvoronoimap/noise"
	"github.com/Flokey82/genvoronoimap/various"
)

// newField samples a noise bitmap covering the map bounds.
func (m *Map) newField(seedOffset int64, octaves int, frequency float64, downscale int) (*noise.ScaledBitmap, error) {
	src, err := m.noiseSource(seedOffset)
	if err != nil {
		return nil, err
	}
	return noise.NewHeightMap(m.Bounds.Width(), m.Bounds.Height(), downscale, octaves, frequency, src), nil
}

// sampleField returns the sample of the field at the given map position.
func (m *Map) sampleField(f *noise.ScaledBitmap, p various.Point) float64 {
	return f.At(p.X-m.Bounds.X, p.Y-m.Bounds.Y)
}

// assignElevation samples the elevation field, rescaled to [-1, 1] using the
// observed range, for every corner and cell.
func (m *Map) assignElevation() error {
	f, err := m.newField(0, m.ElevationOctaves, m.ElevationFrequency, m.ElevationDownscale)
	if err != nil {
		return err
	}
	f.Rescale(-1, 1)
	m.Elevation = f
	m.applyElevation(f)
	return nil
}

func (m *Map) applyElevation(f *noise.ScaledBitmap) {
	for _, c := range m.Corners {
		c.Elevation = m.sampleField(f, c.Point)
	}
	for _, c := range m.Cells {
		c.Elevation = m.sampleField(f, c.Site)
	}
}
