package genvoronoimap

import (
	"math"

	"github.com/Flokey82/genvoronoimap/noise"
	"github.com/Flokey82/genvoronoimap/various"
)

const (
	latitudeWeight  = 0.7 // share of the latitude band in the temperature
	altitudeCooling = 0.3 // temperature loss at elevation 1.0
)

// assignTemperature blends a latitude band peaking at the vertical center of
// the map with temperature noise, and cools down terrain above the water
// line.
func (m *Map) assignTemperature() error {
	f, err := m.newField(1, m.TemperatureOctaves, m.TemperatureFrequency, m.TemperatureDownscale)
	if err != nil {
		return err
	}
	m.Temperature = f
	m.applyTemperature(f)
	return nil
}

func (m *Map) applyTemperature(f *noise.ScaledBitmap) {
	for _, c := range m.Corners {
		c.Temperature = m.temperatureAt(f, c.Point, c.Elevation)
	}
	for _, c := range m.Cells {
		c.Temperature = m.temperatureAt(f, c.Site, c.Elevation)
	}
}

func (m *Map) temperatureAt(f *noise.ScaledBitmap, p various.Point, elevation float64) float64 {
	centerY := m.Bounds.Center().Y
	halfHeight := m.Bounds.Height() / 2
	sample := (m.sampleField(f, p) + 1) / 2
	t := (1-math.Abs(p.Y-centerY)/halfHeight)*latitudeWeight + sample*(1-latitudeWeight)
	if elevation > m.WaterLine {
		t *= 1 - altitudeCooling*elevation
	}
	return t
}
