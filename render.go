package genvoronoimap

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/Flokey82/genvoronoimap/noise"
	"github.com/Flokey82/genvoronoimap/various"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/mazznoer/colorgrad"
)

// DisplayMode selects the cell property that is rendered.
type DisplayMode int

// Display modes.
const (
	DisplayTerrain DisplayMode = iota
	DisplayBiome
	DisplayElevation
	DisplayMoisture
	DisplayTemperature
)

var displayModeNames = [...]string{
	DisplayTerrain:     "terrain",
	DisplayBiome:       "biome",
	DisplayElevation:   "elevation",
	DisplayMoisture:    "moisture",
	DisplayTemperature: "temperature",
}

func (d DisplayMode) String() string {
	if d < 0 || int(d) >= len(displayModeNames) {
		return "unknown"
	}
	return displayModeNames[d]
}

// ParseDisplayMode returns the display mode with the given name.
func ParseDisplayMode(s string) (DisplayMode, error) {
	for i, name := range displayModeNames {
		if name == s {
			return DisplayMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown display mode %q", s)
}

var terrainColors = map[Terrain]color.NRGBA{
	TerrainShelf:    {0, 125, 125, 255},
	TerrainOcean:    {0, 0, 125, 255},
	TerrainLake:     {0, 255, 255, 255},
	TerrainCoast:    {255, 255, 0, 255},
	TerrainPeak:     {255, 255, 255, 255},
	TerrainMountain: {200, 200, 200, 255},
	TerrainHill:     {99, 66, 33, 255},
	TerrainPlain:    {0, 255, 33, 255},
}

var biomeColors = map[Biome]color.NRGBA{
	BiomeOcean:                  {0, 0, 125, 255},
	BiomeLake:                   {0, 33, 99, 255},
	BiomeMountain:               {200, 200, 200, 255},
	BiomeDesert:                 {255, 255, 0, 255},
	BiomeTundra:                 {99, 255, 255, 255},
	BiomeIce:                    {255, 255, 255, 255},
	BiomeTaiga:                  {0, 0, 255, 255},
	BiomeGrassland:              {0, 255, 0, 255},
	BiomeDead:                   {0, 0, 0, 255},
	BiomeForest:                 {0, 99, 0, 255},
	BiomeSavanna:                {99, 66, 33, 255},
	BiomeTemperateRainForest:    {255, 99, 0, 255},
	BiomeTropicalRainForest:     {255, 0, 0, 255},
	BiomeTropicalSeasonalForest: {99, 0, 0, 255},
}

var riverColor = color.NRGBA{0, 255, 255, 255}

// cellColorFunc returns the function coloring cells in the given mode.
func cellColorFunc(mode DisplayMode) (func(c *Cell) color.Color, error) {
	switch mode {
	case DisplayTerrain:
		return func(c *Cell) color.Color { return terrainColors[c.Terrain] }, nil
	case DisplayBiome:
		return func(c *Cell) color.Color { return biomeColors[c.Biome] }, nil
	case DisplayElevation:
		// Blue to red elevation gradient.
		grad, err := colorgrad.NewGradient().Colors(
			color.RGBA{0, 0, 255, 255},
			color.RGBA{0, 255, 255, 255},
			color.RGBA{0, 255, 0, 255},
			color.RGBA{255, 255, 0, 255},
			color.RGBA{255, 0, 0, 255},
		).Build()
		if err != nil {
			return nil, err
		}
		return func(c *Cell) color.Color { return grad.At((c.Elevation + 1) / 2) }, nil
	case DisplayMoisture:
		grad, err := colorgrad.NewGradient().Colors(
			color.RGBA{0, 0, 0, 255},
			color.RGBA{0, 0, 255, 255},
		).Build()
		if err != nil {
			return nil, err
		}
		return func(c *Cell) color.Color { return grad.At(c.Moisture) }, nil
	case DisplayTemperature:
		grad, err := colorgrad.NewGradient().Colors(
			color.RGBA{0, 0, 100, 255},
			color.RGBA{0, 0, 255, 255},
			color.RGBA{0, 100, 0, 255},
			color.RGBA{0, 200, 0, 255},
			color.RGBA{100, 0, 0, 255},
			color.RGBA{200, 0, 0, 255},
		).Build()
		if err != nil {
			return nil, err
		}
		return func(c *Cell) color.Color { return grad.At(c.Temperature) }, nil
	}
	return nil, fmt.Errorf("unknown display mode %d", mode)
}

// RenderImage draws all cells colored by the given mode, and rivers on
// top, scaled to an image of the given size.
func (m *Map) RenderImage(mode DisplayMode, width, height int) (image.Image, error) {
	colorFunc, err := cellColorFunc(mode)
	if err != nil {
		return nil, err
	}
	sx := float64(width) / m.Bounds.Width()
	sy := float64(height) / m.Bounds.Height()
	toPixel := func(p various.Point) (float64, float64) {
		return (p.X - m.Bounds.X) * sx, (p.Y - m.Bounds.Y) * sy
	}

	dest := image.NewRGBA(image.Rect(0, 0, width, height))
	gc := draw2dimg.NewGraphicContext(dest)
	gc.SetLineWidth(1)
	for _, c := range m.Cells {
		// If the cell has no polygon, we can skip it.
		if len(c.Corners) < 3 {
			continue
		}
		col := colorFunc(c)
		gc.SetStrokeColor(col)
		gc.SetFillColor(col)
		gc.BeginPath()
		x, y := toPixel(m.Corners[c.Corners[0]].Point)
		gc.MoveTo(x, y)
		for _, id := range c.Corners[1:] {
			x, y = toPixel(m.Corners[id].Point)
			gc.LineTo(x, y)
		}
		gc.Close()
		gc.FillStroke()
	}

	// Draw rivers with a width matching their flow.
	gc.SetStrokeColor(riverColor)
	for _, e := range m.Edges {
		if e.River == 0 {
			continue
		}
		gc.SetLineWidth(float64(e.River))
		gc.BeginPath()
		x, y := toPixel(e.Va)
		gc.MoveTo(x, y)
		x, y = toPixel(e.Vb)
		gc.LineTo(x, y)
		gc.Stroke()
	}
	return dest, nil
}

// RenderNoise draws a noise bitmap in grayscale at its grid resolution.
// Samples are expected in [-1, 1].
func RenderNoise(f *noise.ScaledBitmap) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.ScaledWidth, f.ScaledHeight))
	various.KickOffChunkWorkers(f.ScaledWidth, func(start, end int) {
		for x := start; x < end; x++ {
			for y := 0; y < f.ScaledHeight; y++ {
				v := various.Clamp(f.Data[x][y], -1, 1)
				img.SetGray(x, y, color.Gray{Y: uint8(255 / 2.0 * (v + 1))})
			}
		}
	})
	return img
}

// ExportPng renders the map in the given mode and writes it to a PNG file.
func (m *Map) ExportPng(path string, mode DisplayMode, width, height int) error {
	img, err := m.RenderImage(mode, width, height)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
