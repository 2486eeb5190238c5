package genvoronoimap

import (
	"errors"
	"fmt"
	"math"

	"github.com/Flokey82/genvoronoimap/noise"
	"github.com/Flokey82/genvoronoimap/various"
)

var (
	// ErrInvalidConfig is returned if the configuration does not allow
	// building a map. Nothing is constructed in that case.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrInvariant is returned if the graph built from the subdivision
	// has inconsistent cross references.
	ErrInvariant = errors.New("graph invariant violated")
)

// pointMargin is kept free of generator points along every side of the bounds.
const pointMargin = 10

// Config is a struct that holds all configuration options for the map generation.
type Config struct {
	NumPoints            int          // Number of generated points / cells
	Bounds               various.Rect // Area covered by the map
	NumLloydIterations   int          // Number of relaxation rounds
	ElevationOctaves     int          // Octaves of the elevation noise
	ElevationFrequency   float64      // Base frequency of the elevation noise
	ElevationDownscale   int          // Resolution divisor of the elevation bitmap
	TemperatureOctaves   int          // Octaves of the temperature noise
	TemperatureFrequency float64      // Base frequency of the temperature noise
	TemperatureDownscale int          // Resolution divisor of the temperature bitmap
	WaterLine            float64      // Elevation at or below which terrain is submerged
	NumRiverAttempts     int          // Number of river trials (0: NumPoints/20)
	NoiseVariant         string       // Coherent noise source ("simplex" or "perlin")
}

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{
		NumPoints:            1024,
		Bounds:               various.NewRect(0, 0, 1280, 700),
		NumLloydIterations:   2,
		ElevationOctaves:     4,
		ElevationFrequency:   2.1,
		ElevationDownscale:   4,
		TemperatureOctaves:   8,
		TemperatureFrequency: 1.3,
		TemperatureDownscale: 4,
		WaterLine:            0.0,
		NumRiverAttempts:     0,
		NoiseVariant:         noise.VariantSimplex,
	}
}

// Validate checks the configuration before anything is built.
func (c *Config) Validate() error {
	if c.NumPoints <= 0 {
		return fmt.Errorf("%w: number of points must be positive, got %d", ErrInvalidConfig, c.NumPoints)
	}
	if c.Bounds.IsEmpty() {
		return fmt.Errorf("%w: bounds %+v have no area", ErrInvalidConfig, c.Bounds)
	}
	if c.Bounds.Shrink(pointMargin).IsEmpty() {
		return fmt.Errorf("%w: bounds %+v are too small for a margin of %d", ErrInvalidConfig, c.Bounds, pointMargin)
	}
	if c.NumLloydIterations < 0 {
		return fmt.Errorf("%w: negative number of relaxation rounds", ErrInvalidConfig)
	}
	if c.ElevationOctaves <= 0 || c.TemperatureOctaves <= 0 {
		return fmt.Errorf("%w: octaves must be positive", ErrInvalidConfig)
	}
	if !(c.ElevationFrequency > 0) || !(c.TemperatureFrequency > 0) {
		return fmt.Errorf("%w: frequencies must be positive", ErrInvalidConfig)
	}
	if c.ElevationDownscale <= 0 || c.TemperatureDownscale <= 0 {
		return fmt.Errorf("%w: downscale must be positive", ErrInvalidConfig)
	}
	if math.IsNaN(c.WaterLine) || math.IsInf(c.WaterLine, 0) {
		return fmt.Errorf("%w: water line must be finite", ErrInvalidConfig)
	}
	if c.NumRiverAttempts < 0 {
		return fmt.Errorf("%w: negative number of river attempts", ErrInvalidConfig)
	}
	if _, err := noise.NewSource(c.NoiseVariant, 0); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// riverAttempts returns the number of river trials to run.
func (c *Config) riverAttempts() int {
	if c.NumRiverAttempts > 0 {
		return c.NumRiverAttempts
	}
	return int(math.Round(float64(c.NumPoints) / 20))
}
