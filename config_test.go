package genvoronoimap

import (
	"errors"
	"math"
	"testing"

	"github.com/Flokey82/genvoronoimap/various"
)

func TestNewConfigIsValid(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
	if got := cfg.riverAttempts(); got != 51 {
		t.Errorf("riverAttempts = %d, want 51", got)
	}
	cfg.NumRiverAttempts = 3
	if got := cfg.riverAttempts(); got != 3 {
		t.Errorf("riverAttempts = %d, want 3", got)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"no points", func(c *Config) { c.NumPoints = 0 }},
		{"negative points", func(c *Config) { c.NumPoints = -4 }},
		{"zero area", func(c *Config) { c.Bounds = various.NewRect(0, 0, 100, 0) }},
		{"inverted bounds", func(c *Config) { c.Bounds = various.Rect{X: 10, Y: 10, Right: 0, Bottom: 0} }},
		{"margin too large", func(c *Config) { c.Bounds = various.NewRect(0, 0, 20, 100) }},
		{"no octaves", func(c *Config) { c.ElevationOctaves = 0 }},
		{"no temperature octaves", func(c *Config) { c.TemperatureOctaves = -1 }},
		{"zero frequency", func(c *Config) { c.ElevationFrequency = 0 }},
		{"nan frequency", func(c *Config) { c.TemperatureFrequency = math.NaN() }},
		{"zero downscale", func(c *Config) { c.ElevationDownscale = 0 }},
		{"infinite water line", func(c *Config) { c.WaterLine = math.Inf(1) }},
		{"negative rivers", func(c *Config) { c.NumRiverAttempts = -1 }},
		{"unknown noise", func(c *Config) { c.NoiseVariant = "value" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
			if _, err := NewMapFromConfig(1, cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("NewMapFromConfig() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
