package noise

import (
	"errors"
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Supported noise variants.
const (
	VariantSimplex = "simplex"
	VariantPerlin  = "perlin"
)

// ErrUnknownVariant is returned by NewSource for unsupported variants.
var ErrUnknownVariant = errors.New("unknown noise variant")

// NewSource returns the coherent noise source for the given variant,
// seeded with seed.
func NewSource(variant string, seed int64) (Source, error) {
	switch variant {
	case VariantSimplex, "":
		return opensimplex.New(seed), nil
	case VariantPerlin:
		return &perlinSource{p: perlin.NewPerlin(2, 2, 1, seed)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
}

// perlinSource adapts go-perlin to the Source interface.
type perlinSource struct {
	p *perlin.Perlin
}

func (s *perlinSource) Eval2(x, y float64) float64 {
	return math.Max(-1, math.Min(1, s.p.Noise2D(x, y)))
}
