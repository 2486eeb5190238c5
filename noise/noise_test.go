package noise

import (
	"errors"
	"math"
	"testing"
)

type constSource float64

func (c constSource) Eval2(x, y float64) float64 { return float64(c) }

type xSource struct{}

func (xSource) Eval2(x, y float64) float64 { return math.Sin(x) * math.Cos(y) }

func TestNoiseNormalizesAmplitudes(t *testing.T) {
	n := NewNoise(4, DefaultPersistence, constSource(0.5))
	if got := n.Eval2(1.3, 7.1); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("Eval2 = %v, want 0.5", got)
	}
	if len(n.PlusOneOctave().Amplitudes) != 5 {
		t.Fatalf("PlusOneOctave did not add an octave")
	}
}

func TestNewSource(t *testing.T) {
	for _, variant := range []string{VariantSimplex, VariantPerlin} {
		a, err := NewSource(variant, 42)
		if err != nil {
			t.Fatalf("NewSource(%q): %v", variant, err)
		}
		b, _ := NewSource(variant, 42)
		for i := 0; i < 50; i++ {
			x, y := float64(i)*0.37, float64(i)*0.11
			va, vb := a.Eval2(x, y), b.Eval2(x, y)
			if va != vb {
				t.Fatalf("%s: same seed gave %v and %v", variant, va, vb)
			}
			if va < -1 || va > 1 {
				t.Fatalf("%s: sample %v out of range", variant, va)
			}
		}
	}
	if _, err := NewSource("worley", 1); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestScaledBitmapQueries(t *testing.T) {
	bm := NewScaledBitmap(4, 2, 100, 50)
	bm.Map(func(_ float64, x, y int) float64 { return float64(x*10 + y) })

	tests := []struct {
		x, y float64
		want float64
	}{
		{0, 0, 0},
		{24, 12, 10},  // round(0.96)=1, round(0.48)=0
		{100, 50, 31}, // clamped to the last cell
		{-5, -5, 0},
		{62, 13, 21},
	}
	for _, tt := range tests {
		if got := bm.At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	bm.Set(100, 50, -1)
	if bm.Data[3][1] != -1 {
		t.Errorf("Set did not write the clamped cell")
	}
}

func TestRescale(t *testing.T) {
	bm := NewScaledBitmap(3, 1, 3, 1)
	bm.Data[0][0], bm.Data[1][0], bm.Data[2][0] = 2, 3, 6
	bm.Rescale(-1, 1)
	want := []float64{-1, -0.5, 1}
	for x, w := range want {
		if math.Abs(bm.Data[x][0]-w) > 1e-12 {
			t.Errorf("Data[%d] = %v, want %v", x, bm.Data[x][0], w)
		}
	}

	flat := NewScaledBitmap(2, 2, 2, 2)
	flat.Map(func(float64, int, int) float64 { return 0.7 })
	flat.Rescale(-1, 1)
	flat.ForEach(func(v float64, x, y int) {
		if v != 0 {
			t.Errorf("flat field at %d,%d = %v, want 0", x, y, v)
		}
	})
}

func TestNewHeightMap(t *testing.T) {
	bm := NewHeightMap(100, 60, 4, 3, 2.1, xSource{})
	if bm.ScaledWidth != 25 || bm.ScaledHeight != 15 {
		t.Fatalf("grid = %dx%d, want 25x15", bm.ScaledWidth, bm.ScaledHeight)
	}
	if bm.Width != 100 || bm.Height != 60 {
		t.Fatalf("logical size = %vx%v", bm.Width, bm.Height)
	}
	lo, hi := bm.MinMax()
	if lo < -1 || hi > 1 || lo == hi {
		t.Fatalf("unexpected range [%v, %v]", lo, hi)
	}

	tiny := NewHeightMap(2, 2, 4, 1, 1, constSource(0))
	if tiny.ScaledWidth != 1 || tiny.ScaledHeight != 1 {
		t.Fatalf("tiny grid = %dx%d, want 1x1", tiny.ScaledWidth, tiny.ScaledHeight)
	}
}
