package noise

import "math"

// ScaledBitmap is a dense grid of samples at a reduced resolution that
// represents a field of a larger logical size.
//
// Point queries are mapped to the grid by proportional scaling, rounding
// and clamping. Values are never interpolated.
type ScaledBitmap struct {
	Data          [][]float64 // Data[x][y]
	ScaledWidth   int
	ScaledHeight  int
	Width, Height float64 // logical size
}

// NewScaledBitmap returns a zeroed bitmap with the given grid and logical
// size.
func NewScaledBitmap(scaledW, scaledH int, w, h float64) *ScaledBitmap {
	data := make([][]float64, scaledW)
	for x := range data {
		data[x] = make([]float64, scaledH)
	}
	return &ScaledBitmap{
		Data:         data,
		ScaledWidth:  scaledW,
		ScaledHeight: scaledH,
		Width:        w,
		Height:       h,
	}
}

// ForEach calls fn for every sample in column major order.
func (b *ScaledBitmap) ForEach(fn func(val float64, x, y int)) {
	for x := 0; x < b.ScaledWidth; x++ {
		for y := 0; y < b.ScaledHeight; y++ {
			fn(b.Data[x][y], x, y)
		}
	}
}

// Map replaces every sample with the result of fn.
func (b *ScaledBitmap) Map(fn func(val float64, x, y int) float64) {
	for x := 0; x < b.ScaledWidth; x++ {
		for y := 0; y < b.ScaledHeight; y++ {
			b.Data[x][y] = fn(b.Data[x][y], x, y)
		}
	}
}

// MinMax returns the smallest and largest sample.
func (b *ScaledBitmap) MinMax() (float64, float64) {
	if b.ScaledWidth == 0 || b.ScaledHeight == 0 {
		return 0, 0
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	b.ForEach(func(val float64, x, y int) {
		lo = math.Min(lo, val)
		hi = math.Max(hi, val)
	})
	return lo, hi
}

// Rescale linearly maps the observed range of samples onto [min, max].
// A flat bitmap is set to the middle of the target range.
func (b *ScaledBitmap) Rescale(min, max float64) {
	lo, hi := b.MinMax()
	span := hi - lo
	if span == 0 {
		mid := (min + max) / 2
		b.Map(func(val float64, x, y int) float64 { return mid })
		return
	}
	b.Map(func(val float64, x, y int) float64 {
		return (val-lo)/span*(max-min) + min
	})
}

// GridPos maps a logical position to grid indices.
func (b *ScaledBitmap) GridPos(px, py float64) (int, int) {
	return mapToSpace(px, b.Width, b.ScaledWidth), mapToSpace(py, b.Height, b.ScaledHeight)
}

// At returns the sample covering the given logical position.
func (b *ScaledBitmap) At(px, py float64) float64 {
	x, y := b.GridPos(px, py)
	return b.Data[x][y]
}

// Set overwrites the sample covering the given logical position.
func (b *ScaledBitmap) Set(px, py, val float64) {
	x, y := b.GridPos(px, py)
	b.Data[x][y] = val
}

func mapToSpace(v, size float64, target int) int {
	i := int(math.Round(v * float64(target) / size))
	if i > target-1 {
		i = target - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
