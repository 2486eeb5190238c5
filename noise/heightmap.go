package noise

import "math"

// NewHeightMap samples octave noise into a bitmap representing a field of
// logical size w x h, stored at 1/downscale of that resolution. The grid
// spans frequency noise periods along each axis.
func NewHeightMap(w, h float64, downscale, octaves int, frequency float64, src Source) *ScaledBitmap {
	if downscale < 1 {
		downscale = 1
	}
	gw := int(math.Max(1, math.Floor(w/float64(downscale))))
	gh := int(math.Max(1, math.Floor(h/float64(downscale))))

	n := NewNoise(octaves, DefaultPersistence, src)
	bm := NewScaledBitmap(gw, gh, w, h)
	frequency = math.Abs(frequency)
	sx := frequency / float64(gw)
	sy := frequency / float64(gh)
	bm.Map(func(_ float64, x, y int) float64 {
		return n.Eval2(float64(x)*sx, float64(y)*sy)
	})
	return bm
}
