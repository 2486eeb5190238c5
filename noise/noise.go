package noise

import "math"

// Source is a seeded coherent noise function.
// Eval2 returns values in the range [-1, 1].
type Source interface {
	Eval2(x, y float64) float64
}

// Noise sums a Source over several octaves, doubling the frequency and
// scaling the amplitude by the persistence at every octave.
type Noise struct {
	Octaves     int
	Persistence float64
	Amplitudes  []float64
	Src         Source
}

// DefaultPersistence is the amplitude falloff per octave.
const DefaultPersistence = 0.5

// NewNoise returns a new Noise.
func NewNoise(octaves int, persistence float64, src Source) *Noise {
	n := &Noise{
		Octaves:     octaves,
		Persistence: persistence,
		Amplitudes:  make([]float64, octaves),
		Src:         src,
	}

	// Initialize the amplitudes.
	for i := range n.Amplitudes {
		n.Amplitudes[i] = math.Pow(persistence, float64(i))
	}

	return n
}

// Eval2 returns the noise value at the given point, normalized by the sum of
// the amplitudes so that the result stays within the range of the source.
func (n *Noise) Eval2(x, y float64) float64 {
	var sum, sumOfAmplitudes float64
	for octave := 0; octave < n.Octaves; octave++ {
		frequency := 1 << octave
		fFreq := float64(frequency)
		sum += n.Amplitudes[octave] * n.Src.Eval2(x*fFreq, y*fFreq)
		sumOfAmplitudes += n.Amplitudes[octave]
	}
	if sumOfAmplitudes == 0 {
		return 0
	}
	return sum / sumOfAmplitudes
}

// PlusOneOctave returns a new Noise with one more octave.
func (n *Noise) PlusOneOctave() *Noise {
	return NewNoise(n.Octaves+1, n.Persistence, n.Src)
}
