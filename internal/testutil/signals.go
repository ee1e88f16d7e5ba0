package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// PeakedDistribution returns a normalized distribution of n classes whose
// maximum sits at peak with probability p. The remaining mass is spread
// evenly over the other classes.
func PeakedDistribution(n, peak int, p float64) []float64 {
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	rest := 0.0
	if n > 1 {
		rest = (1 - p) / float64(n-1)
	}
	for i := range out {
		out[i] = rest
	}
	out[peak] = p
	return out
}

// NoisyDistribution returns a normalized random distribution of n classes
// drawn from a fixed seed, with an extra bump at peak so it is the unique
// maximum.
func NoisyDistribution(seed int64, n, peak int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	sum := 0.0
	for i := range out {
		out[i] = rng.Float64()
		sum += out[i]
	}
	out[peak] += sum
	sum *= 2
	for i := range out {
		out[i] /= sum
	}
	return out
}
