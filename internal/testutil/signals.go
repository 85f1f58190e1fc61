// Package testutil provides deterministic signals and tolerance assertions
// shared by the convolver tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a sine wave starting at phase zero.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates uniform white noise in [-amplitude, amplitude)
// from a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at pos.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DecayingIR generates a noise burst under an exponential envelope, a crude
// stand-in for a room impulse response.
func DecayingIR(seed int64, length int, decay float64) []float64 {
	out := DeterministicNoise(seed, 1, length)
	for i := range out {
		out[i] *= math.Exp(-float64(i) / decay)
	}
	return out
}

// Delayed returns x shifted right by delay samples and truncated to length.
func Delayed(x []float64, delay, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		if j := i - delay; j >= 0 && j < len(x) {
			out[i] = x[j]
		}
	}
	return out
}

// Add returns the element-wise sum of a and b, which must share a length.
func Add(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}
