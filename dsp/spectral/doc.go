// Package spectral provides the forward/inverse transform capability used by
// the block convolvers.
//
// A [Planner] returns a [Transform] for a given power-of-two size. [Cache] is
// the thread-safe planner: it keeps one transform per size behind a mutex and
// is meant to be created once and injected into every convolver that should
// share it.
//
// Two backends are available:
//
//   - [AlgoFFT]: github.com/MeKo-Christian/algo-fft (default)
//   - [Gonum]: gonum.org/v1/gonum/dsp/fourier
//
// Both produce a normalized inverse, so Inverse(Forward(x)) reproduces x.
//
//	cache := spectral.NewCache(spectral.Gonum, nil)
//	t, err := cache.Plan(1024)
package spectral
