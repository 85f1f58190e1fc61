package spectral

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Errors returned by transforms and planners.
var (
	ErrInvalidSize    = errors.New("spectral: invalid transform size")
	ErrLengthMismatch = errors.New("spectral: buffer length mismatch")
)

// Transform is a forward/inverse complex DFT of a fixed size.
//
// Inverse is normalized so that Inverse(Forward(x)) == x. dst and src must
// both have length Size and may be the same slice.
type Transform interface {
	Size() int
	Forward(dst, src []complex128) error
	Inverse(dst, src []complex128) error
}

// Planner hands out transforms by size.
type Planner interface {
	Plan(n int) (Transform, error)
}

// Backend creates a new, uncached transform of size n.
type Backend func(n int) (Transform, error)

// AlgoFFT creates transforms backed by github.com/MeKo-Christian/algo-fft.
// n must be a power of two.
func AlgoFFT(n int) (Transform, error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}
	if n == 1 {
		return identity{}, nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectral: failed to create FFT plan of size %d: %w", n, err)
	}
	return &algoFFTTransform{plan: plan, n: n}, nil
}

// Gonum creates transforms backed by gonum's dsp/fourier package.
// n must be a power of two.
func Gonum(n int) (Transform, error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}
	if n == 1 {
		return identity{}, nil
	}

	return &gonumTransform{
		fft:   fourier.NewCmplxFFT(n),
		n:     n,
		scale: complex(1/float64(n), 0),
	}, nil
}

func validateSize(n int) error {
	if n <= 0 || n&(n-1) != 0 {
		return fmt.Errorf("%w: %d is not a positive power of two", ErrInvalidSize, n)
	}
	return nil
}

func checkLengths(n int, dst, src []complex128) error {
	if len(dst) != n || len(src) != n {
		return fmt.Errorf("%w: want %d, got dst=%d src=%d", ErrLengthMismatch, n, len(dst), len(src))
	}
	return nil
}

type algoFFTTransform struct {
	plan *algofft.Plan[complex128]
	n    int
}

func (t *algoFFTTransform) Size() int { return t.n }

func (t *algoFFTTransform) Forward(dst, src []complex128) error {
	if err := checkLengths(t.n, dst, src); err != nil {
		return err
	}
	return t.plan.Forward(dst, src)
}

func (t *algoFFTTransform) Inverse(dst, src []complex128) error {
	if err := checkLengths(t.n, dst, src); err != nil {
		return err
	}
	return t.plan.Inverse(dst, src)
}

// gonumTransform wraps fourier.CmplxFFT, whose inverse is unnormalized.
type gonumTransform struct {
	fft   *fourier.CmplxFFT
	n     int
	scale complex128
}

func (t *gonumTransform) Size() int { return t.n }

func (t *gonumTransform) Forward(dst, src []complex128) error {
	if err := checkLengths(t.n, dst, src); err != nil {
		return err
	}
	t.fft.Coefficients(dst, src)
	return nil
}

func (t *gonumTransform) Inverse(dst, src []complex128) error {
	if err := checkLengths(t.n, dst, src); err != nil {
		return err
	}
	t.fft.Sequence(dst, src)
	for i := range dst {
		dst[i] *= t.scale
	}
	return nil
}

// identity is the DFT of length one.
type identity struct{}

func (identity) Size() int { return 1 }

func (identity) Forward(dst, src []complex128) error {
	if err := checkLengths(1, dst, src); err != nil {
		return err
	}
	dst[0] = src[0]
	return nil
}

func (identity) Inverse(dst, src []complex128) error {
	return identity{}.Forward(dst, src)
}
