package conv

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/sirupsen/logrus"
	"github.com/tphakala/simd/c128"

	"github.com/cwbudde/algo-stconv/dsp/buffer"
	"github.com/cwbudde/algo-stconv/dsp/spectral"
)

// Convolver is a streaming short-time spectral convolver for one channel.
//
// Samples are collected into blocks of windowSize. Each full block is
// zero-padded to the transform size, multiplied in the frequency domain with
// the cached spectrum of the impulse response, transformed back and
// overlap-added into an output window that is shifted by one sample per
// Compute call.
//
// The transform size is the smallest power of two >= windowSize+len(ir)-1,
// so the circular convolution of the padded sequences equals their linear
// convolution. Output lags input by exactly windowSize samples:
//
//	y[n] = (x * ir)[n - windowSize]
//
// Compute never allocates. A Convolver must not be used from multiple
// goroutines at once; distinct convolvers may share a spectral.Cache.
type Convolver struct {
	ir         []float64
	windowSize int
	paddedSize int

	// Spectrum of the zero-padded IR, computed once.
	irSpectrum []complex128
	transform  spectral.Transform

	input  *buffer.BlockAccumulator[float64]
	output *buffer.SlidingWindow[float64] // always paddedSize long

	// Per-block scratch
	scratch []complex128
	contrib []float64
}

var _ StreamingConvolver = (*Convolver)(nil)

// New creates a convolver for ir with the given block size.
//
// An empty ir, a non-finite tap or a non-positive windowSize is rejected.
func New(ir []float64, windowSize int, opts ...Option) (*Convolver, error) {
	return newConvolver(ir, windowSize, applyOptions(opts...))
}

func newConvolver(ir []float64, windowSize int, cfg Config) (*Convolver, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyKernel
	}
	if windowSize <= 0 {
		return nil, fmt.Errorf("%w: window size must be positive, got %d", ErrInvalidBlockSize, windowSize)
	}
	for i, v := range ir {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: tap %d is %v", ErrNonFiniteKernel, i, v)
		}
	}

	paddedSize := nextPowerOf2(len(ir) + windowSize - 1)

	transform, err := cfg.Planner.Plan(paddedSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create transform of size %d: %w", paddedSize, err)
	}

	irSpectrum := make([]complex128, paddedSize)
	for i, v := range ir {
		irSpectrum[i] = complex(v, 0)
	}
	if err := transform.Forward(irSpectrum, irSpectrum); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel spectrum: %w", err)
	}

	output := buffer.NewSlidingWindow[float64](paddedSize)
	output.Initialize(0)

	c := &Convolver{
		ir:         append([]float64(nil), ir...),
		windowSize: windowSize,
		paddedSize: paddedSize,
		irSpectrum: irSpectrum,
		transform:  transform,
		input:      buffer.NewBlockAccumulator[float64](windowSize),
		output:     output,
		scratch:    make([]complex128, paddedSize),
		contrib:    make([]float64, paddedSize),
	}

	cfg.Logger.WithFields(logrus.Fields{
		"function":    "conv.New",
		"kernel_len":  len(ir),
		"window_size": windowSize,
		"padded_size": paddedSize,
	}).Debug("Created short-time spectral convolver")

	return c, nil
}

// Compute consumes one input sample and returns one output sample.
func (c *Convolver) Compute(sample float64) float64 {
	out, _ := c.output.PopFront()
	c.output.PushBack(0)

	if block, ok := c.input.BufferBack(sample); ok {
		c.convolveBlock(block)
	}

	return out
}

// convolveBlock overlap-adds the convolution of one full input block onto
// the output window.
func (c *Convolver) convolveBlock(block []float64) {
	for i, v := range block {
		c.scratch[i] = complex(v, 0)
	}
	clear(c.scratch[len(block):])

	// Transforms are sized at construction; a failure here means the shared
	// planner is broken and the output can no longer be trusted.
	if err := c.transform.Forward(c.scratch, c.scratch); err != nil {
		panic(fmt.Errorf("conv: forward transform failed: %w", err))
	}

	c128.Mul(c.scratch, c.scratch, c.irSpectrum)

	if err := c.transform.Inverse(c.scratch, c.scratch); err != nil {
		panic(fmt.Errorf("conv: inverse transform failed: %w", err))
	}

	// Round-off leaves a tiny imaginary residue; only the real part is kept.
	for i, v := range c.scratch {
		c.contrib[i] = real(v)
	}
	c.output.Accumulate(c.contrib)
}

// ProcessBlock runs Compute over input and returns a new output slice.
func (c *Convolver) ProcessBlock(input []float64) ([]float64, error) {
	output := make([]float64, len(input))
	return output, c.ProcessBlockTo(output, input)
}

// ProcessBlockTo runs Compute over input, writing to output.
// Both slices must have the same length; they may alias.
func (c *Convolver) ProcessBlockTo(output, input []float64) error {
	if len(output) != len(input) {
		return fmt.Errorf("%w: expected %d output samples, got %d", ErrLengthMismatch, len(input), len(output))
	}
	for i, x := range input {
		output[i] = c.Compute(x)
	}
	return nil
}

// Clear drops staged input and resets the overlap-add buffer to silence.
func (c *Convolver) Clear() {
	c.input.Reset()
	c.output.Initialize(0)
}

// WindowSize returns the block size.
func (c *Convolver) WindowSize() int {
	return c.windowSize
}

// InternalBufferSize returns the padded transform size, which is also the
// length of the overlap-add buffer.
func (c *Convolver) InternalBufferSize() int {
	return c.paddedSize
}

// KernelLen returns the impulse response length.
func (c *Convolver) KernelLen() int {
	return len(c.ir)
}

// Latency returns the delay in samples between input and output.
func (c *Convolver) Latency() int {
	return c.windowSize
}

// IR returns a copy of the impulse response.
func (c *Convolver) IR() []float64 {
	return append([]float64(nil), c.ir...)
}

// PendingOutput returns a copy of the overlap-add buffer, oldest first.
// Element 0 is what the next Compute call returns.
func (c *Convolver) PendingOutput() []float64 {
	return c.output.Slice()
}

// MagnitudeResponse returns |H(k)| of the cached IR spectrum for bins
// 0..InternalBufferSize()/2.
func (c *Convolver) MagnitudeResponse() []float64 {
	bins := c.paddedSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(c.irSpectrum[i])
		im[i] = imag(c.irSpectrum[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	return mag
}
