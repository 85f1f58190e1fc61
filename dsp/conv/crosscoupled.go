package conv

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// CrossCoupled implements a full 2x2 convolution matrix:
//
//	outL = LL*inL + RL*inR
//	outR = RR*inR + LR*inL
//
// LR is the leakage of the left input into the right output and RL the
// leakage of the right input into the left output. Binaural and
// "true stereo" reverb impulse responses take this form.
type CrossCoupled struct {
	ll, rr, lr, rl *Convolver
}

var _ StereoFilter = (*CrossCoupled)(nil)

// NewCrossCoupled creates a cross-coupled stereo convolver from the four
// transfer paths. All engines share one planner and windowSize.
func NewCrossCoupled(ll, rr, lr, rl []float64, windowSize int, opts ...Option) (*CrossCoupled, error) {
	cfg := applyOptions(opts...)

	paths := []struct {
		name string
		ir   []float64
	}{
		{"left-left", ll},
		{"right-right", rr},
		{"left-right", lr},
		{"right-left", rl},
	}

	engines := make([]*Convolver, len(paths))
	for i, p := range paths {
		c, err := newConvolver(p.ir, windowSize, cfg)
		if err != nil {
			return nil, fmt.Errorf("conv: %s path: %w", p.name, err)
		}
		engines[i] = c
	}

	cfg.Logger.WithFields(logrus.Fields{
		"function":    "conv.NewCrossCoupled",
		"window_size": windowSize,
	}).Debug("Created cross-coupled stereo convolver")

	return &CrossCoupled{ll: engines[0], rr: engines[1], lr: engines[2], rl: engines[3]}, nil
}

// Compute processes one stereo frame.
func (x *CrossCoupled) Compute(left, right float64) (float64, float64) {
	outL := x.ll.Compute(left) + x.rl.Compute(right)
	outR := x.rr.Compute(right) + x.lr.Compute(left)
	return outL, outR
}

// Clear resets all four paths.
func (x *CrossCoupled) Clear() {
	x.ll.Clear()
	x.rr.Clear()
	x.lr.Clear()
	x.rl.Clear()
}

// ProcessBlock runs Compute over equally long channel slices.
func (x *CrossCoupled) ProcessBlock(left, right []float64) ([]float64, []float64, error) {
	return processStereoBlock(x, left, right)
}

// WindowSize returns the block size shared by all paths.
func (x *CrossCoupled) WindowSize() int {
	return x.ll.WindowSize()
}

// InternalBufferSize returns the largest padded size among the four paths.
func (x *CrossCoupled) InternalBufferSize() int {
	return max(
		x.ll.InternalBufferSize(),
		x.rr.InternalBufferSize(),
		x.lr.InternalBufferSize(),
		x.rl.InternalBufferSize(),
	)
}
