package conv

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Stereo convolves the left and right channels with independent impulse
// responses. There is no interaction between the channels.
type Stereo struct {
	left  *Convolver
	right *Convolver
}

var _ StereoFilter = (*Stereo)(nil)

// NewStereo creates a stereo convolver. Both engines share one planner and
// use the same windowSize.
func NewStereo(left, right []float64, windowSize int, opts ...Option) (*Stereo, error) {
	cfg := applyOptions(opts...)

	l, err := newConvolver(left, windowSize, cfg)
	if err != nil {
		return nil, fmt.Errorf("conv: left channel: %w", err)
	}
	r, err := newConvolver(right, windowSize, cfg)
	if err != nil {
		return nil, fmt.Errorf("conv: right channel: %w", err)
	}

	cfg.Logger.WithFields(logrus.Fields{
		"function":    "conv.NewStereo",
		"window_size": windowSize,
	}).Debug("Created stereo convolver")

	return &Stereo{left: l, right: r}, nil
}

// Compute processes one stereo frame.
func (s *Stereo) Compute(left, right float64) (float64, float64) {
	return s.left.Compute(left), s.right.Compute(right)
}

// Clear resets both channels.
func (s *Stereo) Clear() {
	s.left.Clear()
	s.right.Clear()
}

// ProcessBlock runs Compute over equally long channel slices.
func (s *Stereo) ProcessBlock(left, right []float64) ([]float64, []float64, error) {
	return processStereoBlock(s, left, right)
}

// WindowSize returns the block size shared by both channels.
func (s *Stereo) WindowSize() int {
	return s.left.WindowSize()
}

// InternalBufferSize returns the larger padded size of the two channels.
func (s *Stereo) InternalBufferSize() int {
	return max(s.left.InternalBufferSize(), s.right.InternalBufferSize())
}

// Left returns the left channel engine.
func (s *Stereo) Left() *Convolver { return s.left }

// Right returns the right channel engine.
func (s *Stereo) Right() *Convolver { return s.right }

func processStereoBlock(f StereoFilter, left, right []float64) ([]float64, []float64, error) {
	if len(left) != len(right) {
		return nil, nil, fmt.Errorf("%w: left has %d samples, right has %d", ErrLengthMismatch, len(left), len(right))
	}

	outL := make([]float64, len(left))
	outR := make([]float64, len(right))
	for i := range left {
		outL[i], outR[i] = f.Compute(left[i], right[i])
	}
	return outL, outR, nil
}
