// Package audiobuf runs go-audio float buffers through the streaming
// convolvers in place.
//
// A host pipeline typically decodes or captures into *audio.FloatBuffer;
// a Stage wraps a mono or stereo filter and processes each buffer as it
// arrives, keeping convolver state across calls.
package audiobuf

import (
	"errors"
	"fmt"

	"github.com/go-audio/audio"
	"github.com/tphakala/simd/f64"

	"github.com/cwbudde/algo-stconv/dsp/conv"
)

// Errors returned by Stage.Process.
var (
	ErrNilBuffer    = errors.New("audiobuf: nil buffer or format")
	ErrChannelCount = errors.New("audiobuf: unsupported channel count")
	ErrOddLength    = errors.New("audiobuf: interleaved stereo data has odd length")
)

// Stage adapts a conv.Filter or conv.StereoFilter to go-audio buffers.
// Scratch space is reused between calls. A Stage is not safe for concurrent
// use.
type Stage struct {
	mono   conv.Filter
	stereo conv.StereoFilter

	left, right []float64
	outL, outR  []float64
}

// Mono returns a stage for single-channel buffers.
func Mono(f conv.Filter) *Stage {
	return &Stage{mono: f}
}

// Stereo returns a stage for interleaved two-channel buffers.
func Stereo(f conv.StereoFilter) *Stage {
	return &Stage{stereo: f}
}

// Channels returns the channel count the stage accepts.
func (s *Stage) Channels() int {
	if s.stereo != nil {
		return 2
	}
	return 1
}

// Process filters buf.Data in place. The buffer's channel count must match
// the stage.
func (s *Stage) Process(buf *audio.FloatBuffer) error {
	if buf == nil || buf.Format == nil {
		return ErrNilBuffer
	}
	if buf.Format.NumChannels != s.Channels() {
		return fmt.Errorf("%w: stage expects %d, buffer has %d", ErrChannelCount, s.Channels(), buf.Format.NumChannels)
	}

	if s.stereo == nil {
		for i, x := range buf.Data {
			buf.Data[i] = s.mono.Compute(x)
		}
		return nil
	}

	if len(buf.Data)%2 != 0 {
		return fmt.Errorf("%w: %d samples", ErrOddLength, len(buf.Data))
	}

	frames := len(buf.Data) / 2
	s.grow(frames)
	for i := range frames {
		s.left[i] = buf.Data[2*i]
		s.right[i] = buf.Data[2*i+1]
	}
	for i := range frames {
		s.outL[i], s.outR[i] = s.stereo.Compute(s.left[i], s.right[i])
	}
	f64.Interleave2(buf.Data, s.outL, s.outR)
	return nil
}

// Reset clears the wrapped filter.
func (s *Stage) Reset() {
	if s.stereo != nil {
		s.stereo.Clear()
		return
	}
	s.mono.Clear()
}

func (s *Stage) grow(frames int) {
	if cap(s.left) < frames {
		s.left = make([]float64, frames)
		s.right = make([]float64, frames)
		s.outL = make([]float64, frames)
		s.outR = make([]float64, frames)
	}
	s.left = s.left[:frames]
	s.right = s.right[:frames]
	s.outL = s.outL[:frames]
	s.outR = s.outR[:frames]
}
