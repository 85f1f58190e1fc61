package conv

// Filter processes a mono stream one sample at a time.
type Filter interface {
	// Compute consumes one input sample and returns one output sample.
	Compute(sample float64) float64

	// Clear discards all pending state, as after a transport seek.
	Clear()
}

// StereoFilter processes a two-channel stream one frame at a time.
type StereoFilter interface {
	Compute(left, right float64) (float64, float64)
	Clear()
}

// StreamingConvolver is a Filter that convolves with a fixed kernel and
// exposes its buffering geometry. Output lags input by WindowSize samples.
type StreamingConvolver interface {
	Filter

	// ProcessBlock runs Compute over input and returns the outputs.
	ProcessBlock(input []float64) ([]float64, error)

	// ProcessBlockTo runs Compute over input into a pre-allocated output of
	// the same length.
	ProcessBlockTo(output, input []float64) error

	// WindowSize returns the number of samples per spectral block.
	WindowSize() int

	// KernelLen returns the impulse response length.
	KernelLen() int

	// InternalBufferSize returns the padded transform size.
	InternalBufferSize() int
}
