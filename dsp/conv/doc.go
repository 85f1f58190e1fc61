// Package conv provides streaming short-time spectral convolution.
//
// A [Convolver] applies a finite impulse response to a continuous stream,
// one sample in and one sample out per call. Internally it collects blocks
// of WindowSize samples and convolves each block in the frequency domain
// (overlap-add), which brings the per-sample cost down from O(len(ir)) to
// amortized O(log(InternalBufferSize)). This makes impulse responses of
// thousands of samples, such as convolution reverbs, practical in a
// real-time callback.
//
// # Usage
//
//	c, err := conv.New(ir, 256)
//	for i, x := range input {
//		output[i] = c.Compute(x)
//	}
//
// The output lags the input by WindowSize samples. Call Clear to discard all
// pending state, for example after a transport seek.
//
// # Stereo
//
// [Stereo] runs two independent channels. [CrossCoupled] implements the full
// 2x2 transfer matrix used by true-stereo and binaural impulse responses:
//
//	x, err := conv.NewCrossCoupled(ll, rr, lr, rl, 512)
//	outL, outR := x.Compute(inL, inR)
//
// # Transforms
//
// Transforms come from a [spectral.Planner]. By default every constructor
// call creates its own [spectral.Cache]; pass one cache with [WithPlanner] to
// share plans across many convolvers and goroutines. [WithBackend] switches
// between the algo-fft and gonum implementations.
//
// # Choosing a window size
//
// Larger windows lower the CPU cost per sample but raise latency. For an IR
// of length M and window W, the transform size is nextPow2(W+M-1); W close
// to M is usually a good balance.
//
// [Direct] is the O(N*M) time-domain reference.
package conv
