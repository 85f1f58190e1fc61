package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-stconv/dsp/spectral"
	"github.com/cwbudde/algo-stconv/internal/testutil"
)

func runStereo(f StereoFilter, left, right []float64) ([]float64, []float64) {
	outL := make([]float64, len(left))
	outR := make([]float64, len(right))
	for i := range left {
		outL[i], outR[i] = f.Compute(left[i], right[i])
	}
	return outL, outR
}

func TestStereoChannelsAreIndependent(t *testing.T) {
	const w = 16
	irL := testutil.DecayingIR(1, 40, 10)
	irR := testutil.DecayingIR(2, 7, 2)
	left := testutil.DeterministicNoise(10, 1, 200)
	right := testutil.DeterministicNoise(20, 1, 200)

	s, err := NewStereo(irL, irR, w)
	require.NoError(t, err)
	assert.Equal(t, w, s.WindowSize())
	assert.Equal(t, 64, s.InternalBufferSize())
	assert.Equal(t, 32, s.Right().InternalBufferSize())

	outL, outR := runStereo(s, left, right)
	testutil.RequireSliceNearlyEqual(t, outL, expectedOutput(t, left, irL, w), convTolerance)
	testutil.RequireSliceNearlyEqual(t, outR, expectedOutput(t, right, irR, w), convTolerance)

	// Silence on the right input must stay silent on the right output.
	s.Clear()
	_, outR = runStereo(s, left, make([]float64, len(left)))
	testutil.RequireAllZero(t, outR, 0)
}

func TestStereoClear(t *testing.T) {
	s, err := NewStereo([]float64{1, 1}, []float64{1, -1}, 4)
	require.NoError(t, err)

	runStereo(s, testutil.DeterministicNoise(1, 1, 10), testutil.DeterministicNoise(2, 1, 10))
	s.Clear()

	testutil.RequireAllZero(t, s.Left().PendingOutput(), 0)
	testutil.RequireAllZero(t, s.Right().PendingOutput(), 0)
}

func TestStereoConstructionErrors(t *testing.T) {
	_, err := NewStereo(nil, []float64{1}, 4)
	assert.ErrorIs(t, err, ErrEmptyKernel)
	assert.ErrorContains(t, err, "left channel")

	_, err = NewStereo([]float64{1}, nil, 4)
	assert.ErrorIs(t, err, ErrEmptyKernel)
	assert.ErrorContains(t, err, "right channel")

	_, err = NewStereo([]float64{1}, []float64{1}, 0)
	assert.ErrorIs(t, err, ErrInvalidBlockSize)
}

func TestStereoSharesOnePlanner(t *testing.T) {
	cache := spectral.NewCache(nil, nil)
	_, err := NewStereo([]float64{1, 2, 3}, []float64{3, 2, 1}, 6, WithPlanner(cache))
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())
}

func TestCrossCoupledMatrix(t *testing.T) {
	const w = 8
	ll := testutil.DecayingIR(1, 20, 5)
	rr := testutil.DecayingIR(2, 25, 5)
	lr := testutil.DecayingIR(3, 9, 3)
	rl := testutil.DecayingIR(4, 3, 1)
	left := testutil.DeterministicNoise(5, 1, 150)
	right := testutil.DeterministicNoise(6, 1, 150)

	x, err := NewCrossCoupled(ll, rr, lr, rl, w)
	require.NoError(t, err)
	assert.Equal(t, w, x.WindowSize())
	assert.Equal(t, 32, x.InternalBufferSize())

	outL, outR := runStereo(x, left, right)

	wantL := testutil.Add(expectedOutput(t, left, ll, w), expectedOutput(t, right, rl, w))
	wantR := testutil.Add(expectedOutput(t, right, rr, w), expectedOutput(t, left, lr, w))
	testutil.RequireSliceNearlyEqual(t, outL, wantL, convTolerance)
	testutil.RequireSliceNearlyEqual(t, outR, wantR, convTolerance)
}

func TestCrossCoupledLeakage(t *testing.T) {
	// Only the left input is driven: the right output is pure LR leakage.
	x, err := NewCrossCoupled([]float64{1}, []float64{1}, []float64{0.5}, []float64{0.25}, 2)
	require.NoError(t, err)

	left := []float64{1, 0, 0, 0, 0, 0}
	outL, outR := runStereo(x, left, make([]float64, len(left)))

	testutil.RequireSliceNearlyEqual(t, outL, []float64{0, 0, 1, 0, 0, 0}, convTolerance)
	testutil.RequireSliceNearlyEqual(t, outR, []float64{0, 0, 0.5, 0, 0, 0}, convTolerance)
}

func TestCrossCoupledClearAndErrors(t *testing.T) {
	x, err := NewCrossCoupled([]float64{1}, []float64{1}, []float64{1}, []float64{1}, 4)
	require.NoError(t, err)

	runStereo(x, testutil.DeterministicNoise(1, 1, 6), testutil.DeterministicNoise(2, 1, 6))
	x.Clear()
	outL, outR := runStereo(x, make([]float64, 8), make([]float64, 8))
	testutil.RequireAllZero(t, outL, 0)
	testutil.RequireAllZero(t, outR, 0)

	_, err = NewCrossCoupled([]float64{1}, []float64{1}, nil, []float64{1}, 4)
	assert.ErrorIs(t, err, ErrEmptyKernel)
	assert.ErrorContains(t, err, "left-right path")
}

func TestStereoProcessBlock(t *testing.T) {
	left := testutil.DeterministicNoise(1, 1, 40)
	right := testutil.DeterministicNoise(2, 1, 40)

	for _, build := range []func() (StereoFilter, error){
		func() (StereoFilter, error) { return NewStereo([]float64{1, 0.5}, []float64{0.3}, 4) },
		func() (StereoFilter, error) {
			return NewCrossCoupled([]float64{1, 0.5}, []float64{0.3}, []float64{0.1}, []float64{0.2}, 4)
		},
	} {
		ref, err := build()
		require.NoError(t, err)
		wantL, wantR := runStereo(ref, left, right)

		f, err := build()
		require.NoError(t, err)
		block, ok := f.(interface {
			ProcessBlock(l, r []float64) ([]float64, []float64, error)
		})
		require.True(t, ok)

		gotL, gotR, err := block.ProcessBlock(left, right)
		require.NoError(t, err)
		testutil.RequireSliceNearlyEqual(t, gotL, wantL, 0)
		testutil.RequireSliceNearlyEqual(t, gotR, wantR, 0)

		_, _, err = block.ProcessBlock(left, right[:3])
		assert.ErrorIs(t, err, ErrLengthMismatch)
	}
}
