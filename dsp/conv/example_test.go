package conv_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-stconv/dsp/conv"
	"github.com/cwbudde/algo-stconv/dsp/spectral"
)

func ExampleDirect() {
	// Simple moving average filter
	signal := []float64{1, 2, 3, 4, 5, 4, 3, 2, 1}
	kernel := []float64{0.25, 0.5, 0.25}

	result, _ := conv.Direct(signal, kernel)

	fmt.Printf("Output length: %d\n", len(result))
	fmt.Printf("First few values: %.2f, %.2f, %.2f\n", result[0], result[1], result[2])

	// Output:
	// Output length: 11
	// First few values: 0.25, 1.00, 2.00
}

func ExampleConvolver() {
	// A three-tap echo, processed in blocks of four samples.
	c, err := conv.New([]float64{1, 0, 0.5}, 4)
	if err != nil {
		panic(err)
	}

	fmt.Println("latency:", c.Latency(), "buffer:", c.InternalBufferSize())

	for i := range 10 {
		x := 0.0
		if i == 0 {
			x = 1
		}
		// Rounding avoids printing round-off as -0.00.
		fmt.Printf("%.2f ", math.Round(c.Compute(x)*100)/100+0)
	}
	fmt.Println()

	// Output:
	// latency: 4 buffer: 8
	// 0.00 0.00 0.00 0.00 1.00 0.00 0.50 0.00 0.00 0.00
}

func ExampleNewCrossCoupled() {
	// Share one plan cache between all four paths.
	cache := spectral.NewCache(spectral.AlgoFFT, nil)

	x, err := conv.NewCrossCoupled(
		[]float64{1},   // left to left
		[]float64{1},   // right to right
		[]float64{0.3}, // left leaking into right
		[]float64{0.1}, // right leaking into left
		2,
		conv.WithPlanner(cache),
	)
	if err != nil {
		panic(err)
	}

	for range 2 {
		x.Compute(1, 0)
	}
	l, r := x.Compute(0, 0)
	fmt.Printf("%.2f %.2f\n", l, r)

	// Output:
	// 1.00 0.30
}
