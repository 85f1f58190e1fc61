package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-stconv/dsp/buffer"
)

func ExampleSlidingWindow() {
	w := buffer.NewSlidingWindow[float64](3)
	for _, v := range []float64{1, 2, 3, 4} {
		w.PushBack(v)
	}
	fmt.Println(w.Slice())

	front, _ := w.PopFront()
	fmt.Println(front, w.Len(), w.Cap())

	// Output:
	// [2 3 4]
	// 2 2 3
}

func ExampleBlockAccumulator() {
	acc := buffer.NewBlockAccumulator[float64](4)
	for i := range 10 {
		if block, ok := acc.BufferBack(float64(i)); ok {
			fmt.Println(block)
		}
	}
	fmt.Println("pending:", acc.Pending())

	// Output:
	// [0 1 2 3]
	// [4 5 6 7]
	// pending: 2
}
