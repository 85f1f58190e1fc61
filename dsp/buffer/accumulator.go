package buffer

// BlockAccumulator batches single samples into fixed-size blocks. It stages
// incoming values in a SlidingWindow and hands back the whole window once it
// is exactly full, then starts over from empty.
type BlockAccumulator[T Sample] struct {
	window *SlidingWindow[T]
	block  []T
}

// NewBlockAccumulator returns an accumulator emitting blocks of blockSize
// elements. A non-positive blockSize yields an accumulator that never emits.
func NewBlockAccumulator[T Sample](blockSize int) *BlockAccumulator[T] {
	w := NewSlidingWindow[T](blockSize)
	return &BlockAccumulator[T]{
		window: w,
		block:  make([]T, 0, w.Cap()),
	}
}

// BlockSize returns the number of elements per emitted block.
func (a *BlockAccumulator[T]) BlockSize() int {
	return a.window.Cap()
}

// Pending returns the number of elements staged since the last emission.
func (a *BlockAccumulator[T]) Pending() int {
	return a.window.Len()
}

// BufferBack appends v to the back of the staging window. When this fills
// the window, the block ordered front to back is returned with true and the
// window is reset to empty.
//
// The returned slice is owned by the accumulator and is overwritten by the
// next emission; copy it to keep it.
func (a *BlockAccumulator[T]) BufferBack(v T) ([]T, bool) {
	a.window.PushBack(v)
	return a.emit()
}

// BufferFront is like BufferBack but prepends v.
func (a *BlockAccumulator[T]) BufferFront(v T) ([]T, bool) {
	a.window.PushFront(v)
	return a.emit()
}

// Reset drops all staged elements.
func (a *BlockAccumulator[T]) Reset() {
	a.window.Clear()
}

func (a *BlockAccumulator[T]) emit() ([]T, bool) {
	if a.window.Cap() == 0 || !a.window.IsFull() {
		return nil, false
	}
	a.block = a.window.AppendTo(a.block[:0])
	a.window.Clear()
	return a.block, true
}
