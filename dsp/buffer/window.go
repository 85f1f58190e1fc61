package buffer

// Sample is the set of element types a SlidingWindow can hold: plain numeric
// and complex values that are copied by assignment.
type Sample interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// SlidingWindow is a fixed-capacity ordered container with FIFO eviction.
// Elements are ordered from oldest (front) to newest (back). Pushing onto a
// full window evicts one element from the opposite end, so Len never exceeds
// Cap.
//
// A zero-capacity window turns every push into a no-op and every pop or peek
// into a miss. No method returns an error.
type SlidingWindow[T Sample] struct {
	data   []T
	head   int
	length int
}

// NewSlidingWindow returns an empty window holding at most capacity elements.
// A negative capacity is treated as zero.
func NewSlidingWindow[T Sample](capacity int) *SlidingWindow[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &SlidingWindow[T]{data: make([]T, capacity)}
}

// SlidingWindowFrom returns a full window whose capacity equals len(items).
// The items are copied; items[0] becomes the front.
func SlidingWindowFrom[T Sample](items []T) *SlidingWindow[T] {
	w := &SlidingWindow[T]{data: make([]T, len(items)), length: len(items)}
	copy(w.data, items)
	return w
}

// Len returns the number of stored elements.
func (w *SlidingWindow[T]) Len() int {
	return w.length
}

// Cap returns the maximum number of elements.
func (w *SlidingWindow[T]) Cap() int {
	return len(w.data)
}

// IsEmpty reports whether the window holds no elements.
func (w *SlidingWindow[T]) IsEmpty() bool {
	return w.length == 0
}

// IsFull reports whether Len equals Cap.
func (w *SlidingWindow[T]) IsFull() bool {
	return w.length == len(w.data)
}

// physical maps a logical offset from the front to an index into data.
func (w *SlidingWindow[T]) physical(i int) int {
	j := w.head + i
	if j >= len(w.data) {
		j -= len(w.data)
	}
	return j
}

// PushBack appends v as the newest element, evicting the front when full.
func (w *SlidingWindow[T]) PushBack(v T) {
	if len(w.data) == 0 {
		return
	}
	if w.length == len(w.data) {
		w.PopFront()
	}
	w.data[w.physical(w.length)] = v
	w.length++
}

// PushFront prepends v as the oldest element, evicting the back when full.
func (w *SlidingWindow[T]) PushFront(v T) {
	if len(w.data) == 0 {
		return
	}
	if w.length == len(w.data) {
		w.PopBack()
	}
	w.head--
	if w.head < 0 {
		w.head += len(w.data)
	}
	w.data[w.head] = v
	w.length++
}

// PopFront removes and returns the oldest element.
func (w *SlidingWindow[T]) PopFront() (T, bool) {
	var zero T
	if w.length == 0 {
		return zero, false
	}
	v := w.data[w.head]
	w.data[w.head] = zero
	w.head = w.physical(1)
	w.length--
	if w.length == 0 {
		w.head = 0
	}
	return v, true
}

// PopBack removes and returns the newest element.
func (w *SlidingWindow[T]) PopBack() (T, bool) {
	var zero T
	if w.length == 0 {
		return zero, false
	}
	idx := w.physical(w.length - 1)
	v := w.data[idx]
	w.data[idx] = zero
	w.length--
	if w.length == 0 {
		w.head = 0
	}
	return v, true
}

// Front returns the oldest element without removing it.
func (w *SlidingWindow[T]) Front() (T, bool) {
	return w.FrontN(0)
}

// Back returns the newest element without removing it.
func (w *SlidingWindow[T]) Back() (T, bool) {
	return w.BackN(0)
}

// FrontN returns the element k positions after the front.
// It reports false when k is negative or k >= Len.
func (w *SlidingWindow[T]) FrontN(k int) (T, bool) {
	var zero T
	if k < 0 || k >= w.length {
		return zero, false
	}
	return w.data[w.physical(k)], true
}

// BackN returns the element k positions before the back.
// It reports false when k is negative or k >= Len.
func (w *SlidingWindow[T]) BackN(k int) (T, bool) {
	return w.FrontN(w.length - 1 - k)
}

// At returns the i-th oldest element. It panics if i is out of range.
func (w *SlidingWindow[T]) At(i int) T {
	if i < 0 || i >= w.length {
		panic("buffer: index out of range")
	}
	return w.data[w.physical(i)]
}

// Set overwrites the i-th oldest element. It panics if i is out of range.
func (w *SlidingWindow[T]) Set(i int, v T) {
	if i < 0 || i >= w.length {
		panic("buffer: index out of range")
	}
	w.data[w.physical(i)] = v
}

// Accumulate adds src[i] onto the i-th oldest element. Values beyond Len are
// ignored.
func (w *SlidingWindow[T]) Accumulate(src []T) {
	n := min(len(src), w.length)

	// The stored run is at most two contiguous segments of data.
	first := min(n, len(w.data)-w.head)
	seg := w.data[w.head : w.head+first]
	for i := range seg {
		seg[i] += src[i]
	}
	seg = w.data[:n-first]
	for i := range seg {
		seg[i] += src[first+i]
	}
}

// Slice returns a copy of the elements ordered from front to back.
func (w *SlidingWindow[T]) Slice() []T {
	return w.AppendTo(make([]T, 0, w.length))
}

// AppendTo appends the elements ordered from front to back to dst.
func (w *SlidingWindow[T]) AppendTo(dst []T) []T {
	first := min(w.length, len(w.data)-w.head)
	dst = append(dst, w.data[w.head:w.head+first]...)
	return append(dst, w.data[:w.length-first]...)
}

// Drain removes the elements in [start, end), counted from the front, and
// returns them in order. Bounds are clamped to [0, Len].
func (w *SlidingWindow[T]) Drain(start, end int) []T {
	start = max(start, 0)
	end = min(end, w.length)
	if start >= end {
		return nil
	}

	all := w.Slice()
	out := make([]T, end-start)
	copy(out, all[start:end])

	w.Clear()
	for _, v := range all[:start] {
		w.PushBack(v)
	}
	for _, v := range all[end:] {
		w.PushBack(v)
	}
	return out
}

// Clear removes all elements. Capacity is unchanged.
func (w *SlidingWindow[T]) Clear() {
	clear(w.data)
	w.head = 0
	w.length = 0
}

// DrainAll removes all elements and returns them ordered from front to back.
func (w *SlidingWindow[T]) DrainAll() []T {
	out := w.Slice()
	w.Clear()
	return out
}

// FillFront pushes copies of v to the front until the window is full.
func (w *SlidingWindow[T]) FillFront(v T) {
	for w.length < len(w.data) {
		w.PushFront(v)
	}
}

// FillBack pushes copies of v to the back until the window is full.
func (w *SlidingWindow[T]) FillBack(v T) {
	for w.length < len(w.data) {
		w.PushBack(v)
	}
}

// Initialize pushes Cap copies of v to the back. Whatever was stored before
// is evicted, leaving a full window of v.
func (w *SlidingWindow[T]) Initialize(v T) {
	for range len(w.data) {
		w.PushBack(v)
	}
}

// ToCapacityFront optionally changes the capacity (a negative value keeps the
// current one) and then evicts from the front until Len <= Cap.
func (w *SlidingWindow[T]) ToCapacityFront(capacity int) {
	w.resize(capacity, true)
}

// ToCapacityBack optionally changes the capacity (a negative value keeps the
// current one) and then evicts from the back until Len <= Cap.
func (w *SlidingWindow[T]) ToCapacityBack(capacity int) {
	w.resize(capacity, false)
}

func (w *SlidingWindow[T]) resize(capacity int, evictFront bool) {
	if capacity < 0 || capacity == len(w.data) {
		return
	}

	items := w.Slice()
	if len(items) > capacity {
		if evictFront {
			items = items[len(items)-capacity:]
		} else {
			items = items[:capacity]
		}
	}

	w.data = make([]T, capacity)
	w.head = 0
	w.length = copy(w.data, items)
}
