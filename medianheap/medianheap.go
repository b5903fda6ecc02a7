// Package medianheap maintains the running median of a stream of
// totally ordered values using two balanced heap partitions, with an
// optional upper bound on how many values are retained.
//
// This type is not concurrency safe.
package medianheap

import (
	"fmt"
	"strings"
)

// MedianHeap holds the lower half of the retained values in a
// max-oriented partition and the upper half in a min-oriented one, so
// the median is always within reach of the two heap tops. After every
// Push:
//
//   - lower is the same size as upper, or exactly one element bigger
//   - no value in lower is greater than any value in upper
//   - the total size never exceeds the configured max size
type MedianHeap[T Value[T]] struct {
	maxSize int // -1 when unbounded
	lower   partition[T]
	upper   partition[T]
}

// New creates an empty, unbounded MedianHeap.
func New[T Value[T]]() *MedianHeap[T] {
	return &MedianHeap[T]{
		maxSize: -1,
		lower:   newPartition[T](true),
		upper:   newPartition[T](false),
	}
}

// WithMaxSize creates an empty MedianHeap that retains at most maxSize
// values; once full, every Push evicts at least one retained value.
// A max size of zero is accepted and yields a permanently empty heap
// whose Push is a no-op. Negative sizes panic.
func WithMaxSize[T Value[T]](maxSize int) *MedianHeap[T] {
	if maxSize < 0 {
		panic("medianheap: negative max size")
	}
	h := New[T]()
	h.maxSize = maxSize
	return h
}

// MaxSize reports the configured bound, or false if the heap is
// unbounded.
func (h *MedianHeap[T]) MaxSize() (int, bool) {
	if h.maxSize < 0 {
		return 0, false
	}
	return h.maxSize, true
}

// Len returns the number of retained values.
func (h *MedianHeap[T]) Len() int { return h.lower.len() + h.upper.len() }

// IsEmpty reports whether no values are retained.
func (h *MedianHeap[T]) IsEmpty() bool { return h.Len() == 0 }

func (h *MedianHeap[T]) full() bool {
	return h.maxSize >= 0 && h.Len() >= h.maxSize
}

// Median returns the middle value when an odd number of values is
// retained, the average of the two middlemost values when the count is
// even, and false when the heap is empty.
func (h *MedianHeap[T]) Median() (T, bool) {
	switch {
	case h.lower.len() > h.upper.len():
		return h.lower.peek()
	case h.upper.len() > h.lower.len():
		return h.upper.peek()
	default:
		low, ok := h.lower.peek()
		if !ok {
			var zero T
			return zero, false
		}
		up, _ := h.upper.peek()
		return low.Average(up), true
	}
}

// Push adds item to the heap.
//
// When a max size is set and the heap is full, Push evicts
//
//   - one occurrence of the largest retained value, if item is less
//     than the current median
//   - one occurrence of the smallest retained value, if item is
//     greater than the current median
//   - from the side holding more duplicates of the median, if item is
//     equal to the current median; with equally many duplicates on
//     both sides, both the smallest and the largest value go.
func (h *MedianHeap[T]) Push(item T) {
	if h.maxSize == 0 {
		return
	}

	median, ok := h.Median()
	switch {
	case ok && item.Less(median):
		if h.full() {
			h.evictMax()
		}
		h.lower.push(item)
	case ok && median.Less(item):
		if h.full() {
			h.evictMin()
		}
		h.upper.push(item)
	default:
		h.pushEqual(item, median)
	}

	h.rebalance()
}

// pushEqual places an item that compares equal to the current median
// (or lands on an empty heap). Below the max size it simply goes to the
// smaller side. At the max size the median-equal runs on both sides are
// drained to be counted, put back, and the side with the longer run
// loses its outermost extreme to make room; equally long runs cost both
// extremes.
func (h *MedianHeap[T]) pushEqual(item, median T) {
	if !h.full() {
		if h.lower.len() > h.upper.len() {
			h.upper.push(item)
		} else {
			h.lower.push(item)
		}
		return
	}

	lowerRun := h.lower.drainEqual(median)
	upperRun := h.upper.drainEqual(median)
	// The runs go back before evicting so the extremes are always taken
	// from the full multiset, even when a whole side is median-equal.
	h.lower.restore(lowerRun)
	h.upper.restore(upperRun)

	switch {
	case len(lowerRun) < len(upperRun):
		h.evictMin()
		h.lower.push(item)
	case len(lowerRun) > len(upperRun):
		h.evictMax()
		h.upper.push(item)
	default:
		h.evictMin()
		h.evictMax()
		h.lower.push(item)
	}
}

// rebalance restores the size invariant with a single corrective move.
// Every caller changes partition sizes by at most one element, so one
// pass is always enough; with the invariant already holding it does
// nothing.
func (h *MedianHeap[T]) rebalance() {
	switch {
	case h.upper.len() > h.lower.len():
		v, _ := h.upper.pop()
		h.lower.push(v)
	case h.lower.len() > h.upper.len()+1:
		v, _ := h.lower.pop()
		h.upper.push(v)
	}
}

// evictMax removes one occurrence of the largest retained value. It
// lives at upper's far end whenever upper is non-empty, otherwise it is
// lower's top.
func (h *MedianHeap[T]) evictMax() {
	if _, ok := h.upper.popOpposite(); ok {
		return
	}
	h.lower.pop()
}

// evictMin removes one occurrence of the smallest retained value.
func (h *MedianHeap[T]) evictMin() {
	if _, ok := h.lower.popOpposite(); ok {
		return
	}
	h.upper.pop()
}

func (h *MedianHeap[T]) String() string {
	var b strings.Builder
	b.WriteString("MedianHeap{")
	if h.maxSize >= 0 {
		fmt.Fprintf(&b, "maxSize: %d, ", h.maxSize)
	}
	fmt.Fprintf(&b, "lower: %v, upper: %v}", h.lower.col.items, h.upper.col.items)
	return b.String()
}
