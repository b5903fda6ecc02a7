package medianheap

import "container/heap"

// column is the heap.Interface backing a partition. A max-oriented
// column reverses the comparison so the greatest element surfaces.
type column[T Lesser[T]] struct {
	items []T
	max   bool
}

func (c *column[T]) Len() int { return len(c.items) }

func (c *column[T]) Less(i, j int) bool {
	if c.max {
		return c.items[j].Less(c.items[i])
	}
	return c.items[i].Less(c.items[j])
}

func (c *column[T]) Swap(i, j int) { c.items[i], c.items[j] = c.items[j], c.items[i] }

// Push and Pop use pointer receivers because they modify the slice's
// length, not just its contents.
func (c *column[T]) Push(x any) { c.items = append(c.items, x.(T)) }

func (c *column[T]) Pop() any {
	old := c.items
	n := len(old)
	x := old[n-1]
	c.items = old[:n-1]
	return x
}

// partition is one ordered side of a MedianHeap. A max-oriented
// partition gives fast access to its greatest member, a min-oriented
// one to its least.
type partition[T Lesser[T]] struct {
	col *column[T]
}

func newPartition[T Lesser[T]](max bool) partition[T] {
	return partition[T]{col: &column[T]{max: max}}
}

func (p partition[T]) len() int    { return len(p.col.items) }
func (p partition[T]) empty() bool { return len(p.col.items) == 0 }

func (p partition[T]) push(v T) { heap.Push(p.col, v) }

func (p partition[T]) peek() (T, bool) {
	if p.empty() {
		var zero T
		return zero, false
	}
	return p.col.items[0], true
}

func (p partition[T]) pop() (T, bool) {
	if p.empty() {
		var zero T
		return zero, false
	}
	return heap.Pop(p.col).(T), true
}

// popOpposite removes the element at the far end of the partition: the
// minimum of a max-oriented partition, the maximum of a min-oriented
// one. Only capacity eviction needs it, so a linear scan is acceptable.
func (p partition[T]) popOpposite() (T, bool) {
	if p.empty() {
		var zero T
		return zero, false
	}
	at := 0
	for i := 1; i < len(p.col.items); i++ {
		if p.col.Less(at, i) {
			at = i
		}
	}
	return heap.Remove(p.col, at).(T), true
}

func equal[T Lesser[T]](a, b T) bool { return !a.Less(b) && !b.Less(a) }

// drainEqual removes every element equal to v and returns them. The
// caller must hand them back to restore once it has made its decision,
// so no value is lost.
func (p partition[T]) drainEqual(v T) []T {
	var run []T
	kept := p.col.items[:0]
	for _, it := range p.col.items {
		if equal(it, v) {
			run = append(run, it)
		} else {
			kept = append(kept, it)
		}
	}
	if len(run) > 0 {
		p.col.items = kept
		heap.Init(p.col)
	}
	return run
}

func (p partition[T]) restore(run []T) {
	for _, v := range run {
		p.push(v)
	}
}
