package util

import "cmp"

/*
PriorityQueue is a binary heap ordered by a caller-supplied less function. The
heap is stored in a slice: the root lives at index 0 and the children of i at
2i+1 and 2i+2. No parent has lower priority than either of its children.

The less function is the only difference between a min-heap and a max-heap;
wrap it with Reverse to flip the order. The queue is not safe for concurrent
use.
*/

////////////////////////////////////////////////////////////////////////////////

// PriorityQueue is a heap-based priority queue over values of type T.
type PriorityQueue[T any] struct {
	items []T
	less  func(a, b T) bool // true if a has higher priority than b
}

// Natural orders values ascending.
func Natural[T cmp.Ordered](a, b T) bool {
	return a < b
}

// Reverse returns an ordering that is the inverse of less.
func Reverse[T any](less func(a, b T) bool) func(a, b T) bool {
	return func(a, b T) bool {
		return less(b, a)
	}
}

// NewPriorityQueue returns an empty priority queue ordered by less.
func NewPriorityQueue[T any](less func(a, b T) bool) *PriorityQueue[T] {
	return &PriorityQueue[T]{
		items: make([]T, 0),
		less:  less,
	}
}

// NewPriorityQueueFrom builds a priority queue from a copy of items in linear
// time.
func NewPriorityQueueFrom[T any](items []T, less func(a, b T) bool) *PriorityQueue[T] {
	pq := &PriorityQueue[T]{
		items: make([]T, len(items)),
		less:  less,
	}
	copy(pq.items, items)
	for i := len(pq.items)/2 - 1; i >= 0; i-- {
		pq.down(i)
	}
	return pq
}

// Len returns the number of items in the queue.
func (pq *PriorityQueue[T]) Len() int {
	return len(pq.items)
}

// Empty reports whether the queue holds no items.
func (pq *PriorityQueue[T]) Empty() bool {
	return len(pq.items) == 0
}

// Push adds an item to the queue.
func (pq *PriorityQueue[T]) Push(item T) {
	pq.items = append(pq.items, item)
	pq.up(len(pq.items) - 1)
}

// PushAll adds each of items to the queue in turn.
func (pq *PriorityQueue[T]) PushAll(items ...T) {
	for _, item := range items {
		pq.Push(item)
	}
}

// Peek returns the highest priority item without removing it. The boolean is
// false if the queue is empty.
func (pq *PriorityQueue[T]) Peek() (T, bool) {
	if len(pq.items) == 0 {
		var zero T
		return zero, false
	}
	return pq.items[0], true
}

// Pop removes and returns the highest priority item. The boolean is false if
// the queue is empty.
func (pq *PriorityQueue[T]) Pop() (T, bool) {
	var zero T
	if len(pq.items) == 0 {
		return zero, false
	}
	top := pq.items[0]
	last := len(pq.items) - 1
	pq.items[0] = pq.items[last]
	pq.items[last] = zero // release references held by the backing array
	pq.items = pq.items[:last]
	if last > 0 {
		pq.down(0)
	}
	return top, true
}

// Drain pops every item from pq and returns them in priority order.
func Drain[T any](pq *PriorityQueue[T]) []T {
	result := make([]T, 0, pq.Len())
	for {
		item, ok := pq.Pop()
		if !ok {
			return result
		}
		result = append(result, item)
	}
}

func (pq *PriorityQueue[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !pq.less(pq.items[i], pq.items[parent]) {
			return
		}
		pq.items[i], pq.items[parent] = pq.items[parent], pq.items[i]
		i = parent
	}
}

func (pq *PriorityQueue[T]) down(i int) {
	n := len(pq.items)
	for {
		best := i
		left := 2*i + 1
		right := left + 1
		if left < n && pq.less(pq.items[left], pq.items[best]) {
			best = left
		}
		if right < n && pq.less(pq.items[right], pq.items[best]) {
			best = right
		}
		if best == i {
			return
		}
		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}
