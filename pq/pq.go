package pq

import (
	"golang.org/x/exp/constraints"
)

// MinHeap is an array-backed binary heap ordered by a comparator.
// The zero value is not usable; construct with New or NewOrdered.
type MinHeap[T any] struct {
	items   []T
	compare func(a, b T) int
}

// New returns an empty heap ordered by compare.
// It panics if compare is nil.
func New[T any](compare func(a, b T) int) *MinHeap[T] {
	if compare == nil {
		panic("pq: nil compare function")
	}

	return &MinHeap[T]{compare: compare}
}

// NewOrdered returns an empty heap ordered by the natural < of T.
func NewOrdered[T constraints.Ordered]() *MinHeap[T] {
	return New(func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
}

// Push inserts item.
func (h *MinHeap[T]) Push(item T) {
	h.items = append(h.items, item)
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the minimum item. The boolean is false when
// the heap is empty.
func (h *MinHeap[T]) Pop() (T, bool) {
	var zero T
	n := len(h.items)
	if n == 0 {
		return zero, false
	}

	top := h.items[0]
	last := n - 1
	h.items[0] = h.items[last]
	h.items[last] = zero // release the reference held by the backing array
	h.items = h.items[:last]
	if last > 0 {
		h.siftDown(0)
	}

	return top, true
}

// Peek returns the minimum item without removing it. The boolean is false
// when the heap is empty.
func (h *MinHeap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}

	return h.items[0], true
}

// Len returns the number of items in the heap.
func (h *MinHeap[T]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no items.
func (h *MinHeap[T]) IsEmpty() bool { return len(h.items) == 0 }

// siftUp moves the item at i toward the root while it is strictly less
// than its parent.
func (h *MinHeap[T]) siftUp(i int) {
	item := h.items[i]
	for i > 0 {
		parent := (i - 1) / 2
		if h.compare(item, h.items[parent]) >= 0 {
			break
		}
		h.items[i] = h.items[parent]
		i = parent
	}
	h.items[i] = item
}

// siftDown moves the item at i toward the leaves, each time swapping with
// the smaller child, until no child is strictly smaller.
func (h *MinHeap[T]) siftDown(i int) {
	n := len(h.items)
	item := h.items[i]
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		smallest := left
		if right := left + 1; right < n && h.compare(h.items[right], h.items[left]) < 0 {
			smallest = right
		}
		if h.compare(h.items[smallest], item) >= 0 {
			break
		}
		h.items[i] = h.items[smallest]
		i = smallest
	}
	h.items[i] = item
}
