package pq_test

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/shortestpath/pq"
)

// ExampleMinHeap orders (node, distance) pairs by distance, the way the
// dijkstra package uses the heap.
func ExampleMinHeap() {
	type entry struct {
		node string
		dist float64
	}

	h := pq.New(func(a, b entry) int { return cmp.Compare(a.dist, b.dist) })
	h.Push(entry{"C", 6})
	h.Push(entry{"A", 0})
	h.Push(entry{"B", 2.5})

	for !h.IsEmpty() {
		e, _ := h.Pop()
		fmt.Printf("%s=%.1f\n", e.node, e.dist)
	}
	// Output:
	// A=0.0
	// B=2.5
	// C=6.0
}

// ExampleMinHeap_Pop shows the empty signal.
func ExampleMinHeap_Pop() {
	h := pq.NewOrdered[int]()
	_, ok := h.Pop()
	fmt.Println(ok)
	// Output: false
}
