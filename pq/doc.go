// Package pq provides a generic binary min-heap used as the priority queue
// behind the dijkstra package.
//
// Ordering is supplied by the caller as a three-way comparator:
//
//	compare(a, b) < 0   a is extracted before b
//	compare(a, b) == 0  either order
//	compare(a, b) > 0   b is extracted before a
//
// The heap holds no notion of identity, so the same logical element may be
// pushed several times; callers that use it for lazy decrease-key (as
// Dijkstra does) discard stale entries on extraction.
//
// Complexity:
//
//   - Push: O(log n) amortized (slice growth).
//   - Pop:  O(log n).
//   - Peek, Len, IsEmpty: O(1).
//
// Empty heaps never produce errors or panics: Pop and Peek report emptiness
// through their second return value.
//
// A MinHeap is not safe for concurrent use.
package pq
