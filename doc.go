// Package shortestpath computes single-source shortest paths over weighted
// directed graphs given as plain adjacency mappings.
//
// 🚀 What is in the box?
//
//	A small, dependency-light toolkit:
//		• pq:        generic binary min-heap ordered by a caller comparator
//		• dijkstra:  label-setting shortest paths (one path, or all distances + predecessors)
//		• graphfile: YAML/JSON graph documents with validation
//		• cmd/shortestpath: a CLI over the three packages above
//
// ✨ Guarantees
//
//   - Non-negative weights only; every settled distance is optimal.
//   - Each call owns its state: no globals, no locks, the caller's graph is never mutated.
//   - Equal-length paths resolve deterministically (first strict improvement wins).
//
// Quick ASCII example:
//
//	    A──5──B
//	    │     │1
//	    2     D──2──E
//	    │     │
//	    C──6──┘
//
//	FindShortestPath(g, "A", "E") → [A B D E], distance 8.
//
//	go get github.com/katalvlaran/shortestpath/dijkstra
package shortestpath
