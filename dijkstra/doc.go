// Package dijkstra provides single-source shortest paths on directed graphs
// with non-negative edge weights, given as a plain adjacency mapping.
//
// Overview:
//
//   - The graph is a Graph (map[string]map[string]float64); Graph[u][v] is the
//     weight of the edge u→v. Nodes referenced only as neighbors are leaves.
//   - The algorithm is label-setting: each iteration settles the nearest
//     unsettled node using a pq.MinHeap, then relaxes its outgoing edges.
//   - The caller's graph is only read, never retained after the call returns.
//
// Entry points:
//
//	func FindShortestPath(g Graph, source, destination string, opts ...Option) (Result, error)
//	func ComputeAllPaths(g Graph, source string, opts ...Option) (map[string]float64, error)
//	func ComputeDistancesAndPaths(g Graph, source string, opts ...Option) (Paths, error)
//
//	  - FindShortestPath stops as soon as destination is settled and returns a
//	    Result tagged StatusReachable (Path, Distance) or StatusUnreachable.
//	  - ComputeAllPaths runs to exhaustion; unreached nodes map to math.Inf(1).
//	  - ComputeDistancesAndPaths also returns the predecessor map; use
//	    Paths.PathTo to rebuild any path.
//
// Equal-length paths:
//
//	Distances are only updated on strict improvement, so the first predecessor
//	found for a given distance is kept. Neighbors are visited in sorted order,
//	which makes that choice deterministic.
//
// Options:
//
//   - WithMaxDistance(x):       nodes farther than x stay unreached.
//   - WithInfEdgeThreshold(t):  edges with weight ≥ t are impassable.
//   - WithWeightCheck():        reject negative or NaN weights up front.
//   - WithOnSettle(fn):         observe each settled node.
//   - WithOnRelax(fn):          observe each strict improvement.
//
// Errors (sentinel):
//
//   - ErrInvalidSource:   source has no entry in the graph's outer mapping.
//     Returned before any traversal state is built. An unknown destination is
//     not an error; it yields StatusUnreachable.
//   - ErrNegativeWeight:  only with WithWeightCheck.
//   - ErrBadMaxDistance:  panic from WithMaxDistance with a negative value.
//   - ErrBadInfThreshold: panic from WithInfEdgeThreshold with a non-positive value.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Thread safety:
//
//   - Every call allocates its own state; concurrent calls on the same graph
//     are safe as long as nobody mutates the graph meanwhile.
package dijkstra
