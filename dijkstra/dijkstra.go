// Package dijkstra implements Dijkstra's shortest-path algorithm over an
// adjacency-mapping graph with non-negative edge weights.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is settled at most once: V non-stale extractions.
//   - Each strict improvement pushes one entry: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for distance, predecessor and visited maps.
//   - O(E) worst-case entries in the heap under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - All three entry points share one runner; FindShortestPath only adds
//     an early-stop target.
//   - Lazy decrease-key: improved candidates are pushed again and stale
//     entries are dropped when popped.
//   - Relaxation uses strict <, so among equal-length paths the first one
//     discovered keeps its predecessor.
//   - Neighbors are relaxed in sorted order so that results, including the
//     choice among equal-length paths, are reproducible across runs.
package dijkstra

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/katalvlaran/shortestpath/pq"
)

// FindShortestPath computes the shortest path from source to destination.
// The search stops as soon as destination is settled.
//
// Returns:
//
//   - Result with StatusReachable, the node sequence and its total weight, or
//     StatusUnreachable when no path exists (including an unknown destination).
//   - ErrInvalidSource if source has no entry in g.
//   - ErrNegativeWeight if WithWeightCheck is set and g has a bad weight.
func FindShortestPath(g Graph, source, destination string, opts ...Option) (Result, error) {
	r, err := newRunner(g, source, opts)
	if err != nil {
		return Result{}, err
	}

	r.target, r.hasTarget = destination, true
	r.process()

	d, ok := r.dist[destination]
	if !ok || math.IsInf(d, 1) {
		return Result{Status: StatusUnreachable, Distance: math.Inf(1)}, nil
	}

	return Result{
		Status:   StatusReachable,
		Path:     reconstructPath(r.prev, destination),
		Distance: d,
	}, nil
}

// ComputeAllPaths returns the shortest distance from source to every node
// known to g. Unreached nodes map to +Inf; source maps to 0.
func ComputeAllPaths(g Graph, source string, opts ...Option) (map[string]float64, error) {
	p, err := ComputeDistancesAndPaths(g, source, opts...)
	if err != nil {
		return nil, err
	}

	return p.Distances, nil
}

// ComputeDistancesAndPaths runs the traversal to exhaustion and returns both
// the distance map and the predecessor map, so callers can rebuild any path
// with Paths.PathTo.
func ComputeDistancesAndPaths(g Graph, source string, opts ...Option) (Paths, error) {
	r, err := newRunner(g, source, opts)
	if err != nil {
		return Paths{}, err
	}

	r.process()

	return Paths{Distances: r.dist, Predecessors: r.prev}, nil
}

// entry is a (node, tentative distance) candidate in the priority queue.
// Several entries may exist for one node; only the freshest is honored.
type entry struct {
	node string
	dist float64
}

func compareEntries(a, b entry) int { return cmp.Compare(a.dist, b.dist) }

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g         Graph              // The input graph; read-only.
	options   Options            // Thresholds and hooks.
	target    string             // Early-stop node, valid when hasTarget.
	hasTarget bool               // Whether to stop once target is settled.
	dist      map[string]float64 // Node → best known distance from source.
	prev      map[string]string  // Node → predecessor on its shortest path.
	visited   map[string]bool    // Settled nodes.
	queue     *pq.MinHeap[entry] // Lazy priority queue.
}

// newRunner validates the call and prepares the initial state:
// dist[v] = +Inf for every known node, dist[source] = 0, (source, 0) queued.
func newRunner(g Graph, source string, opts []Option) (*runner, error) {
	// 1) Source must be an outer key. A nil graph has none.
	if _, ok := g[source]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSource, source)
	}

	// 2) Apply options over the defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Optional fail-fast weight scan.
	if cfg.CheckWeights {
		if err := checkWeights(g); err != nil {
			return nil, err
		}
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(g)),
		prev:    make(map[string]string, len(g)),
		visited: make(map[string]bool, len(g)),
		queue:   pq.New(compareEntries),
	}

	// 4) Neighbor-only nodes are part of the graph too.
	inf := math.Inf(1)
	for u, nbrs := range g {
		r.dist[u] = inf
		for v := range nbrs {
			r.dist[v] = inf
		}
	}
	r.dist[source] = 0
	r.queue.Push(entry{node: source, dist: 0})

	return r, nil
}

// process is the main loop: pop the nearest candidate, drop it if stale,
// settle it, stop at the target if any, otherwise relax its edges.
func (r *runner) process() {
	for {
		item, ok := r.queue.Pop()
		if !ok {
			return
		}

		u := item.node
		if r.visited[u] || item.dist > r.dist[u] {
			continue
		}

		r.visited[u] = true
		r.options.OnSettle(u, item.dist)

		if r.hasTarget && u == r.target {
			return
		}

		r.relax(u)
	}
}

// relax tries to improve every unsettled neighbor of u through u.
// Assumes dist[u] is final.
func (r *runner) relax(u string) {
	nbrs := r.g[u]
	if len(nbrs) == 0 {
		return
	}

	du := r.dist[u]
	for _, v := range sortedKeys(nbrs) {
		if r.visited[v] {
			continue
		}

		w := nbrs[v]
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		cand := du + w
		if cand > r.options.MaxDistance {
			continue
		}
		// Strict: an equal distance never replaces the recorded predecessor.
		if !(cand < r.dist[v]) {
			continue
		}

		r.dist[v] = cand
		r.prev[v] = u
		r.options.OnRelax(u, v, cand)
		r.queue.Push(entry{node: v, dist: cand})
	}
}

// checkWeights returns ErrNegativeWeight for the first negative or NaN
// weight found, scanning nodes in sorted order.
func checkWeights(g Graph) error {
	for _, u := range sortedKeys(g) {
		nbrs := g[u]
		for _, v := range sortedKeys(nbrs) {
			if w := nbrs[v]; w < 0 || math.IsNaN(w) {
				return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, u, v, w)
			}
		}
	}

	return nil
}

// reconstructPath walks the predecessor chain back from destination until a
// node without predecessor (the source) and returns it source-first.
func reconstructPath(prev map[string]string, destination string) []string {
	path := []string{destination}
	for cur := destination; ; {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
