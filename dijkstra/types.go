// Package dijkstra defines the graph, result and configuration types for
// single-source shortest paths over an adjacency mapping.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrInvalidSource indicates that the source node has no entry in the
	// graph's outer mapping.
	ErrInvalidSource = errors.New("dijkstra: source node does not exist in the graph")

	// ErrNegativeWeight indicates that WithWeightCheck found a negative or NaN weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero,
	// a negative value or NaN, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Graph is a directed adjacency mapping: Graph[u][v] is the weight of u→v.
// Nodes that only appear as neighbors are leaves without outgoing edges.
// Weights must be finite and non-negative.
type Graph map[string]map[string]float64

// Status tags a Result.
type Status int

const (
	// StatusUnreachable means no path leads from the source to the destination.
	StatusUnreachable Status = iota

	// StatusReachable means Result.Path and Result.Distance are set.
	StatusReachable
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusReachable:
		return "reachable"
	case StatusUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// Result is the outcome of FindShortestPath.
//
// For StatusReachable, Path lists the nodes from source to destination
// inclusive and Distance is the sum of the edge weights along it.
// For StatusUnreachable, Path is nil and Distance is +Inf.
type Result struct {
	Status   Status
	Path     []string
	Distance float64
}

// Reachable reports whether r carries a path.
func (r Result) Reachable() bool { return r.Status == StatusReachable }

// Paths is the outcome of ComputeDistancesAndPaths.
//
// Distances holds every node known to the graph (outer keys and neighbor
// keys); unreached nodes map to +Inf. Predecessors[v] is the node preceding
// v on its shortest path; the source and unreached nodes have no entry.
type Paths struct {
	Distances    map[string]float64
	Predecessors map[string]string
}

// PathTo rebuilds the shortest path to destination from the predecessor map.
// The boolean is false if destination is unknown or was not reached.
func (p Paths) PathTo(destination string) ([]string, bool) {
	d, ok := p.Distances[destination]
	if !ok || math.IsInf(d, 1) {
		return nil, false
	}

	return reconstructPath(p.Predecessors, destination), true
}

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – candidates farther than this are not relaxed. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ this value are impassable. Default +Inf.
// CheckWeights     – pre-scan every edge and fail with ErrNegativeWeight.
// OnSettle         – called once per node when its distance becomes final.
// OnRelax          – called whenever a strictly shorter distance is recorded.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
	CheckWeights     bool
	OnSettle         func(node string, dist float64)
	OnRelax          func(from, to string, dist float64)
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed max are left unreached.
// Negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Invalid configuration is a programmer error; fail early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as impassable.
// Zero, negative or NaN thresholds panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithWeightCheck enables an O(E) scan of all edges before traversal.
// A negative or NaN weight aborts the call with ErrNegativeWeight.
func WithWeightCheck() Option {
	return func(o *Options) {
		o.CheckWeights = true
	}
}

// WithOnSettle registers a callback run each time a node is settled.
func WithOnSettle(fn func(node string, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithOnRelax registers a callback run each time an edge relaxation
// strictly improves a node's tentative distance.
func WithOnRelax(fn func(from, to string, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// DefaultOptions returns the plain algorithm's configuration:
//   - MaxDistance:      +Inf (explore all reachable nodes).
//   - InfEdgeThreshold: +Inf (every edge passable).
//   - CheckWeights:     false.
//   - OnSettle/OnRelax: no-ops.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		CheckWeights:     false,
		OnSettle:         func(string, float64) {},
		OnRelax:          func(string, string, float64) {},
	}
}
