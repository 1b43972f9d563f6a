// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– Source:           ID of the starting vertex (must be non-empty and present in the graph).
//	– MaxDistance:      optional cap on distances to finalize; vertices beyond it stay unreached.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source (or a queried) vertex does not exist in the graph.
//	– ErrNegativeEdge    if a relaxed edge has a negative weight.
//	– ErrUnreachable     if a path is requested for a vertex the run never reached.
//	– ErrBadMaxDistance  if MaxDistance < 0 or NaN.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 or NaN.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a referenced vertex does not exist
	// in the graph: the start vertex of a run or a queried destination.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found")

	// ErrNegativeEdge indicates that a negative edge weight was met during
	// relaxation. The run is aborted and no result is returned.
	ErrNegativeEdge = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnreachable indicates that a path was requested for a vertex whose
	// distance is still Infinity.
	ErrUnreachable = errors.New("dijkstra: vertex is unreachable")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Infinity is the distance of every vertex a run has not reached.
// It compares greater than any finite sum and absorbs additions
// (Infinity + c == Infinity), so it cannot overflow.
var Infinity = math.Inf(1)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// MaxDistance      – vertices whose distance would exceed this value are not finalized.
// InfEdgeThreshold – edges with weight ≥ this threshold are skipped.
type Options struct {
	Source           string  // The ID of the source vertex
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold at or above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are left at
// Infinity. Panics with ErrBadMaxDistance on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Panics with ErrBadInfThreshold on zero,
// negative or NaN values.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults for the
// given source vertex ID.
//
// Defaults:
//   - Source:           <as passed> (validated in Dijkstra).
//   - MaxDistance:      Infinity (explore all reachable vertices).
//   - InfEdgeThreshold: Infinity (no edge treated as impassable).
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}

// Stats counts the work done by one run.
type Stats struct {
	Pushes        int // entries pushed onto the queue, seed included
	Pops          int // entries popped from the queue
	StaleDiscards int // popped entries whose vertex was already finalized
	Relaxations   int // successful distance improvements
	Finalized     int // vertices marked visited
}
