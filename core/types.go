// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Vertex, and Edge types of the
// graph store, and provides thread-safe primitives for building and
// querying directed weighted multigraphs.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Vertex represents a named node in the graph.
//
// ID uniquely identifies this Vertex within its Graph. The adjacency list
// of outgoing edges is owned by the Graph and exposed through Neighbors.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// adj holds outgoing edges in insertion order.
	adj []*Edge
}

// Edge represents a directed arc From→To with a floating-point cost.
//
// Edges are owned by the adjacency list of their From vertex.
// Parallel edges between the same pair are permitted.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the traversal cost. The store accepts any value;
	// algorithms decide what they tolerate.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithVertexCapacity pre-sizes the vertex catalog for n vertices.
// Negative values are ignored.
func WithVertexCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the in-memory graph store: a mapping from vertex name to Vertex,
// the insertion order of vertex names, and the insertion order of edges.
//
// The store grows only through AddVertex and AddEdge; there is no deletion.
// mu guards every field below it; nextEdgeID is updated under mu as well.
type Graph struct {
	mu sync.RWMutex

	capacity   int                // initial catalog size hint
	nextEdgeID uint64             // edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	order      []string           // vertex IDs in first-reference order
	edges      []*Edge            // all edges in insertion order
}

// NewGraph creates an empty Graph configured by opts.
// Complexity: O(len(opts)) plus the optional pre-allocation.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = make(map[string]*Vertex, g.capacity)
	g.order = make([]string, 0, g.capacity)

	return g
}
