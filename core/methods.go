// Package core: graph store method implementations
//
// This file provides thread-safe vertex and edge operations on the Graph
// type defined in types.go. A single RWMutex (mu) guards the vertex catalog,
// the vertex order, and every adjacency list; readers share the lock.

package core

import (
	"fmt"
)

const (
	edgeIDPrefix = "e"
)

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertex(id)

	return nil
}

// vertex returns the vertex registered under id, creating and registering
// it first when absent. Repeated calls with the same id return the same
// *Vertex. Caller must hold mu for writing.
func (g *Graph) vertex(id string) *Vertex {
	if v, ok := g.vertices[id]; ok {
		return v
	}
	v := &Vertex{ID: id}
	g.vertices[id] = v
	g.order = append(g.order, id)

	return v
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex registered under id, or ErrVertexNotFound.
// Unlike AddEdge it never creates vertices.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return v, nil
}

// AddEdge appends a directed edge from→to with the given weight to the
// adjacency list of from, creating either endpoint when it is referenced for
// the first time, and returns the new Edge.ID.
//
// The weight is stored as given: negative costs are accepted here and only
// rejected by algorithms that cannot handle them. Parallel edges and
// self-loops are kept as separate entries.
//
// Returns ErrEmptyVertexID if either endpoint is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	src := g.vertex(from)
	g.vertex(to)

	g.nextEdgeID++
	e := &Edge{
		ID:     fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID),
		From:   from,
		To:     to,
		Weight: weight,
	}
	src.adj = append(src.adj, e)
	g.edges = append(g.edges, e)

	return e.ID, nil
}

// HasEdge reports true if at least one edge from 'from' to 'to' exists.
// Complexity: O(outdeg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[from]
	if !ok {
		return false
	}
	for _, e := range v.adj {
		if e.To == to {
			return true
		}
	}

	return false
}

// Neighbors returns the outgoing edges of vertex id in insertion order.
// The returned slice is a copy; the *Edge values are shared and must be
// treated as read-only.
// Complexity: O(outdeg(id)).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]*Edge, len(v.adj))
	copy(out, v.adj)

	return out, nil
}

// OutDegree returns the number of outgoing edges of vertex id, parallel
// edges included.
// Complexity: O(1).
func (g *Graph) OutDegree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return len(v.adj), nil
}

// Successors returns the distinct destination IDs reachable from id in one
// step, in order of first appearance in the adjacency list.
// Complexity: O(outdeg(id)).
func (g *Graph) Successors(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		if _, dup := seen[e.To]; dup {
			continue
		}
		seen[e.To] = struct{}{}
		ids = append(ids, e.To)
	}

	return ids, nil
}

// Vertices returns all vertex IDs in the order they were first referenced.
// Complexity: O(V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns all edges in insertion order.
// Complexity: O(E)
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges, parallel edges included. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
