// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only snapshots and cloning on top of the core types.
// Policy:
//   - No algorithms here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount   int // number of vertices
	EdgeCount     int // number of edges, parallel edges included
	SelfLoops     int // edges with From == To
	NegativeEdges int // edges with Weight < 0
	MaxOutDegree  int // largest adjacency list length
}

// Stats produces a deterministic snapshot of catalog sizes and a few edge
// classifications useful for diagnostics.
//
// Implementation:
//   - Stage 1: Acquire mu read lock.
//   - Stage 2: Count vertices, then scan every adjacency list once.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
//
// Notes:
//   - NegativeEdges counts stored edges only; Dijkstra rejects them lazily,
//     when it first tries to relax one.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}
	for _, id := range g.order {
		v := g.vertices[id]
		if len(v.adj) > stats.MaxOutDegree {
			stats.MaxOutDegree = len(v.adj)
		}
		for _, e := range v.adj {
			if e.From == e.To {
				stats.SelfLoops++
			}
			if e.Weight < 0 {
				stats.NegativeEdges++
			}
		}
	}

	return &stats
}

// Clone returns a deep copy of the Graph: vertices, order, edges and
// adjacency. Edge IDs are preserved and the ID counter continues from the
// source graph.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
//
// Concurrency:
//   - Holds the source read lock for the whole copy; the clone is fresh and
//     needs no lock while it is being populated.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithVertexCapacity(len(g.vertices)))
	clone.nextEdgeID = g.nextEdgeID
	for _, id := range g.order {
		v := g.vertices[id]
		clone.vertices[id] = &Vertex{ID: v.ID, adj: make([]*Edge, 0, len(v.adj))}
		clone.order = append(clone.order, id)
	}
	clone.edges = make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		ne := &Edge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight}
		clone.edges = append(clone.edges, ne)
		src := clone.vertices[e.From]
		src.adj = append(src.adj, ne)
	}

	return clone
}
