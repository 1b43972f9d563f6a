// Package core provides the graph store: a thread-safe, in-memory,
// directed weighted multigraph keyed by vertex name.
//
// The Graph G = (V,E) has a deliberately small surface:
//
//   - Vertices are identified by arbitrary non-empty strings and are created
//     lazily the first time an edge references them.
//   - Edges are directed arcs with a float64 cost, owned by the adjacency list
//     of their source vertex. Parallel edges and self-loops are kept.
//   - Deterministic iteration: Vertices() follows first-reference order,
//     Edges() and Neighbors() follow insertion order.
//   - Insertion only; there is no deletion. Algorithms keep their per-run
//     state outside the store, so one graph can serve many concurrent
//     read-only runs.
//   - A single sync.RWMutex guards the catalog and every adjacency list.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                                   // O(1)
//	HasVertex(id string) bool                                    // O(1)
//	Vertex(id string) (*Vertex, error)                           // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) (edgeID string, err error) // O(1)†
//	HasEdge(from, to string) bool                                // O(outdeg)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)   // O(outdeg), insertion order
//	Successors(id string) ([]string, error) // O(outdeg), unique, first-seen order
//	Vertices() []string                     // O(V), first-reference order
//	Edges() []*Edge                         // O(E), insertion order
//	VertexCount() int                       // O(1)
//	EdgeCount() int                         // O(1)
//
//	// Snapshots
//	Stats() *GraphStats                     // O(V+E)
//	Clone() *Graph                          // O(V+E)
//
// AddEdge does not validate the sign of the weight. Negative costs are stored
// and only rejected by the dijkstra package when a run tries to relax them.
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//
// † amortized: slice append plus map insertion for new endpoints.
package core
