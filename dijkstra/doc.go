// Package dijkstra provides an implementation of Dijkstra's single-source
// shortest-path algorithm on core.Graph directed multigraphs with
// non-negative float64 edge costs.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from one source vertex to every
//     reachable vertex in O((V + E) log V) time.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Stale heap entries left by earlier relaxations are discarded on pop
//     (lazy deletion) instead of being decreased in place.
//   - Each call returns its own *Result; the graph is never written to.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - Result.Path rebuilds a path iteratively from predecessor links.
//   - MaxDistance: stops finalizing beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//   - Stats: counts pushes, pops, stale discards, relaxations and finalized vertices.
//
// Cost range:
//
//   - Distances are float64 sums. A path whose total exceeds math.MaxFloat64
//     saturates to Infinity and its end vertex reads as unreachable. The
//     edgelist reader rejects costs above math.MaxFloat64/2, which keeps
//     every two-edge path finite; deeper graphs need proportionally smaller
//     costs.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:
//     Returned if the Source string is empty when calling Dijkstra.
//   - ErrNilGraph:
//     Returned if you pass a nil *core.Graph to Dijkstra.
//   - ErrVertexNotFound:
//     Returned if the source vertex does not exist, and by Result accessors
//     for names that were not vertices of the graph.
//   - ErrNegativeEdge:
//     Returned if the run tries to relax an edge with a negative weight.
//     Negative edges the run never reaches are ignored.
//   - ErrUnreachable:
//     Returned by Result.Path for vertices left at Infinity.
//   - ErrBadMaxDistance / ErrBadInfThreshold:
//     Raised (via panic) by the option constructors on meaningless values.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (*Result, error)
//
//	  - opts:
//	      • Source(string):                required, the starting vertex ID.
//	      • WithMaxDistance(float64):      explore only vertices with distance ≤ value.
//	      • WithInfEdgeThreshold(float64): skip any edge whose weight ≥ threshold.
//
//	func (*Result) Distance(id string) (float64, error) // Infinity if unreached
//	func (*Result) Path(id string) ([]string, error)     // source first, id last
//	func (*Result) Reachable(id string) bool
//	func (*Result) Predecessor(id string) (string, bool)
//
// Thread safety:
//
//   - Concurrent runs over the same graph are safe as long as nobody mutates
//     the graph meanwhile; each run owns its Result.
//   - A Result is not synchronised; share it read-only.
package dijkstra
