// Package bfs provides breadth-first reachability over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex,
//     following out-edges only.
//   - Returns a Result with Order (visit sequence), Depth (hops from the
//     start) and Parent (BFS tree links).
//   - Hooks: OnEnqueue on discovery, OnVisit on dequeue (may abort).
//   - WithFollowEdge / WithCostBelow prune individual edges.
//   - WithMaxDepth limits the search radius.
//
// Why
//
//	Dijkstra answers "how cheap"; BFS answers "whether at all" in O(V + E)
//	without a heap. The pipeline logs the reachable count before running
//	Dijkstra, and tests use Unreached to cross-check vertices that Dijkstra
//	leaves at infinity.
//
// Determinism
//
//	core.Neighbors returns edges in insertion order, and BFS discovers
//	targets in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "0",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      for invalid options (negative MaxDepth).
//   - ErrNotReached           from Result.PathTo.
//   - ctx.Err() on cancellation; wrapped OnVisit errors.
package bfs
