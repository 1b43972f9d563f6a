// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once: at most V useful extractions.
//   - Each successful relaxation pushes one entry: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for the per-run distance, predecessor and visited maps.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - Negative weights are detected while relaxing, not by an upfront scan: a
//     negative edge that the run never reaches does not fail it.
//   - All per-run state lives in a Result owned by the caller; the graph is
//     only read, so concurrent runs over an unchanging graph are safe.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/izanahmed/graphing-exponents/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in g and returns them, with predecessor links, as a
// fresh Result.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//
// During the run, the first negative edge the algorithm tries to relax
// aborts it with an error wrapping ErrNegativeEdge; no partial Result is
// returned.
//
// Options customization:
//
//   - WithMaxDistance(x): vertices with distance > x are not finalized (x ≥ 0).
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are skipped (t > 0).
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}

	// 3) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 4) Validate Source exists in the graph
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: start vertex %q", ErrVertexNotFound, cfg.Source)
	}

	// 5) Reset: a fresh Result with every vertex at Infinity, no predecessor,
	//    not visited.
	r := &runner{
		g:       g,
		options: cfg,
		res:     newResult(cfg.Source, g.Vertices()),
	}

	// 6) Seed and run the main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // The input graph; read-only within Dijkstra.
	options Options     // Configuration options (Source, thresholds).
	res     *Result     // Per-run distances, predecessors and visited flags.
	pq      nodePQ      // Min-heap of *nodeItem for lazy priority queue.
}

// init sets the source distance to zero and pushes it onto the heap.
func (r *runner) init() {
	r.res.dist[r.options.Source] = 0
	r.pq = make(nodePQ, 0, len(r.res.vertices))
	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

// push records one heap insertion.
func (r *runner) push(id string, d float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: d})
	r.res.stats.Pushes++
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum distance from the source and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - Every vertex of the graph has been finalized.
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() error {
	total := len(r.res.vertices)
	for r.pq.Len() > 0 && r.res.stats.Finalized < total {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		r.res.stats.Pops++

		// 2) If this vertex was already finalized, skip the stale entry.
		if r.res.visited[item.id] {
			r.res.stats.StaleDiscards++
			continue
		}

		// 3) Nothing left within MaxDistance.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Mark u as visited. Its shortest distance is now final.
		r.res.visited[item.id] = true
		r.res.order = append(r.res.order, item.id)
		r.res.stats.Finalized++

		// 5) Relax all outgoing edges from u.
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge outgoing from vertex u, in adjacency order, and
// attempts to improve distances to its neighbors. Assumes r.res.dist[u] is final.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	du := r.res.dist[u]
	for _, e := range neighbors {
		w := e.Weight

		// Dijkstra's correctness depends on non-negative weights.
		if w < 0 {
			return fmt.Errorf("%w: edge %s %s→%s weight=%g", ErrNegativeEdge, e.ID, e.From, e.To, w)
		}

		// Impassable edge.
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		v := e.To
		if r.res.visited[v] {
			continue
		}

		newDist := du + w
		if newDist > r.options.MaxDistance {
			continue
		}

		// Strict improvement only; the negated form also rejects NaN.
		if !(newDist < r.res.tentative(v)) {
			continue
		}

		r.res.dist[v] = newDist
		r.res.prev[v] = u
		r.res.stats.Relaxations++

		// Lazy decrease-key: the old entry for v stays in the heap and is
		// discarded when popped after v is finalized.
		r.push(v, newDist)
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string  // vertex ID
	dist float64 // distance from source
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by nodeItem.dist ascending.
// Ties are broken arbitrarily.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *nodeItem.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
