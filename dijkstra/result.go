package dijkstra

import (
	"fmt"
)

// Result holds the outcome of one Dijkstra run. It is created fresh by every
// call and owned by the caller; nothing in it is shared with the graph or
// with other runs.
//
// For every vertex V of the graph at the time of the run:
//   - Distance(V) is the shortest cost from Source, or Infinity if unreached.
//   - Predecessor(V) is the vertex before V on one shortest path; the source
//     and unreached vertices have none.
type Result struct {
	source   string
	vertices []string           // graph vertices at run time, first-reference order
	dist     map[string]float64 // vertex → best-known distance
	prev     map[string]string  // vertex → predecessor; absent for source and unreached
	visited  map[string]bool    // vertex → finalized
	order    []string           // finalization order
	stats    Stats
}

// newResult allocates the per-run state with every vertex at Infinity,
// no predecessor and not visited. Runs in O(V).
func newResult(source string, vertices []string) *Result {
	r := &Result{
		source:   source,
		vertices: vertices,
		dist:     make(map[string]float64, len(vertices)),
		prev:     make(map[string]string, len(vertices)),
		visited:  make(map[string]bool, len(vertices)),
		order:    make([]string, 0, len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = Infinity
		r.visited[v] = false
	}

	return r
}

// tentative returns the recorded distance of id, treating vertices unknown
// to this run as unreached.
func (r *Result) tentative(id string) float64 {
	d, ok := r.dist[id]
	if !ok {
		return Infinity
	}

	return d
}

// Source returns the start vertex of the run.
func (r *Result) Source() string { return r.source }

// Stats returns the work counters of the run.
func (r *Result) Stats() Stats { return r.stats }

// Has reports whether id was a vertex of the graph when the run started.
func (r *Result) Has(id string) bool {
	_, ok := r.dist[id]

	return ok
}

// Distance returns the shortest distance from the source to id, or Infinity
// when id was not reached. Returns ErrVertexNotFound if id is not a vertex.
func (r *Result) Distance(id string) (float64, error) {
	d, ok := r.dist[id]
	if !ok {
		return Infinity, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return d, nil
}

// Reachable reports whether the run reached id.
func (r *Result) Reachable(id string) bool {
	return r.tentative(id) < Infinity
}

// Predecessor returns the vertex preceding id on its shortest path.
// ok is false for the source and for unreached or unknown vertices.
func (r *Result) Predecessor(id string) (string, bool) {
	p, ok := r.prev[id]

	return p, ok
}

// Distances returns a copy of the distance map (Infinity for unreached vertices).
func (r *Result) Distances() map[string]float64 {
	out := make(map[string]float64, len(r.dist))
	for k, v := range r.dist {
		out[k] = v
	}

	return out
}

// Order returns the vertices in the order they were finalized.
func (r *Result) Order() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)

	return out
}

// Vertices returns the vertices known to the run, in graph order.
func (r *Result) Vertices() []string {
	out := make([]string, len(r.vertices))
	copy(out, r.vertices)

	return out
}

// Path reconstructs the shortest path from the source to dest by walking
// predecessor links backward and reversing the collected sequence. The
// result starts with Source() and ends with dest.
//
// Errors:
//   - ErrVertexNotFound if dest is not a vertex of the run.
//   - ErrUnreachable if dest was not reached.
//
// Complexity: O(path length).
func (r *Result) Path(dest string) ([]string, error) {
	d, err := r.Distance(dest)
	if err != nil {
		return nil, err
	}
	if d == Infinity {
		return nil, fmt.Errorf("%w: %q from %q", ErrUnreachable, dest, r.source)
	}

	path := make([]string, 0, 8)
	for cur := dest; ; {
		path = append(path, cur)
		if len(path) > len(r.dist) {
			// A predecessor chain longer than V means the links form a cycle.
			return nil, fmt.Errorf("dijkstra: corrupt predecessor chain at %q", cur)
		}
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		cur = p
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
