package bfs

import (
	"context"
	"fmt"

	"github.com/izanahmed/graphing-exponents/core"
)

// queueItem pairs a vertex ID with its hop depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search over the out-edges of g starting from
// startID. Edge costs are ignored; only direction matters.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, the
// context error on cancellation, or a wrapped OnVisit error.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  startID,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.discover(startID, 0, "")

	return w.res, w.loop()
}

// Reachable returns the number of vertices reachable from startID,
// startID included. Options apply as for BFS.
func Reachable(g *core.Graph, startID string, opts ...Option) (int, error) {
	res, err := BFS(g, startID, opts...)
	if err != nil {
		return 0, err
	}

	return len(res.Order), nil
}

// Unreached returns, in graph order, the vertices of g that res did not reach.
func Unreached(g *core.Graph, res *Result) []string {
	var out []string
	for _, id := range g.Vertices() {
		if !res.Reached(id) {
			out = append(out, id)
		}
	}

	return out
}

// discover records id at depth d and queues it.
func (w *walker) discover(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[head]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}

		edges, err := w.graph.Neighbors(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
		}
		for _, e := range edges {
			if !w.opts.FollowEdge(e) {
				continue
			}
			if _, seen := w.res.Depth[e.To]; !seen {
				w.discover(e.To, item.depth+1, item.id)
			}
		}
	}

	return nil
}
