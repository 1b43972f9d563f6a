// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/izanahmed/graphing-exponents/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe,
// every edge lands in the adjacency list, and edge IDs stay unique.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	wg.Add(NConcurrentAdds)

	errs := make(chan error, NConcurrentAdds)
	for i := 0; i < NConcurrentAdds; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge(VertexBase, fmt.Sprintf("V%d", id), float64(id))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors(VertexBase)
	require.NoError(t, err)
	require.Len(t, nbs, NConcurrentAdds)
	require.Equal(t, NConcurrentAdds+1, g.VertexCount())

	ids := make(map[string]struct{}, NConcurrentAdds)
	for _, e := range g.Edges() {
		ids[e.ID] = struct{}{}
	}
	require.Len(t, ids, NConcurrentAdds)
}

// TestConcurrentNeighborsAndClone validates concurrent reads (Neighbors)
// and clones do not race with each other.
func TestConcurrentNeighborsAndClone(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < NLoops; i++ {
		_, _ = g.AddEdge(VertexA, VertexA, float64(i))
	}

	var wg sync.WaitGroup
	wg.Add(NReaders + NCloners)
	counts := make(chan int, NReaders+NCloners)

	for i := 0; i < NReaders; i++ {
		go func() {
			defer wg.Done()
			nbs, err := g.Neighbors(VertexA)
			if err != nil {
				counts <- -1
				return
			}
			counts <- len(nbs)
		}()
	}
	for i := 0; i < NCloners; i++ {
		go func() {
			defer wg.Done()
			counts <- g.Clone().EdgeCount()
		}()
	}

	wg.Wait()
	close(counts)
	for n := range counts {
		require.Equal(t, NLoops, n)
	}
}

// TestConcurrentOutDegreeAndAddEdge reads the degree of a vertex while
// writers keep appending to its adjacency list.
func TestConcurrentOutDegreeAndAddEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexBase))

	var wg sync.WaitGroup
	wg.Add(NConcurrentAdds * 2)
	for i := 0; i < NConcurrentAdds; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = g.AddEdge(VertexBase, fmt.Sprintf("V%d", id), 1)
		}(i)
		go func() {
			defer wg.Done()
			d, err := g.OutDegree(VertexBase)
			if err != nil || d < 0 || d > NConcurrentAdds {
				t.Errorf("OutDegree = %d, %v", d, err)
			}
		}()
	}
	wg.Wait()

	d, err := g.OutDegree(VertexBase)
	require.NoError(t, err)
	require.Equal(t, NConcurrentAdds, d)
}
