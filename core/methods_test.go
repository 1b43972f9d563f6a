// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in deterministic behaviors for vertex/edge insertion and queries.
//   - Provide contract anchors for ordering guarantees (first-reference order
//     for Vertices, insertion order for Edges and Neighbors).

package core_test

import (
	"testing"

	"github.com/izanahmed/graphing-exponents/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGraph_AddVertex verifies empty-ID rejection and idempotent insertion.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	MustErrorIs(t, g.AddVertex(VertexEmpty), core.ErrEmptyVertexID, "AddVertex(empty)")

	MustNoError(t, g.AddVertex(VertexA), "AddVertex(A)")
	assert.True(t, g.HasVertex(VertexA))

	// Duplicate insert is a no-op.
	MustNoError(t, g.AddVertex(VertexA), "AddVertex(A) duplicate")
	assert.Equal(t, 1, g.VertexCount())
	assert.False(t, g.HasVertex(VertexEmpty))
	assert.False(t, g.HasVertex(VertexX))
}

// TestGraph_AddEdgeCreatesVertices verifies implicit vertex creation and
// that both endpoints start with the expected adjacency.
func TestGraph_AddEdgeCreatesVertices(t *testing.T) {
	g := core.NewGraph()

	id, err := g.AddEdge(VertexX, VertexY, Weight2)
	require.NoError(t, err)
	assert.Equal(t, "e1", id)

	assert.True(t, g.HasVertex(VertexX))
	assert.True(t, g.HasVertex(VertexY))
	assert.Equal(t, []string{VertexX, VertexY}, g.Vertices())

	dx, err := g.OutDegree(VertexX)
	require.NoError(t, err)
	dy, err := g.OutDegree(VertexY)
	require.NoError(t, err)
	assert.Equal(t, 1, dx)
	assert.Equal(t, 0, dy)

	_, err = g.OutDegree("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.OutDegree("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	// Directed: the reverse arc does not exist.
	assert.True(t, g.HasEdge(VertexX, VertexY))
	assert.False(t, g.HasEdge(VertexY, VertexX))
}

// TestGraph_AddEdgeEmptyEndpoint verifies that empty names are rejected and
// leave the store untouched.
func TestGraph_AddEdgeEmptyEndpoint(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge(VertexEmpty, VertexA, Weight1)
	MustErrorIs(t, err, core.ErrEmptyVertexID, "AddEdge(empty,A)")
	_, err = g.AddEdge(VertexA, VertexEmpty, Weight1)
	MustErrorIs(t, err, core.ErrEmptyVertexID, "AddEdge(A,empty)")

	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
}

// TestGraph_VertexIdentity verifies that repeated references resolve to the
// same *Vertex.
func TestGraph_VertexIdentity(t *testing.T) {
	g := core.NewGraph()
	MustNoError(t, addEdge(g, VertexA, VertexB, Weight1), "AddEdge(A,B)")
	first, err := g.Vertex(VertexA)
	require.NoError(t, err)

	MustNoError(t, addEdge(g, VertexB, VertexA, Weight1), "AddEdge(B,A)")
	MustNoError(t, g.AddVertex(VertexA), "AddVertex(A)")
	second, err := g.Vertex(VertexA)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 2, g.VertexCount())
}

// TestGraph_VertexNotFound verifies lookups never create vertices.
func TestGraph_VertexNotFound(t *testing.T) {
	g := newTriangle(t)

	_, err := g.Vertex(VertexD)
	MustErrorIs(t, err, core.ErrVertexNotFound, "Vertex(D)")
	_, err = g.Neighbors(VertexD)
	MustErrorIs(t, err, core.ErrVertexNotFound, "Neighbors(D)")
	_, err = g.Successors(VertexD)
	MustErrorIs(t, err, core.ErrVertexNotFound, "Successors(D)")
	_, err = g.Neighbors(VertexEmpty)
	MustErrorIs(t, err, core.ErrEmptyVertexID, "Neighbors(empty)")

	assert.False(t, g.HasVertex(VertexD))
	assert.False(t, g.HasEdge(VertexD, VertexA))
	assert.Equal(t, 3, g.VertexCount())
}

// TestGraph_MultiEdgesAndLoops verifies parallel edges and self-loops are
// stored as distinct entries.
func TestGraph_MultiEdgesAndLoops(t *testing.T) {
	g := core.NewGraph()
	id1, err := g.AddEdge(VertexA, VertexB, Weight1)
	require.NoError(t, err)
	id2, err := g.AddEdge(VertexA, VertexB, Weight2)
	require.NoError(t, err)
	_, err = g.AddEdge(VertexA, VertexA, Weight0)
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 3, g.EdgeCount())

	nbs, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	require.Len(t, nbs, 3)
	assert.Equal(t, Weight1, nbs[0].Weight)
	assert.Equal(t, Weight2, nbs[1].Weight)
	assert.Equal(t, VertexA, nbs[2].To)

	succ, err := g.Successors(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexB, VertexA}, succ)
}

// TestGraph_NegativeWeightStored verifies the store does not validate cost sign.
func TestGraph_NegativeWeightStored(t *testing.T) {
	g := core.NewGraph()
	MustNoError(t, addEdge(g, VertexX, VertexY, WeightNeg), "AddEdge(X,Y,-5)")

	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, WeightNeg, edges[0].Weight)
	assert.Equal(t, 1, g.Stats().NegativeEdges)
}

// TestGraph_Ordering verifies first-reference vertex order and insertion
// edge order.
func TestGraph_Ordering(t *testing.T) {
	g := core.NewGraph(core.WithVertexCapacity(4))
	MustNoError(t, addEdge(g, VertexC, VertexA, Weight1), "AddEdge(C,A)")
	MustNoError(t, addEdge(g, VertexB, VertexD, Weight2), "AddEdge(B,D)")
	MustNoError(t, addEdge(g, VertexA, VertexB, WeightFr), "AddEdge(A,B)")

	assert.Equal(t, []string{VertexC, VertexA, VertexB, VertexD}, g.Vertices())

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, []string{"e1", "e2", "e3"}, []string{edges[0].ID, edges[1].ID, edges[2].ID})
	assert.Equal(t, VertexA, edges[2].From)
	assert.Equal(t, WeightFr, edges[2].Weight)
}

// TestGraph_ReturnedSlicesAreCopies verifies callers cannot mutate the store
// through returned slices.
func TestGraph_ReturnedSlicesAreCopies(t *testing.T) {
	g := newTriangle(t)

	vs := g.Vertices()
	vs[0] = VertexX
	assert.Equal(t, VertexA, g.Vertices()[0])

	nbs, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	nbs[0] = nil
	again, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	assert.NotNil(t, again[0])
}

// TestGraph_Stats verifies the diagnostic snapshot.
func TestGraph_Stats(t *testing.T) {
	g := newTriangle(t)
	MustNoError(t, addEdge(g, VertexA, VertexA, Weight0), "AddEdge(A,A)")

	st := g.Stats()
	assert.Equal(t, 3, st.VertexCount)
	assert.Equal(t, 4, st.EdgeCount)
	assert.Equal(t, 1, st.SelfLoops)
	assert.Equal(t, 0, st.NegativeEdges)
	assert.Equal(t, 3, st.MaxOutDegree)
}

// TestGraph_Clone verifies deep copy semantics and ID continuity.
func TestGraph_Clone(t *testing.T) {
	g := newTriangle(t)
	clone := g.Clone()

	assert.Equal(t, g.Vertices(), clone.Vertices())
	require.Equal(t, g.EdgeCount(), clone.EdgeCount())
	for i, e := range g.Edges() {
		ce := clone.Edges()[i]
		assert.Equal(t, *e, *ce)
		assert.NotSame(t, e, ce)
	}

	// Mutating the clone leaves the source untouched.
	id, err := clone.AddEdge(VertexB, VertexD, Weight1)
	require.NoError(t, err)
	assert.Equal(t, "e4", id)
	assert.False(t, g.HasVertex(VertexD))
	assert.Equal(t, 3, g.EdgeCount())

	nbs, err := clone.Neighbors(VertexA)
	require.NoError(t, err)
	assert.Len(t, nbs, 2)
}
