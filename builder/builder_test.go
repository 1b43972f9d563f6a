package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/izanahmed/graphing-exponents/builder"
	"github.com/izanahmed/graphing-exponents/core"
)

// arc is a comparable projection of core.Edge.
type arc struct {
	From, To string
	W        float64
}

func arcs(g *core.Graph) []arc {
	out := make([]arc, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		out = append(out, arc{e.From, e.To, e.Weight})
	}

	return out
}

func build(t *testing.T, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, bopts, cons...)
	require.NoError(t, err)

	return g
}

func TestExponent_Small(t *testing.T) {
	t.Parallel()

	g := build(t, nil, builder.Exponent(10))
	assert.Equal(t, 11, g.VertexCount())
	assert.Equal(t, 15, g.EdgeCount())

	got := arcs(g)
	want := []arc{
		{"0", "1", 0},
		{"1", "2", 1}, {"1", "2", 1},
		{"2", "3", 2}, {"2", "4", 4},
		{"3", "4", 3}, {"3", "6", builder.DoublingCost(3)},
		{"4", "5", 4}, {"4", "8", 12},
		{"5", "6", 5}, {"5", "10", builder.DoublingCost(5)},
		{"6", "7", 6},
		{"7", "8", 7},
		{"8", "9", 8},
		{"9", "10", 9},
	}
	assert.Equal(t, want, got)
}

func TestExponent_Default(t *testing.T) {
	t.Parallel()

	g := build(t, nil, builder.Exponent(builder.DefaultExponentN))
	assert.Equal(t, 1001, g.VertexCount())
	// 0→1, then 999 successor edges and 500 doubling edges.
	assert.Equal(t, 1+999+500, g.EdgeCount())
	assert.Equal(t, "0", g.Vertices()[0])
	assert.Zero(t, g.Stats().NegativeEdges)
}

func TestExponent_Options(t *testing.T) {
	t.Parallel()

	g := build(t, []builder.BuilderOption{
		builder.WithIDScheme(builder.PrefixIDFn("v")),
		builder.WithBidirectional(),
	}, builder.Exponent(2))
	assert.Equal(t, []arc{
		{"v0", "v1", 0}, {"v1", "v0", 0},
		{"v1", "v2", 1}, {"v2", "v1", 1},
		{"v1", "v2", 1}, {"v2", "v1", 1},
	}, arcs(g))

	_, err := builder.BuildGraph(nil, nil, builder.Exponent(0))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestDoublingCost(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, builder.DoublingCost(1))
	assert.Equal(t, 4.0, builder.DoublingCost(2))
	assert.Equal(t, 12.0, builder.DoublingCost(4))
	assert.InDelta(t, 3*(1+math.Log2(3)), builder.DoublingCost(3), 1e-12)
}

func TestClassicTopologies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		ctor         builder.Constructor
		wantV, wantE int
		first        arc
	}{
		{"Path(4)", builder.Path(4), 4, 3, arc{"0", "1", 1}},
		{"Cycle(4)", builder.Cycle(4), 4, 4, arc{"0", "1", 1}},
		{"Star(4)", builder.Star(4), 4, 3, arc{builder.CenterVertexID, "0", 1}},
		{"Complete(4)", builder.Complete(4), 4, 12, arc{"0", "1", 1}},
		{"Complete(1)", builder.Complete(1), 1, 0, arc{}},
		{"Grid(2,3)", builder.Grid(2, 3), 6, 14, arc{"0,0", "0,1", 1}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := build(t, nil, tc.ctor)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.wantE > 0 {
				assert.Equal(t, tc.first, arcs(g)[0])
			}
		})
	}
}

func TestCycle_ClosesRing(t *testing.T) {
	t.Parallel()

	a := arcs(build(t, nil, builder.Cycle(3)))
	assert.Equal(t, arc{"2", "0", 1}, a[len(a)-1])
}

func TestTooFewVertices(t *testing.T) {
	t.Parallel()

	for name, c := range map[string]builder.Constructor{
		"Path":         builder.Path(1),
		"Cycle":        builder.Cycle(2),
		"Star":         builder.Star(1),
		"Complete":     builder.Complete(0),
		"Grid":         builder.Grid(0, 3),
		"RandomSparse": builder.RandomSparse(0, 0.5),
	} {
		_, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, c)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}

func TestGrid_Terrain(t *testing.T) {
	t.Parallel()

	const base, amp = 1.0, 4.0
	opts := []builder.BuilderOption{builder.WithTerrain(7, 0.3, base, amp)}
	g := build(t, opts, builder.Grid(5, 5))
	again := build(t, opts, builder.Grid(5, 5))
	assert.Equal(t, arcs(g), arcs(again))

	// Every arc into the same cell costs the same, within [base, base+amp].
	into := map[string]float64{}
	for _, a := range arcs(g) {
		assert.GreaterOrEqual(t, a.W, base)
		assert.LessOrEqual(t, a.W, base+amp)
		if w, ok := into[a.To]; ok {
			assert.Equal(t, w, a.W, "arcs into %s", a.To)
		}
		into[a.To] = a.W
	}
	assert.Len(t, into, 25)
}

func TestRandomSparse(t *testing.T) {
	t.Parallel()

	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 10)}
	g1 := build(t, opts, builder.RandomSparse(20, 0.2))
	g2 := build(t, opts, builder.RandomSparse(20, 0.2))
	assert.Equal(t, arcs(g1), arcs(g2))
	assert.Equal(t, 20, g1.VertexCount())
	for _, a := range arcs(g1) {
		assert.NotEqual(t, a.From, a.To)
		assert.GreaterOrEqual(t, a.W, 1.0)
		assert.Less(t, a.W, 10.0)
	}

	full := build(t, nil, builder.RandomSparse(4, 1))
	assert.Equal(t, 12, full.EdgeCount())
	empty := build(t, nil, builder.RandomSparse(4, 0))
	assert.Equal(t, 4, empty.VertexCount())
	assert.Zero(t, empty.EdgeCount())

	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(4, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(4, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(4, math.NaN()))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestRandomSparse_WithRand(t *testing.T) {
	t.Parallel()

	a := build(t, []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(3)))}, builder.RandomSparse(10, 0.3))
	b := build(t, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(10, 0.3))
	assert.Equal(t, arcs(a), arcs(b))
}

func TestBuildGraph_Composition(t *testing.T) {
	t.Parallel()

	g := build(t, nil, builder.Path(3), builder.Star(2))
	assert.Equal(t, []string{"0", "1", "2", builder.CenterVertexID}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())

	_, err := builder.BuildGraph(nil, nil, builder.Path(3), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(3)), builder.ErrConstructFailed)

	existing := core.NewGraph()
	_, err = existing.AddEdge("x", "0", 2)
	require.NoError(t, err)
	require.NoError(t, builder.Apply(existing, nil, builder.Path(2)))
	assert.Equal(t, []string{"x", "0", "1"}, existing.Vertices())
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithTerrain(1, 0, 1, 1) })
	assert.Panics(t, func() { builder.WithTerrain(1, 0.1, -1, 1) })
	assert.Panics(t, func() { builder.WithTerrain(1, 0.1, 1, math.Inf(1)) })
	assert.Panics(t, func() { builder.PrefixIDFn("a b") })
}
