// Package builder generates core.Graph fixtures and data sets with
// functional options.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        new graph + options + constructors, in order.
//     – Apply:             same, against an existing graph.
//   - Constructors (Constructor implementations):
//     – Exponent:          the "graphing exponents" data set (i→i+1, i→2i).
//     – Path, Cycle, Star, Complete: classic directed topologies.
//     – Grid:              4-neighbourhood lattice, optional simplex terrain.
//     – RandomSparse:      Erdős–Rényi over ordered pairs.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – PrefixIDFn:        prefix + decimal ("v0","v1",…).
//     – ExcelColumnIDFn:   spreadsheet columns ("A","Z","AA",…).
//   - Edge-cost distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max).
//     – NormalWeightFn:    Gaussian ∼N(mean,stddev), clipped at 0.
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//
// Guarantees:
//
//   - Determinism: equal inputs, options and seed give identical graphs,
//     including edge insertion order.
//   - Generated costs are never negative, so every fixture is a valid
//     Dijkstra input.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with context.
package builder
