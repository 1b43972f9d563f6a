// SPDX-License-Identifier: MIT
// Package: graphing-exponents/builder
//
// impl_random_sparse.go - RandomSparse(n, p).
//
// Model: Erdős–Rényi over ordered pairs. Each arc i→j (i≠j) is kept
// independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required when 0 < p < 1 (else ErrNeedRandSource).
//   - Trial order: i ascending, then j ascending. Per kept arc the Bernoulli
//     draw happens before the cost draw, so a fixed seed fixes both.
//   - WithBidirectional mirrors each kept arc with the same cost.
//
// Complexity: O(n) vertices + O(n²) trials.

package builder

import (
	"fmt"

	"github.com/izanahmed/graphing-exponents/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a directed random graph
// over n vertices with arc probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		if err := addVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}
		if p == probMin {
			return nil
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				if err := emitDrawn(g, cfg, methodRandomSparse, u, cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
