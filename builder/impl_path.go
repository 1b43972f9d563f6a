// SPDX-License-Identifier: MIT
// Package: graphing-exponents/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2, edges (i-1)→i for i=1..n-1.
//   - Cycle: n ≥ 3, Path edges then (n-1)→0.
//   - Vertices are added via cfg.idFn in ascending index order.
//   - Costs from cfg.weightFn(cfg.rng), drawn once per edge in emission order.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/izanahmed/graphing-exponents/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the directed path 0→1→…→n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(g, cfg, methodPath, n, false)
	}
}

// Cycle returns a Constructor that builds the directed cycle 0→1→…→n-1→0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return chain(g, cfg, methodCycle, n, true)
	}
}

// chain emits the path over idFn(0..n-1), closing it when closed is set.
func chain(g *core.Graph, cfg builderConfig, method string, n int, closed bool) error {
	if err := addVertices(g, cfg, method, n); err != nil {
		return err
	}
	for i := 1; i < n; i++ {
		if err := emitDrawn(g, cfg, method, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
			return err
		}
	}
	if closed {
		return emitDrawn(g, cfg, method, cfg.idFn(n-1), cfg.idFn(0))
	}

	return nil
}
