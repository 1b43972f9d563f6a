// SPDX-License-Identifier: MIT
// Package: graphing-exponents/builder
//
// impl_exponent.go - the "graphing exponents" data set.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - First edge: 0→1 with cost 0.
//   - Then for i = 1..n in ascending order:
//       i→i+1 with cost i               if i+1 ≤ n
//       i→2i  with cost i·(1+log₂ i)    if 2i ≤ n
//   - Vertex names come from cfg.idFn; costs are fixed by the topology and
//     cfg.weightFn is not consulted. WithBidirectional is honoured.
//
// Complexity: O(n) vertices + O(n) edges.
//
// From 0 the cheapest route to k walks the "doubling" edges where they beat
// the unit steps; the report for the default n=1000 is the canonical demo.

package builder

import (
	"fmt"
	"math"

	"github.com/izanahmed/graphing-exponents/core"
)

const (
	methodExponent = "Exponent"
	minExponentN   = 1

	// DefaultExponentN is the size of the canonical data set.
	DefaultExponentN = 1000
)

// DoublingCost is the cost of the edge i→2i: i·(1+log₂ i).
func DoublingCost(i int) float64 {
	x := float64(i)

	return x * (1 + math.Log2(x))
}

// Exponent returns a Constructor that emits the exponent data set over
// vertices 0..n.
func Exponent(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minExponentN {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodExponent, n, minExponentN, ErrTooFewVertices)
		}

		if err := emit(g, cfg, methodExponent, cfg.idFn(0), cfg.idFn(1), 0); err != nil {
			return err
		}
		for i := 1; i <= n; i++ {
			u := cfg.idFn(i)
			if i+1 <= n {
				if err := emit(g, cfg, methodExponent, u, cfg.idFn(i+1), float64(i)); err != nil {
					return err
				}
			}
			if 2*i <= n {
				if err := emit(g, cfg, methodExponent, u, cfg.idFn(2*i), DoublingCost(i)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
