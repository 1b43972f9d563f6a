// SPDX-License-Identifier: MIT
// Package: graphing-exponents/builder
//
// api.go - public entry point and constructor catalogue.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are declared in impl_*.go; each returns a Constructor closure.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return sentinel errors wrapped with context.

package builder

import (
	"fmt"

	"github.com/izanahmed/graphing-exponents/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors (no panics).
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partially built graph is discarded.
//
// Complexity: O(len(bopts)) to resolve options plus the sum of constructor costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)

	if err := Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs constructors against an existing graph. It is the building
// block of BuildGraph and lets callers append generated topology to a graph
// that was already populated (e.g. from an edge-list file).
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("BuildGraph: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

// Catalogue (implemented in impl_*.go):
//
//	Exponent(n)          0→1 (0), i→i+1 (i), i→2i (i·(1+log₂ i)) for i ≤ n
//	Path(n)              0→1→…→n-1
//	Cycle(n)             Path(n) closed by n-1→0
//	Star(n)              "Center"→leaf for n-1 leaves
//	Complete(n)          every ordered pair i≠j
//	Grid(rows, cols)     4-neighbourhood, IDs "r,c", both directions
//	RandomSparse(n, p)   every ordered pair i≠j kept with probability p
//
// Every constructor emits edges through emit(), which draws the cost from
// cfg.weightFn and mirrors the edge when WithBidirectional is set.
// Exponent and Grid-with-terrain compute their own costs instead.
