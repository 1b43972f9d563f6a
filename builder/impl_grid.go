// SPDX-License-Identifier: MIT
// Package: graphing-exponents/builder
//
// impl_grid.go - Grid(rows, cols).
//
// Model:
//   • 2D orthogonal grid, 4-neighbourhood, arcs in both directions.
//   • Vertex IDs use the fixed scheme "r,c" (row-major); cfg.idFn is not used.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) row-major: Right pair then Bottom pair, forward arc first.
//   • Cost: without terrain, one cfg.weightFn draw per pair shared by both
//     arcs; with WithTerrain, the arc into (r,c) costs terrain.cost(r,c), so
//     climbing and descending differ.
//
// Complexity: O(rows·cols) vertices and arcs.

package builder

import (
	"fmt"

	"github.com/izanahmed/graphing-exponents/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the vertex name Grid uses for cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		link := func(r1, c1, r2, c2 int) error {
			u, v := GridID(r1, c1), GridID(r2, c2)
			var fwd, back float64
			if cfg.terrain != nil {
				fwd, back = cfg.terrain.cost(r2, c2), cfg.terrain.cost(r1, c1)
			} else {
				fwd = cfg.weightFn(cfg.rng)
				back = fwd
			}
			if _, err := g.AddEdge(u, v, fwd); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodGrid, u, v, fwd, err)
			}
			if _, err := g.AddEdge(v, u, back); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodGrid, v, u, back, err)
			}

			return nil
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(r, c, r, c+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(r, c, r+1, c); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
