// SPDX-License-Identifier: MIT
// Package: graphing-exponents/builder
//
// impl_star.go - Star(n) and Complete(n).

package builder

import (
	"fmt"

	"github.com/izanahmed/graphing-exponents/core"
)

const (
	methodStar       = "Star"
	methodComplete   = "Complete"
	minStarNodes     = 2
	minCompleteNodes = 1

	// CenterVertexID is the fixed hub name used by Star.
	CenterVertexID = "Center"
)

// Star returns a Constructor with hub "Center" and n-1 leaves idFn(0..n-2),
// edges Center→leaf in leaf order.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}
		for i := 0; i < n-1; i++ {
			if err := emitDrawn(g, cfg, methodStar, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor emitting i→j for every ordered pair i≠j,
// i ascending then j ascending. Costs are drawn per arc, so i→j and j→i
// generally differ. WithBidirectional is ignored since both directions are
// already present.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}

		one := cfg
		one.bidirectional = false
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := emitDrawn(g, one, methodComplete, u, cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
