// SPDX-License-Identifier: MIT
// Package: graphing-exponents/builder
//
// helpers.go - shared emission helpers for constructors.

package builder

import (
	"fmt"

	"github.com/izanahmed/graphing-exponents/core"
)

// addVertices inserts idFn(0..n-1) in ascending index order so that isolated
// vertices exist even when no edge touches them.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// emit adds u→v with cost w, plus v→u when cfg.bidirectional is set.
func emit(g *core.Graph, cfg builderConfig, method, u, v string, w float64) error {
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}
	if cfg.bidirectional && u != v {
		if _, err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, v, u, w, err)
		}
	}

	return nil
}

// emitDrawn is emit with the cost drawn from cfg.weightFn.
func emitDrawn(g *core.Graph, cfg builderConfig, method, u, v string) error {
	return emit(g, cfg, method, u, v, cfg.weightFn(cfg.rng))
}
