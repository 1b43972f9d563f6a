// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for the graph store.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Enforce concurrency-safe testing patterns (no *testing.T usage inside goroutines).

package core_test

import (
	"errors"
	"testing"

	"github.com/izanahmed/graphing-exponents/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
	VertexY = "Y"

	VertexBase = "Base"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0   = 0.0
	Weight1   = 1.0
	Weight2   = 2.0
	Weight4   = 4.0
	WeightNeg = -5.0
	WeightFr  = 0.25
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NLoops          = 50
	NReaders        = 50
	NCloners        = 20
)

// newTriangle RETURNS the three-edge graph A→B(4), A→C(1), C→B(1).
func newTriangle(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	MustNoError(t, addEdge(g, VertexA, VertexB, Weight4), "AddEdge(A,B,4)")
	MustNoError(t, addEdge(g, VertexA, VertexC, Weight1), "AddEdge(A,C,1)")
	MustNoError(t, addEdge(g, VertexC, VertexB, Weight1), "AddEdge(C,B,1)")

	return g
}

// addEdge drops the edge ID when a test only cares about the error.
func addEdge(g *core.Graph, from, to string, w float64) error {
	_, err := g.AddEdge(from, to, w)

	return err
}

// MustNoError FAILS the test if err != nil.
// op is a short operation label (e.g., "AddEdge(A,B,1)") used for triage.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}
