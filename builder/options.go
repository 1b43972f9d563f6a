// SPDX-License-Identifier: MIT
// Package: graphing-exponents/builder
//
// options.go - functional options for the builder package.
//
// Option constructors VALIDATE and PANIC on meaningless inputs.
// Constructors themselves never panic.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a new *rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge cost generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithBidirectional makes every constructor emit v→u next to each u→v it
// generates, with the same cost. Grid always does this.
func WithBidirectional() BuilderOption {
	return func(c *builderConfig) {
		c.bidirectional = true
	}
}

// WithTerrain gives Grid edges costs drawn from an OpenSimplex height field:
// moving onto cell (r,c) costs base + amplitude·h(r,c) with h in [0,1],
// sampled at (c·scale, r·scale). Panics if scale ≤ 0, base < 0,
// amplitude < 0, or any value is not finite.
func WithTerrain(seed int64, scale, base, amplitude float64) BuilderOption {
	for _, v := range []float64{scale, base, amplitude} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(fmt.Sprintf("builder: WithTerrain: non-finite parameter %g", v))
		}
	}
	if scale <= 0 || base < 0 || amplitude < 0 {
		panic(fmt.Sprintf("builder: WithTerrain(scale=%g, base=%g, amplitude=%g)", scale, base, amplitude))
	}
	return func(c *builderConfig) {
		c.terrain = &terrain{
			noise:     opensimplex.New(seed),
			scale:     scale,
			base:      base,
			amplitude: amplitude,
		}
	}
}
