// SPDX-License-Identifier: MIT
// Package: graphing-exponents/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn          = DefaultIDFn        ("0","1","2",...)
//   • rng           = nil                (pure unless seeded)
//   • weightFn      = DefaultWeightFn    (constant 1)
//   • bidirectional = false              (edges point one way)
//   • terrain       = nil                (Grid uses weightFn)

package builder

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Cost generator for edges whose cost is not fixed by the topology.
	weightFn WeightFn
	// Emit the reverse of every generated edge with the same cost.
	bidirectional bool
	// Optional simplex field used by Grid for terrain costs.
	terrain *terrain
}

// terrain samples a 2-D simplex noise field. The cost of stepping onto a
// cell is base + amplitude·height(cell), height in [0,1].
type terrain struct {
	noise     opensimplex.Noise
	scale     float64
	base      float64
	amplitude float64
}

// height returns the normalised field value at grid cell (r, c).
func (t *terrain) height(r, c int) float64 {
	n := t.noise.Eval2(float64(c)*t.scale, float64(r)*t.scale)

	return (n + 1) / 2
}

// cost returns the cost of moving onto cell (r, c).
func (t *terrain) cost(r, c int) float64 {
	return t.base + t.amplitude*t.height(r, c)
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
