// Edge-cost distributions for generated graphs.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the cost assigned to each generated edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge cost given an optional *rand.Rand source.
// Implementations must never return a negative or NaN cost.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0 or NaN.
func ConstantWeightFn(value float64) WeightFn {
	if !(value >= 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics unless 0 ≤ min ≤ max < +Inf.
// With a nil rng it yields min, so unseeded builds stay deterministic.
func UniformWeightFn(min, max float64) WeightFn {
	if !(min >= 0) || !(max >= min) || math.IsInf(max, 1) {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max < Inf, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// NormalWeightFn returns a WeightFn sampling from N(mean, stddev) clipped
// at zero. Panics if stddev < 0. With a nil rng it yields max(mean, 0).
func NormalWeightFn(mean, stddev float64) WeightFn {
	if !(stddev >= 0) {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %g", stddev))
	}

	return func(rng *rand.Rand) float64 {
		sample := mean
		if rng != nil {
			sample += rng.NormFloat64() * stddev
		}

		return math.Max(sample, 0)
	}
}

// ExponentialWeightFn returns a WeightFn sampling from Exp(rate), mean
// 1/rate. Panics if rate ≤ 0. With a nil rng it yields the mean.
func ExponentialWeightFn(rate float64) WeightFn {
	if !(rate > 0) {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %g", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return 1 / rate
		}

		return rng.ExpFloat64() / rate
	}
}

// WithConstantWeight sets a fixed edge cost via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets costs ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithNormalWeight sets costs ∼ max(0, N(mean,stddev)) via NormalWeightFn.
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithExponentialWeight sets costs ∼ Exp(rate) via ExponentialWeightFn.
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}
