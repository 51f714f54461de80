// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultWeight is the relation and cell weight used when no WeightFn is set.
const DefaultWeight float64 = 1

// WeightFn produces a weight from an optional RNG. It must be deterministic
// for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultWeight
}

// ConstantWeightFn returns a WeightFn that always yields value. Any sign is
// accepted: automaton weights may be negative.
func ConstantWeightFn(value float64) WeightFn {
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [min, max). Panics if max < min.
// With a nil RNG it yields min.
func UniformWeightFn(min, max float64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntWeightFn samples an integer weight uniformly in [min, max] and returns it
// as float64. Integer weights keep path sums exact, which makes brute-force
// comparisons in tests reliable. Panics if max < min. With a nil RNG it yields min.
func IntWeightFn(min, max int) WeightFn {
	if max < min {
		panic(fmt.Sprintf("IntWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return float64(min)
		}

		return float64(min + rng.Intn(max-min+1))
	}
}
