// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • rng          = nil                (no randomness unless seeded)
//   • weightFn     = DefaultWeightFn    (relations weigh 1)
//   • cellWeightFn = DefaultWeightFn    (cells weigh 1)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand

	// Relation weight generator.
	weightFn WeightFn

	// Cell weight generator.
	cellWeightFn WeightFn
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:          nil,
		weightFn:     DefaultWeightFn,
		cellWeightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
