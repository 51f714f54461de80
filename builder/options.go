// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: randomness only through WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a seeded RNG; use it in tests to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the relation weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithCellWeightFn sets the cell weight generator. Panics on nil.
func WithCellWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCellWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.cellWeightFn = fn
	}
}
