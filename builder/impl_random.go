// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random.go - RandomDAG(n, p) and RandomGraph(n, p) constructors.
//
// Model:
//   - RandomDAG: draw a random topological order (permutation of the new items),
//     then include order[i]→order[j] for every i<j with probability p.
//   - RandomGraph: include every ordered pair (i,j), i≠j, with probability p.
//     No self relations are proposed; cycles appear for moderate p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewItems).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be set when 0 < p < 1, and always for RandomDAG with n > 1
//     (the order is random) (else ErrNeedRandSource).
//
// Determinism:
//   - Cell weights are drawn first (item order), then the permutation, then one
//     Bernoulli trial per candidate pair in ascending (i, j), each accepted trial
//     immediately followed by its weight draw.

package builder

import "fmt"

const (
	methodRandomDAG   = "RandomDAG"
	methodRandomGraph = "RandomGraph"
	minRandomItems    = 1
	probMin           = 0.0
	probMax           = 1.0
)

// validateRandom applies the shared parameter checks of the random constructors.
func validateRandom(method string, n int, p float64, cfg builderConfig, needRNG bool) error {
	if n < minRandomItems {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minRandomItems, ErrTooFewItems)
	}
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}
	if cfg.rng == nil && (needRNG || (p > probMin && p < probMax)) {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}

// accept runs one Bernoulli trial with probability p.
// p ∈ {0,1} is decided without consuming randomness.
func accept(p float64, cfg builderConfig) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}

// RandomDAG returns a Constructor sampling an acyclic neighborhood over n new items.
func RandomDAG(n int, p float64) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		// 1) Validate before touching the fixture.
		if err := validateRandom(methodRandomDAG, n, p, cfg, n > 1); err != nil {
			return err
		}

		// 2) Items, then a random topological order over them.
		first := f.addItems(n, cfg)
		order := make([]int, n)
		for i := range order {
			order[i] = first + i
		}
		if n > 1 {
			cfg.rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
		}

		// 3) Forward relations only.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !accept(p, cfg) {
					continue
				}
				if err := f.link(methodRandomDAG, order[i], order[j], cfg); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomGraph returns a Constructor sampling a directed graph over n new
// items where every ordered pair of distinct items is related with probability p.
func RandomGraph(n int, p float64) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if err := validateRandom(methodRandomGraph, n, p, cfg, false); err != nil {
			return err
		}

		first := f.addItems(n, cfg)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || !accept(p, cfg) {
					continue
				}
				if err := f.link(methodRandomGraph, first+i, first+j, cfg); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
