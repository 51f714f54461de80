// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_chain.go — Chain(n) and Ring(n) constructors.
//
// Contract:
//   • Chain: n ≥ 1, relations i→i+1 for i = 0..n-2.
//   • Ring:  n ≥ 2, relations i→(i+1)%n for i = 0..n-1 (one directed cycle).
//   • Items are appended after the fixture's existing items.
//   • Relations are emitted in ascending i; weights drawn in that order.
//
// Complexity: O(n) items + O(n) relations.

package builder

import "fmt"

const (
	methodChain   = "Chain"
	methodRing    = "Ring"
	minChainItems = 1
	minRingItems  = 2
)

// Chain returns a Constructor for a directed path over n new items.
func Chain(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minChainItems {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainItems, ErrTooFewItems)
		}

		first := f.addItems(n, cfg)
		for i := 0; i < n-1; i++ {
			if err := f.link(methodChain, first+i, first+i+1, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}

// Ring returns a Constructor for a directed cycle over n new items.
func Ring(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minRingItems {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingItems, ErrTooFewItems)
		}

		first := f.addItems(n, cfg)
		for i := 0; i < n; i++ {
			if err := f.link(methodRing, first+i, first+(i+1)%n, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}
