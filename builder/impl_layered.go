// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_layered.go — Layered(widths...) and Complete(n) constructors.
//
// Contract:
//   • Layered: at least two layers, every width ≥ 1 (else ErrTooFewItems).
//     Layer k occupies a contiguous index block after layer k-1; every item of
//     layer k relates to every item of layer k+1 (complete bipartite between
//     consecutive layers). The result is acyclic.
//   • Complete: n ≥ 2, every ordered pair (i,j), i≠j (dense, cyclic).
//   • Items are appended after the fixture's existing items.
//
// Complexity:
//   • Layered: O(Σw) items + O(Σ w_k·w_{k+1}) relations.
//   • Complete: O(n) items + O(n²) relations.
//
// Determinism:
//   • Relations are emitted i asc over the source layer, inner j asc over the
//     target layer; weights are drawn in emission order.

package builder

import "fmt"

const (
	methodLayered    = "Layered"
	methodComplete   = "Complete"
	minLayers        = 2
	minLayerWidth    = 1
	minCompleteItems = 2
)

// Layered returns a Constructor for a layered neighborhood with the given
// layer widths, shaped like successive detector layers.
func Layered(widths ...int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		// 1) Validate every width before mutating.
		if len(widths) < minLayers {
			return fmt.Errorf("%s: %d layers < min=%d: %w", methodLayered, len(widths), minLayers, ErrTooFewItems)
		}
		for k, w := range widths {
			if w < minLayerWidth {
				return fmt.Errorf("%s: layer %d width=%d < min=%d: %w", methodLayered, k, w, minLayerWidth, ErrTooFewItems)
			}
		}

		// 2) Items, one block per layer.
		starts := make([]int, len(widths))
		for k, w := range widths {
			starts[k] = f.addItems(w, cfg)
		}

		// 3) Complete bipartite relations between consecutive layers.
		for k := 0; k+1 < len(widths); k++ {
			for i := 0; i < widths[k]; i++ {
				for j := 0; j < widths[k+1]; j++ {
					if err := f.link(methodLayered, starts[k]+i, starts[k+1]+j, cfg); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Complete returns a Constructor relating every ordered pair of n new items.
func Complete(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minCompleteItems {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteItems, ErrTooFewItems)
		}

		first := f.addItems(n, cfg)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := f.link(methodComplete, first+i, first+j, cfg); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
