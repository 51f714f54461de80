// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry point: Fixture, Constructor and Build.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cellauto/cell"
	"github.com/katalvlaran/cellauto/neighborhood"
)

// Fixture is an arena of cells plus the neighborhood over their indices.
type Fixture struct {
	Cells        []cell.AutomatonCell
	Neighborhood *neighborhood.Weighted
}

// Len returns the number of items.
func (f *Fixture) Len() int { return len(f.Cells) }

// Mask sets DoNotUse on the given items; indices outside the arena are ignored.
func (f *Fixture) Mask(items ...int) {
	for _, it := range items {
		if it >= 0 && it < len(f.Cells) {
			f.Cells[it].SetDoNotUse()
		}
	}
}

// addItems appends n cells using cfg.cellWeightFn and returns the first new index.
func (f *Fixture) addItems(n int, cfg builderConfig) int {
	first := len(f.Cells)
	for i := 0; i < n; i++ {
		f.Cells = append(f.Cells, cell.New(cfg.cellWeightFn(cfg.rng)))
	}

	return first
}

// link inserts from→to with a weight drawn from cfg.weightFn.
func (f *Fixture) link(method string, from, to int, cfg builderConfig) error {
	w := cfg.weightFn(cfg.rng)
	if err := f.Neighborhood.Insert(from, to, w); err != nil {
		return fmt.Errorf("%s: Insert(%d→%d, w=%g): %v: %w", method, from, to, w, err, ErrConstructFailed)
	}

	return nil
}

// Constructor appends items and relations to a Fixture. Constructors must
// number their items after the ones already present, validate parameters
// before mutating, and never panic.
type Constructor func(f *Fixture, cfg builderConfig) error

// Build resolves opts and applies every constructor in order to an empty Fixture.
// Constructor errors are wrapped with "Build: %w" and returned immediately.
func Build(opts []BuilderOption, cons ...Constructor) (*Fixture, error) {
	f := &Fixture{Neighborhood: neighborhood.New()}
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(f, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return f, nil
}
