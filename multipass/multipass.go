// SPDX-License-Identifier: MIT

package multipass

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/cellauto/automaton"
	"github.com/katalvlaran/cellauto/cell"
	"github.com/katalvlaran/cellauto/follower"
	"github.com/katalvlaran/cellauto/neighborhood"
)

// Find extracts disjoint best paths from cells in order of extraction.
// Items of every returned path are left marked Taken.
//
// On cancellation the paths extracted so far are returned with the context error.
func Find(cells []cell.AutomatonCell, nbh *neighborhood.Weighted, opts ...Option) ([][]int, error) {
	// 1) Options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	autoOpts := append([]automaton.Option{automaton.WithLogger(o.Logger)}, o.Automaton...)

	// 2) Passes
	var paths [][]int
	for pass := 0; o.MaxPasses == 0 || pass < o.MaxPasses; pass++ {
		if err := o.Ctx.Err(); err != nil {
			return paths, err
		}

		res, err := automaton.Apply(cells, nbh, autoOpts...)
		if err != nil {
			return paths, fmt.Errorf("Find: pass %d: %w", pass, err)
		}
		if !res.Found() || res.State < o.MinState {
			break
		}
		path, err := follower.Follow(cells, nbh, res.Start)
		if err != nil {
			return paths, fmt.Errorf("Find: pass %d: %w", pass, err)
		}
		if len(path) < o.MinLength {
			break
		}

		// 3) Consume the path.
		for _, it := range path {
			cells[it].SetTaken()
		}
		paths = append(paths, path)
		o.Logger.Debug("multipass: path extracted",
			slog.Int("pass", pass),
			slog.Int("start", res.Start),
			slog.Float64("state", res.State),
			slog.Int("length", len(path)),
			slog.Int("cycles", res.Stats.Cycles),
		)
	}

	return paths, nil
}
