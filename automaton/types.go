// SPDX-License-Identifier: MIT

package automaton

import (
	"errors"
	"log/slog"
	"math"
)

var (
	// ErrNilNeighborhood is returned when Apply or New receive a nil neighborhood.
	ErrNilNeighborhood = errors.New("automaton: neighborhood is nil")

	// ErrItemOutOfRange indicates an item index outside the cell slice.
	ErrItemOutOfRange = errors.New("automaton: item index out of range")
)

// NoStart is the Result.Start value of a run without a usable path start.
const NoStart = -1

// Option configures an Automaton.
type Option func(*options)

// options holds the resolved configuration of an Automaton.
type options struct {
	// recursive selects native recursion instead of the explicit stack.
	recursive bool

	// logger receives cycle warnings and run summaries.
	logger *slog.Logger

	// onEvaluate, if non-nil, is called whenever a cell starts a fresh evaluation.
	onEvaluate func(item int)
}

// defaultOptions returns the explicit-stack strategy, slog.Default() and no hooks.
func defaultOptions() options {
	return options{
		recursive:  false,
		logger:     slog.Default(),
		onEvaluate: nil,
	}
}

// WithRecursion selects the recursive evaluation. Results are identical to the
// default explicit-stack evaluation; recursion depth equals the longest path.
func WithRecursion() Option {
	return func(o *options) {
		o.recursive = true
	}
}

// WithLogger routes cycle warnings and run summaries to l.
// Panics on nil; use a logger with a discarding handler to silence output.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("automaton: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithOnEvaluate installs fn as a hook called with the item index each time a
// cell is freshly evaluated (never for memoized lookups). Panics on nil.
func WithOnEvaluate(fn func(item int)) Option {
	if fn == nil {
		panic("automaton: WithOnEvaluate(nil)")
	}
	return func(o *options) {
		o.onEvaluate = fn
	}
}

// Stats counts the work done since the last Reset.
type Stats struct {
	// Evaluations counts fresh cell evaluations (memoized lookups excluded).
	Evaluations int

	// Failed counts cells resolved to cell.FailedState.
	Failed int

	// Cycles counts relations found leading back to a visited, unsettled cell.
	Cycles int
}

// Result is the outcome of one automaton run.
type Result struct {
	// Start is the index of the best path start, or NoStart.
	Start int

	// State is the accumulated state of Start; NaN when there is no start.
	State float64

	// Stats reports the work of the run.
	Stats Stats
}

// Found reports whether the run produced a path start.
func (r Result) Found() bool { return r.Start != NoStart }

// noResult builds the Result of a run without a start.
func noResult(st Stats) Result {
	return Result{Start: NoStart, State: math.NaN(), Stats: st}
}
