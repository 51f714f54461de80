// SPDX-License-Identifier: MIT
//
// File: automaton.go
// Role: Automaton construction, the reset pass, the main pass and start selection.
//       The per-cell evaluation lives in recursive.go and stack.go.

package automaton

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/cellauto/cell"
	"github.com/katalvlaran/cellauto/neighborhood"
)

// Automaton evaluates a slice of cells against a neighborhood over their indices.
// It owns no cells; the caller keeps the slice and may inspect it after a run.
// An Automaton is not safe for concurrent use.
type Automaton struct {
	cells []cell.AutomatonCell  // caller-owned arena
	nbh   *neighborhood.Weighted // relations between arena indices
	opts  options                // resolved configuration
	stats Stats                  // counters since the last Reset

	frames []frame // explicit evaluation stack, reused between calls

	// Component tracking for cycle failure. index and low are discovery
	// numbers per cell; open holds visited cells whose component is not
	// settled yet.
	index   []int
	low     []int
	open    []int
	counter int
}

// New binds an automaton to cells and nbh.
// Returns ErrNilNeighborhood or ErrItemOutOfRange if the inputs are inconsistent.
func New(cells []cell.AutomatonCell, nbh *neighborhood.Weighted, opts ...Option) (*Automaton, error) {
	a := &Automaton{
		cells: cells,
		nbh:   nbh,
		opts:  defaultOptions(),
		index: make([]int, len(cells)),
		low:   make([]int, len(cells)),
	}
	for _, opt := range opts {
		opt(&a.opts)
	}
	if err := a.validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// Apply runs the automaton once over cells and nbh.
// It is shorthand for New followed by Run.
func Apply(cells []cell.AutomatonCell, nbh *neighborhood.Weighted, opts ...Option) (Result, error) {
	a, err := New(cells, nbh, opts...)
	if err != nil {
		return noResult(Stats{}), err
	}

	return a.Run()
}

// validate checks that every relation addresses a cell in the slice.
func (a *Automaton) validate() error {
	if a.nbh == nil {
		return ErrNilNeighborhood
	}
	if top := a.nbh.MaxItem(); top >= len(a.cells) {
		return fmt.Errorf("automaton: relation references item %d, have %d cells: %w",
			top, len(a.cells), ErrItemOutOfRange)
	}

	return nil
}

// Stats returns the counters accumulated since the last Reset.
func (a *Automaton) Stats() Stats { return a.stats }

// Reset clears State and the temporary flags of every cell and zeroes Stats.
// DoNotUse (and Taken) are left as the caller set them.
func (a *Automaton) Reset() {
	for i := range a.cells {
		a.cells[i].Reset()
	}
	a.stats = Stats{}
	a.open = a.open[:0]
	a.counter = 0
}

// UpdateState returns the final state of item, evaluating it and everything
// reachable from it if needed. Already assigned cells are answered from their
// stored state without touching their relations. DoNotUse cells are not
// evaluated; their current State is returned unchanged.
//
// UpdateState does not reset cells; call Reset (or Run) first for a fresh run.
func (a *Automaton) UpdateState(item int) (float64, error) {
	if err := a.validate(); err != nil {
		return math.NaN(), err
	}
	if item < 0 || item >= len(a.cells) {
		return math.NaN(), fmt.Errorf("automaton: UpdateState(%d) with %d cells: %w",
			item, len(a.cells), ErrItemOutOfRange)
	}
	if a.cells[item].HasDoNotUse() {
		return a.cells[item].State, nil
	}

	return a.evaluate(item), nil
}

// evaluate dispatches to the configured strategy.
// A top-level evaluation always settles every cell it visits.
func (a *Automaton) evaluate(item int) float64 {
	if c := &a.cells[item]; c.HasAssigned() {
		return c.State
	}
	if a.opts.recursive {
		return a.evalRecursive(item)
	}

	return a.evalStack(item)
}

// Run performs one complete automaton pass and selects the best path start.
//
// Steps:
//  1. Validate the neighborhood against the cell slice.
//  2. Reset every cell (State = -Inf, Assigned/Cycle/Start cleared).
//  3. In index order, evaluate each usable, unassigned cell as a tentative start
//     and keep the first cell with the strictly highest state.
//  4. Reject the candidate if it lost Start, failed, or is unusable.
func (a *Automaton) Run() (Result, error) {
	// 1) Inputs
	if err := a.validate(); err != nil {
		return noResult(Stats{}), err
	}

	// 2) Reset pass
	a.Reset()

	// 3) Main pass
	best := NoStart
	bestState := math.NaN()
	for i := range a.cells {
		c := &a.cells[i]
		if c.HasDoNotUse() || c.HasCycle() || c.HasAssigned() {
			continue
		}
		c.SetStart()
		s := a.evaluate(i)
		if best == NoStart || better(s, bestState) {
			best, bestState = i, s
		}
	}

	// 4) Selection
	res := a.selectStart(best)
	a.opts.logger.Debug("cellular automaton finished",
		slog.Int("cells", len(a.cells)),
		slog.Int("relations", a.nbh.Size()),
		slog.Int("start", res.Start),
		slog.Int("evaluations", a.stats.Evaluations),
		slog.Int("cycles", a.stats.Cycles),
	)

	return res, nil
}

// selectStart turns the main-pass candidate into a Result.
func (a *Automaton) selectStart(best int) Result {
	if best == NoStart {
		return noResult(a.stats)
	}
	c := &a.cells[best]
	if c.HasCycle() || c.HasDoNotUse() || !c.HasStart() || c.IsFailed() {
		return noResult(a.stats)
	}

	return Result{Start: best, State: c.State, Stats: a.stats}
}

// better reports whether candidate beats current. Failed (NaN) states rank
// below every number, so a NaN candidate never wins and any number beats a
// NaN current. Equal values never win.
func better(candidate, current float64) bool {
	if math.IsNaN(candidate) {
		return false
	}
	if math.IsNaN(current) {
		return true
	}

	return candidate > current
}

// consider folds one continuation candidate into the running maximum.
// Failed continuations are skipped.
func consider(best float64, found bool, candidate float64) (float64, bool) {
	if math.IsNaN(candidate) {
		return best, found
	}
	if !found || candidate > best {
		return candidate, true
	}

	return best, found
}

// begin marks item as visited, numbers it and records a fresh evaluation.
func (a *Automaton) begin(item int) {
	a.cells[item].SetCycle()
	a.index[item], a.low[item] = a.counter, a.counter
	a.counter++
	a.open = append(a.open, item)
	a.stats.Evaluations++
	if a.opts.onEvaluate != nil {
		a.opts.onEvaluate(item)
	}
}

// link lowers the discovery bound of item to reach, the number of a cell that
// is still open.
func (a *Automaton) link(item, reach int) {
	if reach < a.low[item] {
		a.low[item] = reach
	}
}

// settle is called once every relation of item was scanned.
//
// Steps:
//  1. If item reaches an open cell discovered before it, it belongs to a
//     component rooted further up: leave it open and report no state.
//  2. Otherwise item roots a component made of itself and every cell opened
//     after it. A lone cell without a relation back to itself is resolved.
//  3. Any larger component, or a self-loop, is a cycle: every member fails.
func (a *Automaton) settle(item int, best float64, found, closed bool) float64 {
	// 1) Open member of an enclosing component.
	if a.low[item] < a.index[item] {
		return cell.FailedState
	}

	// 2) Acyclic cell.
	last := len(a.open) - 1
	if a.open[last] == item && !closed {
		a.open = a.open[:last]
		return a.finish(item, best, found)
	}

	// 3) Cycle.
	for {
		m := a.open[len(a.open)-1]
		a.open = a.open[:len(a.open)-1]
		a.fail(m)
		if m == item {
			return cell.FailedState
		}
	}
}

// finish resolves item from its best continuation and returns the final state.
func (a *Automaton) finish(item int, best float64, found bool) float64 {
	if !found {
		best = 0 // no usable continuation
	}
	c := &a.cells[item]
	c.State = best + c.Weight
	c.SetAssigned()
	c.UnsetCycle()

	return c.State
}

// fail resolves item to cell.FailedState.
func (a *Automaton) fail(item int) {
	a.cells[item].Fail()
	a.stats.Failed++
}

// reportCycle records that a relation from item leads back to entry, a cell
// that is visited but not settled.
func (a *Automaton) reportCycle(item, entry int) {
	a.stats.Cycles++
	a.opts.logger.Warn("cellular automaton: cycle detected",
		slog.Int("item", item),
		slog.Int("entry", entry),
	)
}
