// SPDX-License-Identifier: MIT
//
// File: stack.go
// Role: evaluation with an explicit stack of frames (default strategy).

package automaton

import "github.com/katalvlaran/cellauto/neighborhood"

// frame is one cell under evaluation on the explicit stack.
type frame struct {
	item    int                     // cell being evaluated
	rels    []neighborhood.Relation // its relations, ascending by weight
	next    int                     // index of the next relation to scan
	best    float64                 // best continuation so far
	found   bool                    // whether best holds a candidate
	closed  bool                    // whether a relation led back to a visited cell
	pending float64                 // weight of the relation whose target is being evaluated
}

// evalStack evaluates item with an explicit stack of frames.
// It mirrors evalRecursive step for step: same scan order, same flag updates,
// same hook calls and the same cycle handling.
func (a *Automaton) evalStack(item int) float64 {
	a.frames = a.push(a.frames[:0], item)
	for {
		top := &a.frames[len(a.frames)-1]

		// 1) Scan the next relation of the top frame.
		if top.next < len(top.rels) {
			r := top.rels[top.next]
			top.next++

			n := &a.cells[r.To]
			if n.HasDoNotUse() {
				continue
			}
			n.UnsetStart()

			switch {
			case n.HasCycle():
				// 1a) Relation back to a visited, unsettled cell.
				a.reportCycle(top.item, r.To)
				a.link(top.item, a.index[r.To])
				top.closed = true
			case n.HasAssigned():
				// 1b) Memoized neighbor.
				top.best, top.found = consider(top.best, top.found, n.State+r.Weight)
			default:
				// 1c) Descend. top is invalid after push.
				top.pending = r.Weight
				a.frames = a.push(a.frames, r.To)
			}
			continue
		}

		// 2) All relations scanned: settle and hand the outcome to the parent.
		child := top.item
		state := a.settle(child, top.best, top.found, top.closed)
		a.frames = a.frames[:len(a.frames)-1]
		if len(a.frames) == 0 {
			return state
		}
		parent := &a.frames[len(a.frames)-1]
		if a.cells[child].HasAssigned() {
			parent.best, parent.found = consider(parent.best, parent.found, state+parent.pending)
		} else {
			a.link(parent.item, a.low[child])
		}
	}
}

// push starts a fresh evaluation of item and appends its frame.
func (a *Automaton) push(frames []frame, item int) []frame {
	a.begin(item)

	return append(frames, frame{item: item, rels: a.nbh.EqualRange(item)})
}
