// SPDX-License-Identifier: MIT
//
// File: recursive.go
// Role: evaluation by native recursion (WithRecursion).

package automaton

// evalRecursive evaluates item by native recursion.
// item must be usable and neither visited nor assigned.
// It returns cell.FailedState while item is still an open member of a cycle.
func (a *Automaton) evalRecursive(item int) float64 {
	// 1) Fresh evaluation.
	a.begin(item)
	best, found, closed := 0.0, false, false

	// 2) Scan relations in ascending weight order.
	for _, r := range a.nbh.EqualRange(item) {
		n := &a.cells[r.To]
		if n.HasDoNotUse() {
			continue
		}
		n.UnsetStart()

		switch {
		case n.HasCycle():
			// 2a) Relation back to a visited, unsettled cell.
			a.reportCycle(item, r.To)
			a.link(item, a.index[r.To])
			closed = true
		case n.HasAssigned():
			// 2b) Memoized neighbor.
			best, found = consider(best, found, n.State+r.Weight)
		default:
			// 2c) Descend. An open child shares item's component.
			s := a.evalRecursive(r.To)
			if n.HasAssigned() {
				best, found = consider(best, found, s+r.Weight)
			} else {
				a.link(item, a.low[r.To])
			}
		}
	}

	// 3) Resolve, stay open, or fail the component.
	return a.settle(item, best, found, closed)
}
