// SPDX-License-Identifier: MIT

package cell

import (
	"math"
	"strconv"
	"strings"
)

// Flags is a bit set of automaton cell markers.
type Flags uint8

const (
	// DoNotUse marks a cell that must never be traversed or become part of a path.
	DoNotUse Flags = 1 << iota

	// Assigned marks a cell whose State is final for the current run.
	Assigned

	// Cycle marks a cell that is on the active evaluation stack.
	Cycle

	// Start marks a cell that has no evaluated predecessor in the current run.
	Start

	// Taken marks a cell consumed by an extracted path. It always comes with DoNotUse.
	Taken
)

// TemporaryFlags are the flags owned by the automaton and cleared by Reset.
const TemporaryFlags = Assigned | Cycle | Start

var (
	// ResetState is the State of a cell that has not been evaluated yet.
	ResetState = math.Inf(-1)

	// FailedState is the State of a cell found on a cycle. It compares false
	// against every value, so it never wins a maximum.
	FailedState = math.NaN()
)

// AutomatonCell holds the mutable automaton state of one item.
type AutomatonCell struct {
	// State is the best accumulated path value starting at this cell.
	State float64

	// Weight is the intrinsic value of including this cell in a path.
	Weight float64

	flags Flags
}

// New returns a clean cell with the given weight.
func New(weight float64) AutomatonCell {
	return AutomatonCell{State: ResetState, Weight: weight}
}

// Reset prepares the cell for a new run: State becomes ResetState and the
// temporary flags are cleared. DoNotUse, Taken and Weight are kept.
func (c *AutomatonCell) Reset() {
	c.State = ResetState
	c.flags &^= TemporaryFlags
}

// Fail records a definitive failure: State becomes FailedState, the cell is
// assigned (so it is never evaluated again this run) and leaves the stack.
func (c *AutomatonCell) Fail() {
	c.State = FailedState
	c.flags |= Assigned
	c.flags &^= Cycle
}

// IsFailed reports whether the cell was resolved to FailedState.
func (c *AutomatonCell) IsFailed() bool {
	return c.flags&Assigned != 0 && math.IsNaN(c.State)
}

// Flags returns the raw flag set.
func (c *AutomatonCell) Flags() Flags { return c.flags }

// HasFlags reports whether all flags in f are set.
func (c *AutomatonCell) HasFlags(f Flags) bool { return c.flags&f == f }

// HasAnyFlags reports whether at least one flag in f is set.
func (c *AutomatonCell) HasAnyFlags(f Flags) bool { return c.flags&f != 0 }

// SetFlags sets every flag in f.
func (c *AutomatonCell) SetFlags(f Flags) { c.flags |= f }

// UnsetFlags clears every flag in f.
func (c *AutomatonCell) UnsetFlags(f Flags) { c.flags &^= f }

// HasDoNotUse reports whether the cell is excluded from evaluation.
func (c *AutomatonCell) HasDoNotUse() bool { return c.flags&DoNotUse != 0 }

// SetDoNotUse excludes the cell from evaluation.
func (c *AutomatonCell) SetDoNotUse() { c.flags |= DoNotUse }

// UnsetDoNotUse clears DoNotUse. A Taken cell stays unusable; call UnsetTaken first.
func (c *AutomatonCell) UnsetDoNotUse() {
	if c.flags&Taken != 0 {
		return
	}
	c.flags &^= DoNotUse
}

// HasAssigned reports whether the cell holds a final state for this run.
func (c *AutomatonCell) HasAssigned() bool { return c.flags&Assigned != 0 }

// SetAssigned marks State as final for this run.
func (c *AutomatonCell) SetAssigned() { c.flags |= Assigned }

// UnsetAssigned clears Assigned.
func (c *AutomatonCell) UnsetAssigned() { c.flags &^= Assigned }

// HasCycle reports whether the cell is visited but not yet settled.
func (c *AutomatonCell) HasCycle() bool { return c.flags&Cycle != 0 }

// SetCycle marks the cell as visited and not settled.
func (c *AutomatonCell) SetCycle() { c.flags |= Cycle }

// UnsetCycle clears Cycle.
func (c *AutomatonCell) UnsetCycle() { c.flags &^= Cycle }

// HasStart reports whether the cell is still a candidate path start.
func (c *AutomatonCell) HasStart() bool { return c.flags&Start != 0 }

// SetStart marks the cell as a candidate path start.
func (c *AutomatonCell) SetStart() { c.flags |= Start }

// UnsetStart drops the cell as a path start candidate.
func (c *AutomatonCell) UnsetStart() { c.flags &^= Start }

// HasTaken reports whether the cell was consumed by an extracted path.
func (c *AutomatonCell) HasTaken() bool { return c.flags&Taken != 0 }

// SetTaken marks the cell as consumed; it implies DoNotUse.
func (c *AutomatonCell) SetTaken() { c.flags |= Taken | DoNotUse }

// UnsetTaken releases a consumed cell, clearing both Taken and DoNotUse.
func (c *AutomatonCell) UnsetTaken() { c.flags &^= Taken | DoNotUse }

// flagNames lists flag labels in bit order for String.
var flagNames = [...]struct {
	f    Flags
	name string
}{
	{DoNotUse, "do-not-use"},
	{Assigned, "assigned"},
	{Cycle, "cycle"},
	{Start, "start"},
	{Taken, "taken"},
}

// String renders the flag set as "a|b|c", or "-" when empty.
func (f Flags) String() string {
	if f == 0 {
		return "-"
	}
	parts := make([]string, 0, len(flagNames))
	for _, fn := range flagNames {
		if f&fn.f != 0 {
			parts = append(parts, fn.name)
		}
	}

	return strings.Join(parts, "|")
}

// String renders the cell as "state/weight [flags]" for diagnostics.
func (c AutomatonCell) String() string {
	var sb strings.Builder
	sb.WriteString(formatState(c.State))
	sb.WriteByte('/')
	sb.WriteString(strconv.FormatFloat(c.Weight, 'g', -1, 64))
	sb.WriteString(" [")
	sb.WriteString(c.flags.String())
	sb.WriteByte(']')

	return sb.String()
}

// formatState prints the two sentinels by role rather than by IEEE spelling.
func formatState(s float64) string {
	switch {
	case math.IsNaN(s):
		return "failed"
	case math.IsInf(s, -1):
		return "unset"
	default:
		return strconv.FormatFloat(s, 'g', -1, 64)
	}
}

// FromWeights returns one clean cell per weight, in order.
func FromWeights(weights ...float64) []AutomatonCell {
	cells := make([]AutomatonCell, len(weights))
	for i, w := range weights {
		cells[i] = New(w)
	}

	return cells
}
