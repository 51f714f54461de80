// Package cell defines AutomatonCell, the per-item record a cellular
// automaton reads and writes while scoring paths through a weighted
// neighborhood.
//
// What:
//
//   - State:  best accumulated path value reachable from the item.
//     ResetState (-Inf) before a run, FailedState (NaN) after the item
//     was found on a cycle.
//   - Weight: fixed value of including the item in a path; set by the
//     owner before a run and never touched by the automaton.
//   - Flags:  DoNotUse, Assigned, Cycle, Start, Taken.
//
// Lifecycle:
//
//   - The owner sets Weight and, optionally, DoNotUse.
//   - The automaton calls Reset on every cell, then drives cells through
//     Unvisited → InProgress (Cycle) → Resolved (Assigned) or Failed.
//   - DoNotUse and Taken are owned by the caller; Reset leaves them alone.
//
// Cells carry no identity. Callers keep them in a slice and address them
// by index; the same index is the item handle stored in a neighborhood.
package cell
