// Package automaton implements the weighted cellular automaton that scores
// every item of a neighborhood with the best path value reachable from it and
// picks the best legal path start.
//
// What:
//
//   - Apply / Automaton.Run: reset all cells, evaluate every usable cell once in
//     index order, and return the start cell with the highest state.
//   - Automaton.UpdateState: evaluate (or fetch the memoized state of) one cell.
//   - Evaluation walks the neighborhood depth-first. A cell's state is
//     max over usable relations (neighbor state + relation weight), or 0
//     without such relations, plus the cell's own weight.
//
// Cell states:
//
//   - Unvisited → InProgress (Cycle flag) → Resolved (Assigned flag)
//   - InProgress → Failed (State = cell.FailedState) when the cell lies on a
//     directed cycle of usable cells. The depth-first walk numbers cells as it
//     visits them and settles each strongly connected component when its
//     first-visited cell finishes: every member of a component with more than
//     one cell, or with a self-loop, fails at once. Cells outside the cycle
//     that lead into it see "no continuation" through the failed members.
//   - DoNotUse cells are never entered and never contribute to a state.
//
// Start selection:
//
//   - Cells evaluated from the main pass are marked Start; a cell loses Start as
//     soon as another cell scans it as a neighbor.
//   - The best candidate is replaced only by a strictly higher state, so ties go
//     to the lowest index. Failed states never win.
//   - The run yields no start when the best candidate lost its Start flag, is
//     failed, on the stack, or unusable.
//
// Evaluation strategies:
//
//   - Explicit stack (default): no native recursion, safe for very deep graphs.
//   - WithRecursion(): the direct recursive form. Both strategies visit cells,
//     clear flags, call hooks and report cycles in the same order, so they
//     produce identical cells and results.
//
// Complexity:
//
//   - Time:   O(V + E) per run; memoization makes each cell's relations scanned once.
//   - Memory: O(depth) for the stack (frames or goroutine stack), O(V) for
//     the discovery numbers.
//
// Errors:
//
//   - ErrNilNeighborhood  the neighborhood pointer is nil
//   - ErrItemOutOfRange   a relation or requested item is outside the cell slice
//
// Cycles are not errors: they are logged at Warn level and counted in Stats.
package automaton
