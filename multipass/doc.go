// Package multipass extracts several disjoint best paths from one arena by
// running the cellular automaton repeatedly.
//
// Each pass scores the arena, reads out the best path with follower.Follow and
// marks every item of that path Taken (which implies DoNotUse), so the next
// pass only sees what is left. Passes stop when:
//
//   - the automaton finds no start,
//   - the start state is below WithMinState,
//   - the path is shorter than WithMinLength,
//   - WithMaxPasses passes have run, or
//   - the context is done.
//
// A rejected path is not marked. Taken flags stay on the cells after Find
// returns; clear them with cell.UnsetTaken to reuse the arena.
//
// Options:
//
//   - WithContext(ctx)          cancellation between passes.
//   - WithLogger(l)             per-pass debug records; also handed to the automaton.
//   - WithMinLength(n)          n ≥ 1, default 1.
//   - WithMinState(s)           default -Inf.
//   - WithMaxPasses(k)          k ≥ 0, 0 means no limit (default).
//   - WithAutomatonOptions(...) forwarded to every automaton run.
//
// Invalid option values are surfaced as ErrOptionViolation by Find.
package multipass
