// Package builder assembles deterministic automaton fixtures: a slice of
// cell.AutomatonCell together with a neighborhood.Weighted over its indices.
//
// Components:
//
//   - Fixture:       the (cells, neighborhood) pair produced by Build.
//   - Constructor:   a function that appends items and relations to a Fixture.
//     Constructors compose: each one numbers its items after the
//     items already present, so Build(opts, Chain(3), Chain(3))
//     yields two disjoint chains.
//   - BuilderOption: functional options resolved into builderConfig
//     (RNG, relation weight policy, cell weight policy).
//   - WeightFn:      weight distributions (constant, uniform, integer uniform).
//
// Constructors:
//
//   - Chain(n)          0→1→…→n-1
//   - Ring(n)           0→1→…→n-1→0 (one cycle)
//   - RandomDAG(n, p)   relations along a random topological order, each with probability p
//   - RandomGraph(n, p) every ordered pair of distinct items with probability p (cycles likely)
//   - Layered(w...)     consecutive layers fully related, first to last (acyclic)
//   - Complete(n)       every ordered pair of distinct items (dense cycles)
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical fixtures.
//   - Invalid parameters return sentinel errors; option constructors panic on
//     meaningless values (nil RNG, nil weight functions, empty intervals).
package builder
