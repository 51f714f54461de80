// Package neighborhood implements Weighted, a directed many-to-many relation
// between integer item handles where every relation carries a float64 weight.
//
// What:
//
//   - Insert / Connect: record a directed relation (duplicates are kept).
//   - EqualRange:       all out-relations of an item, ascending by weight.
//   - LightestNeighbor / HeaviestNeighbor: O(1) lookups on the sorted bucket.
//   - AppendUsing:      fill the neighborhood by running a RelationFilter over
//     every ordered pair of items.
//   - IsSymmetric:      diagnostic check that every A→B has a matching B→A.
//
// Items are indices into a slice owned by the caller (for example a slice of
// cell.AutomatonCell). The neighborhood never allocates, copies or inspects
// items; it only stores their indices, so it must be rebuilt or cleared when
// the caller renumbers its items.
//
// Ordering:
//
//   - Relations of one item are kept sorted by ascending weight.
//   - Relations with equal weight keep their insertion order, so the
//     lightest neighbor is the earliest inserted and the heaviest neighbor
//     the latest inserted among ties.
//
// Complexity:
//
//   - Insert:      O(log d + d) for the binary search and slice shift (d = out-degree).
//   - EqualRange:  O(1), returns a view of the bucket.
//   - Lightest/Heaviest: O(1).
//   - IsSymmetric: O(E).
//
// Weighted is not safe for concurrent mutation; a neighborhood is built once
// and then read by a single automaton run.
package neighborhood
