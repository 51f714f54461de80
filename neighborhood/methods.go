// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: relation lifecycle and queries: Insert/Connect/EqualRange/Lightest/Heaviest,
//       bulk Size/Clear/Relations and the IsSymmetric diagnostic.
// Determinism:
//   - EqualRange is ascending by weight, ties in insertion order.
//   - Relations() is ascending by source index, then EqualRange order.

package neighborhood

import (
	"fmt"
	"math"
	"sort"
)

// Insert records the directed relation from→to with the given weight.
// Any number is accepted as weight, including negative values, infinities and
// duplicates of an existing pair. NaN has no place in the weight order and is
// rejected with ErrNaNWeight. The relation is placed after all relations of
// from whose weight is less than or equal to weight.
//
// Steps:
//  1. Reject negative handles (ErrNegativeItem) and NaN weights (ErrNaNWeight).
//  2. Grow the bucket table so buckets[from] exists.
//  3. Binary search the first relation heavier than weight and insert there.
//
// Complexity: O(log d + d), d = out-degree of from.
func (n *Weighted) Insert(from, to int, weight float64) error {
	// 1) Validate handles and weight; nothing is stored on failure.
	if from < 0 || to < 0 {
		return fmt.Errorf("Insert(%d,%d): %w", from, to, ErrNegativeItem)
	}
	if math.IsNaN(weight) {
		return fmt.Errorf("Insert(%d,%d): %w", from, to, ErrNaNWeight)
	}

	// 2) Make room for the source bucket.
	n.grow(from + 1)

	// 3) Upper-bound insertion keeps equal weights in insertion order.
	bucket := n.buckets[from]
	pos := sort.Search(len(bucket), func(i int) bool { return bucket[i].Weight > weight })
	bucket = append(bucket, Relation{})
	copy(bucket[pos+1:], bucket[pos:])
	bucket[pos] = Relation{From: from, To: to, Weight: weight}
	n.buckets[from] = bucket

	n.size++
	if to+1 > n.top {
		n.top = to + 1
	}
	if from+1 > n.top {
		n.top = from + 1
	}

	return nil
}

// Connect inserts from→to with DefaultWeight.
func (n *Weighted) Connect(from, to int) error {
	return n.Insert(from, to, DefaultWeight)
}

// grow extends the bucket table to at least size entries.
func (n *Weighted) grow(size int) {
	if len(n.buckets) >= size {
		return
	}
	if cap(n.buckets) >= size {
		n.buckets = n.buckets[:size]
		return
	}
	grown := make([][]Relation, size, 2*size)
	copy(grown, n.buckets)
	n.buckets = grown
}

// EqualRange returns every out-relation of item, ascending by weight.
// Items without relations (or outside the table) yield an empty slice.
// The returned slice is a view into the neighborhood; callers must not modify it.
func (n *Weighted) EqualRange(item int) []Relation {
	if item < 0 || item >= len(n.buckets) {
		return nil
	}

	return n.buckets[item]
}

// HasNeighbors reports whether item has at least one out-relation.
func (n *Weighted) HasNeighbors(item int) bool {
	return len(n.EqualRange(item)) > 0
}

// LightestNeighbor returns the minimum-weight out-relation of item.
// The boolean is false when item has no relations.
func (n *Weighted) LightestNeighbor(item int) (Relation, bool) {
	bucket := n.EqualRange(item)
	if len(bucket) == 0 {
		return Relation{}, false
	}

	return bucket[0], true
}

// HeaviestNeighbor returns the maximum-weight out-relation of item.
// The boolean is false when item has no relations.
func (n *Weighted) HeaviestNeighbor(item int) (Relation, bool) {
	bucket := n.EqualRange(item)
	if len(bucket) == 0 {
		return Relation{}, false
	}

	return bucket[len(bucket)-1], true
}

// Size returns the number of stored relations.
func (n *Weighted) Size() int { return n.size }

// MaxItem returns the highest item index referenced by any relation, or -1.
func (n *Weighted) MaxItem() int { return n.top - 1 }

// Clear removes all relations. Bucket storage is released.
func (n *Weighted) Clear() {
	n.buckets = nil
	n.size = 0
	n.top = 0
}

// Relations returns a copy of all relations ordered by source, then weight.
// Complexity: O(E).
func (n *Weighted) Relations() []Relation {
	out := make([]Relation, 0, n.size)
	for _, bucket := range n.buckets {
		out = append(out, bucket...)
	}

	return out
}

// pairKey identifies a relation for multiset comparisons.
type pairKey struct {
	from, to int
	weight   float64
}

// IsSymmetric reports whether every relation A→B with weight w is matched by
// a relation B→A with the same weight, counting duplicates.
// Intended for tests and validation only.
// Complexity: O(E) time, O(E) space.
func (n *Weighted) IsSymmetric() bool {
	counts := make(map[pairKey]int, n.size)
	for _, bucket := range n.buckets {
		for _, r := range bucket {
			counts[pairKey{r.From, r.To, r.Weight}]++
		}
	}

	for _, bucket := range n.buckets {
		for _, r := range bucket {
			if counts[pairKey{r.To, r.From, r.Weight}] != counts[pairKey{r.From, r.To, r.Weight}] {
				return false
			}
		}
	}

	return true
}
