// SPDX-License-Identifier: MIT

package neighborhood

import (
	"fmt"
	"math"
)

// RelationFilter decides whether two items are neighbors and at what weight.
// Weigh returns NaN to reject the pair.
type RelationFilter interface {
	Weigh(from, to int) float64
}

// RelationFilterFunc adapts a plain function to RelationFilter.
type RelationFilterFunc func(from, to int) float64

// Weigh calls f(from, to).
func (f RelationFilterFunc) Weigh(from, to int) float64 { return f(from, to) }

// AppendUsing evaluates filter on every ordered pair (from, to) of distinct
// items and inserts the accepted pairs. Repeated entries in items count once,
// at their first position. Pairs are visited with from in that order, then to
// in that order, so the resulting buckets are deterministic. It returns the
// number of relations inserted.
//
// Items are validated before any insertion; on error the neighborhood is unchanged.
// Complexity: O(k² · (cost(Weigh) + log d)), k = number of distinct items.
func (n *Weighted) AppendUsing(items []int, filter RelationFilter) (int, error) {
	if fn, ok := filter.(RelationFilterFunc); filter == nil || (ok && fn == nil) {
		return 0, fmt.Errorf("AppendUsing: %w", ErrNilFilter)
	}
	uniq := make([]int, 0, len(items))
	seen := make(map[int]struct{}, len(items))
	for _, it := range items {
		if it < 0 {
			return 0, fmt.Errorf("AppendUsing: item %d: %w", it, ErrNegativeItem)
		}
		if _, dup := seen[it]; dup {
			continue
		}
		seen[it] = struct{}{}
		uniq = append(uniq, it)
	}

	added := 0
	for _, from := range uniq {
		for _, to := range uniq {
			if from == to {
				continue // self relations are never proposed
			}
			w := filter.Weigh(from, to)
			if math.IsNaN(w) {
				continue
			}
			// Handles were validated and NaN skipped, Insert cannot fail here.
			_ = n.Insert(from, to, w)
			added++
		}
	}

	return added, nil
}
