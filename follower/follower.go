// SPDX-License-Identifier: MIT

package follower

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cellauto/cell"
	"github.com/katalvlaran/cellauto/neighborhood"
)

// Sentinel errors for path read-out.
var (
	// ErrNilNeighborhood is returned when the neighborhood pointer is nil.
	ErrNilNeighborhood = errors.New("follower: neighborhood is nil")

	// ErrItemOutOfRange is returned for a start index or relation outside the cell slice.
	ErrItemOutOfRange = errors.New("follower: item out of range")

	// ErrNotEvaluated is returned when the start item carries no usable state.
	ErrNotEvaluated = errors.New("follower: item has no evaluated state")
)

// validate checks the neighborhood against the cell slice.
func validate(method string, cells []cell.AutomatonCell, nbh *neighborhood.Weighted) error {
	if nbh == nil {
		return fmt.Errorf("%s: %w", method, ErrNilNeighborhood)
	}
	if top := nbh.MaxItem(); top >= len(cells) {
		return fmt.Errorf("%s: relation references item %d, have %d cells: %w",
			method, top, len(cells), ErrItemOutOfRange)
	}

	return nil
}

// evaluated reports whether c holds a final, non-failed state and may be used.
func evaluated(c *cell.AutomatonCell) bool {
	return c.HasAssigned() && !c.IsFailed() && !c.HasDoNotUse()
}

// successors returns the distinct neighbors of item that realise its best
// continuation, in EqualRange order. Items marked in skip are dropped after
// the maximum is taken.
func successors(cells []cell.AutomatonCell, nbh *neighborhood.Weighted, item int, skip []bool) []int {
	var (
		best  float64
		found bool
		ties  []int
	)
	for _, r := range nbh.EqualRange(item) {
		n := &cells[r.To]
		if !evaluated(n) {
			continue
		}
		v := n.State + r.Weight
		switch {
		case !found || v > best:
			best, found = v, true
			ties = append(ties[:0], r.To)
		case v == best && !contains(ties, r.To):
			ties = append(ties, r.To)
		}
	}

	out := ties[:0]
	for _, to := range ties {
		if !skip[to] {
			out = append(out, to)
		}
	}

	return out
}

func contains(items []int, x int) bool {
	for _, it := range items {
		if it == x {
			return true
		}
	}

	return false
}

// Follow returns the best path that starts at start: start itself followed by
// the chain of neighbors that realised each item's state.
//
// The start must be evaluated (Assigned, not failed, not DoNotUse).
func Follow(cells []cell.AutomatonCell, nbh *neighborhood.Weighted, start int) ([]int, error) {
	// 1) Inputs
	if err := validate("Follow", cells, nbh); err != nil {
		return nil, err
	}
	if start < 0 || start >= len(cells) {
		return nil, fmt.Errorf("Follow: start %d with %d cells: %w", start, len(cells), ErrItemOutOfRange)
	}
	if !evaluated(&cells[start]) {
		return nil, fmt.Errorf("Follow: start %d is %v: %w", start, cells[start], ErrNotEvaluated)
	}

	// 2) Walk the first best successor until none is left.
	onPath := make([]bool, len(cells))
	path := []int{start}
	onPath[start] = true
	for cur := start; ; {
		next := successors(cells, nbh, cur, onPath)
		if len(next) == 0 {
			return path, nil
		}
		cur = next[0]
		onPath[cur] = true
		path = append(path, cur)
	}
}

// FollowAll returns every best path of the arena: each evaluated item that
// still carries the Start flag and has State >= minState, in index order,
// expanded along all tied best successors.
func FollowAll(cells []cell.AutomatonCell, nbh *neighborhood.Weighted, minState float64) ([][]int, error) {
	if err := validate("FollowAll", cells, nbh); err != nil {
		return nil, err
	}

	var (
		out    [][]int
		onPath = make([]bool, len(cells))
	)
	var expand func(item int, prefix []int)
	expand = func(item int, prefix []int) {
		prefix = append(prefix, item)
		onPath[item] = true
		next := successors(cells, nbh, item, onPath)
		if len(next) == 0 {
			out = append(out, append([]int(nil), prefix...))
		}
		for _, n := range next {
			expand(n, prefix)
		}
		onPath[item] = false
	}

	for i := range cells {
		c := &cells[i]
		if !evaluated(c) || !c.HasStart() || c.State < minState {
			continue
		}
		expand(i, nil)
	}

	return out, nil
}

// FollowHeaviest walks the heaviest relation of every item, starting at start.
// The walk stops at an item without relations, before a DoNotUse neighbor or
// before revisiting an item. A DoNotUse start yields an empty path.
// Cell states are ignored.
func FollowHeaviest(cells []cell.AutomatonCell, nbh *neighborhood.Weighted, start int) ([]int, error) {
	if err := validate("FollowHeaviest", cells, nbh); err != nil {
		return nil, err
	}
	if start < 0 || start >= len(cells) {
		return nil, fmt.Errorf("FollowHeaviest: start %d with %d cells: %w", start, len(cells), ErrItemOutOfRange)
	}
	if cells[start].HasDoNotUse() {
		return nil, nil
	}

	seen := map[int]struct{}{start: {}}
	path := []int{start}
	for cur := start; ; {
		r, ok := nbh.HeaviestNeighbor(cur)
		if !ok || cells[r.To].HasDoNotUse() {
			return path, nil
		}
		if _, dup := seen[r.To]; dup {
			return path, nil
		}
		seen[r.To] = struct{}{}
		path = append(path, r.To)
		cur = r.To
	}
}
