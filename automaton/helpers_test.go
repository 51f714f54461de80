package automaton_test

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellauto/automaton"
	"github.com/katalvlaran/cellauto/cell"
	"github.com/katalvlaran/cellauto/neighborhood"
)

// Item handles of the four-item scenario A→B→C→D.
const (
	ItemA = iota
	ItemB
	ItemC
	ItemD
)

// quiet discards automaton logs in tests that do not inspect them.
var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// strategies lists both evaluation strategies for table-driven tests.
var strategies = []struct {
	name string
	opts []automaton.Option
}{
	{"Stack", []automaton.Option{automaton.WithLogger(quiet)}},
	{"Recursive", []automaton.Option{automaton.WithLogger(quiet), automaton.WithRecursion()}},
}

// fixture builds cells from weights and a neighborhood from relations.
func fixture(t *testing.T, weights []float64, rels ...neighborhood.Relation) ([]cell.AutomatonCell, *neighborhood.Weighted) {
	t.Helper()
	cells := cell.FromWeights(weights...)
	nbh := neighborhood.New()
	for _, r := range rels {
		require.NoError(t, nbh.Insert(r.From, r.To, r.Weight))
	}

	return cells, nbh
}

// rel is a short constructor for relations in test tables.
func rel(from, to int, w float64) neighborhood.Relation {
	return neighborhood.Relation{From: from, To: to, Weight: w}
}

// bruteForce enumerates every path starting at item without memoization and
// returns the best value under the automaton's rules: the item's weight plus
// the best (relation weight + continuation) over usable neighbors, or plus 0
// without usable neighbors. Only valid on acyclic neighborhoods.
func bruteForce(cells []cell.AutomatonCell, nbh *neighborhood.Weighted, item int) float64 {
	best, found := 0.0, false
	for _, r := range nbh.EqualRange(item) {
		if cells[r.To].HasDoNotUse() {
			continue
		}
		v := r.Weight + bruteForce(cells, nbh, r.To)
		if !found || v > best {
			best, found = v, true
		}
	}

	return best + cells[item].Weight
}

// onCycle reports, per item, whether the item lies on a directed cycle of
// usable cells (a self-loop included), by transitive closure over usable
// relations.
func onCycle(cells []cell.AutomatonCell, nbh *neighborhood.Weighted) []bool {
	n := len(cells)
	reach := make([][]bool, n)
	for i := range reach {
		reach[i] = make([]bool, n)
	}
	for _, r := range nbh.Relations() {
		if cells[r.From].HasDoNotUse() || cells[r.To].HasDoNotUse() {
			continue
		}
		reach[r.From][r.To] = true
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if !reach[i][k] {
				continue
			}
			for j := 0; j < n; j++ {
				if reach[k][j] {
					reach[i][j] = true
				}
			}
		}
	}

	out := make([]bool, n)
	for i := range out {
		out[i] = reach[i][i]
	}

	return out
}

// assertSameCells compares two arenas treating NaN states as equal.
func assertSameCells(t *testing.T, want, got []cell.AutomatonCell) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.IsNaN(want[i].State) {
			assert.True(t, math.IsNaN(got[i].State), "item %d: want failed, got %v", i, got[i])
		} else {
			assert.Equal(t, want[i].State, got[i].State, "item %d state", i)
		}
		assert.Equal(t, want[i].Flags(), got[i].Flags(), "item %d flags", i)
	}
}
