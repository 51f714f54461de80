package multipass_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellauto/automaton"
	"github.com/katalvlaran/cellauto/builder"
	"github.com/katalvlaran/cellauto/cell"
	"github.com/katalvlaran/cellauto/multipass"
	"github.com/katalvlaran/cellauto/neighborhood"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// twoChains builds 0→1→2→3 and 4→5 over unit weights, plus 6 alone.
func twoChains(t *testing.T) ([]cell.AutomatonCell, *neighborhood.Weighted) {
	t.Helper()
	cells := cell.FromWeights(1, 1, 1, 1, 1, 1, 1)
	nbh := neighborhood.New()
	for _, r := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {4, 5}} {
		require.NoError(t, nbh.Connect(r[0], r[1]))
	}

	return cells, nbh
}

// TestFind_ExtractsDisjointPaths extracts every chain, longest first.
func TestFind_ExtractsDisjointPaths(t *testing.T) {
	cells, nbh := twoChains(t)

	paths, err := multipass.Find(cells, nbh, multipass.WithLogger(quiet))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 3}, {4, 5}, {6}}, paths)
	for i := range cells {
		assert.True(t, cells[i].HasTaken(), "item %d", i)
	}
}

// TestFind_Limits covers the three acceptance bounds.
func TestFind_Limits(t *testing.T) {
	tests := []struct {
		name string
		opt  multipass.Option
		want [][]int
	}{
		{"MinLength", multipass.WithMinLength(2), [][]int{{0, 1, 2, 3}, {4, 5}}},
		{"MinState", multipass.WithMinState(4), [][]int{{0, 1, 2, 3}}},
		{"MaxPasses", multipass.WithMaxPasses(2), [][]int{{0, 1, 2, 3}, {4, 5}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cells, nbh := twoChains(t)
			paths, err := multipass.Find(cells, nbh, multipass.WithLogger(quiet), tc.opt)
			require.NoError(t, err)
			assert.Equal(t, tc.want, paths)
			assert.False(t, cells[6].HasTaken(), "rejected items stay untouched")
		})
	}
}

// TestFind_RecoversAfterCycle checks that a cyclic component does not stop
// extraction of the usable ones.
func TestFind_RecoversAfterCycle(t *testing.T) {
	cells := cell.FromWeights(1, 1, 1, 1, 1)
	nbh := neighborhood.New()
	for _, r := range [][2]int{{0, 1}, {1, 0}, {2, 3}, {3, 4}} {
		require.NoError(t, nbh.Connect(r[0], r[1]))
	}

	paths, err := multipass.Find(cells, nbh, multipass.WithLogger(quiet))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{2, 3, 4}}, paths)
	assert.True(t, cells[0].IsFailed())
}

// TestFind_Disjoint verifies on random neighborhoods that extracted paths never
// share an item and that both strategies extract the same paths.
func TestFind_Disjoint(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		build := func() *builder.Fixture {
			f, err := builder.Build([]builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithWeightFn(builder.IntWeightFn(0, 3)),
			}, builder.RandomGraph(25, 0.08))
			require.NoError(t, err)
			return f
		}

		f := build()
		paths, err := multipass.Find(f.Cells, f.Neighborhood, multipass.WithLogger(quiet))
		require.NoError(t, err)

		seen := map[int]bool{}
		for _, p := range paths {
			for _, it := range p {
				assert.False(t, seen[it], "seed %d: item %d reused", seed, it)
				seen[it] = true
			}
		}

		g := build()
		rec, err := multipass.Find(g.Cells, g.Neighborhood, multipass.WithLogger(quiet),
			multipass.WithAutomatonOptions(automaton.WithRecursion()))
		require.NoError(t, err)
		assert.Equal(t, paths, rec, "seed %d", seed)
	}
}

// TestFind_Errors covers option violations, cancellation and automaton errors.
func TestFind_Errors(t *testing.T) {
	cells, nbh := twoChains(t)

	for _, opt := range []multipass.Option{
		multipass.WithMinLength(0),
		multipass.WithMaxPasses(-1),
		multipass.WithMinState(math.NaN()),
		multipass.WithLogger(nil),
		multipass.WithContext(nil),
	} {
		_, err := multipass.Find(cells, nbh, opt)
		assert.ErrorIs(t, err, multipass.ErrOptionViolation)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	paths, err := multipass.Find(cells, nbh, multipass.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, paths)

	_, err = multipass.Find(cells, nil, multipass.WithLogger(quiet))
	assert.ErrorIs(t, err, automaton.ErrNilNeighborhood)
}

// TestFind_Logs emits one debug record per extracted path.
func TestFind_Logs(t *testing.T) {
	cells, nbh := twoChains(t)
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	paths, err := multipass.Find(cells, nbh, multipass.WithLogger(l), multipass.WithMaxPasses(1))
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Contains(t, buf.String(), `msg="multipass: path extracted" pass=0 start=0 state=7 length=4`)
}
