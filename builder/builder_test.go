package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellauto/builder"
	"github.com/katalvlaran/cellauto/neighborhood"
)

// TestChain builds a 4-item chain with constant weights.
func TestChain(t *testing.T) {
	f, err := builder.Build(
		[]builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(2))},
		builder.Chain(4),
	)
	require.NoError(t, err)
	require.Equal(t, 4, f.Len())
	assert.Equal(t, []neighborhood.Relation{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 2},
	}, f.Neighborhood.Relations())
	for _, c := range f.Cells {
		assert.Equal(t, builder.DefaultWeight, c.Weight)
	}
}

// TestConstructors_Compose verifies later constructors number items after earlier ones.
func TestConstructors_Compose(t *testing.T) {
	f, err := builder.Build(nil, builder.Chain(2), builder.Ring(3))
	require.NoError(t, err)
	require.Equal(t, 5, f.Len())
	assert.Equal(t, []neighborhood.Relation{
		{From: 0, To: 1, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 3, To: 4, Weight: 1},
		{From: 4, To: 2, Weight: 1},
	}, f.Neighborhood.Relations())
}

// TestBuild_Errors covers parameter validation through the Build wrapper.
func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts []builder.BuilderOption
		con  builder.Constructor
		want error
	}{
		{"ChainZero", nil, builder.Chain(0), builder.ErrTooFewItems},
		{"RingOne", nil, builder.Ring(1), builder.ErrTooFewItems},
		{"DAGNoRNG", nil, builder.RandomDAG(5, 0.5), builder.ErrNeedRandSource},
		{"DAGOrderNeedsRNG", nil, builder.RandomDAG(5, 1), builder.ErrNeedRandSource},
		{"DAGBadP", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomDAG(5, 1.5), builder.ErrInvalidProbability},
		{"GraphNoRNG", nil, builder.RandomGraph(5, 0.3), builder.ErrNeedRandSource},
		{"GraphZeroItems", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomGraph(0, 0.3), builder.ErrTooFewItems},
		{"NilConstructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Build(tc.opts, tc.con)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestRandomGraph_Deterministic checks equal seeds give equal fixtures.
func TestRandomGraph_Deterministic(t *testing.T) {
	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{
			builder.WithSeed(42),
			builder.WithWeightFn(builder.IntWeightFn(-3, 5)),
			builder.WithCellWeightFn(builder.IntWeightFn(0, 4)),
		}
	}
	a, err := builder.Build(opts(), builder.RandomGraph(12, 0.3))
	require.NoError(t, err)
	b, err := builder.Build(opts(), builder.RandomGraph(12, 0.3))
	require.NoError(t, err)

	assert.Equal(t, a.Neighborhood.Relations(), b.Neighborhood.Relations())
	assert.Equal(t, a.Cells, b.Cells)
}

// TestRandomDAG_Acyclic verifies the sampled relations admit a topological order
// (Kahn's algorithm consumes every item).
func TestRandomDAG_Acyclic(t *testing.T) {
	f, err := builder.Build([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomDAG(30, 0.4))
	require.NoError(t, err)
	require.Greater(t, f.Neighborhood.Size(), 0)

	indeg := make([]int, f.Len())
	for _, r := range f.Neighborhood.Relations() {
		indeg[r.To]++
	}
	queue := make([]int, 0, f.Len())
	for i, d := range indeg {
		if d == 0 {
			queue = append(queue, i)
		}
	}
	seen := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		seen++
		for _, r := range f.Neighborhood.EqualRange(u) {
			indeg[r.To]--
			if indeg[r.To] == 0 {
				queue = append(queue, r.To)
			}
		}
	}
	assert.Equal(t, f.Len(), seen)
}

// TestRandom_ExtremeProbabilities covers p=0 and p=1.
func TestRandom_ExtremeProbabilities(t *testing.T) {
	f, err := builder.Build(nil, builder.RandomGraph(4, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, f.Neighborhood.Size())

	f, err = builder.Build(nil, builder.RandomGraph(4, 1))
	require.NoError(t, err)
	assert.Equal(t, 12, f.Neighborhood.Size())
	assert.True(t, f.Neighborhood.IsSymmetric())

	f, err = builder.Build([]builder.BuilderOption{builder.WithSeed(3)}, builder.RandomDAG(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 10, f.Neighborhood.Size())
}

func TestFixture_Mask(t *testing.T) {
	f, err := builder.Build(nil, builder.Chain(3))
	require.NoError(t, err)
	f.Mask(1, 10, -1)
	assert.False(t, f.Cells[0].HasDoNotUse())
	assert.True(t, f.Cells[1].HasDoNotUse())
	assert.False(t, f.Cells[2].HasDoNotUse())
}

// TestOptions_Panics verifies option constructors fail fast on meaningless input.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithCellWeightFn(nil) })
	assert.Panics(t, func() { builder.UniformWeightFn(2, 1) })
	assert.Panics(t, func() { builder.IntWeightFn(2, 1) })
}

func TestWeightFns(t *testing.T) {
	assert.Equal(t, -4.0, builder.ConstantWeightFn(-4)(nil))
	assert.Equal(t, 1.5, builder.UniformWeightFn(1.5, 3)(nil))
	assert.Equal(t, 2.0, builder.IntWeightFn(2, 9)(nil))

	f, err := builder.Build(
		[]builder.BuilderOption{builder.WithSeed(11), builder.WithCellWeightFn(builder.UniformWeightFn(1, 2))},
		builder.Chain(20),
	)
	require.NoError(t, err)
	for _, c := range f.Cells {
		assert.GreaterOrEqual(t, c.Weight, 1.0)
		assert.Less(t, c.Weight, 2.0)
	}
}

// TestLayered relates every item of a layer to every item of the next one.
func TestLayered(t *testing.T) {
	f, err := builder.Build(nil, builder.Layered(2, 1, 2))
	require.NoError(t, err)
	require.Equal(t, 5, f.Len())
	assert.Equal(t, []neighborhood.Relation{
		{From: 0, To: 2, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 2, To: 4, Weight: 1},
	}, f.Neighborhood.Relations())

	_, err = builder.Build(nil, builder.Layered(3))
	assert.ErrorIs(t, err, builder.ErrTooFewItems)
	_, err = builder.Build(nil, builder.Layered(3, 0, 2))
	assert.ErrorIs(t, err, builder.ErrTooFewItems)
}

// TestComplete relates every ordered pair exactly once.
func TestComplete(t *testing.T) {
	f, err := builder.Build(nil, builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, 12, f.Neighborhood.Size())
	assert.True(t, f.Neighborhood.IsSymmetric())
	for i := 0; i < 4; i++ {
		assert.Len(t, f.Neighborhood.EqualRange(i), 3)
	}

	_, err = builder.Build(nil, builder.Complete(1))
	assert.ErrorIs(t, err, builder.ErrTooFewItems)
}
