// Package builder_test verifies topology, counts, determinism and
// parameter validation of every constructor.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-mst/builder"
	"github.com/katalvlaran/lvlath-mst/core"
)

// edgeKey identifies an undirected edge by its sorted endpoints.
type edgeKey struct{ U, V string }

func keyOf(e core.Edge) edgeKey {
	if e.Source > e.Destination {
		return edgeKey{e.Destination, e.Source}
	}
	return edgeKey{e.Source, e.Destination}
}

// TestBuilders_Functional runs table-driven functional tests for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		cons      builder.Constructor
		wantV     int
		wantE     int
		firstEdge core.Edge
	}{
		{"Path5", builder.Path(5), 5, 4, core.NewEdge("v0", "v1", 1)},
		{"Cycle4", builder.Cycle(4), 4, 4, core.NewEdge("v0", "v1", 1)},
		{"Star6", builder.Star(6), 6, 5, core.NewEdge("v0", "v1", 1)},
		{"Complete5", builder.Complete(5), 5, 10, core.NewEdge("v0", "v1", 1)},
		{"Islands3x4", builder.Islands(3, 4), 12, 9, core.NewEdge("v0", "v1", 1)},
		{"SparseFull", builder.RandomSparse(4, 1), 4, 6, core.NewEdge("v0", "v1", 1)},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.name, nil, tc.cons)
			require.NoError(t, err)
			assert.Len(t, g.Vertices(), tc.wantV)
			assert.Len(t, g.Edges, tc.wantE)
			assert.Equal(t, tc.firstEdge, g.Edges[0])
			assert.NotEmpty(t, g.Metadata)
			assert.NoError(t, g.Validate())
		})
	}
}

func TestBuildGraph_MetadataAndComposition(t *testing.T) {
	g, err := builder.BuildGraph("combo",
		[]builder.BuilderOption{builder.WithDefaultIDs()},
		builder.Path(3), builder.Star(3),
	)
	require.NoError(t, err)
	assert.Equal(t, "V=3, E=4", g.Metadata)
	assert.Equal(t, "0", g.Edges[0].Source)

	g, err = builder.BuildGraph("fixed", []builder.BuilderOption{builder.WithMetadata("hand-made")}, builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, "hand-made", g.Metadata)
}

func TestBuildGraph_Errors(t *testing.T) {
	_, err := builder.BuildGraph("nil", nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph("p", nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph("c", nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph("s", nil, builder.RandomSparse(5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph("s", nil, builder.RandomSparse(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph("rc", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomConnected(5, 3))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph("rc", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomConnected(5, 11))
	assert.ErrorIs(t, err, builder.ErrTooManyEdges)

	_, err = builder.BuildGraph("rc", nil, builder.RandomConnected(5, 6))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomConnected_SimpleAndDeterministic(t *testing.T) {
	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 100)}
	}
	g1 := builder.MustBuildGraph("rc", opts(), builder.RandomConnected(30, 80))
	g2 := builder.MustBuildGraph("rc", opts(), builder.RandomConnected(30, 80))

	assert.Equal(t, g1.Edges, g2.Edges, "same seed must give same edge list")
	assert.Len(t, g1.Vertices(), 30)
	assert.Len(t, g1.Edges, 80)

	seen := make(map[edgeKey]bool, len(g1.Edges))
	for _, e := range g1.Edges {
		assert.False(t, e.IsLoop())
		assert.False(t, seen[keyOf(e)], "duplicate pair %v", e)
		seen[keyOf(e)] = true
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(100))
	}
}

func TestDistinctWeightFn(t *testing.T) {
	g := builder.MustBuildGraph("k",
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithDistinctWeights(1000)},
		builder.Complete(20),
	)
	weights := make(map[int64]bool, len(g.Edges))
	for _, e := range g.Edges {
		assert.False(t, weights[e.Weight], "weight %d repeated", e.Weight)
		weights[e.Weight] = true
	}

	// Without an RNG the sequence is 1, 2, 3, ...
	g = builder.MustBuildGraph("p", []builder.BuilderOption{builder.WithDistinctWeights(10)}, builder.Path(4))
	assert.Equal(t, []int64{1, 2, 3}, []int64{g.Edges[0].Weight, g.Edges[1].Weight, g.Edges[2].Weight})

	assert.Panics(t, func() { builder.DistinctWeightFn(0) })
	fn := builder.DistinctWeightFn(1)
	fn(nil)
	assert.Panics(t, func() { fn(nil) })
}

func TestWeightAndIDFns(t *testing.T) {
	assert.Equal(t, int64(7), builder.ConstantWeightFn(7)(nil))
	assert.Equal(t, int64(3), builder.UniformWeightFn(3, 9)(nil))
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })

	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "№12", builder.SymbolNumberIDFn("№")(12))
	assert.Equal(t, "42", builder.DefaultIDFn(42))
}
