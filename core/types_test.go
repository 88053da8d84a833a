package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-mst/core"
)

// square builds A—B(1), B—C(2), C—D(3), A—D(10).
func square() *core.Graph {
	return core.NewGraph("square",
		core.WithMetadata("V=4, E=4"),
		core.WithEdges(
			core.NewEdge("A", "B", 1),
			core.NewEdge("B", "C", 2),
			core.NewEdge("C", "D", 3),
			core.NewEdge("A", "D", 10),
		),
	)
}

func TestNewGraph_Options(t *testing.T) {
	g := square()
	assert.Equal(t, "square", g.Name)
	assert.Equal(t, "V=4, E=4", g.Metadata)
	assert.Len(t, g.Edges, 4)

	// AddEdge keeps input order.
	g.AddEdge("D", "E", 7)
	assert.Equal(t, core.NewEdge("D", "E", 7), g.Edges[4])
}

func TestGraph_Vertices(t *testing.T) {
	g := square()
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.True(t, g.HasVertex("C"))
	assert.False(t, g.HasVertex("Z"))

	empty := core.NewGraph("empty")
	assert.Empty(t, empty.Vertices())
	assert.Zero(t, empty.TotalWeight())
}

func TestGraph_TotalWeightAndClone(t *testing.T) {
	g := square()
	assert.Equal(t, int64(16), g.TotalWeight())

	c := g.Clone()
	c.Edges[0].Weight = 100
	assert.Equal(t, int64(1), g.Edges[0].Weight, "clone must not alias edges")
	assert.Equal(t, g.Name, c.Name)
}

func TestEdge_Helpers(t *testing.T) {
	e := core.NewEdge("A", "B", 5)
	assert.Equal(t, "A --(5)--> B", e.String())
	assert.Equal(t, core.NewEdge("B", "A", 5), e.Reversed())

	assert.False(t, e.IsLoop())
	assert.True(t, core.NewEdge("X", "X", 0).IsLoop())
}

func TestGraph_Validate(t *testing.T) {
	require.NoError(t, square().Validate())

	g := core.NewGraph("bad", core.WithEdges(core.NewEdge("A", "", 1)))
	assert.ErrorIs(t, g.Validate(), core.ErrEmptyVertexID)

	g = core.NewGraph("neg", core.WithEdges(
		core.NewEdge("A", "B", 1),
		core.NewEdge("B", "C", -4),
	))
	err := g.Validate()
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "edge #1")
}
