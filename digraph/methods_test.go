package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luk036/netoptim-go/digraph"
)

func TestNewDiGraph_EmptyVertices(t *testing.T) {
	g := digraph.NewDiGraph[int64](0)
	assert.Equal(t, 0, g.NumVertices())
	assert.Equal(t, 0, g.NumEdges())
	assert.Empty(t, g.Vertices())
}

func TestNewDiGraph_NegativeCountPanics(t *testing.T) {
	assert.Panics(t, func() { digraph.NewDiGraph[int64](-1) })
}

func TestAddEdge_AssignsSequentialIDs(t *testing.T) {
	g := digraph.NewDiGraph[int64](3)

	id0, err := g.AddEdge(0, 1, 10)
	require.NoError(t, err)
	id1, err := g.AddEdge(1, 2, 20)
	require.NoError(t, err)

	assert.Equal(t, digraph.EdgeID(0), id0)
	assert.Equal(t, digraph.EdgeID(1), id1)
	assert.Equal(t, 2, g.NumEdges())
}

func TestAddEdge_OutOfRangeVertex(t *testing.T) {
	g := digraph.NewDiGraph[int64](2)

	_, err := g.AddEdge(0, 5, 1)
	assert.ErrorIs(t, err, digraph.ErrVertexOutOfRange)

	_, err = g.AddEdge(-1, 1, 1)
	assert.ErrorIs(t, err, digraph.ErrVertexOutOfRange)
}

func TestEdge_NotFound(t *testing.T) {
	g := digraph.NewDiGraph[int64](1)

	_, err := g.Edge(0)
	assert.ErrorIs(t, err, digraph.ErrEdgeNotFound)
}

func TestOutEdges_InsertionOrder(t *testing.T) {
	g := digraph.NewDiGraph[int64](3)

	e0, _ := g.AddEdge(0, 1, 1)
	e1, _ := g.AddEdge(0, 2, 2)
	_, _ = g.AddEdge(1, 2, 3)

	out, err := g.OutEdges(0)
	require.NoError(t, err)
	assert.Equal(t, []digraph.EdgeID{e0, e1}, out)
}

func TestOutEdges_OutOfRangeVertex(t *testing.T) {
	g := digraph.NewDiGraph[int64](1)

	_, err := g.OutEdges(3)
	assert.ErrorIs(t, err, digraph.ErrVertexOutOfRange)
}

func TestEdges_ReturnsAllInOrder(t *testing.T) {
	g := digraph.NewDiGraph[int64](3)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 2)
	_, _ = g.AddEdge(2, 0, 3)

	ids := g.Edges()
	assert.Equal(t, []digraph.EdgeID{0, 1, 2}, ids)
}

func TestVertices_DenseIndexSpace(t *testing.T) {
	g := digraph.NewDiGraph[int64](4)
	assert.Equal(t, []digraph.VertexID{0, 1, 2, 3}, g.Vertices())
}
