package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstkit/core"
)

// buildTriangle returns the 3-vertex triangle used across the kernel tests:
// 0—1 (weight 1), 1—2 (weight 2), 0—2 (weight 3).
func buildTriangle(t *testing.T) *core.WeightedGraph {
	t.Helper()
	g, err := core.NewWeightedGraph(3, 3)
	require.NoError(t, err)
	require.NoError(t, g.SetEdgeAt(0, core.Edge{From: 0, To: 1, Weight: 1}))
	require.NoError(t, g.SetEdgeAt(1, core.Edge{From: 1, To: 2, Weight: 2}))
	require.NoError(t, g.SetEdgeAt(2, core.Edge{From: 0, To: 2, Weight: 3}))

	return g
}

// TestNewWeightedGraph_Validation verifies the constructor sentinels.
func TestNewWeightedGraph_Validation(t *testing.T) {
	_, err := core.NewWeightedGraph(0, 3)
	assert.ErrorIs(t, err, core.ErrBadVertexCount)

	_, err = core.NewWeightedGraph(3, -1)
	assert.ErrorIs(t, err, core.ErrBadEdgeCount)

	g, err := core.NewWeightedGraph(3, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
}

// TestWeightedGraph_EdgeAccess checks SetEdgeAt/EdgeAt round trips and the
// flat-layout invariant len(Data) == 3·E.
func TestWeightedGraph_EdgeAccess(t *testing.T) {
	g := buildTriangle(t)

	assert.Len(t, g.Data(), 3*g.EdgeCount())

	e, err := g.EdgeAt(1)
	require.NoError(t, err)
	assert.Equal(t, core.Edge{From: 1, To: 2, Weight: 2}, e)

	_, err = g.EdgeAt(3)
	assert.ErrorIs(t, err, core.ErrEdgeIndex)

	err = g.SetEdgeAt(0, core.Edge{From: 0, To: 5, Weight: 1})
	assert.ErrorIs(t, err, core.ErrVertexRange)
}

// TestWeightedGraph_ReplaceData verifies the sort phase's swap-in path only
// accepts slices of the original shape.
func TestWeightedGraph_ReplaceData(t *testing.T) {
	g := buildTriangle(t)

	err := g.ReplaceData(make([]int32, 5))
	assert.ErrorIs(t, err, core.ErrDataLength)

	sorted := []int32{0, 1, 1, 1, 2, 2, 0, 2, 3}
	require.NoError(t, g.ReplaceData(sorted))
	assert.Equal(t, sorted, g.Data())
}

// TestAdjacencyList_Build verifies both directions of every edge appear and
// the arc total is 2·E.
func TestAdjacencyList_Build(t *testing.T) {
	g := buildTriangle(t)
	adj := core.NewAdjacencyList(g)

	assert.Equal(t, 3, adj.VertexCount())
	assert.Equal(t, 2*g.EdgeCount(), adj.ArcCount())

	assert.ElementsMatch(t,
		[]core.Arc{{To: 1, Weight: 1}, {To: 2, Weight: 3}},
		adj.Neighbors(0))
	assert.ElementsMatch(t,
		[]core.Arc{{To: 0, Weight: 1}, {To: 2, Weight: 2}},
		adj.Neighbors(1))
	assert.ElementsMatch(t,
		[]core.Arc{{To: 1, Weight: 2}, {To: 0, Weight: 3}},
		adj.Neighbors(2))
}
