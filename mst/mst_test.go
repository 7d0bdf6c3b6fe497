package mst_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstkit/cluster"
	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/dsu"
	"github.com/katalvlaran/mstkit/maze"
	"github.com/katalvlaran/mstkit/mst"
)

// allAlgorithms lists the four kernels for cross-checking runs.
var allAlgorithms = []mst.Algorithm{mst.Kruskal, mst.PrimFibonacci, mst.PrimBinary, mst.Boruvka}

// buildGraph materializes (vertices, edges) as a fresh flat graph. Kernels
// may permute the edge list, so every solve gets its own copy.
func buildGraph(t *testing.T, vertices int, edges []core.Edge) *core.WeightedGraph {
	t.Helper()
	g, err := core.NewWeightedGraph(vertices, len(edges))
	require.NoError(t, err)
	for i, e := range edges {
		require.NoError(t, g.SetEdgeAt(i, e))
	}

	return g
}

// solve runs one kernel over a ranks-wide cluster and returns rank 0's result.
func solve(t *testing.T, g *core.WeightedGraph, algo mst.Algorithm, ranks int) *mst.Result {
	t.Helper()
	var res *mst.Result
	err := cluster.Run(ranks, func(c *cluster.Cluster) error {
		var local *core.WeightedGraph
		if c.Root() {
			local = g
		}
		r, err := mst.Compute(c, local, algo)
		if err != nil {
			return err
		}
		if c.Root() {
			res = r
		}

		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, res)

	return res
}

// assertSpanningTree checks the universal MST invariants: V−1 real edges,
// every edge taken from the input (unordered, weight-exact), and acyclicity
// via a disjoint set that ends in one component.
func assertSpanningTree(t *testing.T, vertices int, input []core.Edge, res *mst.Result) {
	t.Helper()

	spanning := res.SpanningEdges()
	require.Len(t, spanning, vertices-1)

	inputSet := map[[3]int32]bool{}
	for _, e := range input {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		inputSet[[3]int32{u, v, e.Weight}] = true
	}

	set, err := dsu.New(vertices)
	require.NoError(t, err)
	var total int64
	for _, e := range spanning {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		assert.True(t, inputSet[[3]int32{u, v, e.Weight}], "edge %v not in input", e)
		assert.NotEqual(t, set.Find(e.From), set.Find(e.To), "edge %v closes a cycle", e)
		set.Union(e.From, e.To)
		total += int64(e.Weight)
	}
	assert.Equal(t, 1, set.Components())
	assert.Equal(t, res.TotalWeight, total)
}

// TestScenarioA_Triangle: V=3, edges 0—1(1), 1—2(2), 0—2(3). Every kernel
// finds weight 3 with edges {0—1, 1—2}.
func TestScenarioA_Triangle(t *testing.T) {
	edges := []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 0, To: 2, Weight: 3},
	}
	for _, algo := range allAlgorithms {
		t.Run(algo.String(), func(t *testing.T) {
			g := buildGraph(t, 3, edges)
			res := solve(t, g, algo, 1)

			assert.Equal(t, int64(3), res.TotalWeight)
			assertSpanningTree(t, 3, edges, res)

			want := map[[2]int32]int32{{0, 1}: 1, {1, 2}: 2}
			for _, e := range res.SpanningEdges() {
				u, v := e.From, e.To
				if u > v {
					u, v = v, u
				}
				w, ok := want[[2]int32{u, v}]
				assert.True(t, ok, "unexpected edge %v", e)
				assert.Equal(t, w, e.Weight)
			}
		})
	}
}

// TestScenarioC_Chain: the whole input is the MST.
func TestScenarioC_Chain(t *testing.T) {
	edges := []core.Edge{
		{From: 0, To: 1, Weight: 10},
		{From: 1, To: 2, Weight: 20},
		{From: 2, To: 3, Weight: 30},
	}
	for _, algo := range allAlgorithms {
		t.Run(algo.String(), func(t *testing.T) {
			g := buildGraph(t, 4, edges)
			res := solve(t, g, algo, 1)
			assert.Equal(t, int64(60), res.TotalWeight)
			assertSpanningTree(t, 4, edges, res)
		})
	}
}

// TestScenarioD_DuplicateWeights: all weights equal; every kernel reports
// weight 15 even though the chosen edge sets may differ.
func TestScenarioD_DuplicateWeights(t *testing.T) {
	edges := []core.Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 1, To: 2, Weight: 5},
		{From: 2, To: 3, Weight: 5},
		{From: 0, To: 3, Weight: 5},
		{From: 0, To: 2, Weight: 5},
	}
	for _, algo := range allAlgorithms {
		t.Run(algo.String(), func(t *testing.T) {
			g := buildGraph(t, 4, edges)
			res := solve(t, g, algo, 1)
			assert.Equal(t, int64(15), res.TotalWeight)
			assertSpanningTree(t, 4, edges, res)
		})
	}
}

// TestScenarioB_GeneratedGrid: a seeded 2×3 maze (V=6, E=7); all four
// kernels agree on the MST weight, and the tree invariants hold.
func TestScenarioB_GeneratedGrid(t *testing.T) {
	build := func() (*core.WeightedGraph, []core.Edge) {
		g, err := maze.Generate(2, 3, maze.WithSeed(662))
		require.NoError(t, err)

		return g, g.Edges()
	}

	ref, input := build()
	require.Equal(t, 6, ref.VertexCount())
	require.Equal(t, 7, ref.EdgeCount())
	refRes := solve(t, ref, mst.Kruskal, 1)
	assertSpanningTree(t, 6, input, refRes)

	for _, algo := range allAlgorithms[1:] {
		t.Run(algo.String(), func(t *testing.T) {
			g, edges := build()
			res := solve(t, g, algo, 1)
			assert.Equal(t, refRes.TotalWeight, res.TotalWeight)
			assertSpanningTree(t, 6, edges, res)
		})
	}
}

// TestScenarioE_RankParity: Kruskal and Borůvka deliver identical weights at
// P=1 and P=4 on the same seeded input.
func TestScenarioE_RankParity(t *testing.T) {
	build := func() *core.WeightedGraph {
		g, err := maze.Generate(4, 5, maze.WithSeed(31))
		require.NoError(t, err)

		return g
	}

	for _, algo := range []mst.Algorithm{mst.Kruskal, mst.Boruvka} {
		t.Run(algo.String(), func(t *testing.T) {
			single := solve(t, build(), algo, 1)
			multi := solve(t, build(), algo, 4)
			assert.Equal(t, single.TotalWeight, multi.TotalWeight)

			input := build()
			assertSpanningTree(t, input.VertexCount(), input.Edges(), multi)
		})
	}
}

// TestCrossAlgorithm_RandomGrids fuzzes moderately sized seeded grids and
// demands weight agreement across all four kernels.
func TestCrossAlgorithm_RandomGrids(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			build := func() *core.WeightedGraph {
				g, err := maze.Generate(6, 7, maze.WithSeed(seed))
				require.NoError(t, err)

				return g
			}
			var weights []int64
			for _, algo := range allAlgorithms {
				res := solve(t, build(), algo, 1)
				weights = append(weights, res.TotalWeight)
			}
			for i := 1; i < len(weights); i++ {
				assert.Equal(t, weights[0], weights[i], "algorithm %s disagrees", allAlgorithms[i])
			}
		})
	}
}

// TestKruskal_SortedOutput verifies Kruskal's edges come out in ascending
// weight order (the sort phase's contract surfaced in the result).
func TestKruskal_SortedOutput(t *testing.T) {
	g, err := maze.Generate(5, 5, maze.WithSeed(12))
	require.NoError(t, err)
	res := solve(t, g, mst.Kruskal, 2)

	for i := 1; i < len(res.Rows); i++ {
		assert.LessOrEqual(t, res.Rows[i-1].Weight, res.Rows[i].Weight)
	}
}

// TestPrim_SentinelRow verifies the Prim variants emit V rows led by the
// synthetic (0,0,0) root entry.
func TestPrim_SentinelRow(t *testing.T) {
	edges := []core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 1, To: 2, Weight: 6},
	}
	for _, algo := range []mst.Algorithm{mst.PrimBinary, mst.PrimFibonacci} {
		t.Run(algo.String(), func(t *testing.T) {
			g := buildGraph(t, 3, edges)
			res := solve(t, g, algo, 1)

			require.Len(t, res.Rows, 3)
			if diff := cmp.Diff(core.Edge{From: 0, To: 0, Weight: 0}, res.Rows[0]); diff != "" {
				t.Fatalf("sentinel row mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, int64(10), res.TotalWeight)
			assert.Len(t, res.SpanningEdges(), 2)
		})
	}
}

// TestCompute_Validation covers the dispatch sentinels.
func TestCompute_Validation(t *testing.T) {
	err := cluster.Run(1, func(c *cluster.Cluster) error {
		if _, err := mst.Compute(c, nil, mst.Algorithm(9)); !assert.ErrorIs(t, err, mst.ErrUnknownAlgorithm) {
			return err
		}
		if _, err := mst.Compute(c, nil, mst.Kruskal); !assert.ErrorIs(t, err, mst.ErrNilGraph) {
			return err
		}

		return nil
	})
	require.NoError(t, err)
}

// TestCompute_Disconnected: two islands cannot span.
func TestCompute_Disconnected(t *testing.T) {
	edges := []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 2, To: 3, Weight: 1},
	}
	for _, algo := range allAlgorithms {
		t.Run(algo.String(), func(t *testing.T) {
			g := buildGraph(t, 4, edges)
			err := cluster.Run(1, func(c *cluster.Cluster) error {
				_, err := mst.Compute(c, g, algo)

				return err
			})
			assert.ErrorIs(t, err, mst.ErrDisconnected)
		})
	}
}

// TestPartitionGuard: 3 edges cannot scatter over 4 ranks.
func TestPartitionGuard(t *testing.T) {
	edges := []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 0, To: 2, Weight: 3},
	}
	for _, algo := range []mst.Algorithm{mst.Kruskal, mst.Boruvka} {
		t.Run(algo.String(), func(t *testing.T) {
			g := buildGraph(t, 3, edges)
			err := cluster.Run(4, func(c *cluster.Cluster) error {
				var local *core.WeightedGraph
				if c.Root() {
					local = g
				}
				_, err := mst.Compute(c, local, algo)

				return err
			})
			assert.ErrorIs(t, err, mst.ErrUnsupportedPartition)
		})
	}
}
