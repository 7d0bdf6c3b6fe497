package mst

import (
	"github.com/katalvlaran/mstkit/cluster"
	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/dsu"
)

// kruskal computes the MST by sorting all edges across the cluster, then
// running the union-find selection on rank 0.
//
// Steps:
//  1. All ranks: parallel sort (scatter, local sort, pairwise merge).
//  2. Rank 0: scan the sorted list ascending; an edge whose endpoints lie in
//     different components joins the tree and unions them.
//  3. Stop at V−1 edges or list exhaustion; fewer means a disconnected input.
//
// The MST edges come out in increasing weight order.
// Complexity: O((E/P) log E) sort work per rank + O(E·α(V)) selection.
func kruskal(c *cluster.Cluster, g *core.WeightedGraph) (*Result, error) {
	// 1. Every rank takes part in the sort phase.
	if err := parallelSort(c, g); err != nil {
		return nil, err
	}
	if !c.Root() {
		return nil, nil
	}

	// 2. Selection runs on rank 0 only, over the globally sorted list.
	vertices := g.VertexCount()
	set, err := dsu.New(vertices)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Algorithm: Kruskal,
		Rows:      make([]core.Edge, 0, vertices-1),
	}
	data := g.Data()
	for i := 0; i < len(data) && len(res.Rows) < vertices-1; i += tripleWidth {
		from, to, weight := data[i], data[i+1], data[i+2]
		if set.Find(from) == set.Find(to) {
			continue
		}
		set.Union(from, to)
		res.Rows = append(res.Rows, core.Edge{From: from, To: to, Weight: weight})
		res.TotalWeight += int64(weight)
	}

	// 3. A short tree means no spanning tree exists.
	if len(res.Rows) < vertices-1 {
		return nil, ErrDisconnected
	}

	return res, nil
}
