package mst

import (
	"github.com/katalvlaran/mstkit/cluster"
	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/dsu"
)

// Closest-edge column offsets inside a per-vertex triple.
const (
	closestFrom   = 0
	closestTo     = 1
	closestWeight = 2
)

// newClosestArray allocates the per-component closest-edge buffer: one
// (from, to, weight) triple per vertex, weights at MaxWeight, endpoints at
// Unset, keyed by canonical vertex id.
func newClosestArray(vertices int) []int32 {
	buf := make([]int32, vertices*tripleWidth)
	for v := 0; v < vertices; v++ {
		buf[v*tripleWidth+closestFrom] = core.Unset
		buf[v*tripleWidth+closestTo] = core.Unset
		buf[v*tripleWidth+closestWeight] = core.MaxWeight
	}

	return buf
}

// installClosest records (from,to,w) as the closest edge of the canonical
// vertex root when the slot is empty (MaxWeight) or strictly heavier. Equal
// weights keep the incumbent, which is what makes the reduce operator
// well-defined regardless of combine order.
func installClosest(buf []int32, root, from, to, w int32) {
	base := int(root) * tripleWidth
	if buf[base+closestWeight] == core.MaxWeight || buf[base+closestWeight] > w {
		buf[base+closestFrom] = from
		buf[base+closestTo] = to
		buf[base+closestWeight] = w
	}
}

// combineClosest is the reduce operator: element-wise min-by-weight over the
// per-vertex triples, incumbent kept on ties.
func combineClosest(mine, theirs []int32) []int32 {
	for base := 0; base < len(mine); base += tripleWidth {
		if theirs[base+closestWeight] < mine[base+closestWeight] {
			mine[base+closestFrom] = theirs[base+closestFrom]
			mine[base+closestTo] = theirs[base+closestTo]
			mine[base+closestWeight] = theirs[base+closestWeight]
		}
	}

	return mine
}

// boruvka computes the MST in parallel component-merging rounds.
//
// Steps, per round (at most ⌈log2 V⌉ of them):
//  1. Reset the closest-edge array.
//  2. Scan the local edge chunk: every edge bridging two components tries to
//     install itself as the closest edge of both canonical endpoints.
//  3. Recursive-doubling reduce of the arrays onto rank 0 (min-by-weight),
//     then broadcast the winning array back to every rank.
//  4. Every rank applies the same unions from the broadcast array, keeping
//     the replicated disjoint sets in lockstep; rank 0 also records the
//     chosen edges and their weights.
//
// The outer loop stops once the doubling index reaches V or the tree is
// complete. Rank 0 returns the result; a short tree is ErrDisconnected.
// Complexity: O((E/P)·α(V)·log V) scan work per rank plus O(V log P) reduce
// traffic per round.
func boruvka(c *cluster.Cluster, g *core.WeightedGraph) (*Result, error) {
	// Rank 0 broadcasts the graph shape.
	var vertices, edges int
	if c.Root() {
		vertices = g.VertexCount()
		edges = g.EdgeCount()
	}
	vertices, err := c.BroadcastInt(0, vertices)
	if err != nil {
		return nil, err
	}
	edges, err = c.BroadcastInt(0, edges)
	if err != nil {
		return nil, err
	}

	// Same chunk plan and guard as the sort phase.
	counts, err := planChunks(edges, c.Size())
	if err != nil {
		return nil, err
	}
	var data []int32
	if c.Root() {
		data = g.Data()
	}
	local, err := c.Scatter(0, data, wordCounts(counts))
	if err != nil {
		return nil, err
	}

	// Replicated disjoint set; every rank drives its own copy identically.
	set, err := dsu.New(vertices)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Algorithm: Boruvka,
		Rows:      make([]core.Edge, 0, vertices-1),
	}
	treeEdges := 0

	for round := 1; round < vertices && treeEdges < vertices-1; round *= 2 {
		// 1–2. Closest bridging edge per component, from the local chunk.
		closest := newClosestArray(vertices)
		for i := 0; i < len(local); i += tripleWidth {
			from, to, weight := local[i], local[i+1], local[i+2]
			rootFrom := set.Find(from)
			rootTo := set.Find(to)
			if rootFrom == rootTo {
				continue
			}
			installClosest(closest, rootFrom, from, to, weight)
			installClosest(closest, rootTo, from, to, weight)
		}

		// 3. Fold to rank 0, then share the winning array with everyone.
		combined, err := c.Reduce(closest, combineClosest)
		if err != nil {
			return nil, err
		}
		combined, err = c.Broadcast(0, combined)
		if err != nil {
			return nil, err
		}

		// 4. Identical unions on every rank; edge bookkeeping on rank 0.
		for v := 0; v < vertices; v++ {
			base := v * tripleWidth
			weight := combined[base+closestWeight]
			if weight == core.MaxWeight {
				continue
			}
			from := combined[base+closestFrom]
			to := combined[base+closestTo]
			if set.Find(from) == set.Find(to) {
				continue
			}
			set.Union(from, to)
			treeEdges++
			if c.Root() {
				res.Rows = append(res.Rows, core.Edge{From: from, To: to, Weight: weight})
				res.TotalWeight += int64(weight)
			}
		}
	}

	if !c.Root() {
		return nil, nil
	}
	if treeEdges < vertices-1 {
		return nil, ErrDisconnected
	}

	return res, nil
}
