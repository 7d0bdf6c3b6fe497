package mst

import (
	"github.com/katalvlaran/mstkit/binheap"
	"github.com/katalvlaran/mstkit/cluster"
	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/fibheap"
)

// primQueue is the decrease-key surface the Prim skeleton needs; both heap
// packages satisfy it through the thin adapters below.
type primQueue interface {
	Push(v, via, w int32)
	Pop() (vertex, via, weight int32, ok bool)
	DecreaseKey(v, via, w int32)
	Len() int
}

// binQueue adapts binheap.Heap's Item-returning Pop.
type binQueue struct{ *binheap.Heap }

func (q binQueue) Pop() (int32, int32, int32, bool) {
	it, ok := q.Heap.Pop()

	return it.Vertex, it.Via, it.Weight, ok
}

// fibQueue adapts fibheap.Heap's Item-returning Pop.
type fibQueue struct{ *fibheap.Heap }

func (q fibQueue) Pop() (int32, int32, int32, bool) {
	it, ok := q.Heap.Pop()

	return it.Vertex, it.Via, it.Weight, ok
}

// prim grows the MST from vertex 0 on rank 0; every other rank is a no-op.
// The algorithm parameter picks which heap backs the frontier — the two
// kernels are otherwise identical.
//
// Steps:
//  1. Build the adjacency list from the edge list.
//  2. Seed the heap with every vertex at (via=Unset, weight=MaxWeight), then
//     decrease vertex 0 to (via=0, weight=0).
//  3. Pop the frontier minimum (v, via, w); emit the row (v, via, w) — the
//     very first pop is the synthetic (0,0,0) root sentinel, kept at Rows[0]
//     — then decrease-key every neighbor of v through its connecting edge.
//  4. Drain the heap; the result carries V rows whose weights sum to the
//     MST total because the sentinel weighs 0.
//
// A pop at MaxWeight means some vertex is unreachable from vertex 0:
// ErrDisconnected.
// Complexity: O(E log V) with the binary heap, O(E + V log V) amortized with
// the Fibonacci heap.
func prim(c *cluster.Cluster, g *core.WeightedGraph, algo Algorithm) (*Result, error) {
	if !c.Root() {
		return nil, nil
	}

	vertices := g.VertexCount()

	// 1. Per-vertex view of the edges.
	adj := core.NewAdjacencyList(g)

	// 2. Frontier heap, every vertex unreached.
	var pq primQueue
	switch algo {
	case PrimBinary:
		h, err := binheap.New(vertices)
		if err != nil {
			return nil, err
		}
		pq = binQueue{h}
	default:
		h, err := fibheap.New(vertices)
		if err != nil {
			return nil, err
		}
		pq = fibQueue{h}
	}
	for v := 0; v < vertices; v++ {
		pq.Push(int32(v), core.Unset, core.MaxWeight)
	}
	pq.DecreaseKey(0, 0, 0)

	// 3–4. Drain the frontier.
	res := &Result{
		Algorithm: algo,
		Rows:      make([]core.Edge, 0, vertices),
	}
	for {
		v, via, w, ok := pq.Pop()
		if !ok {
			break
		}
		if w == core.MaxWeight {
			return nil, ErrDisconnected
		}
		res.Rows = append(res.Rows, core.Edge{From: v, To: via, Weight: w})
		res.TotalWeight += int64(w)

		for _, arc := range adj.Neighbors(v) {
			pq.DecreaseKey(arc.To, v, arc.Weight)
		}
	}

	return res, nil
}
