package mst

import (
	"fmt"

	"github.com/katalvlaran/mstkit/cluster"
	"github.com/katalvlaran/mstkit/core"
)

// Compute dispatches the selected kernel. Every rank of the cluster must
// call Compute with the same algorithm; only rank 0 passes the graph and
// only rank 0 receives a non-nil Result.
//
// Error Conditions:
//   - ErrUnknownAlgorithm      : algo is not one of the four kernels.
//   - ErrNilGraph              : rank 0 passed a nil graph.
//   - ErrUnsupportedPartition  : the edge list cannot be scattered over the
//     rank count (parallel kernels only).
//   - ErrDisconnected          : the input has no spanning tree (rank 0).
func Compute(c *cluster.Cluster, g *core.WeightedGraph, algo Algorithm) (*Result, error) {
	if !algo.Valid() {
		return nil, fmt.Errorf("Compute(%d): %w", algo, ErrUnknownAlgorithm)
	}
	if c.Root() && g == nil {
		return nil, fmt.Errorf("Compute(%s): %w", algo, ErrNilGraph)
	}

	switch algo {
	case Kruskal:
		return kruskal(c, g)
	case Boruvka:
		return boruvka(c, g)
	default:
		return prim(c, g, algo)
	}
}
