// Package mst implements four interchangeable minimum-spanning-tree kernels
// over the flat edge-list graph of package core, two of them parallelized
// across a bulk-synchronous cluster of ranks.
//
// # Kernels
//
//   - Kruskal: every rank takes part in the parallel sort (scatter, local
//     merge sort, recursive-doubling pairwise merge); rank 0 then runs the
//     classic union-find selection over the globally sorted list.
//   - Prim/Binary and Prim/Fibonacci: single-rank kernels. Rank 0 builds the
//     adjacency list, seeds every vertex at (via=Unset, weight=MaxWeight),
//     decreases vertex 0 to (0,0), and repeatedly pops the frontier minimum,
//     relaxing its neighbors with decrease-key. The first popped row is the
//     synthetic (0,0,0) sentinel; it is kept in the output, so a Prim result
//     carries V rows whose weights still sum to the MST total. All other
//     ranks are no-ops.
//   - Borůvka: every rank keeps a replicated disjoint set. Each round scans
//     the local edge chunk for the lightest edge leaving every component,
//     reduces the per-vertex closest-edge arrays to rank 0 (element-wise
//     min-by-weight, incumbent wins ties), broadcasts the winner back, and
//     applies the unions in lockstep on every rank; rank 0 records the
//     chosen edges. At most ⌈log2 V⌉ rounds run.
//
// # Communication schedule
//
// Compute must be called by every rank of the cluster with the same
// algorithm: the kernels' collective schedules are deterministic, and a rank
// that skips a collective deadlocks its peers. Only rank 0 passes a graph
// and only rank 0 receives a Result; the remaining ranks contribute cycles
// and get (nil, nil).
//
// The scatter refuses edge lists it cannot split sensibly: fewer than
// roughly two edges per rank (E < 2·P−1, unless E == P exactly), or a total
// that P−1 chunks of ⌈E/P⌉ edges already overrun, returns
// ErrUnsupportedPartition on every rank right after the edge-count
// broadcast, before any edge is scattered.
package mst
