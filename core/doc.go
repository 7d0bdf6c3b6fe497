// Package core defines the flat edge-list graph representation shared by every
// MST kernel in mstkit, together with the two primitives that operate directly
// on it: the adjacency list used by the Prim variants and the stable merge
// sort used by Kruskal's sort phase.
//
// # Representation
//
// A WeightedGraph stores its E undirected edges as a contiguous slice of
// 3·E int32 words — (from, to, weight) triples laid out back to back. The
// flat layout is deliberate: the parallel coordinator scatters and gathers
// raw triple slices between ranks without any per-edge boxing, and the sort
// phase permutes triples in place. Vertex ids are dense integers in [0, V).
//
// An AdjacencyList is the per-vertex view of the same edges: for every graph
// edge (u,v,w), (v,w) appears in list[u] and (u,w) in list[v], so the total
// arc count is exactly 2·E. It is built once before Prim begins and never
// mutated afterwards.
//
// # Sorting
//
// MergeSortEdges is a classic top-down recursive merge sort keyed on the
// weight word of each triple. The merge step uses a bitonic scratch layout —
// the left run copied forward, the right run reversed — so the two inward
// pointers never run off the end of their runs. The sort is stable: on equal
// weights the left run wins.
//
// Complexity: O(E log E) time, O(E) scratch for the sort; O(V + E) memory for
// the adjacency list.
package core
