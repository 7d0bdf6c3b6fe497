// Package mstkit is a distributed-memory minimum-spanning-tree engine.
//
// 🚀 What is mstkit?
//
//	Four interchangeable MST kernels over one flat edge-list graph, two of
//	them parallelized across a bulk-synchronous in-process cluster:
//
//	  • Kruskal            — parallel merge sort + union-find selection
//	  • Prim / binary      — indexed binary heap with decrease-key
//	  • Prim / Fibonacci   — amortized O(1) decrease-key frontier
//	  • Borůvka            — parallel component-merging rounds
//
// ✨ Why mstkit?
//
//   - Deterministic        — identical weights at any rank count
//   - Measurable           — swap kernels with one selector, same inputs
//   - Self-contained       — ranks are goroutines, no external launcher
//
// Everything is organized under focused subpackages:
//
//	core/     — flat edge-list graph, adjacency list, bitonic merge sort
//	dsu/      — disjoint set with path compression + union by rank
//	binheap/  — indexed binary min-heap
//	fibheap/  — pointer-linked Fibonacci min-heap
//	cluster/  — rank handles, send/receive, broadcast, scatter, reduce
//	mst/      — the four kernels and the run configuration
//	maze/     — grid-maze generation and ASCII rendering
//	graphio/  — text format + YAML/JSON documents
//	service/  — HTTP façade over the engine
//
// Quick start: generate a maze, solve it on four ranks, draw it —
//
//	mstmaze -n -r 8 -c 12 -a 3 -p 4 -m
//
//	go get github.com/katalvlaran/mstkit
package mstkit
