package mst

import (
	"fmt"

	"github.com/katalvlaran/mstkit/cluster"
	"github.com/katalvlaran/mstkit/core"
)

// tripleWidth mirrors the core layout: one edge is three int32 words.
const tripleWidth = 3

// planChunks derives the deterministic scatter plan every rank computes from
// the broadcast edge total: ⌈E/P⌉ edges per rank, with the last rank trimmed
// to the remainder when the division is uneven.
//
// The guard refuses totals the plan cannot cover — fewer than roughly two
// edges per rank (E < 2·P−1), unless E equals P exactly, which degenerates
// to one edge everywhere — and any total where P−1 full chunks already
// exceed E (for example E=11, P=5). Because E and P are identical on every
// rank, the guard fires on all of them at once, after the edge-count
// broadcast and before any edge is scattered.
func planChunks(edges, ranks int) ([]int, error) {
	if edges < 2*ranks-1 && edges != ranks {
		return nil, fmt.Errorf("planChunks(E=%d, P=%d): %w", edges, ranks, ErrUnsupportedPartition)
	}

	chunk := (edges + ranks - 1) / ranks
	counts := make([]int, ranks)
	for r := 0; r < ranks-1; r++ {
		counts[r] = chunk
	}
	counts[ranks-1] = edges - chunk*(ranks-1)
	if counts[ranks-1] < 0 {
		return nil, fmt.Errorf("planChunks(E=%d, P=%d): %w", edges, ranks, ErrUnsupportedPartition)
	}

	return counts, nil
}

// wordCounts converts an edge-count plan to int32-word counts for Scatter.
func wordCounts(counts []int) []int {
	words := make([]int, len(counts))
	for i, n := range counts {
		words[i] = n * tripleWidth
	}

	return words
}

// parallelSort sorts g's edge list by ascending weight across the cluster.
//
// Steps:
//  1. Rank 0 broadcasts E.
//  2. Every rank derives the same chunk plan; the partition guard applies.
//  3. Rank 0 scatters the triples; the last rank holds the trimmed chunk.
//  4. Each rank merge-sorts its chunk locally.
//  5. Recursive-doubling pairwise merge folds the runs onto rank 0, which
//     swaps the merged list into the graph.
//
// On a single-rank cluster this degenerates to the sequential sort. Only
// rank 0 consults g; the other ranks pass nil.
func parallelSort(c *cluster.Cluster, g *core.WeightedGraph) error {
	var edges int
	if c.Root() {
		edges = g.EdgeCount()
	}
	edges, err := c.BroadcastInt(0, edges)
	if err != nil {
		return err
	}

	counts, err := planChunks(edges, c.Size())
	if err != nil {
		return err
	}

	if c.Size() == 1 {
		core.SortGraph(g)

		return nil
	}

	var data []int32
	if c.Root() {
		data = g.Data()
	}
	chunk, err := c.Scatter(0, data, wordCounts(counts))
	if err != nil {
		return err
	}

	if n := len(chunk) / tripleWidth; n > 1 {
		core.MergeSortEdges(chunk, 0, n-1)
	}

	merged, err := c.Reduce(chunk, core.MergeSortedRuns)
	if err != nil {
		return err
	}
	if !c.Root() {
		return nil
	}

	return g.ReplaceData(merged)
}
