package core

// MergeSortEdges sorts the triples of data between edge indices start and end
// (both inclusive) by ascending weight, stably. It is the sequential sort
// used on each rank's local chunk during Kruskal's parallel sort phase.
//
// Steps:
//  1. Split the [start,end] range at its midpoint.
//  2. Recurse into both halves.
//  3. Merge the two sorted runs with mergeEdges.
//
// Complexity: O(n log n) time, O(n) scratch per merge, n = end−start+1.
func MergeSortEdges(data []int32, start, end int) {
	if start >= end {
		return
	}
	mid := (start + end) / 2
	MergeSortEdges(data, start, mid)
	MergeSortEdges(data, mid+1, end)
	mergeEdges(data, start, mid, end)
}

// SortGraph sorts an entire graph's edge list in place by ascending weight.
// Convenience wrapper over MergeSortEdges for single-rank callers.
func SortGraph(g *WeightedGraph) {
	if g.EdgeCount() > 1 {
		MergeSortEdges(g.Data(), 0, g.EdgeCount()-1)
	}
}

// MergeSortedRuns merges two independently sorted triple slices into one
// sorted slice. The parallel coordinator uses it at every recursive-doubling
// step: the receiver appends the neighbor's chunk to its own and merges.
// Stability: on equal weights the left run (a) wins.
// Complexity: O(|a|+|b|) time and memory.
func MergeSortedRuns(a, b []int32) []int32 {
	if len(b) == 0 {
		return a
	}
	if len(a) == 0 {
		return b
	}
	buf := make([]int32, 0, len(a)+len(b))
	buf = append(buf, a...)
	buf = append(buf, b...)
	mergeEdges(buf, 0, len(a)/tripleWidth-1, len(buf)/tripleWidth-1)

	return buf
}

// mergeEdges merges the sorted runs [start,mid] and [mid+1,end] of data.
//
// The scratch buffer uses a bitonic copy layout: the left run is copied
// forward, the right run reversed, so the sequence rises then falls. The two
// cursors then walk inward from both ends; each end acts as the other's
// sentinel, so neither cursor needs an exhaustion check. Only the tie rule
// consults which run the left cursor currently sits in.
func mergeEdges(data []int32, start, mid, end int) {
	n := end - start + 1
	tmp := make([]int32, n*tripleWidth)

	// Left run forward.
	for i := start; i <= mid; i++ {
		copy(tmp[(i-start)*tripleWidth:], data[i*tripleWidth:(i+1)*tripleWidth])
	}
	// Right run reversed onto the tail.
	for i := mid + 1; i <= end; i++ {
		copy(tmp[(end-i+mid-start+1)*tripleWidth:], data[i*tripleWidth:(i+1)*tripleWidth])
	}

	// Two cursors close in. Ties prefer the left cursor while it is still in
	// the left run; once it has crossed into the reversed right run, ties go
	// to the right cursor, which holds the earlier right-run triple. Either
	// way the sort stays stable (equal weights keep their input order).
	lo, hi := 0, n-1
	leftLen := mid - start + 1
	for k := start; k <= end; k++ {
		var src int
		wLo, wHi := tmp[lo*tripleWidth+offWeight], tmp[hi*tripleWidth+offWeight]
		if wLo < wHi || (wLo == wHi && lo < leftLen) {
			src = lo
			lo++
		} else {
			src = hi
			hi--
		}
		copy(data[k*tripleWidth:(k+1)*tripleWidth], tmp[src*tripleWidth:(src+1)*tripleWidth])
	}
}
