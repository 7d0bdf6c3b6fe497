// Package mst defines the algorithm selector, run configuration, sentinel
// errors, and result type shared by the four MST kernels.
package mst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstkit/core"
)

// Sentinel errors for MST computation.
var (
	// ErrNilGraph indicates rank 0 was handed no graph.
	ErrNilGraph = errors.New("mst: rank 0 requires a non-nil graph")

	// ErrUnknownAlgorithm indicates an algorithm number outside [0,3].
	ErrUnknownAlgorithm = errors.New("mst: unknown algorithm")

	// ErrUnsupportedPartition indicates an edge count the scatter cannot
	// split over the rank count (fewer than roughly two edges per rank).
	ErrUnsupportedPartition = errors.New("mst: edge list cannot be partitioned over this many ranks")

	// ErrDisconnected indicates the input graph has no spanning tree.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrBadConfigFrame indicates a configuration broadcast of the wrong shape.
	ErrBadConfigFrame = errors.New("mst: malformed configuration frame")
)

// Algorithm selects one of the four MST kernels. The numeric values are the
// CLI's `-a` surface and the wire value of the configuration broadcast.
type Algorithm int32

const (
	// Kruskal sorts all edges in parallel, then selects on rank 0.
	Kruskal Algorithm = iota

	// PrimFibonacci grows the tree on rank 0 with a Fibonacci heap.
	PrimFibonacci

	// PrimBinary grows the tree on rank 0 with an indexed binary heap.
	PrimBinary

	// Boruvka merges components in parallel rounds across all ranks.
	Boruvka
)

// algorithmNames indexes String() by Algorithm value.
var algorithmNames = [...]string{"kruskal", "prim-fibonacci", "prim-binary", "boruvka"}

// String returns the lower-case kernel name, or "unknown" off-range.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return "unknown"
	}

	return algorithmNames[a]
}

// Valid reports whether a names one of the four kernels.
func (a Algorithm) Valid() bool { return a >= Kruskal && a <= Boruvka }

// ParseAlgorithm maps a numeric selector to an Algorithm.
// Returns ErrUnknownAlgorithm off-range.
func ParseAlgorithm(n int) (Algorithm, error) {
	a := Algorithm(n)
	if !a.Valid() {
		return 0, fmt.Errorf("ParseAlgorithm(%d): %w", n, ErrUnknownAlgorithm)
	}

	return a, nil
}

// Result is the MST a kernel reports on rank 0.
//
// Rows holds the kernel's raw output rows in emission order. The Prim
// variants emit V rows whose first entry is the synthetic (0,0,0) root
// sentinel; Kruskal and Borůvka emit exactly the spanning edges. Weight
// totals are unaffected either way because the sentinel weighs 0.
type Result struct {
	// Algorithm is the kernel that produced this result.
	Algorithm Algorithm

	// Rows are the raw output rows, sentinel included for Prim.
	Rows []core.Edge

	// TotalWeight is the MST weight, accumulated in int64.
	TotalWeight int64
}

// SpanningEdges returns the real tree edges: Rows minus any zero-weight
// self-loop sentinels. For a connected V-vertex input this has V−1 entries.
func (r *Result) SpanningEdges() []core.Edge {
	out := make([]core.Edge, 0, len(r.Rows))
	for _, e := range r.Rows {
		if e.From == e.To && e.Weight == 0 {
			continue
		}
		out = append(out, e)
	}

	return out
}
