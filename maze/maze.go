package maze

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mstkit/core"
)

// Generate builds the weighted grid graph of a rows×columns maze.
//
// Edges are emitted in row-major cell order, horizontal before vertical: for
// the cell at (row i, column j) with vertex id v = i·columns+j, the edge
// v→v+1 when j < columns−1, then v→v+columns when i < rows−1. Weights are
// uniform in [0, 100). Without WithSeed/WithRand the shared RNG decides.
//
// Returns ErrBadDimensions when either dimension is below 1.
// Complexity: O(rows·columns).
func Generate(rows, columns int, opts ...Option) (*core.WeightedGraph, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("Generate(%d×%d): %w", rows, columns, ErrBadDimensions)
	}

	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	draw := rand.Int31n
	if o.rng != nil {
		draw = o.rng.Int31n
	}

	vertices := rows * columns
	edges := 2*vertices - rows - columns
	g, err := core.NewWeightedGraph(vertices, edges)
	if err != nil {
		return nil, err
	}

	idx := 0
	for i := 0; i < rows; i++ {
		for j := 0; j < columns; j++ {
			v := int32(i*columns + j)
			if j < columns-1 {
				if err = g.SetEdgeAt(idx, core.Edge{From: v, To: v + 1, Weight: draw(weightSpan)}); err != nil {
					return nil, err
				}
				idx++
			}
			if i < rows-1 {
				if err = g.SetEdgeAt(idx, core.Edge{From: v, To: v + int32(columns), Weight: draw(weightSpan)}); err != nil {
					return nil, err
				}
				idx++
			}
		}
	}

	return g, nil
}
