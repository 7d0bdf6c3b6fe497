package maze

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mstkit/core"
)

// Rendering glyphs.
const (
	glyphCell       = '+'
	glyphHorizontal = '-'
	glyphVertical   = '|'
	glyphEmpty      = ' '
)

// Render draws an MST over the rows×columns grid as an ASCII maze of
// (2·rows−1)×(2·columns−1) characters: `+` at every even row and even
// column, `-` between horizontally joined cells, `|` between vertically
// joined cells, spaces elsewhere. Zero-weight self-loops (the Prim root
// sentinel) are skipped; any other edge that joins no neighboring cell pair
// is ErrNotGridEdge.
//
// Complexity: O(rows·columns + |edges|).
func Render(rows, columns int, edges []core.Edge) (string, error) {
	if rows < 1 || columns < 1 {
		return "", fmt.Errorf("Render(%d×%d): %w", rows, columns, ErrBadDimensions)
	}

	height := 2*rows - 1
	width := 2*columns - 1
	canvas := make([][]byte, height)
	for y := range canvas {
		canvas[y] = make([]byte, width)
		for x := range canvas[y] {
			if y%2 == 0 && x%2 == 0 {
				canvas[y][x] = glyphCell
			} else {
				canvas[y][x] = glyphEmpty
			}
		}
	}

	last := int32(rows*columns - 1)
	for _, e := range edges {
		u, v := e.From, e.To
		if u == v && e.Weight == 0 {
			// Root sentinel row.
			continue
		}
		if u > v {
			u, v = v, u
		}
		if u < 0 || v > last {
			return "", fmt.Errorf("Render: edge %d→%d: %w", e.From, e.To, ErrNotGridEdge)
		}

		row := int(u) / columns
		col := int(u) % columns
		switch {
		case v == u+1 && col < columns-1:
			canvas[2*row][2*col+1] = glyphHorizontal
		case v == u+int32(columns):
			canvas[2*row+1][2*col] = glyphVertical
		default:
			return "", fmt.Errorf("Render: edge %d→%d: %w", e.From, e.To, ErrNotGridEdge)
		}
	}

	var sb strings.Builder
	sb.Grow(height * (width + 1))
	for y := range canvas {
		sb.Write(canvas[y])
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}
