// Package graphio reads and writes weighted graphs in the engine's plain
// text format and serializes graphs and solve results as YAML/JSON
// documents.
//
// # Text format
//
// Whitespace-separated decimal ASCII: a `<V> <E>` header line followed by E
// lines of `<from> <to> <weight>`. This is the on-disk format the maze
// generator emits and the solver reads back; it survives round trips
// tuple-for-tuple.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/mstkit/core"
)

// Sentinel errors for graph I/O.
var (
	// ErrBadHeader indicates an unreadable `<V> <E>` header line.
	ErrBadHeader = errors.New("graphio: malformed graph header")

	// ErrBadEdge indicates an unreadable edge line.
	ErrBadEdge = errors.New("graphio: malformed edge line")
)

// Read parses a graph from the text format.
//
// Steps:
//  1. Scan the `<V> <E>` header.
//  2. Allocate the flat graph and scan E `<from> <to> <weight>` triples.
//
// Returns ErrBadHeader / ErrBadEdge on parse failures, wrapping any
// underlying read error.
// Complexity: O(E).
func Read(r io.Reader) (*core.WeightedGraph, error) {
	br := bufio.NewReader(r)

	var vertices, edges int
	if _, err := fmt.Fscan(br, &vertices, &edges); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadHeader, err)
	}

	g, err := core.NewWeightedGraph(vertices, edges)
	if err != nil {
		return nil, err
	}

	var from, to, weight int32
	for i := 0; i < edges; i++ {
		if _, err = fmt.Fscan(br, &from, &to, &weight); err != nil {
			return nil, fmt.Errorf("%w (edge %d): %w", ErrBadEdge, i, err)
		}
		if err = g.SetEdgeAt(i, core.Edge{From: from, To: to, Weight: weight}); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Write emits g in the text format.
// Complexity: O(E).
func Write(w io.Writer, g *core.WeightedGraph) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d %d\n", g.VertexCount(), g.EdgeCount()); err != nil {
		return fmt.Errorf("graphio: write header: %w", err)
	}
	data := g.Data()
	for i := 0; i < len(data); i += 3 {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", data[i], data[i+1], data[i+2]); err != nil {
			return fmt.Errorf("graphio: write edge %d: %w", i/3, err)
		}
	}

	return bw.Flush()
}

// ReadFile reads a graph from path via Read.
func ReadFile(path string) (*core.WeightedGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %q: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// WriteFile writes a graph to path via Write, creating or truncating it.
func WriteFile(path string, g *core.WeightedGraph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %q: %w", path, err)
	}
	if err = Write(f, g); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
