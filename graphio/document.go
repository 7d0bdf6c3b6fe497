package graphio

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/mst"
)

// EdgeDocument is the serialized form of one edge.
type EdgeDocument struct {
	From   int32 `yaml:"from" json:"from"`
	To     int32 `yaml:"to" json:"to"`
	Weight int32 `yaml:"weight" json:"weight"`
}

// GraphDocument is the serialized form of a whole graph, the payload the
// HTTP service accepts.
type GraphDocument struct {
	Vertices int            `yaml:"vertices" json:"vertices"`
	Edges    []EdgeDocument `yaml:"edges" json:"edges"`
}

// ResultDocument is the serialized form of a solve: which kernel ran, over
// how many ranks, and what it found.
type ResultDocument struct {
	Algorithm string         `yaml:"algorithm" json:"algorithm"`
	Ranks     int            `yaml:"ranks" json:"ranks"`
	Weight    int64          `yaml:"weight" json:"weight"`
	Edges     []EdgeDocument `yaml:"edges" json:"edges"`
}

// FromGraph builds the document view of g.
func FromGraph(g *core.WeightedGraph) GraphDocument {
	doc := GraphDocument{
		Vertices: g.VertexCount(),
		Edges:    make([]EdgeDocument, 0, g.EdgeCount()),
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeDocument{From: e.From, To: e.To, Weight: e.Weight})
	}

	return doc
}

// ToGraph materializes the document as a flat graph, re-validating every
// endpoint against the declared vertex count.
func (d GraphDocument) ToGraph() (*core.WeightedGraph, error) {
	g, err := core.NewWeightedGraph(d.Vertices, len(d.Edges))
	if err != nil {
		return nil, err
	}
	for i, e := range d.Edges {
		if err = g.SetEdgeAt(i, core.Edge{From: e.From, To: e.To, Weight: e.Weight}); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// FromResult builds the document view of a solve on ranks ranks. The raw
// rows are filtered down to the real spanning edges, so Prim's root sentinel
// never reaches a document.
func FromResult(res *mst.Result, ranks int) ResultDocument {
	spanning := res.SpanningEdges()
	doc := ResultDocument{
		Algorithm: res.Algorithm.String(),
		Ranks:     ranks,
		Weight:    res.TotalWeight,
		Edges:     make([]EdgeDocument, 0, len(spanning)),
	}
	for _, e := range spanning {
		doc.Edges = append(doc.Edges, EdgeDocument{From: e.From, To: e.To, Weight: e.Weight})
	}

	return doc
}

// MarshalGraphYAML serializes g as a YAML graph document.
func MarshalGraphYAML(g *core.WeightedGraph) ([]byte, error) {
	out, err := yaml.Marshal(FromGraph(g))
	if err != nil {
		return nil, fmt.Errorf("graphio: marshal graph: %w", err)
	}

	return out, nil
}

// UnmarshalGraphYAML parses a YAML graph document back into a flat graph.
func UnmarshalGraphYAML(data []byte) (*core.WeightedGraph, error) {
	var doc GraphDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("graphio: unmarshal graph: %w", err)
	}

	return doc.ToGraph()
}

// MarshalResultYAML serializes a solve result as a YAML document.
func MarshalResultYAML(res *mst.Result, ranks int) ([]byte, error) {
	out, err := yaml.Marshal(FromResult(res, ranks))
	if err != nil {
		return nil, fmt.Errorf("graphio: marshal result: %w", err)
	}

	return out, nil
}
