package graph

import (
	"encoding/json"
	"fmt"
)

// Document is the canonical serialization format for graphs.
// Used by the CLI, the HTTP API, and the result cache.
//
// The format is human-readable and designed for round-trip fidelity:
// build → export → re-import produces an identical graph.
type Document struct {
	Vertices int    `json:"vertices" bson:"vertices"`
	Directed bool   `json:"directed,omitempty" bson:"directed,omitempty"`
	Edges    []Edge `json:"edges" bson:"edges"`
}

// FromGraph converts a graph to its serialization format.
// Edges keep insertion order for deterministic output.
func FromGraph(g Graph) Document {
	_, directed := g.(*Directed)
	return Document{
		Vertices: g.NumVertices(),
		Directed: directed,
		Edges:    g.Edges(),
	}
}

// ToGraph converts a Document to a graph, validating every edge.
func ToGraph(d Document) (Graph, error) {
	if d.Directed {
		g, err := NewDirected(d.Vertices)
		if err != nil {
			return nil, err
		}
		for _, e := range d.Edges {
			if err := g.AddEdge(e.From, e.To); err != nil {
				return nil, fmt.Errorf("add arc %d→%d: %w", e.From, e.To, err)
			}
		}
		return g, nil
	}
	g, err := NewUndirected(d.Vertices)
	if err != nil {
		return nil, err
	}
	for _, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("add edge {%d,%d}: %w", e.From, e.To, err)
		}
	}
	return g, nil
}

// UnmarshalDocument deserializes JSON bytes to a Document.
func UnmarshalDocument(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, err
	}
	return d, nil
}
