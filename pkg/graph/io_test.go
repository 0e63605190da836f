package graph

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestGraphRoundTrip(t *testing.T) {
	g := MustUndirected(4)
	_ = g.AddEdge(0, 2)
	_ = g.AddEdge(1, 3)
	_ = g.AddEdge(0, 2) // parallel copies survive serialization

	data, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph() error: %v", err)
	}

	back, err := ReadGraph(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadGraph() error: %v", err)
	}
	if back.NumVertices() != 4 || back.NumEdges() != 3 {
		t.Errorf("round trip: %d vertices, %d edges", back.NumVertices(), back.NumEdges())
	}
	if _, ok := back.(*Undirected); !ok {
		t.Errorf("round trip changed graph type: %T", back)
	}
}

func TestDirectedRoundTrip(t *testing.T) {
	g := MustDirected(3)
	_ = g.AddEdge(2, 0)

	data, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph() error: %v", err)
	}
	if !strings.Contains(string(data), `"directed": true`) {
		t.Errorf("document should mark directed graphs: %s", data)
	}

	back, err := ReadGraph(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadGraph() error: %v", err)
	}
	d, ok := back.(*Directed)
	if !ok {
		t.Fatalf("round trip changed graph type: %T", back)
	}
	if e := d.Edges()[0]; e.From != 2 || e.To != 0 {
		t.Errorf("arc = %d→%d, want 2→0", e.From, e.To)
	}
}

func TestReadGraphRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not json", "nope"},
		{"edge out of range", `{"vertices": 2, "edges": [{"from": 0, "to": 5}]}`},
		{"self loop", `{"vertices": 2, "edges": [{"from": 1, "to": 1}]}`},
		{"negative order", `{"vertices": -3, "edges": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadGraph(strings.NewReader(tt.json)); err == nil {
				t.Error("ReadGraph() should fail")
			}
		})
	}
}

func TestGraphFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	g := Cycle(5)

	if err := WriteGraphFile(g, path); err != nil {
		t.Fatalf("WriteGraphFile() error: %v", err)
	}
	back, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile() error: %v", err)
	}
	if back.NumVertices() != 5 || back.NumEdges() != 5 {
		t.Errorf("round trip: %d vertices, %d edges", back.NumVertices(), back.NumEdges())
	}
}

func TestReadGraphFileMissing(t *testing.T) {
	if _, err := ReadGraphFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("ReadGraphFile() on a missing file should fail")
	}
}

func TestToGraphValidation(t *testing.T) {
	_, err := ToGraph(Document{Vertices: 3, Edges: []Edge{{From: 0, To: 1}, {From: 1, To: 1}}})
	if !errors.Is(err, ErrSelfLoop) {
		t.Errorf("ToGraph() error = %v, want ErrSelfLoop", err)
	}
}

func TestUnmarshalDocument(t *testing.T) {
	d, err := UnmarshalDocument([]byte(`{"vertices": 3, "edges": [{"from": 0, "to": 2}]}`))
	if err != nil {
		t.Fatalf("UnmarshalDocument() error: %v", err)
	}
	if d.Vertices != 3 || len(d.Edges) != 1 {
		t.Errorf("document = %+v", d)
	}
}
