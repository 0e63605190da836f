package graph

import "testing"

func TestFamilies(t *testing.T) {
	tests := []struct {
		name      string
		g         *Undirected
		vertices  int
		edges     int
	}{
		{"path", Path(5), 5, 4},
		{"path of one", Path(1), 1, 0},
		{"cycle", Cycle(5), 5, 5},
		{"cycle of two is a path", Cycle(2), 2, 1},
		{"star", Star(6), 6, 5},
		{"star of one", Star(1), 1, 0},
		{"complete", Complete(5), 5, 10},
		{"empty complete", Complete(0), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.g.NumVertices() != tt.vertices {
				t.Errorf("NumVertices() = %d, want %d", tt.g.NumVertices(), tt.vertices)
			}
			if tt.g.NumEdges() != tt.edges {
				t.Errorf("NumEdges() = %d, want %d", tt.g.NumEdges(), tt.edges)
			}
		})
	}
}

func TestStarCenter(t *testing.T) {
	g := Star(5)
	if g.Degree(0) != 4 {
		t.Errorf("center degree = %d, want 4", g.Degree(0))
	}
	for v := 1; v < 5; v++ {
		if g.Degree(v) != 1 {
			t.Errorf("leaf %d degree = %d, want 1", v, g.Degree(v))
		}
	}
}
