package graph

import (
	"errors"
	"slices"
	"testing"
)

func TestNewUndirected(t *testing.T) {
	g, err := NewUndirected(5)
	if err != nil {
		t.Fatalf("NewUndirected(5) error: %v", err)
	}
	if g.NumVertices() != 5 || g.NumEdges() != 0 {
		t.Errorf("fresh graph: %d vertices, %d edges", g.NumVertices(), g.NumEdges())
	}

	if _, err := NewUndirected(-1); !errors.Is(err, ErrNegativeOrder) {
		t.Errorf("NewUndirected(-1) error = %v, want ErrNegativeOrder", err)
	}
}

func TestUndirectedAddEdge(t *testing.T) {
	g := MustUndirected(4)
	if err := g.AddEdge(2, 0); err != nil {
		t.Fatalf("AddEdge(2, 0) error: %v", err)
	}

	// endpoints stored normalized
	if e := g.Edges()[0]; e.From != 0 || e.To != 2 {
		t.Errorf("edge stored as {%d,%d}, want {0,2}", e.From, e.To)
	}
	if !slices.Contains(g.Neighbors(0), 2) || !slices.Contains(g.Neighbors(2), 0) {
		t.Error("adjacency should be symmetric")
	}
	if g.Degree(0) != 1 || g.Degree(1) != 0 {
		t.Errorf("degrees = %d, %d", g.Degree(0), g.Degree(1))
	}
}

func TestUndirectedAddEdgeErrors(t *testing.T) {
	g := MustUndirected(3)
	if err := g.AddEdge(0, 3); !errors.Is(err, ErrVertexOutOfRange) {
		t.Errorf("AddEdge(0, 3) error = %v, want ErrVertexOutOfRange", err)
	}
	if err := g.AddEdge(-1, 0); !errors.Is(err, ErrVertexOutOfRange) {
		t.Errorf("AddEdge(-1, 0) error = %v, want ErrVertexOutOfRange", err)
	}
	if err := g.AddEdge(1, 1); !errors.Is(err, ErrSelfLoop) {
		t.Errorf("AddEdge(1, 1) error = %v, want ErrSelfLoop", err)
	}
}

func TestUndirectedParallelEdges(t *testing.T) {
	g := MustUndirected(3)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(0, 1)
	if g.NumEdges() != 2 {
		t.Errorf("NumEdges() = %d, want 2", g.NumEdges())
	}
	if g.Degree(0) != 2 {
		t.Errorf("Degree(0) = %d, want 2", g.Degree(0))
	}
}

func TestEdgesIsCopy(t *testing.T) {
	g := MustUndirected(3)
	_ = g.AddEdge(0, 1)
	g.Edges()[0] = Edge{From: 2, To: 1}
	if e := g.Edges()[0]; e.From != 0 || e.To != 1 {
		t.Error("mutating the returned edge slice must not affect the graph")
	}
}

func TestDirected(t *testing.T) {
	g := MustDirected(4)
	if err := g.AddEdge(2, 0); err != nil {
		t.Fatalf("AddEdge(2, 0) error: %v", err)
	}
	_ = g.AddEdge(1, 2)

	// arcs keep their direction
	if e := g.Edges()[0]; e.From != 2 || e.To != 0 {
		t.Errorf("arc stored as %d→%d, want 2→0", e.From, e.To)
	}
	if !slices.Equal(g.OutNeighbors(2), []int{0}) {
		t.Errorf("OutNeighbors(2) = %v", g.OutNeighbors(2))
	}
	if !slices.Equal(g.InNeighbors(2), []int{1}) {
		t.Errorf("InNeighbors(2) = %v", g.InNeighbors(2))
	}

	// the combined neighborhood drives the crossing algorithms
	got := g.Neighbors(2)
	if len(got) != 2 || !slices.Contains(got, 0) || !slices.Contains(got, 1) {
		t.Errorf("Neighbors(2) = %v, want {0, 1}", got)
	}
	if g.Degree(2) != 2 {
		t.Errorf("Degree(2) = %d, want 2", g.Degree(2))
	}
}

func TestDirectedNeighborsCacheInvalidation(t *testing.T) {
	g := MustDirected(3)
	_ = g.AddEdge(0, 1)
	_ = g.Neighbors(0) // populate the cached view
	_ = g.AddEdge(2, 0)

	if got := g.Neighbors(0); len(got) != 2 {
		t.Errorf("Neighbors(0) after AddEdge = %v, want two entries", got)
	}
}

func TestDirectedAddEdgeErrors(t *testing.T) {
	g := MustDirected(2)
	if err := g.AddEdge(0, 2); !errors.Is(err, ErrVertexOutOfRange) {
		t.Errorf("AddEdge(0, 2) error = %v, want ErrVertexOutOfRange", err)
	}
	if err := g.AddEdge(0, 0); !errors.Is(err, ErrSelfLoop) {
		t.Errorf("AddEdge(0, 0) error = %v, want ErrSelfLoop", err)
	}
}
