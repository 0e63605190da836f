package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrVertexOutOfRange is returned by AddEdge when an endpoint is not in 0..n-1.
	ErrVertexOutOfRange = errors.New("vertex out of range")

	// ErrSelfLoop is returned by AddEdge for an edge with equal endpoints.
	// The crossing definition assumes no self-loops exist.
	ErrSelfLoop = errors.New("self-loops are not allowed")

	// ErrNegativeOrder is returned by the constructors for a negative vertex count.
	ErrNegativeOrder = errors.New("vertex count must be non-negative")
)

// Edge is an edge between two vertices. For undirected graphs the pair is
// stored with From < To; for directed graphs From is the tail and To the head.
type Edge struct {
	From int `json:"from" bson:"from"`
	To   int `json:"to" bson:"to"`
}

// Graph is the read-only view the crossing algorithms need: vertex count,
// edge enumeration, and adjacency. Directed graphs expose their combined
// (out + in) neighborhood through Neighbors, since edge direction does not
// affect whether two edges cross.
type Graph interface {
	// NumVertices returns n, the number of vertices.
	NumVertices() int

	// NumEdges returns the number of edges.
	NumEdges() int

	// Neighbors returns the vertices adjacent to u. The returned slice is a
	// read-only view; callers must not modify it.
	Neighbors(u int) []int

	// Degree returns len(Neighbors(u)).
	Degree(u int) int

	// Edges returns all edges. The slice is a copy.
	Edges() []Edge
}

// Undirected is an undirected graph over vertices 0..n-1 backed by
// adjacency lists. The zero value is an empty graph with no vertices;
// use NewUndirected to create a graph of a given order.
type Undirected struct {
	adj   [][]int
	edges []Edge
}

// NewUndirected creates an undirected graph with n vertices and no edges.
func NewUndirected(n int) (*Undirected, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}
	return &Undirected{adj: make([][]int, n)}, nil
}

// MustUndirected is NewUndirected for known-good orders; it panics on error.
// Intended for fixtures and examples.
func MustUndirected(n int) *Undirected {
	g, err := NewUndirected(n)
	if err != nil {
		panic(err)
	}
	return g
}

// AddEdge adds the undirected edge {u, v}. Parallel edges are allowed,
// matching the counting semantics of the algorithms (each copy can cross
// independently). Returns ErrSelfLoop or ErrVertexOutOfRange on bad input.
func (g *Undirected) AddEdge(u, v int) error {
	if err := g.checkEndpoints(u, v); err != nil {
		return err
	}
	if u > v {
		u, v = v, u
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.edges = append(g.edges, Edge{From: u, To: v})
	return nil
}

func (g *Undirected) checkEndpoints(u, v int) error {
	n := len(g.adj)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("edge {%d,%d} in graph of order %d: %w", u, v, n, ErrVertexOutOfRange)
	}
	if u == v {
		return fmt.Errorf("edge {%d,%d}: %w", u, v, ErrSelfLoop)
	}
	return nil
}

// NumVertices returns the number of vertices.
func (g *Undirected) NumVertices() int { return len(g.adj) }

// NumEdges returns the number of edges.
func (g *Undirected) NumEdges() int { return len(g.edges) }

// Neighbors returns the adjacency list of u as a read-only view.
func (g *Undirected) Neighbors(u int) []int { return g.adj[u] }

// Degree returns the degree of u.
func (g *Undirected) Degree(u int) int { return len(g.adj[u]) }

// Edges returns a copy of the edge list.
func (g *Undirected) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Directed is a directed graph over vertices 0..n-1. Crossing counts ignore
// direction, so Neighbors returns out-neighbors followed by in-neighbors.
type Directed struct {
	out      [][]int
	in       [][]int
	combined [][]int // lazily built out+in view per vertex
	edges    []Edge
}

// NewDirected creates a directed graph with n vertices and no edges.
func NewDirected(n int) (*Directed, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}
	return &Directed{
		out:      make([][]int, n),
		in:       make([][]int, n),
		combined: make([][]int, n),
	}, nil
}

// MustDirected is NewDirected for known-good orders; it panics on error.
func MustDirected(n int) *Directed {
	g, err := NewDirected(n)
	if err != nil {
		panic(err)
	}
	return g
}

// AddEdge adds the arc u→v. Returns ErrSelfLoop or ErrVertexOutOfRange on
// bad input.
func (g *Directed) AddEdge(u, v int) error {
	n := len(g.out)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("arc %d→%d in graph of order %d: %w", u, v, n, ErrVertexOutOfRange)
	}
	if u == v {
		return fmt.Errorf("arc %d→%d: %w", u, v, ErrSelfLoop)
	}
	g.out[u] = append(g.out[u], v)
	g.in[v] = append(g.in[v], u)
	g.combined[u] = nil
	g.combined[v] = nil
	g.edges = append(g.edges, Edge{From: u, To: v})
	return nil
}

// NumVertices returns the number of vertices.
func (g *Directed) NumVertices() int { return len(g.out) }

// NumEdges returns the number of arcs.
func (g *Directed) NumEdges() int { return len(g.edges) }

// OutNeighbors returns the out-neighbors of u as a read-only view.
func (g *Directed) OutNeighbors(u int) []int { return g.out[u] }

// InNeighbors returns the in-neighbors of u as a read-only view.
func (g *Directed) InNeighbors(u int) []int { return g.in[u] }

// Neighbors returns the combined out+in neighborhood of u. The view is
// cached until the next AddEdge touching u.
func (g *Directed) Neighbors(u int) []int {
	if g.combined[u] == nil {
		c := make([]int, 0, len(g.out[u])+len(g.in[u]))
		c = append(c, g.out[u]...)
		c = append(c, g.in[u]...)
		g.combined[u] = c
	}
	return g.combined[u]
}

// Degree returns the total degree (in + out) of u.
func (g *Directed) Degree(u int) int { return len(g.out[u]) + len(g.in[u]) }

// Edges returns a copy of the arc list.
func (g *Directed) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

var (
	_ Graph = (*Undirected)(nil)
	_ Graph = (*Directed)(nil)
)
