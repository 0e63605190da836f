package linarr

import (
	"errors"
	"fmt"
)

// ErrNotBijection is returned when a position or vertex sequence does not
// describe a bijection between vertices and positions.
var ErrNotBijection = errors.New("arrangement is not a bijection")

// Arrangement is a bijection between the vertices 0..n-1 and the positions
// 0..n-1 of a line. Both directions are stored: PositionOf answers "where is
// vertex v" and VertexAt answers "who sits at position p".
//
// Arrangements are cheap value-like objects owned by whoever created them;
// the solvers never share one across concurrent evaluations.
type Arrangement struct {
	pos    []int // vertex -> position
	vertex []int // position -> vertex
}

// Identity returns the arrangement placing vertex v at position v.
func Identity(n int) *Arrangement {
	pos := make([]int, n)
	vertex := make([]int, n)
	for i := range pos {
		pos[i] = i
		vertex[i] = i
	}
	return &Arrangement{pos: pos, vertex: vertex}
}

// FromOrder builds an arrangement from a left-to-right vertex order:
// order[p] is the vertex at position p. Returns ErrNotBijection if order is
// not a permutation of 0..n-1.
func FromOrder(order []int) (*Arrangement, error) {
	n := len(order)
	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}
	for p, v := range order {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("position %d holds vertex %d: %w", p, v, ErrNotBijection)
		}
		if pos[v] != -1 {
			return nil, fmt.Errorf("vertex %d appears twice: %w", v, ErrNotBijection)
		}
		pos[v] = p
	}
	vertex := make([]int, n)
	copy(vertex, order)
	return &Arrangement{pos: pos, vertex: vertex}, nil
}

// FromPositions builds an arrangement from a vertex-indexed position map:
// positions[v] is where vertex v sits. Returns ErrNotBijection if positions
// is not a permutation of 0..n-1.
func FromPositions(positions []int) (*Arrangement, error) {
	n := len(positions)
	vertex := make([]int, n)
	for i := range vertex {
		vertex[i] = -1
	}
	for v, p := range positions {
		if p < 0 || p >= n {
			return nil, fmt.Errorf("vertex %d at position %d: %w", v, p, ErrNotBijection)
		}
		if vertex[p] != -1 {
			return nil, fmt.Errorf("position %d occupied twice: %w", p, ErrNotBijection)
		}
		vertex[p] = v
	}
	pos := make([]int, n)
	copy(pos, positions)
	return &Arrangement{pos: pos, vertex: vertex}, nil
}

// Len returns n, the number of placed vertices.
func (a *Arrangement) Len() int { return len(a.pos) }

// PositionOf returns the position of vertex v.
func (a *Arrangement) PositionOf(v int) int { return a.pos[v] }

// VertexAt returns the vertex at position p.
func (a *Arrangement) VertexAt(p int) int { return a.vertex[p] }

// Order returns a copy of the left-to-right vertex order.
func (a *Arrangement) Order() []int {
	out := make([]int, len(a.vertex))
	copy(out, a.vertex)
	return out
}

// Positions returns a copy of the vertex-indexed position sequence.
func (a *Arrangement) Positions() []int {
	out := make([]int, len(a.pos))
	copy(out, a.pos)
	return out
}

// Reverse returns the mirrored arrangement: position p becomes n-1-p.
// Crossing counts are invariant under reversal.
func (a *Arrangement) Reverse() *Arrangement {
	n := len(a.pos)
	pos := make([]int, n)
	vertex := make([]int, n)
	for v, p := range a.pos {
		pos[v] = n - 1 - p
		vertex[n-1-p] = v
	}
	return &Arrangement{pos: pos, vertex: vertex}
}

// String formats the arrangement as its vertex order, e.g. "[2 0 1 3]".
func (a *Arrangement) String() string { return fmt.Sprint(a.vertex) }
