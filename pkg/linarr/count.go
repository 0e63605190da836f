package linarr

import (
	"fmt"
	"math"

	"github.com/linarr-project/linarr/pkg/graph"
)

// noBound disables early termination in the shared evaluator cores: a
// running count can never exceed it.
const noBound uint64 = math.MaxUint64

// checkFit panics when the arrangement does not place exactly the vertices
// of g. Mixing a graph with a foreign arrangement is a programming error,
// not a runtime condition, so it fails loudly instead of returning garbage.
func checkFit(g graph.Graph, arr *Arrangement) {
	if g.NumVertices() != arr.Len() {
		panic(fmt.Sprintf("linarr: arrangement places %d vertices, graph has %d", arr.Len(), g.NumVertices()))
	}
}

// ============================================================================
// Exact evaluation
// ============================================================================

// Count returns the number of edge crossings of g under arr. It picks the
// evaluator with the best asymptotic cost (CountDynProg) and allocates a
// throwaway workspace; batch callers should hold a Workspace and use its
// CountDynProg method instead.
func Count(g graph.Graph, arr *Arrangement) uint64 {
	return NewWorkspace().CountDynProg(g, arr)
}

// CountBruteForce counts crossings by walking, for every edge, the
// positions strictly between its endpoints and counting the edges that
// escape past the right endpoint. No scratch storage is needed; cost is
// O(n*m) in the worst case.
func CountBruteForce(g graph.Graph, arr *Arrangement) uint64 {
	checkFit(g, arr)
	c, _ := bruteForceEval(g, arr, noBound)
	return c
}

// CountDynProg counts crossings with the quadratic prefix-count algorithm,
// using a throwaway workspace.
func CountDynProg(g graph.Graph, arr *Arrangement) uint64 {
	return NewWorkspace().CountDynProg(g, arr)
}

// CountDynProg counts crossings with the quadratic prefix-count algorithm,
// reusing the workspace's scratch matrices.
func (w *Workspace) CountDynProg(g graph.Graph, arr *Arrangement) uint64 {
	checkFit(g, arr)
	if g.NumVertices() < 4 {
		return 0
	}
	c, _ := dynProgEval(w, g, arr, noBound)
	return c
}

// CountPairs counts crossings by testing every unordered pair of
// independent edges for interleaving endpoints. Quadratic in the number of
// edges; it is the definition written as code and serves as the reference
// the other evaluators are checked against.
func CountPairs(g graph.Graph, arr *Arrangement) uint64 {
	checkFit(g, arr)
	var c uint64
	graph.EdgePairs(g, func(p graph.EdgePair) bool {
		if interleave(arr, p.First, p.Second) {
			c++
		}
		return true
	})
	return c
}

// CountBatch evaluates one graph against many arrangements, sharing a
// single workspace across the whole batch.
func CountBatch(g graph.Graph, arrs []*Arrangement) []uint64 {
	w := NewWorkspace()
	out := make([]uint64, len(arrs))
	for i, arr := range arrs {
		out[i] = w.CountDynProg(g, arr)
	}
	return out
}

// ============================================================================
// Bounded evaluation
// ============================================================================

// IsCountLessEq reports whether the crossing count of g under arr is at
// most bound, stopping as soon as the running count exceeds it. On
// VerdictLE the decision carries the exact count.
func IsCountLessEq(g graph.Graph, arr *Arrangement, bound uint64) Decision {
	return NewWorkspace().IsCountLessEqDynProg(g, arr, bound)
}

// IsCountLessEqBruteForce is the bounded form of CountBruteForce.
func IsCountLessEqBruteForce(g graph.Graph, arr *Arrangement, bound uint64) Decision {
	checkFit(g, arr)
	c, within := bruteForceEval(g, arr, bound)
	if !within {
		return decidedGT()
	}
	return decidedLE(c)
}

// IsCountLessEqDynProg is the bounded form of CountDynProg.
func IsCountLessEqDynProg(g graph.Graph, arr *Arrangement, bound uint64) Decision {
	return NewWorkspace().IsCountLessEqDynProg(g, arr, bound)
}

// IsCountLessEqDynProg is the bounded form of CountDynProg, reusing the
// workspace's scratch matrices.
func (w *Workspace) IsCountLessEqDynProg(g graph.Graph, arr *Arrangement, bound uint64) Decision {
	checkFit(g, arr)
	if g.NumVertices() < 4 {
		return decidedLE(0)
	}
	c, within := dynProgEval(w, g, arr, bound)
	if !within {
		return decidedGT()
	}
	return decidedLE(c)
}

// IsCountLessEqBatch evaluates one graph against many arrangements under a
// shared bound, reusing one workspace.
func IsCountLessEqBatch(g graph.Graph, arrs []*Arrangement, bound uint64) []Decision {
	w := NewWorkspace()
	out := make([]Decision, len(arrs))
	for i, arr := range arrs {
		out[i] = w.IsCountLessEqDynProg(g, arr, bound)
	}
	return out
}

// ============================================================================
// Evaluator cores
// ============================================================================

// interleave reports whether two independent edges cross under arr: their
// position intervals overlap without one nesting inside the other.
func interleave(arr *Arrangement, e, f graph.Edge) bool {
	a, b := arr.PositionOf(e.From), arr.PositionOf(e.To)
	if a > b {
		a, b = b, a
	}
	c, d := arr.PositionOf(f.From), arr.PositionOf(f.To)
	if c > d {
		c, d = d, c
	}
	if a > c {
		b, c, d = d, a, b
	}
	return c < b && b < d
}

// bruteForceEval is the shared core of CountBruteForce and its bounded
// form. It returns the count and true, or (0, false) once the running
// count exceeds bound.
//
// For every edge {u,v} with pos(u) < pos(v) it visits each vertex w seated
// strictly between them; an edge at w crosses {u,v} exactly when its other
// endpoint sits strictly right of v, and that orientation counts each
// crossing pair once.
func bruteForceEval(g graph.Graph, arr *Arrangement, bound uint64) (uint64, bool) {
	n := g.NumVertices()
	var c uint64
	for u := 0; u < n; u++ {
		pu := arr.PositionOf(u)
		for _, v := range g.Neighbors(u) {
			pv := arr.PositionOf(v)
			if pu >= pv {
				continue
			}
			for pw := pu + 1; pw < pv; pw++ {
				w := arr.VertexAt(pw)
				for _, z := range g.Neighbors(w) {
					if arr.PositionOf(z) > pv {
						c++
						if c > bound {
							return 0, false
						}
					}
				}
			}
		}
	}
	return c, true
}

// dynProgEval is the shared core of CountDynProg and its bounded form.
// Callers guarantee n >= 4.
//
// It builds two (n-3)x(n-3) matrices over positions. M[p][j] counts, for
// the vertex seated at position p+1, its incident edge endpoints seated at
// position j+3 or later. K is the column-wise suffix sum of M truncated at
// the diagonal, so K[p][j] counts endpoints that leave the open position
// range (p, j+2] rightward past position j+2. Each edge with endpoint
// positions pu < pv then contributes K[pu][pv-2]: the number of edges that
// enter the strict inside of its span and exit past its right endpoint,
// which is exactly the number of crossings charged to it.
func dynProgEval(w *Workspace, g graph.Graph, arr *Arrangement, bound uint64) (uint64, bool) {
	n := g.NumVertices()
	neigh, mk := w.evalBuffers(n)
	d := n - 3
	M := mk[:d*d]
	K := mk[d*d:]
	for i := range neigh {
		neigh[i] = 0
	}
	for i := range K {
		K[i] = 0
	}

	u0 := arr.VertexAt(0)
	u1 := arr.VertexAt(1)

	for pu := 0; pu < d; pu++ {
		u := arr.VertexAt(pu + 1)
		for _, v := range g.Neighbors(u) {
			neigh[v]++
		}

		// k tracks the endpoints of u's edges not yet passed while
		// sweeping left to right; the first two positions never bound a
		// crossing span from the right, so they are discounted up front.
		k := uint64(g.Degree(u))
		k -= uint64(neigh[u0] + neigh[u1])
		neigh[u0], neigh[u1] = 0, 0

		for i := 3; i < n; i++ {
			ui := arr.VertexAt(i - 1)
			k -= uint64(neigh[ui])
			M[pu*d+i-3] = k
			neigh[ui] = 0
		}

		// the vertex at the last position is never swept, so its slot may
		// still hold a count; it is cleared with the rest on the next call
		neigh[arr.VertexAt(n-1)] = 0
	}

	// K[i][j] = M[i][j] + K[i+1][j]; entries below the diagonal stay zero,
	// which terminates each column's suffix sum at the right row.
	K[(d-1)*d+(d-1)] = M[(d-1)*d+(d-1)]
	for i := d - 2; i >= 0; i-- {
		for j := i; j < d; j++ {
			K[i*d+j] = M[i*d+j] + K[(i+1)*d+j]
		}
	}

	var c uint64
	for _, e := range g.Edges() {
		pu, pv := arr.PositionOf(e.From), arr.PositionOf(e.To)
		if pu > pv {
			pu, pv = pv, pu
		}
		// spans clipped to the matrix cannot be crossed from the right
		if pu < d && 2 <= pv && pv < n-1 {
			c += K[pu*d+pv-2]
			if c > bound {
				return 0, false
			}
		}
	}
	return c, true
}
