package linarr

import (
	"github.com/linarr-project/linarr/pkg/graph"
)

// BruteForce finds the minimum crossing count by enumerating vertex orders.
// Every order is evaluated with the bounded evaluator capped at one below
// the best count seen, so most leaves abort after a handful of additions.
// Mirrored orders produce identical counts and only one of each pair is
// evaluated.
//
// The search is factorial in the vertex count. It is the solver of choice
// up to BruteForceCutoff vertices and the oracle the subset solver is
// validated against.
type BruteForce struct {
	// OnImprove, when set, is called with each strictly better arrangement
	// the search finds, in the order they are found. The slice is a copy
	// the callback may keep.
	OnImprove func(crossings uint64, order []int)
}

// Minimize returns the minimum crossing count of g over all arrangements
// together with an arrangement attaining it.
func (s *BruteForce) Minimize(g graph.Graph) (uint64, *Arrangement, error) {
	if trivial(g) {
		return 0, Identity(g.NumVertices()), nil
	}
	best, order := s.search(g, 0)
	arr, err := FromOrder(order)
	if err != nil {
		return 0, nil, err
	}
	return best, arr, nil
}

// MinimizeWithBound reports whether some arrangement of g has at most
// bound crossings. The search stops at the first arrangement within the
// bound, so on VerdictLE the decision's Value is the count of a witness
// arrangement, not necessarily the minimum.
func (s *BruteForce) MinimizeWithBound(g graph.Graph, bound uint64) (Decision, error) {
	if trivial(g) {
		return decidedLE(0), nil
	}
	best, _ := s.search(g, bound)
	if best > bound {
		return decidedGT(), nil
	}
	return decidedLE(best), nil
}

// trivial reports whether the minimum is zero for structural reasons: a
// crossing needs two independent edges spanning four distinct vertices.
func trivial(g graph.Graph) bool {
	return g.NumVertices() < 4 || g.NumEdges() < 2
}

// search enumerates vertex orders depth first and returns the best count
// found and its order. It returns early once the best count reaches
// stopAt; exact callers pass 0 (nothing beats a planar layout), bounded
// callers pass their bound.
func (s *BruteForce) search(g graph.Graph, stopAt uint64) (uint64, []int) {
	n := g.NumVertices()
	w := NewWorkspace()
	cands := candidates(n)

	order := make([]int, n)
	pos := make([]int, n)
	used := make([]bool, n)
	arr := &Arrangement{pos: pos, vertex: order}

	best := noBound
	bestOrder := make([]int, n)

	var dfs func(depth int) bool
	dfs = func(depth int) bool {
		if depth == n {
			// the mirrored order has the same count; visit the one whose
			// endpoint pair sorts under the shared tie-break
			if tieBreak.Less(order[n-1], order[0]) {
				return false
			}
			dec := w.IsCountLessEqDynProg(g, arr, best-1)
			if !dec.LessEq() {
				return false
			}
			best = dec.Value
			copy(bestOrder, order)
			if s.OnImprove != nil {
				s.OnImprove(best, append([]int(nil), order...))
			}
			return best <= stopAt
		}
		for _, v := range cands {
			if used[v] {
				continue
			}
			used[v] = true
			order[depth] = v
			pos[v] = depth
			done := dfs(depth + 1)
			used[v] = false
			if done {
				return true
			}
		}
		return false
	}
	dfs(0)
	return best, bestOrder
}
