package linarr

import (
	"errors"
	"fmt"

	"github.com/linarr-project/linarr/pkg/graph"
)

// MaxSubsetVertices is the largest vertex count the subset solver accepts.
// Its memo table is addressed by vertex-subset bitmask, so storage grows as
// 2^n; twenty vertices keeps the table within a few tens of megabytes.
const MaxSubsetVertices = 20

// ErrTooManyVertices is returned when a graph exceeds MaxSubsetVertices.
var ErrTooManyVertices = errors.New("graph exceeds subset solver capacity")

// SubsetSolver finds the minimum crossing count by a depth-first search
// over prefixes of the arrangement, growing it one vertex at a time from
// the left. Appending a vertex commits a computable number of crossings:
// every crossing is charged to the moment its third endpoint (in position
// order) is placed, so the committed cost of a full prefix is the exact
// crossing count and never decreases as the prefix grows. That gives two
// prunes on top of the enumeration:
//
//   - branch and bound: a prefix whose committed cost already matches the
//     best full arrangement cannot improve on it;
//   - dominance: the cost of completing a prefix depends only on which
//     vertices are placed and on the left-to-right order of its boundary
//     (the placed vertices that still have unplaced neighbors). Of two
//     prefixes over the same subset with the same boundary order, only the
//     cheaper needs expanding. Seen (subset, boundary-order) pairs live in
//     a table flattened as subset*width+slot; the search reaches a subset
//     only after all of its proper subsets, so entries are filled in
//     non-decreasing popcount order.
//
// Worst case remains exponential, but far below factorial on graphs whose
// boundaries stay small.
type SubsetSolver struct {
	// MemoWidth overrides DefaultMemoWidth when positive.
	MemoWidth int

	// Workspace, when set, supplies the memo table and scratch storage so
	// repeated solves reuse one allocation.
	Workspace *Workspace

	// OnImprove, when set, is called with each strictly better arrangement
	// the search finds. The slice is a copy the callback may keep.
	OnImprove func(crossings uint64, order []int)
}

// Minimize returns the minimum crossing count of g over all arrangements
// together with an arrangement attaining it. Fails with ErrTooManyVertices
// when g has more than MaxSubsetVertices vertices.
func (s *SubsetSolver) Minimize(g graph.Graph) (uint64, *Arrangement, error) {
	if trivial(g) {
		return 0, Identity(g.NumVertices()), nil
	}
	best, order, err := s.search(g, 0, false)
	if err != nil {
		return 0, nil, err
	}
	// crossings are mirror-invariant; report the witness the shared
	// tie-break picks, matching the brute-force search
	if n := len(order); tieBreak.Less(order[n-1], order[0]) {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}
	arr, err := FromOrder(order)
	if err != nil {
		return 0, nil, err
	}
	return best, arr, nil
}

// MinimizeWithBound reports whether some arrangement of g has at most
// bound crossings. On VerdictLE the decision's Value is the count of a
// witness arrangement, not necessarily the minimum; branches that cannot
// get under the bound are cut immediately, so a GT verdict is usually much
// cheaper than an exact minimization.
func (s *SubsetSolver) MinimizeWithBound(g graph.Graph, bound uint64) (Decision, error) {
	if trivial(g) {
		return decidedLE(0), nil
	}
	best, _, err := s.search(g, bound, true)
	if err != nil {
		return Decision{}, err
	}
	if best > bound {
		return decidedGT(), nil
	}
	return decidedLE(best), nil
}

// search runs the prefix search and returns the best count found with its
// vertex order. It stops as soon as the best count reaches stopAt; exact
// callers pass 0, bounded callers their bound with bounded set, which lets
// the incumbent start at stopAt+1 even without a witness arrangement.
// Callers guarantee g is not trivial.
func (s *SubsetSolver) search(g graph.Graph, stopAt uint64, bounded bool) (uint64, []int, error) {
	n := g.NumVertices()
	if n > MaxSubsetVertices {
		return 0, nil, fmt.Errorf("%d vertices, limit %d: %w", n, MaxSubsetVertices, ErrTooManyVertices)
	}

	w := s.Workspace
	if w == nil {
		w = NewWorkspace()
	}
	width := s.MemoWidth
	if width <= 0 {
		width = DefaultMemoWidth
	}
	w.memo.reset(n, width)
	order, outside, suffix := w.prefixBuffers(n)
	cands := candidates(n)

	pos := make([]int, n)
	bestOrder := make([]int, n)

	// the identity arrangement seeds the incumbent so pruning starts on
	// the first branch
	ident := Identity(n)
	best := w.CountDynProg(g, ident)
	copy(bestOrder, ident.vertex)
	if best <= stopAt {
		return best, bestOrder, nil
	}
	// in bounded mode anything beyond stopAt+1 is equally useless, so the
	// incumbent starts there even without a witness
	if bounded && best > stopAt+1 {
		best = stopAt + 1
	}

	var boundary [MaxSubsetVertices]int

	// signature encodes the left-to-right order of the prefix's boundary
	// vertices as its factorial-base permutation rank. The boundary SET is
	// a function of the subset alone, so the rank identifies the order
	// exactly; 20! fits a uint64 with room to spare.
	signature := func(depth int) uint64 {
		m := 0
		for i := 0; i < depth; i++ {
			if outside[i] > 0 {
				boundary[m] = order[i]
				m++
			}
		}
		var sig uint64
		for j := 0; j < m; j++ {
			r := 0
			for k := j + 1; k < m; k++ {
				if boundary[k] < boundary[j] {
					r++
				}
			}
			sig = sig*uint64(m-j) + uint64(r)
		}
		return sig
	}

	var dfs func(depth, subset int, committed uint64) bool
	dfs = func(depth, subset int, committed uint64) bool {
		if depth == n {
			best = committed
			copy(bestOrder, order)
			if s.OnImprove != nil {
				s.OnImprove(best, append([]int(nil), order...))
			}
			return best <= stopAt
		}
		for _, v := range cands {
			if subset&(1<<v) != 0 {
				continue
			}

			// placing v at position depth settles its edges toward the
			// prefix; each crossing those edges take part in as the
			// second-from-right endpoint is committed now. The open edge
			// count right of each committed neighbor comes from one
			// suffix-sum pass.
			for _, a := range g.Neighbors(v) {
				if subset&(1<<a) != 0 {
					outside[pos[a]]--
				}
			}
			suffix[depth] = 0
			for i := depth - 1; i >= 0; i-- {
				suffix[i] = suffix[i+1] + outside[i]
			}
			inc := uint64(0)
			outv := 0
			for _, a := range g.Neighbors(v) {
				if subset&(1<<a) != 0 {
					inc += uint64(suffix[pos[a]+1])
				} else {
					outv++
				}
			}
			order[depth] = v
			pos[v] = depth
			outside[depth] = outv

			total := committed + inc
			if total < best {
				next := subset | 1<<v
				if w.memo.visit(next, signature(depth+1), total) {
					if dfs(depth+1, next, total) {
						return true
					}
				}
			}

			for _, a := range g.Neighbors(v) {
				if subset&(1<<a) != 0 {
					outside[pos[a]]++
				}
			}
		}
		return false
	}
	dfs(0, 0, 0)
	return best, bestOrder, nil
}
