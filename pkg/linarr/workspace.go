package linarr

import "math"

// DefaultMemoWidth is the number of auxiliary slots the subset solver keeps
// per vertex subset. Each slot holds one (boundary-signature, cost) entry;
// see SubsetSolver for what the signature encodes. A wider table remembers
// more orderings per subset and prunes more, at 16 bytes per slot per subset.
const DefaultMemoWidth = 2

// Workspace owns the scratch storage shared by the evaluators and the
// subset solver: the flattened prefix-count matrices of CountDynProg, a
// neighbor bitmap, and the subset memo table. Allocate one with
// NewWorkspace and reuse it across sequential calls to avoid reallocation
// in batch workloads; all buffers grow on demand.
//
// A workspace is exclusively owned by one invocation at a time. It is not
// safe for concurrent use - each goroutine needs its own.
type Workspace struct {
	neigh []int    // per-vertex edge multiplicity toward one vertex
	mk    []uint64 // M and K matrices, each (n-3)*(n-3), flattened back to back

	memo memoTable

	// prefix scratch for the subset solver
	order   []int
	outside []int
	suffix  []int
}

// NewWorkspace creates an empty workspace. Buffers are sized lazily by the
// first call that needs them.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// evalBuffers returns the neighbor multiplicity array and the M/K storage
// for a graph of n vertices, growing the underlying arrays when needed. The
// M matrix occupies mk[:d*d] and K occupies mk[d*d:], d = n-3.
func (w *Workspace) evalBuffers(n int) (neigh []int, mk []uint64) {
	if cap(w.neigh) < n {
		w.neigh = make([]int, n)
	}
	w.neigh = w.neigh[:n]
	d := n - 3
	need := 2 * d * d
	if cap(w.mk) < need {
		w.mk = make([]uint64, need)
	}
	w.mk = w.mk[:need]
	return w.neigh, w.mk
}

// prefixBuffers returns the order, outside-degree, and suffix-sum scratch
// slices used by the subset solver's incremental cost computation.
func (w *Workspace) prefixBuffers(n int) (order, outside, suffix []int) {
	if cap(w.order) < n {
		w.order = make([]int, n)
		w.outside = make([]int, n)
		w.suffix = make([]int, n+1)
	}
	return w.order[:n], w.outside[:n], w.suffix[:n+1]
}

// unsetCost marks an empty memo slot.
const unsetCost = math.MaxUint64

// memoTable is the flattened dominance memo of the subset solver: a
// two-dimensional table of (number of subsets) x width slots, addressed by
// subset*width + slot. Each slot stores the signature of one boundary
// ordering of the subset together with the cheapest prefix cost seen for
// it. Entries for a subset are only ever compared against entries of the
// same subset, and are written strictly after all subsets of lower
// popcount have produced them, so the table can be filled level by level.
//
// The table is an optimization, never a correctness dependency: when all
// width slots of a subset are taken, further orderings of that subset
// simply go unmemoized.
type memoTable struct {
	sig   []uint64
	cost  []uint64
	width int
}

// reset prepares the table for a graph of n vertices, reallocating only
// when the requested size exceeds the current capacity.
func (t *memoTable) reset(n, width int) {
	need := (1 << uint(n)) * width
	if cap(t.cost) < need {
		t.sig = make([]uint64, need)
		t.cost = make([]uint64, need)
	}
	t.sig = t.sig[:need]
	t.cost = t.cost[:need]
	t.width = width
	for i := range t.cost {
		t.cost[i] = unsetCost
	}
}

// visit records cost for (subset, sig) and reports whether the search may
// continue: false means an ordering of the same subset with the same
// boundary signature already reached this subset at an equal or lower cost,
// so the current branch is dominated and can be pruned.
func (t *memoTable) visit(subset int, sig uint64, cost uint64) bool {
	base := subset * t.width
	for i := 0; i < t.width; i++ {
		switch {
		case t.cost[base+i] == unsetCost:
			t.sig[base+i] = sig
			t.cost[base+i] = cost
			return true
		case t.sig[base+i] == sig:
			if t.cost[base+i] <= cost {
				return false
			}
			t.cost[base+i] = cost
			return true
		}
	}
	// all slots taken: not memoized, keep searching
	return true
}
