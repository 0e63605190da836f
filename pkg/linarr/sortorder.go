package linarr

import "sort"

// SortOrder selects the direction of the shared ordering convention used
// when sorting vertices or candidate positions. Both solvers try candidates
// and pick between a witness and its mirror under the same order, so the
// two algorithms remain bit-for-bit reproducible against each other.
type SortOrder int

const (
	// NonDecreasing sorts ascending; equal elements keep their relative order.
	NonDecreasing SortOrder = iota
	// NonIncreasing sorts descending; equal elements keep their relative order.
	NonIncreasing
)

// String returns the name of the order tag.
func (o SortOrder) String() string {
	switch o {
	case NonDecreasing:
		return "non-decreasing"
	case NonIncreasing:
		return "non-increasing"
	default:
		return "unknown"
	}
}

// Less reports whether a sorts before b under the order tag.
func (o SortOrder) Less(a, b int) bool {
	if o == NonIncreasing {
		return a > b
	}
	return a < b
}

// SortInts sorts s in place under the order tag, stably.
func SortInts(s []int, o SortOrder) {
	sort.SliceStable(s, func(i, j int) bool { return o.Less(s[i], s[j]) })
}

// tieBreak is the convention both solvers share: candidate vertices are
// tried under this order, and of an arrangement and its mirror the one
// whose endpoint pair sorts under it is reported.
const tieBreak = NonDecreasing

// candidates returns the vertices 0..n-1 in tie-break order.
func candidates(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	SortInts(s, tieBreak)
	return s
}
