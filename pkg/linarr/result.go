package linarr

import "fmt"

// Verdict is the outcome tag of a bounded computation.
type Verdict int

const (
	// VerdictLE means the crossing count is at most the supplied bound;
	// Decision.Value holds the count.
	VerdictLE Verdict = iota
	// VerdictGT means the crossing count is strictly greater than the
	// supplied bound. The exact count was not determined.
	VerdictGT
)

// String returns "<=bound" or ">bound".
func (v Verdict) String() string {
	if v == VerdictGT {
		return ">bound"
	}
	return "<=bound"
}

// Decision is the tagged result of a bounded crossing computation. It
// replaces the numeric sentinel (bound+1) used by cutoff-style algorithms
// with an explicit sum type: either the count is known and within the bound,
// or it is known only to exceed it.
type Decision struct {
	Verdict Verdict
	Value   uint64 // valid only when Verdict == VerdictLE
}

// decidedLE wraps a count that is within the bound.
func decidedLE(c uint64) Decision { return Decision{Verdict: VerdictLE, Value: c} }

// decidedGT marks the count as exceeding the bound.
func decidedGT() Decision { return Decision{Verdict: VerdictGT} }

// LessEq reports whether the count was within the bound.
func (d Decision) LessEq() bool { return d.Verdict == VerdictLE }

// String formats the decision for logs.
func (d Decision) String() string {
	if d.Verdict == VerdictGT {
		return "decided: >bound"
	}
	return fmt.Sprintf("decided: %d", d.Value)
}
