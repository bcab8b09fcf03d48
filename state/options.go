// SPDX-License-Identifier: MIT
// Package: vf3go/state
package state

// Kind selects which of the three VF3 lookahead variants a State applies.
type Kind int

const (
	// Full runs the lookahead test at every depth.
	Full Kind = iota
	// VF3K runs the lookahead test only below a configured depth cap.
	VF3K
	// Light never runs the lookahead test.
	Light
)

// Mode selects whether the lookahead comparisons in IsFeasible/IsDead use
// strict equality (full isomorphism: P and T must match exactly) or ≤
// (sub-isomorphism: T may have more than P requires).
type Mode int

const (
	// SubIsomorphism requires the pattern's lookahead counters to be no
	// larger than the target's.
	SubIsomorphism Mode = iota
	// Isomorphism requires the lookahead counters to match exactly.
	Isomorphism
)

// Options configures a Shared instance's matching semantics.
type Options struct {
	Kind Kind
	// K is the lookahead depth cap for Kind == VF3K: the lookahead runs
	// while depth < K. K is not validated; its zero value turns the
	// lookahead off at every depth. Ignored for other Kinds.
	K int
	// Induced requires that no extra target edge exist between any two
	// matched nodes beyond what the pattern itself has (spec §3, §4.6
	// point 3). False selects ordinary (sub)graph monomorphism semantics.
	Induced bool
	// Mode selects the exact-vs-tail-bound lookahead comparison.
	Mode Mode
}

// lookaheadActive reports whether the lookahead test should run at depth.
func (o Options) lookaheadActive(depth int) bool {
	switch o.Kind {
	case Light:
		return false
	case VF3K:
		return depth < o.K
	default:
		return true
	}
}
