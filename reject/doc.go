// Package reject implements FastReject: a cheap, necessary-condition check
// run once per (pattern, target) pair before the matching engine starts.
// It compares aggregate Graph.Stats() values only — node/edge counts,
// degree extrema, distinct attribute counts — and never inspects
// individual nodes or edges.
//
// FastReject answers false only when matching is provably impossible; a
// true answer is informational and does not itself confirm an
// isomorphism or sub-isomorphism exists — the engine (package match) must
// still search.
package reject
