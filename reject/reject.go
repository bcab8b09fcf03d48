// SPDX-License-Identifier: MIT
// Package: vf3go/reject
package reject

import "github.com/vf3go/vf3/arg"

// Mode selects which family of necessary conditions FastReject checks.
type Mode int

const (
	// Isomorphism requires every aggregate to match exactly.
	Isomorphism Mode = iota
	// SubIsomorphism requires every pattern aggregate to be no larger
	// than the corresponding target aggregate.
	SubIsomorphism
)

// FastReject reports whether matching pattern against target is still
// possible under mode, based only on their cached Stats(). It returns
// false the instant any necessary condition fails; true otherwise.
func FastReject[N1, E1, N2, E2 any](pattern *arg.Graph[N1, E1], target *arg.Graph[N2, E2], mode Mode) bool {
	p, t := pattern.Stats(), target.Stats()

	switch mode {
	case Isomorphism:
		return p.NodeCount == t.NodeCount &&
			p.EdgeCount == t.EdgeCount &&
			p.MaxTotalDegree == t.MaxTotalDegree &&
			p.MaxOutDegree == t.MaxOutDegree &&
			p.MaxInDegree == t.MaxInDegree &&
			p.DistinctNodeAttrs == t.DistinctNodeAttrs &&
			p.DistinctEdgeAttrs == t.DistinctEdgeAttrs
	case SubIsomorphism:
		return p.NodeCount <= t.NodeCount &&
			p.EdgeCount <= t.EdgeCount &&
			p.MaxTotalDegree <= t.MaxTotalDegree &&
			p.MaxOutDegree <= t.MaxOutDegree &&
			p.MaxInDegree <= t.MaxInDegree &&
			p.DistinctNodeAttrs <= t.DistinctNodeAttrs &&
			p.DistinctEdgeAttrs <= t.DistinctEdgeAttrs
	default:
		return false
	}
}
