// SPDX-License-Identifier: MIT
// Package: vf3go/order
package order

import "github.com/vf3go/vf3/arg"

// riNode tracks the RI sorter's three running scores for one pattern
// node: vis (neighbors already placed in sigma), neig (neighbors that are
// themselves adjacent to an already-placed node, i.e. reachable via a
// two-hop link back into sigma), and unv (remaining unexplored
// out-degree). Larger is better on all three, in that priority order.
type riNode struct {
	id   arg.NodeID
	deg  int
	used bool
	vis  int
	neig int
	unv  int
}

// SortRI computes sigma, pred, and dir using the RI heuristic: start from
// the maximum-degree node; at each step, pick the unused node maximizing
// the triple (vis, neig, unv) — visited-neighbor count first, two-hop
// neighbor count second, remaining out-degree third.
func SortRI[N any, E any](pattern *arg.Graph[N, E]) Artifacts {
	n := pattern.NodeCount()
	nodes := make([]*riNode, n)
	for i := 0; i < n; i++ {
		id := arg.NodeID(i)
		nodes[i] = &riNode{id: id, deg: pattern.TotalDegree(id), unv: pattern.OutDegree(id)}
	}

	sigma := make([]arg.NodeID, 0, n)

	best := nodes[0]
	for _, nd := range nodes[1:] {
		if nd.deg > best.deg {
			best = nd
		}
	}

	for step := 0; step < n; step++ {
		if step > 0 {
			best = nil
			for _, nd := range nodes {
				if nd.used {
					continue
				}
				if best == nil || riLess(best, nd) {
					best = nd
				}
			}
		}

		best.used = true
		sigma = append(sigma, best.id)

		for _, nb := range pattern.OutNeighbors(best.id) {
			target := nodes[nb]
			if target.used {
				continue
			}
			target.vis++
			if target.unv > 0 {
				target.unv--
			}

			for _, nb2 := range pattern.OutNeighbors(nb) {
				if nb2 != best.id && !nodes[nb2].used && pattern.HasEdge(nb2, best.id) {
					target.neig++
				}
			}
		}
	}

	return buildPredDir(pattern, sigma)
}

// riLess reports whether candidate beats current under RI's
// (vis, neig, unv) priority ordering.
func riLess(current, candidate *riNode) bool {
	if candidate.vis != current.vis {
		return candidate.vis > current.vis
	}
	if candidate.neig != current.neig {
		return candidate.neig > current.neig
	}

	return candidate.unv > current.unv
}

// SortPlain returns sigma as the identity permutation [0, N) — no
// heuristic, used for tests and for patterns where ordering quality is
// immaterial.
func SortPlain[N any, E any](pattern *arg.Graph[N, E]) Artifacts {
	n := pattern.NodeCount()
	sigma := make([]arg.NodeID, n)
	for i := range sigma {
		sigma[i] = arg.NodeID(i)
	}

	return buildPredDir(pattern, sigma)
}
