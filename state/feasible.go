// SPDX-License-Identifier: MIT
// Package: vf3go/state
package state

import (
	"github.com/vf3go/vf3/arg"
	"github.com/vf3go/vf3/order"
)

// Candidates returns every target node worth trying as the match for
// sigma[st.Depth] (spec §4.6 "NextPair"): if that pattern node has an
// earlier-placed neighbor, candidates are drawn from the matched
// counterpart's target neighbor list in the matching direction; otherwise
// every unmatched target node of the right class is a candidate. The
// engines call IsFeasible on each in order and extend the state with
// every feasible one.
func (st *State[N, E]) Candidates() []arg.NodeID {
	sh := st.shared
	v := sh.Order.Sigma[st.Depth]
	classV := sh.Classes.ClassP[v]
	pred := sh.Order.Pred[v]

	var pool []arg.NodeID
	if pred != arg.NilNode {
		predT := st.CoreP[pred]
		switch sh.Order.Dir[v] {
		case order.In:
			pool = sh.Target.OutNeighbors(predT)
		default:
			pool = sh.Target.InNeighbors(predT)
		}
	}

	out := make([]arg.NodeID, 0, len(pool))
	if pred != arg.NilNode {
		for _, u := range pool {
			if st.CoreT[u] == arg.NilNode && sh.Classes.ClassT[u] == classV {
				out = append(out, u)
			}
		}

		return out
	}

	n := sh.Target.NodeCount()
	for i := 0; i < n; i++ {
		u := arg.NodeID(i)
		if st.CoreT[u] == arg.NilNode && sh.Classes.ClassT[u] == classV {
			out = append(out, u)
		}
	}

	return out
}

// IsFeasible tests whether pattern node v can be matched to target node u
// given the current partial mapping: attribute compatibility, degree
// compatibility, edge consistency with the existing core, and (unless
// disabled by the state's Kind/K) the terminal-set lookahead bound.
func (st *State[N, E]) IsFeasible(v, u arg.NodeID) bool {
	sh := st.shared

	if !sh.Pattern.NodeEqual(sh.Pattern.NodeAttr(v), sh.Target.NodeAttr(u)) {
		return false
	}

	if sh.Pattern.InDegree(v) > sh.Target.InDegree(u) || sh.Pattern.OutDegree(v) > sh.Target.OutDegree(u) {
		return false
	}

	if !st.consistentWithCore(v, u) {
		return false
	}

	if sh.Opts.lookaheadActive(st.Depth) && !st.passesLookahead(u) {
		return false
	}

	return true
}

func (st *State[N, E]) consistentWithCore(v, u arg.NodeID) bool {
	sh := st.shared

	for _, w := range sh.Pattern.OutNeighbors(v) {
		wt := st.CoreP[w]
		if wt == arg.NilNode {
			continue
		}
		pAttr, _ := sh.Pattern.EdgeAttr(v, w)
		tAttr, ok := sh.Target.EdgeAttr(u, wt)
		if !ok || !sh.Pattern.EdgeEqual(pAttr, tAttr) {
			return false
		}
	}
	for _, w := range sh.Pattern.InNeighbors(v) {
		wt := st.CoreP[w]
		if wt == arg.NilNode {
			continue
		}
		pAttr, _ := sh.Pattern.EdgeAttr(w, v)
		tAttr, ok := sh.Target.EdgeAttr(wt, u)
		if !ok || !sh.Pattern.EdgeEqual(pAttr, tAttr) {
			return false
		}
	}

	if !sh.Opts.Induced {
		return true
	}

	for _, wt := range sh.Target.OutNeighbors(u) {
		w := st.CoreT[wt]
		if w == arg.NilNode {
			continue
		}
		pAttr, ok := sh.Pattern.EdgeAttr(v, w)
		if !ok {
			return false
		}
		tAttr, _ := sh.Target.EdgeAttr(u, wt)
		if !sh.Pattern.EdgeEqual(pAttr, tAttr) {
			return false
		}
	}
	for _, wt := range sh.Target.InNeighbors(u) {
		w := st.CoreT[wt]
		if w == arg.NilNode {
			continue
		}
		pAttr, ok := sh.Pattern.EdgeAttr(w, v)
		if !ok {
			return false
		}
		tAttr, _ := sh.Target.EdgeAttr(wt, u)
		if !sh.Pattern.EdgeEqual(pAttr, tAttr) {
			return false
		}
	}

	return true
}

// passesLookahead classifies u's unmatched target neighbors as termin,
// termout, or new (spec §4.6 point 4) and checks the totals and per-class
// counts against the pattern-side precomputed bound for this depth.
func (st *State[N, E]) passesLookahead(u arg.NodeID) bool {
	sh := st.shared
	exact := sh.Opts.Mode == Isomorphism
	depth := st.Depth

	var termin2, termout2, new2 int32
	termin2C := make([]int32, len(st.t2InC))
	termout2C := make([]int32, len(st.t2InC))
	new2C := make([]int32, len(st.t2InC))

	tally := func(w arg.NodeID) {
		if st.CoreT[w] != arg.NilNode {
			return
		}
		c := sh.Classes.ClassT[w]
		switch {
		case st.InT[w] != 0 && st.OutT[w] != 0:
			termin2++
			termin2C[c]++
			termout2++
			termout2C[c]++
		case st.InT[w] != 0:
			termin2++
			termin2C[c]++
		case st.OutT[w] != 0:
			termout2++
			termout2C[c]++
		default:
			new2++
			new2C[c]++
		}
	}

	for _, w := range sh.Target.InNeighbors(u) {
		tally(w)
	}
	for _, w := range sh.Target.OutNeighbors(u) {
		tally(w)
	}

	if violatesBound(sh.termin1[depth], termin2, exact) ||
		violatesBound(sh.termout1[depth], termout2, exact) ||
		violatesBound(sh.new1[depth], new2, exact) {
		return false
	}

	for c := range termin2C {
		if violatesBound(sh.termin1C[depth][c], termin2C[c], exact) ||
			violatesBound(sh.termout1C[depth][c], termout2C[c], exact) ||
			violatesBound(sh.new1C[depth][c], new2C[c], exact) {
			return false
		}
	}

	return true
}
