// SPDX-License-Identifier: MIT
// Package: vf3go/state
package state

import "github.com/vf3go/vf3/arg"

// State is one node of the matching search tree: a partial mapping
// between pattern and target nodes, plus the terminal-set membership and
// lookahead counters needed to test extensions cheaply. A State is
// mutated in place by AddPair/Backtrack rather than copied, so it must be
// owned by exactly one goroutine at a time (spec §5).
type State[N any, E any] struct {
	shared *Shared[N, E]

	// CoreP[v] is the target node matched to pattern node v, or
	// arg.NilNode. CoreT is the inverse mapping.
	CoreP []arg.NodeID
	CoreT []arg.NodeID

	Depth         int
	DepthPerClass []int32

	// InT[u]/OutT[u] are 0 if target node u is not in the respective
	// terminal set, else the depth (1-based: AddPair stamps with the
	// post-increment depth) at which it entered.
	InT  []int32
	OutT []int32

	t2In, t2Out, t2Both    int32
	t2InC, t2OutC, t2BothC []int32
}

// NewRoot builds the empty root state for shared: no nodes matched, depth
// zero, every terminal-set and counter field zeroed.
func NewRoot[N any, E any](shared *Shared[N, E]) *State[N, E] {
	pn := shared.Pattern.NodeCount()
	tn := shared.Target.NodeCount()
	c := int(shared.Classes.C)

	st := &State[N, E]{
		shared:        shared,
		CoreP:         make([]arg.NodeID, pn),
		CoreT:         make([]arg.NodeID, tn),
		DepthPerClass: make([]int32, c),
		InT:           make([]int32, tn),
		OutT:          make([]int32, tn),
		t2InC:         make([]int32, c),
		t2OutC:        make([]int32, c),
		t2BothC:       make([]int32, c),
	}
	for i := range st.CoreP {
		st.CoreP[i] = arg.NilNode
	}
	for i := range st.CoreT {
		st.CoreT[i] = arg.NilNode
	}

	return st
}

// IsGoal reports whether every pattern node has been matched.
func (st *State[N, E]) IsGoal() bool {
	return st.Depth == len(st.CoreP)
}

// IsDead reports whether the live target-side terminal-set sizes already
// fall short of what the pattern requires at this depth — no extension
// can possibly fill the pattern from here.
func (st *State[N, E]) IsDead() bool {
	sh := st.shared
	d := st.Depth
	exact := sh.Opts.Mode == Isomorphism

	if violatesBound(sh.t1InLen[d], st.t2In, exact) ||
		violatesBound(sh.t1OutLen[d], st.t2Out, exact) ||
		violatesBound(sh.t1BothLen[d], st.t2Both, exact) {
		return true
	}

	for c := range st.t2InC {
		if violatesBound(sh.t1InLenC[d][c], st.t2InC[c], exact) ||
			violatesBound(sh.t1OutLenC[d][c], st.t2OutC[c], exact) ||
			violatesBound(sh.t1BothLenC[d][c], st.t2BothC[c], exact) {
			return true
		}
	}

	return false
}

// violatesBound reports whether a pattern-side count p fails its bound
// against the target-side count t: p > t always fails; under exact mode
// p != t also fails.
func violatesBound(p, t int32, exact bool) bool {
	if p > t {
		return true
	}

	return exact && p != t
}

// AddPair extends the state by matching pattern node v to target node u.
// Precondition: IsFeasible(v, u) returned true for the caller's state
// just before this call.
func (st *State[N, E]) AddPair(v, u arg.NodeID) {
	sh := st.shared

	st.Depth++
	depth := int32(st.Depth)

	nodeClass := sh.Classes.ClassP[v]
	st.DepthPerClass[nodeClass]++

	st.CoreP[v] = u
	st.CoreT[u] = v

	st.stampTerminal(u, depth)

	for _, other := range sh.Target.InNeighbors(u) {
		if st.InT[other] == 0 {
			oc := sh.Classes.ClassT[other]
			st.InT[other] = depth
			st.t2In++
			st.t2InC[oc]++
			if st.OutT[other] != 0 {
				st.t2Both++
				st.t2BothC[oc]++
			}
		}
	}
	for _, other := range sh.Target.OutNeighbors(u) {
		if st.OutT[other] == 0 {
			oc := sh.Classes.ClassT[other]
			st.OutT[other] = depth
			st.t2Out++
			st.t2OutC[oc]++
			if st.InT[other] != 0 {
				st.t2Both++
				st.t2BothC[oc]++
			}
		}
	}
}

// stampTerminal marks u itself into the in/out terminal sets if it is not
// already a member, mirroring the original's treatment of the
// newly-matched node as its own first terminal-set entry.
func (st *State[N, E]) stampTerminal(u arg.NodeID, depth int32) {
	sh := st.shared
	uc := sh.Classes.ClassT[u]

	if st.InT[u] == 0 {
		st.InT[u] = depth
		st.t2In++
		st.t2InC[uc]++
		if st.OutT[u] != 0 {
			st.t2Both++
			st.t2BothC[uc]++
		}
	}
	if st.OutT[u] == 0 {
		st.OutT[u] = depth
		st.t2Out++
		st.t2OutC[uc]++
		if st.InT[u] != 0 {
			st.t2Both++
			st.t2BothC[uc]++
		}
	}
}

// Backtrack undoes exactly the mutations AddPair(v, u) made: every
// terminal-set entry stamped with the current depth is cleared, the
// counters they contributed to are rolled back, and the core mapping
// entries are removed.
func (st *State[N, E]) Backtrack(v, u arg.NodeID) {
	sh := st.shared
	depth := int32(st.Depth)

	if st.InT[u] == depth {
		st.clearIn(u)
	}
	if st.OutT[u] == depth {
		st.clearOut(u)
	}

	for _, other := range sh.Target.InNeighbors(u) {
		if st.InT[other] == depth {
			st.clearIn(other)
		}
	}
	for _, other := range sh.Target.OutNeighbors(u) {
		if st.OutT[other] == depth {
			st.clearOut(other)
		}
	}

	nodeClass := sh.Classes.ClassP[v]
	st.DepthPerClass[nodeClass]--
	st.CoreP[v] = arg.NilNode
	st.CoreT[u] = arg.NilNode
	st.Depth--
}

func (st *State[N, E]) clearIn(node arg.NodeID) {
	c := st.shared.Classes.ClassT[node]
	st.InT[node] = 0
	st.t2In--
	st.t2InC[c]--
	if st.OutT[node] != 0 {
		st.t2Both--
		st.t2BothC[c]--
	}
}

func (st *State[N, E]) clearOut(node arg.NodeID) {
	c := st.shared.Classes.ClassT[node]
	st.OutT[node] = 0
	st.t2Out--
	st.t2OutC[c]--
	if st.InT[node] != 0 {
		st.t2Both--
		st.t2BothC[c]--
	}
}
