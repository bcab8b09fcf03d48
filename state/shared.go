// SPDX-License-Identifier: MIT
// Package: vf3go/state
package state

import (
	"github.com/vf3go/vf3/arg"
	"github.com/vf3go/vf3/classify"
	"github.com/vf3go/vf3/order"
)

// Shared is the read-only context every State in a search shares: the two
// graphs, the class table, the chosen pattern ordering, and the
// pattern-side per-depth arrays used by the lookahead test. It is safe
// for unsynchronized concurrent reads once built, which is what lets the
// parallel engine (package match) hand the same *Shared to every worker.
type Shared[N any, E any] struct {
	Pattern *arg.Graph[N, E]
	Target  *arg.Graph[N, E]
	Classes classify.Classes
	Order   order.Artifacts
	Opts    Options

	// pos[v] is sigma's depth for pattern node v.
	pos []int

	// Per-depth marginal terminal-set contributions of placing sigma[depth],
	// consumed by IsFeasible's lookahead test.
	termin1   []int32
	termout1  []int32
	new1      []int32
	termin1C  [][]int32
	termout1C [][]int32
	new1C     [][]int32

	// Cumulative pattern-side terminal-set sizes at each depth, consumed
	// by IsDead.
	t1InLen    []int32
	t1OutLen   []int32
	t1BothLen  []int32
	t1InLenC   [][]int32
	t1OutLenC  [][]int32
	t1BothLenC [][]int32
}

// NewShared builds the shared, read-only matching context for a
// (pattern, target) pair under the given ordering, class table, and
// options.
func NewShared[N any, E any](pattern, target *arg.Graph[N, E], classes classify.Classes, ord order.Artifacts, opts Options) *Shared[N, E] {
	n := pattern.NodeCount()
	c := int(classes.C)

	s := &Shared[N, E]{
		Pattern: pattern,
		Target:  target,
		Classes: classes,
		Order:   ord,
		Opts:    opts,
		pos:     make([]int, n),

		termin1:  make([]int32, n),
		termout1: make([]int32, n),
		new1:     make([]int32, n),

		t1InLen:   make([]int32, n+1),
		t1OutLen:  make([]int32, n+1),
		t1BothLen: make([]int32, n+1),
	}

	s.termin1C = newGrid(n, c)
	s.termout1C = newGrid(n, c)
	s.new1C = newGrid(n, c)
	s.t1InLenC = newGrid(n+1, c)
	s.t1OutLenC = newGrid(n+1, c)
	s.t1BothLenC = newGrid(n+1, c)

	for k, v := range ord.Sigma {
		s.pos[v] = k
	}

	s.computeFirstGraphTraversal(n, c)

	return s
}

func newGrid(rows, cols int) [][]int32 {
	grid := make([][]int32, rows)
	for i := range grid {
		grid[i] = make([]int32, cols)
	}

	return grid
}

// computeFirstGraphTraversal simulates placing pattern nodes in sigma
// order, tracking a pattern-side "would-be" in/out terminal set (in, out)
// exactly as the target-side in_T/out_T sets grow during real matching.
// It fills two distinct outputs:
//   - termin1/termout1/new1[depth] (and per-class): the marginal count of
//     not-yet-placed neighbors of sigma[depth] that are already in the
//     in-set, out-set, or neither, the instant before sigma[depth] itself
//     is placed — this is what a real target candidate's neighbor
//     classification is compared against.
//   - t1InLen/t1OutLen/t1BothLen[depth] (and per-class): the cumulative
//     size of the pattern-side in/out/both sets once depth nodes have
//     been placed — compared against the live target-side counters in
//     IsDead.
func (s *Shared[N, E]) computeFirstGraphTraversal(n, c int) {
	inSet := make([]bool, n)
	outSet := make([]bool, n)
	placed := make([]bool, n)
	classOf := s.Classes.ClassP

	for depth := 0; depth < n; depth++ {
		node := s.Order.Sigma[depth]
		placed[node] = true

		s.updateMarginal(node, depth, inSet, outSet, placed, classOf)

		s.t1InLen[depth+1] = s.t1InLen[depth]
		s.t1OutLen[depth+1] = s.t1OutLen[depth]
		s.t1BothLen[depth+1] = s.t1BothLen[depth]
		for j := 0; j < c; j++ {
			s.t1InLenC[depth+1][j] = s.t1InLenC[depth][j]
			s.t1OutLenC[depth+1][j] = s.t1OutLenC[depth][j]
			s.t1BothLenC[depth+1][j] = s.t1BothLenC[depth][j]
		}

		nodeClass := classOf[node]
		if !inSet[node] {
			inSet[node] = true
			s.t1InLen[depth+1]++
			s.t1InLenC[depth+1][nodeClass]++
			if outSet[node] {
				s.t1BothLen[depth+1]++
				s.t1BothLenC[depth+1][nodeClass]++
			}
		}
		if !outSet[node] {
			outSet[node] = true
			s.t1OutLen[depth+1]++
			s.t1OutLenC[depth+1][nodeClass]++
			if inSet[node] {
				s.t1BothLen[depth+1]++
				s.t1BothLenC[depth+1][nodeClass]++
			}
		}

		for _, other := range s.Pattern.InNeighbors(node) {
			if inSet[other] {
				continue
			}
			oc := classOf[other]
			inSet[other] = true
			s.t1InLen[depth+1]++
			s.t1InLenC[depth+1][oc]++
			if outSet[other] {
				s.t1BothLen[depth+1]++
				s.t1BothLenC[depth+1][oc]++
			}
		}
		for _, other := range s.Pattern.OutNeighbors(node) {
			if outSet[other] {
				continue
			}
			oc := classOf[other]
			outSet[other] = true
			s.t1OutLen[depth+1]++
			s.t1OutLenC[depth+1][oc]++
			if inSet[other] {
				s.t1BothLen[depth+1]++
				s.t1BothLenC[depth+1][oc]++
			}
		}
	}
}

func (s *Shared[N, E]) updateMarginal(node arg.NodeID, depth int, inSet, outSet, placed []bool, classOf []int32) {
	tally := func(neigh arg.NodeID) {
		if placed[neigh] {
			return
		}
		c := classOf[neigh]
		if inSet[neigh] {
			s.termin1[depth]++
			s.termin1C[depth][c]++
		}
		if outSet[neigh] {
			s.termout1[depth]++
			s.termout1C[depth][c]++
		}
		if !inSet[neigh] && !outSet[neigh] {
			s.new1[depth]++
			s.new1C[depth][c]++
		}
	}

	for _, neigh := range s.Pattern.InNeighbors(node) {
		tally(neigh)
	}
	for _, neigh := range s.Pattern.OutNeighbors(node) {
		tally(neigh)
	}
}
