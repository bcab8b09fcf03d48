// SPDX-License-Identifier: MIT
// Package: vf3go/order
package order

import (
	"sort"

	"github.com/vf3go/vf3/arg"
	"github.com/vf3go/vf3/probability"
)

// sortNode tracks the mutable scoring fields the VF3 greedy algorithm
// needs per pattern node while building sigma.
type sortNode struct {
	id     arg.NodeID
	deg    int
	prob   float64
	mDeg   int // how many of this node's neighbors are already in sigma
	used   bool
	inCand bool
}

// candidateOrder implements sort.Interface over a slice of *sortNode,
// picking the next candidate by (-mDeg, prob, -deg): larger mDeg first,
// then smaller probability, then larger degree.
type candidateOrder []*sortNode

func (c candidateOrder) Len() int { return len(c) }
func (c candidateOrder) Less(i, j int) bool {
	a, b := c[i], c[j]
	if a.mDeg != b.mDeg {
		return a.mDeg > b.mDeg
	}
	if a.prob != b.prob {
		return a.prob < b.prob
	}

	return a.deg > b.deg
}
func (c candidateOrder) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Sort computes sigma, pred, and dir for pattern using the VF3 greedy
// candidate-set algorithm (spec §4.5): the initial node is the one with
// least probability (ties broken by larger degree); thereafter, from the
// candidate set of neighbors-of-sigma, pick the node maximizing in-core
// connectivity first, minimizing probability second, maximizing degree
// third, falling back to any unused node once the candidate set empties.
func Sort[N any, E any](pattern *arg.Graph[N, E], model *probability.Model[N]) Artifacts {
	n := pattern.NodeCount()
	nodes := make([]*sortNode, n)
	for i := 0; i < n; i++ {
		id := arg.NodeID(i)
		nodes[i] = &sortNode{
			id:   id,
			deg:  pattern.TotalDegree(id),
			prob: probability.Probability(model, pattern, id, probability.Iso),
		}
	}

	sigma := make([]arg.NodeID, 0, n)
	var candidates []*sortNode

	addNode := func(node *sortNode) {
		sigma = append(sigma, node.id)
		node.used = true
		node.inCand = true
		node.mDeg = 0

		for _, nb := range pattern.InNeighbors(node.id) {
			nn := nodes[nb]
			if !nn.used {
				nn.mDeg++
			}
			if !nn.inCand {
				nn.inCand = true
				candidates = append(candidates, nn)
			}
		}
		for _, nb := range pattern.OutNeighbors(node.id) {
			nn := nodes[nb]
			if !nn.used {
				nn.mDeg++
			}
			if !nn.inCand {
				nn.inCand = true
				candidates = append(candidates, nn)
			}
		}
	}

	top := nodes[0]
	for _, nd := range nodes[1:] {
		if nd.prob < top.prob || (nd.prob == top.prob && nd.deg > top.deg) {
			top = nd
		}
	}
	addNode(top)

	for len(sigma) < n {
		// Drop already-used nodes from the candidate set.
		live := candidates[:0]
		for _, c := range candidates {
			if !c.used {
				live = append(live, c)
			}
		}
		candidates = live

		if len(candidates) == 0 {
			var next *sortNode
			for _, nd := range nodes {
				if !nd.used {
					next = nd
					break
				}
			}
			addNode(next)

			continue
		}

		sort.Sort(candidateOrder(candidates))
		addNode(candidates[0])
	}

	return buildPredDir(pattern, sigma)
}

// buildPredDir makes a single left-to-right pass over sigma, recording
// for each node its first sigma-earlier neighbor and the direction of the
// connecting edge as seen from that node.
func buildPredDir[N any, E any](pattern *arg.Graph[N, E], sigma []arg.NodeID) Artifacts {
	n := len(sigma)
	position := make([]int, n)
	for k, v := range sigma {
		position[v] = k
	}

	pred := make([]arg.NodeID, n)
	dir := make([]Dir, n)
	for i := range pred {
		pred[i] = arg.NilNode
	}

	for k := 1; k < n; k++ {
		v := sigma[k]

		var found arg.NodeID = arg.NilNode
		var foundDir Dir
		earliest := k

		for _, nb := range pattern.InNeighbors(v) {
			if position[nb] < earliest {
				earliest = position[nb]
				found = nb
				foundDir = In
			}
		}
		for _, nb := range pattern.OutNeighbors(v) {
			if position[nb] < earliest {
				earliest = position[nb]
				found = nb
				foundDir = Out
			}
		}

		pred[v] = found
		if found != arg.NilNode {
			dir[v] = foundDir
		} else {
			dir[v] = None
		}
	}

	return Artifacts{Sigma: sigma, Pred: pred, Dir: dir}
}
