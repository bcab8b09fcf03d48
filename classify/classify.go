// SPDX-License-Identifier: MIT
// Package: vf3go/classify
package classify

import "github.com/vf3go/vf3/arg"

// Classes holds the outcome of classifying a pattern/target pair: a dense
// class id per target node, a dense class id per pattern node, and the
// total class count C (including pattern-only classes that can never
// match, which live at ids >= CTarget).
type Classes struct {
	ClassP  []int32
	ClassT  []int32
	C       int32
	CTarget int32
}

// classEntry pairs an attribute representative with its assigned class
// id; attribute values are compared via the target graph's NodeEqual so
// that non-comparable N types (custom GraphOption comparators) still work.
type classEntry[N any] struct {
	attr N
	id   int32
}

// Classify builds the class table for a (pattern, target) pair sharing
// the same node attribute type N. Target classes are assigned first, in
// node-id order, one fresh id per newly seen attribute value; pattern
// classes reuse that assignment and extend it for pattern-only values.
func Classify[N any, TE any, PE any](pattern *arg.Graph[N, PE], target *arg.Graph[N, TE]) Classes {
	var entries []classEntry[N]

	lookup := func(attr N) (int32, bool) {
		for _, e := range entries {
			if target.NodeEqual(e.attr, attr) {
				return e.id, true
			}
		}
		return 0, false
	}

	tCount := target.NodeCount()
	classT := make([]int32, tCount)
	for i := 0; i < tCount; i++ {
		attr := target.NodeAttr(arg.NodeID(i))
		if id, ok := lookup(attr); ok {
			classT[i] = id
		} else {
			id := int32(len(entries))
			entries = append(entries, classEntry[N]{attr: attr, id: id})
			classT[i] = id
		}
	}
	cTarget := int32(len(entries))

	pCount := pattern.NodeCount()
	classP := make([]int32, pCount)
	for i := 0; i < pCount; i++ {
		attr := pattern.NodeAttr(arg.NodeID(i))
		if id, ok := lookup(attr); ok {
			classP[i] = id
		} else {
			id := int32(len(entries))
			entries = append(entries, classEntry[N]{attr: attr, id: id})
			classP[i] = id
		}
	}

	return Classes{
		ClassP:  classP,
		ClassT:  classT,
		C:       int32(len(entries)),
		CTarget: cTarget,
	}
}
