// SPDX-License-Identifier: MIT
// Package: vf3go/match
package match

import (
	"time"

	"github.com/vf3go/vf3/arg"
)

// Pair is one (pattern node, target node) entry of a reported mapping.
type Pair struct {
	P arg.NodeID
	T arg.NodeID
}

// Visitor is called once per solution found. Returning true requests the
// serial engine stop searching further. ParallelOptions has no Visitor
// field, so the parallel engine never calls one.
type Visitor func(mapping []Pair) (stop bool)

// Result summarizes a completed search.
type Result struct {
	Count           int64
	FirstSolutionAt time.Duration
	FoundAny        bool
	Mappings        [][]Pair // populated only if Options.CollectMappings is set
}
