// SPDX-License-Identifier: MIT
// Package: vf3go/load
package load

import "github.com/vf3go/vf3/arg"

// Unit is the attribute type for formats that carry no attributes at all
// (the edge and binary-ARG formats): every node and every edge compares
// equal to every other.
type Unit struct{}

// InMemoryLoader is the common arg.Loader implementation every parser in
// this package builds: the whole file is read up front into flat slices,
// then handed to arg.NewFromLoader (or arg.NewFromLoaderFunc).
type InMemoryLoader[N any, E any] struct {
	attrs []N
	edges [][]arg.OutEdge[E]
}

func newInMemoryLoader[N any, E any](n int) *InMemoryLoader[N, E] {
	return &InMemoryLoader[N, E]{
		attrs: make([]N, n),
		edges: make([][]arg.OutEdge[E], n),
	}
}

// NodeCount implements arg.Loader.
func (l *InMemoryLoader[N, E]) NodeCount() int { return len(l.attrs) }

// NodeAttr implements arg.Loader.
func (l *InMemoryLoader[N, E]) NodeAttr(i arg.NodeID) N { return l.attrs[i] }

// OutEdges implements arg.Loader.
func (l *InMemoryLoader[N, E]) OutEdges(i arg.NodeID) []arg.OutEdge[E] { return l.edges[i] }
