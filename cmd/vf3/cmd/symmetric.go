// SPDX-License-Identifier: MIT
// Package: vf3go/cmd/vf3/cmd
package cmd

import "github.com/vf3go/vf3/arg"

// symmetricLoader wraps an arg.Loader and adds the reverse of every edge
// that doesn't already have one, for the `-u` (undirected) flag on
// formats whose own loader has no Undirected option (vf, bin). The "edge"
// format's loader does this itself (load.EdgeListOptions.Undirected).
type symmetricLoader[N any, E any] struct {
	inner arg.Loader[N, E]
	out   [][]arg.OutEdge[E]
}

func newSymmetricLoader[N any, E any](inner arg.Loader[N, E]) *symmetricLoader[N, E] {
	n := inner.NodeCount()
	out := make([][]arg.OutEdge[E], n)
	seen := make([]map[arg.NodeID]bool, n)
	for i := range seen {
		seen[i] = make(map[arg.NodeID]bool)
	}

	add := func(from, to arg.NodeID, attr E) {
		if from == to || seen[from][to] {
			return
		}
		seen[from][to] = true
		out[from] = append(out[from], arg.OutEdge[E]{To: to, Attr: attr})
	}

	for i := 0; i < n; i++ {
		from := arg.NodeID(i)
		for _, e := range inner.OutEdges(from) {
			add(from, e.To, e.Attr)
		}
	}
	for i := 0; i < n; i++ {
		from := arg.NodeID(i)
		for _, e := range inner.OutEdges(from) {
			add(e.To, from, e.Attr)
		}
	}

	return &symmetricLoader[N, E]{inner: inner, out: out}
}

func (s *symmetricLoader[N, E]) NodeCount() int         { return s.inner.NodeCount() }
func (s *symmetricLoader[N, E]) NodeAttr(i arg.NodeID) N { return s.inner.NodeAttr(i) }

func (s *symmetricLoader[N, E]) OutEdges(i arg.NodeID) []arg.OutEdge[E] { return s.out[i] }
