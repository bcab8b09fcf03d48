// SPDX-License-Identifier: MIT
// Package: vf3go/arg
//
// builder.go — construction of an immutable Graph from a Loader.
package arg

import "sort"

// GraphOption configures NewFromLoader.
type GraphOption[N any, E any] func(*buildConfig[N, E])

type buildConfig[N any, E any] struct {
	nodeEq func(N, N) bool
	edgeEq func(E, E) bool
}

// WithNodeEq installs a custom node-attribute compatibility comparator.
// Without this option, NewFromLoader (which requires N to satisfy
// comparable) falls back to Go's built-in ==; passing a comparator relaxes
// equality to something other than == (e.g. a tolerance on floats). A
// non-comparable N (e.g. a struct containing a slice) needs
// NewFromLoaderFunc instead.
func WithNodeEq[N any, E any](eq func(N, N) bool) GraphOption[N, E] {
	return func(c *buildConfig[N, E]) { c.nodeEq = eq }
}

// WithEdgeEq installs a custom edge-attribute compatibility comparator.
func WithEdgeEq[N any, E any](eq func(E, E) bool) GraphOption[N, E] {
	return func(c *buildConfig[N, E]) { c.edgeEq = eq }
}

// NewFromLoader builds an immutable Graph from loader. It validates that
// every edge endpoint is in range, rejects self-loops and duplicate edges,
// sorts adjacency ascending by neighbor, mirrors the out-adjacency into an
// in-adjacency, and computes the cached aggregate Stats — all exactly once.
//
// N and E must be comparable; the default comparators use ==. For custom
// equality, pass WithNodeEq and/or WithEdgeEq; for non-comparable
// attribute types, use NewFromLoaderFunc.
func NewFromLoader[N comparable, E comparable](loader Loader[N, E], opts ...GraphOption[N, E]) (*Graph[N, E], error) {
	cfg := buildConfig[N, E]{
		nodeEq: func(a, b N) bool { return a == b },
		edgeEq: func(a, b E) bool { return a == b },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return buildGraph(loader, cfg)
}

// NewFromLoaderFunc is the generics-relaxed counterpart of NewFromLoader
// for attribute types that are not comparable: both comparators are
// mandatory arguments rather than defaulted options.
func NewFromLoaderFunc[N any, E any](loader Loader[N, E], nodeEq func(N, N) bool, edgeEq func(E, E) bool, opts ...GraphOption[N, E]) (*Graph[N, E], error) {
	cfg := buildConfig[N, E]{nodeEq: nodeEq, edgeEq: edgeEq}
	for _, opt := range opts {
		opt(&cfg)
	}

	return buildGraph(loader, cfg)
}

func buildGraph[N any, E any](loader Loader[N, E], cfg buildConfig[N, E]) (*Graph[N, E], error) {
	const method = "arg.NewFromLoader"

	n := loader.NodeCount()
	if n < 0 {
		return nil, argErrorf(method, ErrNodeCountMismatch, "negative node count %d", n)
	}

	g := &Graph[N, E]{
		nodeAttr:    make([]N, n),
		outNbr:      make([][]NodeID, n),
		outEdgeAttr: make([][]E, n),
		inNbr:       make([][]NodeID, n),
		inEdgeAttr:  make([][]E, n),
		nodeEq:      cfg.nodeEq,
		edgeEq:      cfg.edgeEq,
	}

	for i := 0; i < n; i++ {
		g.nodeAttr[i] = loader.NodeAttr(NodeID(i))
	}

	// First pass: validate and sort each node's out-edges, rejecting
	// duplicates.
	edgeCount := 0
	for i := 0; i < n; i++ {
		from := NodeID(i)
		edges := loader.OutEdges(from)

		for _, e := range edges {
			if e.To == from {
				return nil, argErrorf(method, ErrSelfLoop, "node %d", from)
			}
			if e.To < 0 || int(e.To) >= n {
				return nil, argErrorf(method, ErrNodeIndexOutOfRange, "edge %d -> %d", from, e.To)
			}
		}

		sort.Slice(edges, func(a, b int) bool { return edges[a].To < edges[b].To })

		for k := 1; k < len(edges); k++ {
			if edges[k].To == edges[k-1].To {
				return nil, argErrorf(method, ErrDuplicateEdge, "edge %d -> %d", from, edges[k].To)
			}
		}

		nbr := make([]NodeID, len(edges))
		attr := make([]E, len(edges))
		for k, e := range edges {
			nbr[k] = e.To
			attr[k] = e.Attr
		}
		g.outNbr[i] = nbr
		g.outEdgeAttr[i] = attr
		edgeCount += len(edges)
	}

	// Second pass: mirror into in-adjacency.
	inBuild := make([][]OutEdge[E], n)
	for i := 0; i < n; i++ {
		from := NodeID(i)
		for k, to := range g.outNbr[i] {
			inBuild[to] = append(inBuild[to], OutEdge[E]{To: from, Attr: g.outEdgeAttr[i][k]})
		}
	}
	for i := 0; i < n; i++ {
		edges := inBuild[i]
		sort.Slice(edges, func(a, b int) bool { return edges[a].To < edges[b].To })

		nbr := make([]NodeID, len(edges))
		attr := make([]E, len(edges))
		for k, e := range edges {
			nbr[k] = e.To
			attr[k] = e.Attr
		}
		g.inNbr[i] = nbr
		g.inEdgeAttr[i] = attr
	}

	g.stats = computeStats(g, n, edgeCount)

	return g, nil
}
