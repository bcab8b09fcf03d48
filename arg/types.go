// SPDX-License-Identifier: MIT
// Package: vf3go/arg
//
// types.go declares the node identifier, the edge/loader input shapes, and
// the Graph type itself.
package arg

// NodeID is a dense, zero-based node identifier in [0, N).
type NodeID int32

// NilNode is the sentinel "unmatched"/"absent" node identifier.
const NilNode NodeID = -1

// OutEdge is one edge out of some node, as supplied by a Loader: the
// target node and the edge's attribute. Loader.OutEdges need not return
// these in sorted order — NewFromLoader sorts and validates them.
type OutEdge[E any] struct {
	To   NodeID
	Attr E
}

// Loader supplies the raw node/edge data that NewFromLoader consumes to
// build an immutable Graph. Implementations (package load) read one of the
// three external text/binary formats named in spec §6; Loader itself knows
// nothing about file formats.
type Loader[N any, E any] interface {
	// NodeCount returns the number of nodes, N. Node IDs are exactly
	// [0, N) in the order the loader assigns them.
	NodeCount() int

	// NodeAttr returns the attribute of node i.
	NodeAttr(i NodeID) N

	// OutEdges returns every edge leaving node i, in any order. Self-loops
	// and duplicate targets are construction errors (ErrSelfLoop,
	// ErrDuplicateEdge).
	OutEdges(i NodeID) []OutEdge[E]
}

// Graph is the immutable Attributed Relational Graph (ARG). It is built
// once via NewFromLoader and never mutated afterward; see doc.go for the
// concurrency contract.
type Graph[N any, E any] struct {
	nodeAttr []N

	// outNbr[i] / outEdgeAttr[i] are parallel, strictly ascending by
	// target node, duplicate-free, self-loop-free.
	outNbr      [][]NodeID
	outEdgeAttr [][]E

	// inNbr[i] / inEdgeAttr[i] mirror outNbr/outEdgeAttr: symmetric entry
	// for every out-edge, also sorted ascending by source node.
	inNbr      [][]NodeID
	inEdgeAttr [][]E

	nodeEq func(N, N) bool
	edgeEq func(E, E) bool

	stats Stats
}

// Stats holds the aggregate, graph-wide counts cached at construction time
// (spec §3: "max_deg_{in,out,total} and the counts of distinct node-/
// edge-attribute values are computed once and cached").
type Stats struct {
	NodeCount int
	EdgeCount int

	MaxOutDegree   int
	MaxInDegree    int
	MaxTotalDegree int

	DistinctNodeAttrs int
	DistinctEdgeAttrs int

	// ConnectedComponents is a supplemental statistic (not named by
	// spec.md) computed for diagnostic/CLI purposes; see countComponents in
	// arg/stats.go.
	ConnectedComponents int
}

// NodeCount returns the number of nodes, N.
func (g *Graph[N, E]) NodeCount() int { return len(g.nodeAttr) }

// NodeAttr returns the attribute of node i. Panics if i is out of range —
// an out-of-range node index is always a programming error (spec §4.1).
func (g *Graph[N, E]) NodeAttr(i NodeID) N {
	g.checkNode(i)

	return g.nodeAttr[i]
}

// Stats returns the cached aggregate statistics.
func (g *Graph[N, E]) Stats() Stats { return g.stats }

// NodeEqual reports whether two node attributes are compatible, using the
// Graph's configured comparator (default value equality, or a custom one
// installed via WithNodeEq).
func (g *Graph[N, E]) NodeEqual(a, b N) bool { return g.nodeEq(a, b) }

// EdgeEqual reports whether two edge attributes are compatible.
func (g *Graph[N, E]) EdgeEqual(a, b E) bool { return g.edgeEq(a, b) }

func (g *Graph[N, E]) checkNode(i NodeID) {
	if i < 0 || int(i) >= len(g.nodeAttr) {
		panic("arg: node index out of range")
	}
}
