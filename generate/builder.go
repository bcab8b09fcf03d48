// SPDX-License-Identifier: MIT
// Package: vf3go/generate
package generate

import (
	"fmt"

	"github.com/vf3go/vf3/arg"
)

// Constructor applies one deterministic topology to an in-progress
// Builder, generalizing the teacher's Constructor type from mutating a
// core.Graph to appending into an arg.Loader-shaped Builder.
type Constructor[N any, E any] func(b *Builder[N, E], cfg *Config[N, E]) error

// Builder is the mutable, append-only loader a Constructor fills in;
// Build hands the finished Builder to arg.NewFromLoader.
type Builder[N any, E any] struct {
	attrs []N
	edges [][]arg.OutEdge[E]
}

// AddNode appends a node with the given attribute and returns its id.
func (b *Builder[N, E]) AddNode(attr N) arg.NodeID {
	id := arg.NodeID(len(b.attrs))
	b.attrs = append(b.attrs, attr)
	b.edges = append(b.edges, nil)

	return id
}

// AddEdge appends a directed edge u->v with the given attribute.
func (b *Builder[N, E]) AddEdge(u, v arg.NodeID, attr E) {
	b.edges[u] = append(b.edges[u], arg.OutEdge[E]{To: v, Attr: attr})
}

// emit adds u->v, and if cfg.Symmetric also v->u, using cfg.edgeAttr for
// both endpoints' index pair.
func emit[N any, E any](b *Builder[N, E], cfg *Config[N, E], u, v arg.NodeID) {
	b.AddEdge(u, v, cfg.edgeAttr(int(u), int(v)))
	if cfg.Symmetric {
		b.AddEdge(v, u, cfg.edgeAttr(int(v), int(u)))
	}
}

// NodeCount implements arg.Loader.
func (b *Builder[N, E]) NodeCount() int { return len(b.attrs) }

// NodeAttr implements arg.Loader.
func (b *Builder[N, E]) NodeAttr(i arg.NodeID) N { return b.attrs[i] }

// OutEdges implements arg.Loader.
func (b *Builder[N, E]) OutEdges(i arg.NodeID) []arg.OutEdge[E] { return b.edges[i] }

// Build runs every Constructor in order against a fresh Builder under cfg,
// then hands the result to arg.NewFromLoader. Constructor order is
// significant and, for a fixed cfg (including RNG seed), deterministic.
func Build[N comparable, E comparable](cfg *Config[N, E], cons ...Constructor[N, E]) (*arg.Graph[N, E], error) {
	b := &Builder[N, E]{}

	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("generate.Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := c(b, cfg); err != nil {
			return nil, fmt.Errorf("generate.Build: %w", err)
		}
	}

	g, err := arg.NewFromLoader[N, E](b)
	if err != nil {
		return nil, fmt.Errorf("generate.Build: %w", err)
	}

	return g, nil
}
