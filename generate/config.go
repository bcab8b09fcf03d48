// SPDX-License-Identifier: MIT
// Package: vf3go/generate
package generate

import "math/rand"

// NodeAttrFn produces the attribute for node index i (0-based, insertion
// order).
type NodeAttrFn[N any] func(i int) N

// EdgeAttrFn produces the attribute for an edge from index u to index v.
type EdgeAttrFn[E any] func(u, v int) E

// Option customizes a Config before a Build call.
type Option[N any, E any] func(cfg *Config[N, E])

// Config holds the knobs every topology constructor reads: an optional
// RNG for stochastic generators, and the functions that turn a bare node
// or edge index pair into the attribute value the caller's graph needs.
type Config[N any, E any] struct {
	rng      *rand.Rand
	nodeAttr NodeAttrFn[N]
	edgeAttr EdgeAttrFn[E]

	// Symmetric mirrors every topology edge u->v with v->u, matching the
	// "directed graphs mirror spokes/rungs" policy the teacher's builder
	// constructors apply uniformly. Off by default: arg.Graph is
	// direction-aware by construction, and callers building a pattern for
	// directed sub-isomorphism want the asymmetry.
	Symmetric bool
}

// NewConfig returns a Config with zero-value attribute generators (every
// node/edge attribute is the zero value of N/E) and no RNG.
func NewConfig[N any, E any](opts ...Option[N, E]) *Config[N, E] {
	cfg := &Config[N, E]{
		nodeAttr: func(i int) N { var zero N; return zero },
		edgeAttr: func(u, v int) E { var zero E; return zero },
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithNodeAttr installs a custom NodeAttrFn.
func WithNodeAttr[N any, E any](fn NodeAttrFn[N]) Option[N, E] {
	return func(cfg *Config[N, E]) {
		if fn != nil {
			cfg.nodeAttr = fn
		}
	}
}

// WithEdgeAttr installs a custom EdgeAttrFn.
func WithEdgeAttr[N any, E any](fn EdgeAttrFn[E]) Option[N, E] {
	return func(cfg *Config[N, E]) {
		if fn != nil {
			cfg.edgeAttr = fn
		}
	}
}

// WithSeed seeds a fresh *rand.Rand for stochastic constructors
// (RandomSparse, RandomRegular).
func WithSeed[N any, E any](seed int64) Option[N, E] {
	return func(cfg *Config[N, E]) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSymmetric toggles mirroring every directed edge with its reverse.
func WithSymmetric[N any, E any](symmetric bool) Option[N, E] {
	return func(cfg *Config[N, E]) {
		cfg.Symmetric = symmetric
	}
}
