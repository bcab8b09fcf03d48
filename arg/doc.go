// Package arg implements the immutable Attributed Relational Graph (ARG):
// the dense, zero-based node-identifier graph that both the pattern and the
// target of a (sub)graph isomorphism search are built from.
//
// A Graph is built once, from a Loader, and never mutated afterward. Nodes
// are identified by a dense int32 in [0, N); out- and in-adjacency are
// stored as parallel, strictly-ascending-by-target slices so that HasEdge
// and EdgeAttr resolve in O(log deg) via binary search. Aggregate
// statistics (max in/out/total degree, distinct node/edge attribute
// counts, connected-component count) are computed once at construction and
// cached on the Graph.
//
// Concurrency: a *Graph is read-only after NewFromLoader returns, so it is
// safe for unsynchronized concurrent reads from any number of goroutines —
// this is what lets the parallel matching engine (package match) share one
// pattern Graph and one target Graph across all worker threads without
// locking.
package arg
