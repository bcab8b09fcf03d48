// Package vf3 is a (sub)graph isomorphism engine for attributed relational
// graphs (ARGs) in Go.
//
// 🚀 What is vf3go/vf3?
//
//	A generic, dependency-light library that brings together:
//
//	  • Core primitives: an immutable, dense-int-ID ARG with O(log deg)
//	    adjacency lookups and cached aggregate statistics
//	  • The VF3 matching pipeline: FastReject, node classification, a
//	    probability-driven pattern sorter, and three lookahead variants
//	    (VF3 full, VF3K, VF3-Light)
//	  • Serial and parallel search engines, with a lock-free global stack
//	    option for the parallel variant
//
// ✨ Why choose vf3?
//
//   - Generic over attribute types — plug in any comparable node/edge
//     attribute, or a custom equality comparator for non-comparable ones
//   - Two semantics — (sub)graph isomorphism and induced isomorphism,
//     selected per search, not baked into the graph
//   - Scales out — a parallel engine with both global-only and
//     global+local-stack work distribution
//
// Under the hood, everything is organized under focused subpackages:
//
//	arg/          — the immutable ARG type and its construction loader
//	reject/       — FastReject, the cheap pre-search necessary-condition test
//	classify/     — node classification into attribute-value classes
//	probability/  — the probability model driving pattern ordering
//	order/        — VF3, RI, and plain pattern-node sorters
//	state/        — the matching state machine (VF3 full / VF3K / VF3-Light)
//	match/        — serial and parallel search engines
//	load/         — vf / edge-list / binary ARG file formats
//	trace/        — CSV execution trace writer
//	generate/     — synthetic ARG generators, used by tests and `vf3 generate`
//	cmd/vf3/      — the vf3 CLI
//
// Quick example — match a single node against an attribute-sharing target:
//
//	    P: (7)         T: (3) (7) (7)
//
//	yields two sub-isomorphisms: {0->1} and {0->2}.
//
// Dive into DESIGN.md for the grounding behind each package, and run
// `vf3 generate --help` for a quick way to produce test graphs.
//
//	go get github.com/vf3go/vf3
package vf3
