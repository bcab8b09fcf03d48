// Package state implements the VF3 matching state machine (spec §4.6,
// §9): the partial node mapping between a pattern P and a target T,
// together with the terminal-set bookkeeping and lookahead counters that
// let the engine (package match) prune branches before recursing.
//
// Shared holds everything that is built once and never mutated again:
// the two graphs, the class table, the ordering artifacts, and the
// pattern-side per-depth arrays used for lookahead pruning. State is the
// mutable, per-branch partial mapping; AddPair/Backtrack mutate it in
// place, matching the C++ original's "a state is reused across the DFS
// stack, not reallocated per node" design — a dedicated struct with
// explicit fields and no closures keeps the hot path's memory layout
// predictable.
//
// Three variants share one State type, differing only in how
// aggressively IsFeasible applies the lookahead test:
//   - Full: lookahead runs at every depth.
//   - VF3K: lookahead runs only while depth is below a configured cap K;
//     past the cap, the engine still finds every solution, it just prunes
//     less.
//   - Light: lookahead never runs; only the cheaper attribute/degree/edge
//     consistency checks are used.
package state
