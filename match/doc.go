// Package match implements the two VF3 matching engines (spec §4.7,
// §4.8): Serial, a single-threaded depth-first search, and Parallel, a
// fixed-size worker pool sharing a global stack (mutex-guarded or
// lock-free) and per-worker local stacks.
//
// Both engines walk the same state.Shared/state.State machine; neither
// understands pattern ordering, feasibility, or terminal-set bookkeeping
// itself — that is entirely package state's job. Logging uses zerolog,
// matching the rest of this module's ambient stack.
package match
