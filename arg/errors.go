// SPDX-License-Identifier: MIT
// Package: vf3go/arg
//
// errors.go — sentinel errors for graph construction.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Construction errors identify the offending node/edge via %w wrapping.
//   - Out-of-range index access on a built Graph (HasEdge, EdgeAttr, ...) is
//     a programming error, not a recoverable one: it panics rather than
//     returning an error, per spec's "Inconsistent" failure mode.
package arg

import (
	"errors"
	"fmt"
)

// ErrNodeCountMismatch indicates the Loader reported an invalid
// (negative) NodeCount.
var ErrNodeCountMismatch = errors.New("arg: loader node count mismatch")

// ErrNodeIndexOutOfRange indicates an edge endpoint fell outside [0, N).
var ErrNodeIndexOutOfRange = errors.New("arg: node index out of range")

// ErrSelfLoop indicates a loader produced an edge from a node to itself,
// which is forbidden by the ARG invariants (spec §3).
var ErrSelfLoop = errors.New("arg: self-loop not allowed")

// ErrDuplicateEdge indicates the same (from, to) pair was emitted twice by
// the Loader for the same node; the ARG representation requires strictly
// ascending, duplicate-free out-neighbor lists.
var ErrDuplicateEdge = errors.New("arg: duplicate edge")

// argErrorf wraps an inner error message with the given method context.
func argErrorf(method string, wrapped error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, wrapped)
}
