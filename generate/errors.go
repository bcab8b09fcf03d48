// SPDX-License-Identifier: MIT
// Package: vf3go/generate
package generate

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols, degree) is
// below the minimum the requested topology requires, or (RandomRegular) a
// degree outside [0, n) or an odd n*degree.
var ErrTooFewVertices = errors.New("generate: parameter too small")

// ErrInvalidProbability indicates an edge probability fell outside [0,1].
var ErrInvalidProbability = errors.New("generate: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// configured via WithSeed.
var ErrNeedRandSource = errors.New("generate: rng is required")

// ErrConstructFailed indicates a bounded-retry strategy (stub-matching for
// RandomRegular) exhausted its attempts without producing a valid graph,
// Build was given a nil constructor, or a constructor's built-in edge or
// chord table had no entry for the requested variant.
var ErrConstructFailed = errors.New("generate: construction failed")

// ErrUnknownVariant indicates an unrecognized enum value was passed to a
// constructor that only accepts a fixed set (PlatonicSolid, Hexagram).
var ErrUnknownVariant = errors.New("generate: unknown variant")
