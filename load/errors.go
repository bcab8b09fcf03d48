// SPDX-License-Identifier: MIT
// Package: vf3go/load
package load

import "errors"

// ErrMalformedRecord indicates a line or binary record did not match the
// expected shape for the format being read.
var ErrMalformedRecord = errors.New("load: malformed record")

// ErrSelfLoop indicates an edge-format input named a self-edge, which the
// format forbids.
var ErrSelfLoop = errors.New("load: self-loop not allowed in edge format")

// ErrNodeIDOutOfOrder indicates a vf-format node line's id did not equal
// the zero-based line index expected next.
var ErrNodeIDOutOfOrder = errors.New("load: node id out of order")
