// SPDX-License-Identifier: MIT
// Package: vf3go/order
package order

import "github.com/vf3go/vf3/arg"

// Dir is the relation of pred[v] to v in the pattern: whether the edge
// connecting them is an in-edge or an out-edge of v, or absent for the
// root of sigma.
type Dir int

const (
	// None marks sigma's first node, which has no pred.
	None Dir = iota
	// In means pred[v] is an in-neighbor of v.
	In
	// Out means pred[v] is an out-neighbor of v.
	Out
)

// Artifacts is the ordering output consumed by package state: Sigma[k] is
// the pattern node visited at depth k; Pred[v] is v's first sigma-earlier
// neighbor (arg.NilNode for Sigma[0]); Dir[v] records whether that
// neighbor reaches v via an in- or out-edge of v.
type Artifacts struct {
	Sigma []arg.NodeID
	Pred  []arg.NodeID
	Dir   []Dir
}
