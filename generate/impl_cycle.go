// SPDX-License-Identifier: MIT
// Package: vf3go/generate
package generate

import (
	"fmt"

	"github.com/vf3go/vf3/arg"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3

	methodPath   = "Path"
	minPathNodes = 2
)

// Cycle builds an n-vertex simple directed cycle C_n (n >= 3): nodes
// 0..n-1 in order, edges i -> (i+1)%n.
func Cycle[N any, E any](n int) Constructor[N, E] {
	return func(b *Builder[N, E], cfg *Config[N, E]) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		ids := addNodes(b, cfg, n)
		for i := 0; i < n; i++ {
			emit(b, cfg, ids[i], ids[(i+1)%n])
		}

		return nil
	}
}

// Path builds a simple directed path P_n (n >= 2): nodes 0..n-1, edges
// i -> i+1.
func Path[N any, E any](n int) Constructor[N, E] {
	return func(b *Builder[N, E], cfg *Config[N, E]) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		ids := addNodes(b, cfg, n)
		for i := 0; i < n-1; i++ {
			emit(b, cfg, ids[i], ids[i+1])
		}

		return nil
	}
}

// addNodes appends n fresh nodes via cfg.nodeAttr and returns their ids in
// insertion order; shared by every topology constructor in this package.
func addNodes[N any, E any](b *Builder[N, E], cfg *Config[N, E], n int) []arg.NodeID {
	ids := make([]arg.NodeID, n)
	base := b.NodeCount()
	for i := 0; i < n; i++ {
		ids[i] = b.AddNode(cfg.nodeAttr(base + i))
	}

	return ids
}
