// SPDX-License-Identifier: MIT
// Package: vf3go/generate
package generate

import (
	"fmt"

	"github.com/vf3go/vf3/arg"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	methodWheel   = "Wheel"
	minWheelNodes = 4 // outer cycle has size (n-1), which must be >= 3
)

// Star builds a star with hub node 0 and n-1 leaves 1..n-1 (n >= 2):
// spokes hub -> leaf in ascending leaf order.
func Star[N any, E any](n int) Constructor[N, E] {
	return func(b *Builder[N, E], cfg *Config[N, E]) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		ids := addNodes(b, cfg, n)
		for i := 1; i < n; i++ {
			emit(b, cfg, ids[0], ids[i])
		}

		return nil
	}
}

// Wheel builds W_n = C_{n-1} + hub (n >= 4): an (n-1)-cycle over nodes
// 0..n-2 plus a hub node n-1 spoked to every rim node.
func Wheel[N any, E any](n int) Constructor[N, E] {
	return func(b *Builder[N, E], cfg *Config[N, E]) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		base := b.NodeCount()
		if err := Cycle[N, E](n - 1)(b, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}

		hub := b.AddNode(cfg.nodeAttr(base + n - 1))
		for i := 0; i < n-1; i++ {
			emit(b, cfg, hub, arg.NodeID(base+i))
		}

		return nil
	}
}
