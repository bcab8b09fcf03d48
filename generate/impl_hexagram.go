// SPDX-License-Identifier: MIT
// Package: vf3go/generate
package generate

import (
	"fmt"

	"github.com/vf3go/vf3/arg"
)

const methodHexagram = "Hexagram"

// HexagramVariant selects a Star-of-David pattern overlaid on a base ring.
type HexagramVariant int

const (
	// HexDefault is the classic 6-vertex hexagram: two interlocking triangles.
	HexDefault HexagramVariant = iota
	// HexMedium is an 8-vertex variant with two interlocking quadrilaterals.
	HexMedium
	// HexBig is a 12-vertex variant (base wheel) with long outer-triangle chords.
	HexBig
	// HexHuge is HexBig plus two inner triangles.
	HexHuge
)

var hexRingSize = map[HexagramVariant]int{
	HexDefault: 6,
	HexMedium:  8,
	HexBig:     12,
	HexHuge:    12,
}

var hexChords = map[HexagramVariant][]chord{
	HexDefault: {
		{0, 2}, {2, 4}, {4, 0},
		{1, 3}, {3, 5}, {5, 1},
	},
	HexMedium: {
		{0, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 0},
		{1, 2}, {2, 4}, {4, 6}, {6, 7}, {7, 0}, {0, 1},
	},
	HexBig: {
		{0, 1}, {1, 3}, {3, 4}, {4, 5}, {5, 7}, {7, 8}, {8, 9}, {9, 11}, {11, 0},
		{2, 3}, {3, 5}, {5, 6}, {6, 7}, {7, 9}, {9, 10}, {10, 11}, {11, 1}, {1, 2},
	},
	HexHuge: {
		{0, 1}, {1, 3}, {3, 4}, {4, 5}, {5, 7}, {7, 8}, {8, 9}, {9, 11}, {11, 0},
		{2, 3}, {3, 5}, {5, 6}, {6, 7}, {7, 9}, {9, 10}, {10, 11}, {11, 1}, {1, 2},
		{1, 5}, {5, 9}, {9, 1},
		{3, 7}, {7, 11}, {11, 3},
	},
}

// Hexagram builds a Star-of-David pattern for variant: HexDefault/HexMedium
// overlay chords on a base Cycle, HexBig/HexHuge on a base Wheel (chords
// never touch the wheel hub). Chords are emitted once each, both
// directions, regardless of cfg.Symmetric, to preserve the ring's
// undirected shell semantics.
func Hexagram[N any, E any](variant HexagramVariant) Constructor[N, E] {
	return func(b *Builder[N, E], cfg *Config[N, E]) error {
		n, ok := hexRingSize[variant]
		if !ok {
			return fmt.Errorf("%s: unknown variant %v: %w", methodHexagram, variant, ErrUnknownVariant)
		}

		base := b.NodeCount()

		switch variant {
		case HexDefault, HexMedium:
			if err := Cycle[N, E](n)(b, cfg); err != nil {
				return fmt.Errorf("%s: base cycle: %w", methodHexagram, err)
			}
		case HexBig, HexHuge:
			if err := Wheel[N, E](n + 1)(b, cfg); err != nil {
				return fmt.Errorf("%s: base wheel: %w", methodHexagram, err)
			}
		default:
			return fmt.Errorf("%s: unhandled variant %v: %w", methodHexagram, variant, ErrConstructFailed)
		}

		chords, ok := hexChords[variant]
		if !ok || len(chords) == 0 {
			return fmt.Errorf("%s: missing chords for %v: %w", methodHexagram, variant, ErrConstructFailed)
		}

		for _, ch := range chords {
			u := arg.NodeID(base + ch.U)
			v := arg.NodeID(base + ch.V)
			if !hasEdge(b, u, v) {
				b.AddEdge(u, v, cfg.edgeAttr(int(u), int(v)))
			}
			if !hasEdge(b, v, u) {
				b.AddEdge(v, u, cfg.edgeAttr(int(v), int(u)))
			}
		}

		return nil
	}
}

// hasEdge linearly scans b's already-emitted out-edges for u->v; chord
// overlays need this to avoid re-adding an edge the base ring/wheel
// already created (arg.NewFromLoader rejects duplicate edges).
func hasEdge[N any, E any](b *Builder[N, E], u, v arg.NodeID) bool {
	for _, e := range b.edges[u] {
		if e.To == v {
			return true
		}
	}

	return false
}
