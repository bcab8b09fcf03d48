// SPDX-License-Identifier: MIT
// Package: vf3go/generate
package generate

import "fmt"

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

// String gives a readable identifier for error messages.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// chord is an unordered shell edge with U < V.
type chord struct{ U, V int }

var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

var platonicEdgeSets = map[PlatonicName][]chord{
	Tetrahedron: {
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	},
	Cube: {
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
		{4, 5}, {4, 7}, {5, 6}, {6, 7},
	},
	Octahedron: {
		{0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 4}, {2, 5}, {3, 4}, {3, 5},
	},
	Dodecahedron: {
		{0, 1}, {0, 4}, {1, 2}, {2, 3}, {3, 4},
		{5, 6}, {5, 9}, {6, 7}, {7, 8}, {8, 9},
		{10, 11}, {10, 19}, {11, 12}, {12, 13}, {13, 14},
		{14, 15}, {15, 16}, {16, 17}, {17, 18}, {18, 19},
		{0, 10}, {1, 12}, {2, 14}, {3, 16}, {4, 18},
		{5, 11}, {6, 13}, {7, 15}, {8, 17}, {9, 19},
	},
	Icosahedron: {
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 5}, {2, 3}, {3, 4}, {4, 5},
		{1, 6}, {1, 7}, {2, 7}, {2, 8}, {3, 8},
		{3, 9}, {4, 9}, {4, 10}, {5, 6}, {5, 10},
		{6, 7}, {6, 10}, {7, 8}, {8, 9}, {9, 10},
		{6, 11}, {7, 11}, {8, 11}, {9, 11}, {10, 11},
	},
}

// PlatonicSolid builds the canonical shell graph for name, every shell edge
// emitted both ways (the shell is inherently undirected). If withCenter,
// an extra hub node is appended last with a spoke to every shell vertex.
func PlatonicSolid[N any, E any](name PlatonicName, withCenter bool) Constructor[N, E] {
	return func(b *Builder[N, E], cfg *Config[N, E]) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %v: %w", methodPlatonicSolid, name, ErrUnknownVariant)
		}

		ids := addNodes(b, cfg, n)

		edges, ok := platonicEdgeSets[name]
		if !ok {
			return fmt.Errorf("%s: missing edge set for %v: %w", methodPlatonicSolid, name, ErrConstructFailed)
		}
		for _, ch := range edges {
			u, v := ids[ch.U], ids[ch.V]
			b.AddEdge(u, v, cfg.edgeAttr(int(u), int(v)))
			b.AddEdge(v, u, cfg.edgeAttr(int(v), int(u)))
		}

		if withCenter {
			hub := b.AddNode(cfg.nodeAttr(b.NodeCount()))
			for _, v := range ids {
				b.AddEdge(hub, v, cfg.edgeAttr(int(hub), int(v)))
				b.AddEdge(v, hub, cfg.edgeAttr(int(v), int(hub)))
			}
		}

		return nil
	}
}
