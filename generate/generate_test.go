// SPDX-License-Identifier: MIT
// Package: vf3go/generate
package generate

import (
	"errors"
	"testing"

	"github.com/vf3go/vf3/arg"
)

func intAttrCfg() *Config[int, int] {
	return NewConfig[int, int](
		WithNodeAttr[int, int](func(i int) int { return i }),
		WithEdgeAttr[int, int](func(u, v int) int { return 1 }),
	)
}

func TestCycle(t *testing.T) {
	g, err := Build(intAttrCfg(), Cycle[int, int](5))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.NodeCount() != 5 {
		t.Fatalf("NodeCount = %d, want 5", g.NodeCount())
	}
	if g.Stats().EdgeCount != 5 {
		t.Fatalf("EdgeCount = %d, want 5", g.Stats().EdgeCount)
	}
	for i := 0; i < 5; i++ {
		if !g.HasEdge(arg.NodeID(i), arg.NodeID((i+1)%5)) {
			t.Fatalf("missing ring edge %d->%d", i, (i+1)%5)
		}
	}
}

func TestCycle_TooFewVertices(t *testing.T) {
	_, err := Build(intAttrCfg(), Cycle[int, int](2))
	if !errors.Is(err, ErrTooFewVertices) {
		t.Fatalf("err = %v, want ErrTooFewVertices", err)
	}
}

func TestPath(t *testing.T) {
	g, err := Build(intAttrCfg(), Path[int, int](4))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.Stats().EdgeCount != 3 {
		t.Fatalf("EdgeCount = %d, want 3", g.Stats().EdgeCount)
	}
	if g.OutDegree(3) != 0 {
		t.Fatalf("last node should have no out-edges")
	}
}

func TestStar(t *testing.T) {
	g, err := Build(intAttrCfg(), Star[int, int](6))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.OutDegree(0) != 5 {
		t.Fatalf("hub out-degree = %d, want 5", g.OutDegree(0))
	}
	for i := 1; i < 6; i++ {
		if g.OutDegree(arg.NodeID(i)) != 0 {
			t.Fatalf("leaf %d should have no out-edges", i)
		}
	}
}

func TestWheel(t *testing.T) {
	g, err := Build(intAttrCfg(), Wheel[int, int](6))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.NodeCount() != 6 {
		t.Fatalf("NodeCount = %d, want 6", g.NodeCount())
	}
	hub := arg.NodeID(5)
	if g.OutDegree(hub) != 5 {
		t.Fatalf("hub out-degree = %d, want 5", g.OutDegree(hub))
	}
	for i := 0; i < 5; i++ {
		if !g.HasEdge(hub, arg.NodeID(i)) {
			t.Fatalf("missing spoke hub->%d", i)
		}
	}
}

func TestComplete(t *testing.T) {
	g, err := Build(intAttrCfg(), Complete[int, int](4))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.Stats().EdgeCount != 4*3 {
		t.Fatalf("EdgeCount = %d, want %d", g.Stats().EdgeCount, 4*3)
	}
	for i := 0; i < 4; i++ {
		if g.OutDegree(arg.NodeID(i)) != 3 {
			t.Fatalf("node %d out-degree = %d, want 3", i, g.OutDegree(arg.NodeID(i)))
		}
	}
}

func TestBipartite(t *testing.T) {
	g, err := Build(intAttrCfg(), Bipartite[int, int](2, 3))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.NodeCount() != 5 {
		t.Fatalf("NodeCount = %d, want 5", g.NodeCount())
	}
	if g.Stats().EdgeCount != 2*3 {
		t.Fatalf("EdgeCount = %d, want %d", g.Stats().EdgeCount, 2*3)
	}
}

func TestGrid(t *testing.T) {
	g, err := Build(intAttrCfg(), Grid[int, int](2, 3))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.NodeCount() != 6 {
		t.Fatalf("NodeCount = %d, want 6", g.NodeCount())
	}
	// 2x3 grid: horizontal edges = 2*2=4, vertical edges = 1*3=3.
	if g.Stats().EdgeCount != 7 {
		t.Fatalf("EdgeCount = %d, want 7", g.Stats().EdgeCount)
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	cfg1 := NewConfig[int, int](WithNodeAttr[int, int](func(i int) int { return i }), WithSeed[int, int](42))
	cfg2 := NewConfig[int, int](WithNodeAttr[int, int](func(i int) int { return i }), WithSeed[int, int](42))

	g1, err := Build(cfg1, RandomSparse[int, int](20, 0.3))
	if err != nil {
		t.Fatalf("Build 1: %v", err)
	}
	g2, err := Build(cfg2, RandomSparse[int, int](20, 0.3))
	if err != nil {
		t.Fatalf("Build 2: %v", err)
	}
	if g1.Stats().EdgeCount != g2.Stats().EdgeCount {
		t.Fatalf("edge counts differ across identical seeds: %d vs %d", g1.Stats().EdgeCount, g2.Stats().EdgeCount)
	}
	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			if i == j {
				continue
			}
			if g1.HasEdge(arg.NodeID(i), arg.NodeID(j)) != g2.HasEdge(arg.NodeID(i), arg.NodeID(j)) {
				t.Fatalf("edge %d->%d differs across identical seeds", i, j)
			}
		}
	}
}

func TestRandomSparse_NeedsRandSource(t *testing.T) {
	_, err := Build(intAttrCfg(), RandomSparse[int, int](5, 0.5))
	if !errors.Is(err, ErrNeedRandSource) {
		t.Fatalf("err = %v, want ErrNeedRandSource", err)
	}
}

func TestRandomSparse_InvalidProbability(t *testing.T) {
	cfg := NewConfig[int, int](WithSeed[int, int](1))
	_, err := Build(cfg, RandomSparse[int, int](5, 1.5))
	if !errors.Is(err, ErrInvalidProbability) {
		t.Fatalf("err = %v, want ErrInvalidProbability", err)
	}
}

func TestRandomRegular_DegreeSequence(t *testing.T) {
	cfg := NewConfig[int, int](WithNodeAttr[int, int](func(i int) int { return i }), WithSeed[int, int](7))
	g, err := Build(cfg, RandomRegular[int, int](10, 3))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := 0; i < 10; i++ {
		if g.OutDegree(arg.NodeID(i)) != 3 {
			t.Fatalf("node %d out-degree = %d, want 3", i, g.OutDegree(arg.NodeID(i)))
		}
	}
}

func TestRandomRegular_OddProductRejected(t *testing.T) {
	cfg := NewConfig[int, int](WithSeed[int, int](1))
	_, err := Build(cfg, RandomRegular[int, int](5, 3))
	if !errors.Is(err, ErrTooFewVertices) {
		t.Fatalf("err = %v, want ErrTooFewVertices (odd n*d guard)", err)
	}
}

func TestPlatonicSolid_Tetrahedron(t *testing.T) {
	g, err := Build(intAttrCfg(), PlatonicSolid[int, int](Tetrahedron, false))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.NodeCount() != 4 {
		t.Fatalf("NodeCount = %d, want 4", g.NodeCount())
	}
	if g.Stats().EdgeCount != 6*2 {
		t.Fatalf("EdgeCount = %d, want %d", g.Stats().EdgeCount, 6*2)
	}
	for i := 0; i < 4; i++ {
		if g.OutDegree(arg.NodeID(i)) != 3 {
			t.Fatalf("node %d out-degree = %d, want 3", i, g.OutDegree(arg.NodeID(i)))
		}
	}
}

func TestPlatonicSolid_WithCenter(t *testing.T) {
	g, err := Build(intAttrCfg(), PlatonicSolid[int, int](Cube, true))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.NodeCount() != 9 {
		t.Fatalf("NodeCount = %d, want 9", g.NodeCount())
	}
	hub := arg.NodeID(8)
	if g.OutDegree(hub) != 8 {
		t.Fatalf("hub out-degree = %d, want 8", g.OutDegree(hub))
	}
}

func TestPlatonicSolid_UnknownVariant(t *testing.T) {
	_, err := Build(intAttrCfg(), PlatonicSolid[int, int](PlatonicName(99), false))
	if !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("err = %v, want ErrUnknownVariant", err)
	}
}

func TestHexagram_Default(t *testing.T) {
	g, err := Build(intAttrCfg(), Hexagram[int, int](HexDefault))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.NodeCount() != 6 {
		t.Fatalf("NodeCount = %d, want 6", g.NodeCount())
	}
	// Base cycle contributes 6 edges, chords contribute 6 edges each way = 12.
	if g.Stats().EdgeCount != 6+12 {
		t.Fatalf("EdgeCount = %d, want %d", g.Stats().EdgeCount, 6+12)
	}
}

func TestHexagram_Big_OverlaysWheel(t *testing.T) {
	g, err := Build(intAttrCfg(), Hexagram[int, int](HexBig))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// Wheel(13): 12-node rim cycle + hub, so 13 nodes total.
	if g.NodeCount() != 13 {
		t.Fatalf("NodeCount = %d, want 13", g.NodeCount())
	}
}

func TestHexagram_UnknownVariant(t *testing.T) {
	_, err := Build(intAttrCfg(), Hexagram[int, int](HexagramVariant(99)))
	if !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("err = %v, want ErrUnknownVariant", err)
	}
}

func TestBuild_NilConstructorRejected(t *testing.T) {
	_, err := Build(intAttrCfg(), Cycle[int, int](3), nil)
	if !errors.Is(err, ErrConstructFailed) {
		t.Fatalf("err = %v, want ErrConstructFailed", err)
	}
}

func TestBuild_ComposesMultipleConstructors(t *testing.T) {
	g, err := Build(intAttrCfg(), Cycle[int, int](3), Path[int, int](2))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.NodeCount() != 5 {
		t.Fatalf("NodeCount = %d, want 5 (3 cycle + 2 path)", g.NodeCount())
	}
}
