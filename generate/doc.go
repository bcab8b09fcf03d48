// Package generate builds synthetic ARGs for tests and benchmarks: the
// same catalogue of canonical topologies the teacher's builder package
// assembles over a mutable core.Graph (cycle, path, star, wheel, complete,
// bipartite, grid, random sparse/regular, Platonic solids, hexagrams),
// retargeted to emit into an arg.Loader so the result can feed directly
// into arg.NewFromLoader and, from there, the matching engine.
//
// Build composes a Config (node/edge attribute generators, optional RNG)
// with any number of Constructors:
//
//	g, err := generate.Build(generate.NewConfig[int, int](), generate.Cycle[int, int](6))
package generate
