// SPDX-License-Identifier: MIT
// Package: vf3go/cmd/vf3/cmd
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vf3go/vf3/generate"
	"github.com/vf3go/vf3/load"
)

var (
	genSize        int
	genSecondSize  int
	genSeed        int64
	genSymmetric   bool
	genProbability float64
	genDegree      int
	genVariant     string
	genWithCenter  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <shape> <output_file>",
	Short: "Write a synthetic ARG to output_file in vf format",
	Long: `generate builds one of the canonical or stochastic topologies from
the generate package and writes it to output_file in the text "vf" format,
for producing pattern/target files to exercise the matcher with.

Shapes: cycle, path, star, wheel, complete, bipartite, grid,
random-sparse, random-regular, platonic, hexagram.`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	binName := BinName()
	generateCmd.Example = `  # A 10-node cycle
  ` + binName + ` generate cycle -n 10 pattern.vf

  # A bipartite graph K(3,4)
  ` + binName + ` generate bipartite -n 3 --n2 4 target.vf

  # A 5x5 grid
  ` + binName + ` generate grid -n 5 --n2 5 target.vf

  # An Erdos-Renyi sparse graph, 20 nodes, edge probability 0.1, fixed seed
  ` + binName + ` generate random-sparse -n 20 --probability 0.1 --seed 42 target.vf

  # A dodecahedron with a center hub
  ` + binName + ` generate platonic --variant dodecahedron --with-center pattern.vf`

	generateCmd.Flags().IntVarP(&genSize, "size", "n", 0, "primary size parameter (vertex count, or n1 for bipartite/rows for grid)")
	generateCmd.Flags().IntVar(&genSecondSize, "n2", 0, "secondary size parameter (n2 for bipartite, cols for grid)")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "RNG seed for random-sparse/random-regular")
	generateCmd.Flags().BoolVar(&genSymmetric, "symmetric", false, "mirror every emitted edge (ignored by shapes that are always symmetric)")
	generateCmd.Flags().Float64Var(&genProbability, "probability", 0.1, "edge probability for random-sparse")
	generateCmd.Flags().IntVar(&genDegree, "degree", 3, "target degree for random-regular")
	generateCmd.Flags().StringVar(&genVariant, "variant", "", "platonic solid name (tetrahedron, cube, octahedron, dodecahedron, icosahedron) or hexagram variant (default, medium, big, huge)")
	generateCmd.Flags().BoolVar(&genWithCenter, "with-center", false, "add a hub node connected to every shell vertex (platonic only)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	shape, outputPath := args[0], args[1]

	cfg := generate.NewConfig[int, int](
		generate.WithNodeAttr[int, int](func(i int) int { return i }),
		generate.WithEdgeAttr[int, int](func(u, v int) int { return 1 }),
		generate.WithSeed[int, int](genSeed),
		generate.WithSymmetric[int, int](genSymmetric),
	)

	cons, err := constructorFor(shape)
	if err != nil {
		return err
	}

	g, err := generate.Build(cfg, cons)
	if err != nil {
		return fmt.Errorf("generating %s: %w", shape, err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := load.WriteVF[int, int](f, g, load.FormatIntAttr, load.FormatIntAttr); err != nil {
		return fmt.Errorf("writing vf file: %w", err)
	}

	logger.Info().Str("shape", shape).Int("nodes", g.NodeCount()).
		Int("edges", g.Stats().EdgeCount).Str("file", outputPath).Msg("graph generated")

	return nil
}

func constructorFor(shape string) (generate.Constructor[int, int], error) {
	switch strings.ToLower(shape) {
	case "cycle":
		return generate.Cycle[int, int](genSize), nil
	case "path":
		return generate.Path[int, int](genSize), nil
	case "star":
		return generate.Star[int, int](genSize), nil
	case "wheel":
		return generate.Wheel[int, int](genSize), nil
	case "complete":
		return generate.Complete[int, int](genSize), nil
	case "bipartite":
		return generate.Bipartite[int, int](genSize, genSecondSize), nil
	case "grid":
		return generate.Grid[int, int](genSize, genSecondSize), nil
	case "random-sparse":
		return generate.RandomSparse[int, int](genSize, genProbability), nil
	case "random-regular":
		return generate.RandomRegular[int, int](genSize, genDegree), nil
	case "platonic":
		name, err := platonicNameFor(genVariant)
		if err != nil {
			return nil, err
		}

		return generate.PlatonicSolid[int, int](name, genWithCenter), nil
	case "hexagram":
		variant, err := hexagramVariantFor(genVariant)
		if err != nil {
			return nil, err
		}

		return generate.Hexagram[int, int](variant), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", shape)
	}
}

func platonicNameFor(s string) (generate.PlatonicName, error) {
	switch strings.ToLower(s) {
	case "tetrahedron":
		return generate.Tetrahedron, nil
	case "cube":
		return generate.Cube, nil
	case "octahedron":
		return generate.Octahedron, nil
	case "dodecahedron":
		return generate.Dodecahedron, nil
	case "icosahedron":
		return generate.Icosahedron, nil
	default:
		return 0, fmt.Errorf("unknown --variant %q for platonic (want tetrahedron, cube, octahedron, dodecahedron, or icosahedron)", s)
	}
}

func hexagramVariantFor(s string) (generate.HexagramVariant, error) {
	switch strings.ToLower(s) {
	case "", "default":
		return generate.HexDefault, nil
	case "medium":
		return generate.HexMedium, nil
	case "big":
		return generate.HexBig, nil
	case "huge":
		return generate.HexHuge, nil
	default:
		return 0, fmt.Errorf("unknown --variant %q for hexagram (want default, medium, big, or huge)", s)
	}
}
