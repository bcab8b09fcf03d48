// SPDX-License-Identifier: MIT
// Package: vf3go/cmd/vf3/cmd
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Persistent flags, shared by the root match command and `generate`.
	verbose bool

	// logger is built once in PersistentPreRunE from the verbose flag.
	logger zerolog.Logger

	// Root (match) command flags.
	inputFormat    string
	undirected     bool
	storeSolutions bool
	repeatSeconds  float64
	tracePath      string
	threads        int
	firstCPU       int
	algoVariant    int
	ssrHighLimit   int
	ssrLocalLimit  int
	lockFreeStack  bool
)

// rootCmd is the vf3 matcher: `vf3 <pattern_file> <target_file> [flags]`.
// Unlike a typical multi-purpose CLI, matching is the default action of
// the root command itself, not a subcommand — `generate` is the only
// auxiliary subcommand, for producing synthetic pattern/target files.
var rootCmd = &cobra.Command{
	Use:   "vf3 <pattern_file> <target_file>",
	Short: "Find (sub)graph isomorphisms between a pattern and a target ARG",
	Long: `vf3 searches for every embedding of a pattern graph into a target
graph (subgraph isomorphism by default), using the VF3 state-space search:
fast necessary-condition rejection, a greedy pattern node ordering, and a
class/probability-driven lookahead bound.`,
	Args: cobra.ExactArgs(2),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
			Level(level).With().Timestamp().Logger()

		return nil
	},
	RunE: runMatch,
}

// Execute runs the root command, exiting non-zero on argument parsing,
// I/O, or allocation-failure errors (spec §6). "No matches found" is a
// successful run (exit 0) and is never surfaced as an error here.
func Execute() {
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vf3:", err)
		os.Exit(1)
	}
}

func init() {
	// Register "help" ourselves with no shorthand so cobra's automatic
	// help-flag init (which otherwise claims "-h") leaves "-h" free for
	// the SSR global-stack limit flag below.
	rootCmd.PersistentFlags().Bool("help", false, "help for "+BinName())

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose timing and Debug-level search logging")

	rootCmd.Flags().StringVarP(&inputFormat, "format", "f", "vf", "input format: vf, edge, or bin")
	rootCmd.Flags().BoolVarP(&undirected, "undirected", "u", false, "load graphs as undirected (symmetrize edges)")
	rootCmd.Flags().BoolVarP(&storeSolutions, "store-solutions", "s", false, "print every found mapping to stdout")
	rootCmd.Flags().Float64VarP(&repeatSeconds, "repeat-seconds", "r", 1, "minimum wall time for benchmark repetitions")
	rootCmd.Flags().StringVar(&tracePath, "trace", "", "optional CSV execution trace output file")

	rootCmd.Flags().IntVarP(&threads, "threads", "t", 0, "worker count; 0 runs the serial engine")
	rootCmd.Flags().IntVarP(&firstCPU, "first-cpu", "c", -1, "first CPU for pool pinning (accepted, logged, not applied: no portable Go equivalent)")
	rootCmd.Flags().IntVarP(&algoVariant, "algo", "a", 2, "parallel engine variant: 1 (global-stack only) or 2 (global+local stacks)")
	rootCmd.Flags().IntVarP(&ssrHighLimit, "high", "h", 0, "G_limit: pattern depth at or below which children go to the shared stack (0 = library default)")
	rootCmd.Flags().IntVarP(&ssrLocalLimit, "low", "l", 0, "L_limit: worker local-stack depth cap (0 = |V(P)|)")
	rootCmd.Flags().BoolVarP(&lockFreeStack, "lock-free", "k", false, "use the lock-free global stack instead of the mutex-guarded one")

	binName := BinName()
	rootCmd.Example = `  # Subgraph isomorphism, vf text format, single-threaded
  ` + binName + ` pattern.vf target.vf

  # Undirected edge-list input, verbose timing
  ` + binName + ` -f edge -u -v pattern.edges target.edges

  # Parallel search, 8 workers, global+local stacks, lock-free global stack
  ` + binName + ` -t 8 -a 2 -k pattern.vf target.vf

  # Print every mapping found and write a CSV execution trace
  ` + binName + ` -s --trace run.csv pattern.vf target.vf`
}

// BinName returns the base name of the current executable.
func BinName() string {
	return filepath.Base(os.Args[0])
}
