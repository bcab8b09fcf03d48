// SPDX-License-Identifier: MIT
// Package: vf3go/cmd/vf3/cmd
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vf3go/vf3/arg"
	"github.com/vf3go/vf3/classify"
	"github.com/vf3go/vf3/load"
	"github.com/vf3go/vf3/match"
	"github.com/vf3go/vf3/order"
	"github.com/vf3go/vf3/probability"
	"github.com/vf3go/vf3/reject"
	"github.com/vf3go/vf3/state"
	"github.com/vf3go/vf3/trace"
)

// runMatch is rootCmd's RunE: it loads the pattern/target pair in the
// requested format and dispatches to the generic search, instantiated
// with the attribute type the chosen format carries (the CLI reads vf
// attributes as integers via load.ParseIntAttr; edge and bin formats
// carry none).
func runMatch(cmd *cobra.Command, args []string) error {
	patternPath, targetPath := args[0], args[1]

	if firstCPU >= 0 {
		logger.Debug().Int("first_cpu", firstCPU).
			Msg("CPU pinning requested but not applied: no portable pthread_setaffinity_np equivalent on this platform")
	}

	if algoVariant != 1 && algoVariant != 2 {
		return fmt.Errorf("invalid -a %d: want 1 (global-stack only) or 2 (global+local stacks)", algoVariant)
	}

	if tracePath != "" && threads > 0 {
		return fmt.Errorf("--trace requires the serial engine: omit -t or drop --trace")
	}

	switch inputFormat {
	case "vf":
		return runMatchVF(patternPath, targetPath)
	case "edge":
		return runMatchEdge(patternPath, targetPath)
	case "bin":
		return runMatchBinary(patternPath, targetPath)
	default:
		return fmt.Errorf("unknown format %q: want vf, edge, or bin", inputFormat)
	}
}

func openPair(patternPath, targetPath string) (pf, tf *os.File, err error) {
	pf, err = os.Open(patternPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening pattern file: %w", err)
	}
	tf, err = os.Open(targetPath)
	if err != nil {
		pf.Close()

		return nil, nil, fmt.Errorf("opening target file: %w", err)
	}

	return pf, tf, nil
}

func runMatchVF(patternPath, targetPath string) error {
	pf, tf, err := openPair(patternPath, targetPath)
	if err != nil {
		return err
	}
	defer pf.Close()
	defer tf.Close()

	patternLoader, err := load.LoadVF[int, int](pf, load.ParseIntAttr, load.ParseIntAttr)
	if err != nil {
		return fmt.Errorf("reading pattern file: %w", err)
	}
	targetLoader, err := load.LoadVF[int, int](tf, load.ParseIntAttr, load.ParseIntAttr)
	if err != nil {
		return fmt.Errorf("reading target file: %w", err)
	}

	var pl, tl arg.Loader[int, int] = patternLoader, targetLoader
	if undirected {
		pl = newSymmetricLoader[int, int](pl)
		tl = newSymmetricLoader[int, int](tl)
	}

	return runSearch[int, int](pl, tl)
}

func runMatchEdge(patternPath, targetPath string) error {
	pf, tf, err := openPair(patternPath, targetPath)
	if err != nil {
		return err
	}
	defer pf.Close()
	defer tf.Close()

	opts := load.EdgeListOptions{Undirected: undirected}

	patternLoader, err := load.LoadEdgeList(pf, opts)
	if err != nil {
		return fmt.Errorf("reading pattern file: %w", err)
	}
	targetLoader, err := load.LoadEdgeList(tf, opts)
	if err != nil {
		return fmt.Errorf("reading target file: %w", err)
	}

	return runSearch[load.Unit, load.Unit](patternLoader, targetLoader)
}

func runMatchBinary(patternPath, targetPath string) error {
	pf, tf, err := openPair(patternPath, targetPath)
	if err != nil {
		return err
	}
	defer pf.Close()
	defer tf.Close()

	patternLoader, err := load.LoadBinaryARG(pf)
	if err != nil {
		return fmt.Errorf("reading pattern file: %w", err)
	}
	targetLoader, err := load.LoadBinaryARG(tf)
	if err != nil {
		return fmt.Errorf("reading target file: %w", err)
	}

	var pl, tl arg.Loader[load.Unit, load.Unit] = patternLoader, targetLoader
	if undirected {
		pl = newSymmetricLoader[load.Unit, load.Unit](pl)
		tl = newSymmetricLoader[load.Unit, load.Unit](tl)
	}

	return runSearch[load.Unit, load.Unit](pl, tl)
}

// runSearch builds the ARG pair, the matching context, and runs the
// chosen engine, benchmarking per -r unless -s or --trace is set (in
// which case it runs exactly once, since repeating would duplicate or
// overwrite the collected mappings/trace rows).
func runSearch[N comparable, E comparable](patternLoader, targetLoader arg.Loader[N, E]) error {
	pattern, err := arg.NewFromLoader[N, E](patternLoader)
	if err != nil {
		return fmt.Errorf("building pattern graph: %w", err)
	}
	target, err := arg.NewFromLoader[N, E](targetLoader)
	if err != nil {
		return fmt.Errorf("building target graph: %w", err)
	}

	if !reject.FastReject[N, E, N, E](pattern, target, reject.SubIsomorphism) {
		fmt.Fprintf(os.Stdout, "%d %.6f %.6f\n", 0, 0.0, 0.0)

		return nil
	}

	classes := classify.Classify[N, E, E](pattern, target)
	model := probability.NewModel[N, E](target)
	ord := order.Sort[N, E](pattern, model)

	shared := state.NewShared[N, E](pattern, target, classes, ord, state.Options{
		Kind: state.Full,
		Mode: state.SubIsomorphism,
	})

	var tw *trace.Writer
	if tracePath != "" {
		f, err := os.Create(tracePath)
		if err != nil {
			return fmt.Errorf("creating trace file: %w", err)
		}
		defer f.Close()
		tw = trace.NewWriter(f)
	}

	runOnce := func(collect, withTrace bool) match.Result {
		if threads > 0 {
			variant := match.ParallelWithLocalStacks
			if algoVariant == 1 {
				variant = match.ParallelGlobalOnly
			}

			return match.NewParallel[N, E](shared).Run(match.ParallelOptions{
				Workers:          threads,
				Variant:          variant,
				GLimit:           ssrHighLimit,
				LLimit:           ssrLocalLimit,
				UseLockFreeStack: lockFreeStack,
				Mode:             match.FindAll,
				CollectMappings:  collect,
				Logger:           logger,
			})
		}

		var tr *trace.Writer
		if withTrace {
			tr = tw
		}

		return match.NewSerial[N, E](shared).Run(match.Options{
			Mode:            match.FindAll,
			CollectMappings: collect,
			Trace:           tr,
			Logger:          logger,
		})
	}

	var (
		reps                 int
		totalFirst, totalAll time.Duration
		last                 match.Result
	)

	if storeSolutions || tw != nil {
		start := time.Now()
		last = runOnce(storeSolutions, tw != nil)
		reps = 1
		totalFirst = last.FirstSolutionAt
		totalAll = time.Since(start)
	} else {
		minWall := time.Duration(repeatSeconds * float64(time.Second))
		loopStart := time.Now()
		for {
			start := time.Now()
			res := runOnce(false, false)
			totalFirst += res.FirstSolutionAt
			totalAll += time.Since(start)
			reps++
			last = res
			if time.Since(loopStart) >= minWall {
				break
			}
		}
	}

	if tw != nil {
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("flushing trace file: %w", err)
		}
	}

	avgFirst := totalFirst / time.Duration(reps)
	avgAll := totalAll / time.Duration(reps)

	fmt.Fprintf(os.Stdout, "%d %.6f %.6f\n", last.Count, avgFirst.Seconds(), avgAll.Seconds())

	if verbose {
		fmt.Fprintf(os.Stdout, "repetitions: %d\n", reps)
		fmt.Fprintf(os.Stdout, "pattern: %d nodes, %d edges\n", pattern.Stats().NodeCount, pattern.Stats().EdgeCount)
		fmt.Fprintf(os.Stdout, "target:  %d nodes, %d edges\n", target.Stats().NodeCount, target.Stats().EdgeCount)
	}

	if storeSolutions {
		for i, m := range last.Mappings {
			fmt.Fprintf(os.Stdout, "solution %d:", i)
			for _, p := range m {
				fmt.Fprintf(os.Stdout, " %d->%d", p.P, p.T)
			}
			fmt.Fprintln(os.Stdout)
		}
	}

	return nil
}
