// SPDX-License-Identifier: MIT
// Package: vf3go/match
package match

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/vf3go/vf3/state"
	"github.com/vf3go/vf3/trace"
)

// FindMode selects whether Serial.Run stops at the first solution or
// enumerates every one.
type FindMode int

const (
	// FindAll enumerates every solution.
	FindAll FindMode = iota
	// FindFirst stops as soon as one solution is found. In Parallel.Run
	// this is best-effort: other workers may report further solutions
	// before they observe the stop.
	FindFirst
)

// Options configures a single Run.
type Options struct {
	Mode            FindMode
	Visitor         Visitor
	CollectMappings bool
	Trace           *trace.Writer

	// Logger receives Debug-level state-tree milestones (goal found,
	// dead-end, backtrack). Zero value is zerolog.Nop().
	Logger zerolog.Logger
}

// Serial is the single-threaded depth-first matching engine (spec §4.7).
// A dedicated engine struct instead of a free function keeps the
// recursive search's dependencies (shared context, options, counters)
// explicit and its hot-path state predictable.
type Serial[N any, E any] struct {
	shared *state.Shared[N, E]
}

// NewSerial builds a Serial engine over shared.
func NewSerial[N any, E any](shared *state.Shared[N, E]) *Serial[N, E] {
	return &Serial[N, E]{shared: shared}
}

// serialRun carries one Run call's mutable search state: the result being
// accumulated, the stop flag, and a monotonic state-id counter (used for
// trace rows). The current path of matched pairs is passed to dfs
// separately.
type serialRun struct {
	opts      Options
	result    Result
	started   time.Time
	stopped   bool
	nextID    int64
	pathDepth int
}

// Run executes the search to completion (FindAll) or to the first
// solution (FindFirst), returning the accumulated Result.
func (e *Serial[N, E]) Run(opts Options) Result {
	opts.Logger = normalizeLogger(opts.Logger)
	run := &serialRun{opts: opts, started: time.Now()}
	root := state.NewRoot(e.shared)
	path := make([]Pair, len(root.CoreP))

	e.dfs(run, root, path, -1)

	if run.opts.Trace != nil {
		_ = run.opts.Trace.Flush()
	}

	return run.result
}

// dfs recurses depth-first over the state tree: on a goal, record a
// solution; if dead, prune; otherwise try every candidate in order,
// extending and recursing on each feasible one.
func (e *Serial[N, E]) dfs(run *serialRun, st *state.State[N, E], path []Pair, parent int64) {
	id := run.nextID
	run.nextID++

	if run.stopped {
		return
	}

	if st.IsGoal() {
		run.result.Count++
		run.result.FoundAny = true
		run.opts.Logger.Debug().Int64("id", id).Int("depth", st.Depth).Msg("goal reached")
		if run.result.Count == 1 {
			run.result.FirstSolutionAt = time.Since(run.started)
		}
		if run.opts.CollectMappings {
			run.result.Mappings = append(run.result.Mappings, append([]Pair(nil), path[:st.Depth]...))
		}
		if run.opts.Visitor != nil && run.opts.Visitor(path[:st.Depth]) {
			run.stopped = true
		}
		if run.opts.Mode == FindFirst {
			run.stopped = true
		}
		e.traceRow(run, id, parent, st.Depth, 0, 0, true, true, true)

		return
	}

	if st.IsDead() {
		run.opts.Logger.Debug().Int64("id", id).Int("depth", st.Depth).Msg("dead end")
		e.traceRow(run, id, parent, st.Depth, 0, 0, false, false, true)

		return
	}

	v := e.shared.Order.Sigma[st.Depth]
	candidates := st.Candidates()
	descendants := int64(0)

	for _, u := range candidates {
		if run.stopped {
			break
		}
		if !st.IsFeasible(v, u) {
			continue
		}

		st.AddPair(v, u)
		path[st.Depth-1] = Pair{P: v, T: u}
		before := run.nextID
		e.dfs(run, st, path, id)
		descendants += run.nextID - before
		st.Backtrack(v, u)
		run.opts.Logger.Debug().Int64("id", id).Int("depth", st.Depth).Msg("backtrack")
	}

	e.traceRow(run, id, parent, st.Depth, descendants, len(candidates), false, true, descendants == 0)
}

func (e *Serial[N, E]) traceRow(run *serialRun, id, parent int64, depth int, descendants int64, candidates int, goal, feasible, leaf bool) {
	if run.opts.Trace == nil {
		return
	}

	_ = run.opts.Trace.Write(trace.Record{
		ID:          id,
		Parent:      parent,
		Depth:       depth,
		Descendants: descendants,
		Candidates:  candidates,
		Goal:        goal,
		Feasible:    feasible,
		Leaf:        leaf,
	})
}
