// SPDX-License-Identifier: MIT
// Package: vf3go/match
package match

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/vf3go/vf3/state"
)

// EngineVariant selects the parallel engine's work-distribution policy
// (spec §6 `-a {1,2}`), mirroring the original's
// ParallelMatchingEngine/ParallelMatchingEngineWLS split.
type EngineVariant int

const (
	// ParallelGlobalOnly (-a 1) pushes every generated child to the
	// shared global stack; workers never keep private local work.
	ParallelGlobalOnly EngineVariant = iota
	// ParallelWithLocalStacks (-a 2, the CLI's default; the zero value of
	// EngineVariant is ParallelGlobalOnly): children at depth <= GLimit go
	// to the global stack; deeper children stay on the worker's local
	// stack until it holds LLimit jobs, after which they overflow to the
	// global stack too.
	ParallelWithLocalStacks
)

// ParallelOptions configures a Parallel.Run.
type ParallelOptions struct {
	// Workers is the fixed size of the worker pool. Zero means
	// runtime.NumCPU().
	Workers int

	// Variant selects global-only vs. global+local work distribution.
	Variant EngineVariant

	// GLimit is the pattern depth at or below which a worker's newly-generated
	// children are pushed to the shared global stack rather than kept on
	// its own local stack, so other idle workers can steal them. Zero
	// means the spec default of 3. Ignored under ParallelGlobalOnly.
	GLimit int

	// LLimit caps a worker's local stack depth before it starts
	// overflowing new children to the global stack too. Zero means
	// |V(P)|. Ignored under ParallelGlobalOnly.
	LLimit int

	// UseLockFreeStack selects the slab-backed lock-free global stack
	// (spec §6 `-k`) over the default mutex-guarded MutexStack.
	UseLockFreeStack bool

	// StackCapacity sizes the lock-free global stack's slab; ignored for
	// MutexStack, which has no capacity ceiling. Zero means a generous
	// default scaled to Workers and LLimit.
	StackCapacity int

	Mode            FindMode
	CollectMappings bool

	// Logger receives Info-level worker start/stop and first-solution
	// milestones. Zero value is zerolog.Nop().
	Logger zerolog.Logger
}

// Parallel is the multi-worker depth-first matching engine (spec §4.8): a
// fixed-size pool of goroutines sharing one global LIFO of partial-match
// jobs, each worker additionally keeping a private local LIFO so that most
// of the search proceeds without contending on shared state, grounded on
// the sampled-Brandes worker-pool-plus-mutex-merge idiom (bounded
// semaphore of goroutines, each computing independently, merging results
// under a single mutex) generalized to a work-stealing stack instead of a
// fixed task list.
type Parallel[N any, E any] struct {
	shared *state.Shared[N, E]
}

// NewParallel builds a Parallel engine over shared.
func NewParallel[N any, E any](shared *state.Shared[N, E]) *Parallel[N, E] {
	return &Parallel[N, E]{shared: shared}
}

// job is a path of matched pairs from the root, replayed onto a fresh
// State by whichever worker pops it. Paths are small (at most |V(P)|
// pairs) so replay is cheap relative to passing whole State values
// between goroutines.
type job = []Pair

// Run searches shared's state space with opts.Workers goroutines,
// returning the combined Result. Count and FoundAny are exact; under
// FindFirst, other workers may still report additional solutions found
// concurrently with the first before every stack has drained, so callers
// needing a true single answer should take Mappings[0] and ignore the
// rest.
func (e *Parallel[N, E]) Run(opts ParallelOptions) Result {
	opts.Logger = normalizeLogger(opts.Logger)
	log := opts.Logger

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	patternSize := e.shared.Pattern.NodeCount()
	lLimit := opts.LLimit
	if lLimit <= 0 {
		lLimit = patternSize
	}
	gLimit := opts.GLimit
	if gLimit <= 0 {
		gLimit = 3
	}
	if opts.Variant == ParallelGlobalOnly {
		lLimit = 0
	}

	var global globalStack
	if opts.UseLockFreeStack {
		capacity := opts.StackCapacity
		if capacity <= 0 {
			capacity = workers * (lLimit + gLimit + 1) * 4
			if capacity < 64 {
				capacity = 64
			}
		}
		global = NewLockFreeStack(capacity)
	} else {
		global = NewMutexStack()
	}
	global.Push(job(nil))

	var inFlight atomic.Int64
	inFlight.Store(1)

	var stopped atomic.Bool

	var mu sync.Mutex
	result := Result{}
	started := time.Now()

	log.Info().Int("workers", workers).Str("variant", variantName(opts.Variant)).
		Bool("lock_free_stack", opts.UseLockFreeStack).Msg("parallel search starting")

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		id := i
		go func() {
			defer wg.Done()
			log.Info().Int("worker", id).Msg("worker started")
			e.worker(global, &inFlight, &stopped, &mu, &result, started, opts, gLimit, lLimit)
			log.Info().Int("worker", id).Msg("worker stopped")
		}()
	}
	wg.Wait()

	result.FoundAny = result.Count > 0

	return result
}

func variantName(v EngineVariant) string {
	if v == ParallelGlobalOnly {
		return "global-only"
	}

	return "global+local"
}

// worker drains jobs from its own local stack first, falling back to the
// shared global stack, until in_flight reaches zero (every pushed job has
// been fully processed by someone) and both stacks are observed empty.
func (e *Parallel[N, E]) worker(
	global globalStack,
	inFlight *atomic.Int64,
	stopped *atomic.Bool,
	mu *sync.Mutex,
	result *Result,
	started time.Time,
	opts ParallelOptions,
	gLimit, lLimit int,
) {
	var local []job

	for {
		var j job
		var ok bool

		if n := len(local); n > 0 {
			j, ok = local[n-1], true
			local = local[:n-1]
		} else {
			j, ok = global.Pop()
		}

		if !ok {
			if inFlight.Load() == 0 {
				return
			}
			runtime.Gosched()

			continue
		}

		e.processJob(j, global, &local, inFlight, stopped, mu, result, started, opts, gLimit, lLimit)
	}
}

// processJob replays j onto a fresh root State, tests it, and — if it is
// neither a goal nor dead — expands it by one pattern-node depth, pushing
// each feasible child either to the local stack (if still above gLimit
// and under lLimit) or to the shared global stack.
func (e *Parallel[N, E]) processJob(
	j job,
	global globalStack,
	local *[]job,
	inFlight *atomic.Int64,
	stopped *atomic.Bool,
	mu *sync.Mutex,
	result *Result,
	started time.Time,
	opts ParallelOptions,
	gLimit, lLimit int,
) {
	defer inFlight.Add(-1)

	st := state.NewRoot(e.shared)
	for _, pr := range j {
		st.AddPair(pr.P, pr.T)
	}

	if st.IsGoal() {
		e.reportSolution(j, stopped, mu, result, started, opts)

		return
	}

	if st.IsDead() {
		return
	}

	if opts.Mode == FindFirst && stopped.Load() {
		return
	}

	depth := st.Depth
	v := e.shared.Order.Sigma[depth]

	for _, u := range st.Candidates() {
		if opts.Mode == FindFirst && stopped.Load() {
			break
		}
		if !st.IsFeasible(v, u) {
			continue
		}

		child := make(job, len(j)+1)
		copy(child, j)
		child[len(j)] = Pair{P: v, T: u}

		inFlight.Add(1)

		if depth+1 <= gLimit || len(*local) >= lLimit {
			if !global.Push(child) {
				// Slab exhausted: fall back to the caller's own local
				// stack rather than drop work.
				*local = append(*local, child)
			}
		} else {
			*local = append(*local, child)
		}
	}
}

func (e *Parallel[N, E]) reportSolution(
	j job,
	stopped *atomic.Bool,
	mu *sync.Mutex,
	result *Result,
	started time.Time,
	opts ParallelOptions,
) {
	mu.Lock()
	defer mu.Unlock()

	result.Count++
	if result.Count == 1 {
		result.FirstSolutionAt = time.Since(started)
		opts.Logger.Info().Dur("elapsed", result.FirstSolutionAt).Msg("first solution found")
	}
	if opts.CollectMappings {
		result.Mappings = append(result.Mappings, append([]Pair(nil), j...))
	}

	if opts.Mode == FindFirst {
		stopped.Store(true)
	}
}
