package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vf3go/vf3/arg"
	"github.com/vf3go/vf3/classify"
	"github.com/vf3go/vf3/generate"
	"github.com/vf3go/vf3/match"
	"github.com/vf3go/vf3/order"
	"github.com/vf3go/vf3/probability"
	"github.com/vf3go/vf3/state"
)

type intLoader struct {
	attrs []int
	edges map[arg.NodeID][]arg.OutEdge[int]
}

func (l *intLoader) NodeCount() int                          { return len(l.attrs) }
func (l *intLoader) NodeAttr(i arg.NodeID) int                { return l.attrs[i] }
func (l *intLoader) OutEdges(i arg.NodeID) []arg.OutEdge[int] { return l.edges[i] }

func build(t *testing.T, attrs []int, edges map[arg.NodeID][]arg.OutEdge[int]) *arg.Graph[int, int] {
	t.Helper()
	g, err := arg.NewFromLoader[int, int](&intLoader{attrs: attrs, edges: edges})
	require.NoError(t, err)

	return g
}

// scenario C, same as state_test.go: P = edge 0->1; T = path 0->1->2.
// Exactly one sub-iso solution: {0->0, 1->1}.
func scenarioC(t *testing.T) *state.Shared[int, int] {
	t.Helper()

	pattern := build(t, []int{1, 2}, map[arg.NodeID][]arg.OutEdge[int]{
		0: {{To: 1, Attr: 9}},
	})
	target := build(t, []int{1, 2, 2}, map[arg.NodeID][]arg.OutEdge[int]{
		0: {{To: 1, Attr: 9}},
		1: {{To: 2, Attr: 9}},
	})

	classes := classify.Classify[int, int, int](pattern, target)
	model := probability.NewModel[int, int](target)
	ord := order.Sort[int, int](pattern, model)

	return state.NewShared[int, int](pattern, target, classes, ord, state.Options{
		Kind: state.Full,
		Mode: state.SubIsomorphism,
	})
}

// scenario A: P = single node attr 7; T = three nodes attrs 3,7,7, no
// edges. Expect 2 sub-iso solutions.
func scenarioA(t *testing.T) *state.Shared[int, int] {
	t.Helper()

	pattern := build(t, []int{7}, map[arg.NodeID][]arg.OutEdge[int]{})
	target := build(t, []int{3, 7, 7}, map[arg.NodeID][]arg.OutEdge[int]{})

	classes := classify.Classify[int, int, int](pattern, target)
	model := probability.NewModel[int, int](target)
	ord := order.Sort[int, int](pattern, model)

	return state.NewShared[int, int](pattern, target, classes, ord, state.Options{
		Kind: state.Full,
		Mode: state.SubIsomorphism,
	})
}

// scenario B: directed triangle matched against itself under full
// isomorphism. Expect exactly 3 rotations, 0 reflections.
func scenarioB(t *testing.T) *state.Shared[int, int] {
	t.Helper()

	triangle := func() *arg.Graph[int, int] {
		return build(t, []int{1, 1, 1}, map[arg.NodeID][]arg.OutEdge[int]{
			0: {{To: 1, Attr: 1}},
			1: {{To: 2, Attr: 1}},
			2: {{To: 0, Attr: 1}},
		})
	}

	pattern, target := triangle(), triangle()

	classes := classify.Classify[int, int, int](pattern, target)
	model := probability.NewModel[int, int](target)
	ord := order.Sort[int, int](pattern, model)

	return state.NewShared[int, int](pattern, target, classes, ord, state.Options{
		Kind: state.Full,
		Mode: state.Isomorphism,
	})
}

// scenario D: 4-cycle pattern against a 3-cycle target. Node counts
// differ, so no isomorphism exists; FastReject is not called on this
// path, so the engine's own search has to report 0 solutions.
func scenarioD(t *testing.T) *state.Shared[int, int] {
	t.Helper()

	pattern := build(t, []int{1, 1, 1, 1}, map[arg.NodeID][]arg.OutEdge[int]{
		0: {{To: 1, Attr: 1}},
		1: {{To: 2, Attr: 1}},
		2: {{To: 3, Attr: 1}},
		3: {{To: 0, Attr: 1}},
	})
	target := build(t, []int{1, 1, 1}, map[arg.NodeID][]arg.OutEdge[int]{
		0: {{To: 1, Attr: 1}},
		1: {{To: 2, Attr: 1}},
		2: {{To: 0, Attr: 1}},
	})

	classes := classify.Classify[int, int, int](pattern, target)
	model := probability.NewModel[int, int](target)
	ord := order.Sort[int, int](pattern, model)

	return state.NewShared[int, int](pattern, target, classes, ord, state.Options{
		Kind: state.Full,
		Mode: state.SubIsomorphism,
	})
}

// scenario E: pattern carries an attribute value absent from the
// target; NextPair/Candidates never yields a usable target node.
func scenarioE(t *testing.T) *state.Shared[int, int] {
	t.Helper()

	pattern := build(t, []int{99}, map[arg.NodeID][]arg.OutEdge[int]{})
	target := build(t, []int{3, 7, 7}, map[arg.NodeID][]arg.OutEdge[int]{})

	classes := classify.Classify[int, int, int](pattern, target)
	model := probability.NewModel[int, int](target)
	ord := order.Sort[int, int](pattern, model)

	return state.NewShared[int, int](pattern, target, classes, ord, state.Options{
		Kind: state.Full,
		Mode: state.SubIsomorphism,
	})
}

func TestSerial_ScenarioB_ThreeRotations(t *testing.T) {
	shared := scenarioB(t)
	res := match.NewSerial[int, int](shared).Run(match.Options{Mode: match.FindAll})
	assert.Equal(t, int64(3), res.Count)
}

func TestSerial_ScenarioD_NodeCountMismatchYieldsZero(t *testing.T) {
	shared := scenarioD(t)
	res := match.NewSerial[int, int](shared).Run(match.Options{Mode: match.FindAll})
	assert.Equal(t, int64(0), res.Count)
	assert.False(t, res.FoundAny)
}

func TestSerial_ScenarioE_AbsentAttributeYieldsZero(t *testing.T) {
	shared := scenarioE(t)
	res := match.NewSerial[int, int](shared).Run(match.Options{Mode: match.FindAll})
	assert.Equal(t, int64(0), res.Count)
	assert.False(t, res.FoundAny)
}

func TestParallel_ScenarioB_MatchesSerial(t *testing.T) {
	shared := scenarioB(t)
	res := match.NewParallel[int, int](shared).Run(match.ParallelOptions{
		Workers: 4,
		Mode:    match.FindAll,
	})
	assert.Equal(t, int64(3), res.Count)
}

func TestParallel_ScenarioD_NodeCountMismatchYieldsZero(t *testing.T) {
	shared := scenarioD(t)
	res := match.NewParallel[int, int](shared).Run(match.ParallelOptions{
		Workers: 4,
		Mode:    match.FindAll,
	})
	assert.Equal(t, int64(0), res.Count)
}

// scenario F: a parallel run across ten repetitions agrees with the
// serial run's solution count over a 100-node random target matched
// against a 6-node pattern.
func TestScenarioF_ParallelMatchesSerialAcrossRepetitions(t *testing.T) {
	cfg := generate.NewConfig[int, int](
		generate.WithNodeAttr[int, int](func(i int) int { return 0 }),
		generate.WithEdgeAttr[int, int](func(u, v int) int { return 0 }),
		generate.WithSeed[int, int](42),
	)

	target, err := generate.Build[int, int](cfg, generate.RandomSparse[int, int](100, 0.1))
	require.NoError(t, err)
	pattern, err := generate.Build[int, int](cfg, generate.Cycle[int, int](6))
	require.NoError(t, err)

	classes := classify.Classify[int, int, int](pattern, target)
	model := probability.NewModel[int, int](target)
	ord := order.Sort[int, int](pattern, model)

	newShared := func() *state.Shared[int, int] {
		return state.NewShared[int, int](pattern, target, classes, ord, state.Options{
			Kind: state.Full,
			Mode: state.SubIsomorphism,
		})
	}

	serial := match.NewSerial[int, int](newShared()).Run(match.Options{Mode: match.FindAll})

	for i := 0; i < 10; i++ {
		parallel := match.NewParallel[int, int](newShared()).Run(match.ParallelOptions{
			Workers: 4,
			Mode:    match.FindAll,
		})
		assert.Equal(t, serial.Count, parallel.Count, "repetition %d", i)
	}
}

// property 4 (induced clause): two pattern nodes with no edge between
// them must not match two target nodes that do have one, when Induced
// is set; the same pair is accepted under ordinary (non-induced)
// semantics.
func TestProperty_InducedSemanticsRejectsExtraTargetEdge(t *testing.T) {
	pattern := build(t, []int{1, 1}, map[arg.NodeID][]arg.OutEdge[int]{})
	target := build(t, []int{1, 1}, map[arg.NodeID][]arg.OutEdge[int]{
		0: {{To: 1, Attr: 1}},
	})

	classes := classify.Classify[int, int, int](pattern, target)
	model := probability.NewModel[int, int](target)
	ord := order.Sort[int, int](pattern, model)

	induced := state.NewShared[int, int](pattern, target, classes, ord, state.Options{
		Kind: state.Full, Mode: state.SubIsomorphism, Induced: true,
	})
	plain := state.NewShared[int, int](pattern, target, classes, ord, state.Options{
		Kind: state.Full, Mode: state.SubIsomorphism, Induced: false,
	})

	resInduced := match.NewSerial[int, int](induced).Run(match.Options{Mode: match.FindAll})
	resPlain := match.NewSerial[int, int](plain).Run(match.Options{Mode: match.FindAll})

	assert.Equal(t, int64(0), resInduced.Count)
	assert.Greater(t, resPlain.Count, int64(0))
}

// property 4 (core clause): every reported mapping preserves edges in
// both directions between every matched pair.
func TestProperty_SolutionPreservesEdgesBothDirections(t *testing.T) {
	shared := scenarioC(t)
	res := match.NewSerial[int, int](shared).Run(match.Options{Mode: match.FindAll, CollectMappings: true})
	require.NotEmpty(t, res.Mappings)

	pattern := shared.Pattern
	target := shared.Target

	for _, mapping := range res.Mappings {
		for _, a := range mapping {
			for _, b := range mapping {
				assert.Equal(t, pattern.HasEdge(a.P, b.P), target.HasEdge(a.T, b.T))
			}
		}
	}
}

// property 5: completeness. A brute-force enumeration of every injective
// function from pattern nodes to target nodes agrees with the engine's
// count of valid sub-isomorphisms.
func TestProperty_CompletenessMatchesBruteForce(t *testing.T) {
	shared := scenarioC(t)
	res := match.NewSerial[int, int](shared).Run(match.Options{Mode: match.FindAll})

	pattern, target := shared.Pattern, shared.Target
	brute := 0

	var try func(assigned []int, used []bool)
	try = func(assigned []int, used []bool) {
		if len(assigned) == pattern.NodeCount() {
			valid := true
			for i := 0; i < len(assigned) && valid; i++ {
				for j := 0; j < len(assigned) && valid; j++ {
					if pattern.HasEdge(arg.NodeID(i), arg.NodeID(j)) {
						pa, ok := pattern.EdgeAttr(arg.NodeID(i), arg.NodeID(j))
						require.True(t, ok)
						ta, ok := target.EdgeAttr(arg.NodeID(assigned[i]), arg.NodeID(assigned[j]))
						if !ok || pa != ta {
							valid = false
						}
					}
				}
			}
			if valid {
				brute++
			}
			return
		}
		for u := 0; u < target.NodeCount(); u++ {
			if used[u] {
				continue
			}
			v := len(assigned)
			if pattern.NodeAttr(arg.NodeID(v)) != target.NodeAttr(arg.NodeID(u)) {
				continue
			}
			used[u] = true
			try(append(assigned, u), used)
			used[u] = false
		}
	}
	try(nil, make([]bool, target.NodeCount()))

	assert.Equal(t, int64(brute), res.Count)
}

func TestSerial_ScenarioC_FindAll(t *testing.T) {
	shared := scenarioC(t)
	res := match.NewSerial[int, int](shared).Run(match.Options{Mode: match.FindAll, CollectMappings: true})
	assert.Equal(t, int64(1), res.Count)
	require.True(t, res.FoundAny)
	require.Len(t, res.Mappings, 1)
	assert.ElementsMatch(t, []match.Pair{{P: 0, T: 0}, {P: 1, T: 1}}, res.Mappings[0])
}

func TestSerial_ScenarioA_FindAll(t *testing.T) {
	shared := scenarioA(t)
	res := match.NewSerial[int, int](shared).Run(match.Options{Mode: match.FindAll})
	assert.Equal(t, int64(2), res.Count)
}

func TestSerial_ScenarioA_FindFirst(t *testing.T) {
	shared := scenarioA(t)
	res := match.NewSerial[int, int](shared).Run(match.Options{Mode: match.FindFirst})
	assert.Equal(t, int64(1), res.Count)
	assert.True(t, res.FoundAny)
}

func TestSerial_Visitor_StopsSearch(t *testing.T) {
	shared := scenarioA(t)
	calls := 0
	res := match.NewSerial[int, int](shared).Run(match.Options{
		Mode: match.FindAll,
		Visitor: func(mapping []match.Pair) bool {
			calls++

			return true
		},
	})
	assert.Equal(t, int64(1), res.Count)
	assert.Equal(t, 1, calls)
}

func TestParallel_ScenarioC_MatchesSerial(t *testing.T) {
	shared := scenarioC(t)
	res := match.NewParallel[int, int](shared).Run(match.ParallelOptions{
		Workers:         4,
		Mode:            match.FindAll,
		CollectMappings: true,
	})
	assert.Equal(t, int64(1), res.Count)
	require.Len(t, res.Mappings, 1)
	assert.ElementsMatch(t, []match.Pair{{P: 0, T: 0}, {P: 1, T: 1}}, res.Mappings[0])
}

func TestParallel_ScenarioA_MatchesSerialCount(t *testing.T) {
	shared := scenarioA(t)
	res := match.NewParallel[int, int](shared).Run(match.ParallelOptions{
		Workers: 8,
		Mode:    match.FindAll,
	})
	assert.Equal(t, int64(2), res.Count)
	assert.True(t, res.FoundAny)
}

func TestParallel_FindFirst_ReportsAtLeastOne(t *testing.T) {
	shared := scenarioA(t)
	res := match.NewParallel[int, int](shared).Run(match.ParallelOptions{
		Workers: 4,
		Mode:    match.FindFirst,
	})
	assert.True(t, res.FoundAny)
	assert.GreaterOrEqual(t, res.Count, int64(1))
}

func TestParallel_DefaultsWorkersAndLimits(t *testing.T) {
	shared := scenarioC(t)
	res := match.NewParallel[int, int](shared).Run(match.ParallelOptions{})
	assert.Equal(t, int64(1), res.Count)
}

func TestParallel_LockFreeStack_MatchesMutexStack(t *testing.T) {
	shared := scenarioA(t)

	mutex := match.NewParallel[int, int](shared).Run(match.ParallelOptions{
		Workers: 4,
		Mode:    match.FindAll,
	})
	lockFree := match.NewParallel[int, int](shared).Run(match.ParallelOptions{
		Workers:          4,
		Mode:             match.FindAll,
		UseLockFreeStack: true,
	})

	assert.Equal(t, mutex.Count, lockFree.Count)
}

func TestParallel_GlobalOnlyVariant_MatchesSerial(t *testing.T) {
	shared := scenarioA(t)
	res := match.NewParallel[int, int](shared).Run(match.ParallelOptions{
		Workers: 4,
		Mode:    match.FindAll,
		Variant: match.ParallelGlobalOnly,
	})
	assert.Equal(t, int64(2), res.Count)
}

func TestMutexStack_PushPop_LIFO(t *testing.T) {
	s := match.NewMutexStack()
	s.Push([]match.Pair{{P: 0, T: 0}})
	s.Push([]match.Pair{{P: 1, T: 1}})

	top, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, []match.Pair{{P: 1, T: 1}}, top)

	second, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, []match.Pair{{P: 0, T: 0}}, second)

	_, ok = s.Pop()
	assert.False(t, ok)
}
