package reject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vf3go/vf3/arg"
	"github.com/vf3go/vf3/reject"
)

type intLoader struct {
	attrs []int
	edges map[arg.NodeID][]arg.OutEdge[int]
}

func (l *intLoader) NodeCount() int { return len(l.attrs) }
func (l *intLoader) NodeAttr(i arg.NodeID) int { return l.attrs[i] }
func (l *intLoader) OutEdges(i arg.NodeID) []arg.OutEdge[int] { return l.edges[i] }

func buildGraph(t *testing.T, attrs []int, edges map[arg.NodeID][]arg.OutEdge[int]) *arg.Graph[int, int] {
	t.Helper()
	g, err := arg.NewFromLoader[int, int](&intLoader{attrs: attrs, edges: edges})
	require.NoError(t, err)
	return g
}

func TestFastReject_Isomorphism(t *testing.T) {
	triangle := func() *arg.Graph[int, int] {
		return buildGraph(t, []int{0, 0, 0}, map[arg.NodeID][]arg.OutEdge[int]{
			0: {{To: 1, Attr: 1}},
			1: {{To: 2, Attr: 1}},
			2: {{To: 0, Attr: 1}},
		})
	}

	assert.True(t, reject.FastReject(triangle(), triangle(), reject.Isomorphism))

	path := buildGraph(t, []int{0, 0, 0, 0}, map[arg.NodeID][]arg.OutEdge[int]{
		0: {{To: 1, Attr: 1}},
		1: {{To: 2, Attr: 1}},
		2: {{To: 3, Attr: 1}},
	})
	assert.False(t, reject.FastReject(triangle(), path, reject.Isomorphism))
}

func TestFastReject_SubIsomorphism(t *testing.T) {
	pattern := buildGraph(t, []int{0, 0}, map[arg.NodeID][]arg.OutEdge[int]{
		0: {{To: 1, Attr: 1}},
	})
	target := buildGraph(t, []int{0, 0, 0}, map[arg.NodeID][]arg.OutEdge[int]{
		0: {{To: 1, Attr: 1}},
		1: {{To: 2, Attr: 1}},
	})

	assert.True(t, reject.FastReject(pattern, target, reject.SubIsomorphism))
	assert.False(t, reject.FastReject(target, pattern, reject.SubIsomorphism))
}

// property 9: if FastReject returns false, no solution exists. Exercised
// directly here on a node-count mismatch (the cheapest possible
// obstruction); the corresponding end-to-end engine behavior is checked
// in match's scenario D test.
func TestProperty_FastRejectFalseImpliesNoSolutionPossible(t *testing.T) {
	small := buildGraph(t, []int{0, 0}, map[arg.NodeID][]arg.OutEdge[int]{
		0: {{To: 1, Attr: 1}},
	})
	big := buildGraph(t, []int{0, 0, 0}, map[arg.NodeID][]arg.OutEdge[int]{
		0: {{To: 1, Attr: 1}},
		1: {{To: 2, Attr: 1}},
	})

	require.False(t, reject.FastReject(big, small, reject.Isomorphism))
	assert.Greater(t, big.NodeCount(), small.NodeCount())
}
