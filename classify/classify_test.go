package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vf3go/vf3/arg"
	"github.com/vf3go/vf3/classify"
)

type intLoader struct {
	attrs []int
	edges map[arg.NodeID][]arg.OutEdge[int]
}

func (l *intLoader) NodeCount() int                           { return len(l.attrs) }
func (l *intLoader) NodeAttr(i arg.NodeID) int                 { return l.attrs[i] }
func (l *intLoader) OutEdges(i arg.NodeID) []arg.OutEdge[int] { return l.edges[i] }

func build(t *testing.T, attrs []int) *arg.Graph[int, int] {
	t.Helper()
	g, err := arg.NewFromLoader[int, int](&intLoader{attrs: attrs, edges: map[arg.NodeID][]arg.OutEdge[int]{}})
	require.NoError(t, err)
	return g
}

func TestClassify_SharedAttributes(t *testing.T) {
	target := build(t, []int{5, 7, 5, 9})
	pattern := build(t, []int{7, 5})

	c := classify.Classify[int, int, int](pattern, target)

	assert.Equal(t, int32(3), c.CTarget)
	assert.Equal(t, c.ClassT[0], c.ClassT[2])
	assert.NotEqual(t, c.ClassT[0], c.ClassT[1])
	assert.Equal(t, c.ClassT[1], c.ClassP[0])
	assert.Equal(t, c.ClassT[0], c.ClassP[1])
	assert.Equal(t, int32(3), c.C)
}

func TestClassify_PatternOnlyAttributeNeverMatches(t *testing.T) {
	target := build(t, []int{1, 2})
	pattern := build(t, []int{1, 99})

	c := classify.Classify[int, int, int](pattern, target)

	assert.Equal(t, int32(2), c.CTarget)
	assert.Equal(t, int32(3), c.C)
	assert.GreaterOrEqual(t, c.ClassP[1], c.CTarget)
}
