package trace_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vf3go/vf3/trace"
)

func TestWriter_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	w := trace.NewWriter(&buf)

	require.NoError(t, w.Write(trace.Record{ID: 0, Parent: -1, Depth: 0, Descendants: 2, Candidates: 3, Goal: false, Feasible: true, Leaf: false}))
	require.NoError(t, w.Write(trace.Record{ID: 1, Parent: 0, Depth: 1, Descendants: 0, Candidates: 0, Goal: true, Feasible: true, Leaf: true}))
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Id;Parent;Depth;Descendants;Candidates;Goal;Feasible;Leaf", lines[0])
	assert.Equal(t, "0;-1;0;2;3;0;1;0", lines[1])
	assert.Equal(t, "1;0;1;0;0;1;1;1", lines[2])
}
