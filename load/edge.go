// SPDX-License-Identifier: MIT
// Package: vf3go/load
package load

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vf3go/vf3/arg"
)

// EdgeListOptions configures LoadEdgeList.
type EdgeListOptions struct {
	// Undirected inserts every edge in both directions.
	Undirected bool

	// RemoveIsolatedNodes drops nodes with no incident edge and
	// renumbers the survivors densely from 0.
	RemoveIsolatedNodes bool
}

// LoadEdgeList reads the text "edge" format (spec §6): optional `#`
// header lines, then repeated 1-based `u v` pairs until EOF. Self-loops
// are rejected. Nodes carry no attributes (load.Unit).
func LoadEdgeList(r io.Reader, opts EdgeListOptions) (*InMemoryLoader[Unit, Unit], error) {
	lr := newLineReader(r)

	type rawEdge struct{ u, v int }
	var raw []rawEdge
	count := 0
	hasEdge := make(map[int]bool)

	for {
		line, ok := lr.next()
		if !ok {
			break
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: edge line %q", ErrMalformedRecord, line)
		}
		u1, err1 := strconv.Atoi(fields[0])
		v1, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: edge line %q", ErrMalformedRecord, line)
		}
		if u1 < 1 || v1 < 1 {
			return nil, fmt.Errorf("%w: edge line %q: node ids are 1-based", ErrMalformedRecord, line)
		}

		u, v := u1-1, v1-1
		if u == v {
			return nil, fmt.Errorf("%w: node %d", ErrSelfLoop, u1)
		}
		if u+1 > count {
			count = u + 1
		}
		if v+1 > count {
			count = v + 1
		}

		raw = append(raw, rawEdge{u: u, v: v})
		hasEdge[u] = true
		hasEdge[v] = true
	}

	forward := make([]int, count)
	nodeCount := count
	if opts.RemoveIsolatedNodes {
		nodeCount = 0
		for i := 0; i < count; i++ {
			if hasEdge[i] {
				forward[i] = nodeCount
				nodeCount++
			} else {
				forward[i] = -1
			}
		}
	} else {
		for i := 0; i < count; i++ {
			forward[i] = i
		}
	}

	loader := newInMemoryLoader[Unit, Unit](nodeCount)
	seen := make(map[[2]int]bool)

	addEdge := func(u, v int) {
		fu, fv := forward[u], forward[v]
		if fu < 0 || fv < 0 {
			return
		}
		key := [2]int{fu, fv}
		if seen[key] {
			return
		}
		seen[key] = true
		loader.edges[fu] = append(loader.edges[fu], arg.OutEdge[Unit]{To: arg.NodeID(fv)})
	}

	for _, e := range raw {
		addEdge(e.u, e.v)
		if opts.Undirected {
			addEdge(e.v, e.u)
		}
	}

	return loader, nil
}
