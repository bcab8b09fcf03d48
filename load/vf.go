// SPDX-License-Identifier: MIT
// Package: vf3go/load
package load

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vf3go/vf3/arg"
)

// ParseAttr converts one whitespace-separated token (or, for multi-word
// text tokens, the remainder of the line) into an attribute value.
type ParseAttr[T any] func(token string) (T, error)

// ParseIntAttr is a ready-made ParseAttr for the 32-bit integer attribute
// instantiation named in spec §6.
func ParseIntAttr(token string) (int, error) {
	v, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: integer attribute %q", ErrMalformedRecord, token)
	}

	return int(v), nil
}

// ParseTokenAttr is a ready-made ParseAttr for the text-token attribute
// instantiation named in spec §6: the token is returned verbatim.
func ParseTokenAttr(token string) (string, error) { return token, nil }

// LoadVF reads the text "vf" graph format (spec §6): a node count, then
// one "i attr" line per node in order, then for each node a degree line
// followed by that many "i j attr" edge lines.
func LoadVF[N any, E any](r io.Reader, parseNode ParseAttr[N], parseEdge ParseAttr[E]) (*InMemoryLoader[N, E], error) {
	lr := newLineReader(r)

	header, ok := lr.next()
	if !ok {
		return nil, fmt.Errorf("%w: missing node count", ErrMalformedRecord)
	}
	n, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: node count %q", ErrMalformedRecord, header)
	}

	loader := newInMemoryLoader[N, E](n)

	for i := 0; i < n; i++ {
		line, ok := lr.next()
		if !ok {
			return nil, fmt.Errorf("%w: expected node %d attribute line", ErrMalformedRecord, i)
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: node line %q", ErrMalformedRecord, line)
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: node id %q", ErrMalformedRecord, fields[0])
		}
		if id != i {
			return nil, fmt.Errorf("%w: expected node id %d, got %d", ErrNodeIDOutOfOrder, i, id)
		}
		attr, err := parseNode(strings.Join(fields[1:], " "))
		if err != nil {
			return nil, err
		}
		loader.attrs[i] = attr
	}

	for i := 0; i < n; i++ {
		degLine, ok := lr.next()
		if !ok {
			return nil, fmt.Errorf("%w: expected out-degree line for node %d", ErrMalformedRecord, i)
		}
		k, err := strconv.Atoi(strings.TrimSpace(degLine))
		if err != nil || k < 0 {
			return nil, fmt.Errorf("%w: out-degree %q", ErrMalformedRecord, degLine)
		}

		edges := make([]arg.OutEdge[E], 0, k)
		for j := 0; j < k; j++ {
			line, ok := lr.next()
			if !ok {
				return nil, fmt.Errorf("%w: expected edge line for node %d", ErrMalformedRecord, i)
			}
			fields := strings.Fields(line)
			if len(fields) < 3 {
				return nil, fmt.Errorf("%w: edge line %q", ErrMalformedRecord, line)
			}
			from, err1 := strconv.Atoi(fields[0])
			to, err2 := strconv.Atoi(fields[1])
			if err1 != nil || err2 != nil || from != i {
				return nil, fmt.Errorf("%w: edge endpoints %q", ErrMalformedRecord, line)
			}
			attr, err := parseEdge(strings.Join(fields[2:], " "))
			if err != nil {
				return nil, err
			}
			edges = append(edges, arg.OutEdge[E]{To: arg.NodeID(to), Attr: attr})
		}
		loader.edges[i] = edges
	}

	return loader, nil
}

// lineReader yields successive non-blank, non-comment lines from r.
type lineReader struct {
	sc *bufio.Scanner
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{sc: bufio.NewScanner(r)}
}

func (lr *lineReader) next() (string, bool) {
	for lr.sc.Scan() {
		line := strings.TrimSpace(lr.sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		return line, true
	}

	return "", false
}
