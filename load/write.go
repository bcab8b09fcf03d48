// SPDX-License-Identifier: MIT
// Package: vf3go/load
package load

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vf3go/vf3/arg"
)

// FormatAttr renders one attribute value as the token WriteVF writes after
// a node or edge record; the inverse of ParseAttr.
type FormatAttr[T any] func(T) string

// FormatIntAttr is a ready-made FormatAttr for the integer attribute
// instantiation, the inverse of ParseIntAttr.
func FormatIntAttr(v int) string { return fmt.Sprintf("%d", v) }

// WriteVF serializes g in the text "vf" format (spec §6): a node count,
// one "i attr" line per node, then per node a degree line followed by
// that many "i j attr" edge lines — the exact inverse of LoadVF, so a
// graph round-trips through WriteVF/LoadVF unchanged.
func WriteVF[N any, E any](w io.Writer, g *arg.Graph[N, E], formatNode FormatAttr[N], formatEdge FormatAttr[E]) error {
	bw := bufio.NewWriter(w)

	n := g.NodeCount()
	if _, err := fmt.Fprintln(bw, n); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		id := arg.NodeID(i)
		if _, err := fmt.Fprintf(bw, "%d %s\n", i, formatNode(g.NodeAttr(id))); err != nil {
			return err
		}
	}

	for i := 0; i < n; i++ {
		id := arg.NodeID(i)
		nbr := g.OutNeighbors(id)
		if _, err := fmt.Fprintln(bw, len(nbr)); err != nil {
			return err
		}
		for _, to := range nbr {
			attr, _ := g.EdgeAttr(id, to)
			if _, err := fmt.Fprintf(bw, "%d %d %s\n", i, int(to), formatEdge(attr)); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
