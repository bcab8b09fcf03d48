// SPDX-License-Identifier: MIT
// Package: vf3go/generate
package generate

import (
	"fmt"

	"github.com/vf3go/vf3/arg"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a rows x cols 4-neighborhood grid (rows,cols >= 1), nodes
// in row-major order (node id = r*cols+c, offset by any prior nodes):
// each cell gets an edge to its right and bottom neighbor, if present.
func Grid[N any, E any](rows, cols int) Constructor[N, E] {
	return func(b *Builder[N, E], cfg *Config[N, E]) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		ids := addNodes(b, cfg, rows*cols)
		at := func(r, c int) arg.NodeID { return ids[r*cols+c] }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					emit(b, cfg, at(r, c), at(r, c+1))
				}
				if r+1 < rows {
					emit(b, cfg, at(r, c), at(r+1, c))
				}
			}
		}

		return nil
	}
}
