// SPDX-License-Identifier: MIT
// Package: vf3go/load
package load

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/vf3go/vf3/arg"
)

// LoadBinaryARG reads the historical little-endian binary ARG format
// (spec §6): a stream of 16-bit words — N, then for each node its
// out-degree followed by that many target-node-id words. No attributes
// are carried; read-only format, no writer is provided.
func LoadBinaryARG(r io.Reader) (*InMemoryLoader[Unit, Unit], error) {
	n, err := readWord(r)
	if err != nil {
		return nil, fmt.Errorf("%w: node count: %v", ErrMalformedRecord, err)
	}

	loader := newInMemoryLoader[Unit, Unit](int(n))

	for i := 0; i < int(n); i++ {
		degree, err := readWord(r)
		if err != nil {
			return nil, fmt.Errorf("%w: out-degree of node %d: %v", ErrMalformedRecord, i, err)
		}

		edges := make([]arg.OutEdge[Unit], 0, degree)
		for j := uint16(0); j < degree; j++ {
			target, err := readWord(r)
			if err != nil {
				return nil, fmt.Errorf("%w: edge %d of node %d: %v", ErrMalformedRecord, j, i, err)
			}
			if int(target) >= int(n) {
				return nil, fmt.Errorf("%w: node %d edge target %d out of range", ErrMalformedRecord, i, target)
			}
			edges = append(edges, arg.OutEdge[Unit]{To: arg.NodeID(target)})
		}
		loader.edges[i] = edges
	}

	return loader, nil
}

func readWord(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(buf[:]), nil
}
