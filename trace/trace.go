// SPDX-License-Identifier: MIT
// Package: vf3go/trace
package trace

import (
	"encoding/csv"
	"io"
	"strconv"
)

// Record is one row of the execution trace: the state's own id and its
// parent's, its depth, how many descendant states it eventually spawned,
// how many candidates were tried, and whether it was a goal, a feasible
// extension, or a leaf (no further children).
type Record struct {
	ID          int64
	Parent      int64
	Depth       int
	Descendants int64
	Candidates  int
	Goal        bool
	Feasible    bool
	Leaf        bool
}

var header = []string{"Id", "Parent", "Depth", "Descendants", "Candidates", "Goal", "Feasible", "Leaf"}

// Writer writes Records as CSV rows to an underlying io.Writer, header
// first. It is not safe for concurrent use; only the serial engine
// writes traces (match.ParallelOptions has no Trace field).
type Writer struct {
	w         *csv.Writer
	wroteHead bool
}

// NewWriter wraps dst in a CSV trace Writer, semicolon-delimited per the
// documented header format.
func NewWriter(dst io.Writer) *Writer {
	w := csv.NewWriter(dst)
	w.Comma = ';'

	return &Writer{w: w}
}

// Write appends one trace row, writing the header first if this is the
// first call.
func (w *Writer) Write(r Record) error {
	if !w.wroteHead {
		if err := w.w.Write(header); err != nil {
			return err
		}
		w.wroteHead = true
	}

	row := []string{
		strconv.FormatInt(r.ID, 10),
		strconv.FormatInt(r.Parent, 10),
		strconv.Itoa(r.Depth),
		strconv.FormatInt(r.Descendants, 10),
		strconv.Itoa(r.Candidates),
		boolDigit(r.Goal),
		boolDigit(r.Feasible),
		boolDigit(r.Leaf),
	}

	return w.w.Write(row)
}

// boolDigit renders b as "1"/"0", per spec §6's documented trace format
// ("Goal/Feasible/Leaf are 0/1"), not Go's "true"/"false".
func boolDigit(b bool) string {
	if b {
		return "1"
	}

	return "0"
}

// Flush flushes any buffered CSV data to the underlying writer.
func (w *Writer) Flush() error {
	w.w.Flush()

	return w.w.Error()
}
