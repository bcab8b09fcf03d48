// SPDX-License-Identifier: MIT
// Package: vf3go/probability
package probability

import "github.com/vf3go/vf3/arg"

// Mode selects which of the two probability models Probability evaluates.
type Mode int

const (
	// Iso is the exact-frequency isomorphism probability.
	Iso Mode = iota
	// SubIso is the tail-sum sub-isomorphism probability.
	SubIso
)

// labelFreq pairs an attribute representative with its observed
// frequency; linear scan over NodeEqual mirrors classify's classEntry
// approach so non-comparable N still works.
type labelFreq[N any] struct {
	attr N
	freq float64
}

// Model is the set of frequency tables built once from a target graph:
// per-out-degree, per-in-degree, per-total-degree, and per-attribute-value
// frequencies, each divided by the target's node count.
type Model[N any] struct {
	outDeg []float64
	inDeg  []float64
	totDeg []float64
	labels []labelFreq[N]
	nodeEq func(N, N) bool
}

// NewModel builds a Model from target.
func NewModel[N any, E any](target *arg.Graph[N, E]) *Model[N] {
	stats := target.Stats()
	n := stats.NodeCount

	m := &Model[N]{
		outDeg: make([]float64, stats.MaxOutDegree+1),
		inDeg:  make([]float64, stats.MaxInDegree+1),
		totDeg: make([]float64, stats.MaxTotalDegree+1),
		nodeEq: target.NodeEqual,
	}

	labelCount := map[int]int{} // index into m.labels -> raw count
	for i := 0; i < n; i++ {
		id := arg.NodeID(i)
		out := target.OutDegree(id)
		in := target.InDegree(id)
		m.outDeg[out]++
		m.inDeg[in]++
		m.totDeg[out+in]++

		attr := target.NodeAttr(id)
		idx := m.labelIndex(attr)
		if idx < 0 {
			idx = len(m.labels)
			m.labels = append(m.labels, labelFreq[N]{attr: attr})
		}
		labelCount[idx]++
	}

	if n > 0 {
		for i := range m.outDeg {
			m.outDeg[i] /= float64(n)
		}
		for i := range m.inDeg {
			m.inDeg[i] /= float64(n)
		}
		for i := range m.totDeg {
			m.totDeg[i] /= float64(n)
		}
		for idx, count := range labelCount {
			m.labels[idx].freq = float64(count) / float64(n)
		}
	}

	return m
}

func (m *Model[N]) labelIndex(attr N) int {
	for i, l := range m.labels {
		if m.nodeEq(l.attr, attr) {
			return i
		}
	}

	return -1
}

func (m *Model[N]) labelFreq(attr N) float64 {
	if idx := m.labelIndex(attr); idx >= 0 {
		return m.labels[idx].freq
	}

	return 0
}

// Probability evaluates the model, under mode, for node id of graph g:
// g need not be the same graph the model was built from (typically it is
// the pattern, scored against a model built from the target).
func Probability[N any, E any](m *Model[N], g *arg.Graph[N, E], id arg.NodeID, mode Mode) float64 {
	out := g.OutDegree(id)
	in := g.InDegree(id)
	attr := g.NodeAttr(id)

	switch mode {
	case SubIso:
		return tailSum(m.outDeg, out) * tailSum(m.inDeg, in) * tailSum(m.totDeg, out+in) * m.labelFreq(attr)
	default:
		return atOrZero(m.outDeg, out) * atOrZero(m.inDeg, in) * atOrZero(m.totDeg, out+in) * m.labelFreq(attr)
	}
}

func atOrZero(freq []float64, k int) float64 {
	if k < 0 || k >= len(freq) {
		return 0
	}

	return freq[k]
}

// tailSum returns Σ_{i>=k} freq[i], the probability that a random target
// node has feature value >= k.
func tailSum(freq []float64, k int) float64 {
	if k < 0 {
		k = 0
	}
	if k >= len(freq) {
		return 0
	}

	var sum float64
	for i := len(freq) - 1; i >= k; i-- {
		sum += freq[i]
	}

	return sum
}
