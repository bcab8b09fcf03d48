// Package probability computes target-conditioned node-match
// probabilities (spec §4.4): how likely a random target node is to be
// compatible with a pattern node of given out-/in-/total degree and
// attribute, under one of two models.
//
// Model builds three per-degree frequency histograms from the target
// graph (divided by node count) and a frequency table keyed by attribute
// value. Probability evaluates those histograms for a query node:
//   - Iso multiplies the four exact-frequency factors;
//   - SubIso replaces each degree factor with its tail sum — the
//     probability that a random target node has degree >= the query's,
//     since a sub-isomorphism candidate only needs "at least as
//     connected", not "exactly as connected".
//
// Lower probability is a better pivot: rare features prune the search
// tree faster.
package probability
