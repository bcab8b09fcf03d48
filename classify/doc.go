// Package classify assigns dense class ids to node attribute values.
//
// Classify makes one pass over the target graph, giving each distinct
// attribute value a fresh class id in [0, C_T). It then makes a second
// pass over the pattern graph using the same assignment, extended with
// any pattern-only attribute value mapped to a class id >= C_T so that it
// can never be matched against a target node (spec §4.3).
package classify
