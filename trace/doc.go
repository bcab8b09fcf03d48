// Package trace writes the engine's execution trace as CSV (spec §6):
// one row per state visited, with columns
// Id;Parent;Depth;Descendants;Candidates;Goal;Feasible;Leaf.
package trace
