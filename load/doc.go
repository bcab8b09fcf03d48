// Package load reads the three external graph formats named in spec §6
// into arg.Loader implementations consumable by arg.NewFromLoader:
//
//   - LoadVF: the text "vf" format (explicit node and edge attributes).
//   - LoadEdgeList: the text "edge" format (1-based u v pairs, no
//     attributes).
//   - LoadBinaryARG: the little-endian 16-bit-word binary format
//     (historical, read-only, no attributes).
//
// None of these are part of the matching engine itself; they exist to
// turn a file on disk into the in-memory shape package arg expects.
package load
