// SPDX-License-Identifier: MIT
// Package: vf3go/generate
package generate

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0

	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 8
)

// RandomSparse builds an Erdős–Rényi-like directed graph over n vertices:
// every ordered pair (i, j), i != j, gets an edge independently with
// probability p. Deterministic for a fixed cfg RNG and iteration order
// (i ascending, then j ascending).
func RandomSparse[N any, E any](n int, p float64) Constructor[N, E] {
	return func(b *Builder[N, E], cfg *Config[N, E]) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := addNodes(b, cfg, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if p >= 1 || (p > 0 && cfg.rng.Float64() < p) {
					b.AddEdge(ids[i], ids[j], cfg.edgeAttr(int(ids[i]), int(ids[j])))
				}
			}
		}

		return nil
	}
}

// RandomRegular builds an undirected d-regular simple graph over n
// vertices via stub-matching with bounded retries (n >= 1, 0 <= d < n,
// n*d even, cfg RNG required). Every edge is emitted both ways so the
// resulting directed ARG is symmetric regardless of cfg.Symmetric.
func RandomRegular[N any, E any](n, d int) Constructor[N, E] {
	return func(b *Builder[N, E], cfg *Config[N, E]) error {
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomRegular, ErrNeedRandSource)
		}

		ids := addNodes(b, cfg, n)
		if d == 0 {
			return nil
		}

		pairs, ok := matchStubs(cfg, n, d)
		if !ok {
			return fmt.Errorf("%s: exhausted %d stub-matching attempts: %w", methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
		}

		added := make(map[[2]int]bool, len(pairs))
		for _, pr := range pairs {
			u, v := pr[0], pr[1]
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if added[key] {
				continue
			}
			added[key] = true
			b.AddEdge(ids[u], ids[v], cfg.edgeAttr(u, v))
			b.AddEdge(ids[v], ids[u], cfg.edgeAttr(v, u))
		}

		return nil
	}
}

// matchStubs runs the classic stub-pairing strategy: n*d stubs, each
// vertex repeated d times, shuffled and paired consecutively; a pairing
// with a self-loop or a repeated pair is rejected and reshuffled, up to
// maxStubMatchingAttempts times.
func matchStubs[N any, E any](cfg *Config[N, E], n, d int) ([][2]int, bool) {
	stubs := make([]int, n*d)
	for i, pos := 0, 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs[pos] = i
			pos++
		}
	}

	for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
		cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		pairs := make([][2]int, 0, len(stubs)/2)
		seen := make(map[[2]int]bool, len(stubs)/2)
		valid := true

		for i := 0; i+1 < len(stubs); i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false

				break
			}
			key := [2]int{u, v}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if seen[key] {
				valid = false

				break
			}
			seen[key] = true
			pairs = append(pairs, [2]int{u, v})
		}

		if valid {
			return pairs, true
		}
	}

	return nil, false
}
