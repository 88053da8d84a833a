// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random.go - RandomSparse(n, p) and RandomConnected(n, m) constructors.
//
// Determinism:
//   - Stable trial order: i asc, j asc (j > i).
//   - Identical edge lists for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-mst/core"
)

const (
	methodRandomSparse    = "RandomSparse"
	methodRandomConnected = "RandomConnected"
	minRandomNodes        = 2
	probMin               = 0.0
	probMax               = 1.0
)

// RandomSparse returns a Constructor that keeps each unordered pair {i,j} with
// probability p. The result may be disconnected; vertices that end up with no
// edge do not exist in the graph at all.
//
// An RNG is required only for 0 < p < 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				keep := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					keep = cfg.rng.Float64() < p
				}
				if keep {
					g.AddEdge(u, cfg.idFn(j), cfg.weight())
				}
			}
		}

		return nil
	}
}

// RandomConnected returns a Constructor for a connected simple graph with n vertices
// and m edges: a spanning chain over a random permutation of the vertices, then
// m-(n-1) extra pairs drawn uniformly without repetition.
//
// Requires n-1 ≤ m ≤ n(n-1)/2 and an RNG.
func RandomConnected(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomConnected, n, minRandomNodes, ErrTooFewVertices)
		}
		if m < n-1 {
			return fmt.Errorf("%s: m=%d < n-1=%d: %w", methodRandomConnected, m, n-1, ErrTooFewVertices)
		}
		if limit := n * (n - 1) / 2; m > limit {
			return fmt.Errorf("%s: m=%d > %d: %w", methodRandomConnected, m, limit, ErrTooManyEdges)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}

		type pair struct{ a, b int }
		key := func(a, b int) pair {
			if a > b {
				a, b = b, a
			}
			return pair{a, b}
		}
		used := make(map[pair]struct{}, m)

		// Spanning chain over a shuffled order guarantees connectivity.
		perm := cfg.rng.Perm(n)
		for i := 1; i < n; i++ {
			a, b := perm[i-1], perm[i]
			used[key(a, b)] = struct{}{}
			g.AddEdge(cfg.idFn(a), cfg.idFn(b), cfg.weight())
		}

		for added := n - 1; added < m; {
			a, b := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if a == b {
				continue
			}
			k := key(a, b)
			if _, dup := used[k]; dup {
				continue
			}
			used[k] = struct{}{}
			g.AddEdge(cfg.idFn(a), cfg.idFn(b), cfg.weight())
			added++
		}

		return nil
	}
}
