// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go - Path, Cycle and Star constructors.
//
// Contract:
//   - Path: n ≥ 2, edges (i-1, i) for i = 1..n-1.
//   - Cycle: n ≥ 3, Path edges then (n-1, 0).
//   - Star: n ≥ 2, edges (0, i) for i = 1..n-1.
//   - One weight draw per edge, in emission order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-mst/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	methodStar    = "Star"
	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		addChain(g, cfg, 0, n)

		return nil
	}
}

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		addChain(g, cfg, 0, n)
		g.AddEdge(cfg.idFn(n-1), cfg.idFn(0), cfg.weight())

		return nil
	}
}

// Star returns a Constructor that builds a star with hub idFn(0) and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			g.AddEdge(hub, cfg.idFn(i), cfg.weight())
		}

		return nil
	}
}

// addChain emits (from+i-1, from+i) for i = 1..n-1.
func addChain(g *core.Graph, cfg builderConfig, from, n int) {
	for i := 1; i < n; i++ {
		g.AddEdge(cfg.idFn(from+i-1), cfg.idFn(from+i), cfg.weight())
	}
}
