// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go - Complete(n) and Islands(k, n) constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-mst/core"
)

const (
	methodComplete   = "Complete"
	methodIslands    = "Islands"
	minCompleteNodes = 2
	minIslands       = 1
)

// Complete returns a Constructor that builds K_n; pairs (i,j), i<j, row-major.
// Complexity: O(n²) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				g.AddEdge(u, cfg.idFn(j), cfg.weight())
			}
		}

		return nil
	}
}

// Islands returns a Constructor that builds k vertex-disjoint paths of n vertices.
// Island c uses indices [c·n, (c+1)·n). Any k > 1 yields a disconnected graph with
// k·n vertices whose spanning forest has k·(n-1) edges.
func Islands(k, n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minIslands {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodIslands, k, minIslands, ErrTooFewVertices)
		}
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodIslands, n, minPathNodes, ErrTooFewVertices)
		}
		for c := 0; c < k; c++ {
			addChain(g, cfg, c*n, n)
		}

		return nil
	}
}
