// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(name, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors live in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical edge lists.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-mst/core"
)

// Constructor appends edges to g using the resolved builderConfig. Constructors must
// validate parameters first and return sentinel errors, never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph named name, resolves the builder configuration
// from bopts, and applies all constructors in order. Metadata defaults to
// "V=<vertices>, E=<edges>".
//
// Errors:
//   - Constructor errors are wrapped as "BuildGraph: %w"; branch with errors.Is
//     against ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ...
func BuildGraph(name string, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(name)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g.Metadata = cfg.metadata
	if g.Metadata == "" {
		g.Metadata = fmt.Sprintf("V=%d, E=%d", len(g.Vertices()), len(g.Edges))
	}

	return g, nil
}

// MustBuildGraph is BuildGraph that panics on error. Intended for tests and examples.
func MustBuildGraph(name string, bopts []BuilderOption, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(name, bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}
