// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = SymbolNumberIDFn("v") ("v0","v1",...)
//   • rng      = nil (pure unless seeded)
//   • weightFn = constant 1

package builder

import "math/rand"

// Deterministic defaults.
const (
	defaultIDPrefix    = "v"
	defaultConstWeight = int64(1)
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// Metadata override; empty means "V=…, E=…" is computed by BuildGraph.
	metadata string
}

// newBuilderConfig applies opts in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     SymbolNumberIDFn(defaultIDPrefix),
		rng:      nil,
		weightFn: ConstantWeightFn(defaultConstWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() int64 {
	return c.weightFn(c.rng)
}
