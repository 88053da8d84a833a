// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
// Callers branch with errors.Is; context is attached with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTooManyEdges indicates an edge budget that a simple graph cannot hold.
var ErrTooManyEdges = errors.New("builder: too many edges for a simple graph")

// ErrConstructFailed indicates a nil constructor or an exhausted sampling budget.
var ErrConstructFailed = errors.New("builder: construction failed")
