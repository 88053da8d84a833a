// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge and Graph value types, functional options, sentinel errors.

package core

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for graph description validation.
var (
	// ErrEmptyVertexID indicates that an edge endpoint has an empty label.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge is a weighted connection between two vertex labels.
//
// Source and Destination keep the orientation the edge was read with, but the
// edge is undirected: (a,b,w) and (b,a,w) describe the same connection.
type Edge struct {
	// Source is the first endpoint label.
	Source string

	// Destination is the second endpoint label.
	Destination string

	// Weight is the non-negative cost of the edge.
	Weight int64
}

// NewEdge is a shorthand constructor used heavily by tests and builders.
func NewEdge(src, dst string, weight int64) Edge {
	return Edge{Source: src, Destination: dst, Weight: weight}
}

// String renders the edge as "A --(5)--> B".
func (e Edge) String() string {
	return fmt.Sprintf("%s --(%d)--> %s", e.Source, e.Weight, e.Destination)
}

// Reversed returns the mirrored half-edge (Destination, Source, Weight).
func (e Edge) Reversed() Edge {
	return Edge{Source: e.Destination, Destination: e.Source, Weight: e.Weight}
}

// IsLoop reports whether both endpoints are the same vertex.
func (e Edge) IsLoop() bool { return e.Source == e.Destination }

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithMetadata attaches a free-form description (e.g. "V=10, E=20").
func WithMetadata(meta string) GraphOption {
	return func(g *Graph) { g.Metadata = meta }
}

// WithEdges appends the given edges in order.
func WithEdges(edges ...Edge) GraphOption {
	return func(g *Graph) { g.Edges = append(g.Edges, edges...) }
}

// Graph is a named, ordered list of undirected weighted edges.
//
// A Graph is treated as read-only once handed to an algorithm. Builders never
// mutate it and never retain it past the call.
type Graph struct {
	// Name identifies the graph in reports.
	Name string

	// Metadata is carried through for reporting only.
	Metadata string

	// Edges in input order.
	Edges []Edge
}

// NewGraph creates a Graph named name and applies opts left to right.
// Complexity: O(len(opts) + total edges appended).
func NewGraph(name string, opts ...GraphOption) *Graph {
	g := &Graph{Name: name}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddEdge appends an edge at the end of the edge list.
func (g *Graph) AddEdge(src, dst string, weight int64) {
	g.Edges = append(g.Edges, Edge{Source: src, Destination: dst, Weight: weight})
}

// Vertices returns every distinct label touched by an edge, sorted ascending.
// Complexity: O(E + V log V).
func (g *Graph) Vertices() []string {
	seen := make(map[string]struct{}, len(g.Edges))
	for _, e := range g.Edges {
		seen[e.Source] = struct{}{}
		seen[e.Destination] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// HasVertex reports whether any edge touches v.
func (g *Graph) HasVertex(v string) bool {
	for _, e := range g.Edges {
		if e.Source == v || e.Destination == v {
			return true
		}
	}

	return false
}

// TotalWeight sums the weights of all edges in the graph.
func (g *Graph) TotalWeight() int64 {
	return SumWeights(g.Edges)
}

// Clone returns a copy whose edge slice does not alias g.Edges.
func (g *Graph) Clone() *Graph {
	edges := make([]Edge, len(g.Edges))
	copy(edges, g.Edges)

	return &Graph{Name: g.Name, Metadata: g.Metadata, Edges: edges}
}

// Validate checks every edge for empty labels and negative weights.
// The first offending edge is reported with its zero-based position.
func (g *Graph) Validate() error {
	for i, e := range g.Edges {
		if e.Source == "" || e.Destination == "" {
			return fmt.Errorf("edge #%d (%s): %w", i, e, ErrEmptyVertexID)
		}
		if e.Weight < 0 {
			return fmt.Errorf("edge #%d (%s): %w", i, e, ErrNegativeWeight)
		}
	}

	return nil
}

// SumWeights returns the total weight of edges.
func SumWeights(edges []Edge) int64 {
	var total int64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
