// Package core defines the in-memory graph description consumed by the MST builders.
//
// A Graph is deliberately thin: a name, a free-form metadata string carried through
// for reporting, and an ordered list of weighted edges. Vertices are implicit; a
// vertex exists because some edge touches it.
//
// Edges are stored as directed (Source, Destination) tuples in input order, but every
// consumer treats them as undirected. The order matters: Kruskal breaks weight ties
// by the position of an edge in Graph.Edges.
//
// Errors:
//
//	ErrEmptyVertexID  - an edge endpoint is the empty string.
//	ErrNegativeWeight - an edge carries a weight below zero.
//
// Validation is the job of whoever builds the Graph (see the loader package); the
// algorithms never call Validate themselves.
package core
