// Package prim_kruskal computes the Minimum Spanning Tree (MST) of an undirected,
// weighted *core.Graph with two independent algorithms: Kruskal’s and Prim’s.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Why two algorithms?
//     They are alternative implementations of the same contract and are meant to be run
//     side by side. Result.Operations counts the primitive steps each one performs, so
//     their relative cost can be compared on the same input.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph, opts ...Option) (*Result, error)
//
//   - Strategy: Sort all edges by weight, then iterate from smallest to largest. A dsu.Set
//     merges components; an edge whose endpoints already share a representative would close
//     a cycle and is skipped. Stops once |V|−1 edges have been accepted.
//
//   - Determinism: sort.SliceStable keeps equal-weight edges in input order.
//
//   - Prim(g *core.Graph, root string, opts ...Option) (*Result, error)
//
//   - Strategy: Grow a single tree from root. A min-heap holds frontier half-edges; stale
//     entries (both endpoints already in the tree) are dropped when popped instead of being
//     removed eagerly.
//
//   - Determinism: heap ties are broken by push order.
//
// Results
//
//	Both builders return a *Result. With all-distinct weights on a connected graph both
//	totals are equal (the MST weight is unique). With ties the two edge sets may differ
//	while the totals still match.
//
// Error Conditions
//
//	- ErrInvalidGraph   — graph is nil.
//	- ErrEmptyRoot      — Prim only, root == "" on a graph that has edges.
//	- ErrVertexNotFound — Prim only, root is not an endpoint of any edge.
//	- ErrUnknownMethod  — Compute only.
//
// A disconnected graph is NOT an error. The partial forest is returned with
// Result.Warning == ErrDisconnected and Result.Spanning() == false, and a warning is
// written to the zerolog.Logger supplied through WithLogger.
//
// An empty graph (no edges) yields an empty Result with zero weight from both builders.
package prim_kruskal
