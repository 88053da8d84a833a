// Package mst computes minimum spanning trees of weighted undirected
// graphs and counts the work each algorithm does along the way.
//
// 🚀 What is inside?
//
//	core/         — Edge and Graph: an edge list with derived, sorted vertex set
//	dsu/          — disjoint-set union with path compression and an op counter
//	prim_kruskal/ — Kruskal (stable sort + DSU) and Prim (lazy min-heap)
//	builder/      — deterministic synthetic graphs: paths, cycles, islands, random
//	loader/       — JSON and YAML graph files, optionally gzip-compressed
//	report/       — console, table and JSON reports of MST runs
//	cmd/mstlab    — command line front end: run, compare, generate
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	   10     2
//	    │     │
//	    D──3──C
//
// Both algorithms drop A–D and return a tree of weight 6. A disconnected
// graph still yields a result: a spanning forest with a warning attached.
//
//	go install github.com/katalvlaran/lvlath-mst/cmd/mstlab@latest
package mst
