// Package builder produces deterministic *core.Graph fixtures for the MST builders.
//
// Every topology is a Constructor closure; BuildGraph resolves functional options
// into an immutable config, runs the constructors in order and appends their edges
// to one graph. Same options, same seed, same constructor order ⇒ identical edge
// lists, which is what the Kruskal tie-break and the benchmarks rely on.
//
// Topologies:
//
//	Path(n)               - v0—v1—…—v(n-1)
//	Cycle(n)              - Path(n) plus the closing edge
//	Complete(n)           - K_n, pairs (i<j) in row-major order
//	Star(n)               - hub v0 with n-1 spokes
//	RandomSparse(n, p)    - each pair kept with probability p (may be disconnected)
//	RandomConnected(n, m) - random spanning chain plus random extra edges, m total
//	Islands(k, n)         - k disjoint paths of n vertices (always disconnected for k>1)
//
// Weights come from a WeightFn (constant 1 by default). DistinctWeightFn guarantees
// pairwise-distinct weights, which makes the MST weight unique.
package builder
