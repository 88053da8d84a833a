// Package dsu implements a disjoint-set union (union-find) over string labels.
//
// The structure tracks a partition of registered labels into disjoint sets and
// answers "same set?" queries in near-constant amortized time thanks to path
// compression. It is the connectivity oracle behind prim_kruskal.Kruskal.
//
// Policy:
//
//   - Find ascends iteratively (no recursion), then re-points every node it
//     passed directly at the root.
//   - Union attaches the root of the first argument under the root of the second.
//     No rank or size balancing is applied, so tests should assert connectivity,
//     never a particular representative.
//   - Every primitive step bumps a diagnostic counter exposed by Operations. The
//     counter never influences control flow.
//
// A Set is not safe for concurrent use; each MST invocation owns its own Set.
package dsu
