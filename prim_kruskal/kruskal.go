// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It treats every edge of a *core.Graph as undirected and produces the accepted edges in order.
package prim_kruskal

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvlath-mst/core"
	"github.com/katalvlaran/lvlath-mst/dsu"
)

// Kruskal computes the Minimum Spanning Tree (MST) of graph.
// It uses a disjoint-set (union-find) with iterative path compression.
//
// Error Conditions:
//   - ErrInvalidGraph : if graph is nil.
//
// A disconnected graph is not an error: the spanning forest found so far is
// returned with Result.Warning set to ErrDisconnected.
//
// Steps:
//  1. Collect distinct vertices; if none → empty Result.
//  2. Copy the edge list and sort it by ascending Weight with sort.SliceStable, so
//     equal weights keep their input order.
//  3. Register every vertex as a singleton set.
//  4. For each sorted edge, Union(source, destination); a merge accepts the edge.
//  5. Stop as soon as |V|-1 edges are accepted.
//  6. Fewer than |V|-1 accepted edges → ErrDisconnected warning.
//
// Complexity: O(E log E + E·log V) without union balancing. Memory: O(E + V).
func Kruskal(graph *core.Graph, opts ...Option) (*Result, error) {
	if graph == nil {
		return nil, ErrInvalidGraph
	}
	o := NewOptions(opts...)

	var ops int64
	res := &Result{Method: MethodKruskal, Edges: []core.Edge{}}

	// 1. Distinct vertices, in first-seen order.
	seen := make(map[string]struct{}, len(graph.Edges))
	vertices := make([]string, 0, len(graph.Edges))
	for _, e := range graph.Edges {
		for _, v := range [2]string{e.Source, e.Destination} {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				vertices = append(vertices, v)
			}
		}
		ops += 2
	}
	if len(vertices) == 0 {
		res.Operations = ops
		return res, nil
	}
	res.Vertices = len(vertices)

	// 2. Stable sort on a private copy; the caller's slice is never reordered.
	sorted := make([]core.Edge, len(graph.Edges))
	copy(sorted, graph.Edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})
	ops += sortCost(len(sorted))

	// 3. One singleton set per vertex.
	set := dsu.New()
	set.MakeSet(vertices...)
	seenOps := set.Operations()
	ops += seenOps

	// 4. Greedy acceptance.
	need := len(vertices) - 1
	for _, e := range sorted {
		ops++
		merged, err := set.Union(e.Source, e.Destination)
		if err != nil {
			// Unreachable: every endpoint was registered above.
			return nil, fmt.Errorf("kruskal: union %s: %w", e, err)
		}
		ops += set.Operations() - seenOps
		seenOps = set.Operations()

		if !merged {
			continue
		}
		res.Edges = append(res.Edges, e)
		ops++

		// 5. Tree complete.
		ops++
		if len(res.Edges) == need {
			break
		}
	}
	res.Operations = ops

	// 6. Partial forest.
	if len(res.Edges) < need {
		warnDisconnected(res, o.Logger)
	}

	return res, nil
}

// sortCost approximates the comparisons of a comparison sort over n items: ⌊n·ln n⌋.
func sortCost(n int) int64 {
	if n < 2 {
		return 0
	}

	return int64(float64(n) * math.Log(float64(n)))
}
