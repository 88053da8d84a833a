// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a specified root vertex using a min‐heap with lazy deletion.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvlath-mst/core"
)

// Prim computes the Minimum Spanning Tree (MST) reachable from root
// by growing outwards using a min‐heap of frontier edges.
//
// Error Conditions:
//   - ErrInvalidGraph   : if graph is nil.
//   - ErrEmptyRoot      : if the graph has edges and root is "".
//   - ErrVertexNotFound : if root is not touched by any edge (wrapped with the label).
//
// No partial work is done before the root is validated. A graph with no edges
// yields an empty Result whatever the root. If the tree cannot reach every
// vertex, the partial tree is returned with Result.Warning set to ErrDisconnected.
//
// Steps:
//  1. Build the undirected adjacency index: (u,v,w) is stored under u and the
//     mirrored (v,u,w) under v.
//  2. Validate root.
//  3. Mark root in-tree and push every half-edge leaving it toward an
//     out-of-tree vertex.
//  4. While the heap is non-empty and the tree does not cover every vertex:
//     a. Pop the lightest candidate.
//     b. If both endpoints are already in-tree the entry is stale: drop it.
//     c. Otherwise accept it, absorb the new vertex, push its outgoing half-edges.
//  5. Tree smaller than the vertex set → ErrDisconnected warning.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string, opts ...Option) (*Result, error) {
	if graph == nil {
		return nil, ErrInvalidGraph
	}
	o := NewOptions(opts...)

	var ops int64
	res := &Result{Method: MethodPrim, Edges: []core.Edge{}}
	if len(graph.Edges) == 0 {
		return res, nil
	}

	// 1. Adjacency index and vertex count.
	adj := make(map[string][]core.Edge)
	for _, e := range graph.Edges {
		ops += 4
		adj[e.Source] = append(adj[e.Source], e)
		adj[e.Destination] = append(adj[e.Destination], e.Reversed())
	}
	res.Vertices = len(adj)

	// 2. Root must be one of the vertices.
	if root == "" {
		return nil, ErrEmptyRoot
	}
	ops++
	if _, ok := adj[root]; !ok {
		return nil, fmt.Errorf("start vertex %q: %w", root, ErrVertexNotFound)
	}

	// 3. Seed.
	inTree := make(map[string]struct{}, len(adj))
	inTree[root] = struct{}{}
	ops++

	pq := &candidatePQ{}
	heap.Init(pq)
	push := func(from string) {
		for _, e := range adj[from] {
			ops++
			if _, ok := inTree[e.Destination]; !ok {
				pq.push(e)
				ops++
			}
		}
	}
	push(root)

	// 4. Grow.
	for pq.Len() > 0 && len(inTree) < len(adj) {
		ops += 2
		e := pq.pop()
		ops++

		// Exactly one endpoint must be inside the tree.
		ops += 4
		_, srcIn := inTree[e.Source]
		_, dstIn := inTree[e.Destination]
		var (
			next  string
			fresh bool
		)
		switch {
		case srcIn && !dstIn:
			next, fresh = e.Destination, true
		case dstIn && !srcIn:
			next, fresh = e.Source, true
		}

		ops++
		if !fresh {
			continue
		}

		res.Edges = append(res.Edges, e)
		inTree[next] = struct{}{}
		ops += 2

		push(next)
	}

	// 5. Coverage.
	ops++
	res.Operations = ops
	if len(inTree) < len(adj) {
		warnDisconnected(res, o.Logger)
	}

	return res, nil
}

// candidate is a frontier half-edge whose Source was in-tree when it was pushed.
// seq records push order and breaks weight ties so pops are deterministic.
type candidate struct {
	edge core.Edge
	seq  uint64
}

// candidatePQ implements heap.Interface for a min‐heap of candidates,
// ordered by weight and then by push order.
type candidatePQ struct {
	items []candidate
	next  uint64
}

// Len returns the number of candidates in the queue.
func (pq *candidatePQ) Len() int { return len(pq.items) }

// Less orders by ascending weight, earlier push first on ties.
func (pq *candidatePQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.edge.Weight != b.edge.Weight {
		return a.edge.Weight < b.edge.Weight
	}

	return a.seq < b.seq
}

// Swap swaps elements at indices i and j.
func (pq *candidatePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends a candidate. Called by heap.Push.
func (pq *candidatePQ) Push(x interface{}) { pq.items = append(pq.items, x.(candidate)) }

// Pop removes the last candidate. Called by heap.Pop.
func (pq *candidatePQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	c := old[n-1]
	pq.items = old[:n-1]

	return c
}

func (pq *candidatePQ) push(e core.Edge) {
	heap.Push(pq, candidate{edge: e, seq: pq.next})
	pq.next++
}

func (pq *candidatePQ) pop() core.Edge {
	return heap.Pop(pq).(candidate).edge
}
