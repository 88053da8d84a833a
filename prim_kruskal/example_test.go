package prim_kruskal_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlath-mst/core"
	"github.com/katalvlaran/lvlath-mst/prim_kruskal"
)

// ExampleKruskal demonstrates Kruskal’s algorithm on a square whose closing side is heavy.
// Edges: A–B (1), B–C (2), C–D (3), A–D (10). The MST drops A–D.
func ExampleKruskal() {
	g := core.NewGraph("square")
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("C", "D", 3)
	g.AddEdge("A", "D", 10)

	res, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d\n", res.TotalWeight())
	for _, e := range res.Edges {
		fmt.Println(e)
	}
	// Output:
	// Total: 6
	// A --(1)--> B
	// B --(2)--> C
	// C --(3)--> D
}

// ExamplePrim demonstrates Prim’s algorithm on a 5‐vertex pentagon graph.
// Edges: A–B (1), A–E (12), B–C (2), C–D (3), D–E (5). The MST is {A–B, B–C, C–D, D–E}.
func ExamplePrim() {
	g := core.NewGraph("pentagon", core.WithEdges(
		core.NewEdge("A", "B", 1),
		core.NewEdge("A", "E", 12),
		core.NewEdge("B", "C", 2),
		core.NewEdge("C", "D", 3),
		core.NewEdge("D", "E", 5),
	))

	res, err := prim_kruskal.Prim(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Edges: ", res.TotalWeight())
	for i, e := range res.Edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%s-%s", e.Source, e.Destination)
	}
	fmt.Println()
	// Output: Total: 11, Edges: A-B B-C C-D D-E
}

// ExampleResult_Spanning shows how a caller tells a spanning tree from a partial forest.
func ExampleResult_Spanning() {
	g := core.NewGraph("two islands", core.WithEdges(
		core.NewEdge("A", "B", 1),
		core.NewEdge("C", "D", 2),
	))

	res, _ := prim_kruskal.Kruskal(g)
	fmt.Println(res.Len(), res.Vertices, res.Spanning(), errors.Is(res.Warning, prim_kruskal.ErrDisconnected))
	// Output: 2 4 false true
}
