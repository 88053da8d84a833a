package dsu_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-mst/dsu"
)

// ExampleSet_Union shows how a false Union result exposes a cycle-forming edge.
func ExampleSet_Union() {
	s := dsu.NewWithVertices("A", "B", "C")

	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}} {
		merged, _ := s.Union(e[0], e[1])
		fmt.Printf("%s-%s merged=%v\n", e[0], e[1], merged)
	}
	fmt.Println(s.Components())
	// Output:
	// A-B merged=true
	// B-C merged=true
	// A-C merged=false
	// [[A B C]]
}
