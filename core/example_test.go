package core_test

import (
	"fmt"

	"github.com/katalvlaran/linkpred/core"
)

// ExampleBuild builds the four-node graph
//
//	0───1
//	 \ /
//	  2───3
//
// and inspects its neighbor arena and degree table.
func ExampleBuild() {
	g, err := core.Build(4, []core.Edge{{0, 1}, {0, 2}, {1, 2}, {2, 3}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("N(2) =", g.Neighbors(2))
	fmt.Println("degrees =", g.Degrees())
	fmt.Println("edges =", g.EdgeCount(), "wedges =", g.Wedges())
	fmt.Println("0~3 adjacent?", g.HasEdge(0, 3))

	// Output:
	// N(2) = [0 1 3]
	// degrees = [2 2 3 1]
	// edges = 4 wedges = 5
	// 0~3 adjacent? false
}

// ExampleBuild_selfLoop shows that self-loops are rejected at ingestion.
func ExampleBuild_selfLoop() {
	_, err := core.Build(2, []core.Edge{{1, 1}})
	fmt.Println(err)

	// Output:
	// Build: edge #0 (1,1): node 1: core: self-loop not allowed
}
