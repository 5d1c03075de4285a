package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/linkpred/bfs"
	"github.com/katalvlaran/linkpred/builder"
)

// ExampleBFS demonstrates BFS layering on a 3×3 grid; ids are row*3+col.
func ExampleBFS() {
	g, err := builder.BuildGraph(nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// [0 1 2 1 2 3 2 3 4]
}

// ExampleComponents picks the largest of three disjoint blocks.
func ExampleComponents() {
	g, err := builder.BuildGraph(nil, builder.Path(2), builder.Star(4), builder.Cycle(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	set, err := bfs.Components(context.Background(), g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(set.Count(), set.Members(set.Largest()))
	// Output:
	// 3 [2 3 4 5]
}
