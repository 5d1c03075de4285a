package similarity_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/linkpred/core"
	"github.com/katalvlaran/linkpred/export"
	"github.com/katalvlaran/linkpred/similarity"
)

// ExampleBattery_Run scores a triangle with a pendant node and prints two tables.
func ExampleBattery_Run() {
	g, err := core.Build(4, []core.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 2}, {From: 2, To: 3}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	ctx := context.Background()
	b, err := similarity.Prepare(ctx, g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	mem := export.NewMemorySink()
	if err = b.Run(ctx, mem, similarity.JC, similarity.PA); err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, name := range mem.Names() {
		rows, _ := mem.Table(name)
		fmt.Println(name)
		for _, r := range rows {
			fmt.Printf("%d %d %.4f\n", r.Source, r.Target, r.Similarity)
		}
	}
	// Output:
	// JC
	// 0 1 0.3333
	// 0 2 0.2500
	// 0 3 0.5000
	// 1 2 0.2500
	// 1 3 0.5000
	// PA
	// 0 1 4.0000
	// 0 2 6.0000
	// 1 2 6.0000
	// 2 3 3.0000
}
