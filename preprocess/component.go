package preprocess

import (
	"context"
	"fmt"

	"github.com/katalvlaran/linkpred/bfs"
	"github.com/katalvlaran/linkpred/core"
)

// LargestComponent extracts the largest connected component of g and
// relabels it to [0, size) preserving node order. An empty graph yields an
// empty Subgraph.
//
// Errors: core.ErrNilGraph, or ctx.Err() on cancellation.
// Complexity: O(V + E log d).
func LargestComponent(ctx context.Context, g *core.Graph) (*Subgraph, error) {
	set, err := bfs.Components(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("LargestComponent: %w", err)
	}

	oldToNew := make([]int, g.NodeCount())
	for i := range oldToNew {
		oldToNew[i] = -1
	}
	var members []int
	if c := set.Largest(); c >= 0 {
		members = set.Members(c)
	}
	newToOld := make([]int, len(members))
	for i, v := range members {
		newToOld[i] = v
		oldToNew[v] = i
	}

	var edges []core.Edge
	for _, v := range newToOld {
		for _, u := range g.Neighbors(v) {
			if v < u {
				edges = append(edges, core.Edge{From: oldToNew[v], To: oldToNew[u]})
			}
		}
	}
	sub, err := core.Build(len(newToOld), edges)
	if err != nil {
		return nil, fmt.Errorf("LargestComponent: %w", err)
	}

	return &Subgraph{Graph: sub, NewToOld: newToOld, OldToNew: oldToNew}, nil
}
