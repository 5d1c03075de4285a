package bfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/linkpred/core"
)

// ComponentSet labels every node with its connected component.
// Components are numbered 0, 1, ... in order of their smallest node id.
type ComponentSet struct {
	// Label[v] is the component of node v.
	Label []int

	// members holds each component's nodes, ascending, back to back;
	// component c spans members[starts[c]:starts[c+1]].
	members []int
	starts  []int
}

// Count returns the number of components; isolated nodes count as singletons.
func (s *ComponentSet) Count() int { return len(s.starts) - 1 }

// Size returns the node count of component c.
func (s *ComponentSet) Size(c int) int { return s.starts[c+1] - s.starts[c] }

// Members returns the nodes of component c in ascending order.
// The slice is a read-only view.
func (s *ComponentSet) Members(c int) []int {
	return s.members[s.starts[c]:s.starts[c+1]:s.starts[c+1]]
}

// Largest returns the component with the most nodes. Ties go to the
// component with the smallest node id, which is the lowest index.
// Returns -1 for an empty graph.
func (s *ComponentSet) Largest() int {
	best := -1
	for c := 0; c < s.Count(); c++ {
		if best < 0 || s.Size(c) > s.Size(best) {
			best = c
		}
	}

	return best
}

// Components runs one BFS per unvisited node, in ascending id order, and
// collects the reached sets.
//
// Errors: core.ErrNilGraph, or ctx.Err() on cancellation.
// Complexity: O(V + E) time, O(V) memory.
func Components(ctx context.Context, g *core.Graph) (*ComponentSet, error) {
	if g == nil {
		return nil, fmt.Errorf("Components: %w", core.ErrNilGraph)
	}

	n := g.NodeCount()
	o := DefaultOptions()
	o.Ctx = ctx
	w := newWalker(g, o, make([]bool, n))
	set := &ComponentSet{
		Label:   make([]int, n),
		members: make([]int, 0, n),
		starts:  []int{0},
	}
	for v := 0; v < n; v++ {
		if w.visited[v] {
			continue
		}
		from := len(w.res.Order)
		w.enqueue(v, 0, Unreached)
		if err := w.loop(); err != nil {
			return nil, err
		}
		c := set.Count()
		reached := w.res.Order[from:]
		for _, u := range reached {
			set.Label[u] = c
		}
		set.members = append(set.members, reached...)
		slices.Sort(set.members[from:])
		set.starts = append(set.starts, len(set.members))
	}

	return set, nil
}
