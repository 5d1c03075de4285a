package core

import (
	"fmt"
	"slices"
)

const (
	methodBuild         = "Build"
	methodAddEdge       = "AddEdge"
	methodFromAdjacency = "FromAdjacency"
)

// Builder accumulates an edge stream for a graph over [0, n).
// Each edge is validated on entry; Build freezes the result.
// A Builder is not safe for concurrent use.
type Builder struct {
	n     int
	edges []Edge
}

// NewBuilder returns a Builder for a graph with n dense node ids.
// Returns ErrNegativeNodeCount if n < 0.
func NewBuilder(n int) (*Builder, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewBuilder: n=%d: %w", n, ErrNegativeNodeCount)
	}

	return &Builder{n: n}, nil
}

// AddEdge records the undirected edge {u,v}.
// Duplicates are accepted and collapse at Build time.
//
// Errors:
//   - ErrOutOfRangeNode if u or v is outside [0, n).
//   - ErrSelfLoop if u == v.
func (b *Builder) AddEdge(u, v int) error {
	if err := checkEdge(b.n, u, v); err != nil {
		return fmt.Errorf("%s(%d,%d): %w", methodAddEdge, u, v, err)
	}
	b.edges = append(b.edges, Edge{From: u, To: v})

	return nil
}

// Len reports the number of edges recorded so far, duplicates included.
func (b *Builder) Len() int { return len(b.edges) }

// Build freezes the recorded edges into a Graph. The Builder may keep
// receiving edges afterwards; later Builds include them.
//
// Complexity: O(V + E log d) time, O(V + E) space.
func (b *Builder) Build() *Graph {
	return freeze(b.n, b.edges)
}

// Build validates edges against [0, n) and returns the frozen Graph.
// It fails on the first invalid edge and reports its position.
//
// Complexity: O(V + E log d) time, O(V + E) space.
func Build(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodBuild, n, ErrNegativeNodeCount)
	}
	for i, e := range edges {
		if err := checkEdge(n, e.From, e.To); err != nil {
			return nil, fmt.Errorf("%s: edge #%d (%d,%d): %w", methodBuild, i, e.From, e.To, err)
		}
	}

	return freeze(n, edges), nil
}

// FromAdjacency builds a Graph from pre-built neighbor lists, one per node.
// Lists need not be sorted, but must be symmetric, loop-free and free of
// duplicates; contradictory input is rejected instead of repaired.
//
// Complexity: O(V + E log d).
func FromAdjacency(adj [][]int) (*Graph, error) {
	n := len(adj)
	edges := make([]Edge, 0)
	for v, nbrs := range adj {
		seen := make(map[int]struct{}, len(nbrs))
		for _, u := range nbrs {
			if err := checkEdge(n, v, u); err != nil {
				return nil, fmt.Errorf("%s: N(%d) contains %d: %w", methodFromAdjacency, v, u, err)
			}
			if _, dup := seen[u]; dup {
				return nil, fmt.Errorf("%s: N(%d) lists %d twice: %w", methodFromAdjacency, v, u, ErrDuplicateNeighbor)
			}
			seen[u] = struct{}{}
			if v < u {
				edges = append(edges, Edge{From: v, To: u})
			}
		}
	}

	g := freeze(n, edges)
	for v, nbrs := range adj {
		if g.Degree(v) != len(nbrs) {
			return nil, fmt.Errorf("%s: N(%d) has %d entries, mirror implies %d: %w",
				methodFromAdjacency, v, len(nbrs), g.Degree(v), ErrAsymmetricAdjacency)
		}
	}

	return g, nil
}

// checkEdge validates one edge against the id range and the loop rule.
func checkEdge(n, u, v int) error {
	if u < 0 || u >= n {
		return fmt.Errorf("node %d outside [0,%d): %w", u, n, ErrOutOfRangeNode)
	}
	if v < 0 || v >= n {
		return fmt.Errorf("node %d outside [0,%d): %w", v, n, ErrOutOfRangeNode)
	}
	if u == v {
		return fmt.Errorf("node %d: %w", u, ErrSelfLoop)
	}

	return nil
}

// freeze lays validated edges out as a CSR arena. Both orientations are
// scattered into per-node buckets, each bucket is sorted and deduplicated,
// then buckets are compacted into the final adjacency slice.
func freeze(n int, edges []Edge) *Graph {
	// Stage 1: raw bucket sizes, duplicates included.
	raw := make([]int, n+1)
	for _, e := range edges {
		raw[e.From+1]++
		raw[e.To+1]++
	}
	for v := 0; v < n; v++ {
		raw[v+1] += raw[v]
	}

	// Stage 2: scatter both orientations.
	scratch := make([]int, raw[n])
	cursor := slices.Clone(raw[:n])
	for _, e := range edges {
		scratch[cursor[e.From]] = e.To
		cursor[e.From]++
		scratch[cursor[e.To]] = e.From
		cursor[e.To]++
	}

	// Stage 3: sort, dedup, compact.
	g := &Graph{n: n, offsets: make([]int, n+1)}
	adjacency := scratch[:0]
	for v := 0; v < n; v++ {
		bucket := scratch[raw[v]:raw[v+1]]
		slices.Sort(bucket)
		bucket = slices.Compact(bucket)
		// compaction only moves entries left, so the write never overtakes the read
		adjacency = append(adjacency, bucket...)
		g.offsets[v+1] = len(adjacency)
		if d := len(bucket); d > g.maxDegree {
			g.maxDegree = d
		}
	}
	g.adjacency = slices.Clip(adjacency)
	g.edges = len(adjacency) / 2

	return g
}
