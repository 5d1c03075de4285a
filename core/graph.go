package core

import "slices"

// NodeCount returns n, the size of the declared id range.
// Complexity: O(1).
func (g *Graph) NodeCount() int { return g.n }

// EdgeCount returns the number of unique undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edges }

// MaxDegree returns the largest degree in the graph (0 for an edgeless graph).
// Complexity: O(1).
func (g *Graph) MaxDegree() int { return g.maxDegree }

// Contains reports whether v is a valid node id of g.
func (g *Graph) Contains(v int) bool { return v >= 0 && v < g.n }

// Neighbors returns N(v) sorted ascending. The slice aliases the graph's
// arena and is capacity-clipped; callers must treat it as read-only.
// Returns nil for ids outside [0, n).
//
// Complexity: O(1).
func (g *Graph) Neighbors(v int) []int {
	if !g.Contains(v) {
		return nil
	}
	lo, hi := g.offsets[v], g.offsets[v+1]

	return g.adjacency[lo:hi:hi]
}

// Degree returns |N(v)|, or 0 for ids outside [0, n).
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	if !g.Contains(v) {
		return 0
	}

	return g.offsets[v+1] - g.offsets[v]
}

// Degrees returns a fresh copy of the degree table.
// Complexity: O(V).
func (g *Graph) Degrees() []int {
	out := make([]int, g.n)
	for v := range out {
		out[v] = g.offsets[v+1] - g.offsets[v]
	}

	return out
}

// HasEdge reports whether u and v are adjacent. The shorter neighbor list is searched.
// Complexity: O(log min(deg(u), deg(v))).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.Contains(u) || !g.Contains(v) || u == v {
		return false
	}
	if g.Degree(u) > g.Degree(v) {
		u, v = v, u
	}
	_, found := slices.BinarySearch(g.Neighbors(u), v)

	return found
}

// Edges returns every undirected edge once, canonical (From < To) and sorted
// by (From, To).
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u := 0; u < g.n; u++ {
		nbrs := g.Neighbors(u)
		// neighbors are sorted: skip the prefix below u
		i, _ := slices.BinarySearch(nbrs, u+1)
		for _, v := range nbrs[i:] {
			out = append(out, Edge{From: u, To: v})
		}
	}

	return out
}

// Wedges returns Σ_z C(deg(z), 2), the number of (z, {x,y}) open-triangle
// visits a full common-neighbor enumeration performs. Hubs dominate it.
// Complexity: O(V).
func (g *Graph) Wedges() int64 {
	var total int64
	for v := 0; v < g.n; v++ {
		d := int64(g.offsets[v+1] - g.offsets[v])
		total += d * (d - 1) / 2
	}

	return total
}
