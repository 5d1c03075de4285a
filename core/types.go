package core

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrNegativeNodeCount indicates a negative declared node count.
	ErrNegativeNodeCount = errors.New("core: negative node count")

	// ErrOutOfRangeNode indicates a node id outside the declared range [0, n).
	ErrOutOfRangeNode = errors.New("core: node id out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrAsymmetricAdjacency indicates u ∈ N(v) while v ∉ N(u).
	ErrAsymmetricAdjacency = errors.New("core: adjacency is not symmetric")

	// ErrDuplicateNeighbor indicates a neighbor listed twice for the same node.
	ErrDuplicateNeighbor = errors.New("core: duplicate neighbor in adjacency list")

	// ErrNilGraph indicates a nil *Graph was passed where one is required.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Edge is an undirected connection between two dense node ids.
// Orientation carries no meaning; Canonical orders the endpoints.
type Edge struct {
	From int
	To   int
}

// Canonical returns e with From < To. Self-loops are returned unchanged.
func (e Edge) Canonical() Edge {
	if e.From > e.To {
		return Edge{From: e.To, To: e.From}
	}

	return e
}

// Graph is an immutable undirected graph over the dense ids [0, n).
//
// offsets has n+1 entries; the neighbors of v are adjacency[offsets[v]:offsets[v+1]],
// sorted ascending without duplicates. edges counts unique undirected edges.
type Graph struct {
	n         int
	offsets   []int
	adjacency []int
	edges     int
	maxDegree int
}
