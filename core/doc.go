// Package core provides the immutable, dense-id undirected Graph every
// similarity computation in linkpred runs on.
//
// A Graph G = (V,E) is stored as an arena of neighbor sets indexed by node id:
//
//   - Node ids are the dense range [0, n) declared by the caller; core never relabels.
//   - adjacency is a single flat []int, offsets[v]..offsets[v+1] holds N(v)
//     sorted ascending and duplicate-free.
//   - The degree table is implied by the offsets: deg(v) = |N(v)|.
//   - u ∈ N(v) ⇔ v ∈ N(u) always holds (undirected, symmetric).
//
// Construction:
//
//	Build(n, edges)           // O(E log d), rejects self-loops and out-of-range ids
//	NewBuilder(n).AddEdge(u,v) // streaming variant, validates each edge on entry
//	FromAdjacency(adj)         // pre-built neighbor lists, validated for symmetry
//
// Duplicate edges, in either orientation, collapse into one neighbor entry.
// Self-loops are an ingestion error (ErrSelfLoop), never silently dropped.
//
// Queries (all read-only, safe for any number of concurrent readers):
//
//	Neighbors(v) []int   // O(1), sorted view, must not be mutated
//	Degree(v) int        // O(1)
//	HasEdge(u,v) bool    // O(log d)
//	NodeCount() int      // O(1)
//	EdgeCount() int      // O(1), unique undirected edges
//	Edges() []Edge       // O(E), canonical From<To, sorted
//	Wedges() int64       // O(V), Σ C(deg(z),2): cost of common-neighbor enumeration
//
// Errors:
//
//	ErrNegativeNodeCount   - n < 0.
//	ErrOutOfRangeNode      - an id outside [0, n).
//	ErrSelfLoop            - an edge (v,v).
//	ErrAsymmetricAdjacency - FromAdjacency got u∈N(v) without v∈N(u).
//	ErrDuplicateNeighbor   - FromAdjacency got the same neighbor twice in one list.
package core
