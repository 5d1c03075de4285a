// Package bfs provides breadth-first search and connected components over a
// core.Graph.
//
// What
//
//   - BFS explores nodes in non-decreasing hop distance from a start node and
//     returns a BFSResult with:
//   - Order:  visit sequence
//   - Depth:  hop distance per node, -1 when unreached
//   - Parent: predecessor in the BFS tree, -1 for the root and unreached nodes
//   - Hooks fire at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - WithFilterNeighbor prunes individual edges; WithMaxDepth bounds the radius.
//   - Components labels every node with its connected component; Largest picks
//     the biggest one, ties going to the component holding the smallest node id.
//
// Determinism
//
//	core.Graph keeps neighbor lists sorted, and BFS enqueues in that order, so
//	visit order and component numbering are fully reproducible. Components are
//	numbered by their smallest node id.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E) for BFS and for Components.
//   - Memory: O(V).
//
// Errors
//
//   - core.ErrNilGraph        if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node is outside [0, n).
//   - ErrOptionViolation      for invalid options (e.g. negative MaxDepth).
//   - ctx.Err() on cancellation, and wrapped OnVisit errors.
package bfs
