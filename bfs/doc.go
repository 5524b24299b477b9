// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// In this module its production call site is package hull's debug channel:
// when a run is configured with WithDebugLevel(DebugChecks) or higher, the
// engine runs BFS over its dual graph's Underlying() core.Graph after every
// finalize() to spot-check that every live facet is reachable from any other
// through ridges (a bounded polyhedron's facet adjacency graph is always
// connected) and logs the result via BFSResult.Reaches. The check is
// diagnostic only — disabled by default, and never changes Compute's result.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Because core.NeighborIDs returns IDs in sorted order, and BFS enqueues
//	neighbors in that order, the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//		// Pure connectivity spot-check:
//		ok, err := bfs.Connected(g, "0")
//
//		// Full traversal with functional options:
//		result, err := bfs.BFS(
//		    g, "start",
//		    bfs.WithContext(ctx),
//		    bfs.WithMaxDepth(3),
//		    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return curr != "skip" }),
//		    bfs.WithOnVisit(func(id string, depth int) error { /* ... */ return nil }),
//		)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.NeighborIDs fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
