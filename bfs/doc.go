// Package bfs provides breadth-first search over an undirected core.Graph,
// returning visit order, unweighted distances and parent links.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - BFS returns the visited values; Walk returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Result.PathTo reconstructs a fewest-edge path to any reached vertex.
//   - Options add enqueue, dequeue and visit hooks, MaxDepth and FilterNeighbor.
//
// Why
//
//   - Discover the component of a vertex layer by layer.
//   - Compute unweighted distances in O(V + E), a cheap cross-check for the
//     exhaustive search in package paths.
//
// Determinism
//
//	Adjacency iterates in insertion order and BFS enqueues neighbours in that
//	order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map)
//
// Usage
//
//	values, err := bfs.BFS(g, start)
//	res, err := bfs.Walk(g, start)
//	res, err := bfs.Walk(g, start, bfs.WithMaxDepth[string](2), bfs.WithOnVisit(fn))
//	path, err := res.PathTo(dest)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - core.ErrNilVertex       if start is nil.
//   - core.ErrVertexNotFound  if start is not a member.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth).
//   - wrapped OnVisit errors, with the partial Result from Walk.
//   - ErrNoPath               from PathTo when dest was not reached.
package bfs
