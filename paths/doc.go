// Package paths computes unit-cost shortest-path lengths on an undirected
// core.Graph by exhaustive enumeration of simple paths.
//
// ShortestPath explores every simple path leaving the source with an explicit
// stack. Each frame carries the vertex, the number of edges walked, and a
// private copy of the vertices on its path: two paths meeting at the same
// intermediate vertex are explored independently, so the global minimum is
// found without relying on visit order.
//
// Path sets are fixed-size bitsets indexed by graph membership position, so
// branching copies ⌈V/64⌉ words rather than a hash set.
//
// Complexity:
//
//   - Time:  O(P · (d + V/64)) for P simple paths from the source; P is
//     exponential in V on dense or highly cyclic graphs.
//   - Space: O(P_live · V/64) for the frames on the stack.
//
// This cost is a known trade-off kept for exactness of the per-path model;
// bfs.Walk yields the same distance in O(V+E). The observer's Frames count
// exposes the number of explored prefixes.
//
// Errors (sentinel):
//
//	– ErrGraphNil             if the provided graph pointer is nil.
//	– core.ErrNilVertex       if either endpoint is nil.
//	– core.ErrVertexNotFound  if either endpoint is not a member.
//	– ErrNoPath               if the target is unreachable (length NoPath).
//
// Example usage:
//
//	n, err := paths.ShortestPath(g, a, c)
//	if errors.Is(err, paths.ErrNoPath) {
//	    // disconnected
//	}
package paths
