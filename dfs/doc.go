// Package dfs implements depth-first traversal and cycle detection on an
// undirected core.Graph.
//
// What:
//
//   - DFS / Walk: iterative pre-order traversal with an explicit stack.
//     Visited is marked at push time, so each vertex is emitted once even
//     in cyclic graphs. Siblings come out in reverse adjacency insertion order.
//     Options add a pre-order OnVisit hook, MaxDepth, FilterNeighbor and
//     FullTraversal over every component; DefaultOptions changes nothing.
//   - HasCycleFrom: per-path search from one start, ignoring the edge back to
//     the immediate predecessor.
//   - HasCycle: HasCycleFrom from every member not already reached, since the
//     graph may be disconnected.
//
// Why:
//
//   - Enumerate a connected component in a reproducible order.
//   - Tell trees and forests apart from graphs with loops of any length.
//
// Complexity:
//
//   - DFS:           Time O(V+E), Memory O(V)
//   - HasCycleFrom:  Time O(V·V/64) on a tree, early exit on a back edge
//   - HasCycle:      HasCycleFrom per component
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - core.ErrNilVertex       start is nil
//   - core.ErrVertexNotFound  start is not a member
//   - wrapped OnVisit errors, with the partial Result from Walk
//
// Every call reports one core.TraversalStats to the graph's observer.
package dfs
