// Package core provides the in-memory undirected Graph and its Vertex type.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are created by the caller with NewVertex and hold an opaque value.
//   - Identity is the *Vertex pointer; equal values do not make equal vertices.
//   - Adjacency is an insertion-ordered set per vertex, mutated only through
//     Graph methods, which keep it symmetric.
//   - Within one graph membership is closed under adjacency: AddEdge registers both endpoints,
//     AddVertex registers everything reachable through seeded adjacency,
//     RemoveVertex strips every incident edge.
//   - A Graph does not own its vertices. Adjacency lives on the Vertex, so a
//     vertex registered in two graphs carries the edges added through both,
//     and traversals follow them into vertices that are members of the other
//     graph only. EdgeCount and Clear consider edges between members only.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops; otherwise AddEdge(v, v) → ErrLoopNotAllowed.
//
//	– WithLogger(*zap.Logger)
//	    Debug-level records for mutations and traversal summaries.
//
//	– WithObserver(Observer)
//	    Receives one TraversalStats per traversal (see package metrics).
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v *Vertex[T]) error               // O(1)†
//	AddVertices(vs ...*Vertex[T]) error         // O(len(vs))†
//	RemoveVertex(v *Vertex[T]) error            // O(deg(v)·d)
//	HasVertex(v *Vertex[T]) bool                // O(1)
//
//	// Edge lifecycle
//	AddEdge(v1, v2 *Vertex[T]) error            // O(1)†
//	RemoveEdge(v1, v2 *Vertex[T]) error         // O(d)
//	HasEdge(v1, v2 *Vertex[T]) bool             // O(1)
//
//	// Query
//	Vertices() []*Vertex[T]                     // O(V), insertion order
//	Neighbors(v *Vertex[T]) ([]*Vertex[T], error)
//	VertexCount() int / EdgeCount() int
//	Clear()
//
//	† amortized, plus registration of seeded neighbours.
//
// Traversals live in sibling packages (dfs, bfs, paths) and report their
// statistics back through Graph.Report.
//
// Concurrency: none. A Graph has no locks; concurrent mutation and traversal
// is a data race. Confine a graph to one goroutine or synchronize externally.
//
// Errors:
//
//	ErrNilVertex       – nil *Vertex argument
//	ErrVertexNotFound  – vertex is not a member (traversal starts, Neighbors)
//	ErrLoopNotAllowed  – self-loop when loops are disabled
package core
