// Package ugraph is a small in-memory undirected graph library: vertices
// holding arbitrary values, symmetric adjacency, and the classic traversals
// over them.
//
// 🚀 What is inside?
//
//	core/      Vertex[T], Graph[T], mutation and membership queries
//	dfs/       depth-first traversal, cycle detection (HasCycleFrom, HasCycle)
//	bfs/       breadth-first traversal with depth, parent and path reconstruction
//	paths/     exhaustive unit-cost shortest-path length
//	metrics/   Prometheus sink for per-traversal statistics
//	builder/   deterministic fixtures: paths, cycles, grids, random graphs
//
// ✨ Guarantees
//
//   - Identity is the pointer: equal values never merge vertices.
//   - Adjacency is always symmetric. A vertex may sit in several graphs and
//     then carries the edges added through each of them.
//   - Vertices, neighbours and traversal output follow insertion order, so
//     results are reproducible run to run.
//   - No locks: confine a Graph to one goroutine or synchronize externally.
//
// Quick ASCII example:
//
//	A───B
//	│   │
//	D───C
//
//	g := core.NewGraph[string]()
//	a, b, c, d := core.NewVertex("A"), core.NewVertex("B"), core.NewVertex("C"), core.NewVertex("D")
//	_ = g.AddEdge(a, b)
//	_ = g.AddEdge(b, c)
//	_ = g.AddEdge(c, d)
//	_ = g.AddEdge(d, a)
//
//	order, _ := dfs.DFS(g, a)            // [A D C B]
//	layers, _ := bfs.BFS(g, a)           // [A B D C]
//	n, _ := paths.ShortestPath(g, a, c)  // 2
//	cyclic, _ := dfs.HasCycle(g)         // true
//
// Logging goes through go.uber.org/zap (core.WithLogger); statistics go to any
// core.Observer, such as metrics.NewObserver.
package ugraph
