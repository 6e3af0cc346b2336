// Package builder assembles deterministic undirected fixtures on top of
// core.Graph[string]: paths, cycles, stars, wheels, complete and bipartite
// graphs, grids and seeded random graphs.
//
// One orchestrator, BuildGraph, creates the graph, resolves the builder
// options and runs the constructors in order. Every constructor adds its
// vertices first, in ascending index order, then emits edges in a fixed order,
// so the same inputs always produce the same insertion order and therefore the
// same DFS/BFS output.
//
// Vertex values double as lookup keys: the returned Fixture maps each value to
// its *core.Vertex. Constructors that name the same value share the vertex, so
// composing Cycle(4) and Star(4) yields a cycle with a hub attached to "0".."2".
//
// Example:
//
//	fx, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()},
//	    builder.Cycle(5))
//	order, _ := dfs.DFS(fx.Graph, fx.Vertex("A"))
//
// Errors:
//
//	ErrTooFewVertices      size parameter below the constructor's minimum.
//	ErrInvalidProbability  p outside [0,1].
//	ErrNeedRandSource      stochastic constructor without WithSeed/WithRand.
//	ErrConstructFailed     nil constructor or a core mutation error.
package builder
