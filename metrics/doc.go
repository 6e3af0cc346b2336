// Package metrics exports traversal statistics to Prometheus.
//
// Observer implements core.Observer. Plug it into a graph with
// core.WithObserver and every DFS, BFS, ShortestPath and cycle check on that
// graph is counted and timed:
//
//	reg := prometheus.NewRegistry()
//	obs, err := metrics.NewObserver(reg)
//	if err != nil {
//	    return err
//	}
//	g := core.NewGraph[string](core.WithObserver(obs))
//
// Exported series (label "op" is one of the core.Op* names):
//
//	ugraph_traversals_total{op}            counter
//	ugraph_traversal_frames{op}            histogram of stack/queue frames
//	ugraph_traversal_visited{op}           histogram of distinct vertices reached
//	ugraph_traversal_duration_seconds{op}  histogram of wall time
//
// The frames histogram is the one to watch for ShortestPath and HasCycleFrom:
// their per-path search grows with the number of simple paths, not with V+E.
package metrics
