// File: observer.go
// Role: per-traversal statistics reported by the algorithm packages.
package core

import (
	"time"

	"go.uber.org/zap"
)

// Traversal operation names carried in TraversalStats.Op.
const (
	OpDFS          = "dfs"
	OpBFS          = "bfs"
	OpShortestPath = "shortest_path"
	OpHasCycleFrom = "has_cycle_from"
	OpHasCycle     = "has_cycle"
)

// TraversalStats summarizes one traversal or analysis call.
type TraversalStats struct {
	// Op names the operation (OpDFS, OpBFS, ...).
	Op string

	// Start is the String() of the start vertex; empty for whole-graph operations.
	Start string

	// Visited counts distinct vertices emitted or reached.
	Visited int

	// Frames counts stack/queue entries pushed. For the per-path searches this
	// is the number of explored path prefixes and grows exponentially on dense graphs.
	Frames int

	// Elapsed is the wall-clock duration of the call.
	Elapsed time.Duration
}

// Observer receives one TraversalStats per traversal call, synchronously on
// the calling goroutine.
type Observer interface {
	ObserveTraversal(TraversalStats)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(TraversalStats)

// ObserveTraversal calls f(s).
func (f ObserverFunc) ObserveTraversal(s TraversalStats) { f(s) }

type nopObserver struct{}

func (nopObserver) ObserveTraversal(TraversalStats) {}

// Report forwards stats to the configured Observer and logs them at Debug level.
//
// Report is plumbing for the traversal packages (dfs, bfs, paths), which call
// it once per finished operation. Application code has no reason to call it;
// anything passed here reaches the Observer unchecked.
func (g *Graph[T]) Report(stats TraversalStats) {
	g.observer.ObserveTraversal(stats)
	g.logger.Debug("traversal finished",
		zap.String("op", stats.Op),
		zap.String("start", stats.Start),
		zap.Int("visited", stats.Visited),
		zap.Int("frames", stats.Frames),
		zap.Duration("elapsed", stats.Elapsed),
	)
}
