// Package dfs defines the result type, options and errors for depth-first
// traversal and cycle detection over a core.Graph, including pre-order hooks,
// depth limiting, neighbour filtering and full-graph (forest) traversal.
package dfs

import (
	"errors"

	"github.com/katalvlaran/ugraph/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to DFS, Walk,
// HasCycleFrom or HasCycle.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Result captures the outcome of a depth-first traversal.
type Result[T any] struct {
	// Order records vertices in the sequence they were emitted (pre-order).
	Order []*core.Vertex[T]

	// Depth maps each reached vertex to the depth at which it was pushed.
	// The start vertex has depth 0.
	Depth map[*core.Vertex[T]]int

	// Parent maps each reached vertex to the vertex that pushed it.
	// The start vertex (and every forest root) has no entry.
	Parent map[*core.Vertex[T]]*core.Vertex[T]

	// SkippedNeighbors counts unvisited neighbours rejected by FilterNeighbor.
	SkippedNeighbors int
}

// Option configures optional behavior of DFS traversal.
// Use with Walk(g, start, opts...).
type Option[T any] func(*Options[T])

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options[T any] struct {
	// OnVisit, if non-nil, is invoked when a vertex is emitted (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v *core.Vertex[T], depth int) error

	// MaxDepth, if non-negative, limits traversal to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each unvisited neighbour
	// before it is pushed. Return true to traverse into it.
	FilterNeighbor func(curr, neighbor *core.Vertex[T]) bool

	// FullTraversal, if true, restarts from every unvisited member in
	// insertion order once the component of start is exhausted.
	FullTraversal bool
}

// DefaultOptions returns Options with no hook, no depth limit, no neighbour
// filtering and single-source traversal.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{MaxDepth: -1}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit[T any](fn func(v *core.Vertex[T], depth int) error) Option[T] {
	return func(o *Options[T]) { o.OnVisit = fn }
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited; a negative limit
// removes the bound.
func WithMaxDepth[T any](limit int) Option[T] {
	return func(o *Options[T]) { o.MaxDepth = limit }
}

// WithFilterNeighbor returns an Option that filters neighbours.
// If fn returns false, that neighbour is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor[T any](fn func(curr, neighbor *core.Vertex[T]) bool) Option[T] {
	return func(o *Options[T]) { o.FilterNeighbor = fn }
}

// WithFullTraversal returns an Option that enables full-graph traversal,
// covering disconnected components.
func WithFullTraversal[T any]() Option[T] {
	return func(o *Options[T]) { o.FullTraversal = true }
}

// Values returns the values of Order, in order.
func (r *Result[T]) Values() []T {
	out := make([]T, len(r.Order))
	for i, v := range r.Order {
		out[i] = v.Value()
	}

	return out
}

// Visited reports whether v was reached.
func (r *Result[T]) Visited(v *core.Vertex[T]) bool {
	_, ok := r.Depth[v]
	return ok
}
