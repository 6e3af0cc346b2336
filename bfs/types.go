// Package bfs provides the result type and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNoPath is returned by Result.PathTo when the destination was not reached.
	ErrNoPath = errors.New("bfs: no path")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when Walk is invoked.
type Option[T any] func(*Options[T])

// Options holds parameters and callbacks to customize BFS execution.
type Options[T any] struct {
	// OnEnqueue is called when a vertex is enqueued, before visiting.
	OnEnqueue func(v *core.Vertex[T], depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(v *core.Vertex[T], depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// the traversal stops and Walk returns the wrapped error.
	OnVisit func(v *core.Vertex[T], depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// Zero means no limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor *core.Vertex[T]) bool

	err error
}

// DefaultOptions returns Options with no depth limit, no filtering and
// no-op hooks. Walk with DefaultOptions visits the whole component of start.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{
		OnEnqueue:      func(*core.Vertex[T], int) {},
		OnDequeue:      func(*core.Vertex[T], int) {},
		OnVisit:        func(*core.Vertex[T], int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ *core.Vertex[T]) bool { return true },
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[T any](fn func(v *core.Vertex[T], depth int)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[T any](fn func(v *core.Vertex[T], depth int)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[T any](fn func(v *core.Vertex[T], depth int) error) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[T any](d int) Option[T] {
	return func(o *Options[T]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbours when fn returns false.
func WithFilterNeighbor[T any](fn func(curr, neighbor *core.Vertex[T]) bool) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex to its distance (in edges) from the start.
//   - Parent: map from vertex to its predecessor in the BFS tree.
type Result[T any] struct {
	Order  []*core.Vertex[T]
	Depth  map[*core.Vertex[T]]int
	Parent map[*core.Vertex[T]]*core.Vertex[T]
}

// Values returns the values of Order, in order.
func (r *Result[T]) Values() []T {
	out := make([]T, len(r.Order))
	for i, v := range r.Order {
		out[i] = v.Value()
	}

	return out
}

// PathTo reconstructs a fewest-edge path from the start vertex to dest,
// both ends included. Returns ErrNoPath if dest was not reached.
func (r *Result[T]) PathTo(dest *core.Vertex[T]) ([]*core.Vertex[T], error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w to %s", ErrNoPath, dest)
	}
	// fill from the back: the path has exactly d+1 vertices
	path := make([]*core.Vertex[T], d+1)
	cur := dest
	for i := d; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
