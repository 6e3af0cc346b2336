// File: types.go
// Role: Vertex and Graph types, GraphOption, sentinel errors, constructors.
// Determinism:
//   - Adjacency and membership iterate in insertion order.
// Concurrency:
//   - None. Graph and Vertex carry no locks; confine a graph to one goroutine
//     or synchronize externally.
package core

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilVertex indicates that a nil *Vertex was passed where a vertex is required.
	ErrNilVertex = errors.New("core: vertex is nil")

	// ErrVertexNotFound indicates an operation referenced a vertex that is not a member of the Graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex is a graph node holding an opaque value and the set of vertices
// directly adjacent to it.
//
// Identity is the pointer: two vertices holding equal values are distinct
// graph entities. Adjacency is read-only from outside the package; only Graph
// mutation methods change it, which is how symmetry is kept.
type Vertex[T any] struct {
	id    uuid.UUID
	value T
	adj   *orderedSet[T]
}

// NewVertex creates a standalone vertex holding value.
//
// Optional adjacent vertices seed the adjacency set. Seeding is one-sided: the
// seeded vertices do not see the new vertex until it is registered with a
// Graph via AddVertex, which mirrors every seeded entry. Nil entries are skipped.
//
// Complexity: O(len(adjacent)).
func NewVertex[T any](value T, adjacent ...*Vertex[T]) *Vertex[T] {
	v := &Vertex[T]{
		id:    uuid.New(),
		value: value,
		adj:   newOrderedSet[T](len(adjacent)),
	}
	for _, u := range adjacent {
		if u != nil {
			v.adj.add(u)
		}
	}

	return v
}

// GraphOption configures a Graph before creation.
type GraphOption func(*graphConfig)

// graphConfig is the non-generic option target shared by every Graph[T].
type graphConfig struct {
	allowLoops bool
	logger     *zap.Logger
	observer   Observer
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.allowLoops = true }
}

// WithLogger installs a structured logger. Mutations and traversal summaries
// are written at Debug level. A nil logger has no effect.
func WithLogger(l *zap.Logger) GraphOption {
	return func(c *graphConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver installs a sink for per-traversal statistics.
// A nil observer has no effect.
func WithObserver(o Observer) GraphOption {
	return func(c *graphConfig) {
		if o != nil {
			c.observer = o
		}
	}
}

// Graph is an in-memory undirected graph over *Vertex[T].
//
// nodes is the membership set. For vertices registered only here, membership
// is closed under adjacency: every vertex adjacent to a member is itself a
// member. Adjacency is always symmetric. The mutation methods are the only code
// that touches adjacency, and each of them preserves symmetry.
//
// Vertices may be shared between graphs; a shared vertex's adjacency is the
// union of the edges added through every graph holding it.
type Graph[T any] struct {
	allowLoops bool
	logger     *zap.Logger
	observer   Observer

	nodes *orderedSet[T]
}

// NewGraph creates an empty Graph.
// By default self-loops are rejected, logging is disabled and no observer is set.
// Complexity: O(1)
func NewGraph[T any](opts ...GraphOption) *Graph[T] {
	cfg := graphConfig{
		logger:   zap.NewNop(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[T]{
		allowLoops: cfg.allowLoops,
		logger:     cfg.logger,
		observer:   cfg.observer,
		nodes:      newOrderedSet[T](0),
	}
}

// Looped reports whether self-loops are permitted.
func (g *Graph[T]) Looped() bool { return g.allowLoops }

// Logger returns the graph's logger; never nil.
func (g *Graph[T]) Logger() *zap.Logger { return g.logger }
