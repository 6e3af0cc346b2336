// File: methods_vertices.go
// Role: Vertex accessors and Graph vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and Adjacent() return insertion order.
//
// Registration:
//   - AddVertex closes membership over adjacency seeded by NewVertex and
//     mirrors every seeded entry, so adjacency between members is symmetric.
package core

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Value returns the caller-supplied value. The graph never interprets it.
func (v *Vertex[T]) Value() T { return v.value }

// ID returns the identity token assigned at construction.
// It labels the vertex in logs and errors; set membership uses the pointer.
func (v *Vertex[T]) ID() uuid.UUID { return v.id }

// Adjacent returns a copy of the adjacency set in insertion order.
// Mutating the returned slice does not affect the vertex.
func (v *Vertex[T]) Adjacent() []*Vertex[T] { return v.adj.snapshot() }

// IsAdjacent reports whether u is in v's adjacency set.
func (v *Vertex[T]) IsAdjacent(u *Vertex[T]) bool { return v.adj.has(u) }

// Degree returns the number of adjacent vertices. A self-loop counts once.
func (v *Vertex[T]) Degree() int { return v.adj.len() }

// String renders the value followed by a short identity suffix, e.g. "A#1f0c9e2a".
func (v *Vertex[T]) String() string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v#%s", v.value, v.id.String()[:8])
}

// AddVertex registers v with the graph.
//
// Steps:
//  1. Reject nil (ErrNilVertex).
//  2. Insert v into membership; a present vertex is a no-op.
//  3. Walk the adjacency seeded by NewVertex with an explicit stack: every
//     neighbour receives the mirror entry and is registered in turn.
//
// Complexity: O(1) amortized for a vertex without seeded adjacency,
// O(V'+E') over the newly registered vertices otherwise.
func (g *Graph[T]) AddVertex(v *Vertex[T]) error {
	if v == nil {
		return ErrNilVertex
	}
	g.register(v)

	return nil
}

// AddVertices registers every vertex in vs, in order.
// All elements are validated first: a nil element returns ErrNilVertex and
// nothing is inserted.
func (g *Graph[T]) AddVertices(vs ...*Vertex[T]) error {
	for i, v := range vs {
		if v == nil {
			return fmt.Errorf("core: AddVertices element %d: %w", i, ErrNilVertex)
		}
	}
	for _, v := range vs {
		g.register(v)
	}

	return nil
}

// register inserts v and, transitively, every vertex reachable through
// one-sided seeded adjacency, mirroring each seeded entry on the way.
func (g *Graph[T]) register(v *Vertex[T]) {
	if !g.nodes.add(v) {
		return // already a member; members are symmetric by invariant
	}
	g.logger.Debug("vertex added", zap.Stringer("vertex", v))

	stack := []*Vertex[T]{v}
	var cur *Vertex[T]
	for len(stack) > 0 {
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, u := range cur.adj.items {
			u.adj.add(cur) // mirror; no-op when already symmetric
			if g.nodes.add(u) {
				g.logger.Debug("vertex added", zap.Stringer("vertex", u), zap.Stringer("via", cur))
				stack = append(stack, u)
			}
		}
	}
}

// RemoveVertex removes every edge incident to v on both sides, then drops v
// from membership. Former neighbours stay members.
//
// Removing a non-member is allowed: its edges are stripped and no error is
// returned.
//
// Complexity: O(deg(v)·d) where d bounds the neighbours' degrees.
func (g *Graph[T]) RemoveVertex(v *Vertex[T]) error {
	if v == nil {
		return ErrNilVertex
	}
	for _, u := range v.adj.snapshot() {
		g.unlink(v, u)
	}
	if g.nodes.remove(v) {
		g.logger.Debug("vertex removed", zap.Stringer("vertex", v))
	}

	return nil
}

// HasVertex reports whether v is a member of the graph.
func (g *Graph[T]) HasVertex(v *Vertex[T]) bool {
	if v == nil {
		return false
	}
	return g.nodes.has(v)
}

// Vertices returns the members in insertion order.
// Complexity: O(V).
func (g *Graph[T]) Vertices() []*Vertex[T] { return g.nodes.snapshot() }

// VertexCount returns the number of members. O(1).
func (g *Graph[T]) VertexCount() int { return g.nodes.len() }

// IndexOf returns v's position in Vertices(), or -1 when v is not a member.
// Positions are stable until the next RemoveVertex or Clear.
func (g *Graph[T]) IndexOf(v *Vertex[T]) int {
	if v == nil {
		return -1
	}
	return g.nodes.index(v)
}

// Neighbors returns the vertices adjacent to member v, in insertion order.
//
// Errors:
//   - ErrNilVertex if v is nil.
//   - ErrVertexNotFound if v is not a member.
func (g *Graph[T]) Neighbors(v *Vertex[T]) ([]*Vertex[T], error) {
	if err := g.CheckMember(v); err != nil {
		return nil, err
	}
	return v.adj.snapshot(), nil
}

// CheckMember validates that v is non-nil and a member of g.
// Algorithms use it to turn their start-vertex precondition into an error.
func (g *Graph[T]) CheckMember(v *Vertex[T]) error {
	if v == nil {
		return ErrNilVertex
	}
	if !g.nodes.has(v) {
		return fmt.Errorf("%w: %s", ErrVertexNotFound, v)
	}
	return nil
}

// Clear removes every edge between members and empties the membership set.
// Edges from a member to a vertex outside g (added through another graph
// sharing that member) are kept. Options (loops, logger, observer) are preserved.
func (g *Graph[T]) Clear() {
	for _, v := range g.nodes.items {
		for _, u := range v.adj.snapshot() {
			if g.nodes.has(u) {
				v.adj.remove(u)
			}
		}
	}
	n := g.nodes.len()
	g.nodes.clear()
	g.logger.Debug("graph cleared", zap.Int("vertices", n))
}
