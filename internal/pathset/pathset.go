// Package pathset provides the per-path visited sets used by the exhaustive
// path searches (paths.ShortestPath, dfs.HasCycleFrom).
//
// Each search frame owns a Set recording the vertices on its own path. Sets are
// bitsets indexed by the vertex's position in the graph's membership
// (Graph.IndexOf), so cloning a set for a new branch is a copy of
// ⌈V/64⌉ words instead of a hash-set copy.
//
// A vertex shared with another graph may carry edges to vertices that are not
// members of this one. Such vertices receive positions past the membership on
// first sight, and sets grow to cover them. The graph must not be mutated
// while a Space is in use.
package pathset

import (
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/ugraph/core"
)

// Set is an immutable-by-convention bitset over one Space.
// With returns a new Set; the receiver is never modified.
type Set struct {
	b bits.Bits
}

// Space fixes the bit layout for one graph snapshot.
type Space[T any] struct {
	g       *core.Graph[T]
	members int
	extra   map[*core.Vertex[T]]int
}

// NewSpace captures the current membership size of g.
func NewSpace[T any](g *core.Graph[T]) *Space[T] {
	return &Space[T]{g: g, members: g.VertexCount()}
}

// Size returns the number of bit positions assigned so far.
func (sp *Space[T]) Size() int { return sp.members + len(sp.extra) }

// Of returns a Set containing exactly vs.
func (sp *Space[T]) Of(vs ...*core.Vertex[T]) Set {
	for _, v := range vs {
		sp.pos(v)
	}
	s := Set{b: bits.New(sp.Size())}
	for _, v := range vs {
		s.b.SetBit(sp.pos(v), 1)
	}

	return s
}

// Contains reports whether v is in s.
func (sp *Space[T]) Contains(s Set, v *core.Vertex[T]) bool {
	i := sp.pos(v)
	if i >= s.b.Num {
		return false
	}
	return s.b.Bit(i) == 1
}

// With returns a copy of s with v added.
func (sp *Space[T]) With(s Set, v *core.Vertex[T]) Set {
	i := sp.pos(v)
	c := Set{b: bits.New(sp.Size())}
	copy(c.b.Bits, s.b.Bits)
	c.b.SetBit(i, 1)

	return c
}

// pos resolves v to its bit position, assigning one to a non-member.
func (sp *Space[T]) pos(v *core.Vertex[T]) int {
	if i := sp.g.IndexOf(v); i >= 0 && i < sp.members {
		return i
	}
	if i, ok := sp.extra[v]; ok {
		return i
	}
	if sp.extra == nil {
		sp.extra = make(map[*core.Vertex[T]]int)
	}
	i := sp.Size()
	sp.extra[v] = i

	return i
}
