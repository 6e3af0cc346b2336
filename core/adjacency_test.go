package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedSet_RemoveKeepsOrderAndPositions(t *testing.T) {
	s := newOrderedSet[string](0)
	vs := []*Vertex[string]{NewVertex("a"), NewVertex("b"), NewVertex("c"), NewVertex("d")}
	for _, v := range vs {
		require.True(t, s.add(v))
	}
	assert.False(t, s.add(vs[0]), "second add is a no-op")

	require.True(t, s.remove(vs[1]))
	assert.False(t, s.remove(vs[1]))

	assert.Equal(t, []*Vertex[string]{vs[0], vs[2], vs[3]}, s.snapshot())
	for i, v := range s.items {
		assert.Equal(t, i, s.index(v))
	}
	assert.Equal(t, -1, s.index(vs[1]))
	assert.False(t, s.has(vs[1]))
}

func TestOrderedSet_SnapshotIsACopy(t *testing.T) {
	s := newOrderedSet[int](2)
	a, b := NewVertex(1), NewVertex(2)
	s.add(a)
	s.add(b)

	snap := s.snapshot()
	snap[0] = nil
	assert.Same(t, a, s.items[0])
}

func TestOrderedSet_Clear(t *testing.T) {
	s := newOrderedSet[int](0)
	a := NewVertex(1)
	s.add(a)
	s.clear()

	assert.Equal(t, 0, s.len())
	assert.False(t, s.has(a))
	assert.True(t, s.add(a), "cleared set accepts the element again")
	assert.Equal(t, 0, s.index(a))
}
