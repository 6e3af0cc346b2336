// File: adjacency.go
// Role: insertion-ordered, identity-keyed vertex set backing both Vertex
//       adjacency and Graph membership.
// Determinism:
//   - each() and snapshot() yield elements in insertion order; removal keeps
//     the relative order of the remaining elements.
package core

// orderedSet is a set of *Vertex[T] keyed by pointer identity.
//
// items holds the elements in insertion order; pos maps each element to its
// index in items. Both are kept in sync by add and remove.
type orderedSet[T any] struct {
	items []*Vertex[T]
	pos   map[*Vertex[T]]int
}

func newOrderedSet[T any](capacity int) *orderedSet[T] {
	return &orderedSet[T]{
		items: make([]*Vertex[T], 0, capacity),
		pos:   make(map[*Vertex[T]]int, capacity),
	}
}

// add inserts v and reports whether it was absent. O(1) amortized.
func (s *orderedSet[T]) add(v *Vertex[T]) bool {
	if _, ok := s.pos[v]; ok {
		return false
	}
	s.pos[v] = len(s.items)
	s.items = append(s.items, v)

	return true
}

// remove deletes v and reports whether it was present.
// O(n) in the worst case: later elements shift left to keep insertion order.
func (s *orderedSet[T]) remove(v *Vertex[T]) bool {
	i, ok := s.pos[v]
	if !ok {
		return false
	}
	delete(s.pos, v)
	copy(s.items[i:], s.items[i+1:])
	s.items[len(s.items)-1] = nil // release the reference held by the tail slot
	s.items = s.items[:len(s.items)-1]
	for j := i; j < len(s.items); j++ {
		s.pos[s.items[j]] = j
	}

	return true
}

func (s *orderedSet[T]) has(v *Vertex[T]) bool {
	_, ok := s.pos[v]
	return ok
}

// index returns the insertion position of v, or -1 when absent.
func (s *orderedSet[T]) index(v *Vertex[T]) int {
	if i, ok := s.pos[v]; ok {
		return i
	}
	return -1
}

func (s *orderedSet[T]) len() int { return len(s.items) }

// snapshot returns a copy of the elements in insertion order.
func (s *orderedSet[T]) snapshot() []*Vertex[T] {
	out := make([]*Vertex[T], len(s.items))
	copy(out, s.items)

	return out
}

// clear drops every element while keeping the allocated capacity.
func (s *orderedSet[T]) clear() {
	for i := range s.items {
		s.items[i] = nil
	}
	s.items = s.items[:0]
	s.pos = make(map[*Vertex[T]]int)
}
