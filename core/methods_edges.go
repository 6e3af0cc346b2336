// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeCount.
//
// Symmetry:
//   - Every edge is stored as two adjacency entries (v1 in v2, v2 in v1);
//     a self-loop is a single entry.
//   - unlink is the only place an entry is removed, and it always removes
//     both directions.
package core

import "go.uber.org/zap"

// AddEdge connects v1 and v2.
//
// Steps:
//  1. Reject nil endpoints (ErrNilVertex).
//  2. Reject v1 == v2 unless the graph was built WithLoops (ErrLoopNotAllowed).
//  3. Register both endpoints; they need not be members beforehand.
//  4. Insert v2 into v1's adjacency and v1 into v2's.
//
// Idempotent: adding an existing edge is a no-op.
// Complexity: O(1) amortized for endpoints without seeded adjacency.
func (g *Graph[T]) AddEdge(v1, v2 *Vertex[T]) error {
	if v1 == nil || v2 == nil {
		return ErrNilVertex
	}
	if v1 == v2 && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.register(v1)
	g.register(v2)

	added := v1.adj.add(v2)
	v2.adj.add(v1)
	if added {
		g.logger.Debug("edge added", zap.Stringer("v1", v1), zap.Stringer("v2", v2))
	}

	return nil
}

// RemoveEdge disconnects v1 and v2 on both sides.
// Removing an edge that does not exist is a no-op.
func (g *Graph[T]) RemoveEdge(v1, v2 *Vertex[T]) error {
	if v1 == nil || v2 == nil {
		return ErrNilVertex
	}
	g.unlink(v1, v2)

	return nil
}

// unlink removes both adjacency entries between v1 and v2.
func (g *Graph[T]) unlink(v1, v2 *Vertex[T]) {
	removed := v1.adj.remove(v2)
	if v2.adj.remove(v1) || removed {
		g.logger.Debug("edge removed", zap.Stringer("v1", v1), zap.Stringer("v2", v2))
	}
}

// HasEdge reports whether v1 and v2 are adjacent.
func (g *Graph[T]) HasEdge(v1, v2 *Vertex[T]) bool {
	if v1 == nil || v2 == nil {
		return false
	}
	return v1.adj.has(v2)
}

// EdgeCount returns the number of undirected edges between members.
// A self-loop counts as one edge; an edge to a non-member does not count.
// Complexity: O(V+E).
func (g *Graph[T]) EdgeCount() int {
	ends := 0
	for _, v := range g.nodes.items {
		for _, u := range v.adj.items {
			if !g.nodes.has(u) {
				continue
			}
			if u == v {
				ends += 2 // a loop is stored once but has two ends
			} else {
				ends++
			}
		}
	}

	return ends / 2
}
