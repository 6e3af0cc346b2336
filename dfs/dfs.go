// Package dfs implements iterative pre-order depth-first search on core.Graph.
//
// The traversal uses an explicit LIFO stack. A vertex is marked visited when it
// is pushed, not when it is popped, so it can be stacked at most once. Neighbours
// are pushed in adjacency insertion order and therefore emitted in reverse
// insertion order.
//
// Complexity:
//
//   - Time:   O(V + E) over the component of start (all members with
//     WithFullTraversal).
//   - Memory: O(V) for the stack and result maps.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - core.ErrNilVertex       if start is nil.
//   - core.ErrVertexNotFound  if start is not a member of g.
//   - wrapped OnVisit errors.
package dfs

import (
	"fmt"
	"time"

	"github.com/katalvlaran/ugraph/core"
)

// DFS returns the values of every vertex reachable from start, in depth-first
// visitation order. An isolated start yields a single value.
func DFS[T any](g *core.Graph[T], start *core.Vertex[T], opts ...Option[T]) ([]T, error) {
	res, err := Walk(g, start, opts...)
	if err != nil {
		return nil, err
	}

	return res.Values(), nil
}

// Walk performs the traversal behind DFS and returns the full Result.
// On an OnVisit error the partial Result is returned with the wrapped error.
func Walk[T any](g *core.Graph[T], start *core.Vertex[T], opts ...Option[T]) (*Result[T], error) {
	// 1. Validate input and resolve options
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := g.CheckMember(start); err != nil {
		return nil, fmt.Errorf("dfs: start: %w", err)
	}
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	began := time.Now()

	// 2. Prepare result; start first, then every other member for a forest
	n := g.VertexCount()
	res := &Result[T]{
		Order:  make([]*core.Vertex[T], 0, n),
		Depth:  make(map[*core.Vertex[T]]int, n),
		Parent: make(map[*core.Vertex[T]]*core.Vertex[T], n),
	}
	frames := 0
	var err error
	roots := []*core.Vertex[T]{start}
	if o.FullTraversal {
		roots = append(roots, g.Vertices()...)
	}

	// 3. Traverse each unvisited root
	for _, root := range roots {
		if _, seen := res.Depth[root]; seen {
			continue
		}
		if frames, err = walkFrom(root, &o, res, frames); err != nil {
			break
		}
	}

	// 4. Report
	g.Report(core.TraversalStats{
		Op:      core.OpDFS,
		Start:   start.String(),
		Visited: len(res.Order),
		Frames:  frames,
		Elapsed: time.Since(began),
	})

	return res, err
}

// walkFrom runs one stack-driven traversal rooted at root and returns the
// updated frame count.
func walkFrom[T any](root *core.Vertex[T], o *Options[T], res *Result[T], frames int) (int, error) {
	res.Depth[root] = 0
	stack := []*core.Vertex[T]{root}
	frames++

	var cur *core.Vertex[T]
	var d int
	for len(stack) > 0 {
		// pop, emit, call hook
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res.Order = append(res.Order, cur)
		d = res.Depth[cur]
		if o.OnVisit != nil {
			if err := o.OnVisit(cur, d); err != nil {
				return frames, fmt.Errorf("dfs: OnVisit error at %s: %w", cur, err)
			}
		}
		if o.MaxDepth >= 0 && d >= o.MaxDepth {
			continue
		}

		// push unvisited neighbours (visited at push time)
		for _, nb := range cur.Adjacent() {
			if _, seen := res.Depth[nb]; seen {
				continue
			}
			if o.FilterNeighbor != nil && !o.FilterNeighbor(cur, nb) {
				res.SkippedNeighbors++
				continue
			}
			res.Depth[nb] = d + 1
			res.Parent[nb] = cur
			stack = append(stack, nb)
			frames++
		}
	}

	return frames, nil
}
