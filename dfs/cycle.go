// Package dfs implements cycle detection for undirected core.Graphs.
//
// HasCycleFrom explores every simple path leaving start with an explicit stack.
// Each frame carries its own path set and its immediate predecessor: the edge
// just traversed would otherwise look like a cycle of length two when seen from
// the other end. Any other neighbour already on the path closes a cycle.
//
// A self-loop (only possible in graphs built with core.WithLoops) is a cycle.
//
// Complexity:
//
//   - Time:   one frame per vertex on an acyclic component, each copying a
//     V-bit path set; a cyclic component returns at the first back edge.
//   - Memory: O(P·V/64) words for P live frames.
package dfs

import (
	"fmt"
	"time"

	"github.com/katalvlaran/ugraph/core"
	"github.com/katalvlaran/ugraph/internal/pathset"
)

// cycleFrame is one stack entry of the per-path search.
type cycleFrame[T any] struct {
	v    *core.Vertex[T]
	path pathset.Set
	pred *core.Vertex[T] // nil for the start frame
}

// cycleSearch holds the counters of one or more HasCycleFrom runs.
type cycleSearch[T any] struct {
	space   *pathset.Space[T]
	reached map[*core.Vertex[T]]struct{}
	frames  int
}

// HasCycleFrom reports whether a cycle is reachable from start.
func HasCycleFrom[T any](g *core.Graph[T], start *core.Vertex[T]) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if err := g.CheckMember(start); err != nil {
		return false, fmt.Errorf("dfs: start: %w", err)
	}
	began := time.Now()

	s := newCycleSearch(g)
	found := s.from(start)

	g.Report(core.TraversalStats{
		Op:      core.OpHasCycleFrom,
		Start:   start.String(),
		Visited: len(s.reached),
		Frames:  s.frames,
		Elapsed: time.Since(began),
	})

	return found, nil
}

// HasCycle reports whether any component of g contains a cycle.
// Members are tried as starts in insertion order, since a cycle may sit in a
// component unreachable from any single vertex; a start already reached by an
// earlier search is skipped. An empty graph has none.
func HasCycle[T any](g *core.Graph[T]) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	began := time.Now()

	s := newCycleSearch(g)
	found := false
	for _, v := range g.Vertices() {
		// a reached vertex belongs to a component already searched without a hit
		if _, seen := s.reached[v]; seen {
			continue
		}
		if s.from(v) {
			found = true
			break
		}
	}

	g.Report(core.TraversalStats{
		Op:      core.OpHasCycle,
		Visited: len(s.reached),
		Frames:  s.frames,
		Elapsed: time.Since(began),
	})

	return found, nil
}

func newCycleSearch[T any](g *core.Graph[T]) *cycleSearch[T] {
	return &cycleSearch[T]{
		space:   pathset.NewSpace(g),
		reached: make(map[*core.Vertex[T]]struct{}, g.VertexCount()),
	}
}

// from runs the per-path search rooted at start and returns on the first back edge.
func (s *cycleSearch[T]) from(start *core.Vertex[T]) bool {
	// 1) Seed with start on its own path and no predecessor
	stack := []cycleFrame[T]{{v: start, path: s.space.Of(start)}}
	s.frames++
	s.reached[start] = struct{}{}

	var cur cycleFrame[T]
	for len(stack) > 0 {
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, nb := range cur.v.Adjacent() {
			// 2) Skip the edge we arrived by
			if nb == cur.pred {
				continue
			}
			// 3) Back edge: nb is already on this path
			if s.space.Contains(cur.path, nb) {
				return true
			}
			// 4) Extend a private copy of the path
			stack = append(stack, cycleFrame[T]{
				v:    nb,
				path: s.space.With(cur.path, nb),
				pred: cur.v,
			})
			s.frames++
			s.reached[nb] = struct{}{}
		}
	}

	return false
}
