package paths

import (
	"fmt"
	"time"

	"github.com/katalvlaran/ugraph/core"
	"github.com/katalvlaran/ugraph/internal/pathset"
)

// frame is one stack entry: the vertex reached, the number of edges on the
// path that reached it, and the vertices on that path.
type frame[T any] struct {
	v      *core.Vertex[T]
	length int
	path   pathset.Set
}

// ShortestPath returns the minimum number of edges on any path from n1 to n2.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. n1 and n2 must be non-nil (core.ErrNilVertex).
//  3. n1 == n2 (identity) returns 0 immediately, member or not.
//  4. n1 and n2 must be members of g (core.ErrVertexNotFound).
//
// Unreachable n2 returns NoPath and ErrNoPath.
//
// The search is exhaustive: every simple path leaving n1 is expanded, each
// branch carrying its own visited set, and the minimum over all hits on n2 is
// kept. Nothing is pruned and the first hit does not stop the search.
//
// Complexity: exponential in the worst case (number of simple paths). On large
// or dense graphs bfs.Walk gives the same answer in O(V+E) via Result.Depth.
func ShortestPath[T any](g *core.Graph[T], n1, n2 *core.Vertex[T]) (int, error) {
	// 1) Validate inputs
	if g == nil {
		return NoPath, ErrGraphNil
	}
	if n1 == nil || n2 == nil {
		return NoPath, core.ErrNilVertex
	}
	if n1 == n2 {
		return 0, nil
	}
	if err := g.CheckMember(n1); err != nil {
		return NoPath, fmt.Errorf("paths: source: %w", err)
	}
	if err := g.CheckMember(n2); err != nil {
		return NoPath, fmt.Errorf("paths: target: %w", err)
	}
	began := time.Now()

	// 2) Seed the stack with n1 on its own path
	space := pathset.NewSpace(g)
	stack := []frame[T]{{v: n1, length: 0, path: space.Of(n1)}}
	frames := 1
	reached := map[*core.Vertex[T]]struct{}{n1: {}}
	best := NoPath

	// 3) Expand every simple path
	var cur frame[T]
	for len(stack) > 0 {
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cur.length++ // the edge about to be traversed

		for _, nb := range cur.v.Adjacent() {
			if nb == n2 {
				if best == NoPath || cur.length < best {
					best = cur.length
				}
				reached[nb] = struct{}{}
				continue
			}
			if space.Contains(cur.path, nb) {
				continue
			}
			stack = append(stack, frame[T]{
				v:      nb,
				length: cur.length,
				path:   space.With(cur.path, nb),
			})
			frames++
			reached[nb] = struct{}{}
		}
	}

	// 4) Report and return
	g.Report(core.TraversalStats{
		Op:      core.OpShortestPath,
		Start:   n1.String(),
		Visited: len(reached),
		Frames:  frames,
		Elapsed: time.Since(began),
	})
	if best == NoPath {
		return NoPath, fmt.Errorf("%w from %s to %s", ErrNoPath, n1, n2)
	}

	return best, nil
}
