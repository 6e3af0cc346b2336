// Package bfs provides breadth-first search over a core.Graph,
// returning visit order, unweighted distances and parent links.
//
// BFS explores vertices layer by layer from a start vertex. A vertex is marked
// visited when it is enqueued, so it enters the queue at most once.
package bfs

import (
	"fmt"
	"time"

	"github.com/katalvlaran/ugraph/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[T any] struct {
	v     *core.Vertex[T]
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T any] struct {
	opts   Options[T]
	queue  []queueItem[T]
	frames int
	res    *Result[T]
}

// BFS returns the values of every vertex reachable from start, in
// breadth-first visitation order. An isolated start yields a single value.
func BFS[T any](g *core.Graph[T], start *core.Vertex[T], opts ...Option[T]) ([]T, error) {
	res, err := Walk(g, start, opts...)
	if err != nil {
		return nil, err
	}

	return res.Values(), nil
}

// Walk runs breadth-first search on g starting from start and returns the
// full Result, applying any number of functional Options.
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad options,
// core.ErrNilVertex or a wrapped core.ErrVertexNotFound for an invalid start,
// or the wrapped OnVisit error together with the partial Result.
func Walk[T any](g *core.Graph[T], start *core.Vertex[T], opts ...Option[T]) (*Result[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.CheckMember(start); err != nil {
		return nil, fmt.Errorf("bfs: start: %w", err)
	}
	began := time.Now()

	// Prepare walker
	n := g.VertexCount()
	w := &walker[T]{
		opts:  o,
		queue: make([]queueItem[T], 0, n),
		res: &Result[T]{
			Order:  make([]*core.Vertex[T], 0, n),
			Depth:  make(map[*core.Vertex[T]]int, n),
			Parent: make(map[*core.Vertex[T]]*core.Vertex[T], n),
		},
	}

	// Seed queue with start (no parent), then drain
	w.enqueue(start, 0, nil)
	err := w.loop()

	g.Report(core.TraversalStats{
		Op:      core.OpBFS,
		Start:   start.String(),
		Visited: len(w.res.Order),
		Frames:  w.frames,
		Elapsed: time.Since(began),
	})

	return w.res, err
}

// enqueue marks v visited at depth d, records its parent and appends it to the queue.
func (w *walker[T]) enqueue(v *core.Vertex[T], d int, parent *core.Vertex[T]) {
	w.res.Depth[v] = d
	if parent != nil {
		w.res.Parent[v] = parent
	}
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem[T]{v: v, depth: d})
	w.frames++
}

// loop processes the queue until empty or a hook error.
func (w *walker[T]) loop() error {
	var item queueItem[T]
	for len(w.queue) > 0 {
		item = w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item and invokes OnDequeue.
func (w *walker[T]) dequeue() queueItem[T] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[T]) visit(item queueItem[T]) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %s: %w", item.v, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each
// neighbour not seen before, in adjacency order.
func (w *walker[T]) enqueueNeighbors(item queueItem[T]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nb := range item.v.Adjacent() {
		if !w.opts.FilterNeighbor(item.v, nb) {
			continue
		}
		if _, seen := w.res.Depth[nb]; !seen {
			w.enqueue(nb, next, item.v)
		}
	}
}
