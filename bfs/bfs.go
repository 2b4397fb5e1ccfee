package bfs

import (
	"context"

	"github.com/katalvlaran/waytour/core"
	"github.com/katalvlaran/waytour/weight"
)

type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable, W weight.Number, E core.Edge[V, W]] struct {
	graph *core.Graph[V, W, E]
	ctx   context.Context
	queue []queueItem[V]
	res   *Result[V]
}

// BFS runs breadth-first search on g from start.
//
// Implementation:
//   - Stage 1: Validate g and start, apply options.
//   - Stage 2: Pop vertices FIFO, recording visit order and hop depth; every
//     unseen neighbour is enqueued once, in core insertion order.
//   - Stage 3: Check the context before each pop.
//
// Complexity: O(V + E) time, O(V) memory.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, or the context error on
// cancellation. On cancellation the partial Result is returned alongside.
func BFS[V comparable, W weight.Number, E core.Edge[V, W]](g *core.Graph[V, W, E], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker[V, W, E]{
		graph: g,
		ctx:   o.Ctx,
		queue: make([]queueItem[V], 0, n),
		res: &Result[V]{
			Order: make([]V, 0, n),
			Depth: make(map[V]int, n),
		},
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[V]{v: start})

	return w.res, w.loop()
}

func (w *walker[V, W, E]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.v)
		for _, nb := range w.graph.Neighbors(item.v) {
			if _, seen := w.res.Depth[nb]; seen {
				continue
			}
			w.res.Depth[nb] = item.depth + 1
			w.queue = append(w.queue, queueItem[V]{v: nb, depth: item.depth + 1})
		}
	}

	return nil
}

// SpansAll reports whether every vertex of g is reachable from start.
// It returns the BFS error unchanged, so a cancelled context surfaces as
// ctx.Err() rather than as an unreachable vertex.
func SpansAll[V comparable, W weight.Number, E core.Edge[V, W]](g *core.Graph[V, W, E], start V, opts ...Option[V]) (bool, error) {
	res, err := BFS(g, start, opts...)
	if err != nil {
		return false, err
	}

	return len(res.Depth) == g.VertexCount(), nil
}
