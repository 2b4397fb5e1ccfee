package tsp

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/waytour/bfs"
	"github.com/katalvlaran/waytour/core"
	"github.com/katalvlaran/waytour/weight"
)

// leg is one candidate edge out of an arena vertex.
type leg[W weight.Number, E any] struct {
	to   int // destination index
	w    W
	ord  int // position among the source's edges
	edge E
}

// arena is an index view of the graph taken once per solve.
type arena[V comparable, W weight.Number, E core.Edge[V, W]] struct {
	vertices []V
	start    int
	out      [][]leg[W, E] // sorted by (w, to, ord)
	nonNeg   bool
}

// newArena validates the input and snapshots g. It rejects graphs in which some
// vertex is unreachable from start, since no cycle can exist there. The
// reachability walk stops early when ctx is done.
func newArena[V comparable, W weight.Number, E core.Edge[V, W]](ctx context.Context, g *core.Graph[V, W, E], start V) (*arena[V, W, E], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}
	vs := g.Vertices()
	if len(vs) < 2 {
		return nil, fmt.Errorf("%w: have %d", ErrTooFewVertices, len(vs))
	}
	spans, err := bfs.SpansAll(g, start, bfs.WithContext[V](ctx))
	if err != nil {
		return nil, err
	}
	if !spans {
		return nil, fmt.Errorf("%w: not every vertex is reachable from %v", ErrNoCycle, start)
	}

	a := &arena[V, W, E]{
		vertices: vs,
		out:      make([][]leg[W, E], len(vs)),
		nonNeg:   true,
	}
	index := make(map[V]int, len(vs))
	for i, v := range vs {
		index[v] = i
	}
	a.start = index[start]

	zero := weight.Zero[W]()
	for i, v := range vs {
		edges := g.EdgesFrom(v)
		legs := make([]leg[W, E], 0, len(edges))
		for ord, e := range edges {
			to, ok := index[e.Destination()]
			if !ok {
				continue
			}
			if e.Weight() < zero {
				a.nonNeg = false
			}
			legs = append(legs, leg[W, E]{to: to, w: e.Weight(), ord: ord, edge: e})
		}
		sort.SliceStable(legs, func(x, y int) bool {
			if legs[x].w != legs[y].w {
				return legs[x].w < legs[y].w
			}
			if legs[x].to != legs[y].to {
				return legs[x].to < legs[y].to
			}

			return legs[x].ord < legs[y].ord
		})
		a.out[i] = legs
	}

	return a, nil
}

// path materializes a closed tour from its legs.
func (a *arena[V, W, E]) path(legs []leg[W, E]) core.Path[V, W, E] {
	p := core.Path[V, W, E]{
		Vertices: make([]V, 0, len(legs)+1),
		Edges:    make([]E, 0, len(legs)),
	}
	p.Vertices = append(p.Vertices, a.vertices[a.start])
	for _, l := range legs {
		p.Vertices = append(p.Vertices, a.vertices[l.to])
		p.Edges = append(p.Edges, l.edge)
	}
	p.Reweigh()

	return p
}
