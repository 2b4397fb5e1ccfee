package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/waytour/core"
	"github.com/katalvlaran/waytour/weight"
)

// ShortestPath returns the minimum-weight path from start to end.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must be vertices of g (ErrVertexNotFound).
//  3. start != end (ErrSameVertex).
//  4. no edge may have negative weight (ErrNegativeWeight).
//
// The search stops as soon as end is settled.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath[V comparable, W weight.Number, E core.Edge[V, W]](g *core.Graph[V, W, E], start, end V) (core.Path[V, W, E], error) {
	var zero core.Path[V, W, E]
	if g == nil {
		return zero, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return zero, fmt.Errorf("%w: start %v", ErrVertexNotFound, start)
	}
	if !g.HasVertex(end) {
		return zero, fmt.Errorf("%w: end %v", ErrVertexNotFound, end)
	}
	if start == end {
		return zero, ErrSameVertex
	}

	r, err := newRunner(g, start)
	if err != nil {
		return zero, err
	}
	target := r.index[end]
	r.process(target)

	return r.path(target)
}

// Distances settles every vertex reachable from start and returns the final
// distance of each vertex (weight.Infinity when unreachable).
//
// Complexity: O((V + E) log V).
func Distances[V comparable, W weight.Number, E core.Edge[V, W]](g *core.Graph[V, W, E], start V) (map[V]W, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %v", ErrVertexNotFound, start)
	}
	r, err := newRunner(g, start)
	if err != nil {
		return nil, err
	}
	r.process(-1)

	out := make(map[V]W, len(r.vertices))
	for i, v := range r.vertices {
		out[v] = r.dist[i]
	}

	return out, nil
}

// runner holds the mutable state for a single execution over a vertex arena.
type runner[V comparable, W weight.Number, E core.Edge[V, W]] struct {
	g        *core.Graph[V, W, E]
	vertices []V       // arena: index → vertex, insertion order
	index    map[V]int // vertex → arena index
	dist     []W       // best known distance per index
	prev     []E       // predecessor edge per index
	hasPrev  []bool    // prev[i] is meaningful
	visited  []bool    // distance finalized
	pq       nodePQ[W] // lazy min-heap
	source   int
}

// newRunner validates weights and seeds the heap with the source at zero.
func newRunner[V comparable, W weight.Number, E core.Edge[V, W]](g *core.Graph[V, W, E], start V) (*runner[V, W, E], error) {
	var e E
	for _, e = range g.Edges() {
		if e.Weight() < weight.Zero[W]() {
			return nil, fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, e.Source(), e.Destination(), e.Weight())
		}
	}

	vs := g.Vertices()
	n := len(vs)
	r := &runner[V, W, E]{
		g:        g,
		vertices: vs,
		index:    make(map[V]int, n),
		dist:     make([]W, n),
		prev:     make([]E, n),
		hasPrev:  make([]bool, n),
		visited:  make([]bool, n),
		pq:       make(nodePQ[W], 0, n),
	}
	inf := weight.Infinity[W]()
	for i, v := range vs {
		r.index[v] = i
		r.dist[i] = inf
	}
	r.source = r.index[start]
	r.dist[r.source] = weight.Zero[W]()
	heap.Push(&r.pq, nodeItem[W]{idx: r.source, dist: r.dist[r.source]})

	return r, nil
}

// process settles vertices in distance order until the heap drains or target
// (when ≥ 0) is settled.
func (r *runner[V, W, E]) process(target int) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem[W])
		if r.visited[item.idx] {
			continue
		}
		r.visited[item.idx] = true
		if item.idx == target {
			return
		}
		r.relax(item.idx)
	}
}

// relax improves every unsettled neighbour of u through the cheapest parallel
// edge u→v. The first edge in insertion order wins among equal weights.
func (r *runner[V, W, E]) relax(u int) {
	best := make(map[int]E)
	order := make([]int, 0)
	var e E
	for _, e = range r.g.EdgesFrom(r.vertices[u]) {
		v, ok := r.index[e.Destination()]
		if !ok || r.visited[v] {
			continue
		}
		cur, seen := best[v]
		if !seen {
			order = append(order, v)
			best[v] = e
			continue
		}
		if e.Weight() < cur.Weight() {
			best[v] = e
		}
	}

	for _, v := range order {
		e = best[v]
		nd := weight.Add(r.dist[u], e.Weight())
		if !(nd < r.dist[v]) {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = e
		r.hasPrev[v] = true
		heap.Push(&r.pq, nodeItem[W]{idx: v, dist: nd})
	}
}

// path walks predecessor edges back from target to the source.
func (r *runner[V, W, E]) path(target int) (core.Path[V, W, E], error) {
	var out core.Path[V, W, E]
	if weight.IsInf(r.dist[target]) || !r.hasPrev[target] {
		return out, fmt.Errorf("%w: %v→%v", ErrNoPath, r.vertices[r.source], r.vertices[target])
	}

	edges := make([]E, 0)
	cur := target
	for cur != r.source {
		if !r.hasPrev[cur] {
			return out, fmt.Errorf("%w: broken predecessor chain at %v", ErrNoPath, r.vertices[cur])
		}
		e := r.prev[cur]
		edges = append(edges, e)
		cur = r.index[e.Source()]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	out.Edges = edges
	out.Vertices = make([]V, 0, len(edges)+1)
	out.Vertices = append(out.Vertices, r.vertices[r.source])
	for _, e := range edges {
		out.Vertices = append(out.Vertices, e.Destination())
	}
	out.Weight = r.dist[target]

	return out, nil
}
