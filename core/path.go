package core

import "github.com/katalvlaran/waytour/weight"

// Path is the result shape shared by the shortest-path and cycle solvers.
//
// For a path over k edges, len(Vertices) == k+1, Vertices[0] is the origin and
// Edges[i] connects Vertices[i] to Vertices[i+1]. A closed tour repeats its start
// as the last vertex.
type Path[V comparable, W weight.Number, E Edge[V, W]] struct {
	// Weight is the saturating sum of all edge weights.
	Weight W

	// Vertices lists the visited vertices in order.
	Vertices []V

	// Edges lists the traversed edges in order.
	Edges []E
}

// Len returns the number of edges on the path.
func (p Path[V, W, E]) Len() int { return len(p.Edges) }

// IsCycle reports whether the path is non-empty and ends where it started.
func (p Path[V, W, E]) IsCycle() bool {
	return len(p.Edges) > 0 && p.Vertices[0] == p.Vertices[len(p.Vertices)-1]
}

// Reweigh recomputes Weight from the current edge weights. Edges whose weight
// depends on a mutable policy report stale totals until reweighed.
//
// Implementation:
//   - Sum Weight() of every edge in order with weight.Add, which saturates at
//     the type's bounds instead of wrapping.
//   - An empty path weighs weight.Zero.
//
// Complexity: O(len(Edges)).
func (p *Path[V, W, E]) Reweigh() {
	total := weight.Zero[W]()
	var e E
	for _, e = range p.Edges {
		total = weight.Add(total, e.Weight())
	}
	p.Weight = total
}
