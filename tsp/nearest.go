package tsp

import (
	"fmt"

	"github.com/katalvlaran/waytour/core"
	"github.com/katalvlaran/waytour/weight"
)

// NearestNeighbor builds a tour by always taking the cheapest edge to an
// unvisited vertex, then closing over the cheapest edge back to start.
//
// Ties resolve by destination index, then by the edge's insertion order, so the
// result is stable for a given graph. The tour is a heuristic and may be far
// from optimal.
//
// Complexity: O(V·d) time where d is the maximum out-degree, O(V) memory.
//
// Errors: ErrNilGraph, ErrStartNotFound, ErrTooFewVertices, ErrNoCycle on a dead
// end or a missing closing edge, or the context error when WithContext is
// cancelled before the walk starts.
func NearestNeighbor[V comparable, W weight.Number, E core.Edge[V, W]](g *core.Graph[V, W, E], start V, opts ...Option) (core.Path[V, W, E], error) {
	var none core.Path[V, W, E]
	o := buildOptions(opts)
	a, err := newArena(o.Ctx, g, start)
	if err != nil {
		return none, err
	}

	n := len(a.vertices)
	seen := make([]bool, n)
	seen[a.start] = true
	legs := make([]leg[W, E], 0, n)
	at := a.start

	for step := 1; step < n; step++ {
		next, ok := firstLeg(a.out[at], func(l leg[W, E]) bool { return !seen[l.to] })
		if !ok {
			return none, fmt.Errorf("%w: dead end at %v", ErrNoCycle, a.vertices[at])
		}
		legs = append(legs, next)
		seen[next.to] = true
		at = next.to
	}

	closing, ok := firstLeg(a.out[at], func(l leg[W, E]) bool { return l.to == a.start })
	if !ok {
		return none, fmt.Errorf("%w: no edge %v→%v", ErrNoCycle, a.vertices[at], a.vertices[a.start])
	}

	return a.path(append(legs, closing)), nil
}

// firstLeg returns the first admissible leg. Legs are pre-sorted by
// (weight, destination, ordinal), which is exactly the greedy tie-break.
func firstLeg[W weight.Number, E any](legs []leg[W, E], admit func(leg[W, E]) bool) (leg[W, E], bool) {
	for _, l := range legs {
		if admit(l) {
			return l, true
		}
	}

	return leg[W, E]{}, false
}
