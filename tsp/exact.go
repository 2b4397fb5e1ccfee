package tsp

import (
	"github.com/katalvlaran/waytour/core"
	"github.com/katalvlaran/waytour/weight"
)

// checkEvery is the number of frame pops between context checks.
const checkEvery = 4096

// frame is an immutable search node. Children copy legs and seen.
type frame[W weight.Number, E any] struct {
	at   int
	cost W
	legs []leg[W, E]
	seen []bool
}

// Exact returns the minimum-weight Hamiltonian cycle that starts and ends at start.
//
// Implementation:
//   - Stage 1: Snapshot g into an arena of index-addressed legs, sorted by
//     (weight, destination, insertion order). Reject graphs not spanned from start.
//   - Stage 2: Depth-first search over partial tours held on an explicit stack.
//     Children are pushed in sorted order, so the most expensive leg pops first.
//   - Stage 3: A complete tour is closed over the cheapest edge back to start
//     and replaces the incumbent only when strictly cheaper.
//   - Stage 4: With non-negative weights, any frame whose cost already reaches
//     the incumbent is pruned. A single negative weight disables pruning.
//
// Parallel edges are all explored, so the tour carries the exact edge values
// that produced its cost. Ties keep the first tour found.
//
// Complexity: O(V!) time in the worst case, O(V²·d) memory for the stack where
// d is the maximum out-degree.
//
// Errors: ErrNilGraph, ErrStartNotFound, ErrTooFewVertices, ErrNoCycle, or the
// context error when WithContext is cancelled, either during the reachability
// check or mid-search (polled every checkEvery frames).
func Exact[V comparable, W weight.Number, E core.Edge[V, W]](g *core.Graph[V, W, E], start V, opts ...Option) (core.Path[V, W, E], error) {
	var none core.Path[V, W, E]
	o := buildOptions(opts)
	a, err := newArena(o.Ctx, g, start)
	if err != nil {
		return none, err
	}

	n := len(a.vertices)
	seen := make([]bool, n)
	seen[a.start] = true
	stack := []frame[W, E]{{at: a.start, cost: weight.Zero[W](), seen: seen}}

	var (
		best     W
		bestLegs []leg[W, E]
		found    bool
		steps    int
	)
	improves := func(c W) bool { return !found || c < best }

	for len(stack) > 0 {
		steps++
		if steps%checkEvery == 0 {
			if err = o.Ctx.Err(); err != nil {
				return none, err
			}
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if a.nonNeg && !improves(f.cost) {
			continue
		}

		if len(f.legs) == n-1 {
			// Cheapest closing edge first; later ones cannot improve.
			for _, l := range a.out[f.at] {
				if l.to != a.start {
					continue
				}
				if total := weight.Add(f.cost, l.w); improves(total) {
					best, found = total, true
					bestLegs = append(append(make([]leg[W, E], 0, n), f.legs...), l)
				}
				break
			}
			continue
		}

		for _, l := range a.out[f.at] {
			if f.seen[l.to] {
				continue
			}
			cost := weight.Add(f.cost, l.w)
			if a.nonNeg && !improves(cost) {
				continue
			}
			childSeen := make([]bool, n)
			copy(childSeen, f.seen)
			childSeen[l.to] = true
			childLegs := make([]leg[W, E], len(f.legs), len(f.legs)+1)
			copy(childLegs, f.legs)
			stack = append(stack, frame[W, E]{
				at:   l.to,
				cost: cost,
				legs: append(childLegs, l),
				seen: childSeen,
			})
		}
	}

	if !found {
		return none, ErrNoCycle
	}

	return a.path(bestLegs), nil
}
