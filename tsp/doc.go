// Package tsp finds closed tours (Hamiltonian cycles) over a generic core.Graph.
//
// Two solvers share one result shape, core.Path, whose first and last vertex
// are the start:
//
//   - Exact: exhaustive depth-first search with an explicit stack of immutable
//     frames over a vertex-index arena. When every weight is non-negative, any
//     partial path that already costs at least the incumbent is pruned; the
//     returned optimum is the same with or without pruning.
//   - NearestNeighbor: greedy walk to the cheapest unvisited neighbour, closed by
//     the cheapest edge back to the start. No backtracking, no optimality.
//
// Solve dispatches between them. With Automatic, Selection picks the exact
// search for small instances (few vertices, or few edges) and the greedy walk
// otherwise.
//
// Parallel edges are first-class: every parallel edge is a separate branch for
// Exact and a separate candidate for NearestNeighbor.
//
// Tie-breaks (fixed, so tours are reproducible):
//
//   - Exact: candidate edges out of a vertex are ordered by (weight, destination
//     insertion order, edge insertion order) and pushed in that order, so the
//     heaviest is explored first. The incumbent is replaced only by a strictly
//     cheaper cycle. Among equal-cost optima the one whose leg weights, read from
//     the start, are lexicographically greatest wins.
//   - NearestNeighbor: minimal weight, then earliest-inserted destination, then
//     earliest-inserted edge. The closing edge is the cheapest start-bound edge,
//     earliest-inserted on ties.
//
// Complexity:
//
//   - Exact:           O(d^(V-1)) worst case, d = max out-degree.
//   - NearestNeighbor: O(V·d).
package tsp
