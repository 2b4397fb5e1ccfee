// Package bfs provides breadth-first search over a core.Graph, returning hop
// distances and visit order.
//
// Edge weights are ignored: BFS answers reachability questions only. The cycle
// solvers use SpansAll, under the solve's context, to reject graphs in which
// some vertex cannot be reached from the tour start before running an
// exponential search.
//
// Neighbours are explored in core insertion order, so visit order is
// deterministic for a given graph.
package bfs
