// Package dijkstra implements label-setting single-pair shortest paths over a
// generic core.Graph.
//
// Every vertex starts at weight.Infinity except the source (weight.Zero). The
// unsettled vertex with the smallest tentative distance is settled next and its
// neighbours are relaxed over the cheapest of all parallel edges leading to them.
// Predecessor edges are recorded on strict improvement and the path is rebuilt
// backwards from the target.
//
// Complexity:
//
//   - Time:  O((V + E) log V), lazy decrease-key binary heap.
//   - Space: O(V + E).
//
// Determinism: heap ties are broken by vertex insertion order and parallel-edge
// ties by edge insertion order, so equal-cost alternatives resolve identically
// on every run.
//
// Errors (sentinel):
//
//   - ErrNilGraph        the graph pointer is nil.
//   - ErrVertexNotFound  start or end is not a vertex of the graph.
//   - ErrSameVertex      start == end.
//   - ErrNegativeWeight  an edge carries a negative weight.
//   - ErrNoPath          end is unreachable from start.
package dijkstra
