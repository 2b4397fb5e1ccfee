// Package core provides the generic, thread-safe weighted digraph used by every
// solver in waytour.
//
// The Graph G = (V, E) stores:
//
//   - a vertex set of any comparable type V (waypoint IDs, station values, ...),
//   - for each vertex, the set of outgoing edges E, where E is any comparable value
//     exposing Source(), Destination() and Weight().
//
// Edge identity is the edge value itself (pointer identity for pointer edges),
// never its weight: two edges between the same pair with different or even equal
// weights are distinct as long as their values differ. Inserting the same edge
// twice is a no-op.
//
// Invariants:
//
//   - Every stored edge has both endpoints in the vertex set. InsertEdge refuses
//     (returns false) otherwise; nothing is ever stored dangling.
//   - RemoveVertex purges every incident edge in both directions.
//   - There is no reverse index. EdgesTo scans all outgoing sets: O(V+E).
//
// Determinism:
//
//	Vertices() enumerates in insertion order and EdgesFrom(v) enumerates edges in
//	insertion order. Solvers derive their secondary tie-break ordering from these
//	positions, so identical insertion sequences always produce identical tours.
//
// Methods:
//
//	// Vertex lifecycle
//	InsertVertex(v V) bool          // O(1)
//	RemoveVertex(v V) bool          // O(V+E)
//	HasVertex(v V) bool             // O(1)
//
//	// Edge lifecycle
//	InsertEdge(e E) bool            // O(1)
//	RemoveEdge(e E) bool            // O(1)
//	RemoveAllEdges()                // O(V)
//
//	// Query
//	EdgesFrom(v V) []E              // O(d log d)
//	EdgesTo(v V) []E                // O(V+E), full scan
//	EdgesBetween(from, to V) []E    // O(d log d)
//	ContainsEdge(from, to V) bool   // O(d)
//	Neighbors(v V) []V              // O(d log d), unique destinations
//	IsComplete() bool               // O(V+E)
//
// All operations are total: absence is reported through booleans and empty
// slices, never through errors or panics.
package core
