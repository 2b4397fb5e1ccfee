// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle and vertex queries.
// Determinism:
//   - Vertices() returns vertices in insertion order.

package core

import "sort"

// InsertVertex adds v and allocates its empty outgoing set.
// It reports false, without mutating anything, when v is already present.
// Complexity: O(1) amortized.
func (g *Graph[V, W, E]) InsertVertex(v V) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[v]; ok {
		return false
	}
	g.vertices[v] = g.ordinal()
	g.outgoing[v] = make(map[E]uint64)

	return true
}

// RemoveVertex deletes v together with every edge that starts or ends at v.
// It reports false when v was not present.
// Complexity: O(V+E), incoming edges are found by scanning every outgoing set.
func (g *Graph[V, W, E]) RemoveVertex(v V) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[v]; !ok {
		return false
	}
	// Outgoing edges go with the bucket.
	g.edgeCount -= len(g.outgoing[v])
	delete(g.outgoing, v)

	// Incoming edges: full scan, there is no reverse index.
	var (
		bucket map[E]uint64
		e      E
	)
	for _, bucket = range g.outgoing {
		for e = range bucket {
			if e.Destination() == v {
				delete(bucket, e)
				g.edgeCount--
			}
		}
	}
	delete(g.vertices, v)

	return true
}

// HasVertex reports whether v is in the vertex set.
// Complexity: O(1).
func (g *Graph[V, W, E]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[v]

	return ok
}

// Vertices returns every vertex in insertion order.
// Complexity: O(V log V).
func (g *Graph[V, W, E]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedVertices()
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph[V, W, E]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Neighbors returns the distinct destinations of v's outgoing edges, ordered by
// the first edge that reaches each of them.
// Complexity: O(d log d).
func (g *Graph[V, W, E]) Neighbors(v V) []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := g.sortedEdges(g.outgoing[v])
	out := make([]V, 0, len(edges))
	seen := make(map[V]struct{}, len(edges))
	var e E
	for _, e = range edges {
		if _, dup := seen[e.Destination()]; dup {
			continue
		}
		seen[e.Destination()] = struct{}{}
		out = append(out, e.Destination())
	}

	return out
}

// IsComplete reports whether a directed edge exists for every ordered pair of
// distinct vertices. Graphs with fewer than two vertices are trivially complete.
// Complexity: O(V+E).
func (g *Graph[V, W, E]) IsComplete() bool {
	return g.MissingPairs() == 0
}

// MissingPairs counts ordered pairs (u, v), u != v, with no u→v edge.
// Complexity: O(V+E).
func (g *Graph[V, W, E]) MissingPairs() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.vertices)
	missing := n * (n - 1)
	var (
		u      V
		bucket map[E]uint64
		e      E
	)
	for u, bucket = range g.outgoing {
		covered := make(map[V]struct{}, len(bucket))
		for e = range bucket {
			if e.Destination() != u {
				covered[e.Destination()] = struct{}{}
			}
		}
		missing -= len(covered)
	}

	return missing
}

// sortedVertices lists vertices by ordinal. Callers hold at least the read lock.
func (g *Graph[V, W, E]) sortedVertices() []V {
	out := make([]V, 0, len(g.vertices))
	var v V
	for v = range g.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return g.vertices[out[i]] < g.vertices[out[j]] })

	return out
}
