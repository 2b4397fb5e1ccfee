// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and edge queries.
// Determinism:
//   - EdgesFrom/EdgesBetween/Edges return edges in insertion order.

package core

import "sort"

// InsertEdge stores e in the outgoing set of e.Source().
//
// It reports false, leaving the graph untouched, when either endpoint is not a
// vertex of g or when e is already stored. Parallel edges (distinct values with
// the same endpoints) are all kept.
// Complexity: O(1) amortized.
func (g *Graph[V, W, E]) InsertEdge(e E) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[e.Source()]; !ok {
		return false
	}
	if _, ok := g.vertices[e.Destination()]; !ok {
		return false
	}
	bucket := g.outgoing[e.Source()]
	if _, dup := bucket[e]; dup {
		return false
	}
	bucket[e] = g.ordinal()
	g.edgeCount++

	return true
}

// RemoveEdge deletes e and reports whether it was present.
// Complexity: O(1).
func (g *Graph[V, W, E]) RemoveEdge(e E) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	bucket, ok := g.outgoing[e.Source()]
	if !ok {
		return false
	}
	if _, ok = bucket[e]; !ok {
		return false
	}
	delete(bucket, e)
	g.edgeCount--

	return true
}

// RemoveAllEdges drops every edge while keeping all vertices.
// Complexity: O(V).
func (g *Graph[V, W, E]) RemoveAllEdges() {
	g.mu.Lock()
	defer g.mu.Unlock()

	var v V
	for v = range g.outgoing {
		g.outgoing[v] = make(map[E]uint64)
	}
	g.edgeCount = 0
}

// EdgesFrom returns the outgoing edges of v, or nil when v is absent.
// Complexity: O(d log d).
func (g *Graph[V, W, E]) EdgesFrom(v V) []E {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedEdges(g.outgoing[v])
}

// EdgesTo returns every edge whose destination is v, ordered by insertion.
// There is no reverse index, so this scans all outgoing sets.
// Complexity: O(V+E).
func (g *Graph[V, W, E]) EdgesTo(v V) []E {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[v]; !ok {
		return nil
	}
	matched := make(map[E]uint64)
	var (
		bucket map[E]uint64
		e      E
		ord    uint64
	)
	for _, bucket = range g.outgoing {
		for e, ord = range bucket {
			if e.Destination() == v {
				matched[e] = ord
			}
		}
	}

	return g.sortedEdges(matched)
}

// EdgesBetween returns all parallel edges from→to in insertion order.
// Complexity: O(d log d) with d = outdegree(from).
func (g *Graph[V, W, E]) EdgesBetween(from, to V) []E {
	g.mu.RLock()
	defer g.mu.RUnlock()

	matched := make(map[E]uint64)
	var (
		e   E
		ord uint64
	)
	for e, ord = range g.outgoing[from] {
		if e.Destination() == to {
			matched[e] = ord
		}
	}

	return g.sortedEdges(matched)
}

// ContainsEdge reports whether at least one from→to edge exists.
// Complexity: O(d) with d = outdegree(from).
func (g *Graph[V, W, E]) ContainsEdge(from, to V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var e E
	for e = range g.outgoing[from] {
		if e.Destination() == to {
			return true
		}
	}

	return false
}

// ContainsEdgeValue reports whether the exact edge e is stored.
// Complexity: O(1).
func (g *Graph[V, W, E]) ContainsEdgeValue(e E) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.outgoing[e.Source()][e]

	return ok
}

// Edges returns every edge ordered by insertion.
// Complexity: O(E log E).
func (g *Graph[V, W, E]) Edges() []E {
	g.mu.RLock()
	defer g.mu.RUnlock()

	all := make(map[E]uint64, g.edgeCount)
	var (
		bucket map[E]uint64
		e      E
		ord    uint64
	)
	for _, bucket = range g.outgoing {
		for e, ord = range bucket {
			all[e] = ord
		}
	}

	return g.sortedEdges(all)
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph[V, W, E]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// sortedEdges flattens a set into insertion order.
func (g *Graph[V, W, E]) sortedEdges(set map[E]uint64) []E {
	if len(set) == 0 {
		return nil
	}
	out := make([]E, 0, len(set))
	var e E
	for e = range set {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return set[out[i]] < set[out[j]] })

	return out
}
