// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge contract, Graph storage and constructor.
// Concurrency:
//   - A single sync.RWMutex guards the vertex catalog and every adjacency set.
//   - Read queries take the read lock; mutations take the write lock.

package core

import (
	"sync"

	"github.com/katalvlaran/waytour/weight"
)

// Edge is the constraint satisfied by directed weighted edges between vertices of
// type V. The edge value itself is its identity, which is why it must be comparable.
type Edge[V comparable, W weight.Number] interface {
	comparable

	// Source is the vertex the edge leaves.
	Source() V

	// Destination is the vertex the edge enters.
	Destination() V

	// Weight is the current cost of traversing the edge.
	Weight() W
}

// Graph is a directed multigraph with per-vertex outgoing edge sets.
//
// Every vertex and every edge carries an insertion ordinal drawn from one
// monotonic counter; the ordinals only serve deterministic enumeration.
type Graph[V comparable, W weight.Number, E Edge[V, W]] struct {
	mu sync.RWMutex

	nextOrdinal uint64

	// vertices[v] = insertion ordinal of v
	vertices map[V]uint64

	// outgoing[v][e] = insertion ordinal of e; e.Source() == v
	outgoing map[V]map[E]uint64

	edgeCount int
}

// NewGraph returns an empty graph.
// Complexity: O(1).
func NewGraph[V comparable, W weight.Number, E Edge[V, W]]() *Graph[V, W, E] {
	return &Graph[V, W, E]{
		vertices: make(map[V]uint64),
		outgoing: make(map[V]map[E]uint64),
	}
}

// ordinal reserves the next insertion ordinal. Callers hold the write lock.
func (g *Graph[V, W, E]) ordinal() uint64 {
	g.nextOrdinal++

	return g.nextOrdinal
}
