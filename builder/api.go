// SPDX-License-Identifier: MIT
// Package: waytour/builder
//
// api.go - BuildGraph entry point and the Constructor type.
//
// Design contract:
//   - One orchestrator: BuildGraph(cons...). Creates g, runs cons in order.
//   - Constructors validate early, never panic and return wrapped sentinels.

package builder

import (
	"fmt"

	"github.com/katalvlaran/waytour/core"
	"github.com/katalvlaran/waytour/weight"
)

// ArcGraph is the graph shape every constructor in this package produces.
type ArcGraph[V comparable, W weight.Number] = core.Graph[V, W, Arc[V, W]]

// Constructor applies a deterministic mutation to g.
type Constructor[V comparable, W weight.Number] func(g *ArcGraph[V, W]) error

// BuildGraph creates an empty graph and applies cons in order. The first
// constructor error aborts the build and is returned wrapped with "BuildGraph: ".
//
// Complexity: Σ cost of the constructors.
func BuildGraph[V comparable, W weight.Number](cons ...Constructor[V, W]) (*ArcGraph[V, W], error) {
	g := core.NewGraph[V, W, Arc[V, W]]()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Vertices inserts ids in order. Ids already present are rejected.
func Vertices[V comparable, W weight.Number](ids ...V) Constructor[V, W] {
	return func(g *ArcGraph[V, W]) error {
		for _, id := range ids {
			if !g.InsertVertex(id) {
				return fmt.Errorf("Vertices: InsertVertex(%v): %w", id, ErrConstructFailed)
			}
		}

		return nil
	}
}

// Arcs inserts the given arcs in order; endpoints must already exist.
func Arcs[V comparable, W weight.Number](arcs ...Arc[V, W]) Constructor[V, W] {
	return func(g *ArcGraph[V, W]) error {
		for _, a := range arcs {
			if !g.InsertEdge(a) {
				return fmt.Errorf("Arcs: InsertEdge(%v→%v): %w", a.From, a.To, ErrConstructFailed)
			}
		}

		return nil
	}
}

// Symmetric inserts every arc followed by all of their reversals, so the
// resulting digraph models an undirected weighted graph.
func Symmetric[V comparable, W weight.Number](arcs ...Arc[V, W]) Constructor[V, W] {
	all := make([]Arc[V, W], 0, 2*len(arcs))
	all = append(all, arcs...)
	for _, a := range arcs {
		all = append(all, a.Reversed())
	}

	return Arcs(all...)
}
