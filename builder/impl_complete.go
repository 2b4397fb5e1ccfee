// SPDX-License-Identifier: MIT
// Package: waytour/builder
//
// impl_complete.go - Complete and Ring constructors.
//
// Determinism:
//   - Vertices inserted in ids order.
//   - Arcs emitted row-major over (i, j), i != j.

package builder

import (
	"fmt"

	"github.com/katalvlaran/waytour/weight"
)

const (
	methodComplete = "Complete"
	methodRing     = "Ring"
	minComplete    = 2
	minRing        = 2
)

// Complete inserts ids and one arc i→j for every ordered pair i != j with cost
// cost(i, j), where i and j index into ids.
// Complexity: O(n²).
func Complete[V comparable, W weight.Number](ids []V, cost func(i, j int) W) Constructor[V, W] {
	return func(g *ArcGraph[V, W]) error {
		if len(ids) < minComplete {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, len(ids), minComplete, ErrTooFewVertices)
		}
		if err := Vertices[V, W](ids...)(g); err != nil {
			return fmt.Errorf("%s: %w", methodComplete, err)
		}
		var i, j int
		for i = range ids {
			for j = range ids {
				if i == j {
					continue
				}
				g.InsertEdge(Arc[V, W]{From: ids[i], To: ids[j], Cost: cost(i, j)})
			}
		}

		return nil
	}
}

// Ring inserts ids and the directed cycle ids[0]→ids[1]→…→ids[n-1]→ids[0],
// every arc costing w. The only Hamiltonian cycle is the ring itself.
// Complexity: O(n).
func Ring[V comparable, W weight.Number](ids []V, w W) Constructor[V, W] {
	return func(g *ArcGraph[V, W]) error {
		if len(ids) < minRing {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, len(ids), minRing, ErrTooFewVertices)
		}
		if err := Vertices[V, W](ids...)(g); err != nil {
			return fmt.Errorf("%s: %w", methodRing, err)
		}
		n := len(ids)
		for i := 0; i < n; i++ {
			g.InsertEdge(Arc[V, W]{From: ids[i], To: ids[(i+1)%n], Cost: w})
		}

		return nil
	}
}
