package tsp

import (
	"fmt"

	"github.com/katalvlaran/waytour/core"
	"github.com/katalvlaran/waytour/weight"
)

// Solve runs algo on g from start. Automatic is resolved through sel using the
// current vertex and edge counts of g.
//
// The returned Result names the solver that actually ran, also on error, so
// callers can label failures. opts reach both solvers.
//
// Errors: ErrNilGraph, ErrUnsupportedAlgorithm, or whatever the chosen solver
// returns.
func Solve[V comparable, W weight.Number, E core.Edge[V, W]](g *core.Graph[V, W, E], start V, algo Algorithm, sel Selection, opts ...Option) (Result[V, W, E], error) {
	if g == nil {
		return Result[V, W, E]{}, ErrNilGraph
	}
	if algo == Automatic {
		algo = sel.Choose(g.VertexCount(), g.EdgeCount())
	}

	var (
		p   core.Path[V, W, E]
		err error
	)
	switch algo {
	case ExactSearch:
		p, err = Exact(g, start, opts...)
	case NearestNeighbour:
		p, err = NearestNeighbor(g, start, opts...)
	default:
		return Result[V, W, E]{}, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, algo)
	}
	if err != nil {
		return Result[V, W, E]{Algorithm: algo}, err
	}

	return Result[V, W, E]{Path: p, Algorithm: algo}, nil
}
