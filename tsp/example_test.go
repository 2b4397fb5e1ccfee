package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/waytour/builder"
	"github.com/katalvlaran/waytour/tsp"
)

// ExampleExact solves the seven-station fixture exactly.
func ExampleExact() {
	g, _ := builder.ConnectedStations()
	p, err := tsp.Exact(g, builder.Limburgerhof)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Weight)
	fmt.Println(p.Vertices)
	// Output:
	// 1512
	// [Limburgerhof Mannheim Hamburg Berlin Frankfurt München Ludwigshafen Limburgerhof]
}

// ExampleSolve lets the size policy pick the greedy solver.
func ExampleSolve() {
	g, _ := builder.ConnectedStations()
	res, _ := tsp.Solve(g, builder.Limburgerhof, tsp.Automatic, tsp.Selection{MaxExactVertices: 3})
	fmt.Println(res.Algorithm, res.Path.Weight)
	// Output: nearest_neighbour 1697
}
