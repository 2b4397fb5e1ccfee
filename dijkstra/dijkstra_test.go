package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waytour/builder"
	"github.com/katalvlaran/waytour/dijkstra"
	"github.com/katalvlaran/waytour/weight"
)

type arc = builder.Arc[string, int64]

func TestShortestPath_Validation(t *testing.T) {
	g, err := builder.BuildGraph(builder.Vertices[string, int64]("A", "B"))
	require.NoError(t, err)

	_, err = dijkstra.ShortestPath[string, int64, arc](nil, "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.ShortestPath(g, "A", "Z")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.ShortestPath(g, "Z", "A")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.ShortestPath(g, "A", "A")
	require.ErrorIs(t, err, dijkstra.ErrSameVertex)

	_, err = dijkstra.ShortestPath(g, "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestShortestPath_NegativeWeight(t *testing.T) {
	g, err := builder.BuildGraph(
		builder.Vertices[string, int64]("A", "B"),
		builder.Arcs(arc{From: "A", To: "B", Cost: -1}),
	)
	require.NoError(t, err)

	_, err = dijkstra.ShortestPath(g, "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestShortestPath_Stations(t *testing.T) {
	g, err := builder.ConnectedStations()
	require.NoError(t, err)

	p, err := dijkstra.ShortestPath(g, builder.Limburgerhof, builder.Berlin)
	require.NoError(t, err)
	require.False(t, weight.IsInf(p.Weight))
	require.Equal(t, 467.0, p.Weight)
	require.Equal(t, []string{builder.Limburgerhof, builder.Mannheim, builder.Frankfurt, builder.Berlin}, p.Vertices)

	var sum float64
	for i, e := range p.Edges {
		require.Equal(t, p.Vertices[i], e.From)
		require.Equal(t, p.Vertices[i+1], e.To)
		sum += e.Cost
	}
	require.Equal(t, p.Weight, sum)
	require.Equal(t, builder.Limburgerhof, p.Vertices[0])
	require.Equal(t, builder.Berlin, p.Vertices[len(p.Vertices)-1])
}

func TestShortestPath_ParallelEdgesUseMinimum(t *testing.T) {
	g, err := builder.BuildGraph(
		builder.Vertices[string, int64]("A", "B", "C"),
		builder.Arcs(
			arc{From: "A", To: "B", Cost: 10},
			arc{From: "A", To: "B", Cost: 2},
			arc{From: "A", To: "B", Cost: 7},
			arc{From: "B", To: "C", Cost: 1},
			arc{From: "A", To: "C", Cost: 4},
		),
	)
	require.NoError(t, err)

	p, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	require.Equal(t, int64(3), p.Weight)
	require.Equal(t, []string{"A", "B", "C"}, p.Vertices)
	require.Equal(t, arc{From: "A", To: "B", Cost: 2}, p.Edges[0])
}

func TestShortestPath_Directed(t *testing.T) {
	g, err := builder.BuildGraph(builder.Ring([]string{"A", "B", "C"}, int64(5)))
	require.NoError(t, err)

	p, err := dijkstra.ShortestPath(g, "B", "A")
	require.NoError(t, err)
	require.Equal(t, int64(10), p.Weight)
	require.Equal(t, []string{"B", "C", "A"}, p.Vertices)
}

func TestDistances(t *testing.T) {
	g, err := builder.BuildGraph(
		builder.Vertices[string, int64]("A", "B", "C", "D"),
		builder.Arcs(
			arc{From: "A", To: "B", Cost: 1},
			arc{From: "B", To: "C", Cost: 2},
		),
	)
	require.NoError(t, err)

	d, err := dijkstra.Distances(g, "A")
	require.NoError(t, err)
	require.Equal(t, int64(0), d["A"])
	require.Equal(t, int64(3), d["C"])
	require.True(t, weight.IsInf(d["D"]))
}
