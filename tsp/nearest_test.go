package tsp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waytour/builder"
	"github.com/katalvlaran/waytour/tsp"
)

func TestNearestNeighbor_Stations(t *testing.T) {
	g := stations(t)
	greedy, err := tsp.NearestNeighbor(g, builder.Limburgerhof)
	require.NoError(t, err)
	requireTour(t, greedy.Vertices, builder.StationNames, builder.Limburgerhof)
	require.Equal(t, []string{
		builder.Limburgerhof,
		builder.Ludwigshafen,
		builder.Mannheim,
		builder.Frankfurt,
		builder.Hamburg,
		builder.Berlin,
		builder.Muenchen,
		builder.Limburgerhof,
	}, greedy.Vertices)
	require.Equal(t, 1697.0, greedy.Weight)

	exact, err := tsp.Exact(g, builder.Limburgerhof)
	require.NoError(t, err)
	require.GreaterOrEqual(t, greedy.Weight, exact.Weight)
}

func TestNearestNeighbor_TieBreakByInsertionOrder(t *testing.T) {
	type arc = builder.Arc[string, int]
	g, err := builder.BuildGraph(
		builder.Vertices[string, int]("s", "late", "early"),
		builder.Symmetric(
			arc{From: "s", To: "early", Cost: 1},
			arc{From: "s", To: "late", Cost: 1},
			arc{From: "late", To: "early", Cost: 1},
		),
	)
	require.NoError(t, err)

	// "late" was inserted before "early" as a vertex, so it wins the tie.
	p, err := tsp.NearestNeighbor(g, "s")
	require.NoError(t, err)
	require.Equal(t, []string{"s", "late", "early", "s"}, p.Vertices)
}

func TestNearestNeighbor_DeadEnd(t *testing.T) {
	type arc = builder.Arc[string, int]
	// Greedy goes a→b (cheap) and then has nowhere to go; a→c→b→a exists.
	g, err := builder.BuildGraph(
		builder.Vertices[string, int]("a", "b", "c"),
		builder.Arcs(
			arc{From: "a", To: "b", Cost: 1},
			arc{From: "a", To: "c", Cost: 5},
			arc{From: "c", To: "b", Cost: 1},
			arc{From: "b", To: "a", Cost: 1},
		),
	)
	require.NoError(t, err)

	_, err = tsp.NearestNeighbor(g, "a")
	require.ErrorIs(t, err, tsp.ErrNoCycle)

	p, err := tsp.Exact(g, "a")
	require.NoError(t, err)
	require.Equal(t, 7, p.Weight)
}

func TestNearestNeighbor_NoClosingEdge(t *testing.T) {
	type arc = builder.Arc[string, int]
	g, err := builder.BuildGraph(
		builder.Vertices[string, int]("a", "b"),
		builder.Arcs(arc{From: "a", To: "b", Cost: 1}, arc{From: "b", To: "a", Cost: 1}),
	)
	require.NoError(t, err)
	require.True(t, g.RemoveEdge(arc{From: "b", To: "a", Cost: 1}))

	_, err = tsp.NearestNeighbor(g, "a")
	require.ErrorIs(t, err, tsp.ErrNoCycle)
}

func TestNearestNeighbor_RandomNeverBeatsExact(t *testing.T) {
	for seed := int64(10); seed < 16; seed++ {
		g, err := builder.BuildGraph(builder.RandomComplete(7, 1, 40, true, seed))
		require.NoError(t, err)
		start := builder.VertexID(0)

		greedy, err := tsp.NearestNeighbor(g, start)
		require.NoError(t, err)
		exact, err := tsp.Exact(g, start)
		require.NoError(t, err)
		requireTour(t, greedy.Vertices, g.Vertices(), start)
		require.GreaterOrEqual(t, greedy.Weight, exact.Weight)
	}
}

func TestNearestNeighbor_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tsp.NearestNeighbor(stations(t), builder.Limburgerhof, tsp.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	// Solve forwards its options to the heuristic as well.
	res, err := tsp.Solve(stations(t), builder.Limburgerhof, tsp.NearestNeighbour, tsp.DefaultSelection(), tsp.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, tsp.ErrNoCycle)
	require.Equal(t, tsp.NearestNeighbour, res.Algorithm)
}
