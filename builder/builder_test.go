package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waytour/builder"
)

func TestConnectedStations(t *testing.T) {
	g, err := builder.ConnectedStations()
	require.NoError(t, err)
	require.Equal(t, builder.StationNames, g.Vertices())
	require.Equal(t, 2*len(builder.StationConnections), g.EdgeCount())
	require.True(t, g.IsComplete())
}

func TestComplete_TooSmall(t *testing.T) {
	_, err := builder.BuildGraph(builder.Complete[string, int]([]string{"a"}, func(int, int) int { return 1 }))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestVertices_Duplicate(t *testing.T) {
	_, err := builder.BuildGraph(builder.Vertices[string, int]("a", "a"))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestArcs_DanglingEndpoint(t *testing.T) {
	_, err := builder.BuildGraph(
		builder.Vertices[string, int]("a"),
		builder.Arcs(builder.Arc[string, int]{From: "a", To: "b", Cost: 1}),
	)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph[string, int](nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomComplete_DeterministicAndSymmetric(t *testing.T) {
	a, err := builder.BuildGraph(builder.RandomComplete(6, 1, 50, true, 42))
	require.NoError(t, err)
	b, err := builder.BuildGraph(builder.RandomComplete(6, 1, 50, true, 42))
	require.NoError(t, err)
	require.Equal(t, a.Edges(), b.Edges())
	require.True(t, a.IsComplete())

	for _, e := range a.Edges() {
		back := a.EdgesBetween(e.To, e.From)
		require.Len(t, back, 1)
		require.Equal(t, e.Cost, back[0].Cost)
	}

	_, err = builder.BuildGraph(builder.RandomComplete(4, 5, 1, false, 1))
	require.ErrorIs(t, err, builder.ErrBadRange)
}

func TestRing(t *testing.T) {
	g, err := builder.BuildGraph(builder.Ring([]int{1, 2, 3}, 2.5))
	require.NoError(t, err)
	require.Equal(t, 3, g.EdgeCount())
	require.True(t, g.ContainsEdge(3, 1))
	require.False(t, g.ContainsEdge(1, 3))
}
