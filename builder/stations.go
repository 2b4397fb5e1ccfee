package builder

// Station names of the reference fixture, in insertion order.
const (
	Limburgerhof = "Limburgerhof"
	Ludwigshafen = "Ludwigshafen"
	Mannheim     = "Mannheim"
	Berlin       = "Berlin"
	Frankfurt    = "Frankfurt"
	Hamburg      = "Hamburg"
	Muenchen     = "München"
)

// StationNames lists the fixture stations in insertion order.
var StationNames = []string{
	Limburgerhof,
	Ludwigshafen,
	Mannheim,
	Berlin,
	Frankfurt,
	Hamburg,
	Muenchen,
}

// StationConnections are the one-way road distances (km) of the fixture.
// The reverse direction carries the same distance.
var StationConnections = []Arc[string, float64]{
	{From: Limburgerhof, To: Ludwigshafen, Cost: 5},
	{From: Limburgerhof, To: Mannheim, Cost: 7},
	{From: Limburgerhof, To: Berlin, Cost: 600},
	{From: Limburgerhof, To: Frankfurt, Cost: 80},
	{From: Limburgerhof, To: Hamburg, Cost: 400},
	{From: Limburgerhof, To: Muenchen, Cost: 300},
	{From: Ludwigshafen, To: Mannheim, Cost: 2},
	{From: Ludwigshafen, To: Berlin, Cost: 550},
	{From: Ludwigshafen, To: Frankfurt, Cost: 70},
	{From: Ludwigshafen, To: Hamburg, Cost: 380},
	{From: Ludwigshafen, To: Muenchen, Cost: 280},
	{From: Mannheim, To: Berlin, Cost: 500},
	{From: Mannheim, To: Frankfurt, Cost: 60},
	{From: Mannheim, To: Hamburg, Cost: 350},
	{From: Mannheim, To: Muenchen, Cost: 250},
	{From: Berlin, To: Frankfurt, Cost: 400},
	{From: Berlin, To: Hamburg, Cost: 150},
	{From: Berlin, To: Muenchen, Cost: 900},
	{From: Frankfurt, To: Hamburg, Cost: 280},
	{From: Frankfurt, To: Muenchen, Cost: 320},
	{From: Hamburg, To: Muenchen, Cost: 700},
}

// Stations returns the seven-station fixture without edges.
func Stations() (*ArcGraph[string, float64], error) {
	return BuildGraph(Vertices[string, float64](StationNames...))
}

// ConnectedStations returns the fully connected seven-station fixture: every
// connection in both directions, forward arcs first.
func ConnectedStations() (*ArcGraph[string, float64], error) {
	return BuildGraph(
		Vertices[string, float64](StationNames...),
		Symmetric(StationConnections...),
	)
}
