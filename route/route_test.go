package route_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waytour/route"
)

var (
	mannheim = route.Coordinate{Latitude: 49.4875, Longitude: 8.4660}
	berlin   = route.Coordinate{Latitude: 52.5200, Longitude: 13.4050}
)

func TestCoordinate_String(t *testing.T) {
	require.Equal(t, "49.4875°N, 8.4660°E", mannheim.String())
	require.Equal(t, "33.8688°S, 151.2093°E", route.Coordinate{Latitude: -33.8688, Longitude: 151.2093}.String())
	require.Equal(t, "40.7128°N, 74.0060°W", route.Coordinate{Latitude: 40.7128, Longitude: -74.0060}.String())
}

func TestHaversine(t *testing.T) {
	d := route.Haversine(mannheim, berlin)
	require.InDelta(t, 482_600, d, 1_000)
	require.InDelta(t, d, route.Haversine(berlin, mannheim), 1e-6)
	require.Zero(t, route.Haversine(berlin, berlin))
}

func TestWaypoint_Name(t *testing.T) {
	w := route.NewWaypoint(mannheim)
	require.NotEqual(t, uuid.Nil, w.ID)
	require.Equal(t, mannheim.String(), w.Name())
	w.Label = "Mannheim"
	require.Equal(t, "Mannheim", w.Name())
	require.Equal(t, "Waypoint(Mannheim)", w.String())
}

func TestParse(t *testing.T) {
	for _, m := range []route.TransportMode{route.Automobile, route.Walking, route.Transit, route.AnyMode} {
		got, err := route.ParseTransportMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
	_, err := route.ParseTransportMode("boat")
	require.ErrorIs(t, err, route.ErrUnknownValue)

	p, err := route.ParseCostPolicy("TIME")
	require.NoError(t, err)
	require.Equal(t, route.TravelTime, p)
	_, err = route.ParseCostPolicy("money")
	require.ErrorIs(t, err, route.ErrUnknownValue)
}

func TestRoute_Reweigh(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	r := route.New(a, b, route.Walking, route.Candidate{Distance: 1200, TravelTime: 15 * time.Minute}, route.Distance)
	require.Equal(t, a, r.Source())
	require.Equal(t, b, r.Destination())
	require.Equal(t, 1200.0, r.Weight())

	r.Reweigh(route.TravelTime)
	require.Equal(t, 900.0, r.Weight())
	require.Equal(t, route.TravelTime, r.Policy())

	twin := route.New(a, b, route.Walking, route.Candidate{Distance: 1200, TravelTime: 15 * time.Minute}, route.Distance)
	require.NotEqual(t, r.ID(), twin.ID())
}

func TestThrottled(t *testing.T) {
	err := fmt.Errorf("directions: %w", &route.ThrottledError{RetryAfter: 3 * time.Second})
	d, ok := route.Throttled(err)
	require.True(t, ok)
	require.Equal(t, 3*time.Second, d)

	_, ok = route.Throttled(route.ErrNoRoute)
	require.False(t, ok)
}

func TestGreatCircle(t *testing.T) {
	g := route.NewGreatCircle()
	req := route.Request{Source: route.NewWaypoint(mannheim), Destination: route.NewWaypoint(berlin), Mode: route.Walking}

	out, err := g.Directions(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.InDelta(t, route.Haversine(mannheim, berlin)*1.2, out[0].Distance, 1e-6)
	require.InDelta(t, out[0].Distance/(5000.0/3600), out[0].TravelTime.Seconds(), 1e-3)

	req.Alternates = true
	out, err = g.Directions(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Greater(t, out[1].Distance, out[0].Distance)
	require.EqualValues(t, 2, g.Calls())
}

func TestGreatCircle_Throttle(t *testing.T) {
	g := &route.GreatCircle{ThrottleEvery: 2, ThrottleFor: time.Second}
	req := route.Request{Source: route.NewWaypoint(mannheim), Destination: route.NewWaypoint(berlin)}

	_, err := g.Directions(context.Background(), req)
	require.NoError(t, err)
	_, err = g.Directions(context.Background(), req)
	d, ok := route.Throttled(err)
	require.True(t, ok)
	require.Equal(t, time.Second, d)
}

func TestGreatCircle_Cancelled(t *testing.T) {
	g := &route.GreatCircle{Latency: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.Directions(ctx, route.Request{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSummary(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	legs := []*route.Route{
		route.New(a, b, route.Automobile, route.Candidate{Distance: 1000, TravelTime: 10 * time.Minute}, route.Distance),
		route.New(b, c, route.Automobile, route.Candidate{Distance: 2000, TravelTime: 20 * time.Minute}, route.Distance),
		route.New(c, a, route.Automobile, route.Candidate{Distance: 3000, TravelTime: 30 * time.Minute}, route.Distance),
	}
	s := route.NewSummary(legs)
	require.Equal(t, []uuid.UUID{a, b, c, a}, s.Waypoints())
	require.Equal(t, 6000.0, s.Distance())
	require.Equal(t, time.Hour, s.TravelTime())

	dep := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	require.Equal(t, dep.Add(time.Hour), s.Arrival(dep))

	steps := s.Itinerary(dep, 5*time.Minute)
	require.Len(t, steps, 3)
	require.Equal(t, dep, steps[0].Departure)
	require.Equal(t, dep.Add(10*time.Minute), steps[0].Arrival)
	require.Equal(t, dep.Add(15*time.Minute), steps[1].Departure)
	require.Equal(t, dep.Add(35*time.Minute), steps[1].Arrival)
	require.Equal(t, dep.Add(40*time.Minute), steps[2].Departure)
	require.Equal(t, dep.Add(70*time.Minute), steps[2].Arrival)

	require.Nil(t, route.NewSummary(nil).Waypoints())
}
