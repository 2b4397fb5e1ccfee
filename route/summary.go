package route

import (
	"time"

	"github.com/google/uuid"
)

// Summary aggregates an ordered closed tour of routes.
type Summary struct {
	Routes []*Route
}

// NewSummary wraps routes, which must form a chain.
func NewSummary(routes []*Route) Summary {
	return Summary{Routes: append([]*Route(nil), routes...)}
}

// Waypoints lists the visited waypoint IDs, repeating the start at the end.
func (s Summary) Waypoints() []uuid.UUID {
	if len(s.Routes) == 0 {
		return nil
	}
	out := make([]uuid.UUID, 0, len(s.Routes)+1)
	for _, r := range s.Routes {
		out = append(out, r.Source())
	}

	return append(out, s.Routes[0].Source())
}

// Distance is the summed length of all routes in meters.
func (s Summary) Distance() float64 {
	var total float64
	for _, r := range s.Routes {
		total += r.Distance()
	}

	return total
}

// TravelTime is the summed travel time of all routes.
func (s Summary) TravelTime() time.Duration {
	var total time.Duration
	for _, r := range s.Routes {
		total += r.TravelTime()
	}

	return total
}

// Arrival is departure plus TravelTime, ignoring transfers.
func (s Summary) Arrival(departure time.Time) time.Time {
	return departure.Add(s.TravelTime())
}

// Step is one leg of an itinerary.
type Step struct {
	Route     *Route
	Departure time.Time
	Arrival   time.Time
}

// Itinerary schedules every route back to back starting at departure, waiting
// transfer at each intermediate waypoint.
func (s Summary) Itinerary(departure time.Time, transfer time.Duration) []Step {
	steps := make([]Step, 0, len(s.Routes))
	next := departure
	for _, r := range s.Routes {
		st := Step{Route: r, Departure: next, Arrival: next.Add(r.TravelTime())}
		steps = append(steps, st)
		next = st.Arrival.Add(transfer)
	}

	return steps
}
