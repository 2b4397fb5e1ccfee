package route

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Route is one acquired way from a source waypoint to a destination waypoint.
// It implements core.Edge over waypoint IDs with float64 weights.
type Route struct {
	id          uuid.UUID
	source      uuid.UUID
	destination uuid.UUID
	distance    float64
	travelTime  time.Duration
	mode        TransportMode
	geometry    []Coordinate
	policy      CostPolicy
}

// New builds a route from a provider candidate, weighted by policy.
func New(source, destination uuid.UUID, mode TransportMode, c Candidate, policy CostPolicy) *Route {
	return &Route{
		id:          uuid.New(),
		source:      source,
		destination: destination,
		distance:    c.Distance,
		travelTime:  c.TravelTime,
		mode:        mode,
		geometry:    append([]Coordinate(nil), c.Geometry...),
		policy:      policy,
	}
}

// ID is unique per acquired route.
func (r *Route) ID() uuid.UUID { return r.id }
func (r *Route) Source() uuid.UUID { return r.source }
func (r *Route) Destination() uuid.UUID { return r.destination }
func (r *Route) Distance() float64 { return r.distance }
func (r *Route) TravelTime() time.Duration { return r.travelTime }
func (r *Route) Mode() TransportMode { return r.mode }
func (r *Route) Policy() CostPolicy { return r.policy }
func (r *Route) Geometry() []Coordinate { return append([]Coordinate(nil), r.geometry...) }

// Weight is meters under Distance and seconds under TravelTime.
func (r *Route) Weight() float64 {
	if r.policy == TravelTime {
		return r.travelTime.Seconds()
	}

	return r.distance
}

// Reweigh switches the cost policy in place.
func (r *Route) Reweigh(policy CostPolicy) { r.policy = policy }

func (r *Route) String() string {
	return fmt.Sprintf("Route(%s→%s, %.0fm, %s)", r.source, r.destination, r.distance, r.travelTime)
}
