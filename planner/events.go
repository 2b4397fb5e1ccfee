package planner

import (
	"github.com/katalvlaran/waytour/route"
	"github.com/katalvlaran/waytour/tsp"
)

// Event is implemented by every notification the planner emits.
type Event interface{ event() }

// WaypointAdded: a waypoint joined the tour.
type WaypointAdded struct{ Waypoint route.Waypoint }

// WaypointUpdated: a label was resolved or the start changed.
type WaypointUpdated struct {
	Waypoint route.Waypoint
	IsStart  bool
}

// WaypointRemoving is emitted before a waypoint and its routes are dropped.
type WaypointRemoving struct{ Waypoint route.Waypoint }

// WaypointRemoved is emitted after the removal took effect.
type WaypointRemoved struct{ Waypoint route.Waypoint }

// RoutesAcquired carries the candidates stored for one ordered pair.
type RoutesAcquired struct {
	Source      route.Waypoint
	Destination route.Waypoint
	Routes      []*route.Route
}

// StateChanged is emitted on every real state transition.
type StateChanged struct{ Old, New State }

// ProgressChanged carries the acquired share of ordered pairs, in [0, 1].
type ProgressChanged struct{ Progress float64 }

// TourReady is emitted each time a tour is solved.
type TourReady struct {
	Summary   route.Summary
	Waypoints []route.Waypoint
	Algorithm tsp.Algorithm
}

func (WaypointAdded) event()    {}
func (WaypointUpdated) event()  {}
func (WaypointRemoving) event() {}
func (WaypointRemoved) event()  {}
func (RoutesAcquired) event()   {}
func (StateChanged) event()     {}
func (ProgressChanged) event()  {}
func (TourReady) event()        {}
