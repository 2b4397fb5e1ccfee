// Package route is the domain model of a tour: waypoints, acquired routes and
// the collaborators that produce them.
//
// A Route is the graph edge type used by the planner. Routes are pointers, so
// two candidates between the same waypoints are distinct edges even when they
// cost the same, and their weight can be switched between distance and travel
// time in place (Reweigh) without re-acquiring anything.
//
// Provider and Geocoder are the external capabilities. GreatCircle and
// CoordinateGeocoder are local implementations that need no network and are
// used by the command line tool and by tests.
package route
