// Package planner drives tour planning over waypoints whose pairwise routes
// must be fetched one at a time from a rate-limited Provider.
//
// A Planner owns the waypoint graph and a workqueue.Queue of ordered waypoint
// pairs. Every mutation runs on a single event loop (Run); the public methods
// only post commands to it and never block on provider traffic. Provider,
// geocoder and resolver calls run on their own goroutines and post their
// results back to the loop.
//
// Life of a pair:
//
//	submit ─► dispatch ─► Provider.Directions
//	                          │
//	       ┌──────────────────┼─────────────────────┐
//	   success            throttled            permanent error
//	insert routes     requeue at head,       Resolver decides:
//	  finish          pause until retry      retry │ drop source │ drop destination
//	                                               finish
//
// Once the queue is idle and every ordered pair has at least one route, the
// tour is solved on a snapshot of the graph (tsp.Solve) and published as a
// BestPathReady state plus a TourReady event.
//
// Events are a closed set delivered synchronously on the loop goroutine;
// observers must return quickly.
package planner
