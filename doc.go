// Package waytour plans round trips: given a set of waypoints it collects the
// routes between every ordered pair from a rate-limited directions provider
// and solves the travelling-salesman tour over them.
//
// 🚀 What is inside?
//
//	• Graph primitives: a thread-safe directed multigraph with deterministic order
//	• Traversal: BFS reachability
//	• Shortest paths: Dijkstra between two waypoints
//	• Tours: exact branch-and-bound search and the nearest-neighbour heuristic
//	• Scheduling: a single-in-flight work queue with pauses and rate limits
//	• Orchestration: the planner tying waypoints, routes and solvers together
//
// Packages:
//
//	weight/       numeric weight contract with saturating arithmetic
//	core/         Graph, Edge constraint and Path
//	builder/      deterministic fixtures (complete, ring, random, stations)
//	bfs/          breadth-first traversal and spanning checks
//	dijkstra/     single-pair shortest path
//	tsp/          cycle solvers and algorithm selection
//	workqueue/    throttled scheduler
//	route/        waypoints, routes, providers, summaries
//	planner/      event-loop orchestrator
//	config/       YAML configuration and waypoint file watching
//	server/       HTTP API and /metrics
//	cmd/waytour/  command-line front end (plan, plan --watch, serve)
//
// Quick ASCII example:
//
//	    Mannheim ──60── Frankfurt
//	       │  ╲            │
//	      350  500        400
//	       │      ╲        │
//	    Hamburg ──150── Berlin
//
// is a complete graph of four waypoints; the planner asks the provider for all
// twelve directed routes, then publishes the cheapest closed tour.
//
//	go install github.com/katalvlaran/waytour/cmd/waytour@latest
package waytour
