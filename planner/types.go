package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/waytour/route"
	"github.com/katalvlaran/waytour/tsp"
)

var (
	// ErrStopped is returned by commands posted after Run has returned.
	ErrStopped = errors.New("planner: stopped")

	// ErrAlreadyRunning is returned by every Run after the first.
	ErrAlreadyRunning = errors.New("planner: Run already called")

	// ErrNilProvider is returned by New without a provider.
	ErrNilProvider = errors.New("planner: provider is nil")
)

// WorkItem is one ordered waypoint pair whose routes are still to be acquired.
type WorkItem struct {
	Source      uuid.UUID
	Destination uuid.UUID
	// Generation ties the item to the acquisition parameters it was issued under.
	Generation uint64
}

func (w WorkItem) touches(id uuid.UUID) bool {
	return w.Source == id || w.Destination == id
}

func (w WorkItem) String() string {
	return fmt.Sprintf("%s→%s#%d", w.Source, w.Destination, w.Generation)
}

// Kind enumerates planner states.
type Kind int

const (
	// Configuring: fewer than two waypoints, or routes missing with nothing queued.
	Configuring Kind = iota
	// CollectingRoutes: the queue is working or paused.
	CollectingRoutes
	// ComputingBestPath: a solver is running.
	ComputingBestPath
	// BestPathReady: Tour holds the published tour.
	BestPathReady
)

func (k Kind) String() string {
	switch k {
	case Configuring:
		return "configuring"
	case CollectingRoutes:
		return "collecting_routes"
	case ComputingBestPath:
		return "computing_best_path"
	case BestPathReady:
		return "best_path_ready"
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// State is the observable planner state.
type State struct {
	Kind Kind

	// Queued counts pending pairs, the in-flight one excluded (CollectingRoutes).
	Queued int
	// InFlight is set while a provider request is outstanding (CollectingRoutes).
	// A throttled pair is requeued, so a paused queue usually has none.
	InFlight bool
	// ThrottledUntil is set while the queue is paused (CollectingRoutes).
	ThrottledUntil time.Time

	// Tour is the ordered closed tour (BestPathReady).
	Tour []*route.Route
	// Algorithm is the solver that produced Tour (BestPathReady).
	Algorithm tsp.Algorithm
}

// Equal reports whether two states describe the same situation. Tours compare
// by route identity.
func (s State) Equal(o State) bool {
	if s.Kind != o.Kind || s.Queued != o.Queued || s.InFlight != o.InFlight || !s.ThrottledUntil.Equal(o.ThrottledUntil) || s.Algorithm != o.Algorithm {
		return false
	}
	if len(s.Tour) != len(o.Tour) {
		return false
	}
	for i := range s.Tour {
		if s.Tour[i] != o.Tour[i] {
			return false
		}
	}

	return true
}

// Throttled reports whether the state carries an active throttle.
func (s State) Throttled() bool { return !s.ThrottledUntil.IsZero() }

func (s State) String() string {
	switch s.Kind {
	case CollectingRoutes:
		remaining := s.Queued
		if s.InFlight {
			remaining++
		}
		if s.Throttled() {
			return fmt.Sprintf("collecting %d routes, throttled until %s", remaining, s.ThrottledUntil.Format(time.TimeOnly))
		}
		return fmt.Sprintf("collecting %d routes", remaining)
	case BestPathReady:
		return fmt.Sprintf("best path ready (%d legs, %s)", len(s.Tour), s.Algorithm)
	}

	return s.Kind.String()
}

// Action is a Resolver's decision for a failed pair.
type Action int

const (
	// Retry puts the pair back at the head of the queue.
	Retry Action = iota
	// DropSource removes the pair's source waypoint.
	DropSource
	// DropDestination removes the pair's destination waypoint.
	DropDestination
	// Skip gives up on the pair; the tour stays incomplete until the
	// acquisition parameters change.
	Skip
)

func (a Action) String() string {
	switch a {
	case Retry:
		return "retry"
	case DropSource:
		return "drop_source"
	case DropDestination:
		return "drop_destination"
	case Skip:
		return "skip"
	}

	return fmt.Sprintf("action(%d)", int(a))
}

// Failure describes a permanent acquisition error.
type Failure struct {
	Source      route.Waypoint
	Destination route.Waypoint
	Err         error
}

// Resolver decides what to do about a permanent acquisition error. It is asked
// once per failure and may take as long as it needs; the pair stays in flight
// meanwhile. An error return is treated as Skip.
type Resolver interface {
	Resolve(ctx context.Context, f Failure) (Action, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ctx context.Context, f Failure) (Action, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(ctx context.Context, fl Failure) (Action, error) { return f(ctx, fl) }
