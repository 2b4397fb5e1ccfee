package route

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNoRoute is returned when a provider answers with no candidates.
var ErrNoRoute = errors.New("route: no route found")

// Request asks for directions from Source to Destination.
type Request struct {
	Source      Waypoint
	Destination Waypoint
	Mode        TransportMode
	// Alternates asks the provider for more than one candidate.
	Alternates bool
}

// Candidate is one way returned by a Provider.
type Candidate struct {
	Distance   float64 // meters
	TravelTime time.Duration
	Geometry   []Coordinate
}

// Provider acquires candidate routes.
//
// A *ThrottledError means the service is temporarily refusing work and the
// request should be retried after RetryAfter. Every other error is permanent.
// Implementations must honor ctx.
type Provider interface {
	Directions(ctx context.Context, req Request) ([]Candidate, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, req Request) ([]Candidate, error)

// Directions calls f.
func (f ProviderFunc) Directions(ctx context.Context, req Request) ([]Candidate, error) {
	return f(ctx, req)
}

// ThrottledError signals a rate-limit refusal.
type ThrottledError struct {
	RetryAfter time.Duration
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("route: throttled, retry after %s", e.RetryAfter)
}

// Throttled reports whether err is (or wraps) a *ThrottledError and returns its
// retry delay.
func Throttled(err error) (time.Duration, bool) {
	var te *ThrottledError
	if errors.As(err, &te) {
		return te.RetryAfter, true
	}

	return 0, false
}

// Geocoder resolves a coordinate to a human readable place label.
type Geocoder interface {
	Label(ctx context.Context, c Coordinate) (string, error)
}

// CoordinateGeocoder labels every coordinate with its formatted position.
type CoordinateGeocoder struct{}

// Label returns c.String().
func (CoordinateGeocoder) Label(_ context.Context, c Coordinate) (string, error) {
	return c.String(), nil
}
