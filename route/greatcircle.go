package route

import (
	"context"
	"sync/atomic"
	"time"
)

// Profile describes how a transport mode moves across the great circle.
type Profile struct {
	// SpeedKMH is the average travel speed.
	SpeedKMH float64 `yaml:"speed_kmh" json:"speed_kmh" validate:"gt=0"`
	// Detour scales the straight-line distance to approximate real roads.
	Detour float64 `yaml:"detour" json:"detour" validate:"gte=1"`
}

// DefaultProfiles are the stock per-mode profiles. AnyMode uses Automobile.
func DefaultProfiles() map[TransportMode]Profile {
	return map[TransportMode]Profile{
		Automobile: {SpeedKMH: 80, Detour: 1.3},
		Walking:    {SpeedKMH: 5, Detour: 1.2},
		Transit:    {SpeedKMH: 60, Detour: 1.4},
	}
}

// Alternate candidates are this much longer and slower than the primary one.
const (
	alternateDistanceFactor = 1.15
	alternateTimeFactor     = 1.10
)

// GreatCircle is a Provider that derives routes from haversine distances.
// It can simulate service throttling: every ThrottleEvery-th call fails with a
// *ThrottledError carrying ThrottleFor.
type GreatCircle struct {
	Profiles      map[TransportMode]Profile
	ThrottleEvery int
	ThrottleFor   time.Duration
	// Latency delays every answer; the wait is cut short by ctx.
	Latency time.Duration

	calls atomic.Int64
}

// NewGreatCircle returns a provider with DefaultProfiles and no throttling.
func NewGreatCircle() *GreatCircle {
	return &GreatCircle{Profiles: DefaultProfiles()}
}

// Calls returns how many requests were received.
func (g *GreatCircle) Calls() int64 { return g.calls.Load() }

// Directions implements Provider.
func (g *GreatCircle) Directions(ctx context.Context, req Request) ([]Candidate, error) {
	n := g.calls.Add(1)
	if g.Latency > 0 {
		t := time.NewTimer(g.Latency)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g.ThrottleEvery > 0 && n%int64(g.ThrottleEvery) == 0 {
		return nil, &ThrottledError{RetryAfter: g.ThrottleFor}
	}

	p := g.profile(req.Mode)
	meters := Haversine(req.Source.Coordinate, req.Destination.Coordinate) * p.Detour
	secs := meters / (p.SpeedKMH * 1000 / 3600)
	primary := Candidate{
		Distance:   meters,
		TravelTime: time.Duration(secs * float64(time.Second)),
		Geometry:   []Coordinate{req.Source.Coordinate, req.Destination.Coordinate},
	}
	out := []Candidate{primary}
	if req.Alternates {
		out = append(out, Candidate{
			Distance:   primary.Distance * alternateDistanceFactor,
			TravelTime: time.Duration(float64(primary.TravelTime) * alternateTimeFactor),
			Geometry:   primary.Geometry,
		})
	}

	return out, nil
}

func (g *GreatCircle) profile(m TransportMode) Profile {
	profiles := g.Profiles
	if profiles == nil {
		profiles = DefaultProfiles()
	}
	if p, ok := profiles[m]; ok {
		return p
	}

	return profiles[Automobile]
}
