package planner_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waytour/builder"
	"github.com/katalvlaran/waytour/planner"
	"github.com/katalvlaran/waytour/route"
)

const (
	waitFor = 3 * time.Second
	tick    = 5 * time.Millisecond
)

var (
	errUnreachable = errors.New("unreachable")
	// errPass makes a hook fall through to the fixture answer.
	errPass = errors.New("pass")
)

// stationProvider answers with the fixture distances, looked up by label.
// Travel time is 45s per km.
type hookFunc func(ctx context.Context, req route.Request, n int64) ([]route.Candidate, error)

type stationProvider struct {
	km    map[[2]string]float64
	calls atomic.Int64

	mu sync.Mutex
	// hook, when set, may replace the answer.
	hook hookFunc
}

func newStationProvider() *stationProvider {
	km := make(map[[2]string]float64, 2*len(builder.StationConnections))
	for _, a := range builder.StationConnections {
		km[[2]string{a.From, a.To}] = a.Cost
		km[[2]string{a.To, a.From}] = a.Cost
	}

	return &stationProvider{km: km}
}

func (s *stationProvider) setHook(h hookFunc) {
	s.mu.Lock()
	s.hook = h
	s.mu.Unlock()
}

func (s *stationProvider) Directions(ctx context.Context, req route.Request) ([]route.Candidate, error) {
	n := s.calls.Add(1)
	s.mu.Lock()
	h := s.hook
	s.mu.Unlock()
	if h != nil {
		if c, err := h(ctx, req, n); !errors.Is(err, errPass) {
			return c, err
		}
	}
	d, ok := s.km[[2]string{req.Source.Label, req.Destination.Label}]
	if !ok {
		return nil, errUnreachable
	}
	out := []route.Candidate{{Distance: d * 1000, TravelTime: time.Duration(d) * 45 * time.Second}}
	if req.Alternates {
		out = append(out, route.Candidate{Distance: d * 1100, TravelTime: time.Duration(d) * 40 * time.Second})
	}

	return out, nil
}

// recorder collects events; it is written from the loop and read from tests.
type recorder struct {
	mu     sync.Mutex
	events []planner.Event
}

func (r *recorder) observe(e planner.Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *recorder) all() []planner.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]planner.Event(nil), r.events...)
}

func eventsOf[T planner.Event](r *recorder) []T {
	var out []T
	for _, e := range r.all() {
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}

	return out
}

func start(t *testing.T, provider route.Provider, opts ...planner.Option) (*planner.Planner, *recorder) {
	t.Helper()
	rec := &recorder{}
	p, err := planner.New(provider, append([]planner.Option{planner.WithObserver(rec.observe)}, opts...)...)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = p.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-p.Done()
	})

	return p, rec
}

func snapshot(t *testing.T, p *planner.Planner) planner.Snapshot {
	t.Helper()
	s, err := p.Snapshot(context.Background())
	require.NoError(t, err)

	return s
}

// waitUntil polls snapshots until cond holds and returns the matching one.
func waitUntil(t *testing.T, p *planner.Planner, cond func(planner.Snapshot) bool) planner.Snapshot {
	t.Helper()
	var last planner.Snapshot
	require.Eventually(t, func() bool {
		s, err := p.Snapshot(context.Background())
		if err != nil {
			return false
		}
		last = s

		return cond(s)
	}, waitFor, tick)

	return last
}

func ready(s planner.Snapshot) bool { return s.State.Kind == planner.BestPathReady }

func addStations(t *testing.T, p *planner.Planner, names ...string) map[string]route.Waypoint {
	t.Helper()
	out := make(map[string]route.Waypoint, len(names))
	for i, name := range names {
		w, err := p.AddWaypoint(route.Waypoint{
			Coordinate: route.Coordinate{Latitude: 48 + float64(i)*0.5, Longitude: 8 + float64(i)*0.5},
			Label:      name,
		})
		require.NoError(t, err)
		out[name] = w
	}

	return out
}

// tourNames lists the source labels of a tour, start first.
func tourNames(s planner.Snapshot) []string {
	names := make(map[uuid.UUID]string, len(s.Waypoints))
	for _, w := range s.Waypoints {
		names[w.ID] = w.Label
	}
	out := make([]string, 0, len(s.State.Tour))
	for _, r := range s.State.Tour {
		out = append(out, names[r.Source()])
	}

	return out
}
