package planner

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/waytour/core"
	"github.com/katalvlaran/waytour/dijkstra"
	"github.com/katalvlaran/waytour/route"
	"github.com/katalvlaran/waytour/tsp"
	"github.com/katalvlaran/waytour/workqueue"
)

// Graph is the waypoint graph: vertices are waypoint IDs, edges acquired routes.
type Graph = core.Graph[uuid.UUID, float64, *route.Route]

// Planner collects routes between waypoints and solves the tour over them.
// Create it with New and drive it with Run.
type Planner struct {
	cfg      config
	provider route.Provider
	logger   *slog.Logger
	metrics  *metrics
	inbox    *mailbox
	running  atomic.Bool
	done     chan struct{}
	labels   singleflight.Group

	// Everything below is owned by the event loop.
	ctx        context.Context
	graph      *Graph
	queue      *workqueue.Queue[WorkItem]
	order      []uuid.UUID
	byID       map[uuid.UUID]route.Waypoint
	start      uuid.UUID
	policy     route.CostPolicy
	mode       route.TransportMode
	alternates bool
	algorithm  tsp.Algorithm
	generation uint64
	state      State
	progress   float64

	inflightCancel context.CancelFunc
	solveSeq       uint64
	solveCancel    context.CancelFunc
	revision       uint64
	solvedRev      uint64
}

// New returns a stopped planner acquiring routes from provider.
//
// Implementation:
//   - Stage 1: Apply options over the defaults: distance cost policy,
//     automobile mode, alternates on, automatic solver selection.
//   - Stage 2: Create metrics through promauto. They are registered only when
//     WithRegisterer is given, and registering two planners on one registerer
//     panics.
//   - Stage 3: Build the route work queue. Its timer callbacks are posted to
//     the planner's mailbox, so every queue transition is handled on the loop
//     goroutine started by Run.
//
// Nothing runs until Run is called; commands issued earlier are buffered.
//
// Errors: ErrNilProvider.
func New(provider route.Provider, opts ...Option) (*Planner, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Planner{
		cfg:        cfg,
		provider:   provider,
		logger:     cfg.logger.With("component", "planner"),
		metrics:    newMetrics(cfg.registerer),
		inbox:      newMailbox(),
		done:       make(chan struct{}),
		graph:      core.NewGraph[uuid.UUID, float64, *route.Route](),
		byID:       make(map[uuid.UUID]route.Waypoint),
		policy:     cfg.policy,
		mode:       cfg.mode,
		alternates: cfg.alternates,
		algorithm:  cfg.algorithm,
		state:      State{Kind: Configuring},
		progress:   1,
	}

	qopts := []workqueue.Option{
		workqueue.WithClock(cfg.clock),
		workqueue.WithExecutor(func(fn func()) { _ = p.inbox.post(fn) }),
		workqueue.WithStateChange(p.queueChanged),
		workqueue.WithLogger(cfg.logger),
	}
	if cfg.limiter != nil {
		qopts = append(qopts, workqueue.WithRateLimit(cfg.limiter))
	}
	p.queue = workqueue.New(p.dispatch, qopts...)

	return p, nil
}

// Run processes commands until ctx is cancelled. It may be called once.
// Commands posted before Run are processed once it starts.
//
// Run owns every piece of planner state: commands, provider results, queue
// timers and solver results are all funnelled through the mailbox and applied
// here, one at a time. On return the in-flight solve is cancelled, the queue is
// stopped, later commands fail with ErrStopped and Done is closed.
//
// Errors: ErrAlreadyRunning on a second call, otherwise ctx.Err().
func (p *Planner) Run(ctx context.Context) error {
	if !p.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer close(p.done)

	var cancel context.CancelFunc
	p.ctx, cancel = context.WithCancel(ctx)
	defer func() {
		p.inbox.close()
		p.cancelSolve()
		p.queue.Stop()
		cancel()
		p.logger.Info("planner stopped")
	}()

	p.logger.Info("planner started", "algorithm", p.algorithm, "policy", p.policy, "mode", p.mode)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.inbox.notify:
			for _, fn := range p.inbox.take() {
				fn()
			}
		}
	}
}

// Done is closed once Run has returned.
func (p *Planner) Done() <-chan struct{} { return p.done }

// AddWaypoint schedules w for insertion and returns it with an ID assigned
// when w had none. A waypoint without a label gets one from the geocoder.
func (p *Planner) AddWaypoint(w route.Waypoint) (route.Waypoint, error) {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}

	return w, p.inbox.post(func() { p.addWaypoint(w) })
}

// Add is AddWaypoint for a bare coordinate.
func (p *Planner) Add(c route.Coordinate) (route.Waypoint, error) {
	return p.AddWaypoint(route.NewWaypoint(c))
}

// RemoveWaypoint schedules the removal of id. Unknown IDs are ignored.
func (p *Planner) RemoveWaypoint(id uuid.UUID) error {
	return p.inbox.post(func() { p.removeWaypoint(id) })
}

// SetStart makes id the tour's start. Unknown IDs are ignored.
func (p *Planner) SetStart(id uuid.UUID) error {
	return p.inbox.post(func() { p.setStart(id) })
}

// SetCostPolicy reweighs every acquired route without fetching again.
func (p *Planner) SetCostPolicy(policy route.CostPolicy) error {
	return p.inbox.post(func() { p.setCostPolicy(policy) })
}

// SetTransportMode discards every route and fetches them again for mode.
func (p *Planner) SetTransportMode(mode route.TransportMode) error {
	return p.inbox.post(func() {
		if mode == p.mode {
			return
		}
		p.mode = mode
		p.recalculateAll("transport mode changed")
	})
}

// SetAlternates toggles alternative routes and fetches every route again.
func (p *Planner) SetAlternates(on bool) error {
	return p.inbox.post(func() {
		if on == p.alternates {
			return
		}
		p.alternates = on
		p.recalculateAll("alternates changed")
	})
}

// SetAlgorithm switches the solver and recomputes the tour if possible.
func (p *Planner) SetAlgorithm(a tsp.Algorithm) error {
	return p.inbox.post(func() {
		if a == p.algorithm {
			return
		}
		p.algorithm = a
		p.touch()
		p.update()
	})
}

// Snapshot is a consistent copy of the planner's observable state.
type Snapshot struct {
	Waypoints  []route.Waypoint
	Start      uuid.UUID
	State      State
	Progress   float64
	Routes     int
	Queued     int
	Policy     route.CostPolicy
	Mode       route.TransportMode
	Alternates bool
	Algorithm  tsp.Algorithm
}

// Snapshot waits for the loop to copy out its state.
func (p *Planner) Snapshot(ctx context.Context) (Snapshot, error) {
	return query(ctx, p, p.snapshot)
}

// RoutesFrom returns the acquired routes leaving id, oldest first.
func (p *Planner) RoutesFrom(ctx context.Context, id uuid.UUID) ([]*route.Route, error) {
	return query(ctx, p, func() []*route.Route { return p.graph.EdgesFrom(id) })
}

// ShortestPath returns the cheapest chain of acquired routes from one waypoint
// to another under the current cost policy.
func (p *Planner) ShortestPath(ctx context.Context, from, to uuid.UUID) ([]*route.Route, error) {
	type answer struct {
		routes []*route.Route
		err    error
	}
	a, err := query(ctx, p, func() answer {
		path, err := dijkstra.ShortestPath(p.graph, from, to)
		return answer{routes: path.Edges, err: err}
	})
	if err != nil {
		return nil, err
	}

	return a.routes, a.err
}

func query[T any](ctx context.Context, p *Planner, fn func() T) (T, error) {
	var zero T
	reply := make(chan T, 1)
	if err := p.inbox.post(func() { reply <- fn() }); err != nil {
		return zero, err
	}
	select {
	case v := <-reply:
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-p.done:
		return zero, ErrStopped
	}
}

func (p *Planner) snapshot() Snapshot {
	wps := make([]route.Waypoint, 0, len(p.order))
	for _, id := range p.order {
		wps = append(wps, p.byID[id])
	}

	return Snapshot{
		Waypoints:  wps,
		Start:      p.start,
		State:      p.state,
		Progress:   p.progress,
		Routes:     p.graph.EdgeCount(),
		Queued:     p.queue.Len(),
		Policy:     p.policy,
		Mode:       p.mode,
		Alternates: p.alternates,
		Algorithm:  p.algorithm,
	}
}

func (p *Planner) post(fn func()) {
	if err := p.inbox.post(fn); err != nil {
		p.logger.Debug("dropping result after shutdown")
	}
}

func (p *Planner) emit(e Event) {
	for _, fn := range p.cfg.observers {
		fn(e)
	}
}
