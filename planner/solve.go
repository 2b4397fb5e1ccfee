package planner

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/waytour/core"
	"github.com/katalvlaran/waytour/route"
	"github.com/katalvlaran/waytour/tsp"
	"github.com/katalvlaran/waytour/workqueue"
)

// frozen is a route with its weight fixed at snapshot time, so a solver can
// run off the loop while policies change underneath.
type frozen struct {
	r        *route.Route
	from, to uuid.UUID
	w        float64
}

func (f frozen) Source() uuid.UUID      { return f.from }
func (f frozen) Destination() uuid.UUID { return f.to }
func (f frozen) Weight() float64        { return f.w }

// freeze copies the graph keeping vertex and edge insertion order.
func (p *Planner) freeze() *core.Graph[uuid.UUID, float64, frozen] {
	g := core.NewGraph[uuid.UUID, float64, frozen]()
	for _, v := range p.graph.Vertices() {
		g.InsertVertex(v)
	}
	for _, r := range p.graph.Edges() {
		g.InsertEdge(frozen{r: r, from: r.Source(), to: r.Destination(), w: r.Weight()})
	}

	return g
}

// update derives the planner state from the queue and the graph.
func (p *Planner) update() {
	p.metrics.queueDepth.Set(float64(p.queue.Len()))
	p.refreshProgress()

	qs := p.queue.State()
	switch qs.Kind {
	case workqueue.Pausing:
		p.cancelSolve()
		_, busy := p.queue.InFlight()
		p.setState(State{Kind: CollectingRoutes, Queued: p.queue.Len(), InFlight: busy, ThrottledUntil: qs.Until})
	case workqueue.Working:
		p.cancelSolve()
		p.setState(State{Kind: CollectingRoutes, Queued: p.queue.Len(), InFlight: true})
	default:
		if len(p.order) >= 2 && p.start != uuid.Nil && p.graph.IsComplete() {
			if p.solvedRev == p.revision && (p.state.Kind == ComputingBestPath || p.state.Kind == BestPathReady) {
				return
			}
			p.computeBestPath()
			return
		}
		p.cancelSolve()
		p.setState(State{Kind: Configuring})
	}
}

// touch records that the tour inputs changed.
func (p *Planner) touch() { p.revision++ }

func (p *Planner) refreshProgress() {
	n := len(p.order)
	progress := 1.0
	if n >= 2 {
		required := n * (n - 1)
		progress = float64(required-p.graph.MissingPairs()) / float64(required)
	}
	if progress == p.progress {
		return
	}
	p.progress = progress
	p.emit(ProgressChanged{Progress: progress})
}

func (p *Planner) setState(s State) {
	if s.Equal(p.state) {
		return
	}
	old := p.state
	p.state = s
	p.logger.Info("state changed", "from", old.String(), "to", s.String())
	p.emit(StateChanged{Old: old, New: s})
}

// cancelSolve abandons the running solver, if any. Its result is ignored even
// when already posted.
func (p *Planner) cancelSolve() {
	p.solveSeq++
	if p.solveCancel != nil {
		p.solveCancel()
		p.solveCancel = nil
	}
}

// computeBestPath starts a solver on a frozen copy of the graph. Any running
// solver is abandoned; only the latest one may publish.
func (p *Planner) computeBestPath() {
	p.cancelSolve()
	seq := p.solveSeq
	p.solvedRev = p.revision

	ctx, cancel := context.WithCancel(p.ctx)
	p.solveCancel = cancel
	g := p.freeze()
	start, algo, sel := p.start, p.algorithm, p.cfg.selection
	p.setState(State{Kind: ComputingBestPath})

	go func() {
		defer cancel()
		began := time.Now()
		res, err := tsp.Solve(g, start, algo, sel, tsp.WithContext(ctx))
		elapsed := time.Since(began)
		p.post(func() { p.published(seq, res, err, elapsed) })
	}()
}

func (p *Planner) published(seq uint64, res tsp.Result[uuid.UUID, float64, frozen], err error, elapsed time.Duration) {
	if seq != p.solveSeq {
		return
	}
	p.solveCancel = nil
	label := res.Algorithm.String()
	p.metrics.solveDuration.WithLabelValues(label).Observe(elapsed.Seconds())
	if err != nil {
		p.metrics.solves.WithLabelValues(label, resultError).Inc()
		p.logger.Warn("tour computation failed", "algorithm", label, "err", err)
		p.setState(State{Kind: Configuring})
		return
	}
	p.metrics.solves.WithLabelValues(label, resultOK).Inc()

	tour := make([]*route.Route, len(res.Path.Edges))
	for i, e := range res.Path.Edges {
		tour[i] = e.r
	}
	wps := make([]route.Waypoint, 0, len(res.Path.Vertices))
	for _, id := range res.Path.Vertices {
		wps = append(wps, p.byID[id])
	}
	p.logger.Info("tour ready", "algorithm", label, "cost", res.Path.Weight, "legs", len(tour), "took", elapsed)
	p.setState(State{Kind: BestPathReady, Tour: tour, Algorithm: res.Algorithm})
	p.emit(TourReady{Summary: route.NewSummary(tour), Waypoints: wps, Algorithm: res.Algorithm})
}
