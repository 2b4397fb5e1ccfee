package planner

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/waytour/route"
	"github.com/katalvlaran/waytour/workqueue"
)

// Loop-side handlers. Everything here runs on the Run goroutine.

func (p *Planner) item(from, to uuid.UUID) WorkItem {
	return WorkItem{Source: from, Destination: to, Generation: p.generation}
}

func (p *Planner) addWaypoint(w route.Waypoint) {
	if _, dup := p.byID[w.ID]; dup {
		p.logger.Warn("waypoint already present", "waypoint", w.ID)
		return
	}
	others := slices.Clone(p.order)
	p.graph.InsertVertex(w.ID)
	p.order = append(p.order, w.ID)
	p.byID[w.ID] = w
	p.touch()
	if p.start == uuid.Nil {
		p.start = w.ID
	}
	p.logger.Info("waypoint added", "waypoint", w.ID, "name", w.Name(), "count", len(p.order))
	p.emit(WaypointAdded{Waypoint: w})
	p.requestLabel(w)

	items := make([]WorkItem, 0, 2*len(others))
	for _, o := range others {
		items = append(items, p.item(w.ID, o), p.item(o, w.ID))
	}
	p.queue.SubmitBatch(items...)
	p.update()
}

func (p *Planner) removeWaypoint(id uuid.UUID) {
	w, ok := p.byID[id]
	if !ok {
		return
	}
	p.emit(WaypointRemoving{Waypoint: w})

	dropped := p.queue.RemoveWhere(func(it WorkItem) bool { return it.touches(id) })
	if it, busy := p.queue.InFlight(); busy && it.touches(id) && p.inflightCancel != nil {
		p.inflightCancel()
	}
	p.graph.RemoveVertex(id)
	delete(p.byID, id)
	p.touch()
	p.order = slices.DeleteFunc(p.order, func(v uuid.UUID) bool { return v == id })
	if p.start == id {
		p.start = uuid.Nil
		if len(p.order) > 0 {
			p.start = p.order[0]
		}
	}
	p.logger.Info("waypoint removed", "waypoint", id, "name", w.Name(), "dropped_requests", dropped)

	p.update()
	p.emit(WaypointRemoved{Waypoint: w})
}

func (p *Planner) setStart(id uuid.UUID) {
	if _, ok := p.byID[id]; !ok || id == p.start {
		return
	}
	old := p.start
	p.start = id
	p.touch()
	if w, ok := p.byID[old]; ok {
		p.emit(WaypointUpdated{Waypoint: w})
	}
	p.emit(WaypointUpdated{Waypoint: p.byID[id], IsStart: true})
	p.update()
}

func (p *Planner) setCostPolicy(policy route.CostPolicy) {
	if policy == p.policy {
		return
	}
	p.policy = policy
	for _, r := range p.graph.Edges() {
		r.Reweigh(policy)
	}
	p.touch()
	p.logger.Info("cost policy changed", "policy", policy)
	p.update()
}

// recalculateAll drops every route and queues every ordered pair again under
// a fresh generation.
func (p *Planner) recalculateAll(reason string) {
	p.generation++
	cleared := p.queue.Clear()
	if p.inflightCancel != nil {
		p.inflightCancel()
	}
	p.graph.RemoveAllEdges()
	p.touch()
	p.logger.Info("recalculating all routes", "reason", reason, "generation", p.generation, "cleared", cleared)

	items := make([]WorkItem, 0, len(p.order)*len(p.order))
	for _, from := range p.order {
		for _, to := range p.order {
			if from != to {
				items = append(items, p.item(from, to))
			}
		}
	}
	p.queue.SubmitBatch(items...)
	p.update()
}

func (p *Planner) requestLabel(w route.Waypoint) {
	g := p.cfg.geocoder
	if g == nil || w.Label != "" {
		return
	}
	key := w.Coordinate.String()
	ctx := p.ctx
	go func() {
		v, err, shared := p.labels.Do(key, func() (any, error) {
			return g.Label(ctx, w.Coordinate)
		})
		p.post(func() {
			if err != nil {
				p.logger.Warn("label lookup failed", "waypoint", w.ID, "err", err)
				return
			}
			cur, ok := p.byID[w.ID]
			if !ok {
				return
			}
			cur.Label = v.(string)
			p.byID[w.ID] = cur
			p.logger.Debug("label resolved", "waypoint", w.ID, "label", cur.Label, "shared", shared)
			p.emit(WaypointUpdated{Waypoint: cur, IsStart: w.ID == p.start})
		})
	}()
}

// dispatch is the queue worker.
func (p *Planner) dispatch(it WorkItem) {
	src, okSrc := p.byID[it.Source]
	dst, okDst := p.byID[it.Destination]
	if it.Generation != p.generation || !okSrc || !okDst {
		p.queue.Finish(it)
		return
	}

	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if p.cfg.timeout > 0 {
		ctx, cancel = context.WithTimeout(p.ctx, p.cfg.timeout)
	} else {
		ctx, cancel = context.WithCancel(p.ctx)
	}
	p.inflightCancel = cancel
	req := route.Request{Source: src, Destination: dst, Mode: p.mode, Alternates: p.alternates}
	p.metrics.dispatched.Inc()
	p.logger.Debug("requesting routes", "from", src.Name(), "to", dst.Name(), "mode", req.Mode)

	go func() {
		defer cancel()
		cands, err := p.provider.Directions(ctx, req)
		p.post(func() { p.ingest(it, req, cands, err) })
	}()
}

// current reports whether it still matches the graph: same generation and
// both waypoints present.
func (p *Planner) current(it WorkItem) bool {
	_, okSrc := p.byID[it.Source]
	_, okDst := p.byID[it.Destination]

	return it.Generation == p.generation && okSrc && okDst
}

func (p *Planner) ingest(it WorkItem, req route.Request, cands []route.Candidate, err error) {
	if p.inflightCancel != nil {
		p.inflightCancel()
		p.inflightCancel = nil
	}
	if !p.current(it) {
		p.metrics.requests.WithLabelValues(resultStale).Inc()
		p.logger.Debug("discarding stale result", "item", it)
		p.queue.Finish(it)
		p.update()
		return
	}
	if err == nil && len(cands) == 0 {
		err = route.ErrNoRoute
	}

	if d, ok := route.Throttled(err); ok {
		p.metrics.requests.WithLabelValues(resultThrottled).Inc()
		until := p.cfg.clock.Now().Add(d)
		p.logger.Warn("provider throttled", "retry_after", d, "until", until.Format(time.RFC3339))
		p.queue.PauseUntil(until)
		p.queue.Requeue(it)
		p.queue.Finish(it)
		p.update()
		return
	}
	if err != nil {
		p.metrics.requests.WithLabelValues(resultError).Inc()
		p.fail(it, req, err)
		return
	}

	p.metrics.requests.WithLabelValues(resultOK).Inc()
	routes := make([]*route.Route, 0, len(cands))
	for _, c := range cands {
		r := route.New(it.Source, it.Destination, req.Mode, c, p.policy)
		if p.graph.InsertEdge(r) {
			routes = append(routes, r)
		}
	}
	if len(routes) > 0 {
		p.touch()
	}
	p.metrics.routes.Add(float64(len(routes)))
	p.logger.Debug("routes acquired", "from", req.Source.Name(), "to", req.Destination.Name(), "count", len(routes))
	p.emit(RoutesAcquired{Source: p.byID[it.Source], Destination: p.byID[it.Destination], Routes: routes})
	p.queue.Finish(it)
	p.update()
}

// fail escalates a permanent error. The item stays in flight until resolved.
func (p *Planner) fail(it WorkItem, req route.Request, err error) {
	p.logger.Warn("route request failed", "from", req.Source.Name(), "to", req.Destination.Name(), "err", err)
	r := p.cfg.resolver
	if r == nil || errors.Is(err, context.Canceled) {
		p.queue.Finish(it)
		p.update()
		return
	}

	f := Failure{Source: p.byID[it.Source], Destination: p.byID[it.Destination], Err: err}
	ctx := p.ctx
	go func() {
		action, rerr := r.Resolve(ctx, f)
		if rerr != nil {
			action = Skip
		}
		p.post(func() { p.resolve(it, action) })
	}()
}

func (p *Planner) resolve(it WorkItem, action Action) {
	p.logger.Info("failure resolved", "item", it, "action", action)
	switch action {
	case Retry:
		if p.current(it) {
			p.queue.Requeue(it)
		}
	case DropSource:
		p.removeWaypoint(it.Source)
	case DropDestination:
		p.removeWaypoint(it.Destination)
	}
	p.queue.Finish(it)
	p.update()
}

func (p *Planner) queueChanged(old, next workqueue.State) {
	p.logger.Debug("queue state changed", "from", old, "to", next)
	p.update()
}
