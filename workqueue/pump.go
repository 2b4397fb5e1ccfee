package workqueue

import "time"

// pump dispatches pending work and delivers state notifications until nothing
// more can happen. Only one goroutine pumps at a time; re-entrant calls return
// at once and their effects are picked up by the active loop. Notifications
// are delivered before the worker sees the item that caused them.
func (q *Queue[T]) pump() {
	q.mu.Lock()
	if q.pumping {
		q.mu.Unlock()
		return
	}
	q.pumping = true
	defer func() {
		q.pumping = false
		q.mu.Unlock()
	}()

	var (
		due    T
		hasDue bool
		zero   T
	)
	for {
		if len(q.notes) > 0 {
			n := q.notes[0]
			q.notes = q.notes[1:]
			if fn := q.cfg.onState; fn != nil {
				q.mu.Unlock()
				fn(n.old, n.new)
				q.mu.Lock()
			}
			continue
		}
		if hasDue {
			item := due
			due, hasDue = zero, false
			q.mu.Unlock()
			q.work(item)
			q.mu.Lock()
			continue
		}

		q.expireLocked()
		due, hasDue = q.nextLocked()
		q.recordLocked()
		if !hasDue && len(q.notes) == 0 {
			return
		}
	}
}

// nextLocked pops the head item when dispatch is allowed. It may instead start
// a limiter pause, in which case it reports false.
func (q *Queue[T]) nextLocked() (T, bool) {
	var zero T
	if q.stopped || q.busy || len(q.pending) == 0 || !q.until.IsZero() {
		return zero, false
	}

	if l := q.cfg.limiter; l != nil && !q.reserved {
		now := q.cfg.clock.Now()
		r := l.ReserveN(now, 1)
		q.reserved = true
		if !r.OK() {
			q.cfg.logger.Warn("workqueue: rate limiter cannot grant a single event, dispatching unpaced")
		} else if d := r.DelayFrom(now); d > 0 {
			q.cfg.logger.Debug("workqueue: rate limited", "delay", d)
			q.pauseLocked(now.Add(d))
			return zero, false
		}
	}

	item := q.pending[0]
	q.pending[0] = zero
	q.pending = q.pending[1:]
	q.inFlight = item
	q.busy = true
	q.reserved = false
	q.cfg.logger.Debug("workqueue: dispatch", "item", item, "pending", len(q.pending))

	return item, true
}

// pauseLocked extends the pause deadline to t and arms the resume timer.
func (q *Queue[T]) pauseLocked(t time.Time) {
	if q.stopped || !t.After(q.cfg.clock.Now()) || !t.After(q.until) {
		return
	}
	q.until = t
	q.armLocked()
}

// armLocked (re)schedules the resume timer for the current deadline.
func (q *Queue[T]) armLocked() {
	if q.timer != nil {
		q.timer.Stop()
	}
	d := q.until.Sub(q.cfg.clock.Now()) + q.cfg.tolerance
	q.timer = q.cfg.clock.AfterFunc(d, func() {
		q.cfg.exec(q.wake)
	})
}

// wake is the resume-timer callback.
func (q *Queue[T]) wake() {
	q.mu.Lock()
	q.timer = nil
	q.mu.Unlock()
	q.pump()
}

// expireLocked clears an elapsed pause, or re-arms the timer of a pending one.
func (q *Queue[T]) expireLocked() {
	if q.until.IsZero() {
		return
	}
	if q.cfg.clock.Now().Before(q.until) {
		if q.timer == nil && !q.stopped {
			q.armLocked()
		}
		return
	}
	q.until = time.Time{}
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
}

// recordLocked derives the state and queues a notification when it changed.
func (q *Queue[T]) recordLocked() {
	next := State{Kind: Idle}
	switch {
	case !q.until.IsZero():
		next = State{Kind: Pausing, Until: q.until}
	case q.busy:
		next = State{Kind: Working}
	}
	if next.Equal(q.state) {
		return
	}
	q.notes = append(q.notes, transition{old: q.state, new: next})
	q.state = next
}
