package workqueue

import (
	"sync"
	"time"
)

// Worker starts processing item. It must not block for the duration of the
// task; completion is reported through Queue.Finish.
type Worker[T comparable] func(item T)

// Queue is a single-in-flight scheduler over items of type T.
type Queue[T comparable] struct {
	cfg  config
	work Worker[T]

	mu       sync.Mutex
	pending  []T
	inFlight T
	busy     bool
	until    time.Time // zero when not paused
	timer    Timer
	reserved bool // limiter reservation already paid for the next dispatch
	state    State
	notes    []transition
	pumping  bool
	stopped  bool
}

type transition struct{ old, new State }

// New returns an idle queue dispatching to work.
func New[T comparable](work Worker[T], opts ...Option) *Queue[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Queue[T]{cfg: cfg, work: work}
}

// Submit appends item to the tail and dispatches it if the queue is idle.
func (q *Queue[T]) Submit(item T) {
	q.SubmitBatch(item)
}

// SubmitBatch appends items to the tail in order.
func (q *Queue[T]) SubmitBatch(items ...T) {
	if len(items) == 0 {
		return
	}
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return
	}
	q.pending = append(q.pending, items...)
	q.mu.Unlock()
	q.pump()
}

// Requeue pushes item to the head so it is served before fresh work.
func (q *Queue[T]) Requeue(item T) {
	q.RequeueBatch(item)
}

// RequeueBatch pushes items to the head, keeping their relative order.
func (q *Queue[T]) RequeueBatch(items ...T) {
	if len(items) == 0 {
		return
	}
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return
	}
	head := make([]T, 0, len(items)+len(q.pending))
	head = append(head, items...)
	q.pending = append(head, q.pending...)
	q.mu.Unlock()
	q.pump()
}

// Finish marks the in-flight item done and dispatches the next one.
//
// Implementation:
//   - Stage 1: Under the lock, verify item is the one in flight and clear it.
//   - Stage 2: Pump outside the lock. The next item is handed to the Worker
//     unless a pause or the rate limiter holds it back; the state moves to
//     Idle, Working or Pausing and observers are notified of the change.
//
// Finish may be called from inside the Worker; the dispatch it triggers is
// picked up by the pump already on the stack.
//
// It reports false, and logs a warning, when item is not the item in flight.
func (q *Queue[T]) Finish(item T) bool {
	q.mu.Lock()
	if !q.busy || q.inFlight != item {
		q.mu.Unlock()
		q.cfg.logger.Warn("workqueue: finish for an item that is not in flight", "item", item)
		return false
	}
	var zero T
	q.busy = false
	q.inFlight = zero
	q.mu.Unlock()
	q.pump()

	return true
}

// PauseUntil suspends dispatch until t.
//
// Implementation:
//   - Stage 1: Ignore t when the queue is stopped, when t is not in the future,
//     or when it would shorten the current pause. Pauses only ever extend.
//   - Stage 2: Record the deadline and (re)arm a Clock timer for
//     t + tolerance. The timer callback runs through the configured executor.
//   - Stage 3: Pump, which moves the state to Pausing and notifies observers.
//
// The in-flight item, if any, keeps running; only the next dispatch waits.
// Every state-touching call re-checks the deadline, so a late timer cannot
// extend the pause past t.
//
// Complexity: O(1) plus one timer reset.
func (q *Queue[T]) PauseUntil(t time.Time) {
	q.mu.Lock()
	q.pauseLocked(t)
	q.mu.Unlock()
	q.pump()
}

// PauseFor is PauseUntil(now + d).
func (q *Queue[T]) PauseFor(d time.Duration) {
	q.PauseUntil(q.cfg.clock.Now().Add(d))
}

// RemoveWhere drops pending items matching pred and returns how many were
// dropped. The in-flight item is never touched.
func (q *Queue[T]) RemoveWhere(pred func(T) bool) int {
	q.mu.Lock()
	kept := q.pending[:0]
	removed := 0
	for _, it := range q.pending {
		if pred(it) {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	var zero T
	for i := len(kept); i < len(q.pending); i++ {
		q.pending[i] = zero
	}
	q.pending = kept
	q.mu.Unlock()
	q.pump()

	return removed
}

// Clear drops every pending item.
func (q *Queue[T]) Clear() int {
	return q.RemoveWhere(func(T) bool { return true })
}

// Len returns the number of pending (not in-flight) items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.pending)
}

// Pending returns a copy of the pending items, head first.
func (q *Queue[T]) Pending() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	return append([]T(nil), q.pending...)
}

// InFlight returns the item currently being processed.
func (q *Queue[T]) InFlight() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.inFlight, q.busy
}

// State returns the current state, first expiring an elapsed pause.
func (q *Queue[T]) State() State {
	q.mu.Lock()
	expired := !q.until.IsZero() && !q.cfg.clock.Now().Before(q.until)
	q.mu.Unlock()
	if expired {
		q.pump()
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.state
}

// Stop cancels the resume timer and drops pending work. Later submissions are
// ignored.
func (q *Queue[T]) Stop() {
	q.mu.Lock()
	q.stopped = true
	q.pending = nil
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
	q.mu.Unlock()
}
