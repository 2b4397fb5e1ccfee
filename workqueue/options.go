package workqueue

import (
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// DefaultTolerance is added to every resume timer so wakeups land after the deadline.
const DefaultTolerance = 10 * time.Millisecond

// Option configures a Queue.
type Option func(*config)

type config struct {
	clock     Clock
	exec      func(func())
	limiter   *rate.Limiter
	onState   func(old, new State)
	logger    *slog.Logger
	tolerance time.Duration
}

func defaultConfig() config {
	return config{
		clock:     SystemClock{},
		exec:      func(f func()) { f() },
		logger:    slog.New(slog.DiscardHandler),
		tolerance: DefaultTolerance,
	}
}

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.clock = c
		}
	}
}

// WithExecutor routes resume-timer callbacks through exec, typically to post
// them onto the owner's event loop.
func WithExecutor(exec func(func())) Option {
	return func(cfg *config) {
		if exec != nil {
			cfg.exec = exec
		}
	}
}

// WithRateLimit paces dispatches. When a reservation is not immediately
// available the queue pauses until it matures.
func WithRateLimit(l *rate.Limiter) Option {
	return func(cfg *config) { cfg.limiter = l }
}

// WithStateChange registers the transition observer.
func WithStateChange(fn func(old, new State)) Option {
	return func(cfg *config) { cfg.onState = fn }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithTolerance overrides DefaultTolerance. Negative values are ignored.
func WithTolerance(d time.Duration) Option {
	return func(cfg *config) {
		if d >= 0 {
			cfg.tolerance = d
		}
	}
}
