package planner

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/waytour/route"
	"github.com/katalvlaran/waytour/tsp"
	"github.com/katalvlaran/waytour/workqueue"
)

// Option configures a Planner.
type Option func(*config)

type config struct {
	geocoder   route.Geocoder
	resolver   Resolver
	observers  []func(Event)
	logger     *slog.Logger
	registerer prometheus.Registerer
	clock      workqueue.Clock
	limiter    *rate.Limiter
	timeout    time.Duration

	selection  tsp.Selection
	algorithm  tsp.Algorithm
	policy     route.CostPolicy
	mode       route.TransportMode
	alternates bool
}

func defaultConfig() config {
	return config{
		logger:     slog.New(slog.DiscardHandler),
		clock:      workqueue.SystemClock{},
		selection:  tsp.DefaultSelection(),
		algorithm:  tsp.Automatic,
		policy:     route.Distance,
		mode:       route.Automobile,
		alternates: true,
	}
}

// WithGeocoder resolves labels for waypoints added without one.
func WithGeocoder(g route.Geocoder) Option {
	return func(c *config) { c.geocoder = g }
}

// WithResolver handles permanent acquisition errors. Without one the failed
// pair is skipped.
func WithResolver(r Resolver) Option {
	return func(c *config) { c.resolver = r }
}

// WithObserver subscribes fn to every event. May be given more than once.
func WithObserver(fn func(Event)) Option {
	return func(c *config) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// WithLogger sets the structured logger, shared with the work queue.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRegisterer registers the planner's collectors on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *config) { c.registerer = reg }
}

// WithClock replaces the wall clock used for throttle deadlines.
func WithClock(clk workqueue.Clock) Option {
	return func(c *config) {
		if clk != nil {
			c.clock = clk
		}
	}
}

// WithRateLimit paces provider requests.
func WithRateLimit(l *rate.Limiter) Option {
	return func(c *config) { c.limiter = l }
}

// WithRequestTimeout bounds every provider call. Zero means no bound.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

// WithSelection sets the thresholds used by tsp.Automatic.
func WithSelection(s tsp.Selection) Option {
	return func(c *config) { c.selection = s }
}

// WithAlgorithm sets the initial solver.
func WithAlgorithm(a tsp.Algorithm) Option {
	return func(c *config) { c.algorithm = a }
}

// WithCostPolicy sets the initial cost policy.
func WithCostPolicy(p route.CostPolicy) Option {
	return func(c *config) { c.policy = p }
}

// WithTransportMode sets the initial transport mode.
func WithTransportMode(m route.TransportMode) Option {
	return func(c *config) { c.mode = m }
}

// WithAlternates controls whether providers are asked for alternative routes.
func WithAlternates(on bool) Option {
	return func(c *config) { c.alternates = on }
}
