package planner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	dispatched    prometheus.Counter
	requests      *prometheus.CounterVec
	routes        prometheus.Counter
	solves        *prometheus.CounterVec
	solveDuration *prometheus.HistogramVec
	queueDepth    prometheus.Gauge
}

// newMetrics registers on reg; a nil reg yields working, unregistered collectors.
func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		dispatched: f.NewCounter(prometheus.CounterOpts{
			Name: "waytour_route_requests_dispatched_total",
			Help: "Provider requests started",
		}),
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "waytour_route_requests_total",
			Help: "Finished provider requests by outcome",
		}, []string{"result"}),
		routes: f.NewCounter(prometheus.CounterOpts{
			Name: "waytour_routes_acquired_total",
			Help: "Routes stored in the waypoint graph",
		}),
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "waytour_solves_total",
			Help: "Tour computations by algorithm and result",
		}, []string{"algorithm", "result"}),
		solveDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "waytour_solve_duration_seconds",
			Help:    "Tour computation latency",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"algorithm"}),
		queueDepth: f.NewGauge(prometheus.GaugeOpts{
			Name: "waytour_queue_depth",
			Help: "Pending route requests",
		}),
	}
}

const (
	resultOK        = "ok"
	resultThrottled = "throttled"
	resultError     = "error"
	resultStale     = "stale"
)
