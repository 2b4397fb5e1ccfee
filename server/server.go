// Package server exposes a running planner over HTTP.
//
// Routes:
//
//	GET    /health                    liveness
//	GET    /metrics                   Prometheus exposition
//	GET    /v1/state                  planner snapshot
//	GET    /v1/tour                   latest best tour (409 until one is ready)
//	GET    /v1/path?from=&to=         cheapest chain of acquired routes
//	GET    /v1/waypoints              waypoints in insertion order
//	POST   /v1/waypoints              add a waypoint
//	DELETE /v1/waypoints/:id          remove a waypoint
//	PUT    /v1/waypoints/:id/start    make a waypoint the start
//	PUT    /v1/settings               change cost policy, mode, alternates or algorithm
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/waytour/planner"
	"github.com/katalvlaran/waytour/route"
	"github.com/katalvlaran/waytour/tsp"
)

// Planner is the subset of *planner.Planner the handlers drive.
type Planner interface {
	AddWaypoint(w route.Waypoint) (route.Waypoint, error)
	RemoveWaypoint(id uuid.UUID) error
	SetStart(id uuid.UUID) error
	SetCostPolicy(policy route.CostPolicy) error
	SetTransportMode(mode route.TransportMode) error
	SetAlternates(on bool) error
	SetAlgorithm(a tsp.Algorithm) error
	Snapshot(ctx context.Context) (planner.Snapshot, error)
	ShortestPath(ctx context.Context, from, to uuid.UUID) ([]*route.Route, error)
}

// Tours remembers the most recent TourReady event. Register Observe with
// planner.WithObserver before the planner starts.
type Tours struct {
	mu   sync.RWMutex
	last *planner.TourReady
}

// Observe records tours; other events are ignored.
func (t *Tours) Observe(e planner.Event) {
	if ev, ok := e.(planner.TourReady); ok {
		t.mu.Lock()
		t.last = &ev
		t.mu.Unlock()
	}
}

// Last returns the latest tour, if any.
func (t *Tours) Last() (planner.TourReady, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.last == nil {
		return planner.TourReady{}, false
	}

	return *t.last, true
}

// NewRouter wires every route onto a fresh gin engine.
func NewRouter(p Planner, tours *Tours, gatherer prometheus.Gatherer, logger *slog.Logger) *gin.Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	v1 := router.Group("/v1")
	{
		v1.GET("/state", HandleState(p))
		v1.GET("/tour", HandleTour(p, tours))
		v1.GET("/path", HandlePath(p))
		v1.PUT("/settings", HandleSettings(p))

		wps := v1.Group("/waypoints")
		{
			wps.GET("", HandleListWaypoints(p))
			wps.POST("", HandleAddWaypoint(p))
			wps.DELETE("/:id", HandleRemoveWaypoint(p))
			wps.PUT("/:id/start", HandleSetStart(p))
		}
	}

	return router
}

// Serve runs handler on addr until ctx is cancelled, then shuts down within
// grace.
func Serve(ctx context.Context, addr string, handler http.Handler, grace time.Duration, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	logger.Info("listening", slog.String("addr", addr))

	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}

	return nil
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("took", time.Since(start)),
		)
	}
}
