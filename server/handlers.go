package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/waytour/dijkstra"
	"github.com/katalvlaran/waytour/planner"
	"github.com/katalvlaran/waytour/route"
	"github.com/katalvlaran/waytour/tsp"
)

// WaypointBody is the JSON form of a waypoint.
type WaypointBody struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label,omitempty"`
	Lat   float64   `json:"lat"`
	Lon   float64   `json:"lon"`
	Start bool      `json:"start,omitempty"`
}

// AddWaypointRequest is the body of POST /v1/waypoints.
type AddWaypointRequest struct {
	Label string   `json:"label"`
	Lat   *float64 `json:"lat" binding:"required,gte=-90,lte=90"`
	Lon   *float64 `json:"lon" binding:"required,gte=-180,lte=180"`
}

// SettingsRequest is the body of PUT /v1/settings. Absent fields are left
// unchanged.
type SettingsRequest struct {
	CostPolicy    *string `json:"cost_policy" binding:"omitempty,oneof=distance travel_time time"`
	TransportMode *string `json:"transport_mode" binding:"omitempty,oneof=automobile walking transit any"`
	Algorithm     *string `json:"algorithm" binding:"omitempty,oneof=automatic exact nearest_neighbour"`
	Alternates    *bool   `json:"alternates"`
}

// StateBody is the JSON form of a planner snapshot.
type StateBody struct {
	State          string     `json:"state"`
	Kind           string     `json:"kind"`
	Progress       float64    `json:"progress"`
	Queued         int        `json:"queued"`
	Routes         int        `json:"routes"`
	Waypoints      int        `json:"waypoints"`
	ThrottledUntil *time.Time `json:"throttled_until,omitempty"`
	CostPolicy     string     `json:"cost_policy"`
	TransportMode  string     `json:"transport_mode"`
	Alternates     bool       `json:"alternates"`
	Algorithm      string     `json:"algorithm"`
}

// LegBody is one route of a tour or path.
type LegBody struct {
	From       uuid.UUID `json:"from"`
	To         uuid.UUID `json:"to"`
	FromLabel  string    `json:"from_label"`
	ToLabel    string    `json:"to_label"`
	Mode       string    `json:"mode"`
	DistanceM  float64   `json:"distance_m"`
	TravelTime float64   `json:"travel_time_s"`
}

// TourBody is the JSON form of a published tour.
type TourBody struct {
	Algorithm  string    `json:"algorithm"`
	Legs       []LegBody `json:"legs"`
	DistanceM  float64   `json:"distance_m"`
	TravelTime float64   `json:"travel_time_s"`
}

func waypointBody(w route.Waypoint, start uuid.UUID) WaypointBody {
	return WaypointBody{ID: w.ID, Label: w.Label, Lat: w.Coordinate.Latitude, Lon: w.Coordinate.Longitude, Start: w.ID == start}
}

func legs(routes []*route.Route, names map[uuid.UUID]string) []LegBody {
	out := make([]LegBody, 0, len(routes))
	for _, r := range routes {
		out = append(out, LegBody{
			From:       r.Source(),
			To:         r.Destination(),
			FromLabel:  names[r.Source()],
			ToLabel:    names[r.Destination()],
			Mode:       r.Mode().String(),
			DistanceM:  r.Distance(),
			TravelTime: r.TravelTime().Seconds(),
		})
	}

	return out
}

func names(wps []route.Waypoint) map[uuid.UUID]string {
	m := make(map[uuid.UUID]string, len(wps))
	for _, w := range wps {
		m[w.ID] = w.Name()
	}

	return m
}

// fail maps planner and solver errors onto HTTP statuses.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, planner.ErrStopped):
		status = http.StatusServiceUnavailable
	case errors.Is(err, dijkstra.ErrVertexNotFound), errors.Is(err, dijkstra.ErrNoPath):
		status = http.StatusNotFound
	case errors.Is(err, dijkstra.ErrSameVertex):
		status = http.StatusBadRequest
	case errors.Is(err, c.Request.Context().Err()):
		status = http.StatusRequestTimeout
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid waypoint id"})
		return uuid.Nil, false
	}

	return id, true
}

// HandleState reports the planner snapshot.
func HandleState(p Planner) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := p.Snapshot(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		body := StateBody{
			State:         snap.State.String(),
			Kind:          snap.State.Kind.String(),
			Progress:      snap.Progress,
			Queued:        snap.Queued,
			Routes:        snap.Routes,
			Waypoints:     len(snap.Waypoints),
			CostPolicy:    snap.Policy.String(),
			TransportMode: snap.Mode.String(),
			Alternates:    snap.Alternates,
			Algorithm:     snap.Algorithm.String(),
		}
		if snap.State.Throttled() {
			until := snap.State.ThrottledUntil
			body.ThrottledUntil = &until
		}
		c.JSON(http.StatusOK, body)
	}
}

// HandleTour returns the latest tour once the planner reports it ready.
func HandleTour(p Planner, tours *Tours) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := p.Snapshot(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		tour, ok := tours.Last()
		if snap.State.Kind != planner.BestPathReady || !ok {
			c.JSON(http.StatusConflict, gin.H{"error": "no tour ready", "state": snap.State.String()})
			return
		}
		c.JSON(http.StatusOK, TourBody{
			Algorithm:  tour.Algorithm.String(),
			Legs:       legs(tour.Summary.Routes, names(tour.Waypoints)),
			DistanceM:  tour.Summary.Distance(),
			TravelTime: tour.Summary.TravelTime().Seconds(),
		})
	}
}

// HandlePath returns the cheapest chain of acquired routes between two
// waypoints.
func HandlePath(p Planner) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, errFrom := uuid.Parse(c.Query("from"))
		to, errTo := uuid.Parse(c.Query("to"))
		if errFrom != nil || errTo != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "from and to must be waypoint ids"})
			return
		}
		ctx := c.Request.Context()
		routes, err := p.ShortestPath(ctx, from, to)
		if err != nil {
			fail(c, err)
			return
		}
		snap, err := p.Snapshot(ctx)
		if err != nil {
			fail(c, err)
			return
		}
		summary := route.NewSummary(routes)
		c.JSON(http.StatusOK, TourBody{
			Legs:       legs(routes, names(snap.Waypoints)),
			DistanceM:  summary.Distance(),
			TravelTime: summary.TravelTime().Seconds(),
		})
	}
}

// HandleListWaypoints lists waypoints in insertion order.
func HandleListWaypoints(p Planner) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := p.Snapshot(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		out := make([]WaypointBody, 0, len(snap.Waypoints))
		for _, w := range snap.Waypoints {
			out = append(out, waypointBody(w, snap.Start))
		}
		c.JSON(http.StatusOK, out)
	}
}

// HandleAddWaypoint adds a waypoint and returns it with its new id.
func HandleAddWaypoint(p Planner) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddWaypointRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		w := route.NewWaypoint(route.Coordinate{Latitude: *req.Lat, Longitude: *req.Lon})
		w.Label = req.Label
		w, err := p.AddWaypoint(w)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, waypointBody(w, uuid.Nil))
	}
}

// HandleRemoveWaypoint removes a waypoint. Unknown ids succeed.
func HandleRemoveWaypoint(p Planner) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := p.RemoveWaypoint(id); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// HandleSetStart moves the tour start.
func HandleSetStart(p Planner) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		snap, err := p.Snapshot(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		known := false
		for _, w := range snap.Waypoints {
			known = known || w.ID == id
		}
		if !known {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown waypoint"})
			return
		}
		if err := p.SetStart(id); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// HandleSettings applies the fields present in the body.
func HandleSettings(p Planner) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SettingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.CostPolicy != nil {
			policy, err := route.ParseCostPolicy(*req.CostPolicy)
			if err == nil {
				err = p.SetCostPolicy(policy)
			}
			if err != nil {
				fail(c, err)
				return
			}
		}
		if req.TransportMode != nil {
			mode, err := route.ParseTransportMode(*req.TransportMode)
			if err == nil {
				err = p.SetTransportMode(mode)
			}
			if err != nil {
				fail(c, err)
				return
			}
		}
		if req.Algorithm != nil {
			algo, err := tsp.ParseAlgorithm(*req.Algorithm)
			if err == nil {
				err = p.SetAlgorithm(algo)
			}
			if err != nil {
				fail(c, err)
				return
			}
		}
		if req.Alternates != nil {
			if err := p.SetAlternates(*req.Alternates); err != nil {
				fail(c, err)
				return
			}
		}
		c.Status(http.StatusNoContent)
	}
}
