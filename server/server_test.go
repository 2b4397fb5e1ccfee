package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waytour/planner"
	"github.com/katalvlaran/waytour/route"
	"github.com/katalvlaran/waytour/server"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	reg := prometheus.NewRegistry()
	tours := &server.Tours{}
	p, err := planner.New(route.NewGreatCircle(),
		planner.WithRegisterer(reg),
		planner.WithObserver(tours.Observe),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = p.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-p.Done()
	})

	return server.NewRouter(p, tours, reg, nil)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

func addCity(t *testing.T, h http.Handler, label string, lat, lon float64) server.WaypointBody {
	t.Helper()
	body, err := json.Marshal(map[string]any{"label": label, "lat": lat, "lon": lon})
	require.NoError(t, err)
	rec := do(t, h, http.MethodPost, "/v1/waypoints", string(body))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode[server.WaypointBody](t, rec)
}

func waitForTour(t *testing.T, h http.Handler) server.TourBody {
	t.Helper()
	var tour server.TourBody
	require.Eventually(t, func() bool {
		rec := do(t, h, http.MethodGet, "/v1/tour", "")
		if rec.Code != http.StatusOK {
			return false
		}
		tour = decode[server.TourBody](t, rec)
		return true
	}, 3*time.Second, 5*time.Millisecond)

	return tour
}

func TestRouter_Health(t *testing.T) {
	h := newRouter(t)
	rec := do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_TourLifecycle(t *testing.T) {
	h := newRouter(t)

	rec := do(t, h, http.MethodGet, "/v1/tour", "")
	require.Equal(t, http.StatusConflict, rec.Code)

	mannheim := addCity(t, h, "Mannheim", 49.4875, 8.4660)
	frankfurt := addCity(t, h, "Frankfurt", 50.1109, 8.6821)
	addCity(t, h, "Berlin", 52.5200, 13.4050)

	tour := waitForTour(t, h)
	require.Len(t, tour.Legs, 3)
	require.Equal(t, "Mannheim", tour.Legs[0].FromLabel)
	require.Equal(t, "Mannheim", tour.Legs[2].ToLabel)
	require.Greater(t, tour.DistanceM, 0.0)

	rec = do(t, h, http.MethodGet, "/v1/waypoints", "")
	require.Equal(t, http.StatusOK, rec.Code)
	wps := decode[[]server.WaypointBody](t, rec)
	require.Len(t, wps, 3)
	require.True(t, wps[0].Start)
	require.Equal(t, mannheim.ID, wps[0].ID)

	rec = do(t, h, http.MethodGet, "/v1/state", "")
	require.Equal(t, http.StatusOK, rec.Code)
	state := decode[server.StateBody](t, rec)
	require.Equal(t, "best_path_ready", state.Kind)
	require.Equal(t, 1.0, state.Progress)
	require.Equal(t, 3, state.Waypoints)
	// Alternates are on by default: two candidates per ordered pair.
	require.Equal(t, 12, state.Routes)

	rec = do(t, h, http.MethodGet, "/v1/path?from="+mannheim.ID.String()+"&to="+frankfurt.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	path := decode[server.TourBody](t, rec)
	require.Len(t, path.Legs, 1)
	require.Equal(t, "Frankfurt", path.Legs[0].ToLabel)

	rec = do(t, h, http.MethodDelete, "/v1/waypoints/"+frankfurt.ID.String(), "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Eventually(t, func() bool {
		rec := do(t, h, http.MethodGet, "/v1/tour", "")
		return rec.Code == http.StatusOK && len(decode[server.TourBody](t, rec).Legs) == 2
	}, 3*time.Second, 5*time.Millisecond)

	rec = do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "waytour_route_requests_total")
}

func TestRouter_StartAndSettings(t *testing.T) {
	h := newRouter(t)
	addCity(t, h, "Mannheim", 49.4875, 8.4660)
	berlin := addCity(t, h, "Berlin", 52.5200, 13.4050)
	waitForTour(t, h)

	rec := do(t, h, http.MethodPut, "/v1/waypoints/"+berlin.ID.String()+"/start", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	tour := waitForTour(t, h)
	require.Equal(t, "Berlin", tour.Legs[0].FromLabel)

	rec = do(t, h, http.MethodPut, "/v1/settings", `{"cost_policy":"time","algorithm":"exact","alternates":false}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Eventually(t, func() bool {
		state := decode[server.StateBody](t, do(t, h, http.MethodGet, "/v1/state", ""))
		return state.CostPolicy == "travel_time" && state.Algorithm == "exact" &&
			!state.Alternates && state.Kind == "best_path_ready" && state.Routes == 2
	}, 3*time.Second, 5*time.Millisecond)
}

func TestRouter_BadRequests(t *testing.T) {
	h := newRouter(t)
	a := addCity(t, h, "A", 1, 1)

	cases := []struct {
		name, method, target, body string
		want                       int
	}{
		{"missing latitude", http.MethodPost, "/v1/waypoints", `{"lon": 1}`, http.StatusBadRequest},
		{"latitude out of range", http.MethodPost, "/v1/waypoints", `{"lat": 91, "lon": 1}`, http.StatusBadRequest},
		{"malformed json", http.MethodPost, "/v1/waypoints", `{"lat":`, http.StatusBadRequest},
		{"bad id", http.MethodDelete, "/v1/waypoints/nope", "", http.StatusBadRequest},
		{"unknown start", http.MethodPut, "/v1/waypoints/" + uuid.Nil.String() + "/start", "", http.StatusNotFound},
		{"bad policy", http.MethodPut, "/v1/settings", `{"cost_policy":"cheapest"}`, http.StatusBadRequest},
		{"same vertex path", http.MethodGet, "/v1/path?from=" + a.ID.String() + "&to=" + a.ID.String(), "", http.StatusBadRequest},
		{"unparsable path", http.MethodGet, "/v1/path?from=x&to=y", "", http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, tc.method, tc.target, tc.body)
			require.Equal(t, tc.want, rec.Code, rec.Body.String())
		})
	}
}

func TestTours_IgnoresOtherEvents(t *testing.T) {
	var tours server.Tours
	_, ok := tours.Last()
	require.False(t, ok)

	tours.Observe(planner.ProgressChanged{Progress: 0.5})
	_, ok = tours.Last()
	require.False(t, ok)

	tours.Observe(planner.TourReady{})
	_, ok = tours.Last()
	require.True(t, ok)
}
