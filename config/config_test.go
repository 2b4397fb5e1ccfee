package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/waytour/config"
	"github.com/katalvlaran/waytour/route"
	"github.com/katalvlaran/waytour/tsp"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	algo, err := cfg.Algorithm()
	require.NoError(t, err)
	require.Equal(t, tsp.Automatic, algo)
	mode, err := cfg.Mode()
	require.NoError(t, err)
	require.Equal(t, route.Automobile, mode)
	policy, err := cfg.Policy()
	require.NoError(t, err)
	require.Equal(t, route.Distance, policy)
	require.Equal(t, tsp.DefaultSelection(), cfg.Selection())
	require.Nil(t, cfg.Limiter())

	opts, err := cfg.PlannerOptions()
	require.NoError(t, err)
	require.Len(t, opts, 6)
}

func TestParse_EmptyKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := config.Parse([]byte(`
planner:
  algorithm: exact
  cost_policy: time
  transport_mode: walking
  alternates: false
  selection:
    max_exact_vertices: 8
    max_exact_edges: 0
  request_timeout: 5s
provider:
  rate_per_second: 2.5
  burst: 3
  throttle_every: 10
  throttle_for: 1m
  profiles:
    walking: {speed_kmh: 4, detour: 1.1}
log:
  level: debug
  format: json
server:
  addr: ":9090"
watch:
  debounce: 1s
`))
	require.NoError(t, err)

	algo, err := cfg.Algorithm()
	require.NoError(t, err)
	require.Equal(t, tsp.ExactSearch, algo)
	policy, err := cfg.Policy()
	require.NoError(t, err)
	require.Equal(t, route.TravelTime, policy)
	require.False(t, cfg.Planner.Alternates)
	require.Equal(t, tsp.Selection{MaxExactVertices: 8}, cfg.Selection())
	require.Equal(t, 5*time.Second, cfg.Planner.RequestTimeout)

	lim := cfg.Limiter()
	require.NotNil(t, lim)
	require.Equal(t, rate.Limit(2.5), lim.Limit())
	require.Equal(t, 3, lim.Burst())

	gc, err := cfg.GreatCircle()
	require.NoError(t, err)
	require.Equal(t, 10, gc.ThrottleEvery)
	require.Equal(t, time.Minute, gc.ThrottleFor)
	require.Equal(t, route.Profile{SpeedKMH: 4, Detour: 1.1}, gc.Profiles[route.Walking])
	require.Equal(t, route.DefaultProfiles()[route.Automobile], gc.Profiles[route.Automobile])

	require.True(t, cfg.Logger(os.Stderr).Enabled(t.Context(), -4))
	require.Equal(t, ":9090", cfg.Server.Addr)
	require.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, time.Second, cfg.Watch.Debounce)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":       "planner:\n  colour: red\n",
		"bad algorithm":     "planner:\n  algorithm: genetic\n",
		"bad mode":          "planner:\n  transport_mode: boat\n",
		"negative rate":     "provider:\n  rate_per_second: -1\n",
		"zero burst":        "provider:\n  burst: 0\n",
		"bad profile key":   "provider:\n  profiles:\n    boat: {speed_kmh: 10, detour: 1}\n",
		"bad profile speed": "provider:\n  profiles:\n    walking: {speed_kmh: 0, detour: 1}\n",
		"bad log level":     "log:\n  level: loud\n",
		"negative bound":    "planner:\n  selection:\n    max_exact_edges: -1\n",
		"bad listen addr":   "server:\n  addr: nowhere\n",
		"negative debounce": "watch:\n  debounce: -1s\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.Error(t, err)
		})
	}

	_, err := config.Parse([]byte("log:\n  level: loud\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waytour.yaml")
	require.NoError(t, os.WriteFile(path, []byte("planner:\n  algorithm: nearest_neighbour\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	algo, err := cfg.Algorithm()
	require.NoError(t, err)
	require.Equal(t, tsp.NearestNeighbour, algo)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseWaypoints(t *testing.T) {
	wps, err := config.ParseWaypoints([]byte(`
waypoints:
  - {label: Mannheim, lat: 49.4875, lon: 8.466}
  - {lat: 52.52, lon: 13.405}
`))
	require.NoError(t, err)
	require.Len(t, wps, 2)
	require.Equal(t, "Mannheim", wps[0].Label)
	require.Equal(t, route.Coordinate{Latitude: 52.52, Longitude: 13.405}, wps[1].Coordinate)
	require.NotEqual(t, wps[0].ID, wps[1].ID)

	_, err = config.ParseWaypoints([]byte("waypoints:\n  - {lat: 1, lon: 1}\n"))
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.ParseWaypoints([]byte("waypoints:\n  - {lat: 91, lon: 1}\n  - {lat: 0, lon: 0}\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
}
