// Package config loads waytour settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/waytour/planner"
	"github.com/katalvlaran/waytour/route"
	"github.com/katalvlaran/waytour/tsp"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the root document.
type Config struct {
	Planner  Planner  `yaml:"planner"`
	Provider Provider `yaml:"provider"`
	Log      Log      `yaml:"log"`
	Server   Server   `yaml:"server"`
	Watch    Watch    `yaml:"watch"`
}

// Planner holds the tour settings.
type Planner struct {
	Algorithm      string        `yaml:"algorithm" validate:"oneof=automatic exact nearest_neighbour"`
	CostPolicy     string        `yaml:"cost_policy" validate:"oneof=distance travel_time time"`
	TransportMode  string        `yaml:"transport_mode" validate:"oneof=automobile walking transit any"`
	Alternates     bool          `yaml:"alternates"`
	Selection      tsp.Selection `yaml:"selection"`
	RequestTimeout time.Duration `yaml:"request_timeout" validate:"gte=0"`
}

// Provider configures request pacing and the great-circle provider.
type Provider struct {
	// RatePerSecond paces requests; zero disables pacing.
	RatePerSecond float64 `yaml:"rate_per_second" validate:"gte=0"`
	Burst         int     `yaml:"burst" validate:"gte=1"`

	ThrottleEvery int                      `yaml:"throttle_every" validate:"gte=0"`
	ThrottleFor   time.Duration            `yaml:"throttle_for" validate:"gte=0"`
	Latency       time.Duration            `yaml:"latency" validate:"gte=0"`
	Profiles      map[string]route.Profile `yaml:"profiles" validate:"dive,keys,oneof=automobile walking transit any,endkeys"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Server configures the HTTP front end of "waytour serve".
type Server struct {
	Addr            string        `yaml:"addr" validate:"required,hostname_port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gte=0"`
}

// Watch configures waypoint file reloading.
type Watch struct {
	Debounce time.Duration `yaml:"debounce" validate:"gte=0"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Planner: Planner{
			Algorithm:      tsp.Automatic.String(),
			CostPolicy:     route.Distance.String(),
			TransportMode:  route.Automobile.String(),
			Alternates:     true,
			Selection:      tsp.DefaultSelection(),
			RequestTimeout: 30 * time.Second,
		},
		Provider: Provider{Burst: 1},
		Log:      Log{Level: "info", Format: "text"},
		Server:   Server{Addr: "127.0.0.1:8080", ShutdownTimeout: 5 * time.Second},
		Watch:    Watch{Debounce: DefaultDebounce},
	}
}

// Load reads and validates the file at path on top of Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes data on top of Default and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Selection returns the Automatic thresholds.
func (c Config) Selection() tsp.Selection { return c.Planner.Selection }

// Algorithm parses the configured solver.
func (c Config) Algorithm() (tsp.Algorithm, error) { return tsp.ParseAlgorithm(c.Planner.Algorithm) }

// Mode parses the configured transport mode.
func (c Config) Mode() (route.TransportMode, error) {
	return route.ParseTransportMode(c.Planner.TransportMode)
}

// Policy parses the configured cost policy.
func (c Config) Policy() (route.CostPolicy, error) { return route.ParseCostPolicy(c.Planner.CostPolicy) }

// Limiter returns the request pacer, or nil when pacing is off.
func (c Config) Limiter() *rate.Limiter {
	if c.Provider.RatePerSecond <= 0 {
		return nil
	}

	return rate.NewLimiter(rate.Limit(c.Provider.RatePerSecond), c.Provider.Burst)
}

// GreatCircle builds the synthetic provider. Configured profiles replace the
// defaults per mode.
func (c Config) GreatCircle() (*route.GreatCircle, error) {
	gc := route.NewGreatCircle()
	gc.ThrottleEvery = c.Provider.ThrottleEvery
	gc.ThrottleFor = c.Provider.ThrottleFor
	gc.Latency = c.Provider.Latency
	for name, prof := range c.Provider.Profiles {
		m, err := route.ParseTransportMode(name)
		if err != nil {
			return nil, err
		}
		gc.Profiles[m] = prof
	}

	return gc, nil
}

// Logger builds a slog.Logger writing to w.
func (c Config) Logger(w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// PlannerOptions translates the planner section into planner options.
func (c Config) PlannerOptions() ([]planner.Option, error) {
	algo, err := c.Algorithm()
	if err != nil {
		return nil, err
	}
	mode, err := c.Mode()
	if err != nil {
		return nil, err
	}
	policy, err := c.Policy()
	if err != nil {
		return nil, err
	}
	opts := []planner.Option{
		planner.WithAlgorithm(algo),
		planner.WithTransportMode(mode),
		planner.WithCostPolicy(policy),
		planner.WithAlternates(c.Planner.Alternates),
		planner.WithSelection(c.Selection()),
		planner.WithRequestTimeout(c.Planner.RequestTimeout),
	}
	if l := c.Limiter(); l != nil {
		opts = append(opts, planner.WithRateLimit(l))
	}

	return opts, nil
}
