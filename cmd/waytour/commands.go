package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/waytour/config"
	"github.com/katalvlaran/waytour/planner"
	"github.com/katalvlaran/waytour/route"
	"github.com/katalvlaran/waytour/server"
)

type planFlags struct {
	configPath    string
	waypointsPath string
	timeout       time.Duration
	departure     string
	transfer      time.Duration
	watch         bool
}

type serveFlags struct {
	configPath    string
	waypointsPath string
	addr          string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "waytour",
		Short:        "Plan the shortest round trip over a set of waypoints",
		SilenceUsage: true,
	}
	root.AddCommand(newPlanCmd(), newServeCmd())

	return root
}

func newPlanCmd() *cobra.Command {
	var f planFlags
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Collect routes between all waypoints and print the best tour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), f)
		},
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML configuration file (defaults apply when empty)")
	cmd.Flags().StringVarP(&f.waypointsPath, "waypoints", "w", "", "YAML waypoint list, first entry is the start")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 2*time.Minute, "give up when no tour is ready by then (ignored with --watch)")
	cmd.Flags().StringVar(&f.departure, "departure", "", "departure time (RFC 3339) for the itinerary")
	cmd.Flags().DurationVar(&f.transfer, "transfer", 0, "stay at every intermediate waypoint")
	cmd.Flags().BoolVar(&f.watch, "watch", false, "keep running and print a new tour whenever the waypoint file changes")
	_ = cmd.MarkFlagRequired("waypoints")

	return cmd
}

func newServeCmd() *cobra.Command {
	var f serveFlags
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the planner behind an HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), cmd.ErrOrStderr(), f)
		},
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML configuration file (defaults apply when empty)")
	cmd.Flags().StringVarP(&f.waypointsPath, "waypoints", "w", "", "optional YAML waypoint list to preload")
	cmd.Flags().StringVar(&f.addr, "addr", "", "listen address, overrides server.addr")

	return cmd
}

var errNoTour = errors.New("no tour could be computed")

// environment is what every subcommand builds from the configuration file.
type environment struct {
	cfg      config.Config
	logger   *slog.Logger
	provider *route.GreatCircle
	opts     []planner.Option
}

func loadEnvironment(configPath string, errOut io.Writer) (environment, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return environment{}, err
		}
	}
	provider, err := cfg.GreatCircle()
	if err != nil {
		return environment{}, err
	}
	opts, err := cfg.PlannerOptions()
	if err != nil {
		return environment{}, err
	}
	logger := cfg.Logger(errOut)
	opts = append(opts,
		planner.WithLogger(logger),
		planner.WithGeocoder(route.CoordinateGeocoder{}),
	)

	return environment{cfg: cfg, logger: logger, provider: provider, opts: opts}, nil
}

func runPlan(ctx context.Context, out, errOut io.Writer, f planFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	env, err := loadEnvironment(f.configPath, errOut)
	if err != nil {
		return err
	}
	departure := time.Now()
	if f.departure != "" {
		if departure, err = time.Parse(time.RFC3339, f.departure); err != nil {
			return fmt.Errorf("departure: %w", err)
		}
	}
	wps, err := config.LoadWaypoints(f.waypointsPath)
	if err != nil {
		return err
	}

	tours := make(chan planner.TourReady, 1)
	failed := make(chan struct{}, 1)
	opts := append(env.opts, planner.WithObserver(func(e planner.Event) {
		switch ev := e.(type) {
		case planner.TourReady:
			// Only the newest tour matters to a slow reader.
			select {
			case <-tours:
			default:
			}
			tours <- ev
		case planner.StateChanged:
			if ev.New.Kind == planner.Configuring && ev.Old.Kind != planner.Configuring {
				select {
				case failed <- struct{}{}:
				default:
				}
			}
		}
	}))
	p, err := planner.New(env.provider, opts...)
	if err != nil {
		return err
	}
	// Posted before Run so the loop sees every waypoint before any route.
	mirror := newWaypointSync(p)
	if err := mirror.apply(wps); err != nil {
		return err
	}

	var cancel context.CancelFunc
	if f.watch {
		ctx, cancel = context.WithCancel(ctx)
	} else {
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
	}
	go func() { _ = p.Run(ctx) }()
	defer func() {
		cancel()
		<-p.Done()
	}()

	if !f.watch {
		select {
		case tour := <-tours:
			printTour(out, tour, departure, f.transfer)
			return nil
		case <-failed:
			return errNoTour
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", errNoTour, ctx.Err())
		}
	}

	w, err := config.NewWaypointWatcher(f.waypointsPath, func(next []route.Waypoint) {
		if err := mirror.apply(next); err != nil {
			env.logger.Warn("applying waypoints", slog.Any("error", err))
		}
	}, env.cfg.Watch.Debounce, env.logger)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	for {
		select {
		case tour := <-tours:
			printTour(out, tour, departure, f.transfer)
		case <-failed:
			env.logger.Warn("no tour over the current waypoints")
		case <-ctx.Done():
			return nil
		}
	}
}

func runServe(ctx context.Context, errOut io.Writer, f serveFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	env, err := loadEnvironment(f.configPath, errOut)
	if err != nil {
		return err
	}
	addr := env.cfg.Server.Addr
	if f.addr != "" {
		addr = f.addr
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	tours := &server.Tours{}
	opts := append(env.opts, planner.WithRegisterer(reg), planner.WithObserver(tours.Observe))
	p, err := planner.New(env.provider, opts...)
	if err != nil {
		return err
	}
	if f.waypointsPath != "" {
		wps, err := config.LoadWaypoints(f.waypointsPath)
		if err != nil {
			return err
		}
		if err := newWaypointSync(p).apply(wps); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	go func() { _ = p.Run(ctx) }()
	defer func() {
		cancel()
		<-p.Done()
	}()

	router := server.NewRouter(p, tours, reg, env.logger)

	return server.Serve(ctx, addr, router, env.cfg.Server.ShutdownTimeout, env.logger)
}

func printTour(w io.Writer, t planner.TourReady, departure time.Time, transfer time.Duration) {
	names := make(map[uuid.UUID]string, len(t.Waypoints))
	for _, wp := range t.Waypoints {
		names[wp.ID] = wp.Name()
	}

	steps := t.Summary.Itinerary(departure, transfer)
	fmt.Fprintf(w, "Tour over %d waypoints (%s)\n", len(steps), t.Algorithm)
	for i, st := range steps {
		fmt.Fprintf(w, "%2d. %s  %-28s → %-28s %8.1f km  %s\n",
			i+1,
			st.Departure.Format("15:04"),
			names[st.Route.Source()],
			names[st.Route.Destination()],
			st.Route.Distance()/1000,
			st.Route.TravelTime().Round(time.Minute),
		)
	}
	fmt.Fprintf(w, "Total distance: %.1f km\n", t.Summary.Distance()/1000)
	fmt.Fprintf(w, "Total travel time: %s\n", t.Summary.TravelTime().Round(time.Minute))
	if len(steps) > 0 {
		fmt.Fprintf(w, "Arrival: %s\n", steps[len(steps)-1].Arrival.Format(time.RFC3339))
	}
}
