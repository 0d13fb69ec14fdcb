package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/saferoute/internal/pkg/circuitbreaker"
	"github.com/piresc/saferoute/internal/pkg/config"
	"github.com/piresc/saferoute/internal/pkg/database"
	"github.com/piresc/saferoute/internal/pkg/geo"
	"github.com/piresc/saferoute/internal/pkg/health"
	httpclient "github.com/piresc/saferoute/internal/pkg/http"
	"github.com/piresc/saferoute/internal/pkg/logger"
	"github.com/piresc/saferoute/internal/pkg/metrics"
	"github.com/piresc/saferoute/internal/pkg/middleware"
	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/piresc/saferoute/internal/pkg/nats"
	"github.com/piresc/saferoute/internal/pkg/server"
	locgw "github.com/piresc/saferoute/services/location/gateway"
	"github.com/piresc/saferoute/services/location/platform"
	"github.com/piresc/saferoute/services/location/provider"
	routegw "github.com/piresc/saferoute/services/routes/gateway"
	"github.com/piresc/saferoute/services/session"
	sessiongw "github.com/piresc/saferoute/services/session/gateway"
	"github.com/piresc/saferoute/services/session/store"
	sessionuc "github.com/piresc/saferoute/services/session/usecase"
	sosgw "github.com/piresc/saferoute/services/sos/gateway"
	sosuc "github.com/piresc/saferoute/services/sos/usecase"
	"github.com/piresc/saferoute/services/tracking"
	statushttp "github.com/piresc/saferoute/services/tracking/handler/http"
	"github.com/piresc/saferoute/services/tracking/mirror"
	trackinguc "github.com/piresc/saferoute/services/tracking/usecase"
	tripgw "github.com/piresc/saferoute/services/trips/gateway"
	tripuc "github.com/piresc/saferoute/services/trips/usecase"
)

const (
	modeDriver     = "driver"
	modeRider      = "rider"
	modeDispatcher = "dispatcher"
	modeRoute      = "route"
)

type options struct {
	configPath string
	mode       string
	advance    bool
	sosNote    string
	routeID    int64
	add        string
	move       string
	remove     int64
	optimize   bool
	createTrip bool
}

// app holds the wired components of one tracker process
type app struct {
	opts    options
	configs *models.Config
	logger  *logger.ZapLogger

	collector *metrics.Collector
	breakers  *circuitbreaker.Manager
	health    *health.Service
	shutdown  *server.ShutdownManager

	client   *httpclient.Client
	session  session.SessionUC
	user     *models.User
	provider *provider.Provider

	tripGW  *tripgw.HTTPGateway
	locGW   *locgw.HTTPGateway
	routeGW *routegw.HTTPGateway
	sosUC   *sosuc.SOSUC
}

func newApp(ctx context.Context, opts options) (*app, error) {
	configs, err := config.InitConfig(opts.configPath)
	if err != nil {
		return nil, err
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	logger.SetGlobalLogger(zapLogger)

	a := &app{
		opts:      opts,
		configs:   configs,
		logger:    zapLogger,
		collector: metrics.NewCollector(),
		breakers:  circuitbreaker.NewManager(zapLogger),
		health:    health.NewService(),
		shutdown:  server.NewShutdownManager(zapLogger),
	}

	a.breakers.OnStateChange(func(name string, _, to circuitbreaker.State) {
		a.collector.SetBreakerOpen(name, to == circuitbreaker.StateOpen)
	})

	a.client = httpclient.NewClient(httpclient.Config{
		BaseURL: configs.Backend.BaseURL,
		Timeout: configs.Backend.Timeout,
	})
	authGW := sessiongw.NewHTTPGateway(a.client)
	a.session = sessionuc.NewSessionUC(authGW, store.NewFileStore(configs.Session.TokenPath), a.client, configs.Session)

	a.health.AddChecker("backend", health.CheckerFunc(func(ctx context.Context) error {
		_, err := authGW.Me(ctx)
		return err
	}))

	a.user, err = a.session.Login(ctx)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}

	a.opts.mode, err = resolveMode(opts.mode, a.user.Role)
	if err != nil {
		return nil, err
	}

	source, err := newPlatform(configs.Location)
	if err != nil {
		return nil, err
	}
	a.provider = provider.NewProvider(source, source, configs.Location, a.collector)

	a.tripGW = tripgw.NewHTTPGateway(a.client)
	a.locGW = locgw.NewHTTPGateway(a.client)
	a.routeGW = routegw.NewHTTPGateway(a.client)
	a.sosUC = sosuc.NewSOSUC(sosgw.NewHTTPGateway(a.client), a.provider, a.collector)

	logger.Info("Tracker initialized",
		logger.String("mode", a.opts.mode),
		logger.String("username", a.user.Username),
		logger.String("role", string(a.user.Role)))

	return a, nil
}

// resolveMode validates an explicit mode or derives one from the role
func resolveMode(mode string, role models.Role) (string, error) {
	switch mode {
	case modeDriver, modeRider, modeDispatcher, modeRoute:
		return mode, nil
	case "":
	default:
		return "", fmt.Errorf("unknown mode %q", mode)
	}

	switch role {
	case models.RoleDriver:
		return modeDriver, nil
	case models.RoleEmployee:
		return modeRider, nil
	case models.RoleAdmin:
		return modeDispatcher, nil
	}
	return "", fmt.Errorf("no default mode for role %q", role)
}

func newPlatform(cfg models.LocationConfig) (*platform.Simulated, error) {
	waypoints, err := platform.ParseWaypoints(cfg.Waypoints)
	if err != nil {
		return nil, fmt.Errorf("location waypoints: %w", err)
	}
	if cfg.Platform == "static" {
		return platform.NewStatic(waypoints[0], cfg.SimulateInterval)
	}
	return platform.NewSimulated(waypoints, cfg.SimulateInterval)
}

// run executes the selected mode. Long-running modes serve the status
// endpoints until ctx is done.
func (a *app) run(ctx context.Context) error {
	if !a.provider.EnsurePermission(ctx) {
		logger.Warn("Location permission denied, fixes will be unavailable")
	}

	deps := statushttp.Deps{
		Mode:     a.opts.mode,
		Provider: a.provider,
		SOSUC:    a.sosUC,
		Metrics:  a.collector,
		Breakers: a.breakers,
	}

	if a.opts.sosNote != "" && a.opts.mode != modeRoute {
		return a.triggerSOS(ctx)
	}

	switch a.opts.mode {
	case modeRoute:
		return a.runRoute(ctx)
	case modeDriver:
		tripUC, err := a.startDriver(ctx)
		if err != nil {
			return err
		}
		deps.TripUC = tripUC
	case modeRider:
		view := trackinguc.NewRiderView(a.tripGW, a.locGW, a.provider, a.session,
			geo.NewEstimator(a.configs.ETA), a.configs.Refresh, a.collector)
		if err := view.Open(ctx); err != nil {
			return fmt.Errorf("open rider view: %w", err)
		}
		a.shutdown.Register("rider-view", closer(view.Close))
		deps.Rider = view
	case modeDispatcher:
		view := trackinguc.NewDispatcherView(a.sosUC, a.locGW, a.mirrors(), a.configs.Refresh, a.collector)
		if err := view.Open(ctx); err != nil {
			return fmt.Errorf("open dispatcher view: %w", err)
		}
		a.shutdown.Register("dispatcher-view", closer(view.Close))
		deps.Dispatcher = view
	}

	if !a.configs.Status.Enabled {
		<-ctx.Done()
		return nil
	}
	return a.serveStatus(ctx, deps)
}

func (a *app) startDriver(ctx context.Context) (*tripuc.TripUC, error) {
	tripUC := tripuc.NewTripUC(a.tripGW, a.locGW, a.provider, a.collector, a.configs.Backend.Timeout)
	a.shutdown.Register("trip-tracking", closer(tripUC.StopTracking))

	if _, err := tripUC.LoadMyTrips(ctx); err != nil {
		return nil, fmt.Errorf("load trips: %w", err)
	}

	active := tripUC.ActiveTrip()
	if active == nil {
		logger.Info("No active trip assigned")
		return tripUC, nil
	}

	if a.opts.advance {
		next, ok := active.Status.Next()
		if !ok {
			return nil, fmt.Errorf("trip %d is already %s", active.ID, active.Status)
		}
		updated, err := tripUC.Transition(ctx, *active, next)
		if err != nil {
			return nil, err
		}
		logger.Info("Trip advanced",
			logger.Int64("trip_id", updated.ID),
			logger.String("status", string(updated.Status)))
		return tripUC, nil
	}

	if active.Status.Streams() {
		tripUC.StartTracking(ctx, active.ID)
	}
	return tripUC, nil
}

func (a *app) triggerSOS(ctx context.Context) error {
	var tripID *int64
	if a.opts.mode == modeDriver {
		tripUC := tripuc.NewTripUC(a.tripGW, a.locGW, a.provider, a.collector, a.configs.Backend.Timeout)
		if _, err := tripUC.LoadMyTrips(ctx); err != nil {
			logger.Warn("Trips unavailable, raising SOS without a trip", logger.Err(err))
		} else if active := tripUC.ActiveTrip(); active != nil {
			id := active.ID
			tripID = &id
		}
	}

	alert, err := a.sosUC.Trigger(ctx, tripID, a.opts.sosNote)
	if err != nil {
		return err
	}
	return printJSON(alert)
}

// mirrors connects the optional dispatcher sinks and registers their
// health checks and cleanup
func (a *app) mirrors() []tracking.Mirror {
	var out []tracking.Mirror

	if a.configs.Redis.Enabled {
		redisClient, err := database.NewRedisClient(a.configs.Redis)
		if err != nil {
			logger.Error("Redis mirror disabled", logger.Err(err))
		} else {
			a.health.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
			a.shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })
			out = append(out, mirror.NewRedisMirror(redisClient, a.breakers, a.configs.Redis.SampleTTL))
		}
	}

	if a.configs.NATS.Enabled {
		natsClient, err := nats.NewClient(a.configs.NATS.URL, a.configs.App.Name)
		if err != nil {
			logger.Error("NATS mirror disabled", logger.Err(err))
		} else {
			a.health.AddChecker("nats", health.CheckerFunc(func(context.Context) error {
				if !natsClient.IsConnected() {
					return errors.New("not connected")
				}
				return nil
			}))
			a.shutdown.Register("nats", closer(natsClient.Close))
			out = append(out, mirror.NewNATSMirror(nats.NewProducer(natsClient), a.breakers))
		}
	}

	return out
}

func (a *app) serveStatus(ctx context.Context, deps statushttp.Deps) error {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.RequestID(), middleware.PanicRecovery(a.logger), logger.ZapEchoMiddleware(a.logger))

	health.RegisterHealthEndpoints(e, health.BuildInfo{
		ServiceName: a.configs.App.Name,
		Version:     a.configs.App.Version,
		Mode:        a.opts.mode,
	}, a.health)
	statushttp.NewStatusHandler(deps).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, a.logger, a.configs.Status.Port, a.configs.Status.ShutdownTimeout)
	return srv.Run(ctx)
}

// close releases every registered component
func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if a.provider != nil {
		a.provider.StopStream()
	}
	if err := a.shutdown.Shutdown(ctx); err != nil {
		logger.Warn("Shutdown incomplete", logger.Err(err))
	}
	_ = a.logger.Close()
}

func closer(fn func()) func(context.Context) error {
	return func(context.Context) error {
		fn()
		return nil
	}
}
