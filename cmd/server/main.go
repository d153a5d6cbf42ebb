// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/leadboard/internal/adapters/http"
	"github.com/jsamuelsen11/leadboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/leadboard/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/leadboard/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/leadboard/internal/adapters/events"
	"github.com/jsamuelsen11/leadboard/internal/app"
	"github.com/jsamuelsen11/leadboard/internal/app/collision"
	"github.com/jsamuelsen11/leadboard/internal/app/dragdrop"
	"github.com/jsamuelsen11/leadboard/internal/app/pipeline"
	"github.com/jsamuelsen11/leadboard/internal/platform/config"
	"github.com/jsamuelsen11/leadboard/internal/platform/health"
	"github.com/jsamuelsen11/leadboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/leadboard/internal/platform/logging"
	"github.com/jsamuelsen11/leadboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/leadboard/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*acl.LeadClient](injector))

	// An empty board is usable; the client can retry via POST /board/reload.
	board := do.MustInvoke[ports.BoardService](injector)
	if err := board.Reload(ctx); err != nil {
		logger.Warn("initial board load failed", slog.Any("error", err))
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Let in-flight confirmations settle.
	do.MustInvoke[*dragdrop.Reconciler](injector).Wait()

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, acl.ServiceName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.LeadClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewLeadClient(client, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*pipeline.Store, error) {
		return pipeline.NewStore(), nil
	})

	// The hub observes the store so every committed board change reaches
	// connected browsers.
	do.Provide(injector, func(i do.Injector) (*events.Hub, error) {
		store := do.MustInvoke[*pipeline.Store](i)
		hub := events.NewHub(cfg.Events.Buffer, logger)
		store.Subscribe(hub)
		return hub, nil
	})

	do.Provide(injector, func(_ do.Injector) (*collision.Registry, error) {
		return collision.NewRegistry(), nil
	})

	do.Provide(injector, func(i do.Injector) (*dragdrop.Reconciler, error) {
		return dragdrop.NewReconciler(
			do.MustInvoke[*pipeline.Store](i),
			do.MustInvoke[*acl.LeadClient](i),
			do.MustInvoke[*events.Hub](i),
			dragdrop.NewPendingSet(),
			dragdrop.ReconcilerConfig{
				Timeout:      cfg.Board.ReconcileTimeout,
				Precondition: cfg.Board.Precondition,
			},
			logger,
			do.MustInvoke[*telemetry.Metrics](i),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*dragdrop.Controller, error) {
		resolver := collision.NewResolver(
			do.MustInvoke[*collision.Registry](i),
			collision.WithMargin(cfg.Board.CollisionMargin),
			collision.WithEdgeThreshold(cfg.Board.EdgeThreshold),
		)
		return dragdrop.NewController(
			do.MustInvoke[*pipeline.Store](i),
			resolver,
			do.MustInvoke[*dragdrop.Reconciler](i),
			logger,
			do.MustInvoke[*telemetry.Metrics](i),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BoardService, error) {
		deps := app.BoardDeps{
			Client:     do.MustInvoke[*acl.LeadClient](i),
			Notifier:   do.MustInvoke[*events.Hub](i),
			Store:      do.MustInvoke[*pipeline.Store](i),
			Registry:   do.MustInvoke[*collision.Registry](i),
			Controller: do.MustInvoke[*dragdrop.Controller](i),
		}
		return app.NewBoardService(deps, app.BoardConfig{
			LoadConcurrency: cfg.Board.LoadConcurrency,
			ReloadTimeout:   cfg.Board.ReloadTimeout,
		}, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		svc := do.MustInvoke[ports.BoardService](i)
		return adapthttp.Handlers{
			Board:  handlers.NewBoardHandler(svc),
			Lead:   handlers.NewLeadHandler(svc),
			Events: handlers.NewEventsHandler(do.MustInvoke[*events.Hub](i), cfg.Events.Heartbeat),
			Health: handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h, middleware.Timeout(cfg.Server.WriteTimeout),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.CORS(cfg.CORS.AllowedOrigins),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		server := adapthttp.NewServer(cfg.Server, handler, logger)
		// Event streams never finish on their own.
		server.OnShutdown(do.MustInvoke[*events.Hub](i).Close)
		return server, nil
	})
}
