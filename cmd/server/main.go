// Package main is the entry point for the todo board API. It wires all
// dependencies using samber/do v2, opens the document store, starts the
// HTTP server, and handles graceful shutdown on SIGINT/SIGTERM.
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
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/todo-board/internal/adapters/docstore"
	adapthttp "github.com/jsamuelsen11/todo-board/internal/adapters/http"
	"github.com/jsamuelsen11/todo-board/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-board/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-board/internal/adapters/repository"
	"github.com/jsamuelsen11/todo-board/internal/app"
	"github.com/jsamuelsen11/todo-board/internal/platform/config"
	"github.com/jsamuelsen11/todo-board/internal/platform/health"
	"github.com/jsamuelsen11/todo-board/internal/platform/logging"
	"github.com/jsamuelsen11/todo-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-board/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv(config.ProfileEnv)
	if profile == "" {
		return errors.New(config.ProfileEnv + " environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	store := do.MustInvoke[*docstore.Store](injector)
	registry.Register(store)

	logger.Info("document store ready", slog.String("path", cfg.Store.Path))

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := server.Run(runCtx, nil)
	if runErr != nil {
		logger.Error("http server stopped", slog.Any("error", runErr))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	if err := store.Close(); err != nil {
		logger.Error("store close error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return runErr
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*docstore.Store, error) {
		return docstore.Open(context.Background(), docstore.Options{
			Path:        cfg.Store.Path,
			BusyTimeout: cfg.Store.BusyTimeout,
		})
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoRepository, error) {
		return repository.NewTodoRepository(do.MustInvoke[*docstore.Store](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ExpirationRepository, error) {
		return repository.NewExpirationRepository(do.MustInvoke[*docstore.Store](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ExpirationProjector, error) {
		index := do.MustInvoke[ports.ExpirationRepository](i)
		var counter metric.Int64Counter
		if metrics := do.MustInvoke[*telemetry.Metrics](i); metrics != nil {
			counter = metrics.ProjectorSyncTotal
		}
		return app.NewProjector(index, counter, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		todos := do.MustInvoke[ports.TodoRepository](i)
		projector := do.MustInvoke[ports.ExpirationProjector](i)
		return app.NewTodoService(todos, projector, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ExpirationService, error) {
		return app.NewExpirationService(
			do.MustInvoke[ports.TodoRepository](i),
			do.MustInvoke[ports.ExpirationRepository](i),
			do.MustInvoke[ports.ExpirationProjector](i),
			cfg.Projector.ReindexWorkers,
			logger,
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.DefaultCheckTimeout), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		return handlers.NewTodoHandler(do.MustInvoke[ports.TodoService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ExpirationHandler, error) {
		return handlers.NewExpirationHandler(do.MustInvoke[ports.ExpirationService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		todoH := do.MustInvoke[*handlers.TodoHandler](i)
		expH := do.MustInvoke[*handlers.ExpirationHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		pipeline := middleware.Chain(
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		)
		return adapthttp.NewRouter(todoH, expH, healthH, pipeline), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
