// Command gridserver serves the calibration-grid API over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"calibgrid/internal/config"
	apierrors "calibgrid/internal/errors"
	"calibgrid/internal/infrastructure"
	"calibgrid/internal/middleware"
	"calibgrid/internal/services"
	transporthttp "calibgrid/internal/transport/http"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := infrastructure.InitializeLogger(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracer, shutdownTracing, err := infrastructure.InitializeTracing(ctx, cfg.Tracing.Enabled, logger)
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	service := services.NewGridService(logger, tracer)
	service.SetSmoothConcurrency(cfg.Limits.SmoothConcurrency)

	errorHandler := apierrors.NewErrorHandler(logger)
	gridHandler := transporthttp.NewGridHandler(service, logger, errorHandler, cfg.Limits.MaxGridCells)
	healthHandler := transporthttp.NewHealthHandler(logger)
	metrics := middleware.NewMetrics()
	rateLimiter := middleware.NewRateLimiter(cfg.Limits.RateLimitRPS, cfg.Limits.RateLimitBurst, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.StructuredLogger(logger))
	r.Use(metrics.Handler)
	r.Use(rateLimiter.Handler)

	r.Get("/healthz", healthHandler.HealthCheck)
	r.Get("/version", healthHandler.VersionInfo)
	r.Method(http.MethodGet, "/metrics", metrics.Expose())
	r.Mount("/api/grid", gridHandler.Routes())

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", cfg.Server.Port))
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	logger.Info("server stopped")
	return nil
}
