package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/user-management-api/internal/config"
	"github.com/MKhiriev/user-management-api/internal/handler"
	"github.com/MKhiriev/user-management-api/internal/handler/http"
	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/internal/metrics"
	"github.com/MKhiriev/user-management-api/internal/ratelimit"
	"github.com/MKhiriev/user-management-api/internal/server"
	"github.com/MKhiriev/user-management-api/internal/service"
	"github.com/MKhiriev/user-management-api/internal/store"
	"github.com/MKhiriev/user-management-api/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("user-management-api")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetGlobalLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.Security.APIKey == "" {
		log.Warn().Msg("no API key configured: every non-GET request will be rejected")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("middleware_order", cfg.Server.MiddlewareOrder).
		Bool("rate_limit", cfg.RateLimit.Enabled()).
		Bool("metrics", !cfg.Metrics.Disabled).
		Msg("received configs")

	storages := store.NewStorages(log)

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	var (
		opts      []http.Option
		bgWorkers []workers.Worker
	)
	if !cfg.Metrics.Disabled {
		opts = append(opts, http.WithMetrics(metrics.New(), cfg.Metrics.Path))
	}
	if cfg.RateLimit.Enabled() {
		limiter := ratelimit.NewStore(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
		opts = append(opts, http.WithRateLimiter(limiter))
		bgWorkers = append(bgWorkers, workers.NewLimiterCleanup(limiter, cfg.RateLimit.CleanupEvery, log))
	}

	handlers, err := handler.NewHandlers(services, cfg, log, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(log, bgWorkers...), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
